package middleware

import (
	"testing"

	"donfundy/internal/adapters/persistence/models"
)

func TestCapabilityForRole(t *testing.T) {
	tests := []struct {
		role string
		want Capability
	}{
		{models.RoleAdmin, CapabilityAdmin},
		{models.RoleUser, CapabilityUser},
		{"", CapabilityAnonymous},
		{"SUPERUSER", CapabilityAnonymous},
	}

	for _, tt := range tests {
		if got := CapabilityForRole(tt.role); got != tt.want {
			t.Errorf("CapabilityForRole(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}
