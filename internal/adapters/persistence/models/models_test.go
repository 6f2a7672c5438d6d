package models

import "testing"

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name   string
		goal   float64
		raised float64
		want   float64
	}{
		{"halfway", 1000, 500, 50},
		{"zero raised", 1000, 0, 0},
		{"goal reached", 1000, 1000, 100},
		{"over goal caps at 100", 1000, 1500, 100},
		{"zero goal", 0, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Campaign{GoalAmount: tt.goal, RaisedAmount: tt.raised}
			if got := c.ProgressPercentage(); got != tt.want {
				t.Errorf("ProgressPercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidCampaignStatus(t *testing.T) {
	for _, status := range []string{CampaignStatusPending, CampaignStatusActive, CampaignStatusCompleted, CampaignStatusCancelled} {
		if !ValidCampaignStatus(status) {
			t.Errorf("%s reported invalid", status)
		}
	}
	if ValidCampaignStatus("RUNNING") || ValidCampaignStatus("") {
		t.Error("unknown status reported valid")
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, method := range []string{PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodPaypal} {
		if !ValidPaymentMethod(method) {
			t.Errorf("%s reported invalid", method)
		}
	}
	if ValidPaymentMethod("CASH") || ValidPaymentMethod("") {
		t.Error("unknown method reported valid")
	}
}

func TestBulkDonationResultAddError(t *testing.T) {
	result := NewBulkDonationResult()
	result.AddError(3, "invalid amount: abc")
	result.AddError(7, "campaign not found: 99")

	if result.FailureCount != 2 {
		t.Fatalf("FailureCount = %d, want 2", result.FailureCount)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(result.Errors))
	}
	if result.Errors[0] != "Row 3: invalid amount: abc" {
		t.Errorf("unexpected error message: %q", result.Errors[0])
	}
	if result.Errors[1] != "Row 7: campaign not found: 99" {
		t.Errorf("unexpected error message: %q", result.Errors[1])
	}
}

func TestDonorFullName(t *testing.T) {
	d := &Donor{FirstName: "Ada", LastName: "Lovelace"}
	if got := d.FullName(); got != "Ada Lovelace" {
		t.Errorf("FullName() = %q", got)
	}
}

func TestUserIsAdmin(t *testing.T) {
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin not recognized")
	}
	if (&User{Role: RoleUser}).IsAdmin() {
		t.Error("regular user recognized as admin")
	}
}

func TestCampaignToResponseIncludesCreator(t *testing.T) {
	donorID := uint(5)
	c := &Campaign{
		ID:           1,
		Name:         "Clean Water",
		GoalAmount:   1000,
		RaisedAmount: 250,
		CreatedByID:  &donorID,
		CreatedBy:    &Donor{ID: donorID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
	}

	resp := c.ToResponse()
	if resp.ProgressPercentage != 25 {
		t.Errorf("ProgressPercentage = %v, want 25", resp.ProgressPercentage)
	}
	if resp.CreatedByName != "Ada Lovelace" {
		t.Errorf("CreatedByName = %q", resp.CreatedByName)
	}
	if resp.CreatedByEmail != "ada@example.com" {
		t.Errorf("CreatedByEmail = %q", resp.CreatedByEmail)
	}
}
