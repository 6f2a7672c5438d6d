package services

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateCampaignInput(t *testing.T) {
	valid := func() *CampaignInput {
		end := date(2026, 12, 31)
		return &CampaignInput{
			Name:       "Clean Water",
			GoalAmount: 5000,
			StartDate:  date(2026, 1, 1),
			EndDate:    &end,
			Status:     "ACTIVE",
		}
	}

	if err := validateCampaignInput(valid()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*CampaignInput)
		wantErr error
	}{
		{"empty name", func(in *CampaignInput) { in.Name = "" }, ErrCampaignNameRequired},
		{"zero goal", func(in *CampaignInput) { in.GoalAmount = 0 }, ErrInvalidGoalAmount},
		{"negative goal", func(in *CampaignInput) { in.GoalAmount = -100 }, ErrInvalidGoalAmount},
		{"missing start", func(in *CampaignInput) { in.StartDate = time.Time{} }, ErrStartDateRequired},
		{"end before start", func(in *CampaignInput) {
			end := date(2025, 1, 1)
			in.EndDate = &end
		}, ErrInvalidDateRange},
		{"bad status", func(in *CampaignInput) { in.Status = "RUNNING" }, ErrInvalidCampaignStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(input)
			if err := validateCampaignInput(input); !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCampaignInputSingleDay(t *testing.T) {
	// A campaign starting and ending on the same day is valid
	start := date(2026, 1, 1)
	end := start
	input := &CampaignInput{
		Name:       "Flash Fundraiser",
		GoalAmount: 500,
		StartDate:  start,
		EndDate:    &end,
	}
	if err := validateCampaignInput(input); err != nil {
		t.Fatalf("single-day campaign rejected: %v", err)
	}
}

func TestValidateCampaignInputOptionalFields(t *testing.T) {
	// No end date and no status are both acceptable
	input := &CampaignInput{
		Name:       "Open Ended",
		GoalAmount: 100,
		StartDate:  date(2026, 1, 1),
	}
	if err := validateCampaignInput(input); err != nil {
		t.Fatalf("input without optional fields rejected: %v", err)
	}
}
