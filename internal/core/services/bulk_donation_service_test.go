package services

import (
	"strings"
	"testing"

	"donfundy/internal/adapters/persistence/models"

	"github.com/shopspring/decimal"
)

func TestParseDonationRow(t *testing.T) {
	record := []string{"3", "25.50", "Ada@Example.com", "Ada", "Lovelace", "PAYPAL", "keep it up"}

	row, err := parseDonationRow(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if row.campaignID != 3 {
		t.Errorf("campaignID = %d, want 3", row.campaignID)
	}
	if !row.amount.Equal(decimal.RequireFromString("25.50")) {
		t.Errorf("amount = %s, want 25.50", row.amount)
	}
	if row.donorEmail != "ada@example.com" {
		t.Errorf("donorEmail = %q, want lowercased", row.donorEmail)
	}
	if row.paymentMethod != models.PaymentMethodPaypal {
		t.Errorf("paymentMethod = %q", row.paymentMethod)
	}
	if row.message != "keep it up" {
		t.Errorf("message = %q", row.message)
	}
}

func TestParseDonationRowAnonymousEmail(t *testing.T) {
	for _, email := range []string{"", "anonymous", "ANONYMOUS"} {
		row, err := parseDonationRow([]string{"1", "10", email, "Ada", "Lovelace", "", ""})
		if err != nil {
			t.Fatalf("email %q: unexpected error: %v", email, err)
		}
		if row.donorEmail != AnonymousDonorEmail {
			t.Errorf("email %q: donorEmail = %q, want %q", email, row.donorEmail, AnonymousDonorEmail)
		}
		if row.donorFirst != AnonymousDonorFirstName || row.donorLast != AnonymousDonorLastName {
			t.Errorf("email %q: donor name = %q %q", email, row.donorFirst, row.donorLast)
		}
	}
}

func TestParseDonationRowNameDefaults(t *testing.T) {
	row, err := parseDonationRow([]string{"1", "10", "someone@example.com", "", "", "", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.donorFirst != "Unknown" {
		t.Errorf("donorFirst = %q, want Unknown", row.donorFirst)
	}
	if row.donorLast != "Donor" {
		t.Errorf("donorLast = %q, want Donor", row.donorLast)
	}
}

func TestParseDonationRowPaymentMethodDefaultsToCard(t *testing.T) {
	row, err := parseDonationRow([]string{"1", "10", "someone@example.com", "A", "B", "", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.paymentMethod != models.PaymentMethodCard {
		t.Errorf("paymentMethod = %q, want %q", row.paymentMethod, models.PaymentMethodCard)
	}

	// Lowercase input is normalized
	row, err = parseDonationRow([]string{"1", "10", "someone@example.com", "A", "B", "bank_transfer", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.paymentMethod != models.PaymentMethodBankTransfer {
		t.Errorf("paymentMethod = %q, want %q", row.paymentMethod, models.PaymentMethodBankTransfer)
	}
}

func TestParseDonationRowRejectsBadRows(t *testing.T) {
	tests := []struct {
		name    string
		record  []string
		wantMsg string
	}{
		{"missing campaign id", []string{"", "10", "a@b.com"}, "missing campaign id"},
		{"bad campaign id", []string{"abc", "10", "a@b.com"}, "invalid campaign id"},
		{"bad amount", []string{"1", "ten", "a@b.com"}, "invalid amount"},
		{"zero amount", []string{"1", "0", "a@b.com"}, "greater than zero"},
		{"negative amount", []string{"1", "-5", "a@b.com"}, "greater than zero"},
		{"bad payment method", []string{"1", "10", "a@b.com", "A", "B", "CASH"}, "invalid payment method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDonationRow(tt.record)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestParseDonationRowShortRecord(t *testing.T) {
	// Only two columns: still parses, donor falls back to anonymous
	row, err := parseDonationRow([]string{"1", "12.00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.donorEmail != AnonymousDonorEmail {
		t.Errorf("donorEmail = %q, want anonymous", row.donorEmail)
	}
	if row.paymentMethod != models.PaymentMethodCard {
		t.Errorf("paymentMethod = %q, want CARD", row.paymentMethod)
	}
}
