package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"donfundy/internal/adapters/persistence/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeCampaignRepo struct {
	campaigns []*models.Campaign
}

func (r *fakeCampaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	r.campaigns = append(r.campaigns, campaign)
	return nil
}

func (r *fakeCampaignRepo) GetByID(ctx context.Context, id uint) (*models.Campaign, error) {
	for _, c := range r.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCampaignRepo) List(ctx context.Context, status string) ([]*models.Campaign, error) {
	if status == "" {
		return r.campaigns, nil
	}
	var out []*models.Campaign
	for _, c := range r.campaigns {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) ListByCreator(ctx context.Context, donorID uint) ([]*models.Campaign, error) {
	return nil, nil
}

func (r *fakeCampaignRepo) Update(ctx context.Context, campaign *models.Campaign) error { return nil }
func (r *fakeCampaignRepo) Delete(ctx context.Context, id uint) error                   { return nil }
func (r *fakeCampaignRepo) AddToRaisedAmount(ctx context.Context, id uint, amount float64) error {
	return nil
}

type fakeDonationRepo struct {
	donations []*models.Donation
}

func (r *fakeDonationRepo) Create(ctx context.Context, donation *models.Donation) error {
	r.donations = append(r.donations, donation)
	return nil
}

func (r *fakeDonationRepo) CreateBatch(ctx context.Context, donations []*models.Donation) error {
	r.donations = append(r.donations, donations...)
	return nil
}

func (r *fakeDonationRepo) GetByID(ctx context.Context, id uint) (*models.Donation, error) {
	for _, d := range r.donations {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDonationRepo) List(ctx context.Context, campaignID, donorID uint) ([]*models.Donation, error) {
	var out []*models.Donation
	for _, d := range r.donations {
		if campaignID != 0 && d.CampaignID != campaignID {
			continue
		}
		if donorID != 0 && d.DonorID != donorID {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDonationRepo) Delete(ctx context.Context, id uint) error { return nil }

func reportFixtures() (*fakeCampaignRepo, *fakeDonationRepo) {
	water := &models.Campaign{ID: 1, Name: "Clean Water", Status: models.CampaignStatusActive, GoalAmount: 1000, RaisedAmount: 250}
	books := &models.Campaign{ID: 2, Name: "School Books", Status: models.CampaignStatusCompleted, GoalAmount: 500, RaisedAmount: 500}
	donor := &models.Donor{ID: 1, FirstName: "Ana", LastName: "Reyes", Email: "ana@example.com"}

	donations := []*models.Donation{
		{ID: 1, CampaignID: 1, DonorID: 1, Amount: decimal.NewFromInt(250), PaymentMethod: models.PaymentMethodCard,
			DonationDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Campaign: water, Donor: donor},
		{ID: 2, CampaignID: 2, DonorID: 1, Amount: decimal.NewFromInt(500), PaymentMethod: models.PaymentMethodPaypal,
			DonationDate: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), Campaign: books, Donor: donor},
	}

	return &fakeCampaignRepo{campaigns: []*models.Campaign{water, books}},
		&fakeDonationRepo{donations: donations}
}

func TestWriteCampaignsSummaryCSV(t *testing.T) {
	campaignRepo, donationRepo := reportFixtures()
	service := NewReportService(donationRepo, campaignRepo, t.TempDir())

	var buf bytes.Buffer
	if err := service.WriteCampaignsSummaryCSV(context.Background(), &buf); err != nil {
		t.Fatalf("write summary: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse summary: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}
	if records[0][0] != "id" || records[0][6] != "donation_count" {
		t.Fatalf("unexpected header: %v", records[0])
	}

	water := records[1]
	if water[1] != "Clean Water" || water[3] != "1000.00" || water[4] != "250.00" || water[5] != "25.0" || water[6] != "1" {
		t.Fatalf("unexpected summary row: %v", water)
	}
	books := records[2]
	if books[2] != models.CampaignStatusCompleted || books[5] != "100.0" {
		t.Fatalf("unexpected summary row: %v", books)
	}
}

func TestWriteDonationsCSV(t *testing.T) {
	campaignRepo, donationRepo := reportFixtures()
	service := NewReportService(donationRepo, campaignRepo, t.TempDir())

	var buf bytes.Buffer
	if err := service.WriteDonationsCSV(context.Background(), &buf); err != nil {
		t.Fatalf("write donations: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse donations: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}
	first := records[1]
	if first[1] != "Clean Water" || first[2] != "Ana Reyes" || first[3] != "250.00" || first[5] != "2026-08-01" {
		t.Fatalf("unexpected donation row: %v", first)
	}
}

func TestGenerateWritesSummaryAndPerCampaignFiles(t *testing.T) {
	campaignRepo, donationRepo := reportFixtures()
	dir := t.TempDir()
	service := NewReportService(donationRepo, campaignRepo, dir)

	path, err := service.Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("report written outside output dir: %s", path)
	}

	for _, name := range []string{"campaigns_summary.csv", "campaign_1_donations.csv", "campaign_2_donations.csv"} {
		if _, err := os.Stat(filepath.Join(path, name)); err != nil {
			t.Errorf("missing report file %s: %v", name, err)
		}
	}
}
