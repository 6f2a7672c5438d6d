package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"donfundy/internal/adapters/persistence/models"
	"donfundy/internal/adapters/persistence/repositories"
)

// ReportService builds CSV exports of campaigns and recorded donations
type ReportService struct {
	donationRepo repositories.DonationRepository
	campaignRepo repositories.CampaignRepository
	outputDir    string
}

// NewReportService creates a new report service writing files to outputDir
func NewReportService(
	donationRepo repositories.DonationRepository,
	campaignRepo repositories.CampaignRepository,
	outputDir string,
) *ReportService {
	return &ReportService{
		donationRepo: donationRepo,
		campaignRepo: campaignRepo,
		outputDir:    outputDir,
	}
}

var (
	donationHeader = []string{"id", "campaign", "donor", "amount", "payment_method", "donation_date", "message"}
	summaryHeader  = []string{"id", "name", "status", "goal_amount", "raised_amount", "progress_percent", "donation_count"}
)

func donationRecord(d *models.Donation) []string {
	campaignName := ""
	if d.Campaign != nil {
		campaignName = d.Campaign.Name
	}
	donorName := ""
	if d.Donor != nil {
		donorName = d.Donor.FullName()
	}

	return []string{
		fmt.Sprintf("%d", d.ID),
		campaignName,
		donorName,
		d.Amount.StringFixed(2),
		d.PaymentMethod,
		d.DonationDate.Format("2006-01-02"),
		d.Message,
	}
}

func writeDonations(w io.Writer, donations []*models.Donation) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(donationHeader); err != nil {
		return err
	}
	for _, d := range donations {
		if err := writer.Write(donationRecord(d)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteDonationsCSV writes the full donation export to w
func (s *ReportService) WriteDonationsCSV(ctx context.Context, w io.Writer) error {
	donations, err := s.donationRepo.List(ctx, 0, 0)
	if err != nil {
		return err
	}
	return writeDonations(w, donations)
}

// WriteCampaignsSummaryCSV writes one row per campaign with goal, raised
// amount, progress and donation count to w
func (s *ReportService) WriteCampaignsSummaryCSV(ctx context.Context, w io.Writer) error {
	campaigns, err := s.campaignRepo.List(ctx, "")
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(summaryHeader); err != nil {
		return err
	}

	for _, campaign := range campaigns {
		donations, err := s.donationRepo.List(ctx, campaign.ID, 0)
		if err != nil {
			return err
		}

		record := []string{
			fmt.Sprintf("%d", campaign.ID),
			campaign.Name,
			campaign.Status,
			fmt.Sprintf("%.2f", campaign.GoalAmount),
			fmt.Sprintf("%.2f", campaign.RaisedAmount),
			fmt.Sprintf("%.1f", campaign.ProgressPercentage()),
			fmt.Sprintf("%d", len(donations)),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Generate writes the campaigns summary plus one donation detail file per
// campaign into a dated directory and returns its path
func (s *ReportService) Generate(ctx context.Context) (string, error) {
	dir := filepath.Join(s.outputDir, time.Now().Format("2006-01-02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	if err := s.writeFile(filepath.Join(dir, "campaigns_summary.csv"), func(w io.Writer) error {
		return s.WriteCampaignsSummaryCSV(ctx, w)
	}); err != nil {
		return "", err
	}

	campaigns, err := s.campaignRepo.List(ctx, "")
	if err != nil {
		return "", err
	}

	for _, campaign := range campaigns {
		donations, err := s.donationRepo.List(ctx, campaign.ID, 0)
		if err != nil {
			return "", err
		}

		name := fmt.Sprintf("campaign_%d_donations.csv", campaign.ID)
		if err := s.writeFile(filepath.Join(dir, name), func(w io.Writer) error {
			return writeDonations(w, donations)
		}); err != nil {
			return "", err
		}
	}

	log.Printf("✅ Campaign report written: %s", dir)
	return dir, nil
}

func (s *ReportService) writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return write(file)
}
