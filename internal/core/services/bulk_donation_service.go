package services

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"donfundy/internal/adapters/persistence/models"
	"donfundy/internal/adapters/persistence/repositories"
	"donfundy/internal/cache"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Anonymous donor fallback used when a row carries no usable donor email
const (
	AnonymousDonorEmail     = "anonymous@donfundy.com"
	AnonymousDonorFirstName = "Anonymous"
	AnonymousDonorLastName  = "Donor"
)

// Bulk upload errors
var (
	ErrMalformedCSV = errors.New("malformed csv file")
)

// Expected column order: campaignId, amount, donorEmail, donorFirstName,
// donorLastName, paymentMethod, message. The first row is a header and
// is skipped.
const (
	colCampaignID = iota
	colAmount
	colDonorEmail
	colDonorFirstName
	colDonorLastName
	colPaymentMethod
	colMessage
)

// BulkDonationService imports donations from CSV files
type BulkDonationService struct {
	donationRepo repositories.DonationRepository
	campaignRepo repositories.CampaignRepository
	donorRepo    repositories.DonorRepository
	store        *cache.Store
}

// NewBulkDonationService creates a new bulk donation service
func NewBulkDonationService(
	donationRepo repositories.DonationRepository,
	campaignRepo repositories.CampaignRepository,
	donorRepo repositories.DonorRepository,
	store *cache.Store,
) *BulkDonationService {
	return &BulkDonationService{
		donationRepo: donationRepo,
		campaignRepo: campaignRepo,
		donorRepo:    donorRepo,
		store:        store,
	}
}

// donationRow is one validated CSV row ready for persistence
type donationRow struct {
	campaignID    uint
	amount        decimal.Decimal
	donorEmail    string
	donorFirst    string
	donorLast     string
	paymentMethod string
	message       string
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseDonationRow validates a single data row. Row-level problems are
// returned as errors with messages meant for the upload report.
func parseDonationRow(record []string) (*donationRow, error) {
	campaignRaw := field(record, colCampaignID)
	if campaignRaw == "" {
		return nil, errors.New("missing campaign id")
	}
	campaignID, err := strconv.ParseUint(campaignRaw, 10, 32)
	if err != nil {
		return nil, errors.New("invalid campaign id: " + campaignRaw)
	}

	amountRaw := field(record, colAmount)
	amount, err := decimal.NewFromString(amountRaw)
	if err != nil {
		return nil, errors.New("invalid amount: " + amountRaw)
	}
	if !amount.IsPositive() {
		return nil, errors.New("amount must be greater than zero")
	}

	row := &donationRow{
		campaignID: uint(campaignID),
		amount:     amount,
		donorEmail: strings.ToLower(field(record, colDonorEmail)),
		donorFirst: field(record, colDonorFirstName),
		donorLast:  field(record, colDonorLastName),
		message:    field(record, colMessage),
	}

	// Blank or explicitly anonymous rows map to the shared anonymous donor
	if row.donorEmail == "" || row.donorEmail == "anonymous" {
		row.donorEmail = AnonymousDonorEmail
		row.donorFirst = AnonymousDonorFirstName
		row.donorLast = AnonymousDonorLastName
	}
	if row.donorFirst == "" {
		row.donorFirst = "Unknown"
	}
	if row.donorLast == "" {
		row.donorLast = "Donor"
	}

	method := strings.ToUpper(field(record, colPaymentMethod))
	if method == "" {
		method = models.PaymentMethodCard
	}
	if !models.ValidPaymentMethod(method) {
		return nil, errors.New("invalid payment method: " + field(record, colPaymentMethod))
	}
	row.paymentMethod = method

	return row, nil
}

// ProcessCSV imports donations from r. Rows that fail validation are
// reported in the result and do not block the rest of the file.
func (s *BulkDonationService) ProcessCSV(ctx context.Context, r io.Reader) (*models.BulkDonationResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, ErrMalformedCSV
	}
	if len(records) > 0 {
		// Skip the header row
		records = records[1:]
	}

	result := models.NewBulkDonationResult()
	result.TotalRows = len(records)

	campaigns := make(map[uint]*models.Campaign)
	donors := make(map[string]*models.Donor)
	donations := make([]*models.Donation, 0, len(records))
	raisedByCampaign := make(map[uint]decimal.Decimal)
	today := time.Now().Truncate(24 * time.Hour)

	for i, record := range records {
		rowNum := i + 1

		row, err := parseDonationRow(record)
		if err != nil {
			result.AddError(rowNum, err.Error())
			continue
		}

		campaign, err := s.lookupCampaign(ctx, campaigns, row.campaignID)
		if err != nil {
			result.AddError(rowNum, err.Error())
			continue
		}
		if campaign.Status != models.CampaignStatusActive {
			result.AddError(rowNum, "campaign is not active: "+campaign.Name)
			continue
		}

		donor, err := s.lookupOrCreateDonor(ctx, donors, row)
		if err != nil {
			result.AddError(rowNum, "could not resolve donor: "+row.donorEmail)
			continue
		}

		donations = append(donations, &models.Donation{
			CampaignID:    campaign.ID,
			DonorID:       donor.ID,
			Amount:        row.amount,
			DonationDate:  today,
			Message:       row.message,
			PaymentMethod: row.paymentMethod,
		})
		raisedByCampaign[campaign.ID] = raisedByCampaign[campaign.ID].Add(row.amount)
		result.SuccessCount++
	}

	if len(donations) > 0 {
		if err := s.donationRepo.CreateBatch(ctx, donations); err != nil {
			return nil, err
		}
		for campaignID, total := range raisedByCampaign {
			if err := s.campaignRepo.AddToRaisedAmount(ctx, campaignID, total.InexactFloat64()); err != nil {
				return nil, err
			}
		}
		s.store.Invalidate(cache.MutationBulkImported)
	}

	log.Printf("✅ Bulk upload processed: %d rows, %d imported, %d failed",
		result.TotalRows, result.SuccessCount, result.FailureCount)

	return result, nil
}

func (s *BulkDonationService) lookupCampaign(ctx context.Context, seen map[uint]*models.Campaign, id uint) (*models.Campaign, error) {
	if campaign, ok := seen[id]; ok {
		return campaign, nil
	}

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("campaign not found: " + strconv.FormatUint(uint64(id), 10))
		}
		return nil, err
	}

	seen[id] = campaign
	return campaign, nil
}

func (s *BulkDonationService) lookupOrCreateDonor(ctx context.Context, seen map[string]*models.Donor, row *donationRow) (*models.Donor, error) {
	if donor, ok := seen[row.donorEmail]; ok {
		return donor, nil
	}

	donor, err := s.donorRepo.GetByEmail(ctx, row.donorEmail)
	if err == nil {
		seen[row.donorEmail] = donor
		return donor, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	donor = &models.Donor{
		FirstName: row.donorFirst,
		LastName:  row.donorLast,
		Email:     row.donorEmail,
	}
	if err := s.donorRepo.Create(ctx, donor); err != nil {
		return nil, err
	}

	seen[row.donorEmail] = donor
	return donor, nil
}
