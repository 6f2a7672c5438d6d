package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"donfundy/internal/adapters/persistence/models"
	"donfundy/internal/adapters/persistence/repositories"
	"donfundy/internal/cache"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Donation errors
var (
	ErrDonationNotFound         = errors.New("donation not found")
	ErrInvalidDonationAmount    = errors.New("donation amount must be greater than zero")
	ErrInvalidPaymentMethod     = errors.New("invalid payment method")
	ErrCampaignNotActive        = errors.New("campaign is not accepting donations")
	ErrCampaignAlreadyCompleted = errors.New("campaign has already reached its goal")
)

// DonationService handles donation business logic
type DonationService struct {
	donationRepo repositories.DonationRepository
	campaignRepo repositories.CampaignRepository
	donorRepo    repositories.DonorRepository
	store        *cache.Store
}

// NewDonationService creates a new donation service
func NewDonationService(
	donationRepo repositories.DonationRepository,
	campaignRepo repositories.CampaignRepository,
	donorRepo repositories.DonorRepository,
	store *cache.Store,
) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
		campaignRepo: campaignRepo,
		donorRepo:    donorRepo,
		store:        store,
	}
}

// DonationInput represents donation input
type DonationInput struct {
	CampaignID    uint            `json:"campaign_id"`
	Amount        decimal.Decimal `json:"amount"`
	Message       string          `json:"message"`
	PaymentMethod string          `json:"payment_method"`
}

// Create records a donation from the donor profile of userID. The
// donation date is always set server side to the current day.
func (s *DonationService) Create(ctx context.Context, userID uint, input *DonationInput) (*models.Donation, error) {
	// 1. Validate amount and payment method
	if !input.Amount.IsPositive() {
		return nil, ErrInvalidDonationAmount
	}
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	// 2. Campaign must exist and be accepting donations
	campaign, err := s.campaignRepo.GetByID(ctx, input.CampaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	switch campaign.Status {
	case models.CampaignStatusActive:
	case models.CampaignStatusCompleted:
		return nil, ErrCampaignAlreadyCompleted
	default:
		return nil, ErrCampaignNotActive
	}

	// 3. Resolve the donor profile
	donor, err := s.donorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorProfileNotFound
		}
		return nil, err
	}

	// 4. Create the donation
	donation := &models.Donation{
		CampaignID:    campaign.ID,
		DonorID:       donor.ID,
		Amount:        input.Amount,
		DonationDate:  time.Now().Truncate(24 * time.Hour),
		Message:       input.Message,
		PaymentMethod: input.PaymentMethod,
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	// 5. Roll the amount into the campaign total
	if err := s.campaignRepo.AddToRaisedAmount(ctx, campaign.ID, input.Amount.InexactFloat64()); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.MutationDonationCreated)
	log.Printf("✅ Donation recorded: %s to campaign %d by donor %d", input.Amount.String(), campaign.ID, donor.ID)

	return s.donationRepo.GetByID(ctx, donation.ID)
}

// GetByID returns a single donation
func (s *DonationService) GetByID(ctx context.Context, id uint) (*models.Donation, error) {
	key := cache.Key(cache.ResourceDonations, map[string]string{"id": strconv.FormatUint(uint64(id), 10)})
	if cached, ok := s.store.Get(key); ok {
		return cached.(*models.Donation), nil
	}

	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}

	s.store.Set(cache.ResourceDonations, key, donation)
	return donation, nil
}

// List returns donations, optionally filtered by campaign and donor
func (s *DonationService) List(ctx context.Context, campaignID, donorID uint) ([]*models.Donation, error) {
	filters := map[string]string{}
	if campaignID != 0 {
		filters["campaignId"] = strconv.FormatUint(uint64(campaignID), 10)
	}
	if donorID != 0 {
		filters["donorId"] = strconv.FormatUint(uint64(donorID), 10)
	}
	key := cache.Key(cache.ResourceDonations, filters)
	if cached, ok := s.store.Get(key); ok {
		return cached.([]*models.Donation), nil
	}

	donations, err := s.donationRepo.List(ctx, campaignID, donorID)
	if err != nil {
		return nil, err
	}

	s.store.Set(cache.ResourceDonations, key, donations)
	return donations, nil
}

// ListMine returns donations made by the donor profile of userID
func (s *DonationService) ListMine(ctx context.Context, userID uint) ([]*models.Donation, error) {
	donor, err := s.donorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorProfileNotFound
		}
		return nil, err
	}

	return s.donationRepo.List(ctx, 0, donor.ID)
}

// Delete removes a donation and subtracts its amount from the campaign
func (s *DonationService) Delete(ctx context.Context, id uint) error {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDonationNotFound
		}
		return err
	}

	if err := s.donationRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.campaignRepo.AddToRaisedAmount(ctx, donation.CampaignID, donation.Amount.Neg().InexactFloat64()); err != nil {
		return err
	}

	s.store.Invalidate(cache.MutationDonationDeleted)
	log.Printf("✅ Donation deleted: ID %d", id)

	return nil
}
