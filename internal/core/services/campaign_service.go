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

	"gorm.io/gorm"
)

// Campaign errors
var (
	ErrCampaignNotFound           = errors.New("campaign not found")
	ErrCampaignNameRequired       = errors.New("campaign name is required")
	ErrInvalidGoalAmount          = errors.New("goal amount must be greater than zero")
	ErrStartDateRequired          = errors.New("start date is required")
	ErrInvalidDateRange           = errors.New("end date cannot be before start date")
	ErrInvalidCampaignStatus      = errors.New("invalid campaign status")
	ErrUnauthorizedCampaignAccess = errors.New("campaign belongs to another user")
	ErrDonorProfileNotFound       = errors.New("donor profile not found for user")
)

// CampaignService handles campaign business logic
type CampaignService struct {
	campaignRepo repositories.CampaignRepository
	donorRepo    repositories.DonorRepository
	store        *cache.Store
}

// NewCampaignService creates a new campaign service
func NewCampaignService(
	campaignRepo repositories.CampaignRepository,
	donorRepo repositories.DonorRepository,
	store *cache.Store,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		donorRepo:    donorRepo,
		store:        store,
	}
}

// CampaignInput represents campaign create/update input
type CampaignInput struct {
	Name        string
	Description string
	GoalAmount  float64
	StartDate   time.Time
	EndDate     *time.Time
	Status      string
}

func validateCampaignInput(input *CampaignInput) error {
	if input.Name == "" {
		return ErrCampaignNameRequired
	}
	if input.GoalAmount <= 0 {
		return ErrInvalidGoalAmount
	}
	if input.StartDate.IsZero() {
		return ErrStartDateRequired
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return ErrInvalidDateRange
	}
	if input.Status != "" && !models.ValidCampaignStatus(input.Status) {
		return ErrInvalidCampaignStatus
	}
	return nil
}

// Create creates a campaign owned by the donor profile of userID
func (s *CampaignService) Create(ctx context.Context, userID uint, input *CampaignInput) (*models.Campaign, error) {
	if err := validateCampaignInput(input); err != nil {
		return nil, err
	}

	donor, err := s.donorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorProfileNotFound
		}
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.CampaignStatusPending
	}

	campaign := &models.Campaign{
		Name:        input.Name,
		Description: input.Description,
		GoalAmount:  input.GoalAmount,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      status,
		CreatedByID: &donor.ID,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.MutationCampaignCreated)
	log.Printf("✅ Campaign created: %s (ID: %d)", campaign.Name, campaign.ID)

	return s.campaignRepo.GetByID(ctx, campaign.ID)
}

// GetByID returns a single campaign
func (s *CampaignService) GetByID(ctx context.Context, id uint) (*models.Campaign, error) {
	key := cache.Key(cache.ResourceCampaigns, map[string]string{"id": strconv.FormatUint(uint64(id), 10)})
	if cached, ok := s.store.Get(key); ok {
		return cached.(*models.Campaign), nil
	}

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}

	s.store.Set(cache.ResourceCampaigns, key, campaign)
	return campaign, nil
}

// List returns campaigns, optionally filtered by status
func (s *CampaignService) List(ctx context.Context, status string) ([]*models.Campaign, error) {
	if status != "" && !models.ValidCampaignStatus(status) {
		return nil, ErrInvalidCampaignStatus
	}

	filters := map[string]string{}
	if status != "" {
		filters["status"] = status
	}
	key := cache.Key(cache.ResourceCampaigns, filters)
	if cached, ok := s.store.Get(key); ok {
		return cached.([]*models.Campaign), nil
	}

	campaigns, err := s.campaignRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	s.store.Set(cache.ResourceCampaigns, key, campaigns)
	return campaigns, nil
}

// ListMine returns campaigns created by the donor profile of userID
func (s *CampaignService) ListMine(ctx context.Context, userID uint) ([]*models.Campaign, error) {
	donor, err := s.donorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorProfileNotFound
		}
		return nil, err
	}

	return s.campaignRepo.ListByCreator(ctx, donor.ID)
}

// Update updates a campaign. Only the owner or an admin may update it.
func (s *CampaignService) Update(ctx context.Context, id, userID uint, isAdmin bool, input *CampaignInput) (*models.Campaign, error) {
	if err := validateCampaignInput(input); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}

	if err := s.authorize(ctx, campaign, userID, isAdmin); err != nil {
		return nil, err
	}

	campaign.Name = input.Name
	campaign.Description = input.Description
	campaign.GoalAmount = input.GoalAmount
	campaign.StartDate = input.StartDate
	campaign.EndDate = input.EndDate
	if input.Status != "" {
		campaign.Status = input.Status
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.MutationCampaignUpdated)
	log.Printf("✅ Campaign updated: %s (ID: %d)", campaign.Name, campaign.ID)

	return s.campaignRepo.GetByID(ctx, campaign.ID)
}

// Delete removes a campaign. Only the owner or an admin may delete it.
func (s *CampaignService) Delete(ctx context.Context, id, userID uint, isAdmin bool) error {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampaignNotFound
		}
		return err
	}

	if err := s.authorize(ctx, campaign, userID, isAdmin); err != nil {
		return err
	}

	if err := s.campaignRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.store.Invalidate(cache.MutationCampaignDeleted)
	log.Printf("✅ Campaign deleted: ID %d", id)

	return nil
}

// authorize checks that userID owns the campaign, unless isAdmin
func (s *CampaignService) authorize(ctx context.Context, campaign *models.Campaign, userID uint, isAdmin bool) error {
	if isAdmin {
		return nil
	}
	if campaign.CreatedByID == nil {
		return ErrUnauthorizedCampaignAccess
	}

	donor, err := s.donorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnauthorizedCampaignAccess
		}
		return err
	}

	if *campaign.CreatedByID != donor.ID {
		return ErrUnauthorizedCampaignAccess
	}
	return nil
}
