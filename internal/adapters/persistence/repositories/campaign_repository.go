package repositories

import (
	"context"

	"donfundy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// campaignRepository implements CampaignRepository interface
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

// Create creates a new campaign
func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

// GetByID gets a campaign by ID with its creator preloaded
func (r *campaignRepository) GetByID(ctx context.Context, id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("id = ?", id).
		First(&campaign).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// List lists campaigns, optionally filtered by status
func (r *campaignRepository) List(ctx context.Context, status string) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign

	query := r.db.WithContext(ctx).Preload("CreatedBy").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// ListByCreator lists campaigns created by a donor
func (r *campaignRepository) ListByCreator(ctx context.Context, donorID uint) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("created_by_id = ?", donorID).
		Order("created_at DESC").
		Find(&campaigns).Error
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Update updates a campaign
func (r *campaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	return r.db.WithContext(ctx).Save(campaign).Error
}

// Delete soft deletes a campaign
func (r *campaignRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Campaign{}, id).Error
}

// AddToRaisedAmount atomically adds amount to a campaign's raised total and
// flips an ACTIVE campaign to COMPLETED when the goal is reached. A negative
// amount (donation removal) never drops the total below zero.
func (r *campaignRepository) AddToRaisedAmount(ctx context.Context, id uint, amount float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var campaign models.Campaign
		if err := tx.Where("id = ?", id).First(&campaign).Error; err != nil {
			return err
		}

		newRaised := campaign.RaisedAmount + amount
		if newRaised < 0 {
			newRaised = 0
		}
		campaign.RaisedAmount = newRaised

		if newRaised >= campaign.GoalAmount && campaign.Status == models.CampaignStatusActive {
			campaign.Status = models.CampaignStatusCompleted
		}

		return tx.Save(&campaign).Error
	})
}
