package repositories

import (
	"context"

	"donfundy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// donationRepository implements DonationRepository interface
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

// Create creates a new donation
func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

// CreateBatch inserts donations in batches (bulk import)
func (r *donationRepository) CreateBatch(ctx context.Context, donations []*models.Donation) error {
	if len(donations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(donations, 100).Error
}

// GetByID gets a donation by ID with campaign and donor preloaded
func (r *donationRepository) GetByID(ctx context.Context, id uint) (*models.Donation, error) {
	var donation models.Donation
	err := r.db.WithContext(ctx).
		Preload("Campaign").
		Preload("Donor").
		Where("id = ?", id).
		First(&donation).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// List lists donations, optionally filtered by campaign and/or donor
func (r *donationRepository) List(ctx context.Context, campaignID, donorID uint) ([]*models.Donation, error) {
	var donations []*models.Donation

	query := r.db.WithContext(ctx).
		Preload("Campaign").
		Preload("Donor").
		Order("donation_date DESC, id DESC")

	if campaignID != 0 {
		query = query.Where("campaign_id = ?", campaignID)
	}
	if donorID != 0 {
		query = query.Where("donor_id = ?", donorID)
	}

	if err := query.Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// Delete soft deletes a donation
func (r *donationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Donation{}, id).Error
}
