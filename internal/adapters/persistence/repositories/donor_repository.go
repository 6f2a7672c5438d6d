package repositories

import (
	"context"

	"donfundy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// donorRepository implements DonorRepository interface
type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository creates a new donor repository
func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &donorRepository{db: db}
}

// Create creates a new donor
func (r *donorRepository) Create(ctx context.Context, donor *models.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

// GetByID gets a donor by ID
func (r *donorRepository) GetByID(ctx context.Context, id uint) (*models.Donor, error) {
	var donor models.Donor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&donor).Error
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

// GetByUserID gets the donor profile linked to a user account
func (r *donorRepository) GetByUserID(ctx context.Context, userID uint) (*models.Donor, error) {
	var donor models.Donor
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&donor).Error
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

// GetByEmail gets a donor by email
func (r *donorRepository) GetByEmail(ctx context.Context, email string) (*models.Donor, error) {
	var donor models.Donor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&donor).Error
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

// Update updates a donor
func (r *donorRepository) Update(ctx context.Context, donor *models.Donor) error {
	return r.db.WithContext(ctx).Save(donor).Error
}

// Delete soft deletes a donor
func (r *donorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Donor{}, id).Error
}

// List lists donors with pagination
func (r *donorRepository) List(ctx context.Context, offset, limit int) ([]*models.Donor, int64, error) {
	var donors []*models.Donor
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Donor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id ASC").Find(&donors).Error; err != nil {
		return nil, 0, err
	}

	return donors, total, nil
}
