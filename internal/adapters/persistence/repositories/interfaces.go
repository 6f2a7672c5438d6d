package repositories

import (
	"context"

	"donfundy/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// DonorRepository defines donor repository interface
type DonorRepository interface {
	Create(ctx context.Context, donor *models.Donor) error
	GetByID(ctx context.Context, id uint) (*models.Donor, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Donor, error)
	GetByEmail(ctx context.Context, email string) (*models.Donor, error)
	Update(ctx context.Context, donor *models.Donor) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Donor, int64, error)
}

// CampaignRepository defines campaign repository interface
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id uint) (*models.Campaign, error)
	List(ctx context.Context, status string) ([]*models.Campaign, error)
	ListByCreator(ctx context.Context, donorID uint) ([]*models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	Delete(ctx context.Context, id uint) error
	AddToRaisedAmount(ctx context.Context, id uint, amount float64) error
}

// DonationRepository defines donation repository interface
type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) error
	CreateBatch(ctx context.Context, donations []*models.Donation) error
	GetByID(ctx context.Context, id uint) (*models.Donation, error)
	List(ctx context.Context, campaignID, donorID uint) ([]*models.Donation, error)
	Delete(ctx context.Context, id uint) error
}
