package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"donfundy/internal/adapters/persistence/models"
	"donfundy/internal/adapters/persistence/repositories"
	"donfundy/internal/cache"

	"gorm.io/gorm"
)

// Donor errors
var (
	ErrDonorNotFound      = errors.New("donor not found")
	ErrDonorNameRequired  = errors.New("donor first and last name are required")
	ErrDonorEmailRequired = errors.New("donor email is required")
	ErrDonorEmailExists   = errors.New("donor email already exists")
)

// DonorService handles donor business logic
type DonorService struct {
	donorRepo repositories.DonorRepository
	store     *cache.Store
}

// NewDonorService creates a new donor service
func NewDonorService(donorRepo repositories.DonorRepository, store *cache.Store) *DonorService {
	return &DonorService{
		donorRepo: donorRepo,
		store:     store,
	}
}

// DonorInput represents donor create/update input
type DonorInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// donorPage is the cached shape of a donor listing
type donorPage struct {
	Donors []*models.Donor
	Total  int64
}

func validateDonorInput(input *DonorInput) error {
	if input.FirstName == "" || input.LastName == "" {
		return ErrDonorNameRequired
	}
	if input.Email == "" {
		return ErrDonorEmailRequired
	}
	return nil
}

// Create creates a standalone donor profile
func (s *DonorService) Create(ctx context.Context, input *DonorInput) (*models.Donor, error) {
	if err := validateDonorInput(input); err != nil {
		return nil, err
	}

	email := strings.ToLower(input.Email)
	if _, err := s.donorRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrDonorEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	donor := &models.Donor{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       email,
		PhoneNumber: input.PhoneNumber,
	}

	if err := s.donorRepo.Create(ctx, donor); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.MutationDonorCreated)
	log.Printf("✅ Donor created: %s (ID: %d)", donor.Email, donor.ID)

	return donor, nil
}

// GetByID returns a single donor
func (s *DonorService) GetByID(ctx context.Context, id uint) (*models.Donor, error) {
	key := cache.Key(cache.ResourceDonors, map[string]string{"id": strconv.FormatUint(uint64(id), 10)})
	if cached, ok := s.store.Get(key); ok {
		return cached.(*models.Donor), nil
	}

	donor, err := s.donorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}

	s.store.Set(cache.ResourceDonors, key, donor)
	return donor, nil
}

// GetByUserID returns the donor profile linked to a user account
func (s *DonorService) GetByUserID(ctx context.Context, userID uint) (*models.Donor, error) {
	key := cache.Key(cache.ResourceDonors, map[string]string{"userId": strconv.FormatUint(uint64(userID), 10)})
	if cached, ok := s.store.Get(key); ok {
		return cached.(*models.Donor), nil
	}

	donor, err := s.donorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorProfileNotFound
		}
		return nil, err
	}

	s.store.Set(cache.ResourceDonors, key, donor)
	return donor, nil
}

// List returns a page of donors with the total count
func (s *DonorService) List(ctx context.Context, offset, limit int) ([]*models.Donor, int64, error) {
	key := cache.Key(cache.ResourceDonors, map[string]string{
		"offset": strconv.Itoa(offset),
		"limit":  strconv.Itoa(limit),
	})
	if cached, ok := s.store.Get(key); ok {
		page := cached.(*donorPage)
		return page.Donors, page.Total, nil
	}

	donors, total, err := s.donorRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	s.store.Set(cache.ResourceDonors, key, &donorPage{Donors: donors, Total: total})
	return donors, total, nil
}

// Update updates a donor profile
func (s *DonorService) Update(ctx context.Context, id uint, input *DonorInput) (*models.Donor, error) {
	donor, err := s.donorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}

	if input.FirstName != "" {
		donor.FirstName = input.FirstName
	}
	if input.LastName != "" {
		donor.LastName = input.LastName
	}
	if input.Email != "" {
		donor.Email = strings.ToLower(input.Email)
	}
	donor.PhoneNumber = input.PhoneNumber

	if err := s.donorRepo.Update(ctx, donor); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.MutationDonorUpdated)
	log.Printf("✅ Donor updated: ID %d", donor.ID)

	return donor, nil
}

// Delete removes a donor profile
func (s *DonorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.donorRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDonorNotFound
		}
		return err
	}

	if err := s.donorRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.store.Invalidate(cache.MutationDonorDeleted)
	log.Printf("✅ Donor deleted: ID %d", id)

	return nil
}
