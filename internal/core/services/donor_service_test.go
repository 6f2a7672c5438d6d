package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"donfundy/internal/adapters/persistence/models"
	"donfundy/internal/cache"

	"gorm.io/gorm"
)

// fakeDonorRepo counts repository hits so cache behavior is observable
type fakeDonorRepo struct {
	donors     map[uint]*models.Donor
	getByID    int
	getByUser  int
	list       int
	lastUpdate *models.Donor
}

func newFakeDonorRepo(donors ...*models.Donor) *fakeDonorRepo {
	repo := &fakeDonorRepo{donors: make(map[uint]*models.Donor)}
	for _, d := range donors {
		repo.donors[d.ID] = d
	}
	return repo
}

func (r *fakeDonorRepo) Create(ctx context.Context, donor *models.Donor) error {
	donor.ID = uint(len(r.donors) + 1)
	r.donors[donor.ID] = donor
	return nil
}

func (r *fakeDonorRepo) GetByID(ctx context.Context, id uint) (*models.Donor, error) {
	r.getByID++
	if d, ok := r.donors[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDonorRepo) GetByUserID(ctx context.Context, userID uint) (*models.Donor, error) {
	r.getByUser++
	for _, d := range r.donors {
		if d.UserID != nil && *d.UserID == userID {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDonorRepo) GetByEmail(ctx context.Context, email string) (*models.Donor, error) {
	for _, d := range r.donors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDonorRepo) Update(ctx context.Context, donor *models.Donor) error {
	r.lastUpdate = donor
	r.donors[donor.ID] = donor
	return nil
}

func (r *fakeDonorRepo) Delete(ctx context.Context, id uint) error {
	delete(r.donors, id)
	return nil
}

func (r *fakeDonorRepo) List(ctx context.Context, offset, limit int) ([]*models.Donor, int64, error) {
	r.list++
	donors := make([]*models.Donor, 0, len(r.donors))
	for _, d := range r.donors {
		donors = append(donors, d)
	}
	return donors, int64(len(donors)), nil
}

func newDonorTestStore(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.NewStore(100, time.Minute)
	if err != nil {
		t.Fatalf("cache store: %v", err)
	}
	return store
}

func TestDonorGetByIDCachesReads(t *testing.T) {
	repo := newFakeDonorRepo(&models.Donor{ID: 1, FirstName: "Ana", LastName: "Reyes", Email: "ana@example.com"})
	service := NewDonorService(repo, newDonorTestStore(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := service.GetByID(ctx, 1); err != nil {
			t.Fatalf("get donor: %v", err)
		}
	}

	if repo.getByID != 1 {
		t.Fatalf("expected 1 repository hit, got %d", repo.getByID)
	}
}

func TestDonorUpdateInvalidatesCachedReads(t *testing.T) {
	repo := newFakeDonorRepo(&models.Donor{ID: 1, FirstName: "Ana", LastName: "Reyes", Email: "ana@example.com"})
	service := NewDonorService(repo, newDonorTestStore(t))
	ctx := context.Background()

	if _, err := service.GetByID(ctx, 1); err != nil {
		t.Fatalf("get donor: %v", err)
	}
	if _, _, err := service.List(ctx, 0, 10); err != nil {
		t.Fatalf("list donors: %v", err)
	}

	if _, err := service.Update(ctx, 1, &DonorInput{FirstName: "Anna"}); err != nil {
		t.Fatalf("update donor: %v", err)
	}

	if _, err := service.GetByID(ctx, 1); err != nil {
		t.Fatalf("get donor after update: %v", err)
	}
	if _, _, err := service.List(ctx, 0, 10); err != nil {
		t.Fatalf("list donors after update: %v", err)
	}

	// Update hits GetByID once itself; both post-update reads must miss the cache
	if repo.getByID != 3 {
		t.Fatalf("expected 3 GetByID repository hits, got %d", repo.getByID)
	}
	if repo.list != 2 {
		t.Fatalf("expected 2 List repository hits, got %d", repo.list)
	}
}

func TestDonorGetByUserIDCachesReads(t *testing.T) {
	userID := uint(7)
	repo := newFakeDonorRepo(&models.Donor{ID: 2, UserID: &userID, FirstName: "Luis", LastName: "Ortega", Email: "luis@example.com"})
	service := NewDonorService(repo, newDonorTestStore(t))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := service.GetByUserID(ctx, userID); err != nil {
			t.Fatalf("get donor by user: %v", err)
		}
	}

	if repo.getByUser != 1 {
		t.Fatalf("expected 1 repository hit, got %d", repo.getByUser)
	}
}

func TestDonorCreate(t *testing.T) {
	repo := newFakeDonorRepo()
	service := NewDonorService(repo, newDonorTestStore(t))
	ctx := context.Background()

	donor, err := service.Create(ctx, &DonorInput{
		FirstName: "Maria",
		LastName:  "Lopez",
		Email:     "Maria@Example.com",
	})
	if err != nil {
		t.Fatalf("create donor: %v", err)
	}
	if donor.Email != "maria@example.com" {
		t.Fatalf("email not normalized: %s", donor.Email)
	}

	if _, err := service.Create(ctx, &DonorInput{FirstName: "Maria", LastName: "Lopez", Email: "maria@example.com"}); !errors.Is(err, ErrDonorEmailExists) {
		t.Fatalf("duplicate email: got %v, want %v", err, ErrDonorEmailExists)
	}
}

func TestDonorCreateValidation(t *testing.T) {
	repo := newFakeDonorRepo()
	service := NewDonorService(repo, newDonorTestStore(t))
	ctx := context.Background()

	tests := []struct {
		name    string
		input   *DonorInput
		wantErr error
	}{
		{"missing first name", &DonorInput{LastName: "Lopez", Email: "a@b.com"}, ErrDonorNameRequired},
		{"missing last name", &DonorInput{FirstName: "Maria", Email: "a@b.com"}, ErrDonorNameRequired},
		{"missing email", &DonorInput{FirstName: "Maria", LastName: "Lopez"}, ErrDonorEmailRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Create(ctx, tt.input); !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
