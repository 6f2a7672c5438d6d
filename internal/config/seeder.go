package config

import (
	"log"

	"donfundy/internal/adapters/persistence/models"
	"donfundy/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedAnonymousDonor(); err != nil {
		log.Printf("⚠️ Anonymous donor seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds default admin user with a linked donor profile.
// This is for development/testing only.
// In production, create admin through secure process.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:     "admin@donfundy.com",
		Password:  hashedPassword,
		Role:      models.RoleAdmin,
		FirstName: "Platform",
		LastName:  "Admin",
		IsActive:  true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	donor := &models.Donor{
		UserID:    &admin.ID,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     admin.Email,
	}
	if err := s.db.Create(donor).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

// seedAnonymousDonor seeds the shared donor used for anonymous rows in
// bulk CSV imports
func (s *Seeder) seedAnonymousDonor() error {
	var count int64
	s.db.Model(&models.Donor{}).Where("email = ?", "anonymous@donfundy.com").Count(&count)
	if count > 0 {
		return nil
	}

	donor := &models.Donor{
		FirstName: "Anonymous",
		LastName:  "Donor",
		Email:     "anonymous@donfundy.com",
	}
	if err := s.db.Create(donor).Error; err != nil {
		return err
	}

	log.Println("✅ Anonymous donor created")
	return nil
}
