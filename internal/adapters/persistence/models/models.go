package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// Roles
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'USER'" json:"role"`
	FirstName string         `gorm:"size:100" json:"first_name"`
	LastName  string         `gorm:"size:100" json:"last_name"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Donor Table
// ============================================================

// Donor represents donors table. A donor may or may not be linked
// to a user account (bulk-imported donors have no account).
type Donor struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      *uint          `gorm:"uniqueIndex" json:"user_id"`
	FirstName   string         `gorm:"size:100;not null" json:"first_name"`
	LastName    string         `gorm:"size:100;not null" json:"last_name"`
	Email       string         `gorm:"size:100;not null;index" json:"email"`
	PhoneNumber string         `gorm:"size:30" json:"phone_number"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Donor) TableName() string {
	return "donors"
}

// FullName returns the donor's display name
func (d *Donor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// DonorResponse DTO
type DonorResponse struct {
	ID          uint   `json:"id"`
	UserID      *uint  `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func (d *Donor) ToResponse() *DonorResponse {
	return &DonorResponse{
		ID:          d.ID,
		UserID:      d.UserID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
	}
}

// ============================================================
// Campaign Table
// ============================================================

// Campaign statuses
const (
	CampaignStatusPending   = "PENDING"
	CampaignStatusActive    = "ACTIVE"
	CampaignStatusCompleted = "COMPLETED"
	CampaignStatusCancelled = "CANCELLED"
)

// ValidCampaignStatus reports whether s is one of the known statuses
func ValidCampaignStatus(s string) bool {
	switch s {
	case CampaignStatusPending, CampaignStatusActive, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

// Campaign represents campaigns table
type Campaign struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:200;not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	GoalAmount   float64        `gorm:"type:decimal(15,2);not null" json:"goal_amount"`
	RaisedAmount float64        `gorm:"type:decimal(15,2);default:0" json:"raised_amount"`
	StartDate    time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate      *time.Time     `gorm:"type:date" json:"end_date"`
	Status       string         `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CreatedByID  *uint          `gorm:"index" json:"created_by_id"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	CreatedBy *Donor `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// ProgressPercentage returns raised/goal as a percentage capped at 100
func (c *Campaign) ProgressPercentage() float64 {
	if c.GoalAmount <= 0 {
		return 0
	}
	pct := c.RaisedAmount / c.GoalAmount * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// CampaignResponse DTO
type CampaignResponse struct {
	ID                 uint       `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	GoalAmount         float64    `json:"goal_amount"`
	RaisedAmount       float64    `json:"raised_amount"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	Status             string     `json:"status"`
	ProgressPercentage float64    `json:"progress_percentage"`
	CreatedByID        *uint      `json:"created_by_id"`
	CreatedByName      string     `json:"created_by_name,omitempty"`
	CreatedByEmail     string     `json:"created_by_email,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (c *Campaign) ToResponse() *CampaignResponse {
	resp := &CampaignResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        c.Description,
		GoalAmount:         c.GoalAmount,
		RaisedAmount:       c.RaisedAmount,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		Status:             c.Status,
		ProgressPercentage: c.ProgressPercentage(),
		CreatedByID:        c.CreatedByID,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}

	if c.CreatedBy != nil {
		resp.CreatedByName = c.CreatedBy.FullName()
		resp.CreatedByEmail = c.CreatedBy.Email
	}

	return resp
}

// ============================================================
// Donation Table
// ============================================================

// Payment methods
const (
	PaymentMethodCard         = "CARD"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
	PaymentMethodPaypal       = "PAYPAL"
)

// ValidPaymentMethod reports whether m is one of the known payment methods
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodPaypal:
		return true
	}
	return false
}

// Donation represents donations table
type Donation struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CampaignID    uint            `gorm:"not null;index" json:"campaign_id"`
	DonorID       uint            `gorm:"not null;index" json:"donor_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	DonationDate  time.Time       `gorm:"type:date;not null" json:"donation_date"`
	Message       string          `gorm:"type:text" json:"message,omitempty"`
	PaymentMethod string          `gorm:"size:20;not null" json:"payment_method"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	Campaign *Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	Donor    *Donor    `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}

// DonationResponse DTO
type DonationResponse struct {
	ID            uint            `json:"id"`
	CampaignID    uint            `json:"campaign_id"`
	CampaignName  string          `json:"campaign_name,omitempty"`
	DonorID       uint            `json:"donor_id"`
	DonorName     string          `json:"donor_name,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	DonationDate  time.Time       `json:"donation_date"`
	Message       string          `json:"message,omitempty"`
	PaymentMethod string          `json:"payment_method"`
}

func (d *Donation) ToResponse() *DonationResponse {
	resp := &DonationResponse{
		ID:            d.ID,
		CampaignID:    d.CampaignID,
		DonorID:       d.DonorID,
		Amount:        d.Amount,
		DonationDate:  d.DonationDate,
		Message:       d.Message,
		PaymentMethod: d.PaymentMethod,
	}

	if d.Campaign != nil {
		resp.CampaignName = d.Campaign.Name
	}
	if d.Donor != nil {
		resp.DonorName = d.Donor.FullName()
	}

	return resp
}

// ============================================================
// Bulk Upload Result
// ============================================================

// BulkDonationResult summarizes a CSV import: a failure count above zero
// with successes is a partial-success report, not an error.
type BulkDonationResult struct {
	TotalRows    int      `json:"totalRows"`
	SuccessCount int      `json:"successCount"`
	FailureCount int      `json:"failureCount"`
	Errors       []string `json:"errors"`
}

// NewBulkDonationResult creates an empty result with a non-nil error list
func NewBulkDonationResult() *BulkDonationResult {
	return &BulkDonationResult{Errors: []string{}}
}

// AddError records a per-row error message
func (r *BulkDonationResult) AddError(rowNumber int, message string) {
	r.Errors = append(r.Errors, fmt.Sprintf("Row %d: %s", rowNumber, message))
	r.FailureCount++
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Donor{},
		&Campaign{},
		&Donation{},
	)
}
