package services

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DashboardService handles dashboard operations
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// AdminDashboardData represents admin dashboard data
type AdminDashboardData struct {
	// People
	TotalUsers  int64 `json:"total_users"`
	TotalDonors int64 `json:"total_donors"`

	// Campaign Statistics
	TotalCampaigns     int64 `json:"total_campaigns"`
	ActiveCampaigns    int64 `json:"active_campaigns"`
	CompletedCampaigns int64 `json:"completed_campaigns"`

	// Donation Statistics
	TotalDonations int64   `json:"total_donations"`
	TotalRaised    float64 `json:"total_raised"`

	// Monthly Statistics
	DonationsThisMonth int64   `json:"donations_this_month"`
	AmountThisMonth    float64 `json:"amount_this_month"`

	// Recent Activity
	RecentDonations []DonationSummary `json:"recent_donations"`

	// Top Campaigns by amount raised
	TopCampaigns []CampaignStats `json:"top_campaigns"`
}

// DonationSummary represents donation summary
type DonationSummary struct {
	ID            uint      `json:"id"`
	CampaignName  string    `json:"campaign_name"`
	DonorName     string    `json:"donor_name"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// CampaignStats represents per-campaign statistics
type CampaignStats struct {
	CampaignID     uint    `json:"campaign_id"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	GoalAmount     float64 `json:"goal_amount"`
	RaisedAmount   float64 `json:"raised_amount"`
	TotalDonations int64   `json:"total_donations"`
}

// GetAdminDashboard returns admin dashboard data
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	data := &AdminDashboardData{}

	// People counts
	s.db.WithContext(ctx).Table("users").Where("deleted_at IS NULL").Count(&data.TotalUsers)
	s.db.WithContext(ctx).Table("donors").Where("deleted_at IS NULL").Count(&data.TotalDonors)

	// Campaign counts by status
	s.db.WithContext(ctx).Table("campaigns").Where("deleted_at IS NULL").Count(&data.TotalCampaigns)
	s.db.WithContext(ctx).Table("campaigns").Where("status = ? AND deleted_at IS NULL", "ACTIVE").Count(&data.ActiveCampaigns)
	s.db.WithContext(ctx).Table("campaigns").Where("status = ? AND deleted_at IS NULL", "COMPLETED").Count(&data.CompletedCampaigns)

	// Donation totals
	s.db.WithContext(ctx).Table("donations").Where("deleted_at IS NULL").Count(&data.TotalDonations)

	s.db.WithContext(ctx).Table("donations").
		Where("deleted_at IS NULL").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalRaised)

	// This month statistics
	startOfMonth := time.Now().AddDate(0, 0, -time.Now().Day()+1).Truncate(24 * time.Hour)
	s.db.WithContext(ctx).Table("donations").
		Where("created_at >= ? AND deleted_at IS NULL", startOfMonth).
		Count(&data.DonationsThisMonth)

	s.db.WithContext(ctx).Table("donations").
		Where("created_at >= ? AND deleted_at IS NULL", startOfMonth).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.AmountThisMonth)

	// Recent donations
	var recentDonations []struct {
		ID            uint
		CampaignName  string
		DonorName     string
		Amount        float64
		PaymentMethod string
		CreatedAt     time.Time
	}
	s.db.WithContext(ctx).Table("donations").
		Select("donations.id, campaigns.name as campaign_name, CONCAT(donors.first_name, ' ', donors.last_name) as donor_name, donations.amount, donations.payment_method, donations.created_at").
		Joins("LEFT JOIN campaigns ON donations.campaign_id = campaigns.id").
		Joins("LEFT JOIN donors ON donations.donor_id = donors.id").
		Where("donations.deleted_at IS NULL").
		Order("donations.created_at DESC").
		Limit(10).
		Scan(&recentDonations)

	data.RecentDonations = make([]DonationSummary, len(recentDonations))
	for i, d := range recentDonations {
		data.RecentDonations[i] = DonationSummary{
			ID:            d.ID,
			CampaignName:  d.CampaignName,
			DonorName:     d.DonorName,
			Amount:        d.Amount,
			PaymentMethod: d.PaymentMethod,
			CreatedAt:     d.CreatedAt,
		}
	}

	// Top campaigns by amount raised
	var topCampaigns []struct {
		CampaignID     uint
		Name           string
		Status         string
		GoalAmount     float64
		RaisedAmount   float64
		TotalDonations int64
	}
	s.db.WithContext(ctx).Table("campaigns").
		Select(`
			campaigns.id as campaign_id,
			campaigns.name,
			campaigns.status,
			campaigns.goal_amount,
			campaigns.raised_amount,
			COUNT(donations.id) as total_donations
		`).
		Joins("LEFT JOIN donations ON donations.campaign_id = campaigns.id AND donations.deleted_at IS NULL").
		Where("campaigns.deleted_at IS NULL").
		Group("campaigns.id, campaigns.name, campaigns.status, campaigns.goal_amount, campaigns.raised_amount").
		Order("campaigns.raised_amount DESC").
		Limit(5).
		Scan(&topCampaigns)

	data.TopCampaigns = make([]CampaignStats, len(topCampaigns))
	for i, c := range topCampaigns {
		data.TopCampaigns[i] = CampaignStats{
			CampaignID:     c.CampaignID,
			Name:           c.Name,
			Status:         c.Status,
			GoalAmount:     c.GoalAmount,
			RaisedAmount:   c.RaisedAmount,
			TotalDonations: c.TotalDonations,
		}
	}

	return data, nil
}
