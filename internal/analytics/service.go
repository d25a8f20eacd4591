package analytics

import (
	"context"
	"fmt"
	"time"

	"backend/internal/common"

	"gorm.io/gorm"
)

// Service computes read-only reports over the tenant/user/language
// relationships. It never mutates state; every result is recomputed per call
// and nothing is persisted.
type Service struct {
	db         *gorm.DB
	windowDays int
}

// NewService constructs the aggregation service. defaultWindowDays bounds
// time-bucketed queries when the caller does not supply a window.
func NewService(db *gorm.DB, defaultWindowDays int) *Service {
	if defaultWindowDays <= 0 {
		defaultWindowDays = 30
	}
	return &Service{db: db, windowDays: defaultWindowDays}
}

// LanguageUsage cross-tabulates the user base by language. The inner join
// against the registry means only observed languages produce rows, and the
// average is taken over the contributing users of each group only.
func (s *Service) LanguageUsage(ctx context.Context) ([]LanguageUsageRow, error) {
	var rows []LanguageUsageRow
	err := s.db.WithContext(ctx).
		Table("users AS u").
		Select(`l.code AS code,
			l.name AS name,
			l.native_name AS native_name,
			l.is_rtl AS is_rtl,
			COUNT(u.id) AS user_count,
			COALESCE(SUM(u.posts_count), 0) AS posts_count,
			COALESCE(SUM(u.comments_count), 0) AS comments_count,
			AVG(u.posts_count) AS avg_posts_per_user`).
		Joins("JOIN languages l ON l.code = u.language_code").
		Group("l.code, l.name, l.native_name, l.is_rtl").
		Order("user_count DESC, l.code ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("analytics.LanguageUsage: %w: %v", common.ErrStorage, err)
	}
	return rows, nil
}

// RTLUsage groups the user base by script direction and derives each group's
// share of the joined user total.
func (s *Service) RTLUsage(ctx context.Context) ([]RTLUsageRow, error) {
	var rows []RTLUsageRow
	err := s.db.WithContext(ctx).
		Table("users AS u").
		Select(`l.is_rtl AS is_rtl,
			COUNT(DISTINCT l.code) AS language_count,
			COUNT(u.id) AS user_count,
			COALESCE(SUM(u.posts_count), 0) AS posts_count,
			COALESCE(SUM(u.comments_count), 0) AS comments_count`).
		Joins("JOIN languages l ON l.code = u.language_code").
		Group("l.is_rtl").
		Order("user_count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("analytics.RTLUsage: %w: %v", common.ErrStorage, err)
	}

	var total int64
	for _, r := range rows {
		total += r.UserCount
	}
	if total > 0 {
		for i := range rows {
			rows[i].UserShare = float64(rows[i].UserCount) / float64(total) * 100
		}
	}
	return rows, nil
}

// SignupTrend buckets signups by calendar day over the last days days
// (service default when days <= 0). Days without signups are omitted and the
// most recent day comes first.
func (s *Service) SignupTrend(ctx context.Context, days int) ([]TrendPoint, error) {
	return s.signupTrend(ctx, 0, days)
}

// TenantSignupTrend is SignupTrend scoped to a single tenant.
func (s *Service) TenantSignupTrend(ctx context.Context, tenantID uint, days int) ([]TrendPoint, error) {
	return s.signupTrend(ctx, tenantID, days)
}

func (s *Service) signupTrend(ctx context.Context, tenantID uint, days int) ([]TrendPoint, error) {
	if days <= 0 {
		days = s.windowDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	query := s.db.WithContext(ctx).
		Table("users").
		Select(`DATE(created_at) AS date, COUNT(*) AS signups`).
		Where("created_at >= ?", since)
	if tenantID != 0 {
		query = query.Where("tenant_id = ?", tenantID)
	}

	var points []TrendPoint
	if err := query.Group("DATE(created_at)").Order("date DESC").Scan(&points).Error; err != nil {
		return nil, fmt.Errorf("analytics.SignupTrend: %w: %v", common.ErrStorage, err)
	}
	return points, nil
}
