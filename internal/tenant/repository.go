package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines storage operations for Tenant records. Every error it
// returns wraps one of the common error kinds.
type Repository interface {
	Insert(ctx context.Context, t *Tenant) error
	FindByID(ctx context.Context, id uint) (*Tenant, error)
	FindActiveByDomain(ctx context.Context, domain string) (*Tenant, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	UsageReport(ctx context.Context) ([]UsageRow, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository constructs a Repository backed by the given DB handle.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Insert(ctx context.Context, t *Tenant) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("tenant insert: %w: domain %q already active", common.ErrConflict, t.Domain)
		}
		return fmt.Errorf("tenant insert: %w: %v", common.ErrStorage, err)
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uint) (*Tenant, error) {
	var t Tenant
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tenant %d: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("tenant lookup: %w: %v", common.ErrStorage, err)
	}
	return &t, nil
}

func (r *gormRepository) FindActiveByDomain(ctx context.Context, domain string) (*Tenant, error) {
	var t Tenant
	err := r.db.WithContext(ctx).
		Where("domain = ? AND status = ?", domain, StatusActive).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tenant for domain %q: %w", domain, common.ErrNotFound)
		}
		return nil, fmt.Errorf("tenant resolve: %w: %v", common.ErrStorage, err)
	}
	return &t, nil
}

func (r *gormRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).
		Model(&Tenant{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		// Reactivating a tenant whose domain was taken over in the
		// meantime hits the partial unique index.
		if isDuplicateKey(res.Error) {
			return fmt.Errorf("tenant status update: %w: domain already active", common.ErrConflict)
		}
		return fmt.Errorf("tenant status update: %w: %v", common.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("tenant %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// UsageReport fans out tenant → users with a left join so tenants without
// users keep a row with zero counts. The tenant id is the documented
// tie-break for equal user counts.
func (r *gormRepository) UsageReport(ctx context.Context) ([]UsageRow, error) {
	var rows []UsageRow
	err := r.db.WithContext(ctx).
		Table("tenants AS t").
		Select(`t.id AS tenant_id,
			t.name AS tenant_name,
			t.domain AS domain,
			COUNT(u.id) AS user_count,
			COALESCE(SUM(u.posts_count), 0) AS posts_count,
			COALESCE(SUM(u.comments_count), 0) AS comments_count,
			t.created_at AS created_at`).
		Joins("LEFT JOIN users u ON u.tenant_id = t.id").
		Group("t.id, t.name, t.domain, t.created_at").
		Order("user_count DESC, t.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("tenant usage report: %w: %v", common.ErrStorage, err)
	}
	return rows, nil
}

// isDuplicateKey reports whether err is a unique-constraint violation. The
// postgres driver translates these to gorm.ErrDuplicatedKey; the sqlite
// driver used in tests reports them as plain constraint errors.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
