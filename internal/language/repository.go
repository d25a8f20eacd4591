package language

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines storage operations for the language registry and its
// translation table.
type Repository interface {
	Insert(ctx context.Context, l *Language) error
	FindByCode(ctx context.Context, code string) (*Language, error)
	ListActive(ctx context.Context) ([]Language, error)
	ListActiveRTL(ctx context.Context) ([]Language, error)
	SetActive(ctx context.Context, code string, active bool) error
	FindTranslation(ctx context.Context, key, code string) (*Translation, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository constructs a Repository backed by the given DB handle.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Insert(ctx context.Context, l *Language) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("language insert: %w: code %q already registered", common.ErrConflict, l.Code)
		}
		return fmt.Errorf("language insert: %w: %v", common.ErrStorage, err)
	}
	return nil
}

func (r *gormRepository) FindByCode(ctx context.Context, code string) (*Language, error) {
	var l Language
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("language %q: %w", code, common.ErrNotFound)
		}
		return nil, fmt.Errorf("language lookup: %w: %v", common.ErrStorage, err)
	}
	return &l, nil
}

func (r *gormRepository) ListActive(ctx context.Context) ([]Language, error) {
	var langs []Language
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&langs).Error
	if err != nil {
		return nil, fmt.Errorf("language list: %w: %v", common.ErrStorage, err)
	}
	return langs, nil
}

func (r *gormRepository) ListActiveRTL(ctx context.Context) ([]Language, error) {
	var langs []Language
	err := r.db.WithContext(ctx).
		Where("is_rtl = ? AND is_active = ?", true, true).
		Order("name ASC").
		Find(&langs).Error
	if err != nil {
		return nil, fmt.Errorf("rtl language list: %w: %v", common.ErrStorage, err)
	}
	return langs, nil
}

func (r *gormRepository) SetActive(ctx context.Context, code string, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&Language{}).
		Where("code = ?", code).
		Update("is_active", active)
	if res.Error != nil {
		return fmt.Errorf("language toggle: %w: %v", common.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("language %q: %w", code, common.ErrNotFound)
	}
	return nil
}

func (r *gormRepository) FindTranslation(ctx context.Context, key, code string) (*Translation, error) {
	var t Translation
	err := r.db.WithContext(ctx).
		Where("key = ? AND code = ?", key, code).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("translation %q/%q: %w", key, code, common.ErrNotFound)
		}
		return nil, fmt.Errorf("translation lookup: %w: %v", common.ErrStorage, err)
	}
	return &t, nil
}
