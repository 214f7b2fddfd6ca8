package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spotter/internal/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePage clamps page to >= 1 and pageSize to [1, maxPageSize],
// substituting the default for non-positive sizes.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize
}

// store provides uniform CRUD over a single GORM model. Every method routes
// failures through translateError, so repositories built on it never leak a
// raw driver error. The resource name only feeds error messages.
type store[M any] struct {
	db       *gorm.DB
	resource string
}

func newStore[M any](db *gorm.DB, resource string) store[M] {
	return store[M]{db: db, resource: resource}
}

// findByID loads one record by primary key. A missing record is an error:
// the not-found case maps to a 404 via translateError.
func (s store[M]) findByID(ctx context.Context, id uuid.UUID) (*M, error) {
	var m M
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, opRead, s.resource)
	}

	return &m, nil
}

// findFirst loads the first record matching the query, or nil when none
// matches. Unlike findByID, absence is not an error here.
func (s store[M]) findFirst(ctx context.Context, query string, args ...any) (*M, error) {
	var m M
	err := s.db.WithContext(ctx).Where(query, args...).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err, opRead, s.resource)
	}

	return &m, nil
}

// findPage loads one page of records ordered by order, applying the standard
// skip of (page-1)*pageSize after clamping.
func (s store[M]) findPage(ctx context.Context, page, pageSize int, order string, conds func(*gorm.DB) *gorm.DB) ([]*M, error) {
	page, pageSize = normalizePage(page, pageSize)

	tx := s.db.WithContext(ctx)
	if conds != nil {
		tx = conds(tx)
	}

	var ms []*M
	err := tx.Order(order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&ms).Error
	if err != nil {
		return nil, translateError(err, opRead, s.resource)
	}

	return ms, nil
}

func (s store[M]) create(ctx context.Context, m *M) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err, opCreate, s.resource)
	}

	return nil
}

// save persists all fields of an existing record.
func (s store[M]) save(ctx context.Context, m *M) error {
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return translateError(err, opUpdate, s.resource)
	}

	return nil
}

func (s store[M]) deleteByID(ctx context.Context, id uuid.UUID) error {
	var m M
	result := s.db.WithContext(ctx).Delete(&m, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, opDelete, s.resource)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, opDelete, s.resource)
	}

	return nil
}

func (s store[M]) count(ctx context.Context, conds func(*gorm.DB) *gorm.DB) (int64, error) {
	var m M
	tx := s.db.WithContext(ctx).Model(&m)
	if conds != nil {
		tx = conds(tx)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, translateError(err, opRead, s.resource)
	}

	return total, nil
}
