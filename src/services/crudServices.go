package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keyed is satisfied by pointers to models with a store generated integer key.
type Keyed[T any] interface {
	*T
	PrimaryKey() int
	SetPrimaryKey(int)
}

// CrudService performs the single-row persistence operations of one entity.
// Every call is one statement against the store, bounded by timeout.
type CrudService[T any, P Keyed[T]] struct {
	db      *gorm.DB
	entity  string
	timeout time.Duration
}

// NewCrudService creates a new instance of CrudService for the given entity name
func NewCrudService[T any, P Keyed[T]](db *gorm.DB, entity string, timeout time.Duration) *CrudService[T, P] {
	return &CrudService[T, P]{db: db, entity: entity, timeout: timeout}
}

func (s *CrudService[T, P]) Entity() string {
	return s.entity
}

// List retrieves every record ordered by primary key. An empty table yields an empty slice.
func (s *CrudService[T, P]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	records := []T{}
	result := s.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.PrimaryColumn}).
		Find(&records)
	if result.Error != nil {
		return nil, s.fail("list", result.Error)
	}
	return records, nil
}

// Get retrieves a record by ID
func (s *CrudService[T, P]) Get(ctx context.Context, id int) (P, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var record T
	result := s.db.WithContext(ctx).First(&record, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.fail("get", result.Error)
	}
	return &record, nil
}

// Create inserts the record; the key is always generated by the store.
func (s *CrudService[T, P]) Create(ctx context.Context, record P) (P, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	record.SetPrimaryKey(0)
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, s.fail("create", err)
	}
	return record, nil
}

// Update overwrites every column of the row with the given id. The WHERE clause
// carries the id, so a row deleted concurrently yields ErrNotFound rather than
// being recreated.
func (s *CrudService[T, P]) Update(ctx context.Context, id int, record P) (P, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	record.SetPrimaryKey(id)
	result := s.db.WithContext(ctx).Model(record).Select("*").Updates(record)
	if result.Error != nil {
		return nil, s.fail("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return record, nil
}

// Delete removes the row with the given id and nothing else.
func (s *CrudService[T, P]) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result := s.db.WithContext(ctx).Delete(P(new(T)), id)
	if result.Error != nil {
		return s.fail("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CrudService[T, P]) fail(op string, err error) error {
	return &PersistenceError{Op: op, Entity: s.entity, Err: err}
}
