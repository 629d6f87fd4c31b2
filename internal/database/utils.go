package database

import (
	"context"

	"gorm.io/gorm"
)

// CountEntities returns the number of rows for the entity type T.
func CountEntities[T any](ctx context.Context) (int64, error) {
	db, err := GetDB()
	if err != nil {
		return 0, err
	}
	var zero T
	var count int64
	if err := db.WithContext(ctx).Model(&zero).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// WithTx allows running a function within a transaction using the shared DB.
func WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db, err := GetDB()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(fn)
}
