package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// existsByEmail reports whether a row of model's table has the given email,
// compared case-insensitively.
func existsByEmail(ctx context.Context, db *gorm.DB, model interface{}, email string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(model).Where("LOWER(email) = LOWER(?)", email)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
