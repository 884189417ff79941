package repository

import (
	"context"
	"errors"

	"eventstay/internal/domain"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// FindWithAddressByUserID returns the user's enrollment with its address
// loaded, or nil when the user never enrolled.
func (r *EnrollmentRepository) FindWithAddressByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Address").
		Where("user_id = ?", userID).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
