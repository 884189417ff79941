package repository

import (
	"context"
	"errors"

	"eventstay/internal/domain"

	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// FindByEnrollmentID returns the enrollment's ticket with its type, or nil.
// When an enrollment carries more than one ticket the lowest id is used.
func (r *TicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	var t domain.Ticket
	err := r.db.WithContext(ctx).
		Preload("TicketType").
		Where("enrollment_id = ?", enrollmentID).
		Order("id").
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
