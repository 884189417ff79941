package repository

import (
	"context"
	"errors"

	"eventstay/internal/domain"

	"gorm.io/gorm"
)

// RoomRepository reads the hotel catalog.
type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// FindByID returns nil when the room does not exist.
func (r *RoomRepository) FindByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}
