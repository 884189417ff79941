package repository

import (
	"context"
	"errors"
	"time"

	"eventstay/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64        `gorm:"column:id;primaryKey"`
	UserID    int64        `gorm:"column:user_id"`
	RoomID    int64        `gorm:"column:room_id"`
	Room      *domain.Room `gorm:"foreignKey:RoomID"`
	CreatedAt time.Time    `gorm:"column:created_at"`
	UpdatedAt time.Time    `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		UserID:    m.UserID,
		RoomID:    m.RoomID,
		Room:      m.Room,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FindByUserID returns the user's booking with its room, or nil when the
// user has none. Users hold at most one booking; if several rows exist the
// oldest wins.
func (r *BookingRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		Order("id").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// FindByRoomID returns the booking currently holding roomID, or nil.
func (r *BookingRepository) FindByRoomID(ctx context.Context, roomID int64) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// FindOwnedByUser is the narrow lookup used before a room change: it loads
// only the booking row, without the room.
func (r *BookingRepository) FindOwnedByUser(ctx context.Context, userID int64) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).
		Select("id", "user_id", "room_id", "created_at", "updated_at").
		Where("user_id = ?", userID).
		Order("id").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) Create(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	m := bookingModel{UserID: userID, RoomID: roomID}
	if err := r.db.WithContext(ctx).Omit("Room").Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrRoomTaken
		}
		return nil, err
	}
	return toDomainBooking(m), nil
}

// UpdateRoom moves a booking to another room, keeping its id.
func (r *BookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int64) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"room_id":    roomID,
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrRoomTaken
		}
		return tx.Error
	}
	return nil
}
