package booking

import (
	"context"

	"eventstay/internal/domain"
)

// BookingStore is the persistence contract of the booking rules. Lookups
// return (nil, nil) when nothing matches.
type BookingStore interface {
	FindByUserID(ctx context.Context, userID int64) (*domain.Booking, error)
	FindByRoomID(ctx context.Context, roomID int64) (*domain.Booking, error)
	FindOwnedByUser(ctx context.Context, userID int64) (*domain.Booking, error)
	Create(ctx context.Context, userID, roomID int64) (*domain.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int64) error
}

type EnrollmentRepository interface {
	FindWithAddressByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, roomID int64) (*domain.Room, error)
}

// BookingCache keeps the read view of a user's booking. Get returns
// (nil, nil) on a miss.
type BookingCache interface {
	Get(ctx context.Context, userID int64) (*domain.Booking, error)
	Set(ctx context.Context, b *domain.Booking) error
	Invalidate(ctx context.Context, userID int64) error
}

type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, ev domain.BookingEvent) error
}
