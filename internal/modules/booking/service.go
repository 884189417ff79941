package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"eventstay/internal/domain"
	"eventstay/internal/repository"
)

type Service struct {
	checker  *EligibilityChecker
	bookings BookingStore
	enrolls  EnrollmentRepository
	rooms    RoomRepository
	cache    BookingCache
	events   EventPublisher
	now      func() time.Time
}

// NewService wires the booking rules. cache and events may be nil.
func NewService(
	bookings BookingStore,
	enrollments EnrollmentRepository,
	tickets TicketRepository,
	rooms RoomRepository,
	cache BookingCache,
	events EventPublisher,
) *Service {
	return &Service{
		checker:  NewEligibilityChecker(enrollments, tickets, bookings),
		bookings: bookings,
		enrolls:  enrollments,
		rooms:    rooms,
		cache:    cache,
		events:   events,
		now:      time.Now,
	}
}

// GetBooking returns the user's booking with its room.
func (s *Service) GetBooking(ctx context.Context, userID int64) (*domain.Booking, error) {
	enrollment, err := s.enrolls.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrNoEnrollment
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			log.Printf("booking_cache op=get user_id=%d error=%q", userID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	b, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, b); err != nil {
			log.Printf("booking_cache op=set user_id=%d error=%q", userID, err)
		}
	}
	return b, nil
}

// CreateBooking books roomID for an eligible user. Occupancy is checked
// before the room's existence.
func (s *Service) CreateBooking(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	if _, err := s.checker.CheckCreate(ctx, userID); err != nil {
		return nil, err
	}

	holder, err := s.bookings.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if holder != nil {
		return nil, ErrRoomUnavailable
	}

	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if _, err := s.bookings.Create(ctx, userID, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomTaken) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	created, err := s.reread(ctx, roomID)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, domain.BookingEvent{
		Type:      domain.BookingCreated,
		BookingID: created.ID,
		UserID:    userID,
		RoomID:    roomID,
		HotelID:   room.HotelID,
	})
	return created, nil
}

// UpdateBooking moves the user's booking to roomID and keeps its id. The
// ticket is not checked again. Room existence is checked before occupancy,
// and both before the booking id is matched against the user's booking.
func (s *Service) UpdateBooking(ctx context.Context, userID, roomID, bookingID int64) (*domain.Booking, error) {
	current, err := s.checker.CheckUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	holder, err := s.bookings.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if holder != nil {
		return nil, ErrRoomUnavailable
	}

	if current.ID != bookingID {
		return nil, ErrBookingNotOwned
	}

	if err := s.bookings.UpdateRoom(ctx, bookingID, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomTaken) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	updated, err := s.reread(ctx, roomID)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, domain.BookingEvent{
		Type:            domain.BookingUpdated,
		BookingID:       updated.ID,
		UserID:          userID,
		RoomID:          roomID,
		HotelID:         room.HotelID,
		PreviousRoomID:  current.RoomID,
		PreviousHotelID: s.hotelOf(ctx, current.RoomID),
	})
	return updated, nil
}

// hotelOf resolves the hotel of a room the booking just left, for the
// event only. Lookup failures leave it unset.
func (s *Service) hotelOf(ctx context.Context, roomID int64) int64 {
	if s.events == nil {
		return 0
	}
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		log.Printf("booking_event op=previous_hotel room_id=%d error=%q", roomID, err)
		return 0
	}
	if room == nil {
		return 0
	}
	return room.HotelID
}

func (s *Service) reread(ctx context.Context, roomID int64) (*domain.Booking, error) {
	b, err := s.bookings.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("booking for room %d missing after write", roomID)
	}
	return b, nil
}

// afterWrite drops the cached view and announces the change. Neither step
// can fail the request: the booking is already committed.
func (s *Service) afterWrite(ctx context.Context, ev domain.BookingEvent) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, ev.UserID); err != nil {
			log.Printf("booking_cache op=invalidate user_id=%d error=%q", ev.UserID, err)
		}
	}
	if s.events != nil {
		ev.OccurredAt = s.now().UTC()
		if err := s.events.PublishBookingEvent(ctx, ev); err != nil {
			log.Printf("booking_event type=%s booking_id=%d error=%q", ev.Type, ev.BookingID, err)
		}
	}
}
