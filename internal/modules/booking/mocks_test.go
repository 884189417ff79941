package booking

import (
	"context"

	"eventstay/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) FindByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) FindByRoomID(ctx context.Context, roomID int64) (*domain.Booking, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) FindOwnedByUser(ctx context.Context, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) Create(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) UpdateRoom(ctx context.Context, bookingID, roomID int64) error {
	args := m.Called(ctx, bookingID, roomID)
	return args.Error(0)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) FindWithAddressByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	args := m.Called(ctx, enrollmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockBookingCache struct {
	mock.Mock
}

func (m *MockBookingCache) Get(ctx context.Context, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingCache) Set(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingCache) Invalidate(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingEvent(ctx context.Context, ev domain.BookingEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

type serviceMocks struct {
	bookings    *MockBookingStore
	enrollments *MockEnrollmentRepository
	tickets     *MockTicketRepository
	rooms       *MockRoomRepository
}

func newMockedService() (*Service, serviceMocks) {
	m := serviceMocks{
		bookings:    new(MockBookingStore),
		enrollments: new(MockEnrollmentRepository),
		tickets:     new(MockTicketRepository),
		rooms:       new(MockRoomRepository),
	}
	return NewService(m.bookings, m.enrollments, m.tickets, m.rooms, nil, nil), m
}

func paidHotelTicket(enrollmentID int64) *domain.Ticket {
	return &domain.Ticket{
		ID:           1,
		EnrollmentID: enrollmentID,
		Status:       domain.TicketPaid,
		TicketType:   domain.TicketType{ID: 1, IsRemote: false, IncludesHotel: true},
	}
}
