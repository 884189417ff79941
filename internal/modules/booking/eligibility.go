package booking

import (
	"context"

	"eventstay/internal/domain"
)

// Eligibility is what a successful create check resolved.
type Eligibility struct {
	Enrollment *domain.Enrollment
	Ticket     *domain.Ticket
}

// EligibilityChecker decides whether a user may book or change a room.
// Ticket rules apply only when the booking is first made; a later change of
// room only requires that the user already holds a booking.
type EligibilityChecker struct {
	enrollments EnrollmentRepository
	tickets     TicketRepository
	bookings    BookingStore
}

func NewEligibilityChecker(enrollments EnrollmentRepository, tickets TicketRepository, bookings BookingStore) *EligibilityChecker {
	return &EligibilityChecker{
		enrollments: enrollments,
		tickets:     tickets,
		bookings:    bookings,
	}
}

func (c *EligibilityChecker) CheckCreate(ctx context.Context, userID int64) (*Eligibility, error) {
	enrollment, err := c.enrollments.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrNoEnrollment
	}

	ticket, err := c.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ErrNoTicket
	}
	if !ticket.AllowsHotelBooking() {
		return nil, ErrIneligibleTicket
	}

	return &Eligibility{Enrollment: enrollment, Ticket: ticket}, nil
}

// CheckUpdate returns the booking the user currently holds. A user without
// one is refused with Forbidden, not NotFound.
func (c *EligibilityChecker) CheckUpdate(ctx context.Context, userID int64) (*domain.Booking, error) {
	current, err := c.bookings.FindOwnedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNoBookingToUpdate
	}
	return current, nil
}
