package booking

import "errors"

// Kind classifies refusals produced by the booking rules. Errors that carry
// no Kind are internal failures.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is lets a message-less Error act as a wildcard for its Kind, so
// errors.Is(err, ErrNotFound) holds for every not-found refusal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Kind == e.Kind
}

var (
	ErrNotFound  = &Error{Kind: KindNotFound}
	ErrForbidden = &Error{Kind: KindForbidden}

	ErrNoEnrollment    = &Error{Kind: KindNotFound, Message: "no enrollment for this user"}
	ErrNoTicket        = &Error{Kind: KindNotFound, Message: "no ticket for this enrollment"}
	ErrBookingNotFound = &Error{Kind: KindNotFound, Message: "booking not found"}
	ErrRoomNotFound    = &Error{Kind: KindNotFound, Message: "room does not exist"}

	ErrIneligibleTicket = &Error{
		Kind:    KindForbidden,
		Message: "ineligible ticket: it is remote, does not include accommodation or has not been paid",
	}
	ErrRoomUnavailable   = &Error{Kind: KindForbidden, Message: "room unavailable"}
	ErrNoBookingToUpdate = &Error{Kind: KindForbidden, Message: "no existing booking to update"}
	ErrBookingNotOwned   = &Error{Kind: KindForbidden, Message: "booking does not belong to user"}
)

// KindOf returns the Kind of err, or 0 for internal errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
