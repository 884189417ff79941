package domain

import "time"

type BookingEventType string

const (
	BookingCreated BookingEventType = "booking.created"
	BookingUpdated BookingEventType = "booking.updated"
)

// BookingEvent describes a change in room occupancy. PreviousRoomID and
// PreviousHotelID are set only for booking.updated.
type BookingEvent struct {
	Type            BookingEventType `json:"type"`
	BookingID       int64            `json:"bookingId"`
	UserID          int64            `json:"userId"`
	RoomID          int64            `json:"roomId"`
	HotelID         int64            `json:"hotelId"`
	PreviousRoomID  int64            `json:"previousRoomId,omitempty"`
	PreviousHotelID int64            `json:"previousHotelId,omitempty"`
	OccurredAt      time.Time        `json:"occurredAt"`
}
