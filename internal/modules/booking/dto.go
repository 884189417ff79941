package booking

import (
	"time"

	"eventstay/internal/domain"
)

type BookingRoomRequest struct {
	RoomID int64 `json:"roomId" binding:"required,gt=0"`
}

type BookingIDResponse struct {
	BookingID int64 `json:"bookingId"`
}

type RoomView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookingView struct {
	ID   int64     `json:"id"`
	Room *RoomView `json:"Room"`
}

func toBookingView(b *domain.Booking) BookingView {
	v := BookingView{ID: b.ID}
	if b.Room != nil {
		v.Room = &RoomView{
			ID:        b.Room.ID,
			Name:      b.Room.Name,
			Capacity:  b.Room.Capacity,
			HotelID:   b.Room.HotelID,
			CreatedAt: b.Room.CreatedAt,
			UpdatedAt: b.Room.UpdatedAt,
		}
	}
	return v
}
