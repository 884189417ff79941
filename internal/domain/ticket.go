package domain

import "time"

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	Price         int       `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Ticket struct {
	ID           int64        `json:"id" gorm:"primaryKey"`
	TicketTypeID int64        `json:"ticketTypeId" gorm:"index;not null"`
	TicketType   TicketType   `json:"TicketType" gorm:"foreignKey:TicketTypeID"`
	EnrollmentID int64        `json:"enrollmentId" gorm:"index;not null"`
	Status       TicketStatus `json:"status" gorm:"size:16;not null"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// AllowsHotelBooking reports whether the ticket is for in-person attendance,
// includes accommodation and has been paid.
func (t *Ticket) AllowsHotelBooking() bool {
	if t.TicketType.IsRemote || !t.TicketType.IncludesHotel {
		return false
	}
	return t.Status != TicketReserved
}
