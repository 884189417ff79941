package domain

import "time"

// Booking assigns one room to one user. room_id is unique: a room is held
// by at most one booking at a time.
type Booking struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"userId" gorm:"index;not null"`
	User      *User     `json:"-" gorm:"foreignKey:UserID"`
	RoomID    int64     `json:"roomId" gorm:"uniqueIndex:idx_bookings_room_id;not null"`
	Room      *Room     `json:"Room,omitempty" gorm:"foreignKey:RoomID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
