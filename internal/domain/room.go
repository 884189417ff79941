package domain

import "time"

type Room struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Capacity  int       `json:"capacity" gorm:"not null"`
	HotelID   int64     `json:"hotelId" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
