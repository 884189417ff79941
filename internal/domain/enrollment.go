package domain

import "time"

// Enrollment proves that a user registered for the event with a postal address.
// There is at most one per user.
type Enrollment struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"userId" gorm:"uniqueIndex;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	CPF       string    `json:"cpf" gorm:"size:14;not null"`
	Birthday  time.Time `json:"birthday"`
	Phone     string    `json:"phone" gorm:"size:32"`
	Address   *Address  `json:"address,omitempty" gorm:"foreignKey:EnrollmentID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Address struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	EnrollmentID  int64     `json:"enrollmentId" gorm:"uniqueIndex;not null"`
	CEP           string    `json:"cep" gorm:"size:9"`
	Street        string    `json:"street"`
	City          string    `json:"city"`
	State         string    `json:"state" gorm:"size:2"`
	Number        string    `json:"number"`
	Neighborhood  string    `json:"neighborhood"`
	AddressDetail string    `json:"addressDetail,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
