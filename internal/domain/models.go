package domain

// Models lists every persisted type in migration order.
func Models() []any {
	return []any{
		&User{},
		&Session{},
		&Enrollment{},
		&Address{},
		&TicketType{},
		&Ticket{},
		&Hotel{},
		&Room{},
		&Booking{},
	}
}
