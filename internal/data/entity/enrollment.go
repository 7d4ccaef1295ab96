package entity

// Enrollment ties a user to the event. One per user; a ticket hangs off it.
type Enrollment struct {
	Base
	UserID int64  `db:"user_id"`
	Name   string `db:"name"`
	CPF    string `db:"cpf"`
}
