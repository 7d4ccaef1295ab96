package entity

type Payment struct {
	Base
	TicketID       int64  `db:"ticket_id"`
	Value          int64  `db:"value"`
	CardIssuer     string `db:"card_issuer"`
	CardLastDigits string `db:"card_last_digits"`
}
