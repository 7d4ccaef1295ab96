package entity

type Session struct {
	Base
	UserID int64  `db:"user_id"`
	Token  string `db:"token"`
}
