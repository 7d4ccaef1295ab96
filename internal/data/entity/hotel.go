package entity

type Hotel struct {
	Base
	Name  string `db:"name"`
	Image string `db:"image"`

	// Populated by joined lookups
	Rooms []*Room `db:"-"`
}
