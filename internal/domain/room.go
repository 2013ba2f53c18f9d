package domain

// Room represents a bookable room. Rooms are created once and never mutated
// or deleted; capacity is validated as positive at registration.
type Room struct {
	ID       int64
	Name     string
	Capacity int
}
