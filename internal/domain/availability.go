package domain

// RoomAvailability pairs a room with its free shifts for one date.
// A room only appears in availability results when at least one shift is
// free; FreeShifts keeps the fixed enumeration order.
type RoomAvailability struct {
	Room       Room
	FreeShifts []Shift
}

// HasShift reports whether the given shift is free for the room
func (a *RoomAvailability) HasShift(shift Shift) bool {
	for _, s := range a.FreeShifts {
		if s == shift {
			return true
		}
	}
	return false
}

// IsFullyFree returns true if every shift of the day is free
func (a *RoomAvailability) IsFullyFree() bool {
	return len(a.FreeShifts) == len(AllShifts)
}
