package domain

import "fmt"

// Shift represents one of the fixed daily time blocks a room can be booked for
type Shift string

const (
	ShiftMorning   Shift = "Morning"
	ShiftAfternoon Shift = "Afternoon"
	ShiftNight     Shift = "Night"
)

// AllShifts lists every shift in its fixed enumeration order.
// Availability results and reports always follow this order.
var AllShifts = []Shift{
	ShiftMorning,
	ShiftAfternoon,
	ShiftNight,
}

// ParseShift converts free text into a Shift
func ParseShift(s string) (Shift, error) {
	switch Shift(s) {
	case ShiftMorning, ShiftAfternoon, ShiftNight:
		return Shift(s), nil
	}
	return "", fmt.Errorf("unknown shift %q", s)
}

// Order returns the position of the shift in the fixed enumeration
func (s Shift) Order() int {
	for i, shift := range AllShifts {
		if shift == s {
			return i
		}
	}
	return len(AllShifts)
}

// IsValid returns true if the shift is one of the fixed enumeration values
func (s Shift) IsValid() bool {
	return s.Order() < len(AllShifts)
}

func (s Shift) String() string {
	return string(s)
}
