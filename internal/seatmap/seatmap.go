package seatmap

import (
	"errors"
	"fmt"
)

// Layout describes the cabin grid for a package class. Unavailable
// holds pre-blocked seat labels; real availability would come from the
// fleet service, these match the launch configuration currently flown.
type Layout struct {
	ClassType   string
	Rows        int
	SeatsPerRow int
	Unavailable map[string]bool
}

const (
	ClassFirst    = "First Class"
	ClassBusiness = "Business Class"
	ClassEconomy  = "Economy Class"
)

// ErrTooManySeats is returned by Toggle only when a capacity limit is
// configured; seat selection is otherwise optional and unbounded.
var ErrTooManySeats = errors.New("selected seats exceed traveler count")

func ForClass(classType string) Layout {
	switch classType {
	case ClassFirst:
		return Layout{
			ClassType:   classType,
			Rows:        4,
			SeatsPerRow: 2,
			Unavailable: map[string]bool{"A1": true},
		}
	case ClassBusiness:
		return Layout{
			ClassType:   classType,
			Rows:        6,
			SeatsPerRow: 3,
			Unavailable: map[string]bool{"B2": true},
		}
	case ClassEconomy:
		return Layout{
			ClassType:   classType,
			Rows:        10,
			SeatsPerRow: 6,
			Unavailable: map[string]bool{"C4": true, "F3": true, "H5": true},
		}
	default:
		return Layout{
			ClassType:   classType,
			Rows:        8,
			SeatsPerRow: 4,
			Unavailable: map[string]bool{},
		}
	}
}

// Label names a seat by row letter and one-based seat number: A1, B3.
func (l Layout) Label(row, seat int) string {
	return fmt.Sprintf("%c%d", 'A'+row, seat+1)
}

func (l Layout) Valid(label string) bool {
	for row := 0; row < l.Rows; row++ {
		for seat := 0; seat < l.SeatsPerRow; seat++ {
			if l.Label(row, seat) == label {
				return true
			}
		}
	}
	return false
}

func (l Layout) Available(label string) bool {
	return l.Valid(label) && !l.Unavailable[label]
}

// Selection tracks chosen seat labels for a layout. MaxSeats of zero
// disables the capacity cross-check against the traveler count.
type Selection struct {
	Layout   Layout
	MaxSeats int
	seats    []string
}

func NewSelection(layout Layout, maxSeats int) *Selection {
	return &Selection{Layout: layout, MaxSeats: maxSeats}
}

func (s *Selection) Seats() []string {
	return append([]string(nil), s.seats...)
}

func (s *Selection) Selected(label string) bool {
	for _, seat := range s.seats {
		if seat == label {
			return true
		}
	}
	return false
}

// Toggle selects the seat if unselected, deselects it otherwise.
// Unavailable or out-of-grid seats are ignored without error.
func (s *Selection) Toggle(label string) ([]string, error) {
	if !s.Layout.Available(label) {
		return s.Seats(), nil
	}

	if s.Selected(label) {
		kept := s.seats[:0]
		for _, seat := range s.seats {
			if seat != label {
				kept = append(kept, seat)
			}
		}
		s.seats = kept
		return s.Seats(), nil
	}

	if s.MaxSeats > 0 && len(s.seats) >= s.MaxSeats {
		return s.Seats(), ErrTooManySeats
	}
	s.seats = append(s.seats, label)
	return s.Seats(), nil
}
