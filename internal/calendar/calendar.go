package calendar

import (
	"time"

	models "github.com/dubaitostars/starclient/internal"
	"github.com/dubaitostars/starclient/internal/utils"
)

// Popularity annotates a day from the destination's peak/off-peak month
// data. Display-only; it never affects selectability.
type Popularity string

const (
	PopularityNormal  Popularity = "normal"
	PopularityPeak    Popularity = "peak"
	PopularityOffPeak Popularity = "off-peak"
)

// Day is one calendar cell. Leading cells before the first of the month
// have a zero Day and nil Date.
type Day struct {
	Day  int
	Date *time.Time
}

// Month produces the Sunday-first grid of cells for a displayed month.
func Month(year int, month time.Month) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]Day, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		days = append(days, Day{})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		days = append(days, Day{Day: d, Date: &date})
	}
	return days
}

// Range is the picker's selection state: a start date, optionally
// followed by an end date.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// Picker computes selectability and click transitions for a date-range
// calendar. MinDate/MaxDate of zero mean unbounded on that side.
type Picker struct {
	MinDate time.Time
	MaxDate time.Time
	Popular *models.PopularTimes
	Now     func() time.Time
}

func NewPicker() *Picker {
	return &Picker{Now: time.Now}
}

// Selectable is false for past dates and dates outside the configured
// bounds.
func (p *Picker) Selectable(date time.Time) bool {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	if utils.IsPast(date, now()) {
		return false
	}
	if !p.MinDate.IsZero() && date.Before(p.MinDate) {
		return false
	}
	if !p.MaxDate.IsZero() && date.After(p.MaxDate) {
		return false
	}
	return true
}

// Click applies the range-selection rules to the current selection:
// nothing selected, or both ends selected, starts a fresh range; with
// only a start set, a later date completes the range and an earlier (or
// equal) one replaces the start. Unselectable dates leave the selection
// untouched.
func (p *Picker) Click(r Range, date time.Time) Range {
	if !p.Selectable(date) {
		return r
	}

	d := date
	if r.Start == nil || (r.Start != nil && r.End != nil) {
		return Range{Start: &d}
	}

	if d.After(*r.Start) {
		return Range{Start: r.Start, End: &d}
	}
	return Range{Start: &d}
}

// InRange reports whether date lies strictly between the selected
// endpoints, for highlighting.
func (r Range) InRange(date time.Time) bool {
	if r.Start == nil || r.End == nil {
		return false
	}
	return date.After(*r.Start) && date.Before(*r.End)
}

func (r Range) Complete() bool {
	return r.Start != nil && r.End != nil
}

// PopularityOf maps a date's month name onto the destination's peak and
// off-peak lists.
func (p *Picker) PopularityOf(date time.Time) Popularity {
	if p.Popular == nil {
		return PopularityNormal
	}
	monthName := date.Month().String()
	for _, m := range p.Popular.PeakMonths {
		if m == monthName {
			return PopularityPeak
		}
	}
	for _, m := range p.Popular.OffPeakMonths {
		if m == monthName {
			return PopularityOffPeak
		}
	}
	return PopularityNormal
}
