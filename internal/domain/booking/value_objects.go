package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInterval  = errors.New("end time must be after start time")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidDate      = errors.New("invalid date")
)

const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04"
	minutesPerDay   = 24 * 60
)

// TimeOfDay is a wall-clock time within a single day, stored as minutes
// since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, value)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayFromMinutes reconstructs a stored value. The end of an interval
// may be 24:00 (1440), which has no HH:MM form of its own.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(minutes), nil
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Date is a calendar date with no time-of-day component.
type Date struct {
	t time.Time
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string        { return d.t.Format(dateLayout) }
func (d Date) Time() time.Time       { return d.t }
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// TimeSlot is a half-open interval [start, end) on a calendar date.
type TimeSlot struct {
	date  Date
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(date Date, start, end TimeOfDay) (TimeSlot, error) {
	if end <= start {
		return TimeSlot{}, ErrInvalidInterval
	}
	return TimeSlot{date: date, start: start, end: end}, nil
}

func (ts TimeSlot) Date() Date       { return ts.date }
func (ts TimeSlot) Start() TimeOfDay { return ts.start }
func (ts TimeSlot) End() TimeOfDay   { return ts.end }

// Overlaps reports whether two slots conflict. Slots on different dates
// never overlap, and slots that merely share an endpoint (one ends exactly
// when the other starts) are compatible.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	if !ts.date.Equal(other.date) {
		return false
	}
	return ts.start < other.end && ts.end > other.start
}

func (ts TimeSlot) DurationHours() float64 {
	return float64(ts.end-ts.start) / 60.0
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", ts.date, ts.start, ts.end)
}

// Note holds free-form text attached to a booking by its owner.
type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string { return n.value }
func (n Note) IsEmpty() bool  { return n.value == "" }
