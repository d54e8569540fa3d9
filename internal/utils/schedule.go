package utils

import (
	"errors"
	"fmt"
	"time"
	// zone data for hosts without a system zoneinfo database
	_ "time/tzdata"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	DayStartHour = 9
	DayEndHour   = 17
	SlotMinutes  = 60
)

var (
	ErrInvalidDate     = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidClock    = errors.New("invalid time format, expected HH:MM")
	ErrInvalidTimezone = errors.New("invalid timezone")
)

// ParseDay parses a calendar date and returns UTC midnight of that day.
func ParseDay(date string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

// DayBounds returns [start, start+24h) for a UTC midnight day.
func DayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

func ParseClockToMinutes(clock string) (int, error) {
	tm, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, ErrInvalidClock
	}
	return tm.Hour()*60 + tm.Minute(), nil
}

func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// LoadTimezone validates an IANA name. An empty name means UTC.
func LoadTimezone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

// DailySlots builds the fixed hourly grid 09:00-17:00.
func DailySlots() []entity.TimeSlot {
	slots := make([]entity.TimeSlot, 0, DayEndHour-DayStartHour)
	for cursor := DayStartHour * 60; cursor+SlotMinutes <= DayEndHour*60; cursor += SlotMinutes {
		slots = append(slots, entity.TimeSlot{
			StartTime: MinutesToClock(cursor),
			EndTime:   MinutesToClock(cursor + SlotMinutes),
		})
	}
	return slots
}

// FilterReserved drops slots whose start time is taken.
func FilterReserved(slots []entity.TimeSlot, reserved map[string]bool) []entity.TimeSlot {
	filtered := make([]entity.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if !reserved[s.StartTime] {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
