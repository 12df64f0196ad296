package domain

import (
	"fmt"
	"time"
)

const WorkingHoursLayout = "15:04:05"

type Doctor struct {
	ID                int    `json:"doctor_id"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	Specialty         string `json:"specialty"`
	WorkingHoursStart string `json:"working_hours_start"`
	WorkingHoursEnd   string `json:"working_hours_end"`
}

// Ежедневное окно приема, используется только время суток Start и End
type WorkingHours struct {
	Start time.Time
	End   time.Time
}

func ParseWorkingHours(start, end string) (WorkingHours, error) {
	s, err := time.Parse(WorkingHoursLayout, start)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("working hours start %q: %w", start, ErrParse)
	}
	e, err := time.Parse(WorkingHoursLayout, end)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("working hours end %q: %w", end, ErrParse)
	}
	return WorkingHours{Start: s, End: e}, nil
}

func (d Doctor) WorkingHours() (WorkingHours, error) {
	return ParseWorkingHours(d.WorkingHoursStart, d.WorkingHoursEnd)
}

// On переносит окно на календарную дату в ее таймзоне
func (w WorkingHours) On(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), date.Day(),
		w.Start.Hour(), w.Start.Minute(), w.Start.Second(), 0, date.Location())
	end = time.Date(date.Year(), date.Month(), date.Day(),
		w.End.Hour(), w.End.Minute(), w.End.Second(), 0, date.Location())
	return start, end
}

func (w WorkingHours) Valid() bool {
	s, e := w.On(time.Time{})
	return s.Before(e)
}
