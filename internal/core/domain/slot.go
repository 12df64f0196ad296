package domain

import (
	"time"

	"github.com/goccy/go-json"
)

type TimeSlot struct {
	Start time.Time
	End   time.Time
}

type timeSlotJSON struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (s TimeSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeSlotJSON{
		StartTime: s.Start.Format(SlotTimeLayout),
		EndTime:   s.End.Format(SlotTimeLayout),
	})
}

func (s *TimeSlot) UnmarshalJSON(data []byte) error {
	var raw timeSlotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := ParseSlotTime(raw.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseSlotTime(raw.EndTime)
	if err != nil {
		return err
	}
	*s = TimeSlot{Start: start, End: end}
	return nil
}
