package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot_MarshalJSON(t *testing.T) {
	start := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	data, err := json.Marshal([]TimeSlot{{Start: start, End: start.Add(time.Hour)}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"start_time":"2026-10-16 09:00","end_time":"2026-10-16 10:00"}]`, string(data))
}

func TestTimeSlot_UnmarshalJSON(t *testing.T) {
	var slot TimeSlot
	require.NoError(t, json.Unmarshal([]byte(`{"start_time":"2026-10-16 09:00","end_time":"2026-10-16 10:00"}`), &slot))
	assert.Equal(t, time.Hour, slot.End.Sub(slot.Start))
	assert.Equal(t, "2026-10-16 09:00", slot.Start.Format(SlotTimeLayout))

	err := json.Unmarshal([]byte(`{"start_time":"tomorrow","end_time":"2026-10-16 10:00"}`), &slot)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseSlotTime(t *testing.T) {
	got, err := ParseSlotTime("2026-10-16 14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())

	for _, bad := range []string{"2026-10-16T14:30", "2026-10-16 14:30:00", "16/10/2026 14:30", ""} {
		_, err := ParseSlotTime(bad)
		assert.ErrorIs(t, err, ErrParse, bad)
	}
}

func TestAppointment_Start(t *testing.T) {
	a := Appointment{ID: 1, DoctorID: 2, PatientID: 3, StartTime: "2026-10-16 09:00"}
	start, err := a.Start()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16 09:00", start.Format(SlotTimeLayout))
}
