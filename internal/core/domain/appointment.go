package domain

import (
	"fmt"
	"time"

	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
)

const SlotTimeLayout = "2006-01-02 15:04"

// Appointment как его отдает сервис расписания. StartTime хранится строкой,
// разбор выполняется при вычислении доступности.
type Appointment struct {
	ID        int    `json:"id,omitempty"`
	DoctorID  int    `json:"doctor_id"`
	PatientID int    `json:"patient_id"`
	StartTime string `json:"start_time"`
}

type AppointmentRequest struct {
	StartTime string `json:"start_time" binding:"required,slot_time"`
	DoctorID  int    `json:"doctor_id" binding:"required"`
	PatientID int    `json:"patient_id" binding:"required"`
}

// Ответ сервиса расписания как есть, отдается клиенту без изменений
type SchedulerResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func ParseSlotTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(SlotTimeLayout, s, config.TimeZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("slot time %q: %w", s, ErrParse)
	}
	return t, nil
}

func (a Appointment) Start() (time.Time, error) {
	return ParseSlotTime(a.StartTime)
}
