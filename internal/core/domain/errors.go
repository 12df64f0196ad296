package domain

import "errors"

// Виды ошибок ядра. Конкретные ошибки оборачивают их через fmt.Errorf("...: %w", Err...),
// проверка через errors.Is.
var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrParse                = errors.New("parse error")
	ErrSlotUnavailable      = errors.New("slot unavailable")
	ErrUpstreamUnavailable  = errors.New("upstream unavailable")
	ErrAppointmentNotFound  = errors.New("appointment not found")
)
