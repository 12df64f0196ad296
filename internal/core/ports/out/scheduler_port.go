package out

import (
	"context"

	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
)

// Внешний сервис расписания, владелец записей.
// Ошибки транспорта оборачиваются в domain.ErrUpstreamUnavailable.
type SchedulerPort interface {
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	CreateAppointment(ctx context.Context, req domain.AppointmentRequest) (*domain.SchedulerResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID int, req domain.AppointmentRequest) (*domain.SchedulerResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID int) error
}
