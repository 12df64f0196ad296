package in

import (
	"context"

	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
)

type AvailabilityUseCase interface {
	GetAvailableSlots(ctx context.Context, doctorID int) ([]domain.TimeSlot, error)
	GetAvailableSlotsDebug(ctx context.Context, doctorID int) ([]domain.TimeSlot, []domain.DebugInfo, error)
	// Проверка без записи. Между проверкой и записью слот может занять другой клиент.
	CheckSlotAvailable(ctx context.Context, doctorID int, startTime string) error
}

type DoctorUseCase interface {
	ListDoctorsBySpecialty(ctx context.Context, specialty string) ([]domain.Doctor, error)
}

type AppointmentUseCase interface {
	CreateAppointment(ctx context.Context, req domain.AppointmentRequest) (*domain.SchedulerResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID int, req domain.AppointmentRequest) (*domain.SchedulerResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID int) error
	ListPatientAppointments(ctx context.Context, patientID int) ([]domain.Appointment, error)
}

type CacheUseCase interface {
	InvalidateDoctorCache(ctx context.Context, doctorID int)
	InvalidateAllCache(ctx context.Context)
}
