package slot_generator_service

import (
	"context"
	"fmt"

	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
)

func (s *SlotGeneratorService) ListDoctorsBySpecialty(ctx context.Context, specialty string) ([]domain.Doctor, error) {
	doctors, err := s.getDoctors(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Doctor, 0)
	for _, doctor := range doctors {
		if doctor.Specialty == specialty {
			filtered = append(filtered, doctor)
		}
	}

	return filtered, nil
}

func (s *SlotGeneratorService) getDoctor(ctx context.Context, doctorID int) (*domain.Doctor, error) {
	if s.cachePort != nil {
		if doctor, exists := s.cachePort.GetDoctor(ctx, doctorID); exists {
			return &doctor, nil
		}
	}

	doctors, err := s.getDoctors(ctx)
	if err != nil {
		return nil, err
	}

	for i := range doctors {
		if doctors[i].ID == doctorID {
			return &doctors[i], nil
		}
	}

	return nil, fmt.Errorf("doctor %d: %w", doctorID, domain.ErrDoctorNotFound)
}

func (s *SlotGeneratorService) getDoctors(ctx context.Context) ([]domain.Doctor, error) {
	if s.cachePort != nil {
		if doctors, exists := s.cachePort.GetDoctors(ctx); exists {
			return doctors, nil
		}
		s.logger.Debug("doctors.cache.miss", out.LogFields{})
	}

	doctors, err := s.directoryPort.ListDoctors(ctx)
	if err != nil {
		s.logger.Error("doctors.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("doctors.fetch_failed: %w", err)
	}

	if s.cachePort != nil {
		s.cachePort.StoreDoctors(ctx, doctors)
	}

	return doctors, nil
}
