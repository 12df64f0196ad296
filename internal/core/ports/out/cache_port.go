package out

import (
	"context"

	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
)

type CachePort interface {
	// Кэширование справочника врачей
	GetDoctors(ctx context.Context) ([]domain.Doctor, bool)
	GetDoctor(ctx context.Context, doctorID int) (domain.Doctor, bool)
	StoreDoctors(ctx context.Context, doctors []domain.Doctor)
	InvalidateDoctor(ctx context.Context, doctorID int)
	InvalidateDoctorsCache(ctx context.Context)
}
