package out

import (
	"context"

	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
)

// Справочник врачей, только чтение
type DirectoryPort interface {
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
}
