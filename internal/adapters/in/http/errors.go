package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
)

// Ошибки разбора из ядра всегда относятся к данным внешних сервисов:
// формат запроса клиента проверяется при биндинге и дает 400.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrDoctorNotFound), errors.Is(err, domain.ErrAppointmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSlotUnavailable):
		return http.StatusConflict
	case errors.Is(err, domain.ErrParse):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

func respondBadRequest(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
