package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/in"
)

type AvailabilityController struct {
	availability in.AvailabilityUseCase
	doctors      in.DoctorUseCase
}

func NewAvailabilityController(availability in.AvailabilityUseCase, doctors in.DoctorUseCase) *AvailabilityController {
	return &AvailabilityController{
		availability: availability,
		doctors:      doctors,
	}
}

func (c *AvailabilityController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/doctors", c.listDoctors)
	api.GET("/slots", c.availableSlots)
}

type ListDoctorsQuery struct {
	Specialty string `form:"specialty" binding:"required"`
}

type AvailableSlotsQuery struct {
	DoctorID int  `form:"doctor_id" binding:"required,min=1"`
	Debug    bool `form:"debug"`
}

func (c *AvailabilityController) listDoctors(ctx *gin.Context) {
	var query ListDoctorsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	doctors, err := c.doctors.ListDoctorsBySpecialty(ctx.Request.Context(), query.Specialty)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doctors)
}

func (c *AvailabilityController) availableSlots(ctx *gin.Context) {
	var query AvailableSlotsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	if query.Debug {
		slots, debug, err := c.availability.GetAvailableSlotsDebug(ctx.Request.Context(), query.DoctorID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"slots": slots,
			"debug": debug,
		})
		return
	}

	slots, err := c.availability.GetAvailableSlots(ctx.Request.Context(), query.DoctorID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, slots)
}
