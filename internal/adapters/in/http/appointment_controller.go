package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/in"
)

type AppointmentController struct {
	useCase in.AppointmentUseCase
}

func NewAppointmentController(useCase in.AppointmentUseCase) *AppointmentController {
	return &AppointmentController{
		useCase: useCase,
	}
}

func (c *AppointmentController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/appointments", c.listPatientAppointments)
	api.POST("/appointments", c.createAppointment)
	api.PUT("/appointments/:id", c.updateAppointment)
	api.DELETE("/appointments/:id", c.deleteAppointment)
}

type AppointmentURI struct {
	ID int `uri:"id" binding:"required,min=1"`
}

type PatientAppointmentsQuery struct {
	PatientID int `form:"patient_id" binding:"required,min=1"`
}

func (c *AppointmentController) listPatientAppointments(ctx *gin.Context) {
	var query PatientAppointmentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	appointments, err := c.useCase.ListPatientAppointments(ctx.Request.Context(), query.PatientID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

func (c *AppointmentController) createAppointment(ctx *gin.Context) {
	var req domain.AppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	resp, err := c.useCase.CreateAppointment(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	passThrough(ctx, resp)
}

func (c *AppointmentController) updateAppointment(ctx *gin.Context) {
	var uri AppointmentURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	var req domain.AppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	resp, err := c.useCase.UpdateAppointment(ctx.Request.Context(), uri.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	passThrough(ctx, resp)
}

func (c *AppointmentController) deleteAppointment(ctx *gin.Context) {
	var uri AppointmentURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	if err := c.useCase.DeleteAppointment(ctx.Request.Context(), uri.ID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// Ответ планировщика отдается клиенту без изменений
func passThrough(ctx *gin.Context, resp *domain.SchedulerResponse) {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	ctx.Data(resp.StatusCode, contentType, resp.Body)
}
