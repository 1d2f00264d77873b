package handlers

import (
	"net/http"

	"backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// POST /api/schedules
func (h Handlers) CreateSchedule(c *gin.Context) {
	var p domain.SchedulePayload
	if !BindJSONOrError(c, &p) {
		return
	}

	sched, violations := p.Model()
	if len(violations) > 0 {
		RespondDomainError(c, domain.ValidationError{Violations: violations})
		return
	}

	if err := h.fleet(c).CreateSchedule(&sched); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sched)
}

// PUT /api/schedules/:id
func (h Handlers) UpdateSchedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var p domain.SchedulePayload
	if !BindJSONOrError(c, &p) {
		return
	}

	sched, violations := p.Model()
	if len(violations) > 0 {
		RespondDomainError(c, domain.ValidationError{Violations: violations})
		return
	}

	updated, err := h.fleet(c).UpdateSchedule(id, sched)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GET /api/vehicle-types/:id/schedules
func (h Handlers) GetSchedulesByVehicleType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	list, err := h.fleet(c).ListSchedulesByVehicleType(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
