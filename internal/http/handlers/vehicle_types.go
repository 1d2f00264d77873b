package handlers

import (
	"net/http"

	"backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// POST /api/vehicle-types
func (h Handlers) CreateVehicleType(c *gin.Context) {
	var p domain.VehicleTypePayload
	if !BindJSONOrError(c, &p) {
		return
	}

	vt := p.Model()
	if err := h.fleet(c).CreateVehicleType(&vt); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vt)
}

// PUT /api/vehicle-types/:id
func (h Handlers) UpdateVehicleType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var p domain.VehicleTypePayload
	if !BindJSONOrError(c, &p) {
		return
	}

	updated, err := h.fleet(c).UpdateVehicleType(id, p.Model())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GET /api/vehicle-types
func (h Handlers) GetVehicleTypes(c *gin.Context) {
	list, err := h.fleet(c).ListVehicleTypes()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/vehicle-types/:id/aggregates
func (h Handlers) GetVehicleTypeAggregates(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	agg, err := h.fleet(c).VehicleTypeAggregates(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, agg)
}

// DELETE /api/vehicle-types/:id
func (h Handlers) DeleteVehicleType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.fleet(c).SoftDeleteVehicleType(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "VehicleType and related records soft-deleted"})
}
