package handlers

import (
	"net/http"

	"backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// POST /api/operations
func (h Handlers) CreateOperation(c *gin.Context) {
	var p domain.OperationPayload
	if !BindJSONOrError(c, &p) {
		return
	}

	op := p.Model()
	if err := h.fleet(c).CreateOperation(&op); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, op)
}

// PUT /api/operations/:id
func (h Handlers) UpdateOperation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var p domain.OperationPayload
	if !BindJSONOrError(c, &p) {
		return
	}

	updated, err := h.fleet(c).UpdateOperation(id, p.Model())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GET /api/operations
func (h Handlers) GetOperations(c *gin.Context) {
	list, err := h.fleet(c).ListOperations()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
