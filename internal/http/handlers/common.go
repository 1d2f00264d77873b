package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"backend/internal/domain"
	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Handlers bundles the injected persistence layer for route registration.
// One instance is built at startup; nothing here is per-request state.
type Handlers struct {
	DB           *gorm.DB
	VehicleTypes repositories.VehicleTypeRepository
	Operations   repositories.OperationRepository
	Schedules    repositories.ScheduleRepository
}

func New(db *gorm.DB) Handlers {
	return Handlers{
		DB:           db,
		VehicleTypes: repositories.VehicleTypeRepository{DB: db},
		Operations:   repositories.OperationRepository{DB: db},
		Schedules:    repositories.ScheduleRepository{DB: db},
	}
}

// fleet builds the request-scoped service so its log lines carry the
// request id.
func (h Handlers) fleet(c *gin.Context) services.FleetService {
	return services.FleetService{
		VehicleTypes: h.VehicleTypes,
		Operations:   h.Operations,
		Schedules:    h.Schedules,
		RequestID:    middleware.GetRequestID(c),
	}
}

// BindJSONOrError parses the body into dst and answers the request itself
// on failure, translating binding errors into the field violation shape.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			RespondDomainError(c, domain.ValidationError{Violations: violationsFrom(verrs), Err: err})
			return false
		}
		RespondDomainError(c, domain.ValidationError{
			Violations: []domain.FieldViolation{{Field: "body", Rule: "must be a valid JSON object"}},
			Err:        err,
		})
		return false
	}
	return true
}

func violationsFrom(verrs validator.ValidationErrors) []domain.FieldViolation {
	out := make([]domain.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldViolation{Field: fe.Field(), Rule: ruleText(fe)})
	}
	return out
}

func ruleText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}

// paramID parses the :id path segment as a positive integer.
func paramID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id64 == 0 {
		RespondDomainError(c, domain.ValidationError{
			Violations: []domain.FieldViolation{{Field: "id", Rule: "must be a positive integer"}},
		})
		return 0, false
	}
	return uint(id64), true
}
