package domain

import (
	"time"

	"backend/internal/utils"
)

// VehicleTypePayload is the create/update body for vehicle types.
type VehicleTypePayload struct {
	Name        string `json:"name" binding:"required,min=2"`
	Description string `json:"description"`
}

func (p VehicleTypePayload) Model() VehicleType {
	return VehicleType{Name: p.Name, Description: p.Description}
}

// OperationPayload is the create/update body for operations.
type OperationPayload struct {
	VehicleTypeID uint   `json:"vehicleTypeId" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
	Name          string `json:"name"`
}

func (p OperationPayload) Model() Operation {
	return Operation{
		VehicleTypeID: p.VehicleTypeID,
		Quantity:      p.Quantity,
		Name:          p.Name,
	}
}

// SchedulePayload is the create/update body for schedules. Only the
// recurring shape is accepted; the one-off date form was retired with the
// recurring schema.
type SchedulePayload struct {
	VehicleTypeID uint    `json:"vehicleTypeId" binding:"required"`
	Source        string  `json:"source" binding:"required,min=2"`
	Destination   string  `json:"destination" binding:"required,min=2"`
	Duration      float64 `json:"duration" binding:"required,gt=0"`
	Distance      float64 `json:"distance" binding:"required,gt=0"`
	TimeOfDay     string  `json:"timeOfDay" binding:"required"`
	StartDate     string  `json:"startDate" binding:"required"`
	EndDate       string  `json:"endDate"`
	RepeatPattern string  `json:"repeatPattern" binding:"required,oneof=DAILY WEEKLY MONTHLY"`
}

// Model converts the payload into a Schedule, reporting the rules gin
// binding cannot express (date parseability). The violation list is nil
// when the payload is clean.
func (p SchedulePayload) Model() (Schedule, []FieldViolation) {
	var violations []FieldViolation

	start, err := utils.ParseISODate(p.StartDate)
	if err != nil {
		violations = append(violations, FieldViolation{Field: "startDate", Rule: "must be a valid ISO-8601 date"})
	}

	var end *time.Time
	if p.EndDate != "" {
		e, err := utils.ParseISODate(p.EndDate)
		if err != nil {
			violations = append(violations, FieldViolation{Field: "endDate", Rule: "must be a valid ISO-8601 date"})
		} else {
			end = &e
		}
	}

	if len(violations) > 0 {
		return Schedule{}, violations
	}

	return Schedule{
		VehicleTypeID: p.VehicleTypeID,
		Source:        p.Source,
		Destination:   p.Destination,
		Duration:      p.Duration,
		Distance:      p.Distance,
		TimeOfDay:     p.TimeOfDay,
		StartDate:     start,
		EndDate:       end,
		RepeatPattern: RepeatPattern(p.RepeatPattern),
	}, nil
}
