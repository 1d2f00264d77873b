package repositories

import (
	"errors"

	"backend/internal/domain"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	DB *gorm.DB
}

func (r ScheduleRepository) Create(s *domain.Schedule) error {
	if err := r.DB.Create(s).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ConstraintError{Resource: "schedule", Msg: "vehicleTypeId does not reference an existing vehicle type", Err: err}
		}
		return domain.InternalError{Msg: "failed to create schedule", Err: err}
	}
	return nil
}

func (r ScheduleRepository) Update(id uint, s domain.Schedule) (domain.Schedule, error) {
	var existing domain.Schedule
	if err := r.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Schedule{}, domain.NotFoundError{Resource: "schedule"}
		}
		return domain.Schedule{}, domain.InternalError{Msg: "failed to load schedule", Err: err}
	}

	updates := map[string]any{
		"vehicle_type_id": s.VehicleTypeID,
		"source":          s.Source,
		"destination":     s.Destination,
		"duration":        s.Duration,
		"distance":        s.Distance,
		"time_of_day":     s.TimeOfDay,
		"start_date":      s.StartDate,
		"end_date":        s.EndDate,
		"repeat_pattern":  s.RepeatPattern,
	}
	if err := r.DB.Model(&existing).Updates(updates).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.Schedule{}, domain.ConstraintError{Resource: "schedule", Msg: "vehicleTypeId does not reference an existing vehicle type", Err: err}
		}
		return domain.Schedule{}, domain.InternalError{Msg: "failed to update schedule", Err: err}
	}
	return existing, nil
}

// ListActiveByVehicleType returns active schedules belonging to one
// vehicle type. An unknown id simply yields an empty list.
func (r ScheduleRepository) ListActiveByVehicleType(vehicleTypeID uint) ([]domain.Schedule, error) {
	list := []domain.Schedule{}
	err := r.DB.Where("vehicle_type_id = ?", vehicleTypeID).Find(&list).Error
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list schedules", Err: err}
	}
	return list, nil
}
