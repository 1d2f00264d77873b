package repositories

import (
	"errors"

	"backend/internal/domain"

	"gorm.io/gorm"
)

type VehicleTypeRepository struct {
	DB *gorm.DB
}

func (r VehicleTypeRepository) Create(vt *domain.VehicleType) error {
	if err := r.DB.Create(vt).Error; err != nil {
		return domain.InternalError{Msg: "failed to create vehicle type", Err: err}
	}
	return nil
}

// Update replaces the mutable fields of an existing vehicle type.
func (r VehicleTypeRepository) Update(id uint, vt domain.VehicleType) (domain.VehicleType, error) {
	var existing domain.VehicleType
	if err := r.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.VehicleType{}, domain.NotFoundError{Resource: "vehicle type"}
		}
		return domain.VehicleType{}, domain.InternalError{Msg: "failed to load vehicle type", Err: err}
	}

	updates := map[string]any{
		"name":        vt.Name,
		"description": vt.Description,
	}
	if err := r.DB.Model(&existing).Updates(updates).Error; err != nil {
		return domain.VehicleType{}, domain.InternalError{Msg: "failed to update vehicle type", Err: err}
	}
	return existing, nil
}

// ListActive returns all active vehicle types with their active operations
// and schedules nested. Soft-deleted rows are excluded at every level.
func (r VehicleTypeRepository) ListActive() ([]domain.VehicleType, error) {
	list := []domain.VehicleType{}
	err := r.DB.
		Preload("Operations").
		Preload("Schedules").
		Find(&list).Error
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list vehicle types", Err: err}
	}
	return list, nil
}

// Aggregates sums active operation quantities and counts active schedules
// for one vehicle type. Missing rows yield zero totals, never an error.
func (r VehicleTypeRepository) Aggregates(id uint) (domain.VehicleTypeAggregates, error) {
	var agg domain.VehicleTypeAggregates

	err := r.DB.Model(&domain.Operation{}).
		Where("vehicle_type_id = ?", id).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&agg.TotalOperations).Error
	if err != nil {
		return domain.VehicleTypeAggregates{}, domain.InternalError{Msg: "failed to sum operations", Err: err}
	}

	err = r.DB.Model(&domain.Schedule{}).
		Where("vehicle_type_id = ?", id).
		Count(&agg.TotalSchedules).Error
	if err != nil {
		return domain.VehicleTypeAggregates{}, domain.InternalError{Msg: "failed to count schedules", Err: err}
	}

	return agg, nil
}

// SoftDeleteCascade stamps the vehicle type and all of its schedules and
// operations as deleted in one transaction. A missing id is reported as
// NotFound instead of silently touching zero rows.
func (r VehicleTypeRepository) SoftDeleteCascade(id uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var vt domain.VehicleType
		if err := tx.Select("id").First(&vt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "vehicle type"}
			}
			return err
		}

		if err := tx.Where("vehicle_type_id = ?", id).Delete(&domain.Schedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vehicle_type_id = ?", id).Delete(&domain.Operation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&vt).Error
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Msg: "failed to soft delete vehicle type", Err: err}
	}
	return nil
}
