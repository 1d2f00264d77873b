package repositories

import (
	"errors"

	"backend/internal/domain"

	"gorm.io/gorm"
)

type OperationRepository struct {
	DB *gorm.DB
}

func (r OperationRepository) Create(op *domain.Operation) error {
	if err := r.DB.Create(op).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ConstraintError{Resource: "operation", Msg: "vehicleTypeId does not reference an existing vehicle type", Err: err}
		}
		return domain.InternalError{Msg: "failed to create operation", Err: err}
	}
	return nil
}

func (r OperationRepository) Update(id uint, op domain.Operation) (domain.Operation, error) {
	var existing domain.Operation
	if err := r.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Operation{}, domain.NotFoundError{Resource: "operation"}
		}
		return domain.Operation{}, domain.InternalError{Msg: "failed to load operation", Err: err}
	}

	updates := map[string]any{
		"vehicle_type_id": op.VehicleTypeID,
		"quantity":        op.Quantity,
		"name":            op.Name,
	}
	if err := r.DB.Model(&existing).Updates(updates).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.Operation{}, domain.ConstraintError{Resource: "operation", Msg: "vehicleTypeId does not reference an existing vehicle type", Err: err}
		}
		return domain.Operation{}, domain.InternalError{Msg: "failed to update operation", Err: err}
	}
	return existing, nil
}

// ListActive returns all active operations, each carrying its parent
// vehicle type.
func (r OperationRepository) ListActive() ([]domain.Operation, error) {
	list := []domain.Operation{}
	if err := r.DB.Preload("VehicleType").Find(&list).Error; err != nil {
		return nil, domain.InternalError{Msg: "failed to list operations", Err: err}
	}
	return list, nil
}
