package services

import (
	"strconv"

	"backend/internal/domain"
	"backend/internal/repositories"
	"backend/internal/utils"
)

// FleetService fronts the repositories for the HTTP layer and emits one
// log event per mutation. Constructed per request so log lines carry the
// request id.
type FleetService struct {
	VehicleTypes repositories.VehicleTypeRepository
	Operations   repositories.OperationRepository
	Schedules    repositories.ScheduleRepository
	RequestID    string
}

func (s FleetService) CreateVehicleType(vt *domain.VehicleType) error {
	if err := s.VehicleTypes.Create(vt); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "vehicle_type", "create", "id="+formatID(vt.ID))
	return nil
}

func (s FleetService) UpdateVehicleType(id uint, vt domain.VehicleType) (domain.VehicleType, error) {
	updated, err := s.VehicleTypes.Update(id, vt)
	if err != nil {
		return domain.VehicleType{}, err
	}
	utils.LogEvent(s.RequestID, "vehicle_type", "update", "id="+formatID(id))
	return updated, nil
}

func (s FleetService) ListVehicleTypes() ([]domain.VehicleType, error) {
	return s.VehicleTypes.ListActive()
}

func (s FleetService) VehicleTypeAggregates(id uint) (domain.VehicleTypeAggregates, error) {
	return s.VehicleTypes.Aggregates(id)
}

// SoftDeleteVehicleType cascades the soft delete over the vehicle type and
// its schedules and operations atomically.
func (s FleetService) SoftDeleteVehicleType(id uint) error {
	if err := s.VehicleTypes.SoftDeleteCascade(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "vehicle_type", "soft_delete_cascade", "id="+formatID(id))
	return nil
}

func (s FleetService) CreateOperation(op *domain.Operation) error {
	if err := s.Operations.Create(op); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "operation", "create", "id="+formatID(op.ID))
	return nil
}

func (s FleetService) UpdateOperation(id uint, op domain.Operation) (domain.Operation, error) {
	updated, err := s.Operations.Update(id, op)
	if err != nil {
		return domain.Operation{}, err
	}
	utils.LogEvent(s.RequestID, "operation", "update", "id="+formatID(id))
	return updated, nil
}

func (s FleetService) ListOperations() ([]domain.Operation, error) {
	return s.Operations.ListActive()
}

func (s FleetService) CreateSchedule(sched *domain.Schedule) error {
	if err := s.Schedules.Create(sched); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "schedule", "create", "id="+formatID(sched.ID))
	return nil
}

func (s FleetService) UpdateSchedule(id uint, sched domain.Schedule) (domain.Schedule, error) {
	updated, err := s.Schedules.Update(id, sched)
	if err != nil {
		return domain.Schedule{}, err
	}
	utils.LogEvent(s.RequestID, "schedule", "update", "id="+formatID(id))
	return updated, nil
}

func (s FleetService) ListSchedulesByVehicleType(vehicleTypeID uint) ([]domain.Schedule, error) {
	return s.Schedules.ListActiveByVehicleType(vehicleTypeID)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
