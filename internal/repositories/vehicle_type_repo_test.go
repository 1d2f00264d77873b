package repositories

import (
	"errors"
	"testing"
	"time"

	"backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestVehicleTypeCreateAssignsID(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := VehicleTypeRepository{DB: gdb}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `vehicle_types`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	vt := domain.VehicleType{Name: "Truck"}
	if err := repo.Create(&vt); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if vt.ID != 7 {
		t.Fatalf("expected store-assigned id 7, got %d", vt.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleTypeUpdateReplacesFields(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := VehicleTypeRepository{DB: gdb}

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `vehicle_types`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at", "updated_at", "deleted_at"}).
			AddRow(3, "Truck", "old", now, now, nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `vehicle_types` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.Update(3, domain.VehicleType{Name: "Bus", Description: "city bus"})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.Name != "Bus" || updated.Description != "city bus" {
		t.Fatalf("fields not replaced: %+v", updated)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleTypeUpdateMissingIDIsNotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := VehicleTypeRepository{DB: gdb}

	mock.ExpectQuery("SELECT \\* FROM `vehicle_types`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Update(42, domain.VehicleType{Name: "Bus"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestAggregatesSumsActiveRows(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := VehicleTypeRepository{DB: gdb}

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(quantity\\), 0\\) FROM `operations`").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(8))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `schedules`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	agg, err := repo.Aggregates(1)
	if err != nil {
		t.Fatalf("aggregates error: %v", err)
	}
	if agg.TotalOperations != 8 || agg.TotalSchedules != 2 {
		t.Fatalf("unexpected aggregates: %+v", agg)
	}
}

func TestAggregatesZeroFillWhenNoRows(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := VehicleTypeRepository{DB: gdb}

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(quantity\\), 0\\) FROM `operations`").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `schedules`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	agg, err := repo.Aggregates(99)
	if err != nil {
		t.Fatalf("aggregates error: %v", err)
	}
	if agg.TotalOperations != 0 || agg.TotalSchedules != 0 {
		t.Fatalf("expected zero-filled aggregates, got %+v", agg)
	}
}

func TestSoftDeleteCascadeCommitsAllThree(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := VehicleTypeRepository{DB: gdb}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `vehicle_types`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec("UPDATE `schedules` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE `operations` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `vehicle_types` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.SoftDeleteCascade(3); err != nil {
		t.Fatalf("cascade error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSoftDeleteCascadeMissingIDIsNotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := VehicleTypeRepository{DB: gdb}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `vehicle_types`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.SoftDeleteCascade(404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSoftDeleteCascadeRollsBackOnFailure(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := VehicleTypeRepository{DB: gdb}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `vehicle_types`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec("UPDATE `schedules` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `operations` SET `deleted_at`").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.SoftDeleteCascade(3)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListActiveNestsChildren(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := VehicleTypeRepository{DB: gdb}

	// preload order across the two child tables is not guaranteed
	mock.MatchExpectationsInOrder(false)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `vehicle_types`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "Truck", "", now, now, nil))
	mock.ExpectQuery("SELECT \\* FROM `operations`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_type_id", "name", "quantity", "created_at", "updated_at", "deleted_at"}).
			AddRow(10, 1, "load", 5, now, now, nil))
	mock.ExpectQuery("SELECT \\* FROM `schedules`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_type_id", "source", "destination", "duration", "distance", "time_of_day", "start_date", "end_date", "repeat_pattern", "created_at", "updated_at", "deleted_at"}))

	list, err := repo.ListActive()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 vehicle type, got %d", len(list))
	}
	if len(list[0].Operations) != 1 || list[0].Operations[0].Quantity != 5 {
		t.Fatalf("operations not nested: %+v", list[0].Operations)
	}
	if len(list[0].Schedules) != 0 {
		t.Fatalf("expected no schedules, got %d", len(list[0].Schedules))
	}
}
