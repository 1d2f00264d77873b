package domain

import (
	"time"

	"gorm.io/gorm"
)

// RepeatPattern is the closed set of schedule recurrence values.
type RepeatPattern string

const (
	RepeatDaily   RepeatPattern = "DAILY"
	RepeatWeekly  RepeatPattern = "WEEKLY"
	RepeatMonthly RepeatPattern = "MONTHLY"
)

// VehicleType is the aggregate root. Operations and schedules are
// soft-deleted together with it; rows are never removed physically.
type VehicleType struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:191;not null" json:"name"`
	Description string         `gorm:"size:255" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	Operations []Operation `gorm:"foreignKey:VehicleTypeID" json:"operations,omitempty"`
	Schedules  []Schedule  `gorm:"foreignKey:VehicleTypeID" json:"schedules,omitempty"`
}

// Operation records a quantity of work against a vehicle type.
type Operation struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	VehicleTypeID uint           `gorm:"index;not null" json:"vehicleTypeId"`
	Name          string         `gorm:"size:191" json:"name,omitempty"`
	Quantity      int            `gorm:"not null" json:"quantity"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	VehicleType *VehicleType `gorm:"foreignKey:VehicleTypeID" json:"vehicleType,omitempty"`
}

// Schedule is a recurring route plan for a vehicle type. The repeat
// pattern is stored as-is and never expanded into calendar instances.
type Schedule struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	VehicleTypeID uint           `gorm:"index;not null" json:"vehicleTypeId"`
	Source        string         `gorm:"size:191;not null" json:"source"`
	Destination   string         `gorm:"size:191;not null" json:"destination"`
	Duration      float64        `gorm:"not null" json:"duration"`
	Distance      float64        `gorm:"not null" json:"distance"`
	TimeOfDay     string         `gorm:"size:64" json:"timeOfDay"`
	StartDate     time.Time      `json:"startDate"`
	EndDate       *time.Time     `json:"endDate"`
	RepeatPattern RepeatPattern  `gorm:"size:16;not null" json:"repeatPattern"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deletedAt"`
}

// VehicleTypeAggregates summarizes active child rows of one vehicle type.
// Totals are zero-filled; they are never absent in a response.
type VehicleTypeAggregates struct {
	TotalOperations int64 `json:"totalOperations"`
	TotalSchedules  int64 `json:"totalSchedules"`
}
