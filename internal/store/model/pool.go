package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// Pool is a named water-body profile.
type Pool struct {
	ID            uuid.UUID `json:"id" gorm:"primaryKey;type:VARCHAR(36)"`
	Name          string    `json:"name" gorm:"not null"`
	VolumeLiters  float64   `json:"volume_liters" gorm:"not null"`
	VolumeGallons float64   `json:"volume_gallons" gorm:"not null"`
	DefaultUnits  string    `json:"default_units" gorm:"type:VARCHAR(16);not null;default:metric"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`
}

type PoolList []Pool

func (p Pool) String() string {
	val, _ := json.Marshal(p)
	return string(val)
}

func NewPool(name string, volumeLiters, volumeGallons float64, defaultUnits string) Pool {
	if defaultUnits == "" {
		defaultUnits = UnitsMetric
	}
	return Pool{
		ID:            uuid.New(),
		Name:          name,
		VolumeLiters:  volumeLiters,
		VolumeGallons: volumeGallons,
		DefaultUnits:  defaultUnits,
		CreatedAt:     time.Now().UTC(),
	}
}
