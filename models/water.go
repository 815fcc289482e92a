package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// WaterUnit is a supported intake unit. Aggregation always happens in fluid
// ounces, so every unit must convert to that base.
type WaterUnit string

const (
	UnitMilliliter WaterUnit = "ml"
	UnitLiter      WaterUnit = "l"
	UnitFluidOunce WaterUnit = "floz"
	UnitCup        WaterUnit = "cup"
	UnitPint       WaterUnit = "pint"
)

// fluid ounces per one unit
var flozPerUnit = map[WaterUnit]float64{
	UnitMilliliter: 0.033814,
	UnitLiter:      33.814,
	UnitFluidOunce: 1,
	UnitCup:        8,
	UnitPint:       16,
}

func (u WaterUnit) Valid() bool {
	_, ok := flozPerUnit[u]
	return ok
}

// ToFluidOunces converts amount expressed in u to the fluid-ounce base.
func (u WaterUnit) ToFluidOunces(amount float64) (float64, error) {
	f, ok := flozPerUnit[u]
	if !ok {
		return 0, fmt.Errorf("unsupported water unit %q", u)
	}
	return amount * f, nil
}

type WaterPlan struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Name        string    `json:"name"`
	DailyTarget float64   `json:"daily_target"`
	Unit        WaterUnit `gorm:"size:8" json:"unit"`
}

type WaterEntry struct {
	gorm.Model
	UserID  uint      `gorm:"index;not null" json:"user_id"`
	Amount  float64   `json:"amount"`
	Unit    WaterUnit `gorm:"size:8" json:"unit"`
	DrankAt time.Time `gorm:"index;not null" json:"drank_at"`
}
