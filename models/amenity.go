package models

import (
	"fmt"
	"time"
)

type Amenity struct {
	Id        int       `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Status    int       `gorm:"default:0" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (a *Amenity) ValidateStatus() error {
	if a.Status < 0 || a.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", a.Status)
	}
	return nil
}
