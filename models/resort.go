package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Resort struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	Type             int             `json:"type"` // Loại chỗ nghỉ (0 resort, 1 hotel, 2 villa, 3 homestay, 4 farmhouse)
	UserID           uint            `json:"userId"`
	Name             string          `json:"name"`
	Address          string          `json:"address"`
	Province         string          `json:"province"`
	District         string          `json:"district"`
	CreateAt         time.Time       `gorm:"autoCreateTime"`
	UpdateAt         time.Time       `gorm:"autoUpdateTime"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img" gorm:"type:json"` // Hình ảnh resort
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Status           int             `json:"status"`                              // Trạng thái kiểm duyệt (0 pending, 1 approved, 2 rejected)
	Visible          bool            `json:"visible" gorm:"default:true"`         // Cờ hiển thị với khách
	User             User            `json:"user" gorm:"foreignKey:UserID"`       // Chủ sở hữu
	Rooms            []Room          `json:"rooms" gorm:"foreignKey:ResortID"`    // Danh sách các phòng
	Reviews          []Review        `json:"reviews" gorm:"foreignKey:ResortID"`  // Danh sách đánh giá
	Amenities        []Amenity       `json:"amenities" gorm:"many2many:resort_amenities;"`
	Price            int             `json:"price"` // Giá mỗi đêm thấp nhất trong các phòng
	People           int             `json:"people"`
	NumBed           int             `json:"numBed"`
	Star             float64         `json:"star"` // Điểm đánh giá trung bình
}

func (r *Resort) ValidateType() error {
	if r.Type < 0 || r.Type > 4 {
		return fmt.Errorf("invalid Type: %d, must be between 0 and 4", r.Type)
	}
	return nil
}

func (r *Resort) ValidateStatus() error {
	if r.Status < 0 || r.Status > 2 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 2", r.Status)
	}
	return nil
}
