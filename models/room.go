package models

import (
	"encoding/json"
	"time"
)

type Room struct {
	RoomId       uint            `json:"id" gorm:"primaryKey"`
	ResortID     uint            `json:"resortId"`
	RoomName     string          `json:"roomName"`
	NumBed       int             `json:"numBed"`
	People       int             `json:"people"`
	Price        int             `json:"price"` // Giá mỗi đêm
	Description  string          `json:"description"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img" gorm:"type:json"` // Danh sách ảnh theo thứ tự
	Parent       Resort          `json:"parent" gorm:"foreignKey:ResortID"`
	Reservations []Reservation   `gorm:"foreignKey:RoomID"`
}
