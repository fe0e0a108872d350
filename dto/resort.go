package dto

import (
	"encoding/json"
	"time"

	"resortly/models"
)

// CreateResortRequest là DTO cho request tạo resort (đi kèm multipart ảnh)
type CreateResortRequest struct {
	Name             string   `form:"name" binding:"required"`
	Type             int      `form:"type"`
	Address          string   `form:"address" binding:"required"`
	Province         string   `form:"province"`
	District         string   `form:"district"`
	ShortDescription string   `form:"shortDescription"`
	Description      string   `form:"description"`
	Price            int      `form:"price"`
	People           int      `form:"people"`
	NumBed           int      `form:"numBed"`
	AmenityIDs       []int    `form:"amenityIds"`
	Rooms            string   `form:"rooms"` // JSON danh sách phòng
}

// CreateRoomInput là một phòng trong phần rooms của request tạo resort
type CreateRoomInput struct {
	RoomName    string `json:"roomName" binding:"required"`
	Price       int    `json:"price" binding:"required"`
	Description string `json:"description"`
	NumBed      int    `json:"numBed"`
	People      int    `json:"people"`
}

// UpdateResortRequest là DTO cho request chủ resort chỉnh sửa
type UpdateResortRequest struct {
	ID               uint   `json:"id" binding:"required"`
	Name             string `json:"name"`
	Type             *int   `json:"type"`
	Address          string `json:"address"`
	Province         string `json:"province"`
	District         string `json:"district"`
	ShortDescription string `json:"shortDescription"`
	Description      string `json:"description"`
	Price            *int   `json:"price"`
	Visible          *bool  `json:"visible"`
	AmenityIDs       []int  `json:"amenityIds"`
}

// ChangeResortStatusRequest là DTO cho request admin duyệt resort
type ChangeResortStatusRequest struct {
	Status  int   `json:"status"`
	Visible *bool `json:"visible"`
}

type ResortResponse struct {
	ID               uint             `json:"id"`
	Type             int              `json:"type"`
	Name             string           `json:"name"`
	Address          string           `json:"address"`
	Province         string           `json:"province"`
	District         string           `json:"district"`
	CreateAt         time.Time        `json:"createdAt"`
	UpdateAt         time.Time        `json:"updatedAt"`
	Avatar           string           `json:"avatar"`
	ShortDescription string           `json:"shortDescription"`
	Status           int              `json:"status"`
	Visible          bool             `json:"visible"`
	Price            int              `json:"price"`
	People           int              `json:"people"`
	NumBed           int              `json:"numBed"`
	Star             float64          `json:"star"`
	Amenities        []models.Amenity `json:"amenities"`
}

type ResortDetailResponse struct {
	ResortResponse
	Img         json.RawMessage `json:"img"`
	Description string          `json:"description"`
	Owner       ActorResponse   `json:"owner"`
	Rooms       []RoomResponse  `json:"rooms"`
}

// SearchFilters lưu bộ lọc tìm kiếm gần nhất của người dùng
type SearchFilters struct {
	Type       *int       `json:"type,omitempty"`
	Province   string     `json:"province,omitempty"`
	District   string     `json:"district,omitempty"`
	Name       string     `json:"name,omitempty"`
	PriceMin   *int       `json:"priceMin,omitempty"`
	PriceMax   *int       `json:"priceMax,omitempty"`
	FromDate   *time.Time `json:"fromDate,omitempty"`
	ToDate     *time.Time `json:"toDate,omitempty"`
	AmenityIDs []int      `json:"amenityIds,omitempty"`
}

// ScoredResort là resort kèm điểm phù hợp với câu tìm kiếm
type ScoredResort struct {
	Resort models.Resort `json:"resort"`
	Score  int           `json:"score"`
}
