package dto

import "encoding/json"

type RoomResponse struct {
	ID          uint            `json:"id"`
	ResortID    uint            `json:"resortId"`
	RoomName    string          `json:"roomName"`
	Price       int             `json:"price"`
	NumBed      int             `json:"numBed"`
	People      int             `json:"people"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
}

// RoomCalendarEntry là một ngày trong lịch đặt phòng của một phòng
type RoomCalendarEntry struct {
	Date   string `json:"date"`
	Status int    `json:"status"`
}
