package controllers

import (
	"time"

	"resortly/config"
	"resortly/constants"
	"resortly/dto"
	"resortly/models"
	"resortly/response"
	"resortly/services"

	"github.com/gin-gonic/gin"
)

func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.RoomId,
		ResortID:    room.ResortID,
		RoomName:    room.RoomName,
		Price:       room.Price,
		NumBed:      room.NumBed,
		People:      room.People,
		Description: room.Description,
		Avatar:      room.Avatar,
		Img:         room.Img,
	}
}

// GetRoomsByResort trả về danh sách phòng của một resort
func GetRoomsByResort(c *gin.Context) {
	resortID := c.Param("id")

	var resort models.Resort
	if err := config.DB.First(&resort, resortID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var rooms []models.Room
	if err := config.DB.Where("resort_id = ?", resort.ID).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomsResponse := make([]dto.RoomResponse, 0)
	for _, room := range rooms {
		roomsResponse = append(roomsResponse, toRoomResponse(room))
	}

	response.Success(c, roomsResponse)
}

// GetRoomDetail trả về chi tiết một phòng
func GetRoomDetail(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	if err := config.DB.Preload("Parent").First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, gin.H{
		"room":   toRoomResponse(room),
		"resort": toResortResponse(room.Parent),
	})
}

// GetRoomBookingDates trả về lịch đặt phòng theo tháng của một phòng.
// Mỗi ngày có status: 0 trống, 1 đã đặt.
func GetRoomBookingDates(c *gin.Context) {
	roomID := c.DefaultQuery("id", "")
	date := c.DefaultQuery("date", "")

	if roomID == "" || date == "" {
		response.BadRequest(c, "id và date là bắt buộc")
		return
	}

	parsedDate, err := time.Parse(constants.MonthLayout, date)
	if err != nil {
		response.BadRequest(c, "Ngày không hợp lệ, vui lòng sử dụng định dạng mm/yyyy")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	reservations, err := services.GetRoomBookedRanges(config.DB, room.RoomId)
	if err != nil {
		response.ServerError(c)
		return
	}

	firstDay := time.Date(parsedDate.Year(), parsedDate.Month(), 1, 0, 0, 0, 0, time.Local)
	lastDay := firstDay.AddDate(0, 1, 0)

	var calendar []dto.RoomCalendarEntry
	for day := firstDay; day.Before(lastDay); day = day.AddDate(0, 0, 1) {
		status := 0
		// Ngày trả phòng không tính là đã đặt
		for _, reservation := range reservations {
			if !day.Before(reservation.FromDate) && day.Before(reservation.ToDate) {
				status = 1
				break
			}
		}

		calendar = append(calendar, dto.RoomCalendarEntry{
			Date:   day.Format(constants.DateLayout),
			Status: status,
		})
	}

	response.Success(c, calendar)
}
