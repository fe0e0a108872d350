package controllers

import (
	"sort"
	"strconv"
	"time"

	"resortly/config"
	"resortly/constants"
	"resortly/dto"
	"resortly/models"
	"resortly/response"

	"github.com/gin-gonic/gin"
)

// revenueStatuses là các trạng thái đơn được tính vào doanh thu
var revenueStatuses = []int{constants.BookingStatusConfirmed, constants.BookingStatusCompleted}

// GetAnalyticsSummary trả về số liệu tổng quan cho dashboard admin
func GetAnalyticsSummary(c *gin.Context) {
	var summary dto.AnalyticsSummaryResponse

	if err := config.DB.Model(&models.User{}).Count(&summary.TotalUsers).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&models.Resort{}).Count(&summary.TotalResorts).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&models.Resort{}).
		Where("status = ?", constants.ResortStatusPending).
		Count(&summary.PendingResorts).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&models.Booking{}).Count(&summary.TotalBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var totalRevenue *float64
	err := config.DB.Model(&models.Booking{}).
		Select("SUM(total_price)").
		Where("status IN ?", revenueStatuses).
		Scan(&totalRevenue).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	if totalRevenue != nil {
		summary.TotalRevenue = *totalRevenue
	}

	response.Success(c, summary)
}

// GetRevenueAnalytics trả về doanh thu gộp theo tháng trong một năm
func GetRevenueAnalytics(c *gin.Context) {
	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsedYear, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(c, "year không hợp lệ")
			return
		}
		year = parsedYear
	}

	var bookings []models.Booking
	err := config.DB.Where("status IN ?", revenueStatuses).Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	points := make(map[string]*dto.RevenuePoint)
	for _, booking := range bookings {
		if booking.CreatedAt.Year() != year {
			continue
		}

		month := booking.CreatedAt.Format(constants.MonthLayout)
		point, exists := points[month]
		if !exists {
			point = &dto.RevenuePoint{Month: month}
			points[month] = point
		}
		point.Bookings++
		point.Revenue += booking.TotalPrice
	}

	revenueResponse := make([]dto.RevenuePoint, 0, len(points))
	for _, point := range points {
		revenueResponse = append(revenueResponse, *point)
	}

	sort.Slice(revenueResponse, func(i, j int) bool {
		return revenueResponse[i].Month < revenueResponse[j].Month
	})

	response.Success(c, revenueResponse)
}

// GetTopResorts trả về các resort có nhiều đơn đặt phòng nhất
func GetTopResorts(c *gin.Context) {
	limit := 5
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var bookings []models.Booking
	err := config.DB.Preload("Resort").
		Where("status IN ?", revenueStatuses).
		Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	tops := make(map[uint]*dto.TopResortResponse)
	for _, booking := range bookings {
		top, exists := tops[booking.ResortID]
		if !exists {
			top = &dto.TopResortResponse{
				ResortID: booking.ResortID,
				Name:     booking.Resort.Name,
			}
			tops[booking.ResortID] = top
		}
		top.Bookings++
		top.Revenue += booking.TotalPrice
	}

	topResponse := make([]dto.TopResortResponse, 0, len(tops))
	for _, top := range tops {
		topResponse = append(topResponse, *top)
	}

	sort.Slice(topResponse, func(i, j int) bool {
		if topResponse[i].Bookings != topResponse[j].Bookings {
			return topResponse[i].Bookings > topResponse[j].Bookings
		}
		return topResponse[i].Revenue > topResponse[j].Revenue
	})

	if len(topResponse) > limit {
		topResponse = topResponse[:limit]
	}

	response.SuccessWithTotal(c, topResponse, len(topResponse))
}
