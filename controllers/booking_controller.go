package controllers

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"resortly/builders"
	"resortly/config"
	"resortly/constants"
	"resortly/dto"
	"resortly/errors"
	"resortly/models"
	"resortly/response"
	"resortly/services"
	"resortly/services/notification"
	"resortly/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var bookingFacade *services.BookingFacade

// SetBookingFacade thiết lập facade đặt phòng cho các controller
func SetBookingFacade(f *services.BookingFacade) {
	bookingFacade = f
}

// generateBookingCode tạo mã đơn đặt phòng ngắn từ uuid
func generateBookingCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

func invalidateBookingCaches(c *gin.Context) {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteKeysByPattern(c.Request.Context(), config.RedisClient, "bookings:*"); err != nil {
		log.Printf("Lỗi khi xóa cache booking: %v", err)
	}
}

func toBookingResponse(booking models.Booking) dto.BookingUserResponse {
	resp := dto.BookingUserResponse{
		ID:           booking.ID,
		Code:         booking.Code,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		Adults:       booking.Adults,
		Children:     booking.Children,
		ExtraBeds:    booking.ExtraBeds,
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
		RoomSubtotal: booking.RoomSubtotal,
		ExtraBedCost: booking.ExtraBedCost,
		Tax:          booking.Tax,
		TotalPrice:   booking.TotalPrice,
		Resort: dto.BookingResortResponse{
			ID:       booking.Resort.ID,
			Type:     booking.Resort.Type,
			Name:     booking.Resort.Name,
			Address:  booking.Resort.Address,
			Province: booking.Resort.Province,
			District: booking.Resort.District,
			Price:    booking.Resort.Price,
			Avatar:   booking.Resort.Avatar,
		},
		Room: dto.BookingRoomResponse{
			ID:       booking.Room.RoomId,
			ResortID: booking.Room.ResortID,
			RoomName: booking.Room.RoomName,
			Price:    booking.Room.Price,
		},
		PaymentStatus: booking.PaymentStatus,
	}

	if booking.User != nil {
		resp.User = dto.ActorResponse{
			Name:  booking.User.Name,
			Email: booking.User.Email,
		}
	}

	return resp
}

// CreateBooking tạo đơn đặt phòng mới cho người dùng đang đăng nhập
func CreateBooking(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking := builders.NewBookingBuilder().
		WithCode(generateBookingCode()).
		WithUser(currentUserID).
		WithResort(req.ResortID).
		WithRoom(req.RoomID).
		WithDates(req.CheckInDate, req.CheckOutDate).
		WithGuests(req.Adults, req.Children, req.ExtraBeds).
		WithPayment(req.PaymentStatus, req.PaymentID).
		Build()

	if err := validator.ValidateBooking(booking); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	if err := bookingFacade.CreateBooking(c.Request.Context(), booking); err != nil {
		switch {
		case errors.HasCode(err, errors.ErrCodeBookingConflict):
			response.ConflictWithMessage(c, errors.GetAppError(err).Message)
		case errors.HasCode(err, errors.ErrCodeRoomLockBusy):
			response.ConflictWithMessage(c, "Phòng đang được đặt bởi người khác, vui lòng thử lại")
		case errors.HasCode(err, errors.ErrCodeInvalidDateRange), errors.HasCode(err, errors.ErrCodeInvalidFormat):
			response.BadRequest(c, errors.GetAppError(err).Message)
		case errors.HasCode(err, errors.ErrCodeDBNotFound):
			response.NotFound(c)
		case errors.IsAppError(err):
			response.BadRequest(c, errors.GetAppError(err).Message)
		default:
			response.ServerError(c)
		}
		return
	}

	// Gửi email xác nhận, thất bại không chặn đơn
	go func(booking models.Booking) {
		var user models.User
		if err := config.DB.First(&user, *booking.UserID).Error; err != nil {
			log.Printf("Không tìm thấy người dùng %d để gửi email: %v", *booking.UserID, err)
			return
		}
		if err := services.SendBookingEmail(user.Email, booking.Code, booking.TotalPrice, booking.CheckInDate, booking.CheckOutDate); err != nil {
			log.Printf("Lỗi khi gửi email xác nhận đặt phòng: %v", err)
		}
	}(*booking)

	if err := config.DB.Preload("User").Preload("Resort").Preload("Room").First(booking, booking.ID).Error; err != nil {
		log.Printf("Lỗi khi load lại booking %d: %v", booking.ID, err)
	}

	invalidateBookingCaches(c)
	broadcast(notification.NewBookingMessageBuilder(booking.Code, booking.Resort.Name, booking.TotalPrice).Build())

	response.Success(c, toBookingResponse(*booking))
}

// GetMyBookings trả về lịch sử đặt phòng của người dùng đang đăng nhập
func GetMyBookings(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var bookings []models.Booking
	err := config.DB.Preload("User").Preload("Resort").Preload("Room").
		Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	bookingsResponse := make([]dto.BookingUserResponse, 0)
	for _, booking := range bookings {
		bookingsResponse = append(bookingsResponse, toBookingResponse(booking))
	}

	response.SuccessWithTotal(c, bookingsResponse, len(bookingsResponse))
}

// GetBookings trả về danh sách đơn đặt phòng cho trang quản trị.
// Admin thấy tất cả, chủ resort chỉ thấy đơn của resort mình.
func GetBookings(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var allBookings []models.Booking

	tx := config.DB.Preload("User").Preload("Resort").Preload("Room")
	if currentUserRole == constants.RoleOwner {
		var resortIDs []uint
		if err := config.DB.Model(&models.Resort{}).
			Where("user_id = ?", currentUserID).
			Pluck("id", &resortIDs).Error; err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("resort_id IN ?", resortIDs)
	}

	if err := tx.Find(&allBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Áp dụng filter
	statusFilter := c.Query("status")
	resortFilter := c.Query("resortId")
	codeFilter := c.Query("code")

	filteredBookings := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && booking.Status != parsedStatus {
				continue
			}
		}
		if resortFilter != "" {
			parsedResortID, err := strconv.Atoi(resortFilter)
			if err == nil && booking.ResortID != uint(parsedResortID) {
				continue
			}
		}
		if codeFilter != "" {
			if !strings.Contains(strings.ToLower(booking.Code), strings.ToLower(codeFilter)) {
				continue
			}
		}
		filteredBookings = append(filteredBookings, booking)
	}
	total := len(filteredBookings)

	// Xếp theo đơn mới nhất
	sort.Slice(filteredBookings, func(i, j int) bool {
		return filteredBookings[i].CreatedAt.After(filteredBookings[j].CreatedAt)
	})

	page, limit := getPagination(c)
	start := page * limit
	end := start + limit
	if start >= total {
		filteredBookings = []models.Booking{}
	} else if end > total {
		filteredBookings = filteredBookings[start:]
	} else {
		filteredBookings = filteredBookings[start:end]
	}

	bookingsResponse := make([]dto.BookingUserResponse, 0)
	for _, booking := range filteredBookings {
		bookingsResponse = append(bookingsResponse, toBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingsResponse, page, limit, total)
}

// GetBookingDetail trả về chi tiết một đơn đặt phòng
func GetBookingDetail(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")
	bookingID := c.Param("id")

	var booking models.Booking
	err := config.DB.Preload("User").Preload("Resort").Preload("Room").
		First(&booking, bookingID).Error
	if err != nil {
		response.NotFound(c)
		return
	}

	if !canManageBooking(currentUserID, currentUserRole, booking) {
		response.Forbidden(c)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// canManageBooking kiểm tra quyền thao tác trên đơn:
// admin, chủ resort của đơn, hoặc chính người đặt
func canManageBooking(userID uint, role int, booking models.Booking) bool {
	if role == constants.RoleAdmin {
		return true
	}
	if booking.UserID != nil && *booking.UserID == userID {
		return true
	}
	if role == constants.RoleOwner && booking.Resort.UserID == userID {
		return true
	}
	return false
}

// ChangeBookingStatus cập nhật trạng thái đơn đặt phòng theo máy trạng thái
func ChangeBookingStatus(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Resort").First(&booking, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canManageBooking(currentUserID, currentUserRole, booking) {
		response.Forbidden(c)
		return
	}

	// Người đặt chỉ được hủy đơn của mình
	if currentUserRole == constants.RoleUser && req.Status != constants.BookingStatusCancelled {
		response.Forbidden(c)
		return
	}

	var err error
	switch req.Status {
	case constants.BookingStatusCancelled:
		err = bookingFacade.CancelBooking(booking.ID)
	case constants.BookingStatusCompleted:
		err = bookingFacade.CompleteBooking(booking.ID)
	case constants.BookingStatusConfirmed:
		err = bookingFacade.ConfirmBooking(c.Request.Context(), booking.ID)
	default:
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err != nil {
		switch {
		case errors.HasCode(err, errors.ErrCodeBookingConflict):
			response.ConflictWithMessage(c, errors.GetAppError(err).Message)
		case errors.HasCode(err, errors.ErrCodeRoomLockBusy):
			response.ConflictWithMessage(c, "Phòng đang được đặt bởi người khác, vui lòng thử lại")
		case errors.HasCode(err, errors.ErrCodeDBNotFound):
			response.NotFound(c)
		case errors.IsAppError(err):
			response.BadRequest(c, errors.GetAppError(err).Message)
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	invalidateBookingCaches(c)

	if err := config.DB.Preload("User").Preload("Resort").Preload("Room").First(&booking, booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toBookingResponse(booking))
}
