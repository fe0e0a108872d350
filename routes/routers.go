package routes

import (
	"context"
	"net/http"

	"resortly/config"
	"resortly/constants"
	"resortly/controllers"
	middlewares "resortly/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func SetupRoutes(router *gin.Engine, m *melody.Melody) {

	api := router.Group("/api")
	api.Use(middlewares.SessionMiddleware())

	// Auth
	api.POST("/auth/register", controllers.RegisterUser)
	api.POST("/auth/login", controllers.Login)
	api.DELETE("/auth/logout", controllers.Logout)
	api.POST("/auth/google", controllers.AuthGoogle)
	api.GET("/verify-email", controllers.VerifyEmail)
	api.POST("/resendCode", controllers.ResendVerificationCode)
	api.GET("/auth/me", middlewares.AuthMiddleware(), controllers.GetProfile)

	// Resort cho khách
	api.GET("/resortUser", controllers.GetPublicResorts)
	api.GET("/fiteresort/search", controllers.SearchResorts)
	api.GET("/resort/:id", middlewares.OptionalAuthMiddleware(), controllers.GetResortDetail)
	api.GET("/resort/:id/rooms", controllers.GetRoomsByResort)
	api.GET("/resort/:id/reviews", controllers.GetReviews)

	// Resort cho chủ và admin
	api.GET("/resort", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.GetAllResorts)
	api.POST("/resort", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.CreateResort)
	api.PUT("/resortUpdate", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.UpdateResort)
	api.PATCH("/resort/:id/status", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ChangeResortStatus)

	// Phòng
	api.GET("/room/:id", controllers.GetRoomDetail)
	api.GET("/checkRoom", controllers.GetRoomBookingDates)

	// Đặt phòng
	api.POST("/booking", middlewares.AuthMiddleware(), controllers.CreateBooking)
	api.GET("/bookingHistory", middlewares.AuthMiddleware(), controllers.GetMyBookings)
	api.GET("/booking", middlewares.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), controllers.GetBookings)
	api.GET("/booking/:id", middlewares.AuthMiddleware(), controllers.GetBookingDetail)
	api.PUT("/bookingUpdate", middlewares.AuthMiddleware(), controllers.ChangeBookingStatus)

	// Wishlist
	api.GET("/wishlist", middlewares.AuthMiddleware(), controllers.GetWishlist)
	api.POST("/wishlist/:resortId", middlewares.AuthMiddleware(), controllers.AddToWishlist)
	api.DELETE("/wishlist/:resortId", middlewares.AuthMiddleware(), controllers.RemoveFromWishlist)

	// Đánh giá
	api.POST("/review", middlewares.AuthMiddleware(), controllers.CreateReview)

	// Thống kê cho admin
	api.GET("/analytics/summary", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetAnalyticsSummary)
	api.GET("/analytics/revenue", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetRevenueAnalytics)
	api.GET("/analytics/topResorts", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetTopResorts)

	api.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	api.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	api.GET("/test-broadcast", middlewares.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
