package controllers

import (
	"resortly/config"
	"resortly/constants"
	"resortly/dto"
	"resortly/errors"
	"resortly/models"
	"resortly/response"
	"resortly/services"
	"resortly/validator"

	"github.com/gin-gonic/gin"
)

func toReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:       review.ID,
		ResortID: review.ResortID,
		Star:     review.Star,
		Comment:  review.Comment,
		User: dto.ActorResponse{
			Name:  review.User.Name,
			Email: review.User.Email,
		},
		CreatedAt: review.CreateAt,
	}
}

// CreateReview tạo đánh giá cho resort và tính lại điểm trung bình
func CreateReview(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var resort models.Resort
	if err := config.DB.First(&resort, req.ResortID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if resort.Status != constants.ResortStatusApproved {
		response.BadRequest(c, "Resort chưa được duyệt, không thể đánh giá")
		return
	}

	review := models.Review{
		UserID:   currentUserID,
		ResortID: req.ResortID,
		Star:     req.Star,
		Comment:  req.Comment,
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.UpdateResortRating(req.ResortID); err != nil {
		response.ServerError(c)
		return
	}

	invalidateResortCaches(c)

	if err := config.DB.Preload("User").First(&review, review.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toReviewResponse(review))
}

// GetReviews trả về danh sách đánh giá của một resort
func GetReviews(c *gin.Context) {
	resortID := c.Param("id")

	var resort models.Resort
	if err := config.DB.First(&resort, resortID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var reviews []models.Review
	err := config.DB.Preload("User").
		Where("resort_id = ?", resort.ID).
		Order("create_at DESC").
		Find(&reviews).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	reviewsResponse := make([]dto.ReviewResponse, 0)
	for _, review := range reviews {
		reviewsResponse = append(reviewsResponse, toReviewResponse(review))
	}

	response.SuccessWithTotal(c, reviewsResponse, len(reviewsResponse))
}
