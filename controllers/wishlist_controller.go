package controllers

import (
	"strconv"

	"resortly/config"
	"resortly/dto"
	"resortly/models"
	"resortly/response"

	"github.com/gin-gonic/gin"
)

// GetWishlist trả về danh sách resort đã lưu của người dùng
func GetWishlist(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	resortsResponse := make([]dto.ResortResponse, 0)
	if len(user.WishlistIDs) > 0 {
		var resorts []models.Resort
		err := config.DB.Preload("Amenities").
			Where("id IN ?", []int64(user.WishlistIDs)).
			Find(&resorts).Error
		if err != nil {
			response.ServerError(c)
			return
		}

		for _, resort := range resorts {
			resortsResponse = append(resortsResponse, toResortResponse(resort))
		}
	}

	response.SuccessWithTotal(c, resortsResponse, len(resortsResponse))
}

// AddToWishlist lưu resort vào wishlist, thêm trùng không tạo bản ghi mới
func AddToWishlist(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	resortID, err := strconv.ParseInt(c.Param("resortId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "resortId không hợp lệ")
		return
	}

	var resort models.Resort
	if err := config.DB.First(&resort, resortID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.WishlistIDs = models.AddWishlistID(user.WishlistIDs, resortID)
	if err := config.DB.Model(&user).Update("wishlist_ids", user.WishlistIDs).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"wishlistIds": user.WishlistIDs})
}

// RemoveFromWishlist xóa resort khỏi wishlist
func RemoveFromWishlist(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	resortID, err := strconv.ParseInt(c.Param("resortId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "resortId không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.WishlistIDs = models.RemoveWishlistID(user.WishlistIDs, resortID)
	if err := config.DB.Model(&user).Update("wishlist_ids", user.WishlistIDs).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"wishlistIds": user.WishlistIDs})
}
