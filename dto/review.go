package dto

import "time"

// CreateReviewRequest là DTO cho request đánh giá resort
type CreateReviewRequest struct {
	ResortID uint   `json:"resortId" binding:"required"`
	Star     int    `json:"star" binding:"required"`
	Comment  string `json:"comment"`
}

type ReviewResponse struct {
	ID        uint          `json:"id"`
	ResortID  uint          `json:"resortId"`
	Star      int           `json:"star"`
	Comment   string        `json:"comment"`
	User      ActorResponse `json:"user"`
	CreatedAt time.Time     `json:"createdAt"`
}
