package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string        `gorm:"default:New User" json:"name"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"password"` // rỗng với tài khoản Google
	IsVerified    bool          `gorm:"default:false" json:"is_verified"`
	Code          string        `json:"code"`
	CodeCreatedAt time.Time     `gorm:"autoCreateTime" json:"codeCreatedAt"`
	Avatar        string        `json:"avatar"`
	Role          int           `gorm:"default:0" json:"role"`
	Status        int           `gorm:"default:1" json:"status"`
	WishlistIDs   pq.Int64Array `json:"wishlistIds" gorm:"column:wishlist_ids;type:integer[]"` // danh sách resort đã lưu
	Resorts       []Resort      `json:"resorts,omitempty" gorm:"foreignKey:UserID"`
}
