package services

import (
	"context"
	"fmt"
	"time"

	"resortly/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Thời gian giữ khóa đặt phòng, đủ cho một lần kiểm tra + ghi
const RoomLockTTL = 10 * time.Second

// RoomLockClient là phần API Redis mà khóa đặt phòng cần dùng.
// *redis.Client thỏa interface này.
type RoomLockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RoomLockKey tạo key khóa đặt phòng theo phòng
func RoomLockKey(roomID uint) string {
	return fmt.Sprintf("booking_lock:room:%d", roomID)
}

// AcquireRoomLock lấy khóa đặt phòng cho một phòng qua SETNX.
// Hai request đặt cùng phòng chạy đồng thời thì chỉ một request giữ được khóa,
// request còn lại nhận ErrCodeRoomLockBusy.
func AcquireRoomLock(ctx context.Context, rdb RoomLockClient, roomID uint) (string, error) {
	token := uuid.NewString()

	ok, err := rdb.SetNX(ctx, RoomLockKey(roomID), token, RoomLockTTL).Result()
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy khóa đặt phòng", err)
	}
	if !ok {
		return "", errors.NewAppError(errors.ErrCodeRoomLockBusy, "Phòng đang có người khác đặt, vui lòng thử lại", nil)
	}

	return token, nil
}

// ReleaseRoomLock trả khóa đặt phòng, chỉ xóa khi token còn là của mình
func ReleaseRoomLock(ctx context.Context, rdb RoomLockClient, roomID uint, token string) {
	key := RoomLockKey(roomID)

	val, err := rdb.Get(ctx, key).Result()
	if err != nil || val != token {
		return
	}
	rdb.Del(ctx, key)
}
