package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"resortly/errors"

	"github.com/redis/go-redis/v9"
)

// fakeLockClient giả lập SETNX/GET/DEL trên map trong bộ nhớ
type fakeLockClient struct {
	store map[string]string
}

func newFakeLockClient() *fakeLockClient {
	return &fakeLockClient{store: map[string]string{}}
}

func (f *fakeLockClient) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if _, exists := f.store[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	f.store[key] = fmt.Sprint(value)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeLockClient) Get(ctx context.Context, key string) *redis.StringCmd {
	val, ok := f.store[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeLockClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var deleted int64
	for _, key := range keys {
		if _, ok := f.store[key]; ok {
			delete(f.store, key)
			deleted++
		}
	}
	return redis.NewIntResult(deleted, nil)
}

func TestRoomLockKey(t *testing.T) {
	if key := RoomLockKey(42); key != "booking_lock:room:42" {
		t.Errorf("unexpected lock key: %s", key)
	}

	// Mỗi phòng một khóa riêng
	if RoomLockKey(1) == RoomLockKey(2) {
		t.Error("expected distinct keys for distinct rooms")
	}
}

func TestAcquireRoomLock(t *testing.T) {
	rdb := newFakeLockClient()
	ctx := context.Background()

	token, err := AcquireRoomLock(ctx, rdb, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty lock token")
	}

	// Phòng đang bị khóa thì request thứ hai phải nhận lock busy
	if _, err := AcquireRoomLock(ctx, rdb, 5); !errors.HasCode(err, errors.ErrCodeRoomLockBusy) {
		t.Errorf("expected ErrCodeRoomLockBusy, got %v", err)
	}

	// Phòng khác không bị ảnh hưởng
	if _, err := AcquireRoomLock(ctx, rdb, 6); err != nil {
		t.Errorf("unexpected error locking another room: %v", err)
	}
}

func TestReleaseRoomLock(t *testing.T) {
	rdb := newFakeLockClient()
	ctx := context.Background()

	token, err := AcquireRoomLock(ctx, rdb, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Token sai thì không được trả khóa của người khác
	ReleaseRoomLock(ctx, rdb, 5, "token-khac")
	if _, err := AcquireRoomLock(ctx, rdb, 5); !errors.HasCode(err, errors.ErrCodeRoomLockBusy) {
		t.Errorf("expected lock still held after mismatched release, got %v", err)
	}

	// Token đúng thì khóa được trả và phòng đặt lại được
	ReleaseRoomLock(ctx, rdb, 5, token)
	if _, err := AcquireRoomLock(ctx, rdb, 5); err != nil {
		t.Errorf("expected lock to be free after release, got %v", err)
	}
}
