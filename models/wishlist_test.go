package models

import (
	"testing"

	"github.com/lib/pq"
)

func TestAddWishlistIDIsIdempotent(t *testing.T) {
	ids := pq.Int64Array{}

	ids = AddWishlistID(ids, 7)
	ids = AddWishlistID(ids, 7)
	ids = AddWishlistID(ids, 9)

	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d: %v", len(ids), ids)
	}
	if !ContainsWishlistID(ids, 7) || !ContainsWishlistID(ids, 9) {
		t.Errorf("expected ids to contain 7 and 9, got %v", ids)
	}
}

func TestRemoveWishlistID(t *testing.T) {
	ids := pq.Int64Array{3, 5, 7}

	ids = RemoveWishlistID(ids, 5)
	if ContainsWishlistID(ids, 5) {
		t.Errorf("expected 5 to be removed, got %v", ids)
	}
	if len(ids) != 2 {
		t.Errorf("expected 2 ids, got %d", len(ids))
	}

	// Xóa id không tồn tại không thay đổi danh sách
	ids = RemoveWishlistID(ids, 99)
	if len(ids) != 2 {
		t.Errorf("expected 2 ids after removing missing id, got %d", len(ids))
	}
}
