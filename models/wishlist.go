package models

import "github.com/lib/pq"

// ContainsWishlistID kiểm tra resort đã có trong wishlist chưa
func ContainsWishlistID(ids pq.Int64Array, resortID int64) bool {
	for _, id := range ids {
		if id == resortID {
			return true
		}
	}
	return false
}

// AddWishlistID thêm resort vào wishlist, thêm trùng không tạo bản ghi mới
func AddWishlistID(ids pq.Int64Array, resortID int64) pq.Int64Array {
	if ContainsWishlistID(ids, resortID) {
		return ids
	}
	return append(ids, resortID)
}

// RemoveWishlistID xóa resort khỏi wishlist
func RemoveWishlistID(ids pq.Int64Array, resortID int64) pq.Int64Array {
	result := make(pq.Int64Array, 0, len(ids))
	for _, id := range ids {
		if id != resortID {
			result = append(result, id)
		}
	}
	return result
}
