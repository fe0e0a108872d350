package dto

// AnalyticsSummaryResponse là số liệu tổng quan cho dashboard admin
type AnalyticsSummaryResponse struct {
	TotalUsers     int64   `json:"totalUsers"`
	TotalResorts   int64   `json:"totalResorts"`
	PendingResorts int64   `json:"pendingResorts"`
	TotalBookings  int64   `json:"totalBookings"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// RevenuePoint là doanh thu gộp theo tháng
type RevenuePoint struct {
	Month    string  `json:"month"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// TopResortResponse là resort có nhiều đơn đặt phòng nhất
type TopResortResponse struct {
	ResortID uint    `json:"resortId"`
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}
