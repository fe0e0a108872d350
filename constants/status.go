package constants

// User role
const (
	RoleUser  = 0
	RoleOwner = 1
	RoleAdmin = 2
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Resort moderation status
const (
	ResortStatusPending  = 0
	ResortStatusApproved = 1
	ResortStatusRejected = 2
)

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

// Payment status
const (
	PaymentStatusPending  = 0
	PaymentStatusSuccess  = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)

// Giá phụ thu và thuế
const (
	ExtraBedNightlyRate = 500 // giá giường phụ cho mỗi đêm
	TaxRatePercent      = 10  // thuế 10% trên tổng tiền phòng + giường phụ
)

// DateLayout định dạng ngày dd/mm/yyyy dùng chung cho booking
const DateLayout = "02/01/2006"

// MonthLayout định dạng tháng mm/yyyy cho lịch phòng
const MonthLayout = "01/2006"
