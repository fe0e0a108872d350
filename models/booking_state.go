package models

import (
	"errors"

	"resortly/constants"
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
	Complete(booking *Booking) error
}

// PendingState trạng thái chờ thanh toán
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(booking *Booking) error {
	return errors.New("cannot complete pending booking")
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.Status = constants.BookingStatusCompleted
	return nil
}

// CompletedState trạng thái hoàn thành
type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel completed booking")
}

func (s *CompletedState) Complete(booking *Booking) error {
	return errors.New("booking already completed")
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm cancelled booking")
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.New("booking already cancelled")
}

func (s *CancelledState) Complete(booking *Booking) error {
	return errors.New("cannot complete cancelled booking")
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status int) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
