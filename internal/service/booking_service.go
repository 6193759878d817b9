package service

import (
	"fmt"

	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// BookingService содержит бизнес-логику, связанную с бронированиями.
// Оплата выполняется внешним биллинговым провайдером и здесь не затрагивается.
type BookingService struct {
	bookingRepo *repository.BookingRepository
}

// NewBookingService создает новый сервис бронирований.
func NewBookingService(bookingRepo *repository.BookingRepository) *BookingService {
	return &BookingService{bookingRepo: bookingRepo}
}

// CreateBooking создает новую заявку на бронирование для пользователя.
func (s *BookingService) CreateBooking(userID int, destinationID int, details string) (int, error) {
	booking := &model.Booking{
		UserID:        userID,
		DestinationID: destinationID,
		Details:       details,
		Status:        "pending",
	}
	return s.bookingRepo.Create(booking)
}

// SetStatus переводит бронирование в новый статус ("confirmed" или "rejected").
func (s *BookingService) SetStatus(bookingID int, status string) error {
	if status != "confirmed" && status != "rejected" {
		return fmt.Errorf("недопустимый статус бронирования: %q", status)
	}
	return s.bookingRepo.UpdateStatus(bookingID, status)
}

// GetBooking возвращает бронирование по ID.
func (s *BookingService) GetBooking(bookingID int) (*model.Booking, error) {
	return s.bookingRepo.GetByID(bookingID)
}

// ListUserBookings возвращает бронирования пользователя.
func (s *BookingService) ListUserBookings(userID int) ([]model.Booking, error) {
	return s.bookingRepo.ListByUser(userID)
}
