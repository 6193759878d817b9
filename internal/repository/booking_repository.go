package repository

import (
	"fmt"

	"tripplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// BookingRepository обеспечивает доступ к данным бронирований.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository создает новый репозиторий бронирований.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create создает новую заявку на бронирование.
func (r *BookingRepository) Create(booking *model.Booking) (int, error) {
	query := `INSERT INTO bookings (user_id, destination_id, details, status) VALUES ($1, $2, $3, $4) RETURNING id`
	var id int
	err := r.db.QueryRow(query, booking.UserID, booking.DestinationID, booking.Details, booking.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать бронирование: %w", err)
	}
	return id, nil
}

// GetByID возвращает бронирование по ID.
func (r *BookingRepository) GetByID(id int) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.Get(&booking, "SELECT * FROM bookings WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus обновляет статус бронирования и сбрасывает флаг уведомления,
// чтобы бот уведомлений сообщил об изменении.
func (r *BookingRepository) UpdateStatus(id int, status string) error {
	_, err := r.db.Exec("UPDATE bookings SET status=$1, notified=FALSE WHERE id=$2", status, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить статус бронирования: %w", err)
	}
	return nil
}

// ListByUser возвращает все бронирования пользователя.
func (r *BookingRepository) ListByUser(userID int) ([]model.Booking, error) {
	bookings := []model.Booking{}
	err := r.db.Select(&bookings, "SELECT * FROM bookings WHERE user_id=$1 ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении бронирований пользователя: %w", err)
	}
	return bookings, nil
}

// ListUnnotified возвращает бронирования, о которых еще не отправлено уведомление.
func (r *BookingRepository) ListUnnotified() ([]model.Booking, error) {
	bookings := []model.Booking{}
	err := r.db.Select(&bookings, "SELECT * FROM bookings WHERE notified=FALSE ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении неотправленных уведомлений: %w", err)
	}
	return bookings, nil
}

// MarkNotified отмечает бронирование как обработанное ботом уведомлений.
func (r *BookingRepository) MarkNotified(id int) error {
	_, err := r.db.Exec("UPDATE bookings SET notified=TRUE WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось отметить уведомление: %w", err)
	}
	return nil
}
