package repository

import (
	"fmt"

	"tripplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// FavoriteRepository обеспечивает доступ к избранным направлениям пользователей.
type FavoriteRepository struct {
	db *sqlx.DB
}

// NewFavoriteRepository создает новый репозиторий избранного.
func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add добавляет направление в избранное пользователя (если еще не добавлено).
func (r *FavoriteRepository) Add(userID, destinationID int) error {
	_, err := r.db.Exec("INSERT INTO favorites (user_id, destination_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		userID, destinationID)
	if err != nil {
		return fmt.Errorf("не удалось добавить в избранное: %w", err)
	}
	return nil
}

// Remove убирает направление из избранного пользователя.
func (r *FavoriteRepository) Remove(userID, destinationID int) error {
	_, err := r.db.Exec("DELETE FROM favorites WHERE user_id=$1 AND destination_id=$2", userID, destinationID)
	if err != nil {
		return fmt.Errorf("не удалось убрать из избранного: %w", err)
	}
	return nil
}

// ListByUser возвращает избранные направления пользователя.
func (r *FavoriteRepository) ListByUser(userID int) ([]model.Destination, error) {
	destinations := []model.Destination{}
	err := r.db.Select(&destinations,
		`SELECT d.* FROM favorites f
		 JOIN destinations d ON f.destination_id = d.id
		 WHERE f.user_id=$1
		 ORDER BY d.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении избранного: %w", err)
	}
	return destinations, nil
}
