package repository

import (
	"fmt"
	"strings"

	"tripplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// DestinationRepository обеспечивает доступ к каталогу направлений.
type DestinationRepository struct {
	db *sqlx.DB
}

// NewDestinationRepository создает новый репозиторий направлений.
func NewDestinationRepository(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// FindAll возвращает все направления (без фильтрации).
func (r *DestinationRepository) FindAll() ([]model.Destination, error) {
	destinations := []model.Destination{}
	err := r.db.Select(&destinations, "SELECT * FROM destinations")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка направлений: %w", err)
	}
	return destinations, nil
}

// FindByFilters выполняет поиск направлений по фильтрам (категория, регион,
// минимальный рейтинг) и ключевому слову в названии или описании.
func (r *DestinationRepository) FindByFilters(category string, region string, minRating float64, keyword string) ([]model.Destination, error) {
	query := "SELECT * FROM destinations WHERE 1=1"
	args := []interface{}{}
	if category != "" && strings.ToLower(category) != "any" {
		query += " AND LOWER(category)=LOWER(?)"
		args = append(args, category)
	}
	if region != "" && strings.ToLower(region) != "any" {
		query += " AND LOWER(region)=LOWER(?)"
		args = append(args, region)
	}
	if minRating > 0 {
		query += " AND rating >= ?"
		args = append(args, minRating)
	}
	if keyword != "" {
		kw := "%" + strings.ToLower(keyword) + "%"
		query += " AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)"
		args = append(args, kw, kw)
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)
	destinations := []model.Destination{}
	if err := r.db.Select(&destinations, query, args...); err != nil {
		return nil, fmt.Errorf("ошибка при поиске направлений: %w", err)
	}
	return destinations, nil
}

// GetByID получает направление по его идентификатору.
func (r *DestinationRepository) GetByID(id int) (*model.Destination, error) {
	var destination model.Destination
	err := r.db.Get(&destination, "SELECT * FROM destinations WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &destination, nil
}

// AddPhoto сохраняет URL фотографии, связанной с направлением.
func (r *DestinationRepository) AddPhoto(destinationID int, url string) error {
	_, err := r.db.Exec("INSERT INTO destination_photos (destination_id, url) VALUES ($1, $2)", destinationID, url)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении фото направления: %w", err)
	}
	return nil
}

// GetPhotos возвращает все сохраненные фотографии для указанного направления.
func (r *DestinationRepository) GetPhotos(destinationID int) ([]model.DestinationPhoto, error) {
	photos := []model.DestinationPhoto{}
	err := r.db.Select(&photos, "SELECT * FROM destination_photos WHERE destination_id=$1", destinationID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении фотографий направления: %w", err)
	}
	return photos, nil
}
