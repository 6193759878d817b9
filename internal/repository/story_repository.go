package repository

import (
	"fmt"

	"tripplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// StoryRepository обеспечивает сохранение и получение историй путешествий.
type StoryRepository struct {
	db *sqlx.DB
}

// NewStoryRepository создает новый репозиторий историй.
func NewStoryRepository(db *sqlx.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

// Save сохраняет новую историю и возвращает ее ID.
func (r *StoryRepository) Save(story *model.Story) (int, error) {
	query := `INSERT INTO stories (user_id, trip_id, title, content)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	var id int
	err := r.db.QueryRow(query, story.UserID, story.TripID, story.Title, story.Content).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось сохранить историю: %w", err)
	}
	return id, nil
}

// ListRecent возвращает последние опубликованные истории.
func (r *StoryRepository) ListRecent(limit int) ([]model.Story, error) {
	stories := []model.Story{}
	err := r.db.Select(&stories, "SELECT * FROM stories ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении историй: %w", err)
	}
	return stories, nil
}

// ListByUser возвращает все истории пользователя.
func (r *StoryRepository) ListByUser(userID int) ([]model.Story, error) {
	stories := []model.Story{}
	err := r.db.Select(&stories, "SELECT * FROM stories WHERE user_id=$1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении историй пользователя: %w", err)
	}
	return stories, nil
}
