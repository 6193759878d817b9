package service

import (
	"fmt"
	"strings"

	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// StoryService содержит логику публикации историй путешествий.
type StoryService struct {
	storyRepo *repository.StoryRepository
}

// NewStoryService создает новый сервис историй.
func NewStoryService(storyRepo *repository.StoryRepository) *StoryService {
	return &StoryService{storyRepo: storyRepo}
}

// Publish публикует историю. Заголовок и текст обязательны.
func (s *StoryService) Publish(story *model.Story) (int, error) {
	if strings.TrimSpace(story.Title) == "" {
		return 0, fmt.Errorf("заголовок истории не может быть пустым")
	}
	if strings.TrimSpace(story.Content) == "" {
		return 0, fmt.Errorf("текст истории не может быть пустым")
	}
	return s.storyRepo.Save(story)
}

// ListRecent возвращает последние опубликованные истории.
func (s *StoryService) ListRecent(limit int) ([]model.Story, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.storyRepo.ListRecent(limit)
}

// ListUserStories возвращает истории пользователя.
func (s *StoryService) ListUserStories(userID int) ([]model.Story, error) {
	return s.storyRepo.ListByUser(userID)
}
