package service

import (
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// FavoriteService содержит логику ведения избранных направлений.
type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
}

// NewFavoriteService создает новый сервис избранного.
func NewFavoriteService(favoriteRepo *repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

// Add добавляет направление в избранное пользователя.
func (s *FavoriteService) Add(userID, destinationID int) error {
	return s.favoriteRepo.Add(userID, destinationID)
}

// Remove убирает направление из избранного.
func (s *FavoriteService) Remove(userID, destinationID int) error {
	return s.favoriteRepo.Remove(userID, destinationID)
}

// List возвращает избранные направления пользователя.
func (s *FavoriteService) List(userID int) ([]model.Destination, error) {
	return s.favoriteRepo.ListByUser(userID)
}
