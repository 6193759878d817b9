package service

import (
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// DestinationService содержит бизнес-логику, связанную с каталогом направлений.
type DestinationService struct {
	destinationRepo *repository.DestinationRepository
}

// NewDestinationService создает новый сервис направлений.
func NewDestinationService(destinationRepo *repository.DestinationRepository) *DestinationService {
	return &DestinationService{destinationRepo: destinationRepo}
}

// SearchDestinations выполняет поиск направлений по фильтрам и/или ключевому слову.
func (s *DestinationService) SearchDestinations(category string, region string, minRating float64, keyword string) ([]model.Destination, error) {
	return s.destinationRepo.FindByFilters(category, region, minRating, keyword)
}

// GetDestinationDetails получает подробные данные о направлении (объект и список фото).
func (s *DestinationService) GetDestinationDetails(destinationID int) (*model.Destination, []model.DestinationPhoto, error) {
	destination, err := s.destinationRepo.GetByID(destinationID)
	if err != nil {
		return nil, nil, err
	}
	photos, err := s.destinationRepo.GetPhotos(destinationID)
	if err != nil {
		return destination, nil, err // возвращаем направление, даже если фото не загрузились
	}
	return destination, photos, nil
}

// AddPhoto добавляет фото (URL) к указанному направлению.
func (s *DestinationService) AddPhoto(destinationID int, url string) error {
	return s.destinationRepo.AddPhoto(destinationID, url)
}
