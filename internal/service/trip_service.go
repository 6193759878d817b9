package service

import (
	"tripplanner/internal/model"
	"tripplanner/internal/planner"
	"tripplanner/internal/repository"

	"github.com/google/uuid"
)

// TripService содержит бизнес-логику, связанную с маршрутами путешествий.
type TripService struct {
	tripRepo *repository.TripRepository
}

// NewTripService создает новый сервис маршрутов.
func NewTripService(tripRepo *repository.TripRepository) *TripService {
	return &TripService{tripRepo: tripRepo}
}

// CreateTrip принимает черновик, нормализует его (категории активностей,
// длительность) и сохраняет с назначенным сервером идентификатором.
func (s *TripService) CreateTrip(draft model.TripDraft) (*model.Trip, error) {
	trip := &model.Trip{
		ID:          uuid.NewString(),
		UserID:      draft.UserID,
		Title:       draft.Title,
		Destination: draft.Destination,
		Duration:    draft.Duration,
		DailyPlans:  draft.DailyPlans,
	}
	planner.Normalize(trip)
	if err := planner.ValidateTrip(trip); err != nil {
		return nil, err
	}
	if err := s.tripRepo.Create(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// GetTrip возвращает маршрут по идентификатору.
func (s *TripService) GetTrip(id string) (*model.Trip, error) {
	return s.tripRepo.GetByID(id)
}

// UpdateTrip полностью заменяет маршрут (семантика PUT). Версионирования нет:
// при конкурентных правках побеждает последняя запись.
func (s *TripService) UpdateTrip(id string, trip *model.Trip) error {
	trip.ID = id
	planner.Normalize(trip)
	if err := planner.ValidateTrip(trip); err != nil {
		return err
	}
	return s.tripRepo.Replace(trip)
}

// DeleteTrip удаляет маршрут.
func (s *TripService) DeleteTrip(id string) error {
	return s.tripRepo.Delete(id)
}

// ListUserTrips возвращает маршруты пользователя.
func (s *TripService) ListUserTrips(userID int) ([]model.Trip, error) {
	return s.tripRepo.ListByUser(userID)
}
