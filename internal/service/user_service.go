package service

import (
	"database/sql"
	"errors"
	"fmt"

	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// UserService содержит бизнес-логику, связанную с профилями пользователей.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService создает новый сервис пользователей.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID возвращает пользователя по ID (обертка над репозиторием).
func (s *UserService) GetByID(id int) (*model.User, error) {
	return s.userRepo.GetByID(id)
}

// EnsureProfile возвращает профиль по email, создавая его при первом входе.
// Проверка личности выполняется внешним провайдером, сюда приходят уже
// подтвержденные данные.
func (s *UserService) EnsureProfile(email, username, firstName, lastName string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	newUser := &model.User{
		Email:     email,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Role:      "user",
	}
	id, err := s.userRepo.Create(newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = id
	return newUser, nil
}
