package repository

import (
	"fmt"

	"tripplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// UserRepository обеспечивает доступ к данным профилей пользователей.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create добавляет профиль пользователя. Возвращает ID созданного профиля.
// Регистрация и проверка личности выполняются внешним провайдером идентификации.
func (r *UserRepository) Create(user *model.User) (int, error) {
	query := `INSERT INTO users (email, username, first_name, last_name, role, telegram_id)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := r.db.QueryRow(query, user.Email, user.Username, user.FirstName, user.LastName, user.Role, user.TelegramID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать профиль пользователя: %w", err)
	}
	return id, nil
}

// GetByID возвращает пользователя по внутреннему идентификатору.
func (r *UserRepository) GetByID(id int) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail ищет пользователя по email. Возвращает ошибку, если не найден.
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE email=$1", email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByTelegramID ищет пользователя по привязанному Telegram ID
// (используется ботом уведомлений).
func (r *UserRepository) GetByTelegramID(telegramID int64) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE telegram_id=$1", telegramID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
