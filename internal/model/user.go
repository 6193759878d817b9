package model

// User представляет профиль пользователя. Аутентификация выполняется внешним
// провайдером идентификации; здесь хранятся только данные профиля.
type User struct {
	ID         int    `db:"id" json:"id"`
	Email      string `db:"email" json:"email"`
	Username   string `db:"username" json:"username"`
	FirstName  string `db:"first_name" json:"firstName"`
	LastName   string `db:"last_name" json:"lastName"`
	Role       string `db:"role" json:"role"` // "user" или "provider"
	TelegramID int64  `db:"telegram_id" json:"-"` // канал уведомлений провайдера, 0 если не привязан
}
