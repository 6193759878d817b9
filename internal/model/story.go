package model

import "time"

// Story представляет историю путешествия, опубликованную пользователем.
// История может ссылаться на маршрут, по которому она написана.
type Story struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"userId"`
	TripID    *string   `db:"trip_id" json:"tripId,omitempty"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
