package model

// Destination представляет туристическое направление (место) из каталога.
type Destination struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Category    string  `db:"category" json:"category"` // например: природная, историческая, жилье
	Region      string  `db:"region" json:"region"`
	Rating      float64 `db:"rating" json:"rating"` // средний рейтинг от 0 до 5
	Latitude    float64 `db:"latitude" json:"latitude"`
	Longitude   float64 `db:"longitude" json:"longitude"`
	ProviderID  *int    `db:"provider_id" json:"providerId,omitempty"` // id пользователя-провайдера, если объект предоставляется провайдером
}

// DestinationPhoto представляет фото, связанное с определенным направлением.
type DestinationPhoto struct {
	ID            int    `db:"id" json:"id"`
	DestinationID int    `db:"destination_id" json:"destinationId"`
	URL           string `db:"url" json:"url"`
}
