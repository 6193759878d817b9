package model

// Booking представляет заявку на бронирование услуги (транспорт, жилье, тур)
// по направлению из каталога. Оплата выполняется внешним биллинговым
// провайдером и в заявке не отражается.
type Booking struct {
	ID            int    `db:"id" json:"id"`
	UserID        int    `db:"user_id" json:"userId"`
	DestinationID int    `db:"destination_id" json:"destinationId"`
	Details       string `db:"details" json:"details"` // текстовые детали: даты, число участников
	Status        string `db:"status" json:"status"`   // "pending", "confirmed", "rejected"
	Notified      bool   `db:"notified" json:"-"`      // отправлено ли уведомление провайдеру
}
