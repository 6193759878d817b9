package model

// Trip представляет многодневный маршрут путешествия, составленный пользователем.
// Идентификатор - непрозрачная строка (UUID), назначаемая сервером при создании.
type Trip struct {
	ID          string `db:"id" json:"id"`
	UserID      int    `db:"user_id" json:"userId"`
	Title       string `db:"title" json:"title"`
	Destination string `db:"destination" json:"destination"`
	Duration    string `db:"duration" json:"duration"` // свободный текст, например "5 days"
	// Денормализованные строки для отображения; из активностей не пересчитываются.
	TotalEstimatedCost       string `db:"total_estimated_cost" json:"totalEstimatedCost"`
	EstimatedWalkingDistance string `db:"estimated_walking_distance" json:"estimatedWalkingDistance"`

	DailyPlans []DayPlan `json:"dailyPlans"`
}

// DayPlan представляет план одного дня поездки с упорядоченным списком активностей.
// Номера дней начинаются с 1 и идут без пропусков; порядок семантически значим.
type DayPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// Activity представляет отдельное запланированное действие (посещение) в рамках дня.
// Статус посещения хранится исключительно в локальном трекере клиента
// и в формат обмена не входит.
type Activity struct {
	Title         string `db:"title" json:"title"`
	Description   string `db:"description" json:"description"`
	TimeOfDay     string `db:"time_of_day" json:"timeOfDay"`
	Duration      string `db:"duration" json:"duration"`            // свободный текст, например "2 hr"
	EstimatedCost string `db:"estimated_cost" json:"estimatedCost"` // свободный текст, например "$50"
	Location      string `db:"location" json:"location"`
	Address       string `db:"address" json:"address"`
	Category      string `db:"category" json:"category"` // выводится из названия при создании
}

// TripDraft представляет черновик маршрута, отправляемый клиентом при создании.
type TripDraft struct {
	UserID      int       `json:"userId"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	Duration    string    `json:"duration"`
	DailyPlans  []DayPlan `json:"dailyPlans"`
}
