package planner

import (
	"math"

	"tripplanner/internal/model"
)

// StatusFunc сообщает, посещена ли активность с данными индексами дня и
// позиции. Индексы нулевые, как в ключах локального трекера.
type StatusFunc func(dayIndex, activityIndex int) bool

// Progress содержит производную статистику по маршруту.
type Progress struct {
	TotalActivities   int     `json:"totalActivities"`
	VisitedActivities int     `json:"visitedActivities"`
	PendingActivities int     `json:"pendingActivities"`
	CompletionRate    int     `json:"completionRate"` // процент, округленный до целого
	TotalHours        int     `json:"totalHours"`
	PendingHours      int     `json:"pendingHours"`
	TotalCost         float64 `json:"totalCost"`
	PendingCost       float64 `json:"pendingCost"`
}

// Compute вычисляет статистику маршрута по текущему снимку статусов.
// Функция чистая и детерминированная; вызывается заново при каждом изменении
// маршрута или статусов, кэширование не применяется.
func Compute(trip *model.Trip, visited StatusFunc) Progress {
	var p Progress
	totalMinutes := 0
	pendingMinutes := 0
	for di, day := range trip.DailyPlans {
		for ai, act := range day.Activities {
			p.TotalActivities++
			minutes := ParseDuration(act.Duration).Minutes
			cost := ParseMoney(act.EstimatedCost).Amount
			totalMinutes += minutes
			p.TotalCost += cost
			if visited != nil && visited(di, ai) {
				p.VisitedActivities++
			} else {
				pendingMinutes += minutes
				p.PendingCost += cost
			}
		}
	}
	p.PendingActivities = p.TotalActivities - p.VisitedActivities
	if p.TotalActivities > 0 {
		p.CompletionRate = int(math.Round(float64(p.VisitedActivities) / float64(p.TotalActivities) * 100))
	}
	p.TotalHours = model.Duration{Minutes: totalMinutes}.Hours()
	p.PendingHours = model.Duration{Minutes: pendingMinutes}.Hours()
	return p
}
