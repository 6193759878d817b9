package planner

import (
	"fmt"
	"strings"

	"tripplanner/internal/model"
)

// ValidateTrip проверяет инварианты маршрута перед сохранением:
// непустые название и направление, номера дней с 1 и без пропусков.
func ValidateTrip(trip *model.Trip) error {
	if strings.TrimSpace(trip.Title) == "" {
		return fmt.Errorf("название маршрута не может быть пустым")
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("направление маршрута не может быть пустым")
	}
	return ValidateDays(trip.DailyPlans)
}

// ValidateDays проверяет, что номера дней образуют последовательность 1..N.
func ValidateDays(plans []model.DayPlan) error {
	for i, day := range plans {
		if day.Day != i+1 {
			return fmt.Errorf("нарушена нумерация дней: ожидался день %d, получен %d", i+1, day.Day)
		}
	}
	return nil
}

// Normalize приводит маршрут к каноническому виду при приеме данных:
// проставляет категории активностей по названию и длительность по числу дней,
// если они не заданы.
func Normalize(trip *model.Trip) {
	if trip.Duration == "" {
		trip.Duration = fmt.Sprintf("%d days", len(trip.DailyPlans))
	}
	for di := range trip.DailyPlans {
		for ai := range trip.DailyPlans[di].Activities {
			act := &trip.DailyPlans[di].Activities[ai]
			if act.Category == "" {
				act.Category = CategoryFromTitle(act.Title)
			}
		}
	}
}
