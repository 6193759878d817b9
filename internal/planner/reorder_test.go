package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/model"
	"tripplanner/internal/planner"
)

func titles(day model.DayPlan) []string {
	out := make([]string, len(day.Activities))
	for i, a := range day.Activities {
		out[i] = a.Title
	}
	return out
}

func TestMoveActivityAcrossDays(t *testing.T) {
	trip := sampleTrip()

	// активность "1 hr/$10" переносится в начало второго дня
	err := planner.MoveActivity(trip, 0, 0, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"Royal Botanic Gardens"}, titles(trip.DailyPlans[0]))
	assert.Equal(t, []string{"Temple of the Tooth", "Tea factory tour"}, titles(trip.DailyPlans[1]))
}

func TestMoveActivitySameDay(t *testing.T) {
	trip := &model.Trip{
		Title:       "One day",
		Destination: "Colombo",
		DailyPlans: []model.DayPlan{
			{Day: 1, Activities: []model.Activity{
				{Title: "A"}, {Title: "B"}, {Title: "C"},
			}},
		},
	}

	// целевой индекс трактуется уже после удаления: A встает в конец
	err := planner.MoveActivity(trip, 0, 0, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, titles(trip.DailyPlans[0]))

	// и обратно в начало
	err = planner.MoveActivity(trip, 0, 2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, titles(trip.DailyPlans[0]))
}

func TestMoveActivityInvalidIndices(t *testing.T) {
	trip := sampleTrip()

	assert.Error(t, planner.MoveActivity(trip, 5, 0, 0, 0))
	assert.Error(t, planner.MoveActivity(trip, 0, 9, 0, 0))
	assert.Error(t, planner.MoveActivity(trip, 0, 0, 3, 0))
	assert.Error(t, planner.MoveActivity(trip, 0, 0, 1, 5))

	// после неудачных переносов маршрут не изменился
	assert.Equal(t, []string{"Temple of the Tooth", "Royal Botanic Gardens"}, titles(trip.DailyPlans[0]))
	assert.Equal(t, []string{"Tea factory tour"}, titles(trip.DailyPlans[1]))
}

func TestValidateDays(t *testing.T) {
	assert.NoError(t, planner.ValidateDays(nil))
	assert.NoError(t, planner.ValidateDays([]model.DayPlan{{Day: 1}, {Day: 2}}))
	assert.Error(t, planner.ValidateDays([]model.DayPlan{{Day: 1}, {Day: 3}}))
	assert.Error(t, planner.ValidateDays([]model.DayPlan{{Day: 0}}))
}

func TestValidateTrip(t *testing.T) {
	trip := sampleTrip()
	assert.NoError(t, planner.ValidateTrip(trip))

	trip.Title = "  "
	assert.Error(t, planner.ValidateTrip(trip))
}

func TestNormalizeFillsCategoriesAndDuration(t *testing.T) {
	trip := &model.Trip{
		Title:       "Food weekend",
		Destination: "Galle",
		DailyPlans: []model.DayPlan{
			{Day: 1, Activities: []model.Activity{
				{Title: "Seafood restaurant by the fort"},
				{Title: "Beach walk", Category: "custom"},
			}},
			{Day: 2},
		},
	}
	planner.Normalize(trip)
	assert.Equal(t, "2 days", trip.Duration)
	assert.Equal(t, "food", trip.DailyPlans[0].Activities[0].Category)
	// заданная вручную категория не перезаписывается
	assert.Equal(t, "custom", trip.DailyPlans[0].Activities[1].Category)
}
