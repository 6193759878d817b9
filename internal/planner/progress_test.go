package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripplanner/internal/model"
	"tripplanner/internal/planner"
)

// sampleTrip - опорный сценарий: 2 дня, в первом две активности
// ("1 hr"/"$10" и "30 min"/"$5"), во втором одна ("2 hr"/"$20").
func sampleTrip() *model.Trip {
	return &model.Trip{
		ID:          "f4f9a6f0-0000-4000-8000-000000000001",
		Title:       "Weekend in Kandy",
		Destination: "Kandy, Sri Lanka",
		DailyPlans: []model.DayPlan{
			{Day: 1, Activities: []model.Activity{
				{Title: "Temple of the Tooth", Duration: "1 hr", EstimatedCost: "$10"},
				{Title: "Royal Botanic Gardens", Duration: "30 min", EstimatedCost: "$5"},
			}},
			{Day: 2, Activities: []model.Activity{
				{Title: "Tea factory tour", Duration: "2 hr", EstimatedCost: "$20"},
			}},
		},
	}
}

func TestComputeEmptyTrip(t *testing.T) {
	trip := &model.Trip{Title: "Empty", Destination: "Nowhere"}
	p := planner.Compute(trip, nil)
	assert.Equal(t, 0, p.TotalActivities)
	// деление на ноль недопустимо: при нуле активностей прогресс равен нулю
	assert.Equal(t, 0, p.CompletionRate)
	assert.Equal(t, 0, p.TotalHours)
	assert.Equal(t, 0.0, p.TotalCost)
}

func TestComputeSampleScenario(t *testing.T) {
	trip := sampleTrip()
	// посещена первая активность первого дня
	visited := func(day, act int) bool { return day == 0 && act == 0 }

	p := planner.Compute(trip, visited)
	assert.Equal(t, 3, p.TotalActivities)
	assert.Equal(t, 1, p.VisitedActivities)
	assert.Equal(t, 2, p.PendingActivities)
	assert.Equal(t, 33, p.CompletionRate)
	assert.Equal(t, 4, p.TotalHours, "ceil(210/60)")
	assert.Equal(t, 3, p.PendingHours, "ceil(150/60)")
	assert.Equal(t, 35.0, p.TotalCost)
	assert.Equal(t, 25.0, p.PendingCost)
}

func TestComputeVisitedPlusPendingEqualsTotal(t *testing.T) {
	trip := sampleTrip()
	for mask := 0; mask < 8; mask++ {
		m := mask
		visited := func(day, act int) bool {
			idx := act
			if day == 1 {
				idx = 2
			}
			return m&(1<<idx) != 0
		}
		p := planner.Compute(trip, visited)
		assert.Equal(t, p.TotalActivities, p.VisitedActivities+p.PendingActivities, "mask %b", mask)
	}
}

func TestComputeAllVisited(t *testing.T) {
	trip := sampleTrip()
	p := planner.Compute(trip, func(int, int) bool { return true })
	assert.Equal(t, 100, p.CompletionRate)
	assert.Equal(t, 0, p.PendingHours)
	assert.Equal(t, 0.0, p.PendingCost)
}
