package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tripplanner/internal/planner"
)

var statsCmd = &cobra.Command{
	Use:   "stats <trip-id>",
	Short: "Показать статистику маршрута",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	tripID := args[0]
	trip, err := newClient().FetchTrip(tripID)
	if err != nil {
		return err
	}
	tracker, err := openTracker()
	if err != nil {
		return err
	}
	defer tracker.Close()

	p := planner.Compute(trip, tracker.StatusFunc(tripID))
	fmt.Printf("Маршрут: %s\n", trip.Title)
	fmt.Printf("Активностей: %d (посещено %d, осталось %d)\n", p.TotalActivities, p.VisitedActivities, p.PendingActivities)
	fmt.Printf("Завершено: %d%%\n", p.CompletionRate)
	fmt.Printf("Часы: всего %d, осталось %d\n", p.TotalHours, p.PendingHours)
	fmt.Printf("Стоимость: всего %.2f, осталось %.2f\n", p.TotalCost, p.PendingCost)
	return nil
}
