package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tripplanner/internal/planner"
)

var showCmd = &cobra.Command{
	Use:   "show <trip-id>",
	Short: "Показать маршрут с отметками посещения и прогрессом",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
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

	fmt.Printf("%s - %s\n", trip.Title, trip.Destination)
	if trip.Duration != "" {
		fmt.Printf("Длительность: %s\n", trip.Duration)
	}
	if trip.TotalEstimatedCost != "" {
		fmt.Printf("Оценка бюджета: %s\n", trip.TotalEstimatedCost)
	}
	for di, day := range trip.DailyPlans {
		fmt.Printf("\nДень %d:\n", day.Day)
		for ai, act := range day.Activities {
			mark := " "
			if tracker.Get(tripID, di, ai) {
				mark = "x"
			}
			fmt.Printf("  [%s] %d. %s", mark, ai, act.Title)
			if act.TimeOfDay != "" {
				fmt.Printf(" (%s)", act.TimeOfDay)
			}
			if act.Duration != "" || act.EstimatedCost != "" {
				fmt.Printf(" - %s, %s", act.Duration, act.EstimatedCost)
			}
			fmt.Println()
		}
	}

	p := planner.Compute(trip, tracker.StatusFunc(tripID))
	fmt.Printf("\nПрогресс: %d%% (%d из %d)\n", p.CompletionRate, p.VisitedActivities, p.TotalActivities)

	notes, err := tracker.Notes(tripID)
	if err == nil && notes != "" {
		fmt.Printf("Заметки: %s\n", notes)
	}
	return nil
}
