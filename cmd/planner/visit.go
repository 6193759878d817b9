package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var visitCmd = &cobra.Command{
	Use:   "visit <trip-id> <day-index> <activity-index>",
	Short: "Переключить отметку посещения активности",
	Long: `Переключает статус посещения активности по нулевым индексам дня и
позиции. Статус сохраняется только локально; сетевого сохранения маршрута
не происходит.`,
	Args: cobra.ExactArgs(3),
	RunE: runVisit,
}

func runVisit(cmd *cobra.Command, args []string) error {
	tripID := args[0]
	day, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("некорректный индекс дня: %q", args[1])
	}
	act, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("некорректный индекс активности: %q", args[2])
	}

	tracker, err := openTracker()
	if err != nil {
		return err
	}
	defer tracker.Close()

	if err := tracker.Toggle(tripID, day, act); err != nil {
		return err
	}
	if tracker.Get(tripID, day, act) {
		fmt.Println("Отмечено как посещенное.")
	} else {
		fmt.Println("Отметка снята.")
	}
	return nil
}
