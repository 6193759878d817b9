package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tripplanner/internal/planner"
)

var (
	moveFromDay   int
	moveFromIndex int
	moveToDay     int
	moveToIndex   int
)

var moveCmd = &cobra.Command{
	Use:   "move <trip-id>",
	Short: "Перенести активность на другую позицию или в другой день",
	Long: `Переносит активность внутри маршрута (индексы нулевые; целевая позиция
считается после удаления активности с исходной). Новый порядок сохраняется
на сервере полной заменой маршрута.`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().IntVar(&moveFromDay, "from-day", 0, "индекс исходного дня")
	moveCmd.Flags().IntVar(&moveFromIndex, "from-index", 0, "индекс активности в исходном дне")
	moveCmd.Flags().IntVar(&moveToDay, "to-day", 0, "индекс целевого дня")
	moveCmd.Flags().IntVar(&moveToIndex, "to-index", 0, "целевая позиция")
	moveCmd.MarkFlagRequired("from-day")
	moveCmd.MarkFlagRequired("from-index")
	moveCmd.MarkFlagRequired("to-day")
	moveCmd.MarkFlagRequired("to-index")
}

func runMove(cmd *cobra.Command, args []string) error {
	tripID := args[0]
	c := newClient()

	trip, err := c.FetchTrip(tripID)
	if err != nil {
		return err
	}
	if err := planner.MoveActivity(trip, moveFromDay, moveFromIndex, moveToDay, moveToIndex); err != nil {
		return err
	}
	// Порядок долговечен только после сохранения маршрута целиком.
	if err := c.UpdateTrip(tripID, trip); err != nil {
		return err
	}
	fmt.Println("Активность перенесена и маршрут сохранен.")
	return nil
}
