package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listUserID int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать маршруты пользователя",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listUserID, "user", 0, "ID пользователя")
	listCmd.MarkFlagRequired("user")
}

func runList(cmd *cobra.Command, args []string) error {
	trips, err := newClient().ListUserTrips(listUserID)
	if err != nil {
		return err
	}
	if len(trips) == 0 {
		fmt.Println("Маршрутов нет.")
		return nil
	}
	for _, trip := range trips {
		total := 0
		for _, day := range trip.DailyPlans {
			total += len(day.Activities)
		}
		fmt.Printf("%s  %s (%s) - дней: %d, активностей: %d\n",
			trip.ID, trip.Title, trip.Destination, len(trip.DailyPlans), total)
	}
	return nil
}
