package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"tripplanner/internal/client"
	"tripplanner/internal/status"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <trip-id>",
	Short: "Удалить маршрут",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "удалить без подтверждения")
}

func runDelete(cmd *cobra.Command, args []string) error {
	tripID := args[0]

	// Подтверждение - забота вызывающей стороны, не хранилища.
	if !deleteYes {
		fmt.Printf("Удалить маршрут %s? [y/N]: ", tripID)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Println("Отменено.")
			return nil
		}
	}

	tracker, err := openTracker()
	if err != nil {
		return err
	}
	defer tracker.Close()
	if err := deleteTrip(newClient(), tracker, tripID); err != nil {
		return err
	}
	fmt.Println("Маршрут удален.")
	return nil
}

// deleteTrip удаляет маршрут на сервере и лишь при успехе чистит локальные
// отметки. При отказе сервера маршрут считается живым, локальное состояние
// не трогаем.
func deleteTrip(c *client.Client, tracker *status.Tracker, tripID string) error {
	if err := c.DeleteTrip(tripID); err != nil {
		return err
	}
	return tracker.Forget(tripID)
}
