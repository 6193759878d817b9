package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tripplanner/internal/model"
)

var (
	createUserID      int
	createTitle       string
	createDestination string
	createDuration    string
	createFile        string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать маршрут",
	Long: `Создает маршрут на сервере. Дни и активности можно передать файлом
черновика (--file, JSON в формате поля dailyPlans), иначе создается пустой
каркас, который заполняется позже.`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().IntVar(&createUserID, "user", 0, "ID пользователя")
	createCmd.Flags().StringVar(&createTitle, "title", "", "название маршрута")
	createCmd.Flags().StringVar(&createDestination, "destination", "", "направление")
	createCmd.Flags().StringVar(&createDuration, "duration", "", "длительность, например \"5 days\"")
	createCmd.Flags().StringVar(&createFile, "file", "", "JSON-файл с днями и активностями")
	createCmd.MarkFlagRequired("user")
	createCmd.MarkFlagRequired("title")
	createCmd.MarkFlagRequired("destination")
}

func runCreate(cmd *cobra.Command, args []string) error {
	draft := model.TripDraft{
		UserID:      createUserID,
		Title:       createTitle,
		Destination: createDestination,
		Duration:    createDuration,
	}
	if createFile != "" {
		data, err := os.ReadFile(createFile)
		if err != nil {
			return fmt.Errorf("не удалось прочитать файл черновика: %w", err)
		}
		if err := json.Unmarshal(data, &draft.DailyPlans); err != nil {
			return fmt.Errorf("некорректный JSON черновика: %w", err)
		}
	}

	trip, err := newClient().CreateTrip(draft)
	if err != nil {
		return err
	}
	fmt.Printf("Маршрут создан: %s\n", trip.ID)
	return nil
}
