package main

import (
	"os"

	"github.com/spf13/cobra"

	"tripplanner/internal/cache"
	"tripplanner/internal/client"
	"tripplanner/internal/status"
)

var apiFlag string

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Планировщик путешествий - клиент API и локальный трекер посещений",
	Long: `planner - консольный клиент сервиса планирования путешествий.
Маршруты хранятся на сервере; статусы посещения активностей и заметки
хранятся локально в ~/.tripplanner и переживают перезапуск без сохранения
всего маршрута.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiFlag, "api", "", "адрес API (по умолчанию $PLANNER_API_URL или http://localhost:8080)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(visitCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(destinationsCmd)
}

// apiURL возвращает адрес API: флаг, переменная окружения или значение по умолчанию.
func apiURL() string {
	if apiFlag != "" {
		return apiFlag
	}
	if env := os.Getenv("PLANNER_API_URL"); env != "" {
		return env
	}
	return "http://localhost:8080"
}

// newClient создает клиент API с кэшем направлений на время процесса.
func newClient() *client.Client {
	return client.New(apiURL(), cache.New(64))
}

// openTracker открывает локальный трекер статусов посещения.
func openTracker() (*status.Tracker, error) {
	path := os.Getenv("PLANNER_DB")
	if path == "" {
		var err error
		path, err = status.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return status.Open(path)
}
