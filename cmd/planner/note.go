package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note <trip-id> [текст...]",
	Short: "Показать или задать локальные заметки по маршруту",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNote,
}

func runNote(cmd *cobra.Command, args []string) error {
	tripID := args[0]
	tracker, err := openTracker()
	if err != nil {
		return err
	}
	defer tracker.Close()

	if len(args) == 1 {
		notes, err := tracker.Notes(tripID)
		if err != nil {
			return err
		}
		if notes == "" {
			fmt.Println("Заметок нет.")
		} else {
			fmt.Println(notes)
		}
		return nil
	}

	if err := tracker.SetNotes(tripID, strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Println("Заметки сохранены.")
	return nil
}
