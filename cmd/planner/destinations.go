package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	destCategory  string
	destRegion    string
	destMinRating float64
	destKeyword   string
)

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "Поиск по каталогу направлений",
	Args:  cobra.NoArgs,
	RunE:  runDestinations,
}

func init() {
	destinationsCmd.Flags().StringVar(&destCategory, "category", "", "категория направления")
	destinationsCmd.Flags().StringVar(&destRegion, "region", "", "регион")
	destinationsCmd.Flags().Float64Var(&destMinRating, "min-rating", 0, "минимальный рейтинг")
	destinationsCmd.Flags().StringVar(&destKeyword, "q", "", "ключевое слово")
}

func runDestinations(cmd *cobra.Command, args []string) error {
	destinations, err := newClient().SearchDestinations(destCategory, destRegion, destMinRating, destKeyword)
	if err != nil {
		return err
	}
	if len(destinations) == 0 {
		fmt.Println("Ничего не найдено.")
		return nil
	}
	for _, d := range destinations {
		fmt.Printf("%d. %s (%s, %s) - рейтинг %.1f\n", d.ID, d.Name, d.Category, d.Region, d.Rating)
	}
	return nil
}
