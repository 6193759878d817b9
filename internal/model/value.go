package model

import "fmt"

// Duration представляет типизированную длительность активности.
// Свободный текст ("2 hr", "45 min") разбирается один раз на границе данных
// (см. planner.ParseDuration), дальше арифметика идет по минутам.
type Duration struct {
	Minutes int
}

// Hours возвращает длительность в часах с округлением вверх.
func (d Duration) Hours() int {
	return (d.Minutes + 59) / 60
}

// String форматирует длительность в человекочитаемый вид.
func (d Duration) String() string {
	h := d.Minutes / 60
	m := d.Minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d hr %d min", h, m)
	case h > 0:
		return fmt.Sprintf("%d hr", h)
	default:
		return fmt.Sprintf("%d min", m)
	}
}

// Money представляет денежную оценку стоимости активности.
type Money struct {
	Amount   float64
	Currency string // код валюты, например "USD"
}

// String форматирует сумму в человекочитаемый вид.
func (m Money) String() string {
	if m.Currency == "USD" {
		return fmt.Sprintf("$%.2f", m.Amount)
	}
	return fmt.Sprintf("%.2f %s", m.Amount, m.Currency)
}
