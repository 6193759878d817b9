// Package planner содержит чистую логику работы с маршрутом: разбор
// свободнотекстовых оценок, подсчет прогресса и перестановку активностей.
package planner

import (
	"regexp"
	"strconv"
	"strings"

	"tripplanner/internal/model"
)

// DefaultActivityMinutes - длительность, назначаемая активности,
// если текст оценки разобрать не удалось.
const DefaultActivityMinutes = 60

var (
	leadingNumber = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)`)
	nonCostChars  = regexp.MustCompile(`[^0-9.]`)
	currencyCode  = regexp.MustCompile(`\b[A-Z]{3}\b`)
)

// ParseDuration разбирает свободный текст длительности в минуты.
// Правила: "hr"/"h" - ведущее число умножается на 60; "min" - ведущее число
// берется как минуты; иначе (или без ведущего числа) - 60 минут.
func ParseDuration(s string) model.Duration {
	t := strings.ToLower(strings.TrimSpace(s))
	m := leadingNumber.FindStringSubmatch(t)
	if m == nil {
		return model.Duration{Minutes: DefaultActivityMinutes}
	}
	switch {
	case strings.Contains(t, "hr") || strings.Contains(t, "h"):
		f, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return model.Duration{Minutes: DefaultActivityMinutes}
		}
		return model.Duration{Minutes: int(f * 60)}
	case strings.Contains(t, "min"):
		n, err := strconv.Atoi(strings.SplitN(m[1], ".", 2)[0])
		if err != nil {
			return model.Duration{Minutes: DefaultActivityMinutes}
		}
		return model.Duration{Minutes: n}
	}
	return model.Duration{Minutes: DefaultActivityMinutes}
}

// ParseMoney разбирает свободный текст стоимости ("$50", "LKR 3,000").
// Из строки убирается все, кроме цифр и точки, поэтому разделители тысяч
// отбрасываются: "3,000" дает 3000. Неразборчивый текст дает 0.
func ParseMoney(s string) model.Money {
	cleaned := nonCostChars.ReplaceAllString(s, "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		amount = 0
	}
	return model.Money{Amount: amount, Currency: detectCurrency(s)}
}

// detectCurrency определяет валюту по символу или трехбуквенному коду в тексте.
func detectCurrency(s string) string {
	switch {
	case strings.Contains(s, "$"):
		return "USD"
	case strings.Contains(s, "€"):
		return "EUR"
	case strings.Contains(s, "£"):
		return "GBP"
	}
	if code := currencyCode.FindString(s); code != "" {
		return code
	}
	return "USD"
}
