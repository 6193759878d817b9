package planner

import "strings"

// categoryKeywords задает эвристику определения категории активности
// по ключевым словам названия. Порядок проверки фиксирован.
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{"food", []string{"restaurant", "cafe", "coffee", "lunch", "dinner", "breakfast", "food", "eat", "tasting"}},
	{"culture", []string{"museum", "temple", "church", "cathedral", "gallery", "palace", "fort", "monument", "heritage"}},
	{"nature", []string{"beach", "park", "hike", "trail", "mountain", "waterfall", "lake", "garden", "safari"}},
	{"shopping", []string{"shop", "market", "bazaar", "mall", "souvenir"}},
	{"nightlife", []string{"bar", "club", "pub", "show", "concert"}},
}

// CategoryFromTitle выводит категорию активности из ключевых слов названия.
// Если ни одно слово не подошло, активность считается осмотром достопримечательностей.
func CategoryFromTitle(title string) string {
	t := strings.ToLower(title)
	for _, ck := range categoryKeywords {
		for _, w := range ck.words {
			if strings.Contains(t, w) {
				return ck.category
			}
		}
	}
	return "sightseeing"
}
