package models

import (
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// RecipeFilter параметры фильтрации каталога рецептов.
// Пустое Mood и пустой Dietary означают отсутствие ограничения.
type RecipeFilter struct {
	Mood    string   // Тег настроения, точное совпадение
	Dietary []string // Пищевые теги, рецепт должен содержать все
}

// ParseDietary разбирает список тегов через запятую: обрезает пробелы,
// отбрасывает пустые значения и дубликаты, сохраняя порядок первого вхождения.
func ParseDietary(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var result []string
	for _, part := range strings.Split(csv, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" || slices.Contains(result, tag) {
			continue
		}
		result = append(result, tag)
	}
	return result
}

// Matches проверяет рецепт на соответствие фильтру. Условия объединяются по И.
func (f RecipeFilter) Matches(r Recipe) bool {
	if f.Mood != "" && !r.HasMood(f.Mood) {
		return false
	}
	return r.HasAllDietary(f.Dietary)
}

// CacheKey возвращает ключ кеша, не зависящий от порядка пищевых тегов.
// Части фильтра кодируются в JSON, поэтому разные фильтры не дают одинаковый ключ.
func (f RecipeFilter) CacheKey() string {
	tags := make([]string, len(f.Dietary))
	copy(tags, f.Dietary)
	slices.Sort(tags)
	key, _ := json.Marshal(struct {
		Mood    string   `json:"mood"`
		Dietary []string `json:"dietary"`
	}{Mood: f.Mood, Dietary: tags})
	return "recipes:" + string(key)
}
