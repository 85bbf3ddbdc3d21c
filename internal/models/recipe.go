package models

// Recipe представляет рецепт из каталога. Для сервиса каталог доступен только на чтение.
type Recipe struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	MoodTags     []string `json:"moodTags"`
	DietaryTags  []string `json:"dietaryTags"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// HasMood сообщает, содержит ли рецепт тег настроения целиком (не подстрокой).
func (r Recipe) HasMood(mood string) bool {
	for _, tag := range r.MoodTags {
		if tag == mood {
			return true
		}
	}
	return false
}

// HasAllDietary сообщает, присутствует ли каждый из тегов в DietaryTags рецепта.
func (r Recipe) HasAllDietary(tags []string) bool {
	set := make(map[string]struct{}, len(r.DietaryTags))
	for _, tag := range r.DietaryTags {
		set[tag] = struct{}{}
	}
	for _, tag := range tags {
		if _, ok := set[tag]; !ok {
			return false
		}
	}
	return true
}
