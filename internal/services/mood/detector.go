package services

import (
	"context"
	"strings"
)

// Настроения, которые возвращает KeywordDetector.
const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
)

// KeywordDetector определяет настроение по ключевому слову без внешних сервисов.
type KeywordDetector struct{}

// Detect возвращает "happy", если текст содержит слово happy в любом регистре, иначе "neutral".
func (KeywordDetector) Detect(_ context.Context, text string) (string, error) {
	if strings.Contains(strings.ToLower(text), MoodHappy) {
		return MoodHappy, nil
	}
	return MoodNeutral, nil
}
