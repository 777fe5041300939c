package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// SlugPattern определяет допустимый формат slug'а коллекции
// Слова из латинских букв и цифр, разделенные одиночными дефисами
var SlugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// MaxSlugLen максимальная длина slug'а
const MaxSlugLen = 64

// Slugify строит slug коллекции из ее имени: нижний регистр, все прочие
// символы схлопываются в одиночный дефис. Для имени без латинских букв
// и цифр возвращает пустую строку, подстановку делает вызывающий.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
		default:
			pendingHyphen = true
		}
	}

	slug := b.String()
	if len(slug) > MaxSlugLen {
		slug = strings.TrimRight(slug[:MaxSlugLen], "-")
	}

	return slug
}

// ValidateSlug проверяет, что slug соответствует требованиям
// Формат: слова из строчных латинских букв и цифр через одиночный дефис
// Длина: 1-64 символа
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}

	if len(slug) > MaxSlugLen {
		return fmt.Errorf("slug must not exceed %d characters", MaxSlugLen)
	}

	if !SlugPattern.MatchString(slug) {
		return fmt.Errorf("slug can only contain lowercase letters (a-z), numbers (0-9), and single hyphens")
	}

	return nil
}
