package merge

import (
	"strings"

	"github.com/pawkit/pawkit/internal/models"
)

// Веса сигналов качества. Фиксированные: меняются только вместе с тестами.
const (
	weightImage       = 2 // нетривиальное превью-изображение
	weightDescription = 1 // описание длиннее minDescriptionLen
	weightBody        = 2 // извлеченный текст длиннее minBodyLen
	weightMetadata    = 1 // не меньше minMetadataKeys ключей метаданных
	weightTitle       = 2 // заголовок, не похожий на голый URL
)

// Пороги сигналов качества.
const (
	minDescriptionLen = 50
	minBodyLen        = 200
	minMetadataKeys   = 4
)

// Quality оценивает "богатство" scraped-метаданных карточки.
// Используется только как вторичный сигнал при почти-равных временных
// метках: явный порядок меток оценка качества никогда не пересиливает.
// Для коллекций и тегов оценка всегда нулевая.
func Quality(e *models.Entity) int {
	if e == nil || e.Type != models.TypeCards {
		return 0
	}

	score := 0
	if nontrivialImage(e.ImageURL) {
		score += weightImage
	}
	if len(e.Description) > minDescriptionLen {
		score += weightDescription
	}
	if len(e.ArticleBody) > minBodyLen {
		score += weightBody
	}
	if len(e.Metadata) >= minMetadataKeys {
		score += weightMetadata
	}
	if e.Title != "" && !urlLike(e.Title) {
		score += weightTitle
	}
	return score
}

// nontrivialImage отсекает пустые значения и известные заглушки.
func nontrivialImage(imageURL string) bool {
	if imageURL == "" {
		return false
	}
	lower := strings.ToLower(imageURL)
	return !strings.Contains(lower, "placeholder") && !strings.Contains(lower, "default")
}

// urlLike распознает заголовок, который на самом деле является адресом:
// признак того, что scraping страницы еще не отработал.
func urlLike(title string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(title))
	return strings.HasPrefix(trimmed, "http://") ||
		strings.HasPrefix(trimmed, "https://") ||
		strings.HasPrefix(trimmed, "www.")
}
