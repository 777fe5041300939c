package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pawkit/pawkit/internal/models"
)

// parseEntityType разбирает тип сущности из аргумента команды.
// Принимает единственное и множественное число.
func parseEntityType(arg string) (models.EntityType, error) {
	switch arg {
	case "card", "cards":
		return models.TypeCards, nil
	case "collection", "collections":
		return models.TypeCollections, nil
	case "tag", "tags":
		return models.TypeTags, nil
	default:
		return "", fmt.Errorf("unknown entity type: %s. Use: cards, collections, or tags", arg)
	}
}

// parseTags разбирает введенный пользователем список тегов через запятую
func parseTags(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// displayName возвращает человекочитаемое имя сущности для вывода
func displayName(e *models.Entity) string {
	switch {
	case e.Type == models.TypeCards && e.Title != "":
		return e.Title
	case e.Type == models.TypeCards:
		return e.URL
	case e.Name != "":
		return e.Name
	default:
		return "(unnamed)"
	}
}

// formatMillis форматирует Unix-миллисекунды для вывода
func formatMillis(ms int64) string {
	if ms == 0 {
		return "unknown"
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

// entityStatus возвращает sync-статус сущности для вывода. Ошибка статуса
// не прерывает команду.
func (c *Cli) entityStatus(ctx context.Context, e *models.Entity) string {
	status, err := c.queue.EntityStatus(ctx, e.Type, e.ID)
	if err != nil {
		return "unknown"
	}
	return string(status)
}
