package llm

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
)

//go:embed prompts/recommend.txt
var recommendTemplate string

// Truncation ceilings per field class. Long descriptions carry most of the
// signal, so they get the largest budget.
const (
	GoalMaxLen        = 500
	TitleMaxLen       = 200
	DescriptionMaxLen = 1500
)

const (
	placeholderTitle       = "No title"
	placeholderDescription = "No description"
)

// Truncate caps text at maxLength characters, appending an ellipsis marker
// when anything was cut. Already-short text is returned unchanged.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

// BuildPrompt renders the provider-agnostic recommendation prompt. Videos are
// numbered in input order; missing fields are replaced with placeholders so
// the prompt never contains empty slots.
func BuildPrompt(goal string, videos []Video) string {
	blocks := make([]string, 0, len(videos))
	for i, v := range videos {
		title := v.Title
		if strings.TrimSpace(title) == "" {
			title = placeholderTitle
		}
		description := v.Description
		if strings.TrimSpace(description) == "" {
			description = placeholderDescription
		}
		blocks = append(blocks, fmt.Sprintf("Video %d:\nTitle: %s\nDescription: %s",
			i+1, Truncate(title, TitleMaxLen), Truncate(description, DescriptionMaxLen)))
	}

	return strings.NewReplacer(
		"{{goal}}", Truncate(goal, GoalMaxLen),
		"{{count}}", strconv.Itoa(len(videos)),
		"{{videos}}", strings.Join(blocks, "\n\n"),
	).Replace(recommendTemplate)
}
