package llm

import (
	"strings"
	"testing"
)

func TestTruncateShortTextUnchanged(t *testing.T) {
	cases := []string{"", "short", strings.Repeat("a", 100)}
	for _, text := range cases {
		if got := Truncate(text, 100); got != text {
			t.Fatalf("Truncate(%q, 100) = %q, want unchanged", text, got)
		}
	}
}

func TestTruncateCapsLength(t *testing.T) {
	long := strings.Repeat("x", 2000)
	got := Truncate(long, 50)
	if len([]rune(got)) != 50+len("...") {
		t.Fatalf("truncated length = %d, want %d", len([]rune(got)), 50+len("..."))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("truncated text missing ellipsis: %q", got)
	}
}

func TestTruncateIdempotentOnShortText(t *testing.T) {
	text := "already short"
	if Truncate(Truncate(text, 100), 100) != text {
		t.Fatal("Truncate must be idempotent on short text")
	}
}

func TestTruncateMultibyte(t *testing.T) {
	text := strings.Repeat("日", 10)
	got := Truncate(text, 4)
	if got != strings.Repeat("日", 4)+"..." {
		t.Fatalf("multibyte truncation = %q", got)
	}
}

func TestBuildPromptNumbersVideosInOrder(t *testing.T) {
	videos := []Video{
		{Title: "First", Description: "A"},
		{Title: "Second", Description: "B"},
		{Title: "Third", Description: "C"},
	}
	prompt := BuildPrompt("learn guitar basics", videos)

	for _, want := range []string{
		`"learn guitar basics"`,
		"Video 1:\nTitle: First",
		"Video 2:\nTitle: Second",
		"Video 3:\nTitle: Third",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Index(prompt, "Video 1:") > strings.Index(prompt, "Video 2:") {
		t.Fatal("video blocks out of order")
	}
}

func TestBuildPromptSubstitutesPlaceholders(t *testing.T) {
	videos := []Video{
		{Title: "", Description: ""},
		{Title: "  ", Description: "real description"},
	}
	prompt := BuildPrompt("goal", videos)

	if !strings.Contains(prompt, "Title: No title") {
		t.Fatal("missing title placeholder")
	}
	if !strings.Contains(prompt, "Description: No description") {
		t.Fatal("missing description placeholder")
	}
	if !strings.Contains(prompt, "Description: real description") {
		t.Fatal("real description dropped")
	}
}

func TestBuildPromptTruncatesFields(t *testing.T) {
	videos := []Video{{
		Title:       strings.Repeat("t", TitleMaxLen+100),
		Description: strings.Repeat("d", DescriptionMaxLen+100),
	}}
	prompt := BuildPrompt(strings.Repeat("g", GoalMaxLen+100), videos)

	if !strings.Contains(prompt, strings.Repeat("t", TitleMaxLen)+"...") {
		t.Fatal("title not truncated at ceiling")
	}
	if strings.Contains(prompt, strings.Repeat("t", TitleMaxLen+1)) {
		t.Fatal("title overran ceiling")
	}
	if !strings.Contains(prompt, strings.Repeat("g", GoalMaxLen)+"...") {
		t.Fatal("goal not truncated at ceiling")
	}
	if !strings.Contains(prompt, strings.Repeat("d", DescriptionMaxLen)+"...") {
		t.Fatal("description not truncated at ceiling")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	videos := []Video{{Title: "A", Description: "B"}}
	if BuildPrompt("goal", videos) != BuildPrompt("goal", videos) {
		t.Fatal("BuildPrompt must be deterministic")
	}
}

func TestValidateInput(t *testing.T) {
	videos := []Video{{Title: "A"}}
	if err := ValidateInput("goal", videos); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	if err := ValidateInput("", videos); err != ErrInvalidInput {
		t.Fatalf("empty goal: got %v, want ErrInvalidInput", err)
	}
	if err := ValidateInput("   ", videos); err != ErrInvalidInput {
		t.Fatalf("blank goal: got %v, want ErrInvalidInput", err)
	}
	if err := ValidateInput("goal", nil); err != ErrInvalidInput {
		t.Fatalf("no videos: got %v, want ErrInvalidInput", err)
	}
}
