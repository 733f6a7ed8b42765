package bot

import (
	"strings"
	"testing"
)

func TestTopicTitle(t *testing.T) {
	cases := map[string]string{
		"tech":    "Tech",
		"stocks":  "Stocks",
		"NVIDIA":  "Nvidia",
		"quantum": "Quantum",
		"":        "",
	}
	for in, want := range cases {
		if got := topicTitle(in); got != want {
			t.Errorf("topicTitle(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestMainKeyboard_CarriesCategoryKeys(t *testing.T) {
	kb := mainKeyboard()
	if len(kb.InlineKeyboard) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(kb.InlineKeyboard))
	}
	want := []string{"tech", "stocks", "ai", "crypto"}
	for i, key := range want {
		row := kb.InlineKeyboard[i]
		if len(row) != 1 {
			t.Fatalf("expected 1 button in row %d, got %d", i, len(row))
		}
		if row[0].CallbackData == nil || *row[0].CallbackData != key {
			t.Errorf("row %d: expected callback data %q", i, key)
		}
	}
}

func TestBackKeyboard_ResetsToStart(t *testing.T) {
	kb := backKeyboard()
	if len(kb.InlineKeyboard) != 1 || len(kb.InlineKeyboard[0]) != 1 {
		t.Fatal("expected a single back button")
	}
	btn := kb.InlineKeyboard[0][0]
	if btn.CallbackData == nil || *btn.CallbackData != "start" {
		t.Errorf("expected callback data start, got %v", btn.CallbackData)
	}
}

func TestResultHeaders(t *testing.T) {
	got := categoryResultText("Tech", "body")
	if !strings.HasPrefix(got, "🗞 *Latest Tech News:*\n\n") || !strings.HasSuffix(got, "body") {
		t.Fatalf("unexpected category header: %q", got)
	}
	got = searchResultText("Nvidia", "body")
	if !strings.HasPrefix(got, "🗞 *Search Results for Nvidia:*\n\n") {
		t.Fatalf("unexpected search header: %q", got)
	}
}
