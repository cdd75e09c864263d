package ui

import (
	"strings"
	"testing"

	"codemaster/internal/types"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("CODEMASTER_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when CODEMASTER_DARK_MODE=1")
	}

	t.Setenv("CODEMASTER_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when CODEMASTER_DARK_MODE is unset")
	}

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for COLORFGBG with dark background")
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	if got := s.RenderDivider(0); got != "" {
		t.Errorf("RenderDivider(0) = %q, want empty", got)
	}
	if got := s.RenderDivider(5); !strings.Contains(got, "─────") {
		t.Errorf("RenderDivider(5) = %q", got)
	}
}

func TestDifficultyBadge(t *testing.T) {
	s := NewStyles(DarkTheme())
	if got := s.DifficultyBadge(types.DifficultyBeginner, types.LocaleArabic); !strings.Contains(got, "مبتدئ") {
		t.Errorf("badge = %q", got)
	}
	e := &types.LanguageEntity{Name: "Go", Icon: "🐹", Color: "#00ADD8"}
	if got := s.EntityName(e); !strings.Contains(got, "Go") {
		t.Errorf("EntityName = %q", got)
	}
}

func TestThemeMarkdownStyle(t *testing.T) {
	if got := DarkTheme().MarkdownStyle(); got != "dark" {
		t.Errorf("dark theme style = %q", got)
	}
	if got := LightTheme().MarkdownStyle(); got != "light" {
		t.Errorf("light theme style = %q", got)
	}
}
