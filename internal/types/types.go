// Package types provides the shared domain types used across codemaster packages.
// This package exists so catalog, generation, resolver and session can agree on
// one entity shape without importing each other.
package types

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// =============================================================================
// LANGUAGE ENTITIES
// =============================================================================

// Difficulty is the learning difficulty of a language.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Platform is where a learning tool runs.
type Platform string

const (
	PlatformMobile  Platform = "Mobile"
	PlatformDesktop Platform = "Desktop"
	PlatformWeb     Platform = "Web"
)

// Platforms lists every valid platform in declaration order.
var Platforms = []Platform{PlatformMobile, PlatformDesktop, PlatformWeb}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// LocalizedText carries one string per supported locale.
type LocalizedText struct {
	EN string `json:"en" yaml:"en"`
	AR string `json:"ar" yaml:"ar"`
}

// In returns the text for the given locale without fallback.
func (t LocalizedText) In(loc Locale) string {
	if loc == LocaleEnglish {
		return t.EN
	}
	return t.AR
}

// Empty reports whether both locales are blank.
func (t LocalizedText) Empty() bool {
	return strings.TrimSpace(t.EN) == "" && strings.TrimSpace(t.AR) == ""
}

// Only returns a LocalizedText with text set for loc and the other locale empty.
func Only(loc Locale, text string) LocalizedText {
	if loc == LocaleEnglish {
		return LocalizedText{EN: text}
	}
	return LocalizedText{AR: text}
}

// Tool is a recommended app or site for learning a language.
type Tool struct {
	Name        string        `json:"name"`
	Platform    Platform      `json:"platform"`
	URL         string        `json:"url"`
	Description LocalizedText `json:"description"`
}

// Presentation sentinels for entities built from a generation response.
const (
	SynthesizedIcon  = "✨"
	SynthesizedColor = "#6366F1"
)

// LanguageEntity is the learning profile of one programming language.
// Catalog entries and synthesized entries share this shape.
type LanguageEntity struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Icon        string        `json:"icon"`
	Color       string        `json:"color"`
	Difficulty  Difficulty    `json:"difficulty"`
	UseCases    []string      `json:"useCases"`
	Description LocalizedText `json:"description"`
	Tools       []Tool        `json:"tools"`
	HelloWorld  string        `json:"helloWorld,omitempty"`
}

// Normalize coerces absent collections to empty ones so display code never
// sees nil.
func (e *LanguageEntity) Normalize() *LanguageEntity {
	if e.UseCases == nil {
		e.UseCases = []string{}
	}
	if e.Tools == nil {
		e.Tools = []Tool{}
	}
	return e
}

// Validate reports shape violations that must never reach the display layer.
func (e *LanguageEntity) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("language entity has no id")
	}
	if !e.Difficulty.Valid() {
		return errors.Newf("language %q: invalid difficulty %q", e.ID, e.Difficulty)
	}
	if e.Description.Empty() {
		return errors.Newf("language %q: description empty in both locales", e.ID)
	}
	for i, tool := range e.Tools {
		if !tool.Platform.Valid() {
			return errors.Newf("language %q: tool %d (%s) has invalid platform %q", e.ID, i, tool.Name, tool.Platform)
		}
	}
	return nil
}

// Synthesized reports whether the entity was built from a generation response.
func (e *LanguageEntity) Synthesized() bool {
	return e.Icon == SynthesizedIcon && e.Color == SynthesizedColor
}

// DescriptionFor returns the description in loc, falling back to the other
// locale when the active one is empty.
func (e *LanguageEntity) DescriptionFor(loc Locale) string {
	if text := e.Description.In(loc); text != "" {
		return text
	}
	return e.Description.In(loc.Toggle())
}

// Clone returns a deep copy so callers can hand entities out without sharing
// backing arrays.
func (e *LanguageEntity) Clone() *LanguageEntity {
	if e == nil {
		return nil
	}
	c := *e
	c.UseCases = append([]string{}, e.UseCases...)
	c.Tools = append([]Tool{}, e.Tools...)
	return &c
}

// =============================================================================
// ROADMAPS
// =============================================================================

// RoadmapStep is one ordered step of a project roadmap.
type RoadmapStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectRoadmap is a generated plan for turning an idea into a project.
type ProjectRoadmap struct {
	Title      string        `json:"title"`
	Difficulty string        `json:"difficulty"`
	Languages  []string      `json:"languages"`
	Steps      []RoadmapStep `json:"steps"`
}

// Normalize coerces absent collections to empty ones.
func (r *ProjectRoadmap) Normalize() *ProjectRoadmap {
	if r.Languages == nil {
		r.Languages = []string{}
	}
	if r.Steps == nil {
		r.Steps = []RoadmapStep{}
	}
	return r
}

// Clone returns a deep copy.
func (r *ProjectRoadmap) Clone() *ProjectRoadmap {
	if r == nil {
		return nil
	}
	c := *r
	c.Languages = append([]string{}, r.Languages...)
	c.Steps = append([]RoadmapStep{}, r.Steps...)
	return &c
}

// =============================================================================
// CHAT
// =============================================================================

// Role identifies who authored a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage is one entry of the tutor conversation log.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
