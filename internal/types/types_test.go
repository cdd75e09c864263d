package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocale(t *testing.T) {
	cases := map[string]Locale{
		"ar":      LocaleArabic,
		"AR":      LocaleArabic,
		" arabic": LocaleArabic,
		"en":      LocaleEnglish,
		"English": LocaleEnglish,
		"en-US":   LocaleEnglish,
	}
	for in, want := range cases {
		got, err := ParseLocale(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLocale("fr")
	assert.EqualError(t, err, `unsupported locale "fr" (valid: ar, en)`)
}

func TestLocaleToggle(t *testing.T) {
	assert.Equal(t, LocaleEnglish, LocaleArabic.Toggle())
	assert.Equal(t, LocaleArabic, LocaleEnglish.Toggle())
	assert.True(t, LocaleArabic.RTL())
	assert.False(t, LocaleEnglish.RTL())
	assert.Equal(t, "Arabic", LocaleArabic.LanguageName())
}

func TestLanguageEntity_Normalize(t *testing.T) {
	e := &LanguageEntity{ID: "zig"}
	e.Normalize()
	assert.NotNil(t, e.UseCases)
	assert.NotNil(t, e.Tools)
	assert.Empty(t, e.UseCases)
	assert.Empty(t, e.Tools)
}

func TestLanguageEntity_Validate(t *testing.T) {
	valid := LanguageEntity{
		ID:          "go",
		Name:        "Go",
		Difficulty:  DifficultyIntermediate,
		Description: Only(LocaleEnglish, "Simple and fast."),
		Tools:       []Tool{{Name: "Go Playground", Platform: PlatformWeb}},
	}
	require.NoError(t, valid.Validate())

	noDesc := valid
	noDesc.Description = LocalizedText{}
	assert.EqualError(t, noDesc.Validate(), `language "go": description empty in both locales`)

	badDifficulty := valid
	badDifficulty.Difficulty = "Expert"
	assert.Error(t, badDifficulty.Validate())

	badTool := valid
	badTool.Tools = []Tool{{Name: "Thing", Platform: "Console"}}
	assert.EqualError(t, badTool.Validate(), `language "go": tool 0 (Thing) has invalid platform "Console"`)

	noID := valid
	noID.ID = ""
	assert.EqualError(t, noID.Validate(), "language entity has no id")
}

func TestLanguageEntity_DescriptionFallback(t *testing.T) {
	e := LanguageEntity{Description: Only(LocaleEnglish, "English only")}
	assert.Equal(t, "English only", e.DescriptionFor(LocaleEnglish))
	assert.Equal(t, "English only", e.DescriptionFor(LocaleArabic))

	both := LanguageEntity{Description: LocalizedText{EN: "hi", AR: "مرحبا"}}
	assert.Equal(t, "مرحبا", both.DescriptionFor(LocaleArabic))
}

func TestLanguageEntity_CloneIsDeep(t *testing.T) {
	e := &LanguageEntity{ID: "py", UseCases: []string{"AI"}, Tools: []Tool{{Name: "VS Code"}}}
	c := e.Clone()
	c.UseCases[0] = "changed"
	c.Tools[0].Name = "changed"
	assert.Equal(t, "AI", e.UseCases[0])
	assert.Equal(t, "VS Code", e.Tools[0].Name)

	var nilEntity *LanguageEntity
	assert.Nil(t, nilEntity.Clone())
}

func TestSynthesized(t *testing.T) {
	e := LanguageEntity{Icon: SynthesizedIcon, Color: SynthesizedColor}
	assert.True(t, e.Synthesized())
	e.Icon = "🐍"
	assert.False(t, e.Synthesized())
}

func TestProjectRoadmap_NormalizeAndClone(t *testing.T) {
	r := (&ProjectRoadmap{Title: "Todo"}).Normalize()
	assert.NotNil(t, r.Languages)
	assert.NotNil(t, r.Steps)

	r.Steps = append(r.Steps, RoadmapStep{Title: "Plan"})
	c := r.Clone()
	c.Steps[0].Title = "changed"
	assert.Equal(t, "Plan", r.Steps[0].Title)
}
