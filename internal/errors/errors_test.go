package errors

import (
	"context"
	"fmt"
	"testing"

	"codemaster/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestMarkSurvivesWrapping(t *testing.T) {
	base := fmt.Errorf("unexpected end of JSON input")
	err := Mark(Wrap(base, "decode guide"), ErrGenerationParse)
	wrapped := Wrap(err, "resolve zig")

	assert.True(t, Is(wrapped, ErrGenerationParse))
	assert.False(t, Is(wrapped, ErrExternalService))
	assert.Contains(t, wrapped.Error(), "unexpected end of JSON input")
}

func TestNotFoundKeepsCause(t *testing.T) {
	cause := Mark(Wrap(context.DeadlineExceeded, "generate content"), ErrExternalService)
	err := Mark(Wrap(cause, "resolve \"zig\""), ErrLanguageNotFound)

	assert.True(t, Is(err, ErrLanguageNotFound))
	assert.True(t, Is(err, ErrExternalService))
	assert.True(t, Is(err, context.DeadlineExceeded))
}

func TestNotice(t *testing.T) {
	notFound := Mark(New("x"), ErrLanguageNotFound)
	assert.Equal(t, "Sorry, we couldn't find details for this language.", Notice(notFound, types.LocaleEnglish))
	assert.Equal(t, "عذراً، لم نتمكن من العثور على هذه اللغة.", Notice(notFound, types.LocaleArabic))

	parse := Mark(New("bad json"), ErrGenerationParse)
	service := Mark(New("503"), ErrExternalService)
	assert.Equal(t, Notice(parse, types.LocaleEnglish), Notice(service, types.LocaleEnglish),
		"parse and transport failures share one notice")

	assert.Contains(t, Notice(ErrFlowBusy, types.LocaleEnglish), "Still working")
	assert.Empty(t, Notice(nil, types.LocaleEnglish))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(Mark(New("x"), ErrGenerationParse)))
	assert.True(t, Retryable(ErrFlowBusy))
	assert.False(t, Retryable(ErrEmptyInput))
	assert.False(t, Retryable(New("plain")))
}
