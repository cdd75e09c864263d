package errors

import "codemaster/internal/types"

// Error kinds. Failures are tagged with Mark so callers can test the kind with
// Is no matter how much context was wrapped around them.
var (
	// ErrGenerationParse: the service answered but the payload did not decode
	// against the declared schema.
	ErrGenerationParse = New("generation response did not match schema")

	// ErrExternalService: the call to the generation service itself failed
	// (network, status, quota).
	ErrExternalService = New("generation service request failed")

	// ErrLanguageNotFound: catalog miss followed by a failed guide generation.
	ErrLanguageNotFound = New("language not found")

	// ErrFlowBusy: a submission arrived while the same flow still had a call
	// outstanding. The submission is ignored.
	ErrFlowBusy = New("request already in progress")

	// ErrEmptyInput: the query, idea or message was blank.
	ErrEmptyInput = New("input is empty")

	// ErrInvalidConfig: configuration failed validation.
	ErrInvalidConfig = New("invalid configuration")
)

// Retryable reports whether the user can reasonably try the same action again.
func Retryable(err error) bool {
	return IsAny(err, ErrGenerationParse, ErrExternalService, ErrLanguageNotFound, ErrFlowBusy)
}

type notice struct {
	en, ar string
}

var (
	noticeNotFound = notice{
		en: "Sorry, we couldn't find details for this language.",
		ar: "عذراً، لم نتمكن من العثور على هذه اللغة.",
	}
	noticeTryAgain = notice{
		en: "Something went wrong while generating. Please try again.",
		ar: "حدث خطأ أثناء التوليد. يرجى المحاولة مرة أخرى.",
	}
	noticeBusy = notice{
		en: "Still working on your last request...",
		ar: "ما زلنا نعمل على طلبك السابق...",
	}
	noticeEmpty = notice{
		en: "Please type something first.",
		ar: "يرجى كتابة شيء أولاً.",
	}
	noticeConfig = notice{
		en: "Configuration problem. Check your API key and settings.",
		ar: "مشكلة في الإعدادات. تحقق من مفتاح API والإعدادات.",
	}
)

// Notice returns the localized, user-facing message for err. Parse and
// transport failures collapse to the same "try again" message.
func Notice(err error, loc types.Locale) string {
	if err == nil {
		return ""
	}
	n := noticeTryAgain
	switch {
	case Is(err, ErrLanguageNotFound):
		n = noticeNotFound
	case Is(err, ErrFlowBusy):
		n = noticeBusy
	case Is(err, ErrEmptyInput):
		n = noticeEmpty
	case Is(err, ErrInvalidConfig):
		n = noticeConfig
	}
	if loc == types.LocaleEnglish {
		return n.en
	}
	return n.ar
}
