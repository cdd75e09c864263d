package generation

import (
	"fmt"

	"codemaster/internal/types"
)

// tutorInstructions is the tutor persona per locale. The reply language is tied
// to the active locale.
var tutorInstructions = map[types.Locale]string{
	types.LocaleArabic:  "أنت خبير في كل لغات البرمجة. تجيب باللغة العربية بأسلوب مشجع ومبسط جداً. إذا سأل المستخدم عن مشروع، اقترح عليه الخطوات والأدوات.",
	types.LocaleEnglish: "You are an expert in all programming languages. Answer in English with an encouraging and very simplified style. If a user asks about a project, suggest steps and tools.",
}

func tutorInstruction(loc types.Locale) string {
	if s, ok := tutorInstructions[loc]; ok {
		return s
	}
	return tutorInstructions[types.DefaultLocale]
}

func guidePrompt(language string, loc types.Locale, maxUseCases, maxTools int) string {
	return fmt.Sprintf(`Provide a simplified guide for the programming language %q in %s.
Include:
1. A very simple 1-sentence description.
2. Up to %d common use cases.
3. A "Hello World" code snippet.
4. Up to %d recommended apps or tools for learning it, each with a platform of Mobile, Desktop or Web.
Format as JSON with keys: %s, %s (array), %s, %s (array of {%s, %s, %s, %s}).`,
		language, loc.LanguageName(), maxUseCases, maxTools,
		fieldDescription, fieldUseCases, fieldHelloWorld, fieldTools,
		fieldToolName, fieldToolPlatform, fieldToolURL, fieldDescription,
	)
}

func roadmapPrompt(idea string, loc types.Locale) string {
	return fmt.Sprintf(`Generate a coding project roadmap for this idea: %q.
Target language: %s.
Simplify it for a beginner.
Format as JSON with keys: %s, %s, %s (array), %s (array of objects with %s and %s).`,
		idea, loc.LanguageName(),
		fieldTitle, fieldDifficulty, fieldLanguages, fieldSteps, fieldTitle, fieldDescription,
	)
}
