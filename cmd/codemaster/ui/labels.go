package ui

import "codemaster/internal/types"

// Label identifies one piece of interface text.
type Label int

const (
	LabelAppTitle Label = iota
	LabelTagline
	LabelHeadline
	LabelIntro
	LabelExplore
	LabelRoadmap
	LabelTutor
	LabelSearchPlaceholder
	LabelSearching
	LabelSuggested
	LabelWhatIsIt
	LabelCommonUses
	LabelHelloWorld
	LabelSuggestedTools
	LabelProjectBuilder
	LabelProjectIntro
	LabelIdeaPlaceholder
	LabelPlanning
	LabelLanguages
	LabelSteps
	LabelTutorSubtitle
	LabelTutorGreeting
	LabelQuestionPlaceholder
	LabelThinking
	LabelYou
	LabelHelp
	LabelSwitchLanguage
	LabelRetryHint
	LabelSynthesized
)

var labels = map[Label][2]string{ // {en, ar}
	LabelAppTitle:            {"CodeMaster AI", "CodeMaster AI"},
	LabelTagline:             {"Your Gateway to Coding", "بوابتك لعالم البرمجة"},
	LabelHeadline:            {"Learn Any Programming Language", "تعلم أي لغة برمجة في العالم"},
	LabelIntro:               {"Search for any language, from easiest to hardest, and get project tools and simplified explanations instantly.", "ابحث عن أي لغة، من الأسهل للأصعب، واحصل على أدوات المشاريع والشرح المبسط فوراً."},
	LabelExplore:             {"Explore", "استكشف"},
	LabelRoadmap:             {"Roadmap", "خطة المشروع"},
	LabelTutor:               {"AI Tutor", "المعلم الذكي"},
	LabelSearchPlaceholder:   {"Search language (e.g. Java, Rust, SQL)...", "ابحث عن لغة (مثال: Java, Rust, SQL)..."},
	LabelSearching:           {"Searching...", "جاري البحث..."},
	LabelSuggested:           {"Suggested for Beginners", "لغات مقترحة للمبتدئين"},
	LabelWhatIsIt:            {"What is it?", "ما هي هذه اللغة؟"},
	LabelCommonUses:          {"Common Uses", "مجالات الاستخدام"},
	LabelHelloWorld:          {"Hello World", "مرحباً بالعالم"},
	LabelSuggestedTools:      {"Suggested Tools", "أدوات مقترحة"},
	LabelProjectBuilder:      {"Project Builder", "مساعد المشاريع"},
	LabelProjectIntro:        {"Write your idea and we will turn it into a coding roadmap!", "اكتب فكرتك وسنقوم بتحويلها إلى خطة عمل برمجية!"},
	LabelIdeaPlaceholder:     {"Example: A todo app", "مثال: تطبيق لتنظيم الوقت"},
	LabelPlanning:            {"Planning...", "جاري التخطيط..."},
	LabelLanguages:           {"Languages", "اللغات"},
	LabelSteps:               {"Steps", "الخطوات"},
	LabelTutorSubtitle:       {"Ask anything about coding", "اسأل أي سؤال عن البرمجة"},
	LabelTutorGreeting:       {"Hello! How can I help you today?", "مرحباً! كيف أساعدك اليوم؟"},
	LabelQuestionPlaceholder: {"Type your question...", "اكتب سؤالك هنا..."},
	LabelThinking:            {"Thinking...", "جاري التفكير..."},
	LabelYou:                 {"You", "أنت"},
	LabelHelp:                {"tab: switch pane • ↑/↓: browse • enter: submit • esc: clear • ctrl+l: language • ctrl+c: quit", "tab: تبديل القسم • ↑/↓: تصفح • enter: إرسال • esc: مسح • ctrl+l: اللغة • ctrl+c: خروج"},
	LabelSwitchLanguage:      {"العربية", "English"},
	LabelRetryHint:           {"(press Enter to retry)", "(اضغط Enter لإعادة المحاولة)"},
	LabelSynthesized:         {"Generated guide", "دليل مولَّد"},
}

// T returns the text of l in loc.
func T(l Label, loc types.Locale) string {
	pair, ok := labels[l]
	if !ok {
		return ""
	}
	if loc == types.LocaleEnglish {
		return pair[0]
	}
	return pair[1]
}

// DifficultyLabel returns the localized name of a difficulty.
func DifficultyLabel(d types.Difficulty, loc types.Locale) string {
	if loc == types.LocaleEnglish {
		return string(d)
	}
	switch d {
	case types.DifficultyBeginner:
		return "مبتدئ"
	case types.DifficultyIntermediate:
		return "متوسط"
	case types.DifficultyAdvanced:
		return "متقدم"
	}
	return string(d)
}
