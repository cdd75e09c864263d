package catalog

import "codemaster/internal/types"

// Presentation colors for the built-in entries.
const (
	colorBlue   = "#3B82F6"
	colorYellow = "#FACC15"
	colorNavy   = "#1D4ED8"
	colorOrange = "#F97316"
	colorCyan   = "#06B6D4"
)

func builtinEntries() []types.LanguageEntity {
	return []types.LanguageEntity{
		{
			ID:         "python",
			Name:       "Python",
			Icon:       "🐍",
			Color:      colorBlue,
			Difficulty: types.DifficultyBeginner,
			UseCases:   []string{"Data Science", "AI", "Web Dev", "Automation"},
			Description: types.LocalizedText{
				EN: "High-level, versatile language known for its readability and simple syntax.",
				AR: "لغة عالية المستوى ومتعددة الاستخدامات، معروفة بسهولة قراءتها وبساطتها.",
			},
			Tools: []types.Tool{
				{
					Name:        "VS Code",
					Platform:    types.PlatformDesktop,
					URL:         "https://code.visualstudio.com/",
					Description: types.LocalizedText{EN: "Most popular editor.", AR: "المحرر الأكثر شعبية."},
				},
				{
					Name:        "Pydroid 3",
					Platform:    types.PlatformMobile,
					URL:         "https://play.google.com/store/apps/details?id=ru.iiec.pydroid3",
					Description: types.LocalizedText{EN: "Python IDE for Android.", AR: "بيئة تطوير بايثون للأندرويد."},
				},
				{
					Name:        "Replit",
					Platform:    types.PlatformWeb,
					URL:         "https://replit.com/",
					Description: types.LocalizedText{EN: "Online coding platform.", AR: "منصة برمجية سحابية."},
				},
			},
			HelloWorld: `print("Hello, World!")`,
		},
		{
			ID:         "javascript",
			Name:       "JavaScript",
			Icon:       "🟨",
			Color:      colorYellow,
			Difficulty: types.DifficultyBeginner,
			UseCases:   []string{"Web Front-end", "Mobile Apps", "Servers (Node.js)"},
			Description: types.LocalizedText{
				EN: "The language of the web. Essential for interactive websites.",
				AR: "لغة الويب الأساسية. ضرورية لبناء مواقع تفاعلية.",
			},
			Tools: []types.Tool{
				{
					Name:        "VS Code",
					Platform:    types.PlatformDesktop,
					URL:         "https://code.visualstudio.com/",
					Description: types.LocalizedText{EN: "Best for web dev.", AR: "الأفضل لتطوير الويب."},
				},
				{
					Name:        "Dcoder",
					Platform:    types.PlatformMobile,
					URL:         "https://play.google.com/store/apps/details?id=com.paprbit.dcoder",
					Description: types.LocalizedText{EN: "Mobile IDE for many languages.", AR: "تطبيق برمجي للجوال."},
				},
			},
			HelloWorld: `console.log("Hello, World!");`,
		},
		{
			ID:         "cpp",
			Name:       "C++",
			Icon:       "🔵",
			Color:      colorNavy,
			Difficulty: types.DifficultyAdvanced,
			UseCases:   []string{"Game Dev", "Operating Systems", "Robotics"},
			Description: types.LocalizedText{
				EN: "Powerful systems programming language used for high-performance applications.",
				AR: "لغة برمجة أنظمة قوية تستخدم للتطبيقات عالية الأداء مثل الألعاب.",
			},
			Tools: []types.Tool{
				{
					Name:        "Visual Studio",
					Platform:    types.PlatformDesktop,
					URL:         "https://visualstudio.microsoft.com/",
					Description: types.LocalizedText{EN: "Professional IDE.", AR: "بيئة تطوير احترافية."},
				},
				{
					Name:        "CppDroid",
					Platform:    types.PlatformMobile,
					URL:         "https://play.google.com/store/apps/details?id=com.cppdroid",
					Description: types.LocalizedText{EN: "C++ for Android.", AR: "تعلم C++ على الأندرويد."},
				},
			},
			HelloWorld: "#include <iostream>\n\nint main() {\n    std::cout << \"Hello, World!\" << std::endl;\n    return 0;\n}",
		},
		{
			ID:         "swift",
			Name:       "Swift",
			Icon:       "🧡",
			Color:      colorOrange,
			Difficulty: types.DifficultyIntermediate,
			UseCases:   []string{"iOS Apps", "macOS Apps"},
			Description: types.LocalizedText{
				EN: "Apple's modern language for building apps for iPhone, iPad, and Mac.",
				AR: "لغة أبل الحديثة لبناء تطبيقات الآيفون والماك.",
			},
			Tools: []types.Tool{
				{
					Name:        "Xcode",
					Platform:    types.PlatformDesktop,
					URL:         "https://developer.apple.com/xcode/",
					Description: types.LocalizedText{EN: "Required for Mac/iOS dev.", AR: "أساسي لتطوير تطبيقات أبل."},
				},
				{
					Name:        "Swift Playgrounds",
					Platform:    types.PlatformMobile,
					URL:         "https://www.apple.com/swift/playgrounds/",
					Description: types.LocalizedText{EN: "Learn Swift on iPad.", AR: "تعلم Swift على الآيباد."},
				},
			},
			HelloWorld: `print("Hello, World!")`,
		},
		{
			ID:         "go",
			Name:       "Go",
			Icon:       "🐹",
			Color:      colorCyan,
			Difficulty: types.DifficultyIntermediate,
			UseCases:   []string{"Cloud Services", "CLI Tools", "Networking"},
			Description: types.LocalizedText{
				EN: "Simple, fast language from Google built for servers and command-line tools.",
				AR: "لغة بسيطة وسريعة من جوجل مصممة للخوادم وأدوات سطر الأوامر.",
			},
			Tools: []types.Tool{
				{
					Name:        "Go Playground",
					Platform:    types.PlatformWeb,
					URL:         "https://go.dev/play/",
					Description: types.LocalizedText{EN: "Run Go in the browser.", AR: "شغّل Go في المتصفح."},
				},
				{
					Name:        "GoLand",
					Platform:    types.PlatformDesktop,
					URL:         "https://www.jetbrains.com/go/",
					Description: types.LocalizedText{EN: "Full-featured Go IDE.", AR: "بيئة تطوير متكاملة للغة Go."},
				},
			},
			HelloWorld: "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Hello, World!\")\n}",
		},
	}
}
