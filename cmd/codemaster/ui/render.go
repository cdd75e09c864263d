package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"codemaster/internal/catalog"
	"codemaster/internal/types"
)

// EntityMarkdown renders a language entity as markdown in loc.
func EntityMarkdown(e *types.LanguageEntity, loc types.Locale) string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", e.Icon, e.Name)
	fmt.Fprintf(&b, "**%s**", DifficultyLabel(e.Difficulty, loc))
	if e.Synthesized() {
		fmt.Fprintf(&b, " · _%s_", T(LabelSynthesized, loc))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "## %s\n\n%s\n\n", T(LabelWhatIsIt, loc), e.DescriptionFor(loc))

	if len(e.UseCases) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", T(LabelCommonUses, loc))
		for _, use := range e.UseCases {
			fmt.Fprintf(&b, "- %s\n", use)
		}
		b.WriteString("\n")
	}

	if e.HelloWorld != "" {
		fence := codeFence(e.HelloWorld)
		fmt.Fprintf(&b, "## %s\n\n%s%s\n%s\n%s\n\n", T(LabelHelloWorld, loc), fence, fenceLanguage(e), e.HelloWorld, fence)
	}

	if len(e.Tools) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", T(LabelSuggestedTools, loc))
		for _, tool := range e.Tools {
			desc := tool.Description.In(loc)
			if desc == "" {
				desc = tool.Description.In(loc.Toggle())
			}
			fmt.Fprintf(&b, "- **%s** (%s) %s  \n  %s\n", tool.Name, tool.Platform, tool.URL, desc)
		}
	}
	return b.String()
}

// fenceLanguage picks a code-fence language hint for syntax highlighting.
func fenceLanguage(e *types.LanguageEntity) string {
	if e.ID == "cpp" {
		return "cpp"
	}
	fields := strings.Fields(e.Name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// codeFence returns a backtick fence longer than any backtick run in code.
func codeFence(code string) string {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	return fence
}

// RoadmapMarkdown renders a roadmap as markdown in loc.
func RoadmapMarkdown(r *types.ProjectRoadmap, loc types.Locale) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	if r.Difficulty != "" {
		fmt.Fprintf(&b, "**%s**\n\n", DifficultyLabel(types.Difficulty(r.Difficulty), loc))
	}
	if len(r.Languages) > 0 {
		fmt.Fprintf(&b, "%s: `%s`\n\n", T(LabelLanguages, loc), strings.Join(r.Languages, "` `"))
	}
	if len(r.Steps) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", T(LabelSteps, loc))
		for i, step := range r.Steps {
			fmt.Fprintf(&b, "%d. **%s**  \n   %s\n", i+1, step.Title, step.Description)
		}
	}
	return b.String()
}

// ChatMarkdown renders the conversation log. An empty log shows the greeting.
func ChatMarkdown(msgs []types.ChatMessage, loc types.Locale) string {
	if len(msgs) == 0 {
		return "_" + T(LabelTutorGreeting, loc) + "_\n"
	}
	var b strings.Builder
	for _, m := range msgs {
		switch m.Role {
		case types.RoleUser:
			fmt.Fprintf(&b, "**%s:** %s\n\n", T(LabelYou, loc), m.Text)
		default:
			fmt.Fprintf(&b, "**%s:**\n\n%s\n\n---\n\n", T(LabelTutor, loc), m.Text)
		}
	}
	return b.String()
}

// CatalogMarkdown renders the catalog as a table.
func CatalogMarkdown(cat *catalog.Catalog, loc types.Locale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", T(LabelSuggested, loc))
	b.WriteString("| | ID | Name | Difficulty |\n|---|---|---|---|\n")
	for _, e := range cat.All() {
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n", e.Icon, e.ID, e.Name, DifficultyLabel(e.Difficulty, loc))
	}
	return b.String()
}

// Renderer renders markdown for the terminal, falling back to the raw text
// when glamour is unavailable.
type Renderer struct {
	tr *glamour.TermRenderer
}

// NewRenderer creates a renderer wrapping at width. width <= 0 disables
// wrapping.
func NewRenderer(width int) *Renderer {
	return newRenderer(width, glamour.WithAutoStyle())
}

// NewThemedRenderer uses the glamour style matching theme instead of querying
// the terminal, which the TUI owns.
func NewThemedRenderer(width int, theme Theme) *Renderer {
	return newRenderer(width, glamour.WithStandardStyle(theme.MarkdownStyle()))
}

// NewPlainRenderer creates a renderer with the non-color "notty" style, used
// when output is not a terminal.
func NewPlainRenderer(width int) *Renderer {
	return newRenderer(width, glamour.WithStandardStyle(styles.NoTTYStyle))
}

func newRenderer(width int, style glamour.TermRendererOption) *Renderer {
	opts := []glamour.TermRendererOption{style}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return &Renderer{}
	}
	return &Renderer{tr: tr}
}

// Render renders md. On failure the markdown is returned unchanged.
func (r *Renderer) Render(md string) string {
	if r == nil || r.tr == nil {
		return md
	}
	out, err := r.tr.Render(md)
	if err != nil {
		return md
	}
	return out
}
