package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"codemaster/cmd/codemaster/ui"
	"codemaster/internal/catalog"
	"codemaster/internal/config"
	"codemaster/internal/errors"
	"codemaster/internal/logging"
)

var (
	jsonOutput bool
	forceInit  bool
)

// catalogCmd lists the built-in languages
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in language catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

// guideCmd resolves one language
var guideCmd = &cobra.Command{
	Use:   "guide [language]",
	Short: "Show the guide for a programming language",
	Long: `Looks the language up in the built-in catalog. Languages not in the
catalog are described by the generation service (one request).

Examples:
  codemaster guide python
  codemaster guide --lang en "Visual Basic"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGuide,
}

// roadmapCmd turns an idea into a project roadmap
var roadmapCmd = &cobra.Command{
	Use:   "roadmap [idea]",
	Short: "Turn a project idea into a coding roadmap",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRoadmap,
}

// askCmd sends one message to the tutor
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the AI tutor a question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the codemaster config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	return ui.Run(cmd.Context(), a.state, cfg.GetLocale())
}

func runCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	md := ui.CatalogMarkdown(catalog.Default(), cfg.GetLocale())
	fmt.Fprint(out, rendererFor(out).Render(md))
	return nil
}

func runGuide(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	loc := cfg.GetLocale()

	entity, err := a.state.Selection.Search(cmd.Context(), joinArgs(args), loc)
	if err != nil {
		if a.client == nil && errors.Is(err, errors.ErrLanguageNotFound) {
			err = errors.WithHint(err, "languages outside the catalog need an API key: set GEMINI_API_KEY or pass --api-key")
		}
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, entity)
	}
	fmt.Fprint(out, rendererFor(out).Render(ui.EntityMarkdown(entity, loc)))
	return nil
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg, true)
	if err != nil {
		return err
	}
	loc := cfg.GetLocale()

	roadmap, err := a.state.Roadmap.Generate(cmd.Context(), joinArgs(args), loc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, roadmap)
	}
	fmt.Fprint(out, rendererFor(out).Render(ui.RoadmapMarkdown(roadmap, loc)))
	return nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg, true)
	if err != nil {
		return err
	}

	reply, err := a.state.Conversation.Send(cmd.Context(), joinArgs(args), cfg.GetLocale())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, rendererFor(out).Render(reply.Text))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err == nil && !forceInit {
		return errors.WithHint(
			errors.Newf("config file already exists: %s", path),
			"pass --force to overwrite it",
		)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logging.Boot("wrote default config to %s", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	shown := *cfg
	if shown.Generation.APIKey != "" {
		shown.Generation.APIKey = "********"
	}
	data, err := yaml.Marshal(&shown)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// rendererFor picks a styled renderer for terminals and a plain one
// otherwise.
func rendererFor(w io.Writer) *ui.Renderer {
	if f, ok := w.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return ui.NewRenderer(100)
		}
	}
	return ui.NewPlainRenderer(100)
}
