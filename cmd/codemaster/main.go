package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"codemaster/internal/config"
	"codemaster/internal/errors"
	"codemaster/internal/logging"
	"codemaster/internal/types"
)

var (
	// Global flags
	configPath  string
	langFlag    string
	apiKey      string
	modelFlag   string
	verbose     bool
	metricsAddr string

	// Loaded in PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "codemaster",
	Short: "CodeMaster AI - learn any programming language",
	Long: `CodeMaster AI is a terminal guide to programming languages.

Browse a catalog of beginner-friendly languages, search for any other
language and get a generated guide, turn a project idea into a roadmap,
or ask the AI tutor a question. Arabic and English are supported.

Run without arguments to start the interactive interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		interactive := cmd == cmd.Root()
		opts := logging.Options{
			DebugMode:  cfg.Logging.DebugMode,
			Level:      cfg.Logging.Level,
			File:       cfg.Logging.File,
			JSONFormat: cfg.Logging.JSONFormat,
			Categories: cfg.Logging.Categories,
		}
		// The TUI owns the terminal, so --verbose only reaches stderr for
		// one-shot commands.
		if verbose && !interactive {
			opts.Stderr = true
			opts.Level = "debug"
		}
		if err := logging.Initialize(opts); err != nil {
			return errors.Wrap(err, "failed to initialize logging")
		}

		logging.Boot("codemaster starting: command=%s locale=%s model=%s", cmd.Name(), cfg.Locale, cfg.Generation.Model)
		logging.Boot("chat send_history=%t", cfg.Chat.SendHistory)
		return startMetricsServer(cfg.Metrics.Addr)
	},
	RunE: runInteractive,
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if langFlag != "" {
		c.Locale = langFlag
	}
	if apiKey != "" {
		c.Generation.APIKey = apiKey
	}
	if modelFlag != "" {
		c.Generation.Model = modelFlag
	}
	if metricsAddr != "" {
		c.Metrics.Addr = metricsAddr
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.codemaster/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "Display language: ar or en")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY env)")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "Gemini model name")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")

	guideCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the entity as JSON")
	roadmapCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the roadmap as JSON")
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	// Add commands to root
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(configCmd)
}

// runRoot executes the command tree with args. Cleanup runs whether or not the
// command failed; cobra skips PersistentPostRun on error.
func runRoot(ctx context.Context, args []string) error {
	defer func() {
		stopMetricsServer()
		logging.Sync()
	}()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := runRoot(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}

// describeError turns err into the message printed on exit. Known kinds get
// the localized notice plus any hints; anything else prints as is.
func describeError(err error) string {
	loc := types.DefaultLocale
	if cfg != nil {
		loc = cfg.GetLocale()
	}

	known := errors.IsAny(err,
		errors.ErrLanguageNotFound, errors.ErrGenerationParse, errors.ErrExternalService,
		errors.ErrFlowBusy, errors.ErrEmptyInput, errors.ErrInvalidConfig,
	)
	if !known {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(errors.Notice(err, loc))
	for _, hint := range errors.GetAllHints(err) {
		b.WriteString("\n  hint: ")
		b.WriteString(hint)
	}
	if verbose {
		b.WriteString("\n  cause: ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
