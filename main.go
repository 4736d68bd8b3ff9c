// Package main provides the meetscan CLI entry point.
// meetscan extracts structured action items from meeting transcripts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meetscan/meetscan/cmd"
	"github.com/meetscan/meetscan/config"
	"github.com/meetscan/meetscan/pkg/buildinfo"
	"github.com/meetscan/meetscan/pkg/logging"
)

// Global flags and state.
var (
	outputFormat string
	debug        bool

	// Command dependencies, shared so PersistentPreRunE can wire the logger
	// after flags are parsed.
	parseDeps   = cmd.DefaultParseDeps()
	batchDeps   = cmd.DefaultBatchDeps()
	formatsDeps = cmd.DefaultFormatsDeps()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "meetscan",
	Short: "Extract action items from meeting transcripts",
	Long: `meetscan turns raw meeting transcripts into structured action items:
task, owner, deadline, and priority.

Transcript layouts (Zoom, Google Meet, plain "Name: text") are detected
automatically. Deadlines like "by Friday" or "in 2 days" are resolved
against the meeting date.

COMMON WORKFLOWS:
  Single transcript:  meetscan parse standup.txt --date 2025-12-07
  Whole directory:    meetscan batch ./transcripts --report-dir ./reports
  Machine output:     meetscan parse standup.txt --output json
  Check a file:       meetscan formats detect standup.txt

DISCOVERY:
  meetscan <command> --help   Flags and examples for any command
  meetscan formats            Supported transcript layouts`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if c.Name() == "version" || c.Name() == "help" || c.Name() == "completion" {
			return nil
		}

		level := logging.LevelInfo
		if debug || os.Getenv("MEETSCAN_DEBUG") == "true" || os.Getenv("MEETSCAN_DEBUG") == "1" {
			level = logging.LevelDebug
		}
		logger := logging.NewLogger(&logging.Config{Level: level, ConsoleAuto: true})

		parseDeps.Logger = logger
		batchDeps.Logger = logger

		// A global --output wins over config and per-command defaults.
		if outputFormat != "" {
			format := config.OutputFormat(outputFormat)
			if !format.IsValid() {
				return fmt.Errorf("invalid output format: %s (must be text, markdown, json, or yaml)", outputFormat)
			}
			wrapLoadConfig(format)
		}

		return nil
	},
}

// wrapLoadConfig overlays the global output format on top of whatever the
// command's config loader returns.
func wrapLoadConfig(format config.OutputFormat) {
	loadParse := parseDeps.LoadConfig
	parseDeps.LoadConfig = func() (*config.CLIConfig, error) {
		cfg, err := loadParse()
		if err != nil {
			return nil, err
		}
		cfg.OutputFormat = format
		return cfg, nil
	}
	loadBatch := batchDeps.LoadConfig
	batchDeps.LoadConfig = func() (*config.CLIConfig, error) {
		cfg, err := loadBatch()
		if err != nil {
			return nil, err
		}
		cfg.OutputFormat = format
		return cfg, nil
	}
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build time of the meetscan CLI.`,
	RunE: func(c *cobra.Command, args []string) error {
		info := buildinfo.Get()
		out := c.OutOrStdout()
		fmt.Fprintf(out, "meetscan version %s\n", info.Version)
		fmt.Fprintf(out, "  commit:     %s\n", info.Commit)
		fmt.Fprintf(out, "  built:      %s\n", info.BuildTime)
		fmt.Fprintf(out, "  go version: %s\n", info.GoVersion)
		return nil
	},
}

// configCmd manages CLI configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long:  `View and modify the meetscan CLI configuration settings.`,
}

// configShowCmd displays current configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current CLI configuration values.`,
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		configPath, _ := config.ConfigPath()
		out := c.OutOrStdout()

		fmt.Fprintln(out, "Current configuration:")
		fmt.Fprintf(out, "  Config file:       %s\n", configPath)
		fmt.Fprintf(out, "  Output format:     %s\n", cfg.OutputFormat)
		fmt.Fprintf(out, "  Include stats:     %t\n", cfg.IncludeStats)
		fmt.Fprintf(out, "  Include context:   %t\n", cfg.IncludeContext)
		fmt.Fprintf(out, "  Context window:    %d\n", cfg.ContextWindow)
		fmt.Fprintf(out, "  Batch concurrency: %d\n", cfg.BatchConcurrency)
		fmt.Fprintf(out, "  Extra keywords:    %v\n", cfg.ExtraActionKeywords)
		fmt.Fprintf(out, "  Debug:             %t\n", cfg.Debug)
		return nil
	},
}

// configInitCmd initializes configuration.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file with default values if one doesn't exist.`,
	RunE: func(c *cobra.Command, args []string) error {
		configPath, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("getting config path: %w", err)
		}

		out := c.OutOrStdout()
		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintf(out, "Configuration file already exists: %s\n", configPath)
			fmt.Fprintln(out, "Use 'meetscan config show' to view current settings.")
			return nil
		}

		defaultCfg := config.DefaultConfig()
		if err := config.SaveConfig(defaultCfg); err != nil {
			return fmt.Errorf("saving configuration: %w", err)
		}

		fmt.Fprintf(out, "Created configuration file: %s\n", configPath)
		return nil
	},
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

Available keys:
  output_format      - Default output format (text, markdown, json, yaml)
  include_stats      - Append the statistics section (true/false)
  include_context    - Attach surrounding messages to action items (true/false)
  context_window     - Messages on each side in a context snippet
  batch_concurrency  - Transcripts processed in parallel in batch mode
  report_title       - Default report heading
  debug              - Enable debug logging (true/false)

Examples:
  meetscan config set output_format markdown
  meetscan config set batch_concurrency 8
  meetscan config set report_title "Weekly Sync"`,
	Args: cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		currentCfg, err := config.LoadConfig()
		if err != nil {
			currentCfg = config.DefaultConfig()
		}

		switch key {
		case "output_format":
			format := config.OutputFormat(value)
			if !format.IsValid() {
				return fmt.Errorf("invalid output format: %s (must be text, markdown, json, or yaml)", value)
			}
			currentCfg.OutputFormat = format
		case "include_stats":
			b, err := parseBool(value)
			if err != nil {
				return fmt.Errorf("invalid include_stats value: %w", err)
			}
			currentCfg.IncludeStats = b
		case "include_context":
			b, err := parseBool(value)
			if err != nil {
				return fmt.Errorf("invalid include_context value: %w", err)
			}
			currentCfg.IncludeContext = b
		case "context_window":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid context_window value: %s", value)
			}
			currentCfg.ContextWindow = n
		case "batch_concurrency":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid batch_concurrency value: %s", value)
			}
			currentCfg.BatchConcurrency = n
		case "report_title":
			currentCfg.ReportTitle = value
		case "debug":
			b, err := parseBool(value)
			if err != nil {
				return fmt.Errorf("invalid debug value: %w", err)
			}
			currentCfg.Debug = b
		default:
			return fmt.Errorf("unknown configuration key: %s", key)
		}

		if err := config.SaveConfig(currentCfg); err != nil {
			return fmt.Errorf("saving configuration: %w", err)
		}

		fmt.Fprintf(c.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

// parseBool accepts the true/false spellings used across the CLI.
func parseBool(value string) (bool, error) {
	switch value {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%s (must be true or false)", value)
	}
}

// completionCmd generates shell completion scripts.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for meetscan.

To load completions:

Bash:
  $ source <(meetscan completion bash)

Zsh:
  $ meetscan completion zsh > "${fpath[1]}/_meetscan"

Fish:
  $ meetscan completion fish | source

PowerShell:
  PS> meetscan completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(c *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	// Global flags.
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "", "output format: text, markdown, json, yaml")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Command groups for organized help output.
	rootCmd.AddGroup(
		&cobra.Group{ID: "extract", Title: "Extraction:"},
		&cobra.Group{ID: "setup", Title: "Setup:"},
	)

	// Extraction
	parseCmd := cmd.NewParseCommand(parseDeps)
	parseCmd.GroupID = "extract"
	rootCmd.AddCommand(parseCmd)

	batchCmd := cmd.NewBatchCommand(batchDeps)
	batchCmd.GroupID = "extract"
	rootCmd.AddCommand(batchCmd)

	formatsCmd := cmd.NewFormatsCommand(formatsDeps)
	formatsCmd.GroupID = "extract"
	rootCmd.AddCommand(formatsCmd)

	// Setup
	configCmd.GroupID = "setup"
	rootCmd.AddCommand(configCmd)

	completionCmd.GroupID = "setup"
	rootCmd.AddCommand(completionCmd)

	versionCmd.GroupID = "setup"
	rootCmd.AddCommand(versionCmd)

	// Config subcommands.
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
