// Package main provides the ontomodel binary entry point.
// It inspects the OntoUML taxonomy and vocabulary and exercises the model
// with a small demonstration project.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/ontomodel/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ontomodel"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cliOptions holds the persistent flags shared by every subcommand.
type cliOptions struct {
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "OntoUML object model toolkit",
		Long: `ontomodel inspects and exercises the OntoUML object model.

It provides:
- The taxonomy gate: which element kinds may be constructed
- The OntoUML predicate vocabulary and its IRIs
- The effective configuration
- A demonstration of project/element ownership`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	cmd.AddCommand(taxonomyCmd(opts))
	cmd.AddCommand(vocabularyCmd())
	cmd.AddCommand(configCmd(opts))
	cmd.AddCommand(demoCmd(opts))

	return cmd
}

// setup loads configuration and installs the default logger.
func setup(opts *cliOptions, errOut io.Writer) (*config.Config, *slog.Logger, error) {
	level := slog.LevelInfo
	if opts.logLevel != "" {
		level = config.ParseLevel(opts.logLevel)
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	cfg, err := config.NewLoader(logger).Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if opts.logLevel == "" {
		logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func configCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}
}
