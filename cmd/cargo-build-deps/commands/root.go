// Package commands implements the CLI for cargo-build-deps.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/builddeps/internal/app"
	"go.trai.ch/builddeps/internal/build"
	"go.trai.ch/builddeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// SubcommandName is the word cargo passes first when it runs the tool as
// "cargo build-deps".
const SubcommandName = "build-deps"

// Log formats accepted by --log-format.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// CLI represents the command line interface for cargo-build-deps.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "cargo-build-deps [build-deps]",
		Short:         "Build the direct dependencies of a Cargo package, one at a time",
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runBuild,
	}

	flags := rootCmd.Flags()
	flags.Bool("release", false, "Build dependencies in release mode")
	flags.Bool("frozen", false, "Require Cargo.lock and cache to be up to date")
	flags.String("manifest-path", "", "Path to Cargo.toml, forwarded to cargo")
	flags.String("target-dir", "", "Directory for all generated artifacts, forwarded to cargo")
	flags.String("bin", "", "Binary name, forwarded to cargo")
	flags.String("lib", "", "Library name, forwarded to cargo")
	flags.String("target", "", "Target triple to build for, forwarded to cargo")
	flags.String("cargo", "", "Build command to run instead of cargo")
	flags.String("config", domain.DefaultConfigPath, "Path to the settings file")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("log-format", LogFormatPretty, "Log format: pretty or json")

	// Registered after -v so --version does not claim the shorthand.
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) runBuild(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	logFormat, _ := flags.GetString("log-format")
	if logFormat != LogFormatPretty && logFormat != LogFormatJSON {
		return zerr.With(zerr.Wrap(domain.ErrUnexpectedArgument, "invalid --log-format"), "log_format", logFormat)
	}

	cargo, _ := flags.GetString("cargo")
	configPath, _ := flags.GetString("config")
	verbose, _ := flags.GetBool("verbose")

	return c.app.Run(cmd.Context(), app.RunOptions{
		BuildArgs:  buildArgs(cmd),
		Cargo:      cargo,
		ConfigPath: configPath,
		Verbose:    verbose,
		JSON:       logFormat == LogFormatJSON,
	})
}

// buildArgs collects the forwarded flags. Value flags are forwarded only
// when given on the command line, even with an empty value.
func buildArgs(cmd *cobra.Command) domain.BuildArgs {
	flags := cmd.Flags()
	args := domain.BuildArgs{
		Bools:  make(map[string]bool, len(domain.BoolFlags)),
		Values: make(map[string]string, len(domain.ValueFlags)),
	}

	for _, name := range domain.BoolFlags {
		v, _ := flags.GetBool(name)
		args.Bools[name] = v
	}
	for _, name := range domain.ValueFlags {
		if flags.Changed(name) {
			args.Values[name], _ = flags.GetString(name)
		}
	}

	return args
}

// validateArgs accepts no positional arguments or the single word cargo
// passes to external subcommands.
func validateArgs(_ *cobra.Command, args []string) error {
	for i, arg := range args {
		if i == 0 && arg == SubcommandName {
			continue
		}
		return zerr.With(zerr.Wrap(domain.ErrUnexpectedArgument, "invalid usage"), "argument", arg)
	}
	return nil
}
