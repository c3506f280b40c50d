// Package cmd provides the root command and CLI setup for crowbar.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/crowbar/internal/adapter"
	"github.com/mouse-blink/crowbar/internal/config"
	"github.com/mouse-blink/crowbar/internal/controller"
	"github.com/mouse-blink/crowbar/internal/domain"
	"github.com/mouse-blink/crowbar/internal/log"
	m "github.com/mouse-blink/crowbar/internal/model"
	"github.com/mouse-blink/crowbar/internal/profile"
)

// cfg is the effective configuration, set before any subcommand runs.
var cfg config.Config
var workflow domain.Workflow
var profiler profile.Stopper

// newWorkflow builds the workflow used by every subcommand.
var newWorkflow = defaultWorkflow

var configFlag string
var logLevelFlag string
var logFormatFlag string
var logCallerFlag bool
var profileFlag string
var profileDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `Crowbar lists the scalar let, const and static literals of a Rust
source file and edits them in place. Every byte outside the edited literal,
comments and whitespace included, is kept as written.

Values are integers, floats, booleans and strings. An entry is addressed as
ORDINAL:NAME (for example 3:ratio) or by a bare NAME when it is unique.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "crowbar",
		Short:             "Edit scalar literals in Rust sources",
		Long:              rootLongDescription,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if profiler != nil {
				profiler.Stop()
				profiler = nil
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", config.DefaultPath, "path to the YAML config file")
	flags.StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error (overrides config)")
	flags.StringVar(&logFormatFlag, "log-format", "", "log format: text or json (overrides config)")
	flags.BoolVar(&logCallerFlag, "log-caller", false, "add source locations to log records (overrides config)")
	flags.StringVar(&profileFlag, "profile", "",
		fmt.Sprintf("enable runtime profiling, one of: %s", strings.Join(profile.Modes(), ", ")))
	flags.StringVar(&profileDirFlag, "profile-dir", "", "directory for profile output (default: current directory)")

	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if logLevelFlag != "" {
		loaded.Log.Level = logLevelFlag
	}

	if logFormatFlag != "" {
		loaded.Log.Format = logFormatFlag
	}

	if cmd.Flags().Changed("log-caller") {
		loaded.Log.Caller = logCallerFlag
	}

	cfg = loaded

	log.SetDefault(log.Default().Wrap(
		log.WithOutput(cmd.ErrOrStderr()),
		log.WithLevel(log.ParseLevel(cfg.Log.Level)),
		log.WithFormat(log.ParseFormat(cfg.Log.Format)),
		log.WithCaller(cfg.Log.Caller),
	))

	wf, err := newWorkflow(cmd, cfg)
	if err != nil {
		return err
	}

	workflow = wf

	stopper, err := profile.Start(profileFlag, profileDirFlag)
	if err != nil {
		return err
	}

	profiler = stopper

	return nil
}

func defaultWorkflow(cmd *cobra.Command, conf config.Config) (domain.Workflow, error) {
	timeout, err := conf.Toolchain.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	toolchain := adapter.NewLocalToolchainAdapter(conf.Toolchain.Compiler, conf.Toolchain.Args...)
	orchestrator := domain.NewOrchestrator(fsAdapter, toolchain,
		domain.WithTimeout(timeout),
		domain.WithWorkspacePattern(conf.Workspace.Pattern),
	)
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(fsAdapter, ui, orchestrator), nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute runs the root command with a context cancelled on interrupt.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
