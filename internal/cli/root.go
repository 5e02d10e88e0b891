// Package cli implements the command-line interface for glasses.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/fatih/color"
	"github.com/katalvlaran/glasses/glasses"
	"github.com/katalvlaran/glasses/internal/config"
	"github.com/spf13/cobra"
)

// rootFlags holds flags shared by every command.
type rootFlags struct {
	configPath string
	maxStates  int
	logLevel   string
	logFormat  string
	color      string
	cpuProfile string
	explain    bool
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "glasses [input-file]",
		Short: "Minimum operations to reach target water levels",
		Long: `glasses reads a set of glasses with capacities and target levels and prints
the minimum number of fill, empty and pour operations needed to reach the
targets from all-empty, or -1 when the targets cannot be reached.

Input (from the file argument or stdin):
  n
  capacity_1 target_1
  ...
  capacity_n target_n

Examples:
  glasses input.txt
  printf '2\n3 0\n5 4\n' | glasses --explain`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", config.PathFromEnv(), "TOML config file (env "+config.EnvConfig+")")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", "", "Log format (text, json)")
	pf.StringVar(&f.color, "color", "", "Colored output (auto, always, never)")
	pf.StringVar(&f.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")

	root.Flags().IntVar(&f.maxStates, "max-states", 0, "Abort the search after this many distinct states (0 = unbounded)")
	root.Flags().BoolVar(&f.explain, "explain", false, "Print the solving method and search statistics to stderr")

	root.AddCommand(newSweepCmd(f))

	return root
}

// Execute runs the root command with ctx, reporting any error on stderr.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
		return err
	}
	return nil
}

// load resolves the effective configuration: file values, then flags the
// user set explicitly. A config named only by GLASSES_CONFIG that fails to
// load is reported as a warning and replaced by the defaults; an explicit
// --config must load.
func (f *rootFlags) load(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		if flags.Changed("config") {
			return nil, err
		}
		cfg = config.Default()
		cfg.Logger(cmd.ErrOrStderr()).Warn("ignoring config from environment",
			"env", config.EnvConfig, "error", err)
	}

	if flags.Changed("max-states") {
		cfg.MaxStates = f.maxStates
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if flags.Changed("color") {
		cfg.Color = f.color
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.Color) {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}

	return cfg, nil
}

// startProfile starts CPU profiling when path is set and returns the
// matching stop function.
func startProfile(path string, logger *slog.Logger) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(out); err != nil {
		out.Close()
		return nil, fmt.Errorf("failed to start cpu profile: %w", err)
	}
	logger.Debug("cpu profiling", "path", path)

	return func() {
		pprof.StopCPUProfile()
		if err := out.Close(); err != nil {
			logger.Warn("failed to close cpu profile", "error", err)
		}
	}, nil
}

func runSolve(cmd *cobra.Command, args []string, f *rootFlags) error {
	cfg, err := f.load(cmd)
	if err != nil {
		return err
	}
	logger := cfg.Logger(cmd.ErrOrStderr())

	stop, err := startProfile(f.cpuProfile, logger)
	if err != nil {
		return err
	}
	defer stop()

	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	ans, err := glasses.Solve(in,
		glasses.WithContext(cmd.Context()),
		glasses.WithMaxStates(cfg.MaxStates),
		glasses.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ans.Value())
	if f.explain {
		explain(cmd.ErrOrStderr(), in, ans)
	}

	return nil
}

// readInput parses the instance from the file argument, or stdin when none
// is given or the argument is "-".
func readInput(cmd *cobra.Command, args []string) (glasses.Instance, error) {
	if len(args) == 0 || args[0] == "-" {
		return glasses.ReadInstance(cmd.InOrStdin())
	}

	file, err := os.Open(args[0])
	if err != nil {
		return glasses.Instance{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	in, err := glasses.ReadInstance(file)
	if err != nil {
		return glasses.Instance{}, fmt.Errorf("%s: %w", args[0], err)
	}
	return in, nil
}

// explain writes a one-line summary of how the answer was obtained.
func explain(w io.Writer, in glasses.Instance, ans glasses.Answer) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	bold.Fprintf(w, "%d glasses ", in.Len())
	fmt.Fprintf(w, "method=%s ", ans.Method)
	if ans.Reachable {
		green.Fprintf(w, "ops=%d", ans.Ops)
	} else {
		red.Fprint(w, "unreachable")
	}
	if ans.Method == glasses.MethodSearch {
		yellow.Fprintf(w, " states=%d", ans.States)
	}
	fmt.Fprintln(w)
}
