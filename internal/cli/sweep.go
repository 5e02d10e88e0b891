package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/katalvlaran/glasses/fingerprint"
	"github.com/katalvlaran/glasses/glasses"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// errSweepMismatch is returned when the closed form disagrees with search.
var errSweepMismatch = errors.New("closed form disagrees with search")

// maxReported caps the mismatch lines printed by sweep.
const maxReported = 20

// mismatch records one disagreeing two-glass instance.
type mismatch struct {
	a, b, ta, tb int
	want, got    int
}

func (m mismatch) String() string {
	return fmt.Sprintf("(%d,%d)→(%d,%d): search %d, closed form %d", m.a, m.b, m.ta, m.tb, m.want, m.got)
}

func newSweepCmd(f *rootFlags) *cobra.Command {
	var (
		maxCap     int
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Cross-check the two-glass closed form against search",
		Long: `Sweep enumerates every capacity pair 1 <= a, b <= --max and every target
pair, and compares the closed-form answer with the full search distance.
Any disagreement is reported and makes the command fail.

Examples:
  glasses sweep --max 30
  glasses sweep --max 100 --no-progress`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxCap < 1 {
				return fmt.Errorf("--max must be >= 1, got %d", maxCap)
			}
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

			progress := cmd.ErrOrStderr()
			if noProgress {
				progress = io.Discard
			}
			return runSweep(cmd, maxCap, progress)
		},
	}

	cmd.Flags().IntVar(&maxCap, "max", 20, "Largest capacity to enumerate")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Hide the progress bar")

	return cmd
}

func runSweep(cmd *cobra.Command, maxCap int, progress io.Writer) error {
	bar := progressbar.NewOptions(maxCap*maxCap,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("sweeping"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var (
		found   []mismatch
		checked int
	)
	for a := 1; a <= maxCap; a++ {
		for b := 1; b <= maxCap; b++ {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			m, n, err := sweepPair(a, b)
			if err != nil {
				return err
			}
			found = append(found, m...)
			checked += n
			_ = bar.Add(1)
		}
	}
	_ = bar.Finish()

	out := cmd.OutOrStdout()
	if len(found) == 0 {
		color.New(color.FgGreen).Fprintf(out, "ok: %d instances across %d capacity pairs\n", checked, maxCap*maxCap)
		return nil
	}

	red := color.New(color.FgRed)
	for i, m := range found {
		if i == maxReported {
			fmt.Fprintf(out, "... and %d more\n", len(found)-maxReported)
			break
		}
		red.Fprintln(out, m)
	}
	return fmt.Errorf("%w: %d of %d instances", errSweepMismatch, len(found), checked)
}

// sweepPair compares the closed form with the search distance table for
// every target of capacities (a, b). It returns the disagreements and the
// number of instances checked.
func sweepPair(a, b int) ([]mismatch, int, error) {
	dist, err := glasses.Distances([]int{a, b})
	if err != nil {
		return nil, 0, err
	}

	var found []mismatch
	checked := 0
	for ta := 0; ta <= a; ta++ {
		for tb := 0; tb <= b; tb++ {
			checked++
			want, reachable := dist[fingerprint.Of([]int{ta, tb})]
			if !reachable {
				want = glasses.Unreachable
			}

			got := glasses.Unreachable
			if glasses.CanPossiblyReach([]int{a, b}, []int{ta, tb}) {
				if ops, ok := glasses.SolveForTwo(a, b, ta, tb); ok {
					got = ops
				}
			}
			if got != want {
				found = append(found, mismatch{a: a, b: b, ta: ta, tb: tb, want: want, got: got})
			}
		}
	}

	return found, checked, nil
}
