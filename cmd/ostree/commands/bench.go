package commands

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guiguan/caster"
	"github.com/spf13/cobra"

	"github.com/npillmayer/ostree"
)

const (
	benchCmdUse        = "bench"
	benchCmdShort      = "Insert and delete random keys, then report timings"
	defaultBenchKeys   = 200000
	defaultBenchRange  = 10000
	defaultBenchDelete = 2000
	defaultBenchSeed   = 1
	progressSteps      = 10
	progressBuffer     = 16
)

// Phases of a benchmark run, as reported in progress events.
const (
	PhaseInsert = "insert"
	PhaseDelete = "delete"
	PhaseCheck  = "check"
)

// Progress is broadcast while a benchmark runs.
type Progress struct {
	Phase       string
	Done, Total int
}

// BenchReport summarizes a benchmark run.
type BenchReport struct {
	Inserted    int
	Deleted     int
	Size        int
	BlackHeight int
	InsertTime  time.Duration
	DeleteTime  time.Duration
	CheckTime   time.Duration
}

// NewBenchCommand creates the bench subcommand.
func NewBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   benchCmdUse,
		Short: benchCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var settings BenchSettings

			loadErr := loadSettings(cmd, &settings)
			if loadErr != nil {
				return loadErr
			}

			validateErr := settings.Validate()
			if validateErr != nil {
				return validateErr
			}

			report, err := benchWithProgress(cmd.Context(), settings, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), report)

			return nil
		},
	}

	cmd.Flags().Int("keys", defaultBenchKeys, "number of random keys to insert")
	cmd.Flags().Int("range", defaultBenchRange, "keys are drawn from [0, range)")
	cmd.Flags().Int("deletes", defaultBenchDelete, "number of inserted keys to delete again")
	cmd.Flags().Int64("seed", defaultBenchSeed, "seed of the random number generator")
	cmd.Flags().Bool("check", false, "verify tree invariants after each phase")

	return cmd
}

// benchWithProgress runs a benchmark and prints its progress events to w.
func benchWithProgress(ctx context.Context, settings BenchSettings, w io.Writer) (BenchReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	progress := caster.New(ctx)

	events, ok := progress.Sub(ctx, progressBuffer)
	if !ok {
		return BenchReport{}, fmt.Errorf("subscribe to progress: %w", context.Cause(ctx))
	}

	stop, done := make(chan struct{}), make(chan struct{})

	go func() {
		defer close(done)
		printProgress(w, events, stop)
	}()

	report, err := RunBench(settings, progress)

	progress.Close()
	close(stop)
	<-done

	return report, err
}

// printProgress writes progress events to w until events is closed or stop
// is signalled. Events already buffered when stop is signalled are printed.
func printProgress(w io.Writer, events <-chan interface{}, stop <-chan struct{}) {
	show := func(msg interface{}) {
		if p, isProgress := msg.(Progress); isProgress {
			fmt.Fprintf(w, "%-6s %3d%% (%s/%s)\n", p.Phase, percent(p.Done, p.Total),
				humanize.Comma(int64(p.Done)), humanize.Comma(int64(p.Total)))
		}
	}

	for {
		select {
		case msg, ok := <-events:
			if !ok {
				return
			}

			show(msg)
		case <-stop:
			for {
				select {
				case msg, ok := <-events:
					if !ok {
						return
					}

					show(msg)
				default:
					return
				}
			}
		}
	}
}

// RunBench inserts settings.Keys random keys into a fresh tree, deletes
// settings.Deletes of them again, and measures the time for each phase.
// If progress is not nil, Progress events are published to it.
func RunBench(settings BenchSettings, progress *caster.Caster) (BenchReport, error) {
	var report BenchReport

	rnd := rand.New(rand.NewSource(settings.Seed))
	tree := ostree.NewOrdered[int]()
	keys := make([]int, settings.Keys)

	for i := range keys {
		keys[i] = rnd.Intn(settings.Range)
	}

	publish := func(phase string, done, total int) {
		if progress != nil && (done == total || done%max(total/progressSteps, 1) == 0) {
			progress.Pub(Progress{Phase: phase, Done: done, Total: total})
		}
	}

	start := time.Now()

	for i, k := range keys {
		tree.Insert(k)
		publish(PhaseInsert, i+1, len(keys))
	}

	report.InsertTime = time.Since(start)
	report.Inserted = len(keys)

	if settings.Check {
		checkErr := timedCheck(tree, &report, publish)
		if checkErr != nil {
			return report, fmt.Errorf("after inserts: %w", checkErr)
		}
	}

	start = time.Now()

	remaining := keys
	for i := range settings.Deletes {
		j := rnd.Intn(len(remaining))
		k := remaining[j]
		remaining[j] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]

		deleteErr := tree.Delete(k)
		if deleteErr != nil {
			return report, fmt.Errorf("delete of inserted key: %w", deleteErr)
		}

		publish(PhaseDelete, i+1, settings.Deletes)
	}

	report.DeleteTime = time.Since(start)
	report.Deleted = settings.Deletes

	if settings.Check {
		checkErr := timedCheck(tree, &report, publish)
		if checkErr != nil {
			return report, fmt.Errorf("after deletes: %w", checkErr)
		}
	}

	report.Size = tree.Size()
	report.BlackHeight = tree.BlackHeight()

	if report.Size != report.Inserted-report.Deleted {
		return report, fmt.Errorf("%w: size %d after %d inserts and %d deletes", ostree.ErrCorrupt,
			report.Size, report.Inserted, report.Deleted)
	}

	return report, nil
}

func timedCheck(tree *ostree.Tree[int], report *BenchReport, publish func(string, int, int)) error {
	start := time.Now()
	err := tree.Check()
	report.CheckTime += time.Since(start)
	publish(PhaseCheck, 1, 1)

	return err
}

func printReport(w io.Writer, report BenchReport) {
	fmt.Fprintf(w, "inserted %s keys in %v (%s)\n", humanize.Comma(int64(report.Inserted)),
		report.InsertTime.Round(time.Microsecond), rate(report.Inserted, report.InsertTime))
	fmt.Fprintf(w, "deleted  %s keys in %v (%s)\n", humanize.Comma(int64(report.Deleted)),
		report.DeleteTime.Round(time.Microsecond), rate(report.Deleted, report.DeleteTime))
	fmt.Fprintf(w, "checked  invariants in %v\n", report.CheckTime.Round(time.Microsecond))
	fmt.Fprintf(w, "size     %s, black height %d\n", humanize.Comma(int64(report.Size)), report.BlackHeight)
}

func rate(ops int, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}

	return humanize.SIWithDigits(float64(ops)/d.Seconds(), 2, "ops/s")
}

func percent(done, total int) int {
	if total == 0 {
		return 100
	}

	return done * 100 / total
}
