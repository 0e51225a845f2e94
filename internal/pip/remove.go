package pip

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultBatchSize caps how many packages one pip uninstall call covers.
const DefaultBatchSize = 10

// RemoveOptions control batched removal.
type RemoveOptions struct {
	// BatchSize is the maximum batch length; zero means DefaultBatchSize.
	BatchSize int
	// Strict makes the overall result depend on every batch exiting zero.
	// The default (lenient) keeps going and reports success regardless,
	// since one package failing to uninstall mid-run (often because a
	// not-yet-removed package still depends on it) should not fail the
	// whole cleanup.
	Strict bool
	// Progress receives batch-by-batch narration; defaults to os.Stdout.
	Progress io.Writer
}

// RemoveAll uninstalls names in consecutive batches via `pip uninstall -y`,
// preserving input order and streaming pip's own output live. A batch that
// exits non-zero is logged and the loop continues with the next batch; no
// rollback is attempted.
func (c *Client) RemoveAll(names []string, opts RemoveOptions) bool {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Progress == nil {
		opts.Progress = os.Stdout
	}

	if len(names) == 0 {
		fmt.Fprintln(opts.Progress, "No packages to remove.")
		return true
	}

	fmt.Fprintf(opts.Progress, "Starting removal of %d packages...\n", len(names))

	ok := true
	for start := 0; start < len(names); start += opts.BatchSize {
		end := min(start+opts.BatchSize, len(names))
		batch := names[start:end]
		number := start/opts.BatchSize + 1

		fmt.Fprintf(opts.Progress, "\nRemoving batch %d: %s\n", number, strings.Join(batch, ", "))

		res := c.run(append([]string{"uninstall", "-y"}, batch...), false)
		if res == nil || res.ExitCode != 0 {
			c.logger.Warn("some packages in batch failed to remove, continuing", "batch", number)
			ok = false
		}
	}

	fmt.Fprintln(opts.Progress, "\nRemoval completed.")
	if opts.Strict {
		return ok
	}
	return true
}
