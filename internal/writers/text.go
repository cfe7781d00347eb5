package writers

import (
	"bufio"
	"fmt"
	"io"
)

func init() { Register("text", WriteText) }

// WriteText prints a one-line header followed by one line per record.
func WriteText(w io.Writer, run Run) error {
	bw := bufio.NewWriter(w)
	h := run.Header
	fmt.Fprintf(bw, "# %s run %s: %d steps, final at %d\n", h.Algorithm, h.RunID, h.Steps, h.Final)
	for _, rec := range run.Records {
		fmt.Fprintln(bw, rec.Line())
	}

	return bw.Flush()
}

// WriteSnapshot prints the record at step k of run, marking the final step.
func WriteSnapshot(w io.Writer, run Run, k int) error {
	if k < 0 || k >= len(run.Records) {
		return fmt.Errorf("writers: snapshot step %d of %d", k, len(run.Records))
	}
	marker := ""
	if k == run.Header.Final {
		marker = " (final)"
	}
	_, err := fmt.Fprintf(w, "step %d/%d%s\n%s\n", k+1, len(run.Records), marker, run.Records[k].Line())

	return err
}
