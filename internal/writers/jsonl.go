package writers

import (
	"bufio"
	"encoding/json"
	"io"
)

func init() { Register("jsonl", WriteJSONL) }

// WriteJSONL streams the header and then each record as one JSON line.
func WriteJSONL(w io.Writer, run Run) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(run.Header); err != nil {
		return err
	}
	for _, rec := range run.Records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}

	return bw.Flush()
}
