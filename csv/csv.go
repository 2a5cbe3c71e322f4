package csv

import (
	"encoding/csv"
	"io"

	"golang.org/x/xerrors"
)

// Produces a list of fields making up a record.
type Recorder interface {
	Record() []string
}

// Produces the column names for a Recorder's fields.
type Header interface {
	Header() []string
}

// An Encoder writes CSV records to an output stream.
type Encoder struct {
	w *csv.Writer

	wroteHeader bool
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: csv.NewWriter(w)}
}

// Encode writes a CSV record representing v to the stream followed by a
// newline character. Value given must implement the Recorder interface. If
// the first value encoded also implements Header, a header row precedes it.
func (enc *Encoder) Encode(v interface{}) (err error) {
	defer func() {
		if r, ok := recover().(error); ok {
			err = xerrors.Errorf("recovered: %w", r)
		}
	}()

	rec := v.(Recorder)

	if !enc.wroteHeader {
		enc.wroteHeader = true
		if h, ok := v.(Header); ok {
			if err = enc.w.Write(h.Header()); err != nil {
				return xerrors.Errorf("writing header: %w", err)
			}
		}
	}

	if err = enc.w.Write(rec.Record()); err != nil {
		return xerrors.Errorf("writing record: %w", err)
	}
	enc.w.Flush()

	return enc.w.Error()
}
