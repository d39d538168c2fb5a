package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// jsonWriter writes a document as a single JSON value.
type jsonWriter struct {
	w      *bufio.Writer
	pretty bool
	indent string
}

func newJSONWriter(w io.Writer, pretty bool, indent string) *jsonWriter {
	return &jsonWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
	}
}

func (w *jsonWriter) Write(data any) error {
	var out []byte
	var err error
	if w.pretty {
		out, err = json.MarshalIndent(data, "", w.indent)
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *jsonWriter) Close() error {
	return w.w.Flush()
}

// jsonlWriter writes newline-delimited JSON, one document per line.
type jsonlWriter struct {
	w *bufio.Writer
}

func newJSONLWriter(w io.Writer) *jsonlWriter {
	return &jsonlWriter{w: bufio.NewWriter(w)}
}

func (w *jsonlWriter) Write(data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *jsonlWriter) Close() error {
	return w.w.Flush()
}
