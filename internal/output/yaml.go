package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlWriter writes a document as YAML.
type yamlWriter struct {
	w *bufio.Writer
}

func newYAMLWriter(w io.Writer) *yamlWriter {
	return &yamlWriter{w: bufio.NewWriter(w)}
}

func (w *yamlWriter) Write(data any) error {
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	if err := encoder.Encode(data); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *yamlWriter) Close() error {
	return w.w.Flush()
}
