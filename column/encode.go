package column

import (
	"io"
	"sort"

	"github.com/mailru/easyjson/jwriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Set named descriptors, e.g. the columns of one table.
type Set map[string]*Descriptor

// Names returns the column names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalEasyJSON writes the set as an object keyed by column name, in
// name order so the output is diff-stable.
func (s Set) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	for i, name := range s.Names() {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(name)
		w.RawByte(':')
		if d := s[name]; d != nil {
			d.MarshalEasyJSON(w)
		} else {
			w.RawString("null")
		}
	}
	w.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (s Set) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	s.MarshalEasyJSON(&w)
	return w.Buffer.BuildBytes(), w.Error
}

// WriteJSON writes the set as JSON.
func (s Set) WriteJSON(out io.Writer) error {
	w := jwriter.Writer{}
	s.MarshalEasyJSON(&w)
	if w.Error != nil {
		return errors.Wrap(w.Error, "encode columns")
	}
	_, err := w.DumpTo(out)
	return err
}

// WriteYAML writes the set as YAML.
func (s Set) WriteYAML(out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]*Descriptor(s)); err != nil {
		return errors.Wrap(err, "encode columns")
	}
	return enc.Close()
}
