package codec

import (
	"encoding/json"
	"io"

	"github.com/jsondelta/jsondelta/value"
)

// JSON loads and dumps JSON documents. Numbers decode through json.Number so
// integers survive without a float round trip.
type JSON struct {
	// Indent is the per-level indent string for dumping. Empty means
	// one-line output.
	Indent string
}

func (JSON) Load(r io.Reader) (*value.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return value.FromGo(raw)
}

func (j JSON) Dump(w io.Writer, v *value.Value) error {
	raw, err := v.ToGo()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	return enc.Encode(raw)
}
