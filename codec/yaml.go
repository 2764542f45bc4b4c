package codec

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jsondelta/jsondelta/value"
)

// YAML loads and dumps YAML documents. Deltas marshal to the same shapes as
// in JSON, so a YAML delta file patches a YAML document the way a JSON one
// patches JSON.
type YAML struct{}

func (YAML) Load(r io.Reader) (*value.Value, error) {
	var raw any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return value.FromGo(raw)
}

func (YAML) Dump(w io.Writer, v *value.Value) error {
	raw, err := v.ToGo()
	if err != nil {
		return err
	}
	return yaml.NewEncoder(w).Encode(raw)
}
