package jtd

import (
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// FromYAML loads a schema document written as YAML, the same media-type
// convenience the teacher's compiler offers for "application/yaml" — decode
// into a generic value with goccy/go-yaml, then re-marshal through the JSON
// encoder so the result goes through the same FromJSON path (and the same
// unknown-keyword and shape checks) as a JSON document would.
func FromYAML(data []byte) (*Schema, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	asJSON, err := json.Marshal(generic)
	if err != nil {
		return nil, err
	}
	return FromJSON(asJSON)
}
