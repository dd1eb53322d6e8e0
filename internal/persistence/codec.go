package persistence

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Codec encodes the state blob.
type Codec interface {
	Name() string
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// JSONCodec encodes with sonic using standard-library compatible settings
// (sorted map keys, HTML escaping).
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v interface{}) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v interface{}) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}

// YAMLCodec encodes with goccy/go-yaml in flow style with double-quoted
// scalars. Plain block scalars lose leading tabs and bare line breaks, so
// file content would not survive a reload.
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Marshal(v interface{}) ([]byte, error) {
	return yaml.MarshalWithOptions(v, yaml.JSON())
}

func (YAMLCodec) Unmarshal(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}

// TOMLCodec encodes with pelletier/go-toml/v2.
type TOMLCodec struct{}

func (TOMLCodec) Name() string { return "toml" }

func (TOMLCodec) Marshal(v interface{}) ([]byte, error) {
	return toml.Marshal(v)
}

func (TOMLCodec) Unmarshal(data []byte, v interface{}) error {
	return toml.Unmarshal(data, v)
}

// CodecByName returns the codec for "json", "yaml" or "toml". Empty means json.
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	case "toml":
		return TOMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec: %q", name)
	}
}
