package librarypb

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype the service messages are exchanged with.
const CodecName = "json"

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec marshals the service messages as JSON.
type Codec struct{}

// Marshal encodes v as JSON.
func (Codec) Marshal(v any) ([]byte, error) {
	data, err := jsonAPI.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("librarypb: marshal %T: %w", v, err)
	}

	return data, nil
}

// Unmarshal decodes JSON data into v, which must be a pointer.
func (Codec) Unmarshal(data []byte, v any) error {
	if err := jsonAPI.Unmarshal(data, v); err != nil {
		return fmt.Errorf("librarypb: unmarshal %T: %w", v, err)
	}

	return nil
}

// Name returns CodecName.
func (Codec) Name() string {
	return CodecName
}
