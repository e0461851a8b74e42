package cell

import (
	jsonv1 "encoding/json"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// A Cell marshals as its interior value, so a record carrying Cell fields
// round-trips through JSON the same as the unwrapped record would.

// MarshalJSON implements json.Marshaler.
func (c Cell[T]) MarshalJSON() ([]byte, error) {
	return jsonv1.Marshal(c.value)
}

// UnmarshalJSON implements json.Unmarshaler. The decoded value overwrites the
// interior value.
func (c *Cell[T]) UnmarshalJSON(b []byte) error {
	var v T
	if err := jsonv1.Unmarshal(b, &v); err != nil {
		return err
	}
	c.value = v
	return nil
}

// MarshalJSONV2 implements the v2 json.MarshalerV2.
func (c Cell[T]) MarshalJSONV2(enc *jsontext.Encoder, opts json.Options) error {
	return json.MarshalEncode(enc, c.value, opts)
}

// UnmarshalJSONV2 implements the v2 json.UnmarshalerV2.
func (c *Cell[T]) UnmarshalJSONV2(dec *jsontext.Decoder, opts json.Options) error {
	var v T
	if err := json.UnmarshalDecode(dec, &v, opts); err != nil {
		return err
	}
	c.value = v
	return nil
}
