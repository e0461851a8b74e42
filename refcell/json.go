package refcell

import (
	jsonv1 "encoding/json"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// A RefCell marshals as its interior value. Marshaling takes a transient
// shared borrow and unmarshaling a transient exclusive borrow; a conflicting
// borrow outstanding at that moment becomes an ordinary error rather than a
// panic, since the encoder sits at an I/O boundary where callers handle
// errors, not panics.

// MarshalJSON implements json.Marshaler.
func (c *RefCell[T]) MarshalJSON() ([]byte, error) {
	r, err := c.TryBorrow()
	if err != nil {
		return nil, err
	}
	defer r.Release()
	return jsonv1.Marshal(c.value)
}

// UnmarshalJSON implements json.Unmarshaler. The decoded value overwrites the
// interior value.
func (c *RefCell[T]) UnmarshalJSON(b []byte) error {
	m, err := c.TryBorrowMut()
	if err != nil {
		return err
	}
	defer m.Release()

	var v T
	if err := jsonv1.Unmarshal(b, &v); err != nil {
		return err
	}
	c.value = v
	return nil
}

// MarshalJSONV2 implements the v2 json.MarshalerV2.
func (c *RefCell[T]) MarshalJSONV2(enc *jsontext.Encoder, opts json.Options) error {
	r, err := c.TryBorrow()
	if err != nil {
		return err
	}
	defer r.Release()
	return json.MarshalEncode(enc, c.value, opts)
}

// UnmarshalJSONV2 implements the v2 json.UnmarshalerV2.
func (c *RefCell[T]) UnmarshalJSONV2(dec *jsontext.Decoder, opts json.Options) error {
	m, err := c.TryBorrowMut()
	if err != nil {
		return err
	}
	defer m.Release()

	var v T
	if err := json.UnmarshalDecode(dec, &v, opts); err != nil {
		return err
	}
	c.value = v
	return nil
}
