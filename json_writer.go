package marina

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// orderedObject builds a JSON object whose keys keep the order they are set
// in. The first error sticks: later calls are ignored and Bytes returns it.
type orderedObject struct {
	buf []byte
	err error
}

// Set appends key with the JSON encoding of value.
func (o *orderedObject) Set(key string, value any) *orderedObject {
	if o.err != nil {
		return o
	}
	v, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return o
	}
	k, _ := json.Marshal(key)
	if len(o.buf) > 0 {
		o.buf = append(o.buf, ',')
	}
	o.buf = append(o.buf, k...)
	o.buf = append(o.buf, ':')
	o.buf = append(o.buf, v...)
	return o
}

// SetNonZero appends key only if value is not the zero value of its type.
func (o *orderedObject) SetNonZero(key string, value any) *orderedObject {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return o
	}
	return o.Set(key, value)
}

// SetAmount appends key with the amount as a number with exactly two decimals.
func (o *orderedObject) SetAmount(key string, m Money) *orderedObject {
	return o.Set(key, json.Number(m.Fixed()))
}

// Bytes returns the encoded object.
func (o *orderedObject) Bytes() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	obj := make([]byte, 0, len(o.buf)+2)
	obj = append(obj, '{')
	obj = append(obj, o.buf...)
	return append(obj, '}'), nil
}
