package finflow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// recordWriter builds a JSON object whose fields keep their insertion order,
// so that dataset files stay stable and diffable. Its zero value is ready to use.
type recordWriter struct {
	buf bytes.Buffer
	err error
}

// Field appends key and the JSON encoding of value.
func (w *recordWriter) Field(key string, value any) *recordWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode field %q: %w", key, err)
		return w
	}
	if w.buf.Len() > 0 {
		w.buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(raw)
	return w
}

// Optional is like Field but skips zero values.
func (w *recordWriter) Optional(key string, value any) *recordWriter {
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Field(key, value)
}

// MarshalJSON returns the object built so far.
func (w *recordWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.buf.Len()+2)
	out = append(out, '{')
	out = append(out, w.buf.Bytes()...)
	return append(out, '}'), nil
}
