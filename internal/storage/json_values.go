package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// JSONValues wraps an adapter and stores every value JSON-encoded, so the
// backend holds `"12.5"` where a plain adapter holds `12.5`. Values that do
// not decode as a JSON string are returned unchanged, which keeps saves
// written by a plain adapter readable.
type JSONValues struct {
	next Adapter
}

// NewJSONValues wraps next
func NewJSONValues(next Adapter) *JSONValues {
	return &JSONValues{next: next}
}

func (j *JSONValues) Get(ctx context.Context, key string) (string, bool, error) {
	raw, ok, err := j.next.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	return unwrapJSON(raw), true, nil
}

func (j *JSONValues) Set(ctx context.Context, key, value string) error {
	encoded, err := wrapJSON(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return j.next.Set(ctx, key, encoded)
}

func (j *JSONValues) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	raw, err := j.next.GetMany(ctx, keys)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = unwrapJSON(v)
	}
	return out, nil
}

func (j *JSONValues) SetMany(ctx context.Context, values map[string]string) error {
	encoded := make(map[string]string, len(values))
	for k, v := range values {
		e, err := wrapJSON(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", k, err)
		}
		encoded[k] = e
	}
	return j.next.SetMany(ctx, encoded)
}

func (j *JSONValues) Remove(ctx context.Context, key string) error {
	return j.next.Remove(ctx, key)
}

// Ping forwards to the wrapped adapter
func (j *JSONValues) Ping(ctx context.Context) error {
	return Ping(ctx, j.next)
}

func wrapJSON(v string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unwrapJSON(raw string) string {
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return raw
	}
	return s
}
