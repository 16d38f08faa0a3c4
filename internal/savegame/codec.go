package savegame

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/CookieClicker_Go/internal/domain"
)

// FieldError reports a persisted field that could not be used. The field
// keeps its default value.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s: %v", domain.ErrMsgMalformedField, e.Field, e.Err)
}

func (e FieldError) Unwrap() []error {
	return []error{domain.ErrMalformedField, e.Err}
}

var (
	errNegative   = errors.New("value is negative")
	errNotFinite  = errors.New("value is not finite")
	errBelowOne   = errors.New("value is below 1")
	errNotInteger = errors.New("value is not an integer")
)

// savedProducer is the persisted form of one producer
type savedProducer struct {
	ID    string  `json:"id"`
	Owned int64   `json:"owned"`
	Cost  float64 `json:"cost"`
}

// Codec maps a GameState to namespaced string fields and back
type Codec struct {
	namespace string
	catalog   []domain.Producer
}

// NewCodec creates a codec for one player namespace and producer catalog
func NewCodec(namespace string, catalog []domain.Producer) *Codec {
	return &Codec{
		namespace: namespace,
		catalog:   append([]domain.Producer(nil), catalog...),
	}
}

// Namespace returns the key prefix without separator
func (c *Codec) Namespace() string {
	return c.namespace
}

// Key returns the storage key for a field
func (c *Codec) Key(field string) string {
	if c.namespace == "" {
		return field
	}
	return c.namespace + KeySeparator + field
}

// Keys returns every storage key the codec reads and writes
func (c *Codec) Keys() []string {
	return []string{
		c.Key(FieldCookies),
		c.Key(FieldTotalCookies),
		c.Key(FieldClickPower),
		c.Key(FieldTotalClicks),
		c.Key(FieldProducers),
	}
}

// Encode renders the state as storage values
func (c *Codec) Encode(s domain.GameState) (map[string]string, error) {
	saved := make([]savedProducer, len(s.Producers))
	for i, p := range s.Producers {
		saved[i] = savedProducer{ID: p.ID, Owned: p.Owned, Cost: float64(p.CurrentCost)}
	}
	producers, err := json.Marshal(saved)
	if err != nil {
		return nil, fmt.Errorf("failed to encode producers: %w", err)
	}

	return map[string]string{
		c.Key(FieldCookies):      formatFloat(s.Currency),
		c.Key(FieldTotalCookies): formatFloat(s.TotalProduced),
		c.Key(FieldClickPower):   formatFloat(s.ClickYield),
		c.Key(FieldTotalClicks):  strconv.FormatInt(s.TotalClicks, 10),
		c.Key(FieldProducers):    string(producers),
	}, nil
}

// Decode builds a state from storage values. It starts from catalog
// defaults and overwrites each field independently: a missing field keeps
// its default silently, a malformed one keeps its default and is reported.
// Saved producers are matched by id; unknown ids are dropped and catalog
// order is kept.
func (c *Codec) Decode(values map[string]string) (domain.GameState, []FieldError) {
	state := domain.NewGameState(c.catalog)
	var errs []FieldError

	if raw, ok := values[c.Key(FieldCookies)]; ok {
		if v, err := parseAmount(raw); err != nil {
			errs = append(errs, FieldError{Field: FieldCookies, Err: err})
		} else {
			state.Currency = v
		}
	}

	if raw, ok := values[c.Key(FieldTotalCookies)]; ok {
		if v, err := parseAmount(raw); err != nil {
			errs = append(errs, FieldError{Field: FieldTotalCookies, Err: err})
		} else {
			state.TotalProduced = v
		}
	}

	if raw, ok := values[c.Key(FieldClickPower)]; ok {
		v, err := parseAmount(raw)
		if err == nil && v < domain.DefaultClickYield {
			err = errBelowOne
		}
		if err != nil {
			errs = append(errs, FieldError{Field: FieldClickPower, Err: err})
		} else {
			state.ClickYield = v
		}
	}

	if raw, ok := values[c.Key(FieldTotalClicks)]; ok {
		if v, err := parseCount(raw); err != nil {
			errs = append(errs, FieldError{Field: FieldTotalClicks, Err: err})
		} else {
			state.TotalClicks = v
		}
	}

	if raw, ok := values[c.Key(FieldProducers)]; ok {
		saved, err := parseProducers(raw)
		if err != nil {
			errs = append(errs, FieldError{Field: FieldProducers, Err: err})
		}
		errs = append(errs, applyProducers(&state, saved)...)
	}

	return state, errs
}

func applyProducers(state *domain.GameState, saved []savedProducer) []FieldError {
	var errs []FieldError
	for _, sp := range saved {
		idx := state.FindProducer(sp.ID)
		if idx < 0 {
			continue
		}
		p := &state.Producers[idx]
		field := FieldProducers + "." + sp.ID

		if sp.Owned < 0 {
			errs = append(errs, FieldError{Field: field, Err: errNegative})
			continue
		}
		p.Owned = sp.Owned

		// a missing or bogus cost falls back to the base price
		if cost := math.Floor(sp.Cost); cost >= float64(p.BaseCost) && cost < math.MaxInt64 {
			p.CurrentCost = int64(cost)
		}
	}
	return errs
}

// unquote accepts both a bare value and a JSON-encoded string
func unquote(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			return strings.TrimSpace(s)
		}
	}
	return raw
}

func parseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(unquote(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	if v < 0 {
		return 0, errNegative
	}
	return v, nil
}

func parseCount(raw string) (int64, error) {
	s := unquote(raw)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v < 0 {
			return 0, errNegative
		}
		return v, nil
	}
	f, err := parseAmount(s)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0, errNotInteger
	}
	return int64(f), nil
}

// parseProducers accepts a raw JSON array or a JSON string holding one
func parseProducers(raw string) ([]savedProducer, error) {
	raw = strings.TrimSpace(raw)
	var saved []savedProducer
	if err := json.Unmarshal([]byte(raw), &saved); err == nil {
		return saved, nil
	}

	var inner string
	if err := json.Unmarshal([]byte(raw), &inner); err != nil {
		return nil, fmt.Errorf("producers are not a JSON array: %w", err)
	}
	if err := json.Unmarshal([]byte(inner), &saved); err != nil {
		return nil, fmt.Errorf("producers are not a JSON array: %w", err)
	}
	return saved, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
