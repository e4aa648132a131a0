// Package mutate edits one leaf of a data center record at a time.
//
// Code that knows which field it is changing calls the typed setters
// (SetCapacityUsed, SetPower, ...). The admin form, which only has a field
// path and a raw value, goes through Apply: the path is resolved against the
// fixed field table and the value is coerced to the leaf's type before the
// matching typed setter runs. Neither path ever modifies the record passed in.
package mutate

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"dc-directory-api-server/internal/models"

	"github.com/spf13/cast"
)

// Kind is the value type a form control must produce for a field.
type Kind string

const (
	KindText      Kind = "text"
	KindNumber    Kind = "number"
	KindInteger   Kind = "integer"
	KindBoolean   Kind = "boolean"
	KindList      Kind = "list"
	KindQuantity  Kind = "quantity"
	KindTier      Kind = "tier"
	KindStatus    Kind = "status"
	KindTimestamp Kind = "timestamp"
)

// Field describes one editable leaf.
type Field struct {
	Path string `json:"path"`
	Kind Kind   `json:"kind"`

	get func(models.DataCenter) any
	set func(models.DataCenter, any) (models.DataCenter, error)
}

// PathError reports a path that does not name an editable leaf. Segment is the
// first segment that could not be resolved.
type PathError struct {
	Path    string
	Segment string
	Reason  string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid field path %q: segment %q %s", e.Path, e.Segment, e.Reason)
}

// ValueError reports a value that cannot be converted to the field's kind.
type ValueError struct {
	Path  string
	Kind  Kind
	Value any
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("field %q expects %s, got %v: %v", e.Path, e.Kind, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

// Change is one form edit.
type Change struct {
	Path  string `json:"path" binding:"required"`
	Value any    `json:"value"`
}

func leaf[T any](path string, kind Kind, get func(models.DataCenter) T, set func(models.DataCenter, T) models.DataCenter, conv func(raw any, current T) (T, error)) Field {
	return Field{
		Path: path,
		Kind: kind,
		get:  func(dc models.DataCenter) any { return get(dc) },
		set: func(dc models.DataCenter, raw any) (models.DataCenter, error) {
			v, err := conv(raw, get(dc))
			if err != nil {
				return dc, &ValueError{Path: path, Kind: kind, Value: raw, Err: err}
			}
			return set(dc, v), nil
		},
	}
}

func text(path string, get func(models.DataCenter) string, set func(models.DataCenter, string) models.DataCenter) Field {
	return leaf(path, KindText, get, set, func(raw any, _ string) (string, error) {
		if raw == nil {
			return "", errors.New("value is required")
		}
		return cast.ToStringE(raw)
	})
}

func number(path string, get func(models.DataCenter) float64, set func(models.DataCenter, float64) models.DataCenter) Field {
	return leaf(path, KindNumber, get, set, func(raw any, _ float64) (float64, error) {
		return toFloat(raw)
	})
}

func integer(path string, get func(models.DataCenter) int, set func(models.DataCenter, int) models.DataCenter) Field {
	return leaf(path, KindInteger, get, set, func(raw any, _ int) (int, error) {
		f, err := toFloat(raw)
		if err != nil {
			return 0, err
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%v is not a whole number", f)
		}
		if f < math.MinInt || f >= math.MaxInt {
			return 0, fmt.Errorf("%v is out of range", f)
		}
		return int(f), nil
	})
}

func boolean(path string, get func(models.DataCenter) bool, set func(models.DataCenter, bool) models.DataCenter) Field {
	return leaf(path, KindBoolean, get, set, func(raw any, _ bool) (bool, error) {
		if raw == nil {
			return false, errors.New("value is required")
		}
		return cast.ToBoolE(raw)
	})
}

func list(path string, get func(models.DataCenter) []string, set func(models.DataCenter, []string) models.DataCenter) Field {
	return leaf(path, KindList, get, set, func(raw any, _ []string) ([]string, error) {
		switch v := raw.(type) {
		case nil:
			return []string{}, nil
		case string:
			return splitList(v), nil
		default:
			return cast.ToStringSliceE(v)
		}
	})
}

func quantity(path string, get func(models.DataCenter) models.Quantity, set func(models.DataCenter, models.Quantity) models.DataCenter) Field {
	return leaf(path, KindQuantity, get, set, toQuantity)
}

func tier(path string, get func(models.DataCenter) models.Tier, set func(models.DataCenter, models.Tier) models.DataCenter) Field {
	return leaf(path, KindTier, get, set, func(raw any, _ models.Tier) (models.Tier, error) {
		s, err := cast.ToStringE(raw)
		if err != nil {
			return "", err
		}
		t := models.Tier(s)
		if !slices.Contains(models.Tiers, t) {
			return "", fmt.Errorf("unknown tier %q", s)
		}
		return t, nil
	})
}

func status(path string, get func(models.DataCenter) models.CapacityStatus, set func(models.DataCenter, models.CapacityStatus) models.DataCenter) Field {
	return leaf(path, KindStatus, get, set, func(raw any, _ models.CapacityStatus) (models.CapacityStatus, error) {
		s, err := cast.ToStringE(raw)
		if err != nil {
			return "", err
		}
		switch st := models.CapacityStatus(s); st {
		case models.StatusAvailable, models.StatusLimited, models.StatusFull:
			return st, nil
		default:
			return "", fmt.Errorf("unknown capacity status %q", s)
		}
	})
}

func timestamp(path string, get func(models.DataCenter) time.Time, set func(models.DataCenter, time.Time) models.DataCenter) Field {
	return leaf(path, KindTimestamp, get, set, func(raw any, _ time.Time) (time.Time, error) {
		if raw == nil {
			return time.Time{}, errors.New("value is required")
		}
		t, err := cast.ToTimeE(raw)
		if err != nil {
			return time.Time{}, err
		}
		return t.UTC(), nil
	})
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, errors.New("value is required")
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, errors.New("value is required")
		}
		raw = v
	case bool:
		return 0, errors.New("booleans are not numbers")
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("value is not finite")
	}
	return f, nil
}

// toQuantity accepts "20 MW", {"value": 20, "unit": "MW"}, a Quantity, or a
// bare number which keeps the field's current unit.
func toQuantity(raw any, current models.Quantity) (models.Quantity, error) {
	switch v := raw.(type) {
	case models.Quantity:
		return v, nil
	case string:
		return models.ParseQuantity(v)
	case map[string]any:
		val, err := toFloat(v["value"])
		if err != nil {
			return models.Quantity{}, fmt.Errorf("value: %w", err)
		}
		unit := current.Unit
		if u, ok := v["unit"]; ok {
			if unit, err = cast.ToStringE(u); err != nil {
				return models.Quantity{}, fmt.Errorf("unit: %w", err)
			}
		}
		return models.Quantity{Value: val, Unit: unit}, nil
	default:
		val, err := toFloat(raw)
		if err != nil {
			return models.Quantity{}, err
		}
		return models.Quantity{Value: val, Unit: current.Unit}, nil
	}
}

// splitList reads the comma separated text of a list input.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
