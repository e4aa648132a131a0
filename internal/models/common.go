// server/internal/models/common.go
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Quantity is a numeric measurement with an explicit unit, e.g. {20, "MW"}.
type Quantity struct {
	Value float64 `bson:"value" json:"value" yaml:"value" validate:"finite,gte=0"`
	Unit  string  `bson:"unit" json:"unit" yaml:"unit"`
}

// Coordinates is the map position of a facility.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat" yaml:"lat" validate:"finite,gte=-90,lte=90"`
	Lng float64 `bson:"lng" json:"lng" yaml:"lng" validate:"finite,gte=-180,lte=180"`
}

func (q Quantity) String() string {
	v := strconv.FormatFloat(q.Value, 'f', -1, 64)
	if q.Unit == "" {
		return v
	}
	return v + " " + q.Unit
}

// ParseQuantity turns form text such as "20 MW", "1,500 kW" or "100,000 sq ft"
// into a Quantity. The number must lead; everything after it is the unit.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}, fmt.Errorf("empty quantity")
	}

	end := 0
	for end < len(s) {
		ch := s[end]
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == ',' || (end == 0 && (ch == '-' || ch == '+')) {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return Quantity{}, fmt.Errorf("quantity %q does not start with a number", s)
	}

	num := strings.ReplaceAll(s[:end], ",", "")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("quantity %q: %w", s, err)
	}
	return Quantity{Value: v, Unit: strings.TrimSpace(s[end:])}, nil
}

// Megawatts normalises a power quantity to MW. An empty unit is read as MW,
// which is how the directory has always expressed facility power.
func (q Quantity) Megawatts() (float64, error) {
	switch strings.ToLower(strings.TrimSpace(q.Unit)) {
	case "mw", "":
		return q.Value, nil
	case "kw":
		return q.Value / 1000, nil
	case "gw":
		return q.Value * 1000, nil
	case "w":
		return q.Value / 1_000_000, nil
	default:
		return 0, fmt.Errorf("unit %q is not a power unit", q.Unit)
	}
}
