package models

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})
	})
	return validate
}

// ValidationError lists every field of a record that is out of its allowed range.
type ValidationError struct {
	ID     string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("data center %q is invalid: %s", e.ID, strings.Join(e.Fields, "; "))
}

// Validate checks the ranges a record must respect before the store admits it:
// capacity.used and realTimeData.uptime within [0,100], a known tier and status,
// finite numbers, non-negative quantities, and a power rating expressed in a
// power unit.
func (dc DataCenter) Validate() error {
	var fields []string

	err := recordValidator().Struct(dc)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %s=%s (got %v)", fieldPath(fe), fe.Tag(), fe.Param(), fe.Value()))
		}
	} else if err != nil {
		return err
	}

	if _, err := dc.Specifications.Power.Megawatts(); err != nil {
		fields = append(fields, "specifications.power: "+err.Error())
	}

	if len(fields) > 0 {
		return &ValidationError{ID: dc.ID, Fields: fields}
	}
	return nil
}

// fieldPath renders "DataCenter.capacity.used" as "capacity.used".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
