// Package validation checks request input and reports every problem as a
// machine readable code instead of stopping at the first one.
package validation

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/GHutch55/exlog/api/v1/models"
	"github.com/go-playground/validator/v10"
)

type Code string

const (
	MissingUsername      Code = "missing_username"
	MissingDescription   Code = "missing_description"
	MissingDuration      Code = "missing_duration"
	DurationMustBeNumber Code = "duration_must_be_number"
	InvalidDate          Code = "invalid_date"
	InvalidDateFrom      Code = "invalid_date_from"
	InvalidDateTo        Code = "invalid_date_to"
	InvalidNumberLimit   Code = "invalid_number_limit"
)

// Errors is an ordered, duplicate free list of codes.
type Errors []Code

func (e *Errors) Add(code Code) {
	for _, c := range *e {
		if c == code {
			return
		}
	}
	*e = append(*e, code)
}

func (e Errors) Strings() []string {
	out := make([]string, len(e))
	for i, c := range e {
		out[i] = string(c)
	}
	return out
}

// datePattern checks shape only; calendar correctness is left to the store.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(fieldValue, models.Field{})
	if err := v.RegisterValidation("datestr", isDateString); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("number", isNumber); err != nil {
		panic(err)
	}
	return v
}

// fieldValue makes an absent Field look nil to the validator, so "required"
// fails and "omitempty" skips.
func fieldValue(v reflect.Value) interface{} {
	f, ok := v.Interface().(models.Field)
	if !ok || !f.Set {
		return nil
	}
	return f.Value
}

func isDateString(fl validator.FieldLevel) bool {
	return datePattern.MatchString(fl.Field().String())
}

func isNumber(fl validator.FieldLevel) bool {
	_, ok := parseWhole(fl.Field().String())
	return ok
}

// parseWhole accepts numeric looking text (" 30 ", "30.0", "1e3") that
// denotes a non-negative integer. Plain integers are parsed exactly; the
// float path only serves the decimal and exponent forms.
func parseWhole(s string) (int64, bool) {
	s = strings.TrimSpace(s)

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, n >= 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// check runs the struct validator and translates each failing
// field/tag pair through codes.
func check(in any, codes map[string]Code) Errors {
	errs := Errors{}

	err := validate.Struct(in)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// only reachable when in is not a struct
		panic(err)
	}

	for _, fe := range fieldErrs {
		if code, ok := codes[fe.StructField()+"."+fe.Tag()]; ok {
			errs.Add(code)
		}
	}
	return errs
}

func User(in models.UserInput) Errors {
	return check(in, map[string]Code{
		"Username.required": MissingUsername,
	})
}

// Exercise validates the body of an exercise entry and, when it is valid,
// returns the entry ready for insertion.
func Exercise(userID string, in models.ExerciseInput) (models.NewExercise, Errors) {
	errs := check(in, map[string]Code{
		"Description.required": MissingDescription,
		"Duration.required":    MissingDuration,
		"Duration.number":      DurationMustBeNumber,
		"Date.datestr":         InvalidDate,
	})
	if len(errs) > 0 {
		return models.NewExercise{}, errs
	}

	duration, _ := parseWhole(in.Duration.Value)
	entry := models.NewExercise{
		UserID:      userID,
		Description: in.Description.Value,
		Duration:    duration,
	}
	if in.Date.Set && in.Date.Value != "" {
		date := in.Date.Value
		entry.Date = &date
	}
	return entry, errs
}

func LogQuery(in models.LogQuery) (models.LogFilter, Errors) {
	errs := check(in, map[string]Code{
		"From.datestr": InvalidDateFrom,
		"To.datestr":   InvalidDateTo,
		"Limit.number": InvalidNumberLimit,
	})
	if len(errs) > 0 {
		return models.LogFilter{}, errs
	}

	filter := models.LogFilter{
		From: in.From.Value,
		To:   in.To.Value,
	}
	if in.Limit.Set && in.Limit.Value != "" {
		limit, _ := parseWhole(in.Limit.Value)
		filter.Limit = &limit
	}
	return filter, errs
}
