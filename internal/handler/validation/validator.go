package validation

import (
	"reflect"
	"strconv"
	"time"

	"order-time-checker/internal/domain/ordertime"

	"github.com/go-playground/validator/v10"
)

// Custom tags registered on top of the validator built-ins.
const (
	TagHHMM           = "hhmm"
	TagDateTime       = "hhmm_datetime"
	TagHHMMOrDateTime = "hhmm_or_datetime"
	TagDurationRange  = "duration_range"
	TagInteger        = "integer"
	TagIntMin         = "int_min"
	TagIntMax         = "int_max"
	TagTimeAfter      = "time_after"
	TagIntGTEField    = "int_gte_field"

	// TagRequiredWith makes Field required once DependsOn is present. It is
	// resolved against the field map, not registered on the validator.
	TagRequiredWith = "required_with_field"
)

// Rule is one row of a constraint table. Tag is a validator tag. When DependsOn
// is set, the tag is evaluated against that field's value as well.
type Rule struct {
	Field     string
	Tag       string
	DependsOn string
	Message   string
}

type Table []Rule

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	must(v.RegisterValidation(TagHHMM, isHHMM))
	must(v.RegisterValidation(TagDateTime, isDateTime))
	must(v.RegisterValidation(TagHHMMOrDateTime, func(fl validator.FieldLevel) bool {
		return isHHMM(fl) || isDateTime(fl)
	}))
	must(v.RegisterValidation(TagDurationRange, isDurationRange))
	must(v.RegisterValidation(TagInteger, isInteger))
	must(v.RegisterValidation(TagIntMin, isIntMin))
	must(v.RegisterValidation(TagIntMax, isIntMax))
	must(v.RegisterValidation(TagTimeAfter, isTimeAfter))
	must(v.RegisterValidation(TagIntGTEField, isIntGTEField))
	return &Validator{v: v}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate runs table over fields and returns the failure messages in table order.
// An absent key means the field is missing. A field stops at its first failing
// rule, and only "required" and TagRequiredWith rules look at a missing field.
// Cross-field rules are skipped while the referenced field is missing or already failed.
func (v *Validator) Validate(table Table, fields map[string]string) []string {
	var messages []string
	failed := make(map[string]bool)

	for _, rule := range table {
		if failed[rule.Field] {
			continue
		}
		value, present := fields[rule.Field]
		checksMissing := rule.Tag == "required" || rule.Tag == TagRequiredWith
		if !checksMissing && (!present || value == "") {
			continue
		}

		var err error
		switch {
		case rule.Tag == TagRequiredWith:
			if other, ok := fields[rule.DependsOn]; !ok || other == "" {
				continue
			}
			err = v.v.Var(value, "required")
		case rule.DependsOn != "":
			other, ok := fields[rule.DependsOn]
			if !ok || other == "" || failed[rule.DependsOn] {
				continue
			}
			err = v.v.VarWithValue(value, other, rule.Tag)
		default:
			err = v.v.Var(value, rule.Tag)
		}

		if err != nil {
			failed[rule.Field] = true
			messages = append(messages, rule.Message)
		}
	}
	return messages
}

func isHHMM(fl validator.FieldLevel) bool {
	_, err := ordertime.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func isDateTime(fl validator.FieldLevel) bool {
	_, err := ordertime.ParseDateTime(fl.Field().String(), time.UTC)
	return err == nil
}

func isDurationRange(fl validator.FieldLevel) bool {
	_, err := ordertime.ParseServiceDuration(fl.Field().String())
	return err == nil
}

func isInteger(fl validator.FieldLevel) bool {
	_, err := strconv.Atoi(fl.Field().String())
	return err == nil
}

func isIntMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return n >= limit
}

func isIntMax(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return n <= limit
}

// other returns the value passed to VarWithValue.
func other(fl validator.FieldLevel) (string, bool) {
	field, kind, ok := fl.GetStructFieldOK()
	if !ok || kind != reflect.String {
		return "", false
	}
	return field.String(), true
}

func isTimeAfter(fl validator.FieldLevel) bool {
	otherText, ok := other(fl)
	if !ok {
		return false
	}
	start, err := ordertime.ParseTimeOfDay(otherText)
	if err != nil {
		return false
	}
	end, err := ordertime.ParseTimeOfDay(fl.Field().String())
	if err != nil {
		return false
	}
	return end.After(start)
}

func isIntGTEField(fl validator.FieldLevel) bool {
	otherText, ok := other(fl)
	if !ok {
		return false
	}
	low, err := strconv.Atoi(otherText)
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	return n >= low
}
