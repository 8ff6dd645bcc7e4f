package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/cricket-roster-service/internal/model"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// formValidator reports json names in field errors and knows the "role" tag.
func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		v, err := newFormValidator()
		if err != nil {
			panic(fmt.Sprintf("service: build form validator: %v", err))
		}
		validate = v
	})
	return validate
}

func newFormValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("role", validRole); err != nil {
		return nil, fmt.Errorf("register role tag: %w", err)
	}
	return v, nil
}

func validRole(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, ok := model.ParseRole(s)
	return ok
}

// validateStruct runs the tag rules and converts failures into FieldErrors.
func validateStruct(in any) error {
	err := formValidator().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ferrs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		ferrs = append(ferrs, FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
	}
	return NewInvalidInputError(ferrs)
}

// fieldPath drops the top-level struct name: "CreatePlayerInput.stats.runs" -> "stats.runs".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gte":
		return "must be >= " + fe.Param()
	case "max":
		return "length must be <= " + fe.Param()
	case "role":
		return "must be one of Batsman, Bowler, All-Rounder, Wicket-Keeper"
	default:
		return "is invalid"
	}
}
