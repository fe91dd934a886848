// Package validation declares the request schemas for every endpoint.
// A request is checked here before any repository call; failures render
// as 400 and never mutate state.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/store"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// objectid: a 24-character hex store identifier
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		_, err := primitive.ObjectIDFromHex(fl.Field().String())
		return err == nil
	})

	// report fields under their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Errors lists the fields that failed and why.
type Errors []string

func (e Errors) Error() string { return strings.Join(e, ", ") }

// Struct runs the schema tags of v and converts the results into Errors.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := make(Errors, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, fieldMessage(fe))
		}
		return out
	}
	return err
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "objectid":
		return fmt.Sprintf("%q must be a valid id", fe.Field())
	case "oneof":
		return fmt.Sprintf("%q must be one of: %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%q must be at least %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%q must not be empty", fe.Field())
	case "url":
		return fmt.Sprintf("%q must be a valid url", fe.Field())
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}

// DecodeBody decodes a JSON request body, rejecting unknown fields.
func DecodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return Errors{"invalid request payload"}
	}
	return nil
}

// ParseObjectID checks a path parameter against the store id format.
func ParseObjectID(raw, field string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, Errors{fmt.Sprintf("%q must be a valid id", field)}
	}
	return id, nil
}

// ParseOptionalObjectID validates a query-string filter value when present.
func ParseOptionalObjectID(raw, field string) (primitive.ObjectID, bool, error) {
	if raw == "" {
		return primitive.NilObjectID, false, nil
	}
	id, err := ParseObjectID(raw, field)
	if err != nil {
		return primitive.NilObjectID, false, err
	}
	return id, true, nil
}

// ParseListOptions reads sortBy/limit/page from the query string. Values
// must be integers; clamping to the defaults happens in the repository.
func ParseListOptions(q url.Values) (store.FindOptions, error) {
	opts := store.FindOptions{SortBy: q.Get("sortBy")}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return opts, Errors{`"limit" must be an integer`}
		}
		opts.Limit = n
	}
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return opts, Errors{`"page" must be an integer`}
		}
		opts.Page = n
	}
	return opts, nil
}
