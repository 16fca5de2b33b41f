package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attaches err to one attribute of the validated value, for example
// MintA of an open message or Record.Vault for a nested attribute. The
// description is formatted with args. A nil err gives nil, so validation
// results can be passed in unchecked.
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{name: name, desc: description, parent: err}
}

// AppendField adds the error of one field to errs. Both may be nil.
func AppendField(errs error, name string, err error) error {
	return Append(errs, Field(name, err, ""))
}

type fieldError struct {
	name   string
	desc   string
	parent error
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("field %q: %s", e.name, e.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", e.name, e.desc, e.parent)
}

func (e *fieldError) Cause() error { return e.parent }

func (e *fieldError) Field() string { return e.name }

type fielder interface {
	Field() string
}

// FieldErrors collects the errors attached to the named field anywhere in
// err, looking through wrapping and multi errors. The search stops at the
// first match on each branch, so an outer error for the field hides the
// inner ones.
func FieldErrors(err error, name string) []error {
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == name {
			return []error{err}
		}
		if multi, ok := err.(unpacker); ok {
			var found []error
			for _, e := range multi.Unpack() {
				found = append(found, FieldErrors(e, name)...)
			}
			return found
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return nil
}
