package exceptions

import (
	"strings"

	"github.com/sagernet/sing-dlist/common"
)

type MultiError interface {
	error
	Unwrap() []error
}

type multiError struct {
	errors []error
}

func (e *multiError) Error() string {
	return "multi error: (" + strings.Join(common.Map(e.errors, error.Error), " | ") + ")"
}

func (e *multiError) Unwrap() []error {
	return e.errors
}

// Errors drops nil entries and returns nil, the only error, or a MultiError.
func Errors(errors ...error) error {
	errors = common.FilterNotNil(errors)
	switch len(errors) {
	case 0:
		return nil
	case 1:
		return errors[0]
	}
	return &multiError{errors: errors}
}
