package errcollection

import (
	"strings"

	"github.com/pkg/errors"
)

const delimiter = "; "

// ErrorCollection gives ability to return multiple errors instead of one.
// It gathers errors and return error with message combined with messages
// from all given errors delimited by defined string.
type ErrorCollection struct {
	errorList []error
}

// Add inserts new error to collection. Nil errors are ignored.
func (e *ErrorCollection) Add(err error) {
	if err == nil {
		return
	}
	e.errorList = append(e.errorList, err)
}

// Len returns number of gathered errors.
func (e *ErrorCollection) Len() int {
	return len(e.errorList)
}

// GetErrIfAny returns error with combined message from all given errors.
// In case of no error it returns nil.
func (e *ErrorCollection) GetErrIfAny() error {
	if len(e.errorList) == 0 {
		// No error passed so nothing to report.
		return nil
	}

	messages := make([]string, 0, len(e.errorList))
	for _, err := range e.errorList {
		messages = append(messages, err.Error())
	}
	return errors.New(strings.Join(messages, delimiter))
}
