package errorx

import (
	"errors"
	"fmt"
)

type Error struct {
	Code    Code
	Message string
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}

// Message returns the user readable message carried by err. Errors which are
// not built by this package are hidden behind the fallback message.
func Message(err error, fallback string) string {
	errx := Error{}
	if errors.As(err, &errx) && errx.Message != "" {
		return errx.Message
	}

	return fallback
}

func Is(err error, code Code) bool {
	errx := Error{}
	return errors.As(err, &errx) && errx.Code == code
}
