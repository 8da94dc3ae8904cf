package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess          = 0 // Sheet written or check passed
	ExitValidationFailed = 1 // Input file failed validation
	ExitError            = 2 // Configuration or runtime error
)

// ValidationFailedError indicates that the command ran, but the input it
// checked did not pass validation.
type ValidationFailedError struct {
	Message string
}

func (e *ValidationFailedError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var validationErr *ValidationFailedError
		if errors.As(err, &validationErr) {
			os.Exit(ExitValidationFailed)
		}

		os.Exit(ExitError)
	}
}
