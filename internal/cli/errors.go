package cli

import (
	"errors"
	"fmt"
)

const helpHint = "Call the -help command to get help."

// Sentinel errors for adapter failures. The messages users see come from
// usageError; these allow errors.Is checks.
var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrUnknownParameter   = errors.New("unknown parameter")
	ErrParameterFormat    = errors.New("incorrect parameter format")
	ErrMissingParameter   = errors.New("missing parameter")
	ErrDuplicateParameter = errors.New("duplicate parameter")
	ErrParameterCount     = errors.New("invalid number of parameters")
	ErrNothingToChange    = errors.New("no parameters to change")
)

// usageError pairs a sentinel with the message shown to the user.
type usageError struct {
	kind error
	msg  string
}

func (e *usageError) Error() string { return e.msg }

func (e *usageError) Unwrap() error { return e.kind }

func unknownCommand(name string) error {
	return &usageError{ErrUnknownCommand, fmt.Sprintf("Unknown command: %s. %s", name, helpHint)}
}

func unknownParameter(token string) error {
	return &usageError{ErrUnknownParameter, fmt.Sprintf("Unknown parameter: %s. %s", token, helpHint)}
}

func parameterFormat(name string) error {
	return &usageError{ErrParameterFormat, fmt.Sprintf("The %q parameter has an incorrect format. %s", name, helpHint)}
}

func missingParameter(name string) error {
	return &usageError{ErrMissingParameter, fmt.Sprintf("The required parameter was missed: %s.", name)}
}

func duplicateParameter(name string) error {
	return &usageError{ErrDuplicateParameter, fmt.Sprintf("The %q parameter is specified more than once.", name)}
}

func parameterCount() error {
	return &usageError{ErrParameterCount, "Invalid number of parameters."}
}

func nothingToChange() error {
	return &usageError{ErrNothingToChange, "Specify the parameters to change."}
}
