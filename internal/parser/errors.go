package parser

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by Parse for structurally empty input. All other
// failures are line-local and reported through ParseResult.Errors.
var ErrEmptyInput = errors.New("empty input")

// ErrorCode identifies the kind of a line-local parse failure.
type ErrorCode string

const (
	CodeMissingAssignment   ErrorCode = "MISSING_ASSIGNMENT"
	CodeEmptyTokenRegion    ErrorCode = "EMPTY_TOKEN_REGION"
	CodeEmptyValueRegion    ErrorCode = "EMPTY_VALUE_REGION"
	CodeInvalidValue        ErrorCode = "INVALID_VALUE"
	CodeNoValidNumbers      ErrorCode = "NO_VALID_NUMBERS"
	CodeInvalidNumberLength ErrorCode = "INVALID_NUMBER_LENGTH"
	CodeInvalidNumberRange  ErrorCode = "INVALID_NUMBER_RANGE"
	CodeInvalidColumnRange  ErrorCode = "INVALID_COLUMN_RANGE"
	CodeUnknownTable        ErrorCode = "UNKNOWN_TABLE"
	CodeUnknownFamily       ErrorCode = "UNKNOWN_FAMILY"
)

// LineError is a parse failure scoped to one logical line. Sibling lines in
// the same batch are unaffected.
type LineError struct {
	Line    int
	Code    ErrorCode
	Message string
	Input   string
}

func (e *LineError) Error() string {
	snippet := e.Input
	if len(snippet) > 50 {
		snippet = snippet[:50]
	}
	return fmt.Sprintf("line %d error: %s [input: %s]", e.Line, e.Message, snippet)
}

func newLineError(line int, code ErrorCode, input, format string, args ...any) *LineError {
	return &LineError{
		Line:    line,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Input:   input,
	}
}

// codedError is an extraction failure before it is bound to a line number.
type codedError struct {
	code ErrorCode
	msg  string
}

func (e *codedError) Error() string { return e.msg }

func codeErrorf(code ErrorCode, format string, args ...any) *codedError {
	return &codedError{code: code, msg: fmt.Sprintf(format, args...)}
}
