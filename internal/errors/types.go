package errors

import (
	"fmt"
	"sort"
)

// LoggenError is implemented by every error the generator reports with a code
type LoggenError interface {
	error
	ErrorCode() ErrorCode
	Suggestions() []string
	Unwrap() error
}

// ErrorCode classifies a failure
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota

	// resolving and inspecting the input type
	TypeNotFoundErrorCode
	UnsupportedTypeErrorCode

	// producing the output
	RenderErrorCode
	IOErrorCode

	ConfigurationErrorCode
)

func (e ErrorCode) String() string {
	switch e {
	case TypeNotFoundErrorCode:
		return "TypeNotFoundError"
	case UnsupportedTypeErrorCode:
		return "UnsupportedTypeError"
	case RenderErrorCode:
		return "RenderError"
	case IOErrorCode:
		return "IOError"
	case ConfigurationErrorCode:
		return "ConfigurationError"
	default:
		return "UnknownError"
	}
}

// Sentinels for errors.Is. Any BaseError with the same code matches.
var (
	ErrTypeNotFound    = New(TypeNotFoundErrorCode, "type not found")
	ErrUnsupportedType = New(UnsupportedTypeErrorCode, "unsupported type")
	ErrRender          = New(RenderErrorCode, "render failed")
	ErrIO              = New(IOErrorCode, "i/o failed")
	ErrConfiguration   = New(ConfigurationErrorCode, "invalid configuration")
)

// SourceLocation is a position in an input file. Line and Column are 1-based;
// zero means unknown.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

func (s SourceLocation) String() string {
	switch {
	case s.File == "":
		return "unknown location"
	case s.Line == 0:
		return s.File
	case s.Column == 0:
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// IsEmpty reports whether no file is known
func (s SourceLocation) IsEmpty() bool {
	return s.File == ""
}

// BaseError is the concrete LoggenError. Builders mutate and return the
// receiver so constructors can chain them.
type BaseError struct {
	Code        ErrorCode
	Message     string
	Loc         SourceLocation
	Cause       error
	ContextData map[string]interface{}
	Hints       []string
}

// Error renders "<location>: <message>: <cause>", omitting missing parts
func (e *BaseError) Error() string {
	msg := e.Message
	if !e.Loc.IsEmpty() {
		msg = e.Loc.String() + ": " + msg
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *BaseError) ErrorCode() ErrorCode  { return e.Code }
func (e *BaseError) Suggestions() []string { return e.Hints }
func (e *BaseError) Unwrap() error         { return e.Cause }

// Is matches another BaseError by code only
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	return ok && t.Code == e.Code
}

// WithLocation sets the input position the error refers to
func (e *BaseError) WithLocation(loc SourceLocation) *BaseError {
	e.Loc = loc
	return e
}

// WithContext records a key shown by the verbose error report
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	if e.ContextData == nil {
		e.ContextData = make(map[string]interface{})
	}
	e.ContextData[key] = value
	return e
}

// WithSuggestion appends a hint
func (e *BaseError) WithSuggestion(suggestion string) *BaseError {
	e.Hints = append(e.Hints, suggestion)
	return e
}

// ContextKeys lists the context keys sorted
func (e *BaseError) ContextKeys() []string {
	keys := make([]string, 0, len(e.ContextData))
	for k := range e.ContextData {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func New(code ErrorCode, message string) *BaseError {
	return &BaseError{Code: code, Message: message}
}

func Newf(code ErrorCode, format string, args ...interface{}) *BaseError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates an error with code and message around cause, which may be nil
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return &BaseError{Code: code, Message: message, Cause: cause}
}
