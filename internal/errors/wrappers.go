package errors

import "fmt"

// Constructors for the error kinds the generation pipeline can surface.

// TypeNotFound reports that a qualified type name could not be resolved
func TypeNotFound(qualifiedName string, cause error) *BaseError {
	return Wrap(TypeNotFoundErrorCode, fmt.Sprintf("type '%s' not found", qualifiedName), cause).
		WithContext("type", qualifiedName).
		WithSuggestion("use the form <import path>.<TypeName>, e.g. io.ReadCloser")
}

// UnsupportedType reports a resolved type the generator cannot wrap
func UnsupportedType(qualifiedName, reason string) *BaseError {
	return Newf(UnsupportedTypeErrorCode, "type '%s' is not supported: %s", qualifiedName, reason).
		WithContext("type", qualifiedName)
}

// Render wraps template loading and execution failures
func Render(templateName, operation string, cause error) *BaseError {
	return Wrap(RenderErrorCode, fmt.Sprintf("failed to %s template '%s'", operation, templateName), cause).
		WithContext("template", templateName).
		WithContext("operation", operation)
}

// IO wraps failures writing or flushing the output sink
func IO(operation, path string, cause error) *BaseError {
	return Wrap(IOErrorCode, fmt.Sprintf("failed to %s '%s'", operation, path), cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// Configuration reports an invalid option value
func Configuration(option, message string) *BaseError {
	return Newf(ConfigurationErrorCode, "invalid %s: %s", option, message).
		WithContext("option", option)
}

// Directive reports a malformed //loggen:: comment at loc
func Directive(loc SourceLocation, cause error) *BaseError {
	return Wrap(ConfigurationErrorCode, "invalid directive", cause).
		WithLocation(loc).
		WithSuggestion("supported directives are //loggen::final and //loggen::skip")
}
