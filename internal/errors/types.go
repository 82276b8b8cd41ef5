package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeParse      ErrorType = "parse"
	ErrorTypeDimension  ErrorType = "dimension"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeInternal   ErrorType = "internal"
)

// QuantError is a structured error type with context.
type QuantError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Expression  string
	FilePath    string
	Line        int
	Position    int
	Recoverable bool
}

// Error implements the error interface.
func (e *QuantError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.FilePath != "" {
		location := e.FilePath
		if e.Line > 0 {
			location += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, location)
	}

	if e.Expression != "" {
		expr := fmt.Sprintf("%q", e.Expression)
		if e.Position > 0 {
			expr += fmt.Sprintf(" at column %d", e.Position)
		}
		parts = append(parts, expr)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *QuantError) Unwrap() error {
	return e.Cause
}

// Is matches another QuantError with the same type and code.
func (e *QuantError) Is(target error) bool {
	var t *QuantError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *QuantError) WithContext(key string, value interface{}) *QuantError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithLocation records the catalog file and line an error came from.
func (e *QuantError) WithLocation(filePath string, line int) *QuantError {
	e.FilePath = filePath
	e.Line = line

	return e
}

// WithExpression records the expression text and 1-based column.
func (e *QuantError) WithExpression(expr string, column int) *QuantError {
	e.Expression = expr
	e.Position = column

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *QuantError {
	return &QuantError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewParseError creates an expression parse error.
func NewParseError(code, message string, cause error) *QuantError {
	return &QuantError{
		Type:        ErrorTypeParse,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewDimensionError creates an error for incompatible dimensions.
func NewDimensionError(code, message string) *QuantError {
	return &QuantError{
		Type:        ErrorTypeDimension,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *QuantError {
	return &QuantError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *QuantError {
	return &QuantError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var qe *QuantError
	if errors.As(err, &qe) {
		return qe.Recoverable
	}

	return false
}

// IsType reports whether err is a QuantError of the given type.
func IsType(err error, t ErrorType) bool {
	var qe *QuantError
	if errors.As(err, &qe) {
		return qe.Type == t
	}

	return false
}

// Common error codes.
const (
	ErrCodeUnknownUnit       = "ERR_UNKNOWN_UNIT"
	ErrCodeUnknownDimension  = "ERR_UNKNOWN_DIMENSION"
	ErrCodeDimensionMismatch = "ERR_DIMENSION_MISMATCH"
	ErrCodeUnhandled         = "ERR_UNHANDLED_DIMENSION"
	ErrCodeDuplicateUnit     = "ERR_DUPLICATE_UNIT"
	ErrCodeParse             = "ERR_PARSE"
	ErrCodeCatalogInvalid    = "ERR_CATALOG_INVALID"
	ErrCodeConfigInvalid     = "ERR_CONFIG_INVALID"
	ErrCodeFileNotFound      = "ERR_FILE_NOT_FOUND"
	ErrCodeInternalError     = "ERR_INTERNAL"
	ErrCodeValidationFailed  = "ERR_VALIDATION_FAILED"
)

// ValidationError interface for field-specific validation errors.
type ValidationError interface {
	error
	Field() string
	Value() interface{}
	Suggestions() []string
}

// FieldValidationError implements ValidationError for specific field errors.
type FieldValidationError struct {
	FieldName    string
	FieldValue   interface{}
	ErrorMessage string
	HelpText     []string
}

func (fve *FieldValidationError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", fve.FieldName, fve.ErrorMessage)
}

func (fve *FieldValidationError) Field() string {
	return fve.FieldName
}

func (fve *FieldValidationError) Value() interface{} {
	return fve.FieldValue
}

func (fve *FieldValidationError) Suggestions() []string {
	return fve.HelpText
}

// NewFieldValidationError creates a new field validation error.
func NewFieldValidationError(
	field string,
	value interface{},
	message string,
	suggestions ...string,
) *FieldValidationError {
	return &FieldValidationError{
		FieldName:    field,
		FieldValue:   value,
		ErrorMessage: message,
		HelpText:     suggestions,
	}
}

// ValidationErrorCollection represents a collection of validation errors.
type ValidationErrorCollection struct {
	Errors []ValidationError
}

func (vec *ValidationErrorCollection) Error() string {
	if len(vec.Errors) == 0 {
		return "no validation errors"
	}
	if len(vec.Errors) == 1 {
		return vec.Errors[0].Error()
	}

	return fmt.Sprintf("validation failed with %d errors", len(vec.Errors))
}

// Add adds a validation error to the collection.
func (vec *ValidationErrorCollection) Add(err ValidationError) {
	vec.Errors = append(vec.Errors, err)
}

// AddField adds a field validation error to the collection.
func (vec *ValidationErrorCollection) AddField(
	field string,
	value interface{},
	message string,
	suggestions ...string,
) {
	vec.Add(NewFieldValidationError(field, value, message, suggestions...))
}

// HasErrors returns true if there are any validation errors.
func (vec *ValidationErrorCollection) HasErrors() bool {
	return len(vec.Errors) > 0
}

// ToQuantError converts the collection to a single QuantError, or nil when
// it is empty.
func (vec *ValidationErrorCollection) ToQuantError() *QuantError {
	if !vec.HasErrors() {
		return nil
	}

	var messages []string
	context := make(map[string]interface{})

	for _, err := range vec.Errors {
		messages = append(messages, err.Error())
		context[err.Field()] = map[string]interface{}{
			"value":       err.Value(),
			"suggestions": err.Suggestions(),
		}
	}

	return &QuantError{
		Type:        ErrorTypeValidation,
		Code:        ErrCodeValidationFailed,
		Message:     strings.Join(messages, "; "),
		Context:     context,
		Recoverable: true,
	}
}

// ErrUnknownUnit reports a unit name or symbol that no registry entry matches.
func ErrUnknownUnit(name string) *QuantError {
	return NewValidationError(ErrCodeUnknownUnit, "unknown unit: "+name).
		WithContext("unit", name)
}

// ErrUnknownDimension reports a dimension name that does not exist.
func ErrUnknownDimension(name string) *QuantError {
	return NewValidationError(ErrCodeUnknownDimension, "unknown dimension: "+name).
		WithContext("dimension", name)
}

// ErrDimensionMismatch reports an operation whose operands do not agree.
func ErrDimensionMismatch(op, left, right string) *QuantError {
	return NewDimensionError(
		ErrCodeDimensionMismatch,
		fmt.Sprintf("cannot %s %s and %s", op, left, right),
	).WithContext("left", left).WithContext("right", right)
}

// ErrParse wraps a parser failure at the given column.
func ErrParse(expr string, column int, cause error) *QuantError {
	return NewParseError(ErrCodeParse, "invalid expression", cause).WithExpression(expr, column)
}

// ErrCatalogInvalid reports a malformed unit catalog entry.
func ErrCatalogInvalid(path string, line int, message string) *QuantError {
	return NewValidationError(ErrCodeCatalogInvalid, message).WithLocation(path, line)
}
