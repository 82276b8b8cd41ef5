package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context, creating a QuantError if the
// input is not already one.
func Wrap(err error, errType ErrorType, code, message string) *QuantError {
	if err == nil {
		return nil
	}

	var qe *QuantError
	if errors.As(err, &qe) {
		return &QuantError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       qe,
			Context:     qe.Context,
			Expression:  qe.Expression,
			FilePath:    qe.FilePath,
			Line:        qe.Line,
			Position:    qe.Position,
			Recoverable: qe.Recoverable,
		}
	}

	return &QuantError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeValidation || errType == ErrorTypeParse,
	}
}

// WrapIO wraps an error as an I/O error.
func WrapIO(err error, code, message string) *QuantError {
	return Wrap(err, ErrorTypeIO, code, message)
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, code, message string) *QuantError {
	return Wrap(err, ErrorTypeConfig, code, message)
}

// FormatErrorWithSuggestions renders err with any attached suggestions.
func FormatErrorWithSuggestions(err error) string {
	if err == nil {
		return ""
	}

	var ee *EnhancedError
	if errors.As(err, &ee) {
		return ee.Error()
	}

	var ve ValidationError
	if errors.As(err, &ve) {
		result := ve.Error()
		if suggestions := ve.Suggestions(); len(suggestions) > 0 {
			result += "\n\nSuggestions:"
			for _, suggestion := range suggestions {
				result += fmt.Sprintf("\n  • %s", suggestion)
			}
		}
		return result
	}

	return err.Error()
}

// GetErrorContext extracts context information from a QuantError
func GetErrorContext(err error) map[string]interface{} {
	var qe *QuantError
	if errors.As(err, &qe) {
		context := make(map[string]interface{})
		for k, v := range qe.Context {
			context[k] = v
		}
		if qe.FilePath != "" {
			context["file"] = qe.FilePath
			if qe.Line > 0 {
				context["line"] = qe.Line
			}
		}
		if qe.Expression != "" {
			context["expression"] = qe.Expression
			context["column"] = qe.Position
		}
		context["type"] = string(qe.Type)
		context["code"] = qe.Code
		context["recoverable"] = qe.Recoverable
		return context
	}

	return map[string]interface{}{
		"message": err.Error(),
		"type":    "unknown",
	}
}

// CombineErrors combines multiple errors into a single error with context
func CombineErrors(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	if len(nonNil) == 0 {
		return nil
	}
	if len(nonNil) == 1 {
		return nonNil[0]
	}

	messages := make([]string, 0, len(nonNil))
	for _, err := range nonNil {
		messages = append(messages, err.Error())
	}

	return &QuantError{
		Type:    ErrorTypeValidation,
		Code:    ErrCodeValidationFailed,
		Message: fmt.Sprintf("%d errors occurred", len(nonNil)),
		Cause:   errors.Join(nonNil...),
		Context: map[string]interface{}{
			"error_count": len(nonNil),
			"errors":      messages,
		},
		Recoverable: true,
	}
}
