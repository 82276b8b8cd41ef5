package errors

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorSeverityString(t *testing.T) {
	testCases := []struct {
		severity ErrorSeverity
		expected string
	}{
		{ErrorSeverityInfo, "info"},
		{ErrorSeverityWarning, "warning"},
		{ErrorSeverityError, "error"},
		{ErrorSeverity(999), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.severity.String())
		})
	}
}

func TestQuantErrorError(t *testing.T) {
	t.Run("catalog location", func(t *testing.T) {
		err := ErrCatalogInvalid("units.yml", 7, "factor must be positive")
		assert.Equal(t, "[ERR_CATALOG_INVALID] units.yml:7 factor must be positive", err.Error())
	})

	t.Run("expression with cause", func(t *testing.T) {
		err := ErrParse("3 m +", 6, errors.New("unexpected end of input"))
		assert.Equal(t, `[ERR_PARSE] "3 m +" at column 6 invalid expression: unexpected end of input`, err.Error())
		assert.Equal(t, ErrorTypeParse, err.Type)
		assert.True(t, IsRecoverable(err))
	})

	t.Run("context helpers", func(t *testing.T) {
		err := ErrUnknownUnit("furlongs")
		assert.Equal(t, "furlongs", err.Context["unit"])
		assert.Contains(t, err.Error(), "unknown unit: furlongs")
	})
}

func TestQuantErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("evaluating: %w", ErrDimensionMismatch("add", "length", "time"))

	assert.True(t, errors.Is(wrapped, &QuantError{Type: ErrorTypeDimension, Code: ErrCodeDimensionMismatch}))
	assert.False(t, errors.Is(wrapped, &QuantError{Type: ErrorTypeDimension, Code: ErrCodeUnhandled}))
	assert.True(t, IsType(wrapped, ErrorTypeDimension))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeDimension))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeIO, "X", "y"))

	cause := errors.New("permission denied")
	io := WrapIO(cause, ErrCodeFileNotFound, "cannot read catalog")
	require.NotNil(t, io)
	assert.Equal(t, ErrorTypeIO, io.Type)
	assert.False(t, io.Recoverable)
	assert.ErrorIs(t, io, cause)

	inner := ErrCatalogInvalid("a.yml", 3, "bad")
	outer := WrapConfig(inner, ErrCodeConfigInvalid, "catalog rejected")
	assert.Equal(t, "a.yml", outer.FilePath)
	assert.Equal(t, 3, outer.Line)
	assert.True(t, outer.Recoverable)
	assert.Same(t, inner, outer.Unwrap())
}

func TestGetErrorContext(t *testing.T) {
	ctx := GetErrorContext(ErrParse("2 *", 4, nil))
	assert.Equal(t, "2 *", ctx["expression"])
	assert.Equal(t, 4, ctx["column"])
	assert.Equal(t, "parse", ctx["type"])

	plain := GetErrorContext(errors.New("boom"))
	assert.Equal(t, "unknown", plain["type"])
}

func TestCombineErrors(t *testing.T) {
	assert.NoError(t, CombineErrors(nil, nil))

	single := errors.New("one")
	assert.Same(t, single, CombineErrors(nil, single))

	a, b := errors.New("a"), errors.New("b")
	combined := CombineErrors(a, nil, b)
	require.Error(t, combined)
	assert.ErrorIs(t, combined, a)
	assert.ErrorIs(t, combined, b)
	assert.Contains(t, combined.Error(), "2 errors occurred")
}

func TestValidationErrorCollection(t *testing.T) {
	var vec ValidationErrorCollection
	assert.Nil(t, vec.ToQuantError())
	assert.Equal(t, "no validation errors", vec.Error())

	vec.AddField("output.format", "xml", "unsupported format", "text", "json", "yaml")
	assert.Equal(t, "validation error in field 'output.format': unsupported format", vec.Error())

	vec.AddField("output.precision", 99, "precision out of range")
	assert.Equal(t, "validation failed with 2 errors", vec.Error())

	qe := vec.ToQuantError()
	require.NotNil(t, qe)
	assert.Equal(t, ErrCodeValidationFailed, qe.Code)
	assert.Contains(t, qe.Context, "output.format")

	formatted := FormatErrorWithSuggestions(vec.Errors[0])
	assert.Contains(t, formatted, "• json")
}

func TestErrorCollector(t *testing.T) {
	collector := NewErrorCollector()
	assert.False(t, collector.HasErrors())
	assert.NoError(t, collector.Err())

	collector.Add(CatalogIssue{File: "b.yml", Line: 4, Unit: "foo", Message: "duplicate", Severity: ErrorSeverityWarning})
	assert.False(t, collector.HasErrors(), "warnings alone are not errors")

	collector.Add(CatalogIssue{File: "a.yml", Line: 2, Message: "unknown dimension", Severity: ErrorSeverityError})
	collector.AddError(nil)
	assert.True(t, collector.HasErrors())
	assert.Equal(t, 2, collector.Len())
	assert.Len(t, collector.IssuesByFile("a.yml"), 1)

	report := collector.Report()
	assert.Equal(t,
		"a.yml:2: error: unknown dimension\nb.yml:4: warning: unit \"foo\": duplicate\n",
		report)

	collector.AddError(errors.New("io failure"))
	assert.Len(t, collector.All(), 3)
	assert.Error(t, collector.Err())

	collector.Clear()
	assert.Equal(t, 0, collector.Len())
	assert.Empty(t, collector.Report())
}

func TestErrorCollectorConcurrent(t *testing.T) {
	collector := NewErrorCollector()
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				collector.Add(CatalogIssue{File: fmt.Sprintf("f%d.yml", id), Line: i, Severity: ErrorSeverityError})
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 200, collector.Len())
}

func TestUnknownUnitSuggestions(t *testing.T) {
	known := []string{"meter", "m", "metre", "mile", "mi", "millimeter", "mm", "kilogram", "kg"}

	suggestions := UnknownUnitSuggestions("meterr", known)
	require.GreaterOrEqual(t, len(suggestions), 2)
	assert.Equal(t, "Did you mean 'meter'?", suggestions[1].Title)

	none := UnknownUnitSuggestions("zzzzzzzz", known)
	assert.Len(t, none, 1)

	text := FormatErrorWithSuggestions(NewEnhancedError("unknown unit: meterr", ErrUnknownUnit("meterr"), suggestions))
	assert.Contains(t, text, "Suggestions:")
	assert.Contains(t, text, "Run: quant list")
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("kelvin", "kelvin"))
	assert.Equal(t, 1, levenshtein("kelvin", "kelvn"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 1, levenshtein("°C", "°F"))
}
