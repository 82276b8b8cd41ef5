package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorSuggestion represents a suggestion for fixing an error
type ErrorSuggestion struct {
	Title       string
	Description string
	Command     string
	Example     string
}

// UnknownUnitSuggestions proposes the closest known unit names for an
// unrecognised one. known lists every name and symbol in the registry.
func UnknownUnitSuggestions(name string, known []string) []ErrorSuggestion {
	suggestions := []ErrorSuggestion{
		{
			Title:       "List available units",
			Description: "Units can be referred to by name or symbol",
			Command:     "quant list",
		},
	}

	for _, candidate := range closestNames(name, known, 3) {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:   "Did you mean '" + candidate + "'?",
			Command: "quant convert 1 " + candidate + " " + candidate,
		})
	}

	return suggestions
}

// DimensionMismatchSuggestions explains how to combine two dimensions that
// have no relation between them.
func DimensionMismatchSuggestions(left, right string) []ErrorSuggestion {
	return []ErrorSuggestion{
		{
			Title:       "Check the operand units",
			Description: fmt.Sprintf("%s and %s cannot be added, subtracted or converted into each other", left, right),
		},
		{
			Title:       "Show known relations",
			Description: "Products and quotients only keep a dimension when a relation exists",
			Command:     "quant relations --dimension " + left,
		},
	}
}

// closestNames returns up to n candidates within a small edit distance of
// name, nearest first. Substring matches of three or more letters count as
// distance one.
func closestNames(name string, known []string, n int) []string {
	type scored struct {
		name string
		dist int
	}

	target := strings.ToLower(name)
	limit := len(target)/3 + 1
	seen := make(map[string]bool)
	var matches []scored

	for _, candidate := range known {
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true

		lower := strings.ToLower(candidate)
		d := levenshtein(target, lower)
		if d > 1 && len(target) > 2 && len(lower) > 2 && (strings.Contains(lower, target) || strings.Contains(target, lower)) {
			d = 1
		}
		if d <= limit {
			matches = append(matches, scored{candidate, d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].name < matches[j].name
	})

	out := make([]string, 0, n)
	for i := 0; i < len(matches) && i < n; i++ {
		out = append(out, matches[i].name)
	}
	return out
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// FormatSuggestions formats suggestions into a user-friendly string
func FormatSuggestions(title string, suggestions []ErrorSuggestion) string {
	if len(suggestions) == 0 {
		return title
	}

	var output strings.Builder
	output.WriteString(title + "\n\n")
	output.WriteString("Suggestions:\n")

	for i, suggestion := range suggestions {
		output.WriteString(fmt.Sprintf("  %d. %s\n", i+1, suggestion.Title))
		if suggestion.Description != "" {
			output.WriteString(fmt.Sprintf("     %s\n", suggestion.Description))
		}
		if suggestion.Command != "" {
			output.WriteString(fmt.Sprintf("     Run: %s\n", suggestion.Command))
		}
		if suggestion.Example != "" {
			output.WriteString(fmt.Sprintf("     Example: %s\n", suggestion.Example))
		}
	}

	return output.String()
}

// EnhancedError wraps an error with suggestions
type EnhancedError struct {
	OriginalError error
	Title         string
	Suggestions   []ErrorSuggestion
}

// Error leads with the wrapped error, falling back to the title.
func (e *EnhancedError) Error() string {
	header := e.Title
	if e.OriginalError != nil {
		header = e.OriginalError.Error()
	}
	return FormatSuggestions(header, e.Suggestions)
}

func (e *EnhancedError) Unwrap() error {
	return e.OriginalError
}

// NewEnhancedError creates a new enhanced error with suggestions
func NewEnhancedError(title string, originalError error, suggestions []ErrorSuggestion) *EnhancedError {
	return &EnhancedError{
		OriginalError: originalError,
		Title:         title,
		Suggestions:   suggestions,
	}
}
