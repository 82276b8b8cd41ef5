package errors

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// CatalogIssue is a problem found while loading one catalog entry.
type CatalogIssue struct {
	File      string
	Line      int
	Unit      string
	Message   string
	Severity  ErrorSeverity
	Timestamp time.Time
}

// ErrorSeverity represents the severity of an error
type ErrorSeverity int

const (
	ErrorSeverityInfo ErrorSeverity = iota
	ErrorSeverityWarning
	ErrorSeverityError
)

// String returns the string representation of the severity
func (s ErrorSeverity) String() string {
	switch s {
	case ErrorSeverityInfo:
		return "info"
	case ErrorSeverityWarning:
		return "warning"
	case ErrorSeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func (ci *CatalogIssue) Error() string {
	if ci.Unit == "" {
		return fmt.Sprintf("%s:%d: %s: %s", ci.File, ci.Line, ci.Severity, ci.Message)
	}
	return fmt.Sprintf("%s:%d: %s: unit %q: %s", ci.File, ci.Line, ci.Severity, ci.Unit, ci.Message)
}

// ErrorCollector gathers catalog issues and general errors from concurrent
// loaders.
type ErrorCollector struct {
	issues []CatalogIssue
	errors []error
	mutex  sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		issues: make([]CatalogIssue, 0),
		errors: make([]error, 0),
	}
}

// Add records a catalog issue.
func (ec *ErrorCollector) Add(issue CatalogIssue) {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	issue.Timestamp = time.Now()
	ec.issues = append(ec.issues, issue)
}

// AddError adds a general error to the collector
func (ec *ErrorCollector) AddError(err error) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.errors = append(ec.errors, err)
}

// Issues returns a copy of the recorded catalog issues.
func (ec *ErrorCollector) Issues() []CatalogIssue {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]CatalogIssue, len(ec.issues))
	copy(result, ec.issues)
	return result
}

// All returns catalog issues followed by general errors.
func (ec *ErrorCollector) All() []error {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	all := make([]error, 0, len(ec.issues)+len(ec.errors))
	for i := range ec.issues {
		issue := ec.issues[i]
		all = append(all, &issue)
	}
	all = append(all, ec.errors...)

	return all
}

// HasErrors reports whether anything at error severity or any general error
// was recorded. Warnings alone do not count.
func (ec *ErrorCollector) HasErrors() bool {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	if len(ec.errors) > 0 {
		return true
	}
	for _, issue := range ec.issues {
		if issue.Severity >= ErrorSeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of issues and errors recorded.
func (ec *ErrorCollector) Len() int {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.issues) + len(ec.errors)
}

// Clear clears all errors
func (ec *ErrorCollector) Clear() {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.issues = ec.issues[:0]
	ec.errors = ec.errors[:0]
}

// IssuesByFile returns the issues recorded for one catalog file.
func (ec *ErrorCollector) IssuesByFile(file string) []CatalogIssue {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	var out []CatalogIssue
	for _, issue := range ec.issues {
		if issue.File == file {
			out = append(out, issue)
		}
	}
	return out
}

// Err folds everything collected into one error, or nil.
func (ec *ErrorCollector) Err() error {
	return CombineErrors(ec.All()...)
}

// Report renders the issues as plain text, sorted by file and line.
func (ec *ErrorCollector) Report() string {
	issues := ec.Issues()
	if len(issues) == 0 {
		return ""
	}
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].File != issues[j].File {
			return issues[i].File < issues[j].File
		}
		return issues[i].Line < issues[j].Line
	})

	var b strings.Builder
	for i := range issues {
		b.WriteString(issues[i].Error())
		b.WriteByte('\n')
	}
	return b.String()
}
