package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/internal/logging"
	"github.com/conneroisu/quant/internal/registry"
	"github.com/conneroisu/quant/pkg/quantity"
)

// Result summarises one catalog load.
type Result struct {
	Path    string
	Added   int
	Removed int
	Issues  []qerrors.CatalogIssue
}

// Loader feeds catalog files into a unit registry.
type Loader struct {
	registry *registry.UnitRegistry
	logger   logging.Logger
}

// NewLoader creates a loader for reg. A nil logger discards output.
func NewLoader(reg *registry.UnitRegistry, logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Loader{registry: reg, logger: logger.WithComponent("catalog")}
}

// Load reads path and replaces every unit previously loaded from it. Invalid
// entries are skipped and reported; the returned error is non-nil when the
// file could not be read or parsed, or when any entry was rejected. A file
// that cannot be parsed leaves the registry untouched.
func (l *Loader) Load(ctx context.Context, path string) (*Result, error) {
	defs, err := readFile(path)
	if err != nil {
		l.logger.Warn(ctx, err, "catalog not loaded", "path", path)
		return nil, err
	}
	return l.apply(ctx, path, defs)
}

// Unload removes every unit that came from path.
func (l *Loader) Unload(ctx context.Context, path string) int {
	source := sourceName(path)
	n := l.registry.RemoveSource(source)
	l.logger.Info(ctx, "catalog unloaded", "path", source, "removed", n)
	return n
}

// LoadAll reads every path concurrently and registers their units in path
// order. It keeps going past failures and returns them combined.
func (l *Loader) LoadAll(ctx context.Context, paths []string) ([]*Result, error) {
	type parsed struct {
		defs []Definition
		err  error
	}

	docs := make([]parsed, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defs, err := readFile(path)
			docs[i] = parsed{defs: defs, err: err}
		}(i, path)
	}
	wg.Wait()

	collector := qerrors.NewErrorCollector()
	results := make([]*Result, 0, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			collector.AddError(err)
			break
		}
		if docs[i].err != nil {
			l.logger.Warn(ctx, docs[i].err, "catalog not loaded", "path", path)
			collector.AddError(docs[i].err)
			continue
		}
		res, err := l.apply(ctx, path, docs[i].defs)
		results = append(results, res)
		collector.AddError(err)
	}

	return results, collector.Err()
}

func readFile(path string) ([]Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		code := qerrors.ErrCodeFileNotFound
		if !os.IsNotExist(err) {
			code = qerrors.ErrCodeCatalogInvalid
		}
		return nil, qerrors.WrapIO(err, code, "cannot read catalog").WithLocation(path, 0)
	}
	defer f.Close()

	return Parse(f, path)
}

func sourceName(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func (l *Loader) apply(ctx context.Context, path string, defs []Definition) (*Result, error) {
	op := logging.Track(l.logger, "load_catalog")

	source := sourceName(path)
	result := &Result{Path: source}
	collector := qerrors.NewErrorCollector()

	result.Removed = l.registry.RemoveSource(source)

	// Entries may refer to units defined earlier in the same file.
	resolve := func(key string) (quantity.AnyUnit, bool) {
		e, ok := l.registry.Get(key)
		if !ok {
			return nil, false
		}
		return e.Unit, true
	}

	now := time.Now()
	for _, def := range defs {
		unit, err := Build(def, resolve)
		if err == nil {
			err = l.checkOwner(def.Name, source)
		}
		if err == nil {
			err = l.registry.Register(&registry.UnitEntry{
				Unit:     unit,
				Source:   source,
				Line:     def.Line,
				Modified: now,
			})
		}
		if err != nil {
			collector.Add(qerrors.CatalogIssue{
				File:     path,
				Line:     def.Line,
				Unit:     def.Name,
				Message:  err.Error(),
				Severity: qerrors.ErrorSeverityError,
			})
			l.logger.Warn(ctx, err, "skipping unit", "path", path, "line", def.Line, "unit", def.Name)
			continue
		}
		result.Added++
	}

	result.Issues = collector.Issues()
	op.End(ctx, "path", source, "added", result.Added, "removed", result.Removed)

	if collector.HasErrors() {
		return result, qerrors.ErrCatalogInvalid(path, 0, "some units were rejected").
			WithContext("issues", collector.Report())
	}
	return result, nil
}

// checkOwner refuses to let one catalog redefine a unit owned by another
// catalog or by the built-in set.
func (l *Loader) checkOwner(name, source string) error {
	existing, ok := l.registry.Get(name)
	if !ok || existing.Name() != name || existing.Source == source {
		return nil
	}
	return qerrors.NewValidationError(qerrors.ErrCodeDuplicateUnit,
		"unit "+name+" is already defined by "+existing.Source).
		WithContext("unit", name)
}
