// Package registry keeps the runtime set of units known to quant: the
// built-in catalog plus units loaded from YAML catalogs. Units are looked up
// by symbol or name, and watchers are told about every change.
package registry

import (
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/pkg/quantity"
)

// SourceBuiltin marks units compiled into the quantity package.
const SourceBuiltin = "builtin"

// UnitRegistry manages all known units.
type UnitRegistry struct {
	units    map[string]*UnitEntry // by name
	symbols  map[string]*UnitEntry
	folded   map[string]*UnitEntry
	order    []string
	mutex    sync.RWMutex
	watchers []chan UnitEvent
}

// UnitEntry is a registered unit together with where it came from.
type UnitEntry struct {
	Unit     quantity.AnyUnit
	Source   string
	Line     int
	Modified time.Time
}

func (e *UnitEntry) Name() string      { return e.Unit.Name() }
func (e *UnitEntry) Symbol() string    { return e.Unit.Symbol() }
func (e *UnitEntry) Dimension() string { return e.Unit.Dimension() }

// UnitEvent represents a change in the registry
type UnitEvent struct {
	Type      EventType
	Unit      *UnitEntry
	Timestamp time.Time
}

// EventType represents the type of registry event
type EventType int

const (
	EventTypeAdded EventType = iota
	EventTypeUpdated
	EventTypeRemoved
)

func (t EventType) String() string {
	switch t {
	case EventTypeAdded:
		return "added"
	case EventTypeUpdated:
		return "updated"
	case EventTypeRemoved:
		return "removed"
	}
	return "unknown"
}

// NewUnitRegistry creates an empty registry.
func NewUnitRegistry() *UnitRegistry {
	return &UnitRegistry{
		units:    make(map[string]*UnitEntry),
		symbols:  make(map[string]*UnitEntry),
		folded:   make(map[string]*UnitEntry),
		watchers: make([]chan UnitEvent, 0),
	}
}

// NewWithBuiltins creates a registry seeded with quantity.Catalog().
func NewWithBuiltins() *UnitRegistry {
	r := NewUnitRegistry()
	now := time.Now()
	for _, u := range quantity.Catalog() {
		// The built-in catalog has unique names and symbols.
		_ = r.Register(&UnitEntry{Unit: u, Source: SourceBuiltin, Modified: now})
	}
	return r
}

// Register adds or replaces a unit. Replacing is keyed by name; a symbol
// already held by a differently named unit is rejected.
func (r *UnitRegistry) Register(entry *UnitEntry) error {
	if entry == nil || entry.Unit == nil {
		return qerrors.NewInternalError(qerrors.ErrCodeInternalError, "nil unit entry", nil)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	name := entry.Name()
	if name == "" {
		return qerrors.NewValidationError(qerrors.ErrCodeCatalogInvalid, "unit name is empty")
	}
	if sym := entry.Symbol(); sym != "" {
		if holder, ok := r.symbols[sym]; ok && holder.Name() != name {
			return qerrors.NewValidationError(qerrors.ErrCodeDuplicateUnit,
				"symbol "+sym+" is already used by "+holder.Name()).
				WithContext("symbol", sym).
				WithContext("holder", holder.Name())
		}
	}

	eventType := EventTypeAdded
	if old, exists := r.units[name]; exists {
		eventType = EventTypeUpdated
		r.unindex(old)
	} else {
		r.order = append(r.order, name)
	}

	r.units[name] = entry
	if sym := entry.Symbol(); sym != "" {
		r.symbols[sym] = entry
	}
	r.folded[foldKey(name)] = entry

	r.notify(UnitEvent{Type: eventType, Unit: entry, Timestamp: time.Now()})
	return nil
}

func (r *UnitRegistry) unindex(entry *UnitEntry) {
	if sym := entry.Symbol(); sym != "" && r.symbols[sym] == entry {
		delete(r.symbols, sym)
	}
	key := foldKey(entry.Name())
	if r.folded[key] == entry {
		delete(r.folded, key)
	}
}

// foldKey case-folds s. A Caser keeps state, so each call gets its own.
func foldKey(s string) string {
	return cases.Fold().String(s)
}

// notify must be called with the write lock held.
func (r *UnitRegistry) notify(event UnitEvent) {
	for _, watcher := range r.watchers {
		select {
		case watcher <- event:
		default:
			// Skip if channel is full
		}
	}
}

// Get looks a unit up by exact symbol, exact name, case-folded name and
// finally a plural name such as "meters".
func (r *UnitRegistry) Get(key string) (*UnitEntry, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if e, ok := r.symbols[key]; ok {
		return e, true
	}
	if e, ok := r.units[key]; ok {
		return e, true
	}

	folded := foldKey(key)
	if e, ok := r.folded[folded]; ok {
		return e, true
	}
	for _, suffix := range []string{"es", "s"} {
		if base, ok := strings.CutSuffix(folded, suffix); ok && base != "" {
			if e, ok := r.folded[base]; ok {
				return e, true
			}
		}
	}
	return nil, false
}

// Lookup is Get that returns an error suggesting close matches.
func (r *UnitRegistry) Lookup(key string) (*UnitEntry, error) {
	if e, ok := r.Get(key); ok {
		return e, nil
	}
	return nil, qerrors.NewEnhancedError(
		"unknown unit: "+key,
		qerrors.ErrUnknownUnit(key),
		qerrors.UnknownUnitSuggestions(key, r.Keys()),
	)
}

// GetAll returns every unit in registration order.
func (r *UnitRegistry) GetAll() []*UnitEntry {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]*UnitEntry, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.units[name])
	}
	return result
}

// ByDimension returns the units of one dimension in registration order.
func (r *UnitRegistry) ByDimension(dimension string) []*UnitEntry {
	var result []*UnitEntry
	for _, e := range r.GetAll() {
		if e.Dimension() == dimension {
			result = append(result, e)
		}
	}
	return result
}

// BySource returns the units registered from one catalog.
func (r *UnitRegistry) BySource(source string) []*UnitEntry {
	var result []*UnitEntry
	for _, e := range r.GetAll() {
		if e.Source == source {
			result = append(result, e)
		}
	}
	return result
}

// Keys returns every name and symbol, sorted.
func (r *UnitRegistry) Keys() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	keys := make([]string, 0, len(r.units)+len(r.symbols))
	for name := range r.units {
		keys = append(keys, name)
	}
	for sym := range r.symbols {
		keys = append(keys, sym)
	}
	sort.Strings(keys)
	return keys
}

// Remove removes a unit by name.
func (r *UnitRegistry) Remove(name string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.removeLocked(name)
}

func (r *UnitRegistry) removeLocked(name string) {
	entry, exists := r.units[name]
	if !exists {
		return
	}

	delete(r.units, name)
	r.unindex(entry)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	r.notify(UnitEvent{Type: EventTypeRemoved, Unit: entry, Timestamp: time.Now()})
}

// RemoveSource removes every unit loaded from source and returns how many
// were removed. Built-in units are never removed this way.
func (r *UnitRegistry) RemoveSource(source string) int {
	if source == SourceBuiltin {
		return 0
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	var names []string
	for _, name := range r.order {
		if r.units[name].Source == source {
			names = append(names, name)
		}
	}
	for _, name := range names {
		r.removeLocked(name)
	}
	return len(names)
}

// Watch returns a channel that receives registry events
func (r *UnitRegistry) Watch() <-chan UnitEvent {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ch := make(chan UnitEvent, 100)
	r.watchers = append(r.watchers, ch)
	return ch
}

// UnWatch removes a watcher channel and closes it
func (r *UnitRegistry) UnWatch(ch <-chan UnitEvent) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, watcher := range r.watchers {
		if watcher == ch {
			close(watcher)
			r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
			break
		}
	}
}

// Count returns the number of registered units
func (r *UnitRegistry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.units)
}
