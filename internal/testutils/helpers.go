// Package testutils holds helpers shared by tests across packages.
package testutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/quant/internal/registry"
	"github.com/conneroisu/quant/pkg/quantity"
)

// SampleCatalog defines a linear unit, a unit based on it and an affine
// temperature scale.
const SampleCatalog = `units:
  - name: furlong
    symbol: fur
    dimension: length
    factor: 201.168
  - name: chain
    symbol: ch
    dimension: length
    factor: 0.1
    base: furlong
  - name: reaumur
    symbol: °Ré
    dimension: temperature
    offset: -218.52
    step: 1.25
`

// WriteCatalog writes content to dir/name and returns the path.
func WriteCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// LinearEntry builds a registry entry for a linear unit.
func LinearEntry(t *testing.T, dimension, name, symbol string, factor float64, source string) *registry.UnitEntry {
	t.Helper()
	unit, err := quantity.NewLinearUnit(dimension, name, symbol, factor)
	require.NoError(t, err)
	return &registry.UnitEntry{Unit: unit, Source: source, Modified: time.Now()}
}

// RegistryWith returns the built-in registry plus entries.
func RegistryWith(t *testing.T, entries ...*registry.UnitEntry) *registry.UnitRegistry {
	t.Helper()
	reg := registry.NewWithBuiltins()
	for _, e := range entries {
		require.NoError(t, reg.Register(e))
	}
	return reg
}

// WaitForEvent reads events until one of the given type for the named unit
// arrives, failing the test after timeout.
func WaitForEvent(t *testing.T, events <-chan registry.UnitEvent, eventType registry.EventType, name string, timeout time.Duration) registry.UnitEvent {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case event, ok := <-events:
			require.True(t, ok, "event channel closed")
			if event.Type == eventType && event.Unit.Name() == name {
				return event
			}
		case <-deadline:
			t.Fatalf("no %s event for %s within %s", eventType, name, timeout)
			return registry.UnitEvent{}
		}
	}
}
