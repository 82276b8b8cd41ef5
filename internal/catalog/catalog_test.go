package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/internal/registry"
	"github.com/conneroisu/quant/internal/testutils"
	"github.com/conneroisu/quant/pkg/quantity"
)

func ptr(v float64) *float64 { return &v }

func TestParse(t *testing.T) {
	defs, err := Parse(strings.NewReader(testutils.SampleCatalog), "sample.yml")
	require.NoError(t, err)
	require.Len(t, defs, 3)

	assert.Equal(t, "furlong", defs[0].Name)
	assert.Equal(t, 2, defs[0].Line)
	assert.Equal(t, 6, defs[1].Line)
	assert.Equal(t, "furlong", defs[1].Base)
	assert.True(t, defs[2].IsAffine())
	assert.False(t, defs[0].IsAffine())
	assert.InDelta(t, 1.25, *defs[2].Step, 1e-12)
}

func TestParseEmpty(t *testing.T) {
	for _, doc := range []string{"", "units:\n", "other: 1\n"} {
		defs, err := Parse(strings.NewReader(doc), "empty.yml")
		require.NoError(t, err, "%q", doc)
		assert.Empty(t, defs)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		line int
	}{
		{"malformed", "units: [\n", 0},
		{"root list", "- name: x\n", 1},
		{"units scalar", "units: furlong\n", 1},
		{"bad entry", "units:\n  - name: [1, 2]\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc), "bad.yml")
			require.Error(t, err)

			var qe *qerrors.QuantError
			require.True(t, errors.As(err, &qe))
			assert.Equal(t, qerrors.ErrCodeCatalogInvalid, qe.Code)
			assert.Equal(t, "bad.yml", qe.FilePath)
			assert.Equal(t, tt.line, qe.Line)
		})
	}
}

func TestBuild(t *testing.T) {
	furlong, err := Build(Definition{Name: "furlong", Symbol: "fur", Dimension: "length", Factor: ptr(201.168)}, nil)
	require.NoError(t, err)
	assert.Equal(t, "length", furlong.Dimension())
	assert.InDelta(t, 201.168, furlong.ToSI(1), 1e-9)

	resolve := func(key string) (quantity.AnyUnit, bool) {
		if key == "fur" || key == "furlong" {
			return furlong, true
		}
		for _, u := range quantity.Catalog() {
			if u.Name() == key {
				return u, true
			}
		}
		return nil, false
	}

	chain, err := Build(Definition{Name: "chain", Dimension: "length", Factor: ptr(0.1), Base: "fur"}, resolve)
	require.NoError(t, err)
	assert.InDelta(t, 20.1168, chain.ToSI(1), 1e-9)

	reaumur, err := Build(Definition{Name: "reaumur", Dimension: "temperature", Offset: ptr(-218.52), Step: ptr(1.25)}, nil)
	require.NoError(t, err)
	assert.True(t, reaumur.IsAffine())
	assert.InDelta(t, 373.15, reaumur.ToSI(80), 1e-9)

	shifted, err := Build(Definition{Name: "shifted", Dimension: "temperature", Offset: ptr(-10)}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 10, shifted.ToSI(0), 1e-12, "step defaults to one")
}

func TestBuildErrors(t *testing.T) {
	resolve := func(key string) (quantity.AnyUnit, bool) {
		for _, u := range quantity.Catalog() {
			if u.Name() == key || u.Symbol() == key {
				return u, true
			}
		}
		return nil, false
	}

	tests := []struct {
		name string
		def  Definition
		want string
	}{
		{"no name", Definition{Dimension: "length", Factor: ptr(1)}, "name is required"},
		{"no dimension", Definition{Name: "x", Factor: ptr(1)}, "dimension is required"},
		{"unknown dimension", Definition{Name: "x", Dimension: "flavour", Factor: ptr(1)}, "unknown dimension"},
		{"no factor", Definition{Name: "x", Dimension: "length"}, "factor is required"},
		{"zero factor", Definition{Name: "x", Dimension: "length", Factor: ptr(0)}, "non-zero"},
		{"mixed", Definition{Name: "x", Dimension: "temperature", Factor: ptr(1), Offset: ptr(1)}, "cannot be combined"},
		{"zero step", Definition{Name: "x", Dimension: "temperature", Step: ptr(0)}, "step must be"},
		{"affine length", Definition{Name: "x", Dimension: "length", Offset: ptr(1)}, "no zero point"},
		{"unknown base", Definition{Name: "x", Dimension: "length", Factor: ptr(1), Base: "smoot"}, "unknown unit"},
		{"base mismatch", Definition{Name: "x", Dimension: "length", Factor: ptr(1), Base: "s"}, "cannot base"},
		{"affine base", Definition{Name: "x", Dimension: "temperature", Factor: ptr(1), Base: "°C"}, "has an offset"},
		{"no resolver", Definition{Name: "x", Dimension: "length", Factor: ptr(1), Base: "m"}, "cannot be resolved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolver(resolve)
			if tt.name == "no resolver" {
				r = nil
			}
			_, err := Build(tt.def, r)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromUnitAndMarshal(t *testing.T) {
	var defs []Definition
	for _, u := range quantity.UnitsOf("temperature") {
		defs = append(defs, FromUnit(u))
	}
	require.NotEmpty(t, defs)

	data, err := Marshal(defs)
	require.NoError(t, err)

	parsed, err := Parse(strings.NewReader(string(data)), "out.yml")
	require.NoError(t, err)
	require.Len(t, parsed, len(defs))

	for i, def := range parsed {
		original := quantity.UnitsOf("temperature")[i]
		u, err := Build(def, nil)
		require.NoError(t, err, def.Name)
		assert.Equal(t, original.Name(), u.Name())
		assert.Equal(t, original.IsAffine(), u.IsAffine())
		assert.InDelta(t, original.ToSI(25), u.ToSI(25), 1e-9)
	}
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := testutils.WriteCatalog(t, dir, "units.yml", testutils.SampleCatalog)

	reg := registry.NewWithBuiltins()
	before := reg.Count()
	loader := NewLoader(reg, nil)

	res, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Added)
	assert.Equal(t, 0, res.Removed)
	assert.Empty(t, res.Issues)
	assert.Equal(t, before+3, reg.Count())

	chain, ok := reg.Get("chains")
	require.True(t, ok)
	assert.InDelta(t, 20.1168, chain.Unit.ToSI(1), 1e-9)
	assert.Equal(t, 6, chain.Line)
	assert.Equal(t, res.Path, chain.Source)
}

func TestLoaderReloadReplacesUnits(t *testing.T) {
	dir := t.TempDir()
	path := testutils.WriteCatalog(t, dir, "units.yml", testutils.SampleCatalog)

	reg := registry.NewWithBuiltins()
	before := reg.Count()
	loader := NewLoader(reg, nil)

	_, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	testutils.WriteCatalog(t, dir, "units.yml", "units:\n  - name: league\n    dimension: length\n    factor: 4828.032\n")
	res, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Removed)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, before+1, reg.Count())

	_, ok := reg.Get("furlong")
	assert.False(t, ok)

	assert.Equal(t, 1, loader.Unload(context.Background(), path))
	assert.Equal(t, before, reg.Count())
}

func TestLoaderKeepsUnitsWhenFileIsBroken(t *testing.T) {
	dir := t.TempDir()
	path := testutils.WriteCatalog(t, dir, "units.yml", testutils.SampleCatalog)

	reg := registry.NewWithBuiltins()
	loader := NewLoader(reg, nil)
	_, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	testutils.WriteCatalog(t, dir, "units.yml", "units: [\n")
	_, err = loader.Load(context.Background(), path)
	require.Error(t, err)

	_, ok := reg.Get("furlong")
	assert.True(t, ok)
}

func TestLoaderReportsBadEntries(t *testing.T) {
	dir := t.TempDir()
	path := testutils.WriteCatalog(t, dir, "units.yml", `units:
  - name: furlong
    dimension: length
    factor: 201.168
  - name: broken
    dimension: length
  - name: meter
    dimension: length
    factor: 2
  - name: mystery
    symbol: m
    dimension: length
    factor: 3
`)

	reg := registry.NewWithBuiltins()
	res, err := NewLoader(reg, nil).Load(context.Background(), path)
	require.Error(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 1, res.Added)
	require.Len(t, res.Issues, 3)
	assert.Equal(t, 5, res.Issues[0].Line)
	assert.Equal(t, "broken", res.Issues[0].Unit)
	assert.Equal(t, "meter", res.Issues[1].Unit)
	assert.Equal(t, "mystery", res.Issues[2].Unit)

	meter, _ := reg.Get("m")
	assert.Equal(t, registry.SourceBuiltin, meter.Source)
	assert.InDelta(t, 1, meter.Unit.ToSI(1), 0)
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := NewLoader(registry.NewUnitRegistry(), nil).Load(context.Background(), filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeIO))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	first := testutils.WriteCatalog(t, dir, "a.yml", testutils.SampleCatalog)
	second := testutils.WriteCatalog(t, dir, "b.yml", `units:
  - name: rod
    dimension: length
    factor: 0.25
    base: chain
`)
	missing := filepath.Join(dir, "missing.yml")

	reg := registry.NewWithBuiltins()
	results, err := NewLoader(reg, nil).LoadAll(context.Background(), []string{first, second, missing})
	require.Error(t, err)
	require.Len(t, results, 2)

	rod, ok := reg.Get("rod")
	require.True(t, ok, "later catalogs see units from earlier ones")
	assert.InDelta(t, 5.0292, rod.Unit.ToSI(1), 1e-9)
}
