package quantity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/quant/pkg/quantity"
)

func relativeDelta(expected float64) float64 {
	return math.Max(math.Abs(expected)*1e-9, 1e-12)
}

func TestUnit_RoundTripEveryCatalogUnit(t *testing.T) {
	magnitudes := []float64{0, 1, -1, 0.001, 273.15, 42.5, -1e6, 3.3e12}

	for _, u := range quantity.Catalog() {
		u := u
		t.Run(u.Dimension()+"/"+u.Name(), func(t *testing.T) {
			for _, m := range magnitudes {
				got := u.FromSI(u.ToSI(m))
				assert.InDelta(t, m, got, relativeDelta(m), "magnitude %v", m)
			}
		})
	}
}

func TestUnit_SIUnitComesFirstWithFactorOne(t *testing.T) {
	for _, info := range quantity.Dimensions() {
		units := quantity.UnitsOf(info.Name)
		require.NotEmpty(t, units, info.Name)

		si := units[0]
		assert.Equal(t, 5.0, si.ToSI(5), "SI unit of %s", info.Name)
		assert.Equal(t, 5.0, si.FromSI(5), "SI unit of %s", info.Name)
	}
}

func TestUnit_CatalogNamesAreUnique(t *testing.T) {
	names := make(map[string]string)
	symbols := make(map[string]string)

	for _, u := range quantity.Catalog() {
		if prev, ok := names[u.Name()]; ok {
			t.Errorf("unit name %q used by %s and %s", u.Name(), prev, u.Dimension())
		}
		names[u.Name()] = u.Dimension()

		if u.Symbol() == "" {
			continue
		}
		if prev, ok := symbols[u.Symbol()]; ok {
			t.Errorf("unit symbol %q used by %s and %s", u.Symbol(), prev, u.Dimension())
		}
		symbols[u.Symbol()] = u.Dimension()
	}
}

func TestUnit_Linear(t *testing.T) {
	assert.Equal(t, "kJ", quantity.Kilojoule.Symbol())
	assert.Equal(t, "kilojoule", quantity.Kilojoule.Name())
	assert.Equal(t, "energy", quantity.Kilojoule.Dimension())
	assert.Equal(t, 1000.0, quantity.Kilojoule.Factor())
	assert.False(t, quantity.Kilojoule.IsAffine())
	assert.Equal(t, 2000.0, quantity.Kilojoule.ToSI(2))
	assert.Equal(t, 0.002, quantity.Kilojoule.FromSI(2))
	assert.Equal(t, "kJ", quantity.Kilojoule.String())
}

func TestUnit_Affine(t *testing.T) {
	t.Run("celsius zero is 273.15 kelvin", func(t *testing.T) {
		temp := quantity.New(0, quantity.Celsius)
		assert.InDelta(t, 273.15, temp.In(quantity.Kelvin).Float64(), 1e-9)
	})

	t.Run("fahrenheit freezing point is 273.15 kelvin", func(t *testing.T) {
		temp := quantity.New(32, quantity.Fahrenheit)
		assert.InDelta(t, 273.15, temp.In(quantity.Kelvin).Float64(), 1e-9)
	})

	t.Run("boiling water", func(t *testing.T) {
		temp := quantity.New(100, quantity.Celsius)
		assert.InDelta(t, 212, temp.In(quantity.Fahrenheit).Float64(), 1e-9)
		assert.InDelta(t, 671.67, temp.In(quantity.Rankine).Float64(), 1e-9)
	})

	t.Run("absolute zero", func(t *testing.T) {
		temp := quantity.New(-459.67, quantity.Fahrenheit)
		assert.InDelta(t, 0, temp.Float64(), 1e-9)
		assert.InDelta(t, -273.15, temp.In(quantity.Celsius).Float64(), 1e-9)
	})

	t.Run("accessors", func(t *testing.T) {
		assert.True(t, quantity.Celsius.IsAffine())
		assert.Equal(t, -273.15, quantity.Celsius.Offset())
		assert.Equal(t, 1.0, quantity.Celsius.Step())
		assert.Equal(t, quantity.DeltaFahrenheit.Factor(), quantity.Fahrenheit.Step())
		assert.Equal(t, "temperature", quantity.Fahrenheit.Dimension())
	})
}

func TestUnit_DifferenceUnitsIgnoreOffset(t *testing.T) {
	d := quantity.New(18, quantity.DeltaFahrenheit)
	assert.InDelta(t, 10, d.In(quantity.DeltaCelsius).Float64(), 1e-9)
	assert.InDelta(t, 10, d.In(quantity.DeltaKelvin).Float64(), 1e-9)
}

func TestNewLinearUnit(t *testing.T) {
	u, err := quantity.NewLinearUnit("length", "furlong", "fur", 201.168)
	require.NoError(t, err)

	assert.Equal(t, "length", u.Dimension())
	assert.Equal(t, 201.168, u.ToSI(1))
	assert.False(t, u.IsAffine())

	_, err = quantity.NewLinearUnit("smell", "sniff", "sn", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, quantity.ErrInvalidArgument))
}

func TestNewAffineUnit(t *testing.T) {
	u, err := quantity.NewAffineUnit("temperature", "reaumur", "°Ré", -218.52, 1.25)
	require.NoError(t, err)
	assert.True(t, u.IsAffine())
	assert.InDelta(t, 273.15, u.ToSI(0), 1e-9)

	_, err = quantity.NewAffineUnit("temperature_difference", "bogus", "b", 10, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)

	var qerr *quantity.Error
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, quantity.KindInvalidArgument, qerr.Kind)
	assert.Equal(t, "dimension", qerr.Arg)
	assert.Contains(t, qerr.Error(), "no zero point")

	_, err = quantity.NewAffineUnit("nope", "bogus", "b", 10, 1)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}

func TestLookupDimension(t *testing.T) {
	info, ok := quantity.LookupDimension("temperature")
	require.True(t, ok)
	assert.True(t, info.Absolute)
	assert.Equal(t, "K", info.Symbol)

	info, ok = quantity.LookupDimension("temperature_difference")
	require.True(t, ok)
	assert.False(t, info.Absolute)

	_, ok = quantity.LookupDimension("unhandled")
	assert.False(t, ok)
}
