package quantity_test

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/quant/pkg/quantity"
)

func TestRelations_Inversion(t *testing.T) {
	f := quantity.FrequencyFromTime(quantity.New(4, quantity.Millisecond))
	assert.InDelta(t, 250, f.Float64(), 1e-9)
	assert.InDelta(t, 0.004, quantity.TimeFromFrequency(f).Float64(), 1e-15)

	assert.True(t, quantity.FrequencyFromTime(quantity.Zero[quantity.TimeDim]()).IsPositiveInfinity())
	assert.True(t, quantity.TimeFromFrequency(quantity.FromSI[quantity.FrequencyDim](math.Inf(1))).IsZero())
}

func TestRelations_SquareAndRoots(t *testing.T) {
	f := quantity.New(-3, quantity.Hertz)
	drift := quantity.FrequencyDriftFromFrequency(f)
	assert.Equal(t, 9.0, drift.Float64())
	assert.Equal(t, 3.0, quantity.FrequencyFromFrequencyDrift(drift).Float64())
	assert.True(t, quantity.FrequencyFromFrequencyDrift(quantity.FromSI[quantity.FrequencyDriftDim](-1)).IsNaN())

	assert.Equal(t, 25.0, quantity.AreaFromLength(quantity.Meter.Of(5)).Float64())
	assert.Equal(t, 5.0, quantity.LengthFromArea(quantity.SquareMeter.Of(25)).Float64())
	assert.Equal(t, 6.0, quantity.AreaFromLengths(quantity.Meter.Of(2), quantity.Meter.Of(3)).Float64())

	assert.Equal(t, -27.0, quantity.VolumeFromLength(quantity.Meter.Of(-3)).Float64())
	assert.InDelta(t, -3.0, quantity.LengthFromVolume(quantity.CubicMeter.Of(-27)).Float64(), 1e-12)
	assert.Equal(t, 12.0, quantity.VolumeFromAreaLength(quantity.SquareMeter.Of(4), quantity.Meter.Of(3)).Float64())
	assert.Equal(t, 3.0, quantity.LengthFromVolumeArea(quantity.CubicMeter.Of(12), quantity.SquareMeter.Of(4)).Float64())
}

func TestRelations_Kinematics(t *testing.T) {
	v := quantity.VelocityFromLengthTime(quantity.New(100, quantity.Kilometer), quantity.New(2, quantity.Hour))
	assert.InDelta(t, 50, v.In(quantity.KilometerPerHour).Float64(), 1e-9)

	assert.InDelta(t, 100000, quantity.LengthFromVelocityTime(v, quantity.New(2, quantity.Hour)).Float64(), 1e-6)
	assert.InDelta(t, 7200, quantity.TimeFromLengthVelocity(quantity.New(100, quantity.Kilometer), v).Float64(), 1e-6)

	wave := quantity.VelocityFromLengthFrequency(quantity.Meter.Of(2), quantity.Hertz.Of(170))
	assert.Equal(t, 340.0, wave.Float64())

	a := quantity.AccelerationFromVelocityTime(quantity.MeterPerSecond.Of(20), quantity.Second.Of(4))
	assert.Equal(t, 5.0, a.Float64())
	assert.Equal(t, 20.0, quantity.VelocityFromAccelerationTime(a, quantity.Second.Of(4)).Float64())

	w := quantity.AngularVelocityFromAngleTime(quantity.Revolution.Of(1), quantity.Second.Of(1))
	assert.InDelta(t, 60, w.In(quantity.RevolutionPerMinute).Float64(), 1e-9)
	assert.InDelta(t, 2*math.Pi, quantity.AngleFromAngularVelocityTime(w, quantity.Second.Of(1)).Float64(), 1e-12)
}

func TestRelations_Mechanics(t *testing.T) {
	f := quantity.ForceFromMassAcceleration(quantity.Kilogram.Of(2), quantity.StandardGravity.Of(1))
	assert.InDelta(t, 19.6133, f.Float64(), 1e-9)
	assert.InDelta(t, 9.80665, quantity.AccelerationFromForceMass(f, quantity.Kilogram.Of(2)).Float64(), 1e-12)
	assert.InDelta(t, 2, quantity.MassFromForceAcceleration(f, quantity.StandardGravity.Of(1)).Float64(), 1e-12)

	p := quantity.MomentumFromMassVelocity(quantity.Kilogram.Of(3), quantity.MeterPerSecond.Of(4))
	assert.Equal(t, 12.0, p.Float64())
	assert.Equal(t, 4.0, quantity.VelocityFromMomentumMass(p, quantity.Kilogram.Of(3)).Float64())
	assert.Equal(t, 6.0, quantity.ForceFromMomentumTime(p, quantity.Second.Of(2)).Float64())

	e := quantity.EnergyFromForceLength(quantity.Newton.Of(10), quantity.Meter.Of(3))
	assert.Equal(t, 30.0, e.Float64())
	assert.Equal(t, 10.0, quantity.ForceFromEnergyLength(e, quantity.Meter.Of(3)).Float64())

	pw := quantity.PowerFromEnergyTime(quantity.KilowattHour.Of(1), quantity.Hour.Of(1))
	assert.InDelta(t, 1000, pw.Float64(), 1e-9)
	assert.InDelta(t, 3.6e6, quantity.EnergyFromPowerTime(pw, quantity.Hour.Of(1)).Float64(), 1e-6)
	assert.InDelta(t, 3600, quantity.TimeFromEnergyPower(quantity.KilowattHour.Of(1), pw).Float64(), 1e-9)
	assert.Equal(t, 50.0, quantity.PowerFromForceVelocity(quantity.Newton.Of(10), quantity.MeterPerSecond.Of(5)).Float64())

	pr := quantity.PressureFromForceArea(quantity.Newton.Of(100), quantity.SquareMeter.Of(4))
	assert.Equal(t, 25.0, pr.Float64())
	assert.Equal(t, 100.0, quantity.ForceFromPressureArea(pr, quantity.SquareMeter.Of(4)).Float64())
	assert.InDelta(t, 101.325, quantity.EnergyFromPressureVolume(quantity.Atmosphere.Of(1), quantity.Liter.Of(1)).Float64(), 1e-9)

	d := quantity.DensityFromMassVolume(quantity.Kilogram.Of(1), quantity.Liter.Of(1))
	assert.InDelta(t, 1000, d.Float64(), 1e-9)
	assert.InDelta(t, 1, quantity.MassFromDensityVolume(d, quantity.Liter.Of(1)).Float64(), 1e-12)
	assert.InDelta(t, 0.001, quantity.VolumeFromMassDensity(quantity.Kilogram.Of(1), d).Float64(), 1e-15)
}

func TestRelations_Electric(t *testing.T) {
	q := quantity.ElectricChargeFromCurrentTime(quantity.Ampere.Of(2), quantity.Hour.Of(1))
	assert.InDelta(t, 2, q.In(quantity.AmpereHour).Float64(), 1e-12)
	assert.InDelta(t, 2, quantity.ElectricCurrentFromChargeTime(q, quantity.Hour.Of(1)).Float64(), 1e-12)

	p := quantity.PowerFromVoltageCurrent(quantity.Volt.Of(230), quantity.Ampere.Of(10))
	assert.Equal(t, 2300.0, p.Float64())
	assert.Equal(t, 230.0, quantity.VoltageFromPowerCurrent(p, quantity.Ampere.Of(10)).Float64())
	assert.Equal(t, 10.0, quantity.ElectricCurrentFromPowerVoltage(p, quantity.Volt.Of(230)).Float64())

	e := quantity.EnergyFromChargeVoltage(quantity.Coulomb.Of(3), quantity.Volt.Of(4))
	assert.Equal(t, 12.0, e.Float64())
	assert.Equal(t, 4.0, quantity.VoltageFromEnergyCharge(e, quantity.Coulomb.Of(3)).Float64())
}

func TestRelations_Temperature(t *testing.T) {
	room := quantity.New(20, quantity.Celsius)
	warmer := quantity.TemperatureShift(room, quantity.New(9, quantity.DeltaFahrenheit))
	assert.InDelta(t, 25, warmer.In(quantity.Celsius).Float64(), 1e-9)

	span := quantity.TemperatureSpan(warmer, room)
	assert.InDelta(t, 5, span.In(quantity.DeltaKelvin).Float64(), 1e-9)

	d := quantity.AsTemperatureDifference(room)
	assert.Equal(t, room.Float64(), d.Float64())
	assert.Equal(t, room, quantity.AsTemperature(d))
}

func TestRelations_NamedFunctionsMatchGraph(t *testing.T) {
	g := quantity.Derivations()
	a, b := 6.0, 1.5

	tests := []struct {
		op          quantity.Operation
		left, right string
		got         float64
	}{
		{quantity.OpQuotient, "length", "time", quantity.VelocityFromLengthTime(quantity.FromSI[quantity.LengthDim](a), quantity.FromSI[quantity.TimeDim](b)).Float64()},
		{quantity.OpProduct, "length", "frequency", quantity.VelocityFromLengthFrequency(quantity.FromSI[quantity.LengthDim](a), quantity.FromSI[quantity.FrequencyDim](b)).Float64()},
		{quantity.OpProduct, "mass", "acceleration", quantity.ForceFromMassAcceleration(quantity.FromSI[quantity.MassDim](a), quantity.FromSI[quantity.AccelerationDim](b)).Float64()},
		{quantity.OpQuotient, "energy", "time", quantity.PowerFromEnergyTime(quantity.FromSI[quantity.EnergyDim](a), quantity.FromSI[quantity.TimeDim](b)).Float64()},
		{quantity.OpQuotient, "force", "area", quantity.PressureFromForceArea(quantity.FromSI[quantity.ForceDim](a), quantity.FromSI[quantity.AreaDim](b)).Float64()},
		{quantity.OpProduct, "voltage", "electric_current", quantity.PowerFromVoltageCurrent(quantity.FromSI[quantity.VoltageDim](a), quantity.FromSI[quantity.ElectricCurrentDim](b)).Float64()},
		{quantity.OpQuotient, "mass", "volume", quantity.DensityFromMassVolume(quantity.FromSI[quantity.MassDim](a), quantity.FromSI[quantity.VolumeDim](b)).Float64()},
		{quantity.OpDifference, "temperature", "temperature", quantity.TemperatureSpan(quantity.FromSI[quantity.TemperatureDim](a), quantity.FromSI[quantity.TemperatureDim](b)).Float64()},
	}

	for _, tt := range tests {
		r, ok := g.Lookup(tt.op, tt.left, tt.right)
		require.True(t, ok, "%s %s %s", tt.left, tt.op, tt.right)
		assert.Equal(t, r.Apply(a, b), tt.got, r.String())
	}

	unaries := []struct {
		op      quantity.Operation
		operand string
		got     float64
	}{
		{quantity.OpInverse, "time", quantity.FrequencyFromTime(quantity.FromSI[quantity.TimeDim](a)).Float64()},
		{quantity.OpSquare, "frequency", quantity.FrequencyDriftFromFrequency(quantity.FromSI[quantity.FrequencyDim](a)).Float64()},
		{quantity.OpSquareRoot, "area", quantity.LengthFromArea(quantity.FromSI[quantity.AreaDim](a)).Float64()},
		{quantity.OpCube, "length", quantity.VolumeFromLength(quantity.FromSI[quantity.LengthDim](a)).Float64()},
		{quantity.OpCubeRoot, "volume", quantity.LengthFromVolume(quantity.FromSI[quantity.VolumeDim](a)).Float64()},
	}

	for _, tt := range unaries {
		r, ok := g.Unary(tt.op, tt.operand)
		require.True(t, ok, "%s(%s)", tt.op, tt.operand)
		assert.Equal(t, r.Apply(a, 0), tt.got, r.String())
	}
}

func TestMultiplyWith(t *testing.T) {
	l := quantity.Meter.Of(2)
	f := quantity.Hertz.Of(170)

	v, err := quantity.MultiplyWith(l, f, quantity.FromSI[quantity.VelocityDim])
	require.NoError(t, err)
	assert.Equal(t, quantity.VelocityFromLengthFrequency(l, f), v)

	tm, err := quantity.DivideWith(l, v, quantity.FromSI[quantity.TimeDim])
	require.NoError(t, err)
	assert.InDelta(t, 2.0/340, tm.Float64(), 1e-15)

	raw, err := quantity.MultiplyWith(l, f, func(v float64) float64 { return v })
	require.NoError(t, err)
	assert.Equal(t, 340.0, raw)
}

func TestMultiplyWith_InvalidArguments(t *testing.T) {
	l := quantity.Meter.Of(2)
	f := quantity.Hertz.Of(170)

	tests := []struct {
		name string
		call func() error
		arg  string
	}{
		{"nil factory", func() error {
			_, err := quantity.MultiplyWith[quantity.Velocity](l, f, nil)
			return err
		}, "makeResult"},
		{"nil factor", func() error {
			_, err := quantity.MultiplyWith(l, nil, quantity.FromSI[quantity.VelocityDim])
			return err
		}, "factor"},
		{"nil quantity", func() error {
			_, err := quantity.DivideWith(nil, f, quantity.FromSI[quantity.VelocityDim])
			return err
		}, "q"},
		{"divide nil factory", func() error {
			_, err := quantity.DivideWith[quantity.Time](l, f, nil)
			return err
		}, "makeResult"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, quantity.ErrInvalidArgument))

			var qerr *quantity.Error
			require.True(t, errors.As(err, &qerr))
			assert.Equal(t, tt.arg, qerr.Arg)
		})
	}
}

func TestRelations_Documented(t *testing.T) {
	file, err := parser.ParseFile(token.NewFileSet(), "relations.go", nil, parser.ParseComments)
	require.NoError(t, err)

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || !fn.Name.IsExported() {
			continue
		}
		if assert.NotNil(t, fn.Doc, "%s has no doc comment", fn.Name.Name) {
			assert.True(t, strings.HasPrefix(fn.Doc.Text(), fn.Name.Name+" "), "%s doc does not start with its name", fn.Name.Name)
		}
	}
}
