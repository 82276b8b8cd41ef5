package quantity

// Dimension is implemented by the zero-size tag types that tell one
// physical quantity apart from another.
type Dimension interface {
	// Name is the snake_case identifier used by catalogs and the graph.
	Name() string
	// Symbol is the symbol of the SI unit, used by String.
	Symbol() string
}

// Absolute marks dimensions measured against a zero point that differs from
// the SI zero. Only these dimensions accept affine units.
type Absolute interface {
	Dimension
	absolute()
}

type (
	// DimensionlessDim tags ratios and scaling factors.
	DimensionlessDim struct{}
	// OpaqueDim tags the dimension-erased result of unnamed derivations.
	OpaqueDim struct{}

	LengthDim                struct{}
	AreaDim                  struct{}
	VolumeDim                struct{}
	TimeDim                  struct{}
	FrequencyDim             struct{}
	FrequencyDriftDim        struct{}
	VelocityDim              struct{}
	AccelerationDim          struct{}
	MassDim                  struct{}
	DensityDim               struct{}
	ForceDim                 struct{}
	PressureDim              struct{}
	EnergyDim                struct{}
	PowerDim                 struct{}
	MomentumDim              struct{}
	TemperatureDim           struct{}
	TemperatureDifferenceDim struct{}
	AngleDim                 struct{}
	AngularVelocityDim       struct{}
	ElectricCurrentDim       struct{}
	ElectricChargeDim        struct{}
	VoltageDim               struct{}
)

func (DimensionlessDim) Name() string   { return "dimensionless" }
func (DimensionlessDim) Symbol() string { return "" }

func (OpaqueDim) Name() string   { return "unhandled" }
func (OpaqueDim) Symbol() string { return "?" }

func (LengthDim) Name() string   { return "length" }
func (LengthDim) Symbol() string { return "m" }

func (AreaDim) Name() string   { return "area" }
func (AreaDim) Symbol() string { return "m²" }

func (VolumeDim) Name() string   { return "volume" }
func (VolumeDim) Symbol() string { return "m³" }

func (TimeDim) Name() string   { return "time" }
func (TimeDim) Symbol() string { return "s" }

func (FrequencyDim) Name() string   { return "frequency" }
func (FrequencyDim) Symbol() string { return "Hz" }

func (FrequencyDriftDim) Name() string   { return "frequency_drift" }
func (FrequencyDriftDim) Symbol() string { return "Hz/s" }

func (VelocityDim) Name() string   { return "velocity" }
func (VelocityDim) Symbol() string { return "m/s" }

func (AccelerationDim) Name() string   { return "acceleration" }
func (AccelerationDim) Symbol() string { return "m/s²" }

func (MassDim) Name() string   { return "mass" }
func (MassDim) Symbol() string { return "kg" }

func (DensityDim) Name() string   { return "density" }
func (DensityDim) Symbol() string { return "kg/m³" }

func (ForceDim) Name() string   { return "force" }
func (ForceDim) Symbol() string { return "N" }

func (PressureDim) Name() string   { return "pressure" }
func (PressureDim) Symbol() string { return "Pa" }

func (EnergyDim) Name() string   { return "energy" }
func (EnergyDim) Symbol() string { return "J" }

func (PowerDim) Name() string   { return "power" }
func (PowerDim) Symbol() string { return "W" }

func (MomentumDim) Name() string   { return "momentum" }
func (MomentumDim) Symbol() string { return "N·s" }

func (TemperatureDim) Name() string   { return "temperature" }
func (TemperatureDim) Symbol() string { return "K" }
func (TemperatureDim) absolute()      {}

func (TemperatureDifferenceDim) Name() string   { return "temperature_difference" }
func (TemperatureDifferenceDim) Symbol() string { return "ΔK" }

func (AngleDim) Name() string   { return "angle" }
func (AngleDim) Symbol() string { return "rad" }

func (AngularVelocityDim) Name() string   { return "angular_velocity" }
func (AngularVelocityDim) Symbol() string { return "rad/s" }

func (ElectricCurrentDim) Name() string   { return "electric_current" }
func (ElectricCurrentDim) Symbol() string { return "A" }

func (ElectricChargeDim) Name() string   { return "electric_charge" }
func (ElectricChargeDim) Symbol() string { return "C" }

func (VoltageDim) Name() string   { return "voltage" }
func (VoltageDim) Symbol() string { return "V" }

// Quantity aliases, one per dimension.
type (
	Scalar                = Quantity[DimensionlessDim]
	Unhandled             = Quantity[OpaqueDim]
	Length                = Quantity[LengthDim]
	Area                  = Quantity[AreaDim]
	Volume                = Quantity[VolumeDim]
	Time                  = Quantity[TimeDim]
	Frequency             = Quantity[FrequencyDim]
	FrequencyDrift        = Quantity[FrequencyDriftDim]
	Velocity              = Quantity[VelocityDim]
	Acceleration          = Quantity[AccelerationDim]
	Mass                  = Quantity[MassDim]
	Density               = Quantity[DensityDim]
	Force                 = Quantity[ForceDim]
	Pressure              = Quantity[PressureDim]
	Energy                = Quantity[EnergyDim]
	Power                 = Quantity[PowerDim]
	Momentum              = Quantity[MomentumDim]
	Temperature           = Quantity[TemperatureDim]
	TemperatureDifference = Quantity[TemperatureDifferenceDim]
	Angle                 = Quantity[AngleDim]
	AngularVelocity       = Quantity[AngularVelocityDim]
	ElectricCurrent       = Quantity[ElectricCurrentDim]
	ElectricCharge        = Quantity[ElectricChargeDim]
	Voltage               = Quantity[VoltageDim]
)

func nameOf[D Dimension]() string {
	var d D
	return d.Name()
}

func symbolOf[D Dimension]() string {
	var d D
	return d.Symbol()
}

// DimensionInfo describes a dimension at runtime.
type DimensionInfo struct {
	Name     string
	Symbol   string
	Absolute bool

	linear func(name, symbol string, factor float64) AnyUnit
	affine func(name, symbol string, offset, step float64) AnyUnit
}

func describe[D Dimension]() DimensionInfo {
	return DimensionInfo{
		Name:   nameOf[D](),
		Symbol: symbolOf[D](),
		linear: func(name, symbol string, factor float64) AnyUnit {
			return NewLinear[D](name, symbol, factor)
		},
	}
}

func describeAbsolute[D Absolute]() DimensionInfo {
	info := describe[D]()
	info.Absolute = true
	info.affine = func(name, symbol string, offset, step float64) AnyUnit {
		return Affine[D]{name: name, symbol: symbol, offset: offset, step: step}
	}
	return info
}

// The opaque dimension has no units and is not listed.
var dimensionTable = []DimensionInfo{
	describe[DimensionlessDim](),
	describe[LengthDim](),
	describe[AreaDim](),
	describe[VolumeDim](),
	describe[TimeDim](),
	describe[FrequencyDim](),
	describe[FrequencyDriftDim](),
	describe[VelocityDim](),
	describe[AccelerationDim](),
	describe[MassDim](),
	describe[DensityDim](),
	describe[ForceDim](),
	describe[PressureDim](),
	describe[EnergyDim](),
	describe[PowerDim](),
	describe[MomentumDim](),
	describeAbsolute[TemperatureDim](),
	describe[TemperatureDifferenceDim](),
	describe[AngleDim](),
	describe[AngularVelocityDim](),
	describe[ElectricCurrentDim](),
	describe[ElectricChargeDim](),
	describe[VoltageDim](),
}

// Dimensions lists every dimension that has units, in declaration order.
func Dimensions() []DimensionInfo {
	out := make([]DimensionInfo, len(dimensionTable))
	copy(out, dimensionTable)
	return out
}

// LookupDimension returns the dimension with the given name.
func LookupDimension(name string) (DimensionInfo, bool) {
	for _, info := range dimensionTable {
		if info.Name == name {
			return info, true
		}
	}
	return DimensionInfo{}, false
}
