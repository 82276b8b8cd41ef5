package quantity

// ElectricCurrent units.
var (
	Ampere      = NewLinear[ElectricCurrentDim]("ampere", "A", 1)
	Milliampere = NewLinear[ElectricCurrentDim]("milliampere", "mA", 1e-3)
	Kiloampere  = NewLinear[ElectricCurrentDim]("kiloampere", "kA", 1e3)
)

var (
	OneAmpere      = Ampere.Of(1)
	OneMilliampere = Milliampere.Of(1)
	OneKiloampere  = Kiloampere.Of(1)
)

var electricCurrentUnits = []AnyUnit{Ampere, Milliampere, Kiloampere}

// ElectricCharge units.
var (
	Coulomb         = NewLinear[ElectricChargeDim]("coulomb", "C", 1)
	AmpereHour      = NewLinear[ElectricChargeDim]("ampere_hour", "Ah", 3600)
	MilliampereHour = NewLinear[ElectricChargeDim]("milliampere_hour", "mAh", 3.6)
)

var (
	OneCoulomb         = Coulomb.Of(1)
	OneAmpereHour      = AmpereHour.Of(1)
	OneMilliampereHour = MilliampereHour.Of(1)
)

var electricChargeUnits = []AnyUnit{Coulomb, AmpereHour, MilliampereHour}

// Voltage units.
var (
	Volt      = NewLinear[VoltageDim]("volt", "V", 1)
	Millivolt = NewLinear[VoltageDim]("millivolt", "mV", 1e-3)
	Kilovolt  = NewLinear[VoltageDim]("kilovolt", "kV", 1e3)
)

var (
	OneVolt      = Volt.Of(1)
	OneMillivolt = Millivolt.Of(1)
	OneKilovolt  = Kilovolt.Of(1)
)

var voltageUnits = []AnyUnit{Volt, Millivolt, Kilovolt}
