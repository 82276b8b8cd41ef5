package quantity

// Mass units.
var (
	Kilogram  = NewLinear[MassDim]("kilogram", "kg", 1)
	Gram      = NewLinear[MassDim]("gram", "g", 1e-3)
	Milligram = NewLinear[MassDim]("milligram", "mg", 1e-6)
	Tonne     = NewLinear[MassDim]("tonne", "t", 1e3)
	Pound     = NewLinear[MassDim]("pound", "lb", 0.45359237)
	Ounce     = NewLinear[MassDim]("ounce", "oz", 0.028349523125)
)

var (
	OneKilogram  = Kilogram.Of(1)
	OneGram      = Gram.Of(1)
	OneMilligram = Milligram.Of(1)
	OneTonne     = Tonne.Of(1)
	OnePound     = Pound.Of(1)
	OneOunce     = Ounce.Of(1)
)

var massUnits = []AnyUnit{Kilogram, Gram, Milligram, Tonne, Pound, Ounce}

// Density units.
var (
	KilogramPerCubicMeter  = NewLinear[DensityDim]("kilogram_per_cubic_meter", "kg/m³", 1)
	GramPerCubicCentimeter = NewLinear[DensityDim]("gram_per_cubic_centimeter", "g/cm³", 1e3)
	GramPerLiter           = NewLinear[DensityDim]("gram_per_liter", "g/L", 1)
)

var (
	OneKilogramPerCubicMeter  = KilogramPerCubicMeter.Of(1)
	OneGramPerCubicCentimeter = GramPerCubicCentimeter.Of(1)
	OneGramPerLiter           = GramPerLiter.Of(1)
)

var densityUnits = []AnyUnit{KilogramPerCubicMeter, GramPerCubicCentimeter, GramPerLiter}

// Force units.
var (
	Newton     = NewLinear[ForceDim]("newton", "N", 1)
	Kilonewton = NewLinear[ForceDim]("kilonewton", "kN", 1e3)
	Dyne       = NewLinear[ForceDim]("dyne", "dyn", 1e-5)
	PoundForce = NewLinear[ForceDim]("pound_force", "lbf", 4.4482216152605)
)

var (
	OneNewton     = Newton.Of(1)
	OneKilonewton = Kilonewton.Of(1)
	OneDyne       = Dyne.Of(1)
	OnePoundForce = PoundForce.Of(1)
)

var forceUnits = []AnyUnit{Newton, Kilonewton, Dyne, PoundForce}

// Pressure units.
var (
	Pascal              = NewLinear[PressureDim]("pascal", "Pa", 1)
	Kilopascal          = NewLinear[PressureDim]("kilopascal", "kPa", 1e3)
	Bar                 = NewLinear[PressureDim]("bar", "bar", 1e5)
	Atmosphere          = NewLinear[PressureDim]("atmosphere", "atm", 101325)
	PoundPerSquareInch  = NewLinear[PressureDim]("pound_per_square_inch", "psi", 6894.757293168)
	MillimeterOfMercury = NewLinear[PressureDim]("millimeter_of_mercury", "mmHg", 133.322387415)
)

var (
	OnePascal              = Pascal.Of(1)
	OneKilopascal          = Kilopascal.Of(1)
	OneBar                 = Bar.Of(1)
	OneAtmosphere          = Atmosphere.Of(1)
	OnePoundPerSquareInch  = PoundPerSquareInch.Of(1)
	OneMillimeterOfMercury = MillimeterOfMercury.Of(1)
)

var pressureUnits = []AnyUnit{Pascal, Kilopascal, Bar, Atmosphere, PoundPerSquareInch, MillimeterOfMercury}

// Energy units.
var (
	Joule              = NewLinear[EnergyDim]("joule", "J", 1)
	Kilojoule          = NewLinear[EnergyDim]("kilojoule", "kJ", 1e3)
	Megajoule          = NewLinear[EnergyDim]("megajoule", "MJ", 1e6)
	Calorie            = NewLinear[EnergyDim]("calorie", "cal", 4.184)
	Kilocalorie        = NewLinear[EnergyDim]("kilocalorie", "kcal", 4184)
	WattHour           = NewLinear[EnergyDim]("watt_hour", "Wh", 3600)
	KilowattHour       = NewLinear[EnergyDim]("kilowatt_hour", "kWh", 3.6e6)
	Electronvolt       = NewLinear[EnergyDim]("electronvolt", "eV", 1.602176634e-19)
	BritishThermalUnit = NewLinear[EnergyDim]("british_thermal_unit", "BTU", 1055.05585262)
)

var (
	OneJoule              = Joule.Of(1)
	OneKilojoule          = Kilojoule.Of(1)
	OneMegajoule          = Megajoule.Of(1)
	OneCalorie            = Calorie.Of(1)
	OneKilocalorie        = Kilocalorie.Of(1)
	OneWattHour           = WattHour.Of(1)
	OneKilowattHour       = KilowattHour.Of(1)
	OneElectronvolt       = Electronvolt.Of(1)
	OneBritishThermalUnit = BritishThermalUnit.Of(1)
)

var energyUnits = []AnyUnit{Joule, Kilojoule, Megajoule, Calorie, Kilocalorie, WattHour, KilowattHour, Electronvolt, BritishThermalUnit}

// Power units.
var (
	Watt       = NewLinear[PowerDim]("watt", "W", 1)
	Kilowatt   = NewLinear[PowerDim]("kilowatt", "kW", 1e3)
	Megawatt   = NewLinear[PowerDim]("megawatt", "MW", 1e6)
	Horsepower = NewLinear[PowerDim]("horsepower", "hp", 745.6998715822702)
)

var (
	OneWatt       = Watt.Of(1)
	OneKilowatt   = Kilowatt.Of(1)
	OneMegawatt   = Megawatt.Of(1)
	OneHorsepower = Horsepower.Of(1)
)

var powerUnits = []AnyUnit{Watt, Kilowatt, Megawatt, Horsepower}

// Momentum units.
var (
	NewtonSecond           = NewLinear[MomentumDim]("newton_second", "N·s", 1)
	KilogramMeterPerSecond = NewLinear[MomentumDim]("kilogram_meter_per_second", "kg·m/s", 1)
)

var (
	OneNewtonSecond           = NewtonSecond.Of(1)
	OneKilogramMeterPerSecond = KilogramMeterPerSecond.Of(1)
)

var momentumUnits = []AnyUnit{NewtonSecond, KilogramMeterPerSecond}
