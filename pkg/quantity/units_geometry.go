package quantity

import "math"

// Dimensionless units.
var (
	Unity          = NewLinear[DimensionlessDim]("unity", "", 1)
	Percent        = NewLinear[DimensionlessDim]("percent", "%", 1e-2)
	PartPerMillion = NewLinear[DimensionlessDim]("part_per_million", "ppm", 1e-6)
)

var (
	OneUnity          = Unity.Of(1)
	OnePercent        = Percent.Of(1)
	OnePartPerMillion = PartPerMillion.Of(1)
)

var dimensionlessUnits = []AnyUnit{Unity, Percent, PartPerMillion}

// Length units.
var (
	Meter        = NewLinear[LengthDim]("meter", "m", 1)
	Kilometer    = NewLinear[LengthDim]("kilometer", "km", 1e3)
	Centimeter   = NewLinear[LengthDim]("centimeter", "cm", 1e-2)
	Millimeter   = NewLinear[LengthDim]("millimeter", "mm", 1e-3)
	Micrometer   = NewLinear[LengthDim]("micrometer", "µm", 1e-6)
	Inch         = NewLinear[LengthDim]("inch", "in", 0.0254)
	Foot         = NewLinear[LengthDim]("foot", "ft", 0.3048)
	Yard         = NewLinear[LengthDim]("yard", "yd", 0.9144)
	Mile         = NewLinear[LengthDim]("mile", "mi", 1609.344)
	NauticalMile = NewLinear[LengthDim]("nautical_mile", "nmi", 1852)
)

var (
	OneMeter        = Meter.Of(1)
	OneKilometer    = Kilometer.Of(1)
	OneCentimeter   = Centimeter.Of(1)
	OneMillimeter   = Millimeter.Of(1)
	OneMicrometer   = Micrometer.Of(1)
	OneInch         = Inch.Of(1)
	OneFoot         = Foot.Of(1)
	OneYard         = Yard.Of(1)
	OneMile         = Mile.Of(1)
	OneNauticalMile = NauticalMile.Of(1)
)

var lengthUnits = []AnyUnit{Meter, Kilometer, Centimeter, Millimeter, Micrometer, Inch, Foot, Yard, Mile, NauticalMile}

// Area units.
var (
	SquareMeter      = NewLinear[AreaDim]("square_meter", "m²", 1)
	SquareKilometer  = NewLinear[AreaDim]("square_kilometer", "km²", 1e6)
	SquareCentimeter = NewLinear[AreaDim]("square_centimeter", "cm²", 1e-4)
	Hectare          = NewLinear[AreaDim]("hectare", "ha", 1e4)
	Acre             = NewLinear[AreaDim]("acre", "ac", 4046.8564224)
	SquareFoot       = NewLinear[AreaDim]("square_foot", "ft²", 0.09290304)
)

var (
	OneSquareMeter      = SquareMeter.Of(1)
	OneSquareKilometer  = SquareKilometer.Of(1)
	OneSquareCentimeter = SquareCentimeter.Of(1)
	OneHectare          = Hectare.Of(1)
	OneAcre             = Acre.Of(1)
	OneSquareFoot       = SquareFoot.Of(1)
)

var areaUnits = []AnyUnit{SquareMeter, SquareKilometer, SquareCentimeter, Hectare, Acre, SquareFoot}

// Volume units.
var (
	CubicMeter      = NewLinear[VolumeDim]("cubic_meter", "m³", 1)
	Liter           = NewLinear[VolumeDim]("liter", "L", 1e-3)
	Milliliter      = NewLinear[VolumeDim]("milliliter", "mL", 1e-6)
	CubicCentimeter = NewLinear[VolumeDim]("cubic_centimeter", "cm³", 1e-6)
	USGallon        = NewLinear[VolumeDim]("us_gallon", "gal", 3.785411784e-3)
	CubicFoot       = NewLinear[VolumeDim]("cubic_foot", "ft³", 0.028316846592)
)

var (
	OneCubicMeter      = CubicMeter.Of(1)
	OneLiter           = Liter.Of(1)
	OneMilliliter      = Milliliter.Of(1)
	OneCubicCentimeter = CubicCentimeter.Of(1)
	OneUSGallon        = USGallon.Of(1)
	OneCubicFoot       = CubicFoot.Of(1)
)

var volumeUnits = []AnyUnit{CubicMeter, Liter, Milliliter, CubicCentimeter, USGallon, CubicFoot}

// Angle units.
var (
	Radian     = NewLinear[AngleDim]("radian", "rad", 1)
	Degree     = NewLinear[AngleDim]("degree", "°", math.Pi / 180)
	Gradian    = NewLinear[AngleDim]("gradian", "grad", math.Pi / 200)
	Revolution = NewLinear[AngleDim]("revolution", "rev", 2 * math.Pi)
	Arcminute  = NewLinear[AngleDim]("arcminute", "arcmin", math.Pi / 10800)
	Arcsecond  = NewLinear[AngleDim]("arcsecond", "arcsec", math.Pi / 648000)
)

var (
	OneRadian     = Radian.Of(1)
	OneDegree     = Degree.Of(1)
	OneGradian    = Gradian.Of(1)
	OneRevolution = Revolution.Of(1)
	OneArcminute  = Arcminute.Of(1)
	OneArcsecond  = Arcsecond.Of(1)
)

var angleUnits = []AnyUnit{Radian, Degree, Gradian, Revolution, Arcminute, Arcsecond}
