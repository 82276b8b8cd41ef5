package quantity

import "math"

// Time units.
var (
	Second      = NewLinear[TimeDim]("second", "s", 1)
	Millisecond = NewLinear[TimeDim]("millisecond", "ms", 1e-3)
	Microsecond = NewLinear[TimeDim]("microsecond", "µs", 1e-6)
	Nanosecond  = NewLinear[TimeDim]("nanosecond", "ns", 1e-9)
	Minute      = NewLinear[TimeDim]("minute", "min", 60)
	Hour        = NewLinear[TimeDim]("hour", "h", 3600)
	Day         = NewLinear[TimeDim]("day", "d", 86400)
)

var (
	OneSecond      = Second.Of(1)
	OneMillisecond = Millisecond.Of(1)
	OneMicrosecond = Microsecond.Of(1)
	OneNanosecond  = Nanosecond.Of(1)
	OneMinute      = Minute.Of(1)
	OneHour        = Hour.Of(1)
	OneDay         = Day.Of(1)
)

var timeUnits = []AnyUnit{Second, Millisecond, Microsecond, Nanosecond, Minute, Hour, Day}

// Frequency units.
var (
	Hertz     = NewLinear[FrequencyDim]("hertz", "Hz", 1)
	Kilohertz = NewLinear[FrequencyDim]("kilohertz", "kHz", 1e3)
	Megahertz = NewLinear[FrequencyDim]("megahertz", "MHz", 1e6)
	Gigahertz = NewLinear[FrequencyDim]("gigahertz", "GHz", 1e9)
	PerMinute = NewLinear[FrequencyDim]("per_minute", "1/min", 1.0 / 60)
)

var (
	OneHertz     = Hertz.Of(1)
	OneKilohertz = Kilohertz.Of(1)
	OneMegahertz = Megahertz.Of(1)
	OneGigahertz = Gigahertz.Of(1)
	OnePerMinute = PerMinute.Of(1)
)

var frequencyUnits = []AnyUnit{Hertz, Kilohertz, Megahertz, Gigahertz, PerMinute}

// FrequencyDrift units.
var (
	HertzPerSecond     = NewLinear[FrequencyDriftDim]("hertz_per_second", "Hz/s", 1)
	KilohertzPerSecond = NewLinear[FrequencyDriftDim]("kilohertz_per_second", "kHz/s", 1e3)
	HertzPerMinute     = NewLinear[FrequencyDriftDim]("hertz_per_minute", "Hz/min", 1.0 / 60)
)

var (
	OneHertzPerSecond     = HertzPerSecond.Of(1)
	OneKilohertzPerSecond = KilohertzPerSecond.Of(1)
	OneHertzPerMinute     = HertzPerMinute.Of(1)
)

var frequencyDriftUnits = []AnyUnit{HertzPerSecond, KilohertzPerSecond, HertzPerMinute}

// Velocity units.
var (
	MeterPerSecond   = NewLinear[VelocityDim]("meter_per_second", "m/s", 1)
	KilometerPerHour = NewLinear[VelocityDim]("kilometer_per_hour", "km/h", 1 / 3.6)
	MilePerHour      = NewLinear[VelocityDim]("mile_per_hour", "mph", 0.44704)
	Knot             = NewLinear[VelocityDim]("knot", "kn", 1852.0 / 3600)
	FootPerSecond    = NewLinear[VelocityDim]("foot_per_second", "ft/s", 0.3048)
)

var (
	OneMeterPerSecond   = MeterPerSecond.Of(1)
	OneKilometerPerHour = KilometerPerHour.Of(1)
	OneMilePerHour      = MilePerHour.Of(1)
	OneKnot             = Knot.Of(1)
	OneFootPerSecond    = FootPerSecond.Of(1)
)

var velocityUnits = []AnyUnit{MeterPerSecond, KilometerPerHour, MilePerHour, Knot, FootPerSecond}

// Acceleration units.
var (
	MeterPerSecondSquared = NewLinear[AccelerationDim]("meter_per_second_squared", "m/s²", 1)
	StandardGravity       = NewLinear[AccelerationDim]("standard_gravity", "g0", 9.80665)
	FootPerSecondSquared  = NewLinear[AccelerationDim]("foot_per_second_squared", "ft/s²", 0.3048)
)

var (
	OneMeterPerSecondSquared = MeterPerSecondSquared.Of(1)
	OneStandardGravity       = StandardGravity.Of(1)
	OneFootPerSecondSquared  = FootPerSecondSquared.Of(1)
)

var accelerationUnits = []AnyUnit{MeterPerSecondSquared, StandardGravity, FootPerSecondSquared}

// AngularVelocity units.
var (
	RadianPerSecond     = NewLinear[AngularVelocityDim]("radian_per_second", "rad/s", 1)
	DegreePerSecond     = NewLinear[AngularVelocityDim]("degree_per_second", "°/s", math.Pi / 180)
	RevolutionPerMinute = NewLinear[AngularVelocityDim]("revolution_per_minute", "rpm", 2 * math.Pi / 60)
)

var (
	OneRadianPerSecond     = RadianPerSecond.Of(1)
	OneDegreePerSecond     = DegreePerSecond.Of(1)
	OneRevolutionPerMinute = RevolutionPerMinute.Of(1)
)

var angularVelocityUnits = []AnyUnit{RadianPerSecond, DegreePerSecond, RevolutionPerMinute}
