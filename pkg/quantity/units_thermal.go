package quantity

// TemperatureDifference units.
var (
	DeltaKelvin     = NewLinear[TemperatureDifferenceDim]("delta_kelvin", "ΔK", 1)
	DeltaCelsius    = NewLinear[TemperatureDifferenceDim]("delta_celsius", "Δ°C", 1)
	DeltaFahrenheit = NewLinear[TemperatureDifferenceDim]("delta_fahrenheit", "Δ°F", 5.0 / 9)
	DeltaRankine    = NewLinear[TemperatureDifferenceDim]("delta_rankine", "Δ°R", 5.0 / 9)
)

var (
	OneDeltaKelvin     = DeltaKelvin.Of(1)
	OneDeltaCelsius    = DeltaCelsius.Of(1)
	OneDeltaFahrenheit = DeltaFahrenheit.Of(1)
	OneDeltaRankine    = DeltaRankine.Of(1)
)

var temperatureDifferenceUnits = []AnyUnit{DeltaKelvin, DeltaCelsius, DeltaFahrenheit, DeltaRankine}

// Temperature units. Offsets are in the unit itself, so Celsius sits
// -273.15 °C away from absolute zero.
var (
	Kelvin     = NewAffine[TemperatureDim]("kelvin", "K", 0, DeltaKelvin)
	Celsius    = NewAffine[TemperatureDim]("celsius", "°C", -273.15, DeltaCelsius)
	Fahrenheit = NewAffine[TemperatureDim]("fahrenheit", "°F", -459.67, DeltaFahrenheit)
	Rankine    = NewAffine[TemperatureDim]("rankine", "°R", 0, DeltaRankine)
)

var (
	OneKelvin     = Kelvin.Of(1)
	OneCelsius    = Celsius.Of(1)
	OneFahrenheit = Fahrenheit.Of(1)
	OneRankine    = Rankine.Of(1)
)

var temperatureUnits = []AnyUnit{Kelvin, Celsius, Fahrenheit, Rankine}
