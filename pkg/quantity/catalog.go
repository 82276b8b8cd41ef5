package quantity

var builtinUnits = [][]AnyUnit{
	dimensionlessUnits,
	lengthUnits,
	areaUnits,
	volumeUnits,
	timeUnits,
	frequencyUnits,
	frequencyDriftUnits,
	velocityUnits,
	accelerationUnits,
	massUnits,
	densityUnits,
	forceUnits,
	pressureUnits,
	energyUnits,
	powerUnits,
	momentumUnits,
	temperatureUnits,
	temperatureDifferenceUnits,
	angleUnits,
	angularVelocityUnits,
	electricCurrentUnits,
	electricChargeUnits,
	voltageUnits,
}

// Catalog returns every built-in unit, grouped by dimension in the order of
// Dimensions. The SI unit comes first in each group.
func Catalog() []AnyUnit {
	var out []AnyUnit
	for _, group := range builtinUnits {
		out = append(out, group...)
	}
	return out
}

// UnitsOf returns the built-in units of the named dimension.
func UnitsOf(dimension string) []AnyUnit {
	var out []AnyUnit
	for _, group := range builtinUnits {
		if len(group) > 0 && group[0].Dimension() == dimension {
			out = append(out, group...)
		}
	}
	return out
}
