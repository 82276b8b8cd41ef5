package quantity

// AsTemperatureDifference reinterprets an absolute temperature as the
// distance from absolute zero.
func AsTemperatureDifference(t Temperature) TemperatureDifference {
	return TemperatureDifference{si: t.si}
}

// AsTemperature reinterprets a difference as the temperature that lies d
// above absolute zero.
func AsTemperature(d TemperatureDifference) Temperature {
	return Temperature{si: d.si}
}

// TemperatureShift returns t moved by d.
func TemperatureShift(t Temperature, d TemperatureDifference) Temperature {
	return Temperature{si: t.si + d.si}
}

// TemperatureSpan returns a - b.
func TemperatureSpan(a, b Temperature) TemperatureDifference {
	return TemperatureDifference{si: a.si - b.si}
}
