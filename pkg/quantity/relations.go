package quantity

import "math"

// Each function below has a matching edge in Derivations.

func inv(v float64) float64    { return 1 / v }
func square(v float64) float64 { return v * v }
func cube(v float64) float64   { return v * v * v }

// FrequencyFromTime returns 1/t. A zero period gives +Inf.
func FrequencyFromTime(t Time) Frequency { return retag[FrequencyDim](t, inv) }

// TimeFromFrequency returns 1/f. A zero frequency gives +Inf.
func TimeFromFrequency(f Frequency) Time { return retag[TimeDim](f, inv) }

// FrequencyDriftFromFrequency returns f².
func FrequencyDriftFromFrequency(f Frequency) FrequencyDrift {
	return retag[FrequencyDriftDim](f, square)
}

// FrequencyFromFrequencyDrift returns √d; negative drifts give NaN.
func FrequencyFromFrequencyDrift(d FrequencyDrift) Frequency {
	return retag[FrequencyDim](d, math.Sqrt)
}

// AreaFromLength returns the area of a square with side l.
func AreaFromLength(l Length) Area { return retag[AreaDim](l, square) }

// LengthFromArea returns the side of a square of area a.
func LengthFromArea(a Area) Length { return retag[LengthDim](a, math.Sqrt) }

// AreaFromLengths returns the area of a w×h rectangle.
func AreaFromLengths(w, h Length) Area { return product[AreaDim](w, h) }

// VolumeFromLength returns the volume of a cube with side l.
func VolumeFromLength(l Length) Volume { return retag[VolumeDim](l, cube) }

// LengthFromVolume returns the real cube root of v, keeping its sign.
func LengthFromVolume(v Volume) Length { return retag[LengthDim](v, math.Cbrt) }

// VolumeFromAreaLength returns the volume of a prism with base a and height l.
func VolumeFromAreaLength(a Area, l Length) Volume { return product[VolumeDim](a, l) }

// LengthFromVolumeArea returns the height of a prism of volume v over base a.
func LengthFromVolumeArea(v Volume, a Area) Length { return quotient[LengthDim](v, a) }

// VelocityFromLengthTime returns the average speed covering l in t.
func VelocityFromLengthTime(l Length, t Time) Velocity { return quotient[VelocityDim](l, t) }

// VelocityFromLengthFrequency returns l·f, e.g. wavelength times frequency.
func VelocityFromLengthFrequency(l Length, f Frequency) Velocity {
	return product[VelocityDim](l, f)
}

// LengthFromVelocityTime returns the distance covered at v over t.
func LengthFromVelocityTime(v Velocity, t Time) Length { return product[LengthDim](v, t) }

// TimeFromLengthVelocity returns the time needed to cover l at v.
func TimeFromLengthVelocity(l Length, v Velocity) Time { return quotient[TimeDim](l, v) }

// AccelerationFromVelocityTime returns the average acceleration that changes speed by v over t.
func AccelerationFromVelocityTime(v Velocity, t Time) Acceleration {
	return quotient[AccelerationDim](v, t)
}

// VelocityFromAccelerationTime returns the speed gained at a over t.
func VelocityFromAccelerationTime(a Acceleration, t Time) Velocity {
	return product[VelocityDim](a, t)
}

// ForceFromMassAcceleration returns the force that gives m the acceleration a.
func ForceFromMassAcceleration(m Mass, a Acceleration) Force { return product[ForceDim](m, a) }

// AccelerationFromForceMass returns the acceleration f gives to m.
func AccelerationFromForceMass(f Force, m Mass) Acceleration {
	return quotient[AccelerationDim](f, m)
}

// MassFromForceAcceleration returns the mass that f accelerates at a.
func MassFromForceAcceleration(f Force, a Acceleration) Mass { return quotient[MassDim](f, a) }

// MomentumFromMassVelocity returns the momentum of m moving at v.
func MomentumFromMassVelocity(m Mass, v Velocity) Momentum { return product[MomentumDim](m, v) }

// VelocityFromMomentumMass returns the speed of m carrying momentum p.
func VelocityFromMomentumMass(p Momentum, m Mass) Velocity { return quotient[VelocityDim](p, m) }

// ForceFromMomentumTime returns the average force that changes momentum by
// p over t.
func ForceFromMomentumTime(p Momentum, t Time) Force { return quotient[ForceDim](p, t) }

// EnergyFromForceLength returns the work done by f over l.
func EnergyFromForceLength(f Force, l Length) Energy { return product[EnergyDim](f, l) }

// ForceFromEnergyLength returns the average force that does work e over l.
func ForceFromEnergyLength(e Energy, l Length) Force { return quotient[ForceDim](e, l) }

// PowerFromEnergyTime returns the average power delivering e over t.
func PowerFromEnergyTime(e Energy, t Time) Power { return quotient[PowerDim](e, t) }

// EnergyFromPowerTime returns the energy delivered at p over t.
func EnergyFromPowerTime(p Power, t Time) Energy { return product[EnergyDim](p, t) }

// TimeFromEnergyPower returns the time needed to deliver e at p.
func TimeFromEnergyPower(e Energy, p Power) Time { return quotient[TimeDim](e, p) }

// PowerFromForceVelocity returns the power of f acting at speed v.
func PowerFromForceVelocity(f Force, v Velocity) Power { return product[PowerDim](f, v) }

// PressureFromForceArea returns the pressure of f spread over a.
func PressureFromForceArea(f Force, a Area) Pressure { return quotient[PressureDim](f, a) }

// ForceFromPressureArea returns the force p exerts on a.
func ForceFromPressureArea(p Pressure, a Area) Force { return product[ForceDim](p, a) }

// EnergyFromPressureVolume returns the work of p acting across v.
func EnergyFromPressureVolume(p Pressure, v Volume) Energy { return product[EnergyDim](p, v) }

// DensityFromMassVolume returns the density of m filling v.
func DensityFromMassVolume(m Mass, v Volume) Density { return quotient[DensityDim](m, v) }

// MassFromDensityVolume returns the mass of v at density d.
func MassFromDensityVolume(d Density, v Volume) Mass { return product[MassDim](d, v) }

// VolumeFromMassDensity returns the volume m occupies at density d.
func VolumeFromMassDensity(m Mass, d Density) Volume { return quotient[VolumeDim](m, d) }

// AngularVelocityFromAngleTime returns the average rate of turning through a in t.
func AngularVelocityFromAngleTime(a Angle, t Time) AngularVelocity {
	return quotient[AngularVelocityDim](a, t)
}

// AngleFromAngularVelocityTime returns the angle turned at w over t.
func AngleFromAngularVelocityTime(w AngularVelocity, t Time) Angle {
	return product[AngleDim](w, t)
}

// ElectricChargeFromCurrentTime returns the charge carried by i over t.
func ElectricChargeFromCurrentTime(i ElectricCurrent, t Time) ElectricCharge {
	return product[ElectricChargeDim](i, t)
}

// ElectricCurrentFromChargeTime returns the average current moving q in t.
func ElectricCurrentFromChargeTime(q ElectricCharge, t Time) ElectricCurrent {
	return quotient[ElectricCurrentDim](q, t)
}

// PowerFromVoltageCurrent returns the electrical power of i flowing through u.
func PowerFromVoltageCurrent(u Voltage, i ElectricCurrent) Power {
	return product[PowerDim](u, i)
}

// VoltageFromPowerCurrent returns the voltage that delivers p at current i.
func VoltageFromPowerCurrent(p Power, i ElectricCurrent) Voltage {
	return quotient[VoltageDim](p, i)
}

// ElectricCurrentFromPowerVoltage returns the current that delivers p at voltage u.
func ElectricCurrentFromPowerVoltage(p Power, u Voltage) ElectricCurrent {
	return quotient[ElectricCurrentDim](p, u)
}

// EnergyFromChargeVoltage returns the energy of q moved through u.
func EnergyFromChargeVoltage(q ElectricCharge, u Voltage) Energy {
	return product[EnergyDim](q, u)
}

// VoltageFromEnergyCharge returns the voltage that gives q the energy e.
func VoltageFromEnergyCharge(e Energy, q ElectricCharge) Voltage {
	return quotient[VoltageDim](e, q)
}
