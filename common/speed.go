package common

const SpeedOfWalkingMin = 0.23 // or 0.8 km/h or 0.5 mph
const SpeedOfWalkingSlow = 0.5 // or 1.8 km/h or 1.1 mph
const SpeedOfWalkingMean = 1.2 // or 4.3 km/h or 2.7 mph
const SpeedOfWalkingFast = 1.5 // or 5.4 km/h or 3.4 mph
const SpeedOfWalkingMax = 1.78 // or 6.4 km/h or 4 mph

const SpeedOfRunningMin = 2.23 // or 8 km/h or 5 mph
const SpeedOfRunningMax = 5.56 // or 20 km/h or 12 mph
var SpeedOfRunningMean = 3.35  // or 12 km/h or 7.5 mph or 8min/mile

const SpeedOfCyclingMin = SpeedOfRunningMin
const SpeedOfCyclingMax = 11.76 // or 42 km/h or 26 mph
var SpeedOfCyclingMean = 5.36   // or 19.3 km/h or 12 mph

// PaceToSpeed converts a pace in minutes/kilometer to meters/second.
func PaceToSpeed(minPerKm float64) float64 {
	if minPerKm <= 0 {
		return 0
	}
	return 1000 / (minPerKm * 60)
}

// SpeedToPace converts meters/second to minutes/kilometer.
func SpeedToPace(metersPerSecond float64) float64 {
	if metersPerSecond <= 0 {
		return 0
	}
	return 1000 / (metersPerSecond * 60)
}
