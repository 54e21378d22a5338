package gamemath

import "math"

// MinimumVelocityVectorDelta is the component magnitude under which a ball
// is considered to travel parallel to a wall.
const MinimumVelocityVectorDelta = 0.01

// ClampPaddleX returns pointerX limited to [minBound, maxBound].
func ClampPaddleX(pointerX, minBound, maxBound float64) float64 {
	if pointerX < minBound {
		return minBound
	}
	if pointerX > maxBound {
		return maxBound
	}
	return pointerX
}

// EnforceMinimumSpeed rescales v to exactly minSpeed when it is slower,
// keeping its direction. A zero vector has no direction and is returned as is.
func EnforceMinimumSpeed(v Vector, minSpeed float64) Vector {
	speed := v.Length()
	if speed == 0 || speed >= minSpeed {
		return v
	}
	return v.Scale(minSpeed / speed)
}

// ApproachMinimumSpeed raises the magnitude of v toward minSpeed by at most
// accel*dt, keeping its direction. It never overshoots minSpeed and never
// slows a vector down.
func ApproachMinimumSpeed(v Vector, minSpeed, accel, dt float64) Vector {
	speed := v.Length()
	if speed == 0 || speed >= minSpeed {
		return v
	}
	target := math.Min(minSpeed, speed+accel*dt)
	return v.Scale(target / speed)
}

// NudgeAxis adds magnitude*direction to component when its absolute value is
// below epsilon. direction is +1 or -1.
func NudgeAxis(component, direction, magnitude, epsilon float64) float64 {
	if math.Abs(component) >= epsilon {
		return component
	}
	return component + direction*magnitude
}

// Bounce returns speed pointing away from a surface: positive when
// awayPositive is set, negative otherwise. Magnitude is preserved.
func Bounce(speed float64, awayPositive bool) float64 {
	if awayPositive {
		return math.Abs(speed)
	}
	return -math.Abs(speed)
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Reflect mirrors v about the surface with unit normal n when v heads into
// that surface. A vector already moving away is returned unchanged.
func Reflect(v, n Vector) Vector {
	d := v.Dot(n)
	if d >= 0 {
		return v
	}
	return v.Add(n.Scale(-2 * d))
}
