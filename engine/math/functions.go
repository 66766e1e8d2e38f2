package math

import (
	m "math"

	"golang.org/x/exp/rand"
)

const (
	// Pi is an approximate representation of PI.
	Pi float32 = 3.14159265358979323846
	// HalfPi is an approximate representation of PI divided by 2.
	HalfPi float32 = 0.5 * Pi
	// Deg2Rad converts degrees to radians when multiplied.
	Deg2Rad float32 = Pi / 180.0
)

func Sin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func Tan(x float32) float32 {
	return float32(m.Tan(float64(x)))
}

// RandomFloat returns a pseudo random value in the [0, 1) range.
func RandomFloat() float32 {
	return rand.Float32()
}

// RandomRange returns a pseudo random value in the [min, max) range.
func RandomRange(min, max float32) float32 {
	return min + rand.Float32()*(max-min)
}

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	var out Mat4
	out.Data[0] = 1
	out.Data[5] = 1
	out.Data[10] = 1
	out.Data[15] = 1
	return out
}

// Mat4Mul returns a * b.
func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a.Data[k*4+row] * b.Data[col*4+k]
			}
			out.Data[col*4+row] = sum
		}
	}
	return out
}

// Mat4Perspective returns a right-handed perspective projection with a
// -1..1 clip depth range.
func Mat4Perspective(fovRadians, aspect, near, far float32) Mat4 {
	f := 1.0 / Tan(fovRadians*0.5)
	var out Mat4
	out.Data[0] = f / aspect
	out.Data[5] = f
	out.Data[10] = (far + near) / (near - far)
	out.Data[11] = -1
	out.Data[14] = (2 * far * near) / (near - far)
	return out
}

// Mat4Translation returns a translation matrix.
func Mat4Translation(position Vec3) Mat4 {
	out := Mat4Identity()
	out.Data[12] = position.X
	out.Data[13] = position.Y
	out.Data[14] = position.Z
	return out
}

// Mat4Scale returns a scale matrix.
func Mat4Scale(scale Vec3) Mat4 {
	var out Mat4
	out.Data[0] = scale.X
	out.Data[5] = scale.Y
	out.Data[10] = scale.Z
	out.Data[15] = 1
	return out
}

// Mat4EulerZ returns a rotation matrix around the Z axis.
func Mat4EulerZ(angleRadians float32) Mat4 {
	out := Mat4Identity()
	c := Cos(angleRadians)
	s := Sin(angleRadians)
	out.Data[0] = c
	out.Data[1] = s
	out.Data[4] = -s
	out.Data[5] = c
	return out
}
