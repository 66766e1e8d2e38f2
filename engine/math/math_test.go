package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-5

func TestMat4MulIdentity(t *testing.T) {
	m := Mat4Translation(Vec3{X: 1, Y: 2, Z: 3})

	assert.Equal(t, m, Mat4Mul(Mat4Identity(), m))
	assert.Equal(t, m, Mat4Mul(m, Mat4Identity()))
}

func TestMat4TranslationLayout(t *testing.T) {
	m := Mat4Translation(Vec3{X: 4, Y: 5, Z: 6})

	// Column-major: translation lives in the last column.
	assert.Equal(t, float32(4), m.Data[12])
	assert.Equal(t, float32(5), m.Data[13])
	assert.Equal(t, float32(6), m.Data[14])
	assert.Equal(t, float32(1), m.Data[15])
}

func TestMat4MulComposesTranslations(t *testing.T) {
	a := Mat4Translation(Vec3{X: 1, Y: 0, Z: 0})
	b := Mat4Translation(Vec3{X: 2, Y: 3, Z: 0})

	m := Mat4Mul(a, b)
	assert.InDelta(t, 3, m.Data[12], epsilon)
	assert.InDelta(t, 3, m.Data[13], epsilon)
}

func TestMat4EulerZQuarterTurn(t *testing.T) {
	m := Mat4EulerZ(HalfPi)

	assert.InDelta(t, 0, m.Data[0], epsilon)
	assert.InDelta(t, 1, m.Data[1], epsilon)
	assert.InDelta(t, -1, m.Data[4], epsilon)
	assert.InDelta(t, 0, m.Data[5], epsilon)
}

func TestMat4Perspective(t *testing.T) {
	m := Mat4Perspective(HalfPi, 16.0/9.0, 0.1, 100)

	assert.InDelta(t, -1, m.Data[11], epsilon)
	assert.Zero(t, m.Data[15])
	assert.Less(t, m.Data[10], float32(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(10, 0, 5))
	assert.Equal(t, 0, Clamp(-3, 0, 5))
	assert.Equal(t, 3, Clamp(3, 0, 5))
	assert.Equal(t, float32(1.5), Clamp(float32(1.5), 1.0, 2.0))
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 0, Lerp(0, 10, 0), epsilon)
	assert.InDelta(t, 10, Lerp(0, 10, 1), epsilon)
	assert.InDelta(t, 5, Lerp(0, 10, 0.5), epsilon)
}

func TestRandomRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomRange(-2, 2)
		assert.GreaterOrEqual(t, v, float32(-2))
		assert.Less(t, v, float32(2))
	}
}

func TestFloatsReturnsAllElements(t *testing.T) {
	m := Mat4Identity()
	fs := m.Floats()
	assert.Len(t, fs, 16)
	assert.Equal(t, float32(1), fs[0])
}
