package shadertype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostTypeAndKind(t *testing.T) {
	cases := []struct {
		token Token
		host  string
		kind  string
	}{
		{Float, "float32", "Float"},
		{FloatVec2, "[2]float32", "Vec2"},
		{FloatVec3, "[3]float32", "Vec3"},
		{FloatVec4, "[4]float32", "Vec4"},
		{FloatMat4, "[16]float32", "Mat4x4"},
		{Sampler2D, "uint32", "TextureHandle"},
		{Int, "int32", "Int"},
	}
	for _, c := range cases {
		t.Run(c.token.String(), func(t *testing.T) {
			host, err := HostType(c.token)
			require.NoError(t, err)
			assert.Equal(t, c.host, host)

			kind, err := UniformKind(c.token)
			require.NoError(t, err)
			assert.Equal(t, c.kind, kind)

			assert.True(t, Supported(c.token))
		})
	}
}

func TestSlots(t *testing.T) {
	slots, err := Slots(FloatMat4)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), slots)

	slots, err = Slots(FloatVec3)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), slots)

	_, err = Slots(Token(0x8B56))
	assert.Error(t, err)
}

func TestUnsupportedToken(t *testing.T) {
	const boolToken Token = 0x8B56

	_, err := HostType(boolToken)
	require.Error(t, err)
	assert.Equal(t, "Unsupported shader type: BOOL", err.Error())

	_, err = UniformKind(boolToken)
	var typeErr *UnsupportedTypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, boolToken, typeErr.Token)
	assert.False(t, Supported(boolToken))
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "SAMPLER_2D", Sampler2D.String())
	assert.Equal(t, "FLOAT_MAT3", Token(0x8B5B).String())
	assert.Equal(t, "0x1234", Token(0x1234).String())
}
