// Package shadertype maps GLSL type tokens reported by program
// introspection to the Go types used in generated bindings.
package shadertype

import "fmt"

// Token is a GLSL type enum as returned by glGetActiveUniform and
// glGetActiveAttrib. The values are the OpenGL enum values.
type Token uint32

// Supported tokens.
const (
	Int       Token = 0x1404
	Float     Token = 0x1406
	FloatVec2 Token = 0x8B50
	FloatVec3 Token = 0x8B51
	FloatVec4 Token = 0x8B52
	FloatMat4 Token = 0x8B5C
	Sampler2D Token = 0x8B5E
)

// names covers the tokens a driver is likely to report, supported or not,
// so diagnostics can name them.
var names = map[Token]string{
	Int:       "INT",
	Float:     "FLOAT",
	FloatVec2: "FLOAT_VEC2",
	FloatVec3: "FLOAT_VEC3",
	FloatVec4: "FLOAT_VEC4",
	FloatMat4: "FLOAT_MAT4",
	Sampler2D: "SAMPLER_2D",

	0x1405: "UNSIGNED_INT",
	0x140A: "DOUBLE",
	0x8B53: "INT_VEC2",
	0x8B54: "INT_VEC3",
	0x8B55: "INT_VEC4",
	0x8B56: "BOOL",
	0x8B57: "BOOL_VEC2",
	0x8B58: "BOOL_VEC3",
	0x8B59: "BOOL_VEC4",
	0x8B5A: "FLOAT_MAT2",
	0x8B5B: "FLOAT_MAT3",
	0x8B5D: "SAMPLER_1D",
	0x8B5F: "SAMPLER_3D",
	0x8B60: "SAMPLER_CUBE",
	0x8B62: "SAMPLER_2D_SHADOW",
	0x8DC6: "UNSIGNED_INT_VEC2",
	0x8DC7: "UNSIGNED_INT_VEC3",
	0x8DC8: "UNSIGNED_INT_VEC4",
}

func (t Token) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("0x%04x", uint32(t))
}

// UnsupportedTypeError is returned for tokens outside the supported set.
type UnsupportedTypeError struct {
	Token Token
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Unsupported shader type: %s", e.Token)
}

type mapping struct {
	host  string
	kind  string
	slots uint32
}

var table = map[Token]mapping{
	Float:     {"float32", "Float", 1},
	FloatVec2: {"[2]float32", "Vec2", 1},
	FloatVec3: {"[3]float32", "Vec3", 1},
	FloatVec4: {"[4]float32", "Vec4", 1},
	// column-major, same layout as mgl32.Mat4
	FloatMat4: {"[16]float32", "Mat4x4", 4},
	Sampler2D: {"uint32", "TextureHandle", 1},
	Int:       {"int32", "Int", 1},
}

// HostType returns the Go type expression used for struct fields and
// buffer elements of the given token.
func HostType(t Token) (string, error) {
	m, ok := table[t]
	if !ok {
		return "", &UnsupportedTypeError{Token: t}
	}
	return m.host, nil
}

// UniformKind returns the name of the glrt uniform kind used to upload a
// value of the given token.
func UniformKind(t Token) (string, error) {
	m, ok := table[t]
	if !ok {
		return "", &UnsupportedTypeError{Token: t}
	}
	return m.kind, nil
}

// Slots returns how many consecutive attribute locations a vertex
// attribute of the given token occupies.
func Slots(t Token) (uint32, error) {
	m, ok := table[t]
	if !ok {
		return 0, &UnsupportedTypeError{Token: t}
	}
	return m.slots, nil
}

// Supported reports whether t can be emitted.
func Supported(t Token) bool {
	_, ok := table[t]
	return ok
}
