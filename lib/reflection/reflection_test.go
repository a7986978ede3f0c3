package reflection

import (
	"testing"

	"github.com/fosdem/glslbind/lib/shadertype"
	"github.com/stretchr/testify/assert"
)

func names(attribs []AttribInfo) []string {
	var out []string
	for _, a := range attribs {
		out = append(out, a.Name)
	}
	return out
}

func TestSortAttribsByLocation(t *testing.T) {
	attribs := []AttribInfo{
		{Name: "aUV", Type: shadertype.FloatVec2, Size: 1, Location: 2},
		{Name: "aPos", Type: shadertype.FloatVec3, Size: 1, Location: 0},
		{Name: "aTangent", Type: shadertype.FloatVec4, Size: 1, Location: 4},
		{Name: "aNormal", Type: shadertype.FloatVec3, Size: 1, Location: 1},
		{Name: "aColor", Type: shadertype.FloatVec4, Size: 1, Location: 3},
	}
	SortAttribs(attribs)
	assert.Equal(t, []string{"aPos", "aNormal", "aUV", "aColor", "aTangent"}, names(attribs))
}

func TestSortAttribsTiesByName(t *testing.T) {
	attribs := []AttribInfo{
		{Name: "b", Location: 1},
		{Name: "a", Location: 1},
		{Name: "c", Location: 0},
	}
	SortAttribs(attribs)
	assert.Equal(t, []string{"c", "a", "b"}, names(attribs))
}
