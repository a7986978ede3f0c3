// Package reflection defines what the generator needs from a graphics
// runtime: compile a shader pair and list the program's active uniforms
// and vertex attributes.
package reflection

import (
	"sort"

	"github.com/fosdem/glslbind/lib/shadertype"
)

// UniformInfo describes one active uniform.
type UniformInfo struct {
	Name string
	Type shadertype.Token
	Size int32
}

// AttribInfo describes one active vertex attribute. Location is the slot
// the driver assigned when the program was linked.
type AttribInfo struct {
	Name     string
	Type     shadertype.Token
	Size     int32
	Location int32
}

// Reflector compiles shader pairs.
type Reflector interface {
	Compile(vertSource, fragSource string) (Program, error)
}

// Program is a compiled program that can be introspected.
type Program interface {
	// Uniforms returns the active uniforms in the driver's index order.
	Uniforms() ([]UniformInfo, error)
	// AttributesSorted returns the active attributes ordered with
	// SortAttribs. Generated vertex arrays bind buffers in this order.
	AttributesSorted() ([]AttribInfo, error)
	Delete()
}

// SortAttribs orders attributes by location, then by name.
func SortAttribs(attribs []AttribInfo) {
	sort.SliceStable(attribs, func(i, j int) bool {
		if attribs[i].Location != attribs[j].Location {
			return attribs[i].Location < attribs[j].Location
		}
		return attribs[i].Name < attribs[j].Name
	})
}
