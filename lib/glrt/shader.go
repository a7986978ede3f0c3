package glrt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileError carries the info log of a failed compile or link.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Stage, strings.TrimRight(e.Log, "\x00\n "))
}

// AttribLocations maps attribute names to the location they are bound to
// before the program is linked.
type AttribLocations map[string]uint32

// Shader is a linked vertex+fragment program.
type Shader struct {
	program   uint32
	locations map[string]int32
}

// CompileShader compiles and links a program. Attribute locations in
// attribs are bound before linking; pass nil to let the driver choose.
func CompileShader(vertexSource, fragmentSource string, attribs AttribLocations) (*Shader, error) {
	vertexShader, err := compileStage(vertexSource, gl.VERTEX_SHADER, "compile vertex shader")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileStage(fragmentSource, gl.FRAGMENT_SHADER, "compile fragment shader")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)

	names := make([]string, 0, len(attribs))
	for name := range attribs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		gl.BindAttribLocation(program, attribs[name], gl.Str(name+"\x00"))
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		logmsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
		gl.DeleteProgram(program)

		return nil, &CompileError{Stage: "link program", Log: logmsg}
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	return &Shader{program: program, locations: make(map[string]int32)}, nil
}

func compileStage(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	if shader == 0 {
		return 0, fmt.Errorf("could not create shader object for %s", stage)
	}

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
		gl.DeleteShader(shader)

		return 0, &CompileError{Stage: stage, Log: clog}
	}

	return shader, nil
}

// Program returns the GL program name.
func (s *Shader) Program() uint32 {
	return s.program
}

func (s *Shader) Use() {
	gl.UseProgram(s.program)
}

// UniformLocation returns the location of the named uniform, or -1 if the
// program has no such active uniform.
func (s *Shader) UniformLocation(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

// SetUniforms uploads every uniform to the program. Texture handles are
// bound to consecutive texture units starting at 0.
func (s *Shader) SetUniforms(uniforms []NamedUniform) error {
	s.Use()
	st := uploadState{}
	for _, u := range uniforms {
		if u.Value == nil {
			return fmt.Errorf("uniform %s has no value", u.Name)
		}
		loc := s.UniformLocation(u.Name)
		if loc == -1 {
			continue
		}
		u.Value.upload(loc, &st)
	}
	return checkError("upload uniforms")
}

func (s *Shader) Delete() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("could not %s: GL error 0x%04x", op, code)
	}
	return nil
}
