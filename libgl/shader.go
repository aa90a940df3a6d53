package libgl

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"opengl-sandbox/liblog"
)

// ShaderProgram wraps a linked vertex+fragment program and caches uniform
// locations by name.
type ShaderProgram struct {
	glId     uint32
	name     string
	uniforms map[string]int32
	log      liblog.Logger
}

// NewShaderProgram compiles and links the two stages. logger may be nil or
// liblog.Discard when missing-uniform warnings are not wanted.
func NewShaderProgram(name, vertexSrc, fragmentSrc string, logger liblog.Logger) (*ShaderProgram, error) {
	if logger == nil {
		logger = liblog.Discard
	}

	vert, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, fmt.Errorf("%v vertex stage: %w", name, err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("%v fragment stage: %w", name, err)
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)

	var ok int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		defer gl.DeleteProgram(id)
		return nil, fmt.Errorf("failed to link %v shader, log: %v", name, readProgramInfoLog(id))
	}

	return &ShaderProgram{
		glId:     id,
		name:     name,
		uniforms: map[string]int32{},
		log:      logger,
	}, nil
}

func compileShader(stage uint32, source string) (uint32, error) {
	id := gl.CreateShader(stage)
	cstrs, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, cstrs, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		defer gl.DeleteShader(id)
		return 0, fmt.Errorf("failed to compile, log: %v", readShaderInfoLog(id))
	}
	return id, nil
}

func readProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func readShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)

	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (prog *ShaderProgram) Id() uint32 {
	return prog.glId
}

func (prog *ShaderProgram) Name() string {
	return prog.name
}

func (prog *ShaderProgram) Use() {
	gl.UseProgram(prog.glId)
}

func (prog *ShaderProgram) Delete() {
	gl.DeleteProgram(prog.glId)
	prog.glId = 0
}

func (prog *ShaderProgram) UniformLocation(name string) int32 {
	if location, ok := prog.uniforms[name]; ok {
		return location
	}

	location := gl.GetUniformLocation(prog.glId, gl.Str(name+"\x00"))
	prog.uniforms[name] = location

	if location == -1 {
		prog.log.Logf("%v shader: could not get location of %q", prog.name, name)
	}
	return location
}

// SetUniform sets a uniform on the program, which must currently be in use.
func (prog *ShaderProgram) SetUniform(name string, value any) {
	location := prog.UniformLocation(name)
	if location == -1 {
		return
	}

	switch v := value.(type) {
	case bool:
		var i int32
		if v {
			i = 1
		}
		gl.Uniform1i(location, i)
	case int:
		gl.Uniform1i(location, int32(v))
	case int32:
		gl.Uniform1i(location, v)
	case uint32:
		gl.Uniform1ui(location, v)
	case float32:
		gl.Uniform1f(location, v)
	case mgl32.Vec2:
		gl.Uniform2f(location, v.X(), v.Y())
	case mgl32.Vec3:
		gl.Uniform3f(location, v.X(), v.Y(), v.Z())
	case mgl32.Vec4:
		gl.Uniform4f(location, v.X(), v.Y(), v.Z(), v.W())
	case mgl32.Mat3:
		gl.UniformMatrix3fv(location, 1, false, &v[0])
	case mgl32.Mat4:
		gl.UniformMatrix4fv(location, 1, false, &v[0])
	default:
		log.Panicf("Unsupported uniform type %T", value)
	}
}
