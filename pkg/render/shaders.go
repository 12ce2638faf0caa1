package render

// Uniform names shared by both programs
const (
	UniformMVP   = "mvp"
	UniformColor = "color"
)

// FillMode describes what a program's fragment stage outputs. Devices that
// cannot compile GLSL emulate the fragment stage from it.
type FillMode int

const (
	FillUniformColor FillMode = iota // opaque color from the color uniform
	FillBlack                        // opaque black, no color input
)

// ProgramSource is the immutable description of one GPU program
type ProgramSource struct {
	Name     string
	Vertex   string
	Fragment string
	Fill     FillMode
}

const positionVertexShader = `#version 410 core
layout (location = 0) in vec3 position;

uniform mat4 mvp;

void main() {
    gl_Position = mvp * vec4(position, 1.0);
}
` + "\x00"

const solidFragmentShader = `#version 410 core
uniform vec3 color;

out vec4 fragColor;

void main() {
    fragColor = vec4(color, 1.0);
}
` + "\x00"

const outlineFragmentShader = `#version 410 core
out vec4 fragColor;

void main() {
    fragColor = vec4(0.0, 0.0, 0.0, 1.0);
}
` + "\x00"

var (
	// SolidProgram fills triangles with the uniform base color
	SolidProgram = ProgramSource{
		Name:     "solid",
		Vertex:   positionVertexShader,
		Fragment: solidFragmentShader,
		Fill:     FillUniformColor,
	}

	// OutlineProgram draws edges in opaque black
	OutlineProgram = ProgramSource{
		Name:     "outline",
		Vertex:   positionVertexShader,
		Fragment: outlineFragmentShader,
		Fill:     FillBlack,
	}
)
