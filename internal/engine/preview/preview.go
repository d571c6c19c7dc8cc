// Package preview renders the ornament instance batch with a single
// instanced draw call per frame.
package preview

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/engine/shader"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/logger"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/binding"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/design"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/ornament"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/placement"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

const floatSize = 4

// instanceFloats is one instance slot in the stream buffer:
// model matrix (16) followed by RGB color (3).
const instanceFloats = 19

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in mat4 aModel;
layout (location = 6) in vec3 aColor;

uniform mat4 uParent;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec3 vColor;

void main() {
	mat4 world = uParent * aModel;
	gl_Position = uProjection * uView * world * vec4(aPos, 1.0);
	vNormal = mat3(world) * aNormal;
	vColor = aColor;
}
`

const fragmentShaderSource = `
#version 410 core

in vec3 vNormal;
in vec3 vColor;

uniform vec3  uLightDir;
uniform float uRoughness;
uniform float uMetalness;
uniform vec3  uBaseColor;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	float diffuse = max(dot(n, -uLightDir), 0.0);
	vec3 tint = mix(vColor, vColor * uBaseColor, uMetalness);
	float shininess = mix(64.0, 4.0, uRoughness);
	float spec = pow(max(dot(reflect(uLightDir, n), vec3(0.0, 0.0, 1.0)), 0.0), shininess);
	vec3 lit = tint * (0.25 + 0.75 * diffuse) + vec3(spec) * (1.0 - uRoughness) * 0.4;
	FragColor = vec4(lit, 1.0);
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer draws the shared ornament mesh once per instance slot. The
// mesh geometry is uploaded once per design change; the instance stream
// (transform + color) is re-uploaded every frame.
type Renderer struct {
	config Config

	program     uint32
	vao         uint32
	meshVBO     uint32
	meshEBO     uint32
	instanceVBO uint32

	indexCount    int32
	instanceCount int32

	// instanceData and instanceCapacity back the per-frame stream
	// upload without reallocating when the count is stable.
	instanceData     []float32
	instanceCapacity int

	material design.Material
	lightDir xmath.Vec3

	uParent     int32
	uView       int32
	uProjection int32
	uLightDir   int32
	uRoughness  int32
	uMetalness  int32
	uBaseColor  int32
}

// New creates the preview renderer.
// Must be called AFTER the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		material: design.Default().Material,
		lightDir: xmath.Vec3{X: -0.4, Y: -0.6, Z: -0.7}.Normalize(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.06, 0.06, 0.09, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	program, err := shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("preview shader: %w", err)
	}
	r.program = program

	r.uParent = shader.MustGetUniform(program, "uParent")
	r.uView = shader.MustGetUniform(program, "uView")
	r.uProjection = shader.MustGetUniform(program, "uProjection")
	r.uLightDir = shader.GetUniform(program, "uLightDir")
	r.uRoughness = shader.GetUniform(program, "uRoughness")
	r.uMetalness = shader.GetUniform(program, "uMetalness")
	r.uBaseColor = shader.GetUniform(program, "uBaseColor")

	r.createBuffers()
	return r, nil
}

// createBuffers sets up the VAO with the static mesh layout and the
// instanced attribute layout. Data is uploaded later.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Mesh vertices: position + normal, interleaved.
	gl.GenBuffers(1, &r.meshVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*floatSize, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*floatSize, unsafe.Pointer(uintptr(3*floatSize)))
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &r.meshEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.meshEBO)

	// Instance stream: mat4 occupies four vec4 attribute slots.
	gl.GenBuffers(1, &r.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	stride := int32(instanceFloats * floatSize)
	for i := uint32(0); i < 4; i++ {
		loc := 2 + i
		gl.VertexAttribPointer(loc, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(i*4*floatSize)))
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribDivisor(loc, 1)
	}
	gl.VertexAttribPointer(6, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(16*floatSize)))
	gl.EnableVertexAttribArray(6)
	gl.VertexAttribDivisor(6, 1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("preview buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("meshVBO", r.meshVBO),
		zap.Uint32("instanceVBO", r.instanceVBO),
	)
}

// SetMesh uploads the shared ornament geometry. Called once per shape
// or resolution change, not per frame.
func (r *Renderer) SetMesh(mesh *ornament.Mesh) error {
	if mesh == nil || len(mesh.Indices) == 0 {
		return fmt.Errorf("preview: empty ornament mesh")
	}

	vertices := make([]float32, 0, len(mesh.Positions)*6)
	for i, p := range mesh.Positions {
		n := mesh.Normals[i]
		vertices = append(vertices, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.meshEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	r.indexCount = int32(len(mesh.Indices))
	logger.Debug("ornament mesh uploaded",
		zap.Int("vertices", len(mesh.Positions)),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	return nil
}

// SetMaterial updates the shared surface response for all instances.
func (r *Renderer) SetMaterial(m design.Material) {
	r.material = m
}

// UpdateInstances rebuilds and uploads the per-instance stream. When
// transforms is non-nil (tracking active) it supplies the pose for each
// slot; otherwise the rest transform from placement is used.
func (r *Renderer) UpdateInstances(set *placement.InstanceSet, transforms []binding.InstanceTransform) {
	count := set.Len()
	r.instanceCount = int32(count)
	if count == 0 {
		return
	}

	r.instanceData = r.instanceData[:0]
	for i, inst := range set.Instances {
		var model xmath.Mat4
		if transforms != nil && i < len(transforms) {
			t := transforms[i]
			model = xmath.Translate(t.Position.X, t.Position.Y, t.Position.Z).
				Mul(t.Rotation.ToMat4()).
				Mul(xmath.Scale(t.Scale, t.Scale, t.Scale))
		} else {
			model = inst.RestTransform
		}
		r.instanceData = append(r.instanceData, model[:]...)
		r.instanceData = append(r.instanceData, inst.Color.R, inst.Color.G, inst.Color.B)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	if count > r.instanceCapacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(r.instanceData)*floatSize, unsafe.Pointer(&r.instanceData[0]), gl.DYNAMIC_DRAW)
		r.instanceCapacity = count
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.instanceData)*floatSize, unsafe.Pointer(&r.instanceData[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("preview resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw clears the frame and issues the instanced draw. parent carries
// the head pose so every instance moves rigidly with the face.
func (r *Renderer) Draw(parent, view, projection xmath.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.indexCount == 0 || r.instanceCount == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uParent, 1, false, parent.Ptr())
	gl.UniformMatrix4fv(r.uView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.uProjection, 1, false, projection.Ptr())
	gl.Uniform3f(r.uLightDir, r.lightDir.X, r.lightDir.Y, r.lightDir.Z)
	gl.Uniform1f(r.uRoughness, r.material.Roughness)
	gl.Uniform1f(r.uMetalness, r.material.Metalness)
	gl.Uniform3f(r.uBaseColor, r.material.BaseColor.R, r.material.BaseColor.G, r.material.BaseColor.B)

	gl.BindVertexArray(r.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil, r.instanceCount)
	gl.BindVertexArray(0)
}

// Close cleans up GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing preview renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.meshVBO != 0 {
		gl.DeleteBuffers(1, &r.meshVBO)
	}
	if r.meshEBO != 0 {
		gl.DeleteBuffers(1, &r.meshEBO)
	}
	if r.instanceVBO != 0 {
		gl.DeleteBuffers(1, &r.instanceVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
