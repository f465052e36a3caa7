package graphics

import (
	"fmt"

	"mini-rt/internal/framebuffer"
	"mini-rt/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Fullscreen triangle generated from gl_VertexID; no vertex buffer needed.
// Texture row 0 holds the top of the image, so v is flipped.
const presentVertexShader = `#version 410 core
out vec2 uv;
void main() {
	vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
	uv = vec2(pos.x, 1.0 - pos.y);
	gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
`

const presentFragmentShader = `#version 410 core
in vec2 uv;
uniform sampler2D frame;
out vec4 fragColor;
void main() {
	fragColor = texture(frame, uv);
}
`

// Presenter streams a framebuffer into a texture and draws it over the whole window.
type Presenter struct {
	window  *Window
	shader  *Shader
	texture uint32
	vao     uint32
	width   int
	height  int
}

// NewPresenter allocates a width x height streaming texture. It must run on the
// thread that owns the window's GL context.
func NewPresenter(window *Window, width, height int) (*Presenter, error) {
	shader, err := NewShader(presentVertexShader, presentFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("present shader: %w", err)
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	if texture == 0 {
		shader.Delete()
		return nil, fmt.Errorf("create texture %dx%d failed", width, height)
	}
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
		gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, nil)
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &texture)
		shader.Delete()
		return nil, fmt.Errorf("allocate texture %dx%d: gl error 0x%x", width, height, code)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	// core profile refuses draws without a bound VAO
	var vao uint32
	gl.GenVertexArrays(1, &vao)

	shader.Use()
	shader.SetInt("frame", 0)
	gl.ClearColor(0, 0, 0, 1)

	return &Presenter{
		window:  window,
		shader:  shader,
		texture: texture,
		vao:     vao,
		width:   width,
		height:  height,
	}, nil
}

// Present uploads fb and swaps. fb must match the size given to NewPresenter
// and must not be written until Present returns.
func (p *Presenter) Present(fb *framebuffer.Framebuffer) {
	defer profiling.Track("frame.Present")()

	fbw, fbh := p.window.FramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	// 0xAARRGGBB words read as B,G,R,A bytes on little-endian hosts; the _REV
	// packed type makes the upload endian-independent
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(p.width), int32(p.height),
		gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, gl.Ptr(fb.Pix))

	p.shader.Use()
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)

	p.window.SwapBuffers()
}

// Delete releases the GL objects.
func (p *Presenter) Delete() {
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteTextures(1, &p.texture)
	p.shader.Delete()
}
