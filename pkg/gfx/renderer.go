package gfx

import "log/slog"

// Renderer owns a rendering context, one linked program and one vertex
// buffer. It is not safe for concurrent use: drive it from the goroutine
// that owns the surface.
type Renderer struct {
	ctx      Context
	program  *Program
	buffer   *VertexBuffer
	viewport Viewport
	log      *slog.Logger
	closed   bool
}

type rendererOptions struct {
	vertex   Source
	fragment Source
	log      *slog.Logger
}

// Option customizes NewRenderer.
type Option func(*rendererOptions)

// WithShaders replaces the built-in shader pair.
func WithShaders(vertex, fragment Source) Option {
	return func(o *rendererOptions) {
		o.vertex = vertex
		o.fragment = fragment
	}
}

// WithLogger sets the logger of one renderer. Defaults to Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *rendererOptions) {
		o.log = l
	}
}

// NewRenderer acquires a context from surface and builds the program and
// vertex buffer. On error nothing is returned and every driver object
// created along the way has been deleted.
func NewRenderer(surface Surface, opts ...Option) (r *Renderer, err error) {
	o := rendererOptions{
		vertex:   DefaultVertexShader(),
		fragment: DefaultFragmentShader(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = Logger()
	}

	ctx, err := surface.Context()
	if err != nil {
		return nil, &ContextUnavailableError{Err: err}
	}
	if ctx == nil {
		return nil, &ContextUnavailableError{}
	}

	var (
		vs, fs  *Shader
		program *Program
		buffer  *VertexBuffer
	)
	defer func() {
		if err == nil {
			return
		}
		vs.Release()
		fs.Release()
		program.Release()
		buffer.Release()
		o.log.Debug("renderer construction rolled back", "err", err)
	}()

	if vs, err = Compile(ctx, StageVertex, o.vertex); err != nil {
		return nil, err
	}
	if fs, err = Compile(ctx, StageFragment, o.fragment); err != nil {
		return nil, err
	}
	if program, err = Link(ctx, vs, fs); err != nil {
		return nil, err
	}
	if buffer, err = AllocateVertexBuffer(ctx); err != nil {
		return nil, err
	}

	o.log.Info("renderer ready", "program", program.ID(), "buffer", buffer.ID(), "glsl", ctx.ShadingLanguage().String())
	return &Renderer{
		ctx:     ctx,
		program: program,
		buffer:  buffer,
		log:     o.log,
	}, nil
}

// Resize sets the viewport to (0, 0, width, height). Hosts call it whenever
// the drawable size changes.
func (r *Renderer) Resize(width, height uint32) {
	if r.closed {
		return
	}
	r.ctx.Viewport(0, 0, int(width), int(height))
	r.viewport.resize(width, height)
}

// Viewport returns the rectangle of the last Resize.
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Clear fills the color buffer with opaque black.
func (r *Renderer) Clear() {
	if r.closed {
		return
	}
	r.clear()
}

func (r *Renderer) clear() {
	r.ctx.ClearColor(0, 0, 0, 1)
	r.ctx.Clear(COLOR_BUFFER_BIT)
}

// SetVertices replaces the vertex buffer content. data holds xyz triples.
func (r *Renderer) SetVertices(data []float32) error {
	if r.closed {
		return nil
	}
	return r.buffer.Upload(data)
}

// Render clears the frame and draws vertexCount vertices from the buffer
// as a triangle list. vertexCount is not checked against the uploaded data;
// the driver decides what an overrun does.
func (r *Renderer) Render(vertexCount int32) {
	if r.closed {
		return
	}
	if int(vertexCount) > r.buffer.Vertices() {
		r.log.Warn("draw exceeds uploaded vertices", "count", vertexCount, "uploaded", r.buffer.Vertices())
	}

	r.clear()
	r.ctx.UseProgram(r.program.ID())
	r.ctx.EnableVertexAttribArray(PositionLocation)
	r.ctx.BindBuffer(ARRAY_BUFFER, r.buffer.ID())
	r.ctx.VertexAttribPointer(PositionLocation, FloatsPerVertex, FLOAT, false, 0, 0)
	r.ctx.DrawArrays(TRIANGLES, 0, int(vertexCount))
}

// Close deletes the program and the vertex buffer. Later calls on the
// renderer are no-ops.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.program.Release()
	r.buffer.Release()
	r.closed = true
	r.log.Info("renderer closed")
}
