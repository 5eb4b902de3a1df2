package gfx

// Vertex layout of every VertexBuffer: tightly packed xyz float32 triples
// bound to attribute location 0.
const (
	FloatsPerVertex  = 3
	PositionLocation = 0
)

// VertexBuffer holds the position data drawn by the renderer.
type VertexBuffer struct {
	ctx      Context
	id       BufferID
	vertices int
}

// AllocateVertexBuffer creates an empty buffer object.
func AllocateVertexBuffer(ctx Context) (*VertexBuffer, error) {
	id := ctx.CreateBuffer()
	if id == 0 {
		return nil, &AllocationError{Object: "buffer"}
	}
	return &VertexBuffer{ctx: ctx, id: id}, nil
}

func (b *VertexBuffer) ID() BufferID { return b.id }

// Vertices reports how many whole vertices the last upload carried.
func (b *VertexBuffer) Vertices() int { return b.vertices }

// Upload replaces the whole buffer content with data.
func (b *VertexBuffer) Upload(data []float32) error {
	b.ctx.BindBuffer(ARRAY_BUFFER, b.id)
	b.ctx.BufferData(ARRAY_BUFFER, data, STATIC_DRAW)
	switch code := b.ctx.GetError(); code {
	case NO_ERROR:
	case OUT_OF_MEMORY:
		b.vertices = 0
		return &AllocationError{Object: "buffer storage"}
	default:
		Logger().Warn("unexpected driver error after upload", "code", code)
	}
	if len(data)%FloatsPerVertex != 0 {
		Logger().Warn("vertex data is not a whole number of xyz triples", "floats", len(data))
	}
	b.vertices = len(data) / FloatsPerVertex
	Logger().Debug("vertices uploaded", "buffer", b.id, "vertices", b.vertices)
	return nil
}

// Release deletes the driver object. Safe to call more than once.
func (b *VertexBuffer) Release() {
	if b == nil || b.id == 0 {
		return
	}
	b.ctx.DeleteBuffer(b.id)
	b.id = 0
}
