package gfx

import "strings"

// Program is a linked vertex + fragment pair.
type Program struct {
	ctx Context
	id  ProgramID
}

func (p *Program) ID() ProgramID { return p.id }

// Release deletes the driver object. Safe to call more than once.
func (p *Program) Release() {
	if p == nil || p.id == 0 {
		return
	}
	p.ctx.DeleteProgram(p.id)
	p.id = 0
}

// Link attaches vs and fs and links them. Stage pairing is left to the
// driver. The shader units are released on return whatever the outcome:
// once attached they are owned by the program.
func Link(ctx Context, vs, fs *Shader) (*Program, error) {
	defer vs.Release()
	defer fs.Release()

	id := ctx.CreateProgram()
	if id == 0 {
		return nil, &AllocationError{Object: "program"}
	}
	ctx.AttachShader(id, vs.id)
	ctx.AttachShader(id, fs.id)
	ctx.LinkProgram(id)
	if ctx.GetProgrami(id, LINK_STATUS) == 0 {
		log := strings.TrimSpace(ctx.GetProgramInfoLog(id))
		ctx.DeleteProgram(id)
		if log == "" {
			log = unknownLinkError
		}
		return nil, &LinkError{Log: log}
	}
	Logger().Debug("program linked", "id", id)
	return &Program{ctx: ctx, id: id}, nil
}
