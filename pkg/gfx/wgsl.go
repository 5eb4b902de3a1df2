package gfx

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"
)

// translateWGSL lowers WGSL text and emits the entry point of the requested
// stage as GLSL of the given dialect. Front-end failures surface as
// CompileError, the same as a driver-side rejection.
func translateWGSL(dialect glsl.Version, stage Stage, text string) (string, error) {
	ast, err := naga.Parse(text)
	if err != nil {
		return "", &CompileError{Stage: stage, Log: err.Error()}
	}
	module, err := naga.LowerWithSource(ast, text)
	if err != nil {
		return "", &CompileError{Stage: stage, Log: err.Error()}
	}

	entry, ok := entryPointFor(module, stage)
	if !ok {
		return "", &CompileError{Stage: stage, Log: fmt.Sprintf("no @%s entry point", stage)}
	}

	opts := glsl.DefaultOptions()
	opts.LangVersion = dialect
	opts.EntryPoint = entry
	out, _, err := glsl.Compile(module, opts)
	if err != nil {
		return "", &CompileError{Stage: stage, Log: err.Error()}
	}
	Logger().Debug("wgsl translated", "stage", stage, "entry", entry, "glsl", dialect.String())
	return out, nil
}

func entryPointFor(module *ir.Module, stage Stage) (string, bool) {
	want := ir.StageVertex
	if stage == StageFragment {
		want = ir.StageFragment
	}
	for _, ep := range module.EntryPoints {
		if ep.Stage == want {
			return ep.Name, true
		}
	}
	return "", false
}
