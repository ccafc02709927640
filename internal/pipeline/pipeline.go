// Package pipeline wires the five compiler passes into the single
// end-to-end run the cmd/compile driver invokes: uniquify, flatten,
// select-instructions, assign-homes, patch (spec.md §2, §5).
package pipeline

import (
	"fmt"
	"io"

	"lcc/internal/ir/ast"
	"lcc/internal/ir/flat"
	"lcc/internal/ir/mem"
	"lcc/internal/ir/virt"
	"lcc/internal/pass/assign"
	"lcc/internal/pass/flatten"
	"lcc/internal/pass/patch"
	selectinstr "lcc/internal/pass/select"
	"lcc/internal/pass/uniquify"
)

// Result carries every intermediate program produced along the way, so
// callers (the -v diagnostics path, tests) can inspect any stage without
// recompiling.
type Result struct {
	Src  *ast.Program
	Uniq *ast.Program
	Flat *flat.Program
	Virt *virt.Program
	Mem  *mem.Program // L-mem, pre-patch
	Asm  *mem.Program // L-asm, post-patch
}

// Compile runs the full pipeline over src. When verbose is non-nil, each
// stage's IR is printed to it as soon as it is produced, matching the
// driver's -v behavior.
func Compile(src *ast.Program, verbose io.Writer) (*Result, error) {
	r := &Result{Src: src}

	if err := ast.CheckForm(src); err != nil {
		return r, fmt.Errorf("check-form (L-src): %w", err)
	}
	logStage(verbose, "L-src", ast.Print(src))

	uniq, err := uniquify.Uniquify(src)
	if err != nil {
		return r, fmt.Errorf("uniquify: %w", err)
	}
	r.Uniq = uniq
	if err := ast.CheckForm(uniq); err != nil {
		return r, fmt.Errorf("check-form (L-uniq): %w", err)
	}
	if err := ast.CheckUnique(uniq); err != nil {
		return r, fmt.Errorf("check-unique (L-uniq): %w", err)
	}
	logStage(verbose, "L-uniq", ast.Print(uniq))

	flattened := flatten.Flatten(uniq)
	r.Flat = flattened
	if err := flat.CheckForm(flattened); err != nil {
		return r, fmt.Errorf("check-form (C-flat): %w", err)
	}
	logStage(verbose, "C-flat", flat.Print(flattened))

	virtProg, err := selectinstr.Select(flattened)
	if err != nil {
		return r, fmt.Errorf("select-instructions: %w", err)
	}
	r.Virt = virtProg
	if err := virt.CheckForm(virtProg); err != nil {
		return r, fmt.Errorf("check-form (L-virt): %w", err)
	}
	logStage(verbose, "L-virt", virt.Print(virtProg))

	memProg, err := assign.AssignHomes(virtProg)
	if err != nil {
		return r, fmt.Errorf("assign-homes: %w", err)
	}
	r.Mem = memProg
	if err := mem.CheckForm(memProg); err != nil {
		return r, fmt.Errorf("check-form (L-mem): %w", err)
	}
	logStage(verbose, "L-mem", mem.Print(memProg))

	asmProg := patch.Patch(memProg)
	r.Asm = asmProg
	if err := mem.CheckAsmForm(asmProg); err != nil {
		return r, fmt.Errorf("check-form (L-asm): %w", err)
	}
	logStage(verbose, "L-asm", mem.Print(asmProg))

	return r, nil
}

func logStage(w io.Writer, stage, text string) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "--- %s ---\n%s\n", stage, text)
}
