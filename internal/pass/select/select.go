// Package selectinstr implements L2 -> L3: the syntax-directed map from
// flat three-address assignments to virtual-register x86-like instructions
// (spec.md §4.4).
//
// Calls are resolved by inlining: L-virt's grammar (spec.md §3.4) keeps a
// program to one flat instruction list ending in Retq, with no call/return
// convention of its own. Per spec.md §9 ("implement Call only as far as
// the reference evaluator requires; a full ABI is outside the core"), this
// package inlines a callee's already-flattened body at every call site
// instead of emitting a real call instruction. Flatten gives every function
// the same temporary names ("retvar", ...), so each inlined callee's locals
// are renamed to call-site-unique names (see selectAssign's CallOp case).
// Only Read is lowered to an actual Callq, to
// the abstract read_int oracle (see DESIGN.md's resolution of the other
// open question in spec.md §9).
package selectinstr

import (
	"fmt"

	"lcc/internal/ir/flat"
	"lcc/internal/ir/virt"
	"lcc/internal/util"
)

const stage = "select"

// maxInlineDepth bounds call inlining; a program whose call graph requires
// deeper nesting is rejected as unsupported rather than inlined forever
// (spec.md's Call extension excludes recursion from the core).
const maxInlineDepth = 64

// Select lowers C-flat Program p to an L-virt Program.
func Select(p *flat.Program) (*virt.Program, error) {
	s := &selector{prog: p}
	if err := s.function(p.Main, nil, 0); err != nil {
		return nil, err
	}
	return &virt.Program{Instrs: s.instrs}, nil
}

type selector struct {
	prog   *flat.Program
	instrs []virt.Instr
	callID int
}

func (s *selector) emit(i virt.Instr) {
	s.instrs = append(s.instrs, i)
}

// function selects every instruction of f in order. subst rewrites a
// callee's own names to the caller-supplied argument names (used only when
// f is being inlined as a callee); depth bounds inlining recursion.
func (s *selector) function(f *flat.Function, subst map[string]string, depth int) error {
	if depth > maxInlineDepth {
		return util.NewError(util.UnsupportedForm, stage, f.Name)
	}
	rename := func(name string) string {
		if subst == nil {
			return name
		}
		if r, ok := subst[name]; ok {
			return r
		}
		return name
	}

	for _, instr := range f.Instrs {
		switch n := instr.(type) {
		case flat.Assign:
			dst := rename(n.Dst)
			if err := s.selectAssign(dst, n.RHS, rename, depth); err != nil {
				return err
			}
		case flat.Return:
			src := rename(n.Src)
			if depth == 0 {
				if src != virt.Retvar {
					s.emit(virt.Movq{Src: virt.VReg{Name: src}, Dst: virt.VReg{Name: virt.Retvar}})
				}
				s.emit(virt.Retq{})
			}
			// Inlined callee returns simply leave their value in `src`;
			// the call site's Assign reads it back (see selectAssign's
			// CallOp case).
		default:
			return util.NewError(util.IllFormed, stage, "unknown instruction variant")
		}
	}
	return nil
}

func (s *selector) selectAssign(dst string, rhs flat.RHS, rename func(string) string, depth int) error {
	d := virt.VReg{Name: dst}
	switch r := rhs.(type) {
	case flat.IntLit:
		s.emit(virt.Movq{Src: virt.Imm{Value: r.Value}, Dst: d})
	case flat.VarRef:
		s.emit(virt.Movq{Src: virt.VReg{Name: rename(r.Name)}, Dst: d})
	case flat.Negate:
		src := rename(r.Src)
		s.emit(virt.Movq{Src: virt.VReg{Name: src}, Dst: d})
		s.emit(virt.Negq{Dst: d})
	case flat.AddOp:
		left, right := rename(r.Left), rename(r.Right)
		// Commutativity-aware ordering (spec.md §4.4): load whichever
		// operand already coincides with the destination first, so the
		// other can be added in place.
		if left == dst {
			s.emit(virt.Movq{Src: virt.VReg{Name: left}, Dst: d})
			s.emit(virt.Addq{Src: virt.VReg{Name: right}, Dst: d})
		} else {
			s.emit(virt.Movq{Src: virt.VReg{Name: right}, Dst: d})
			s.emit(virt.Addq{Src: virt.VReg{Name: left}, Dst: d})
		}
	case flat.Read:
		s.emit(virt.Callq{Dst: d, Label: "read_int"})
	case flat.CallOp:
		callee := s.prog.Lookup(r.Fname)
		if callee == nil {
			return util.NewError(util.FunctionNotDefined, stage, r.Fname)
		}
		if len(callee.Formals) != len(r.Args) {
			return util.NewError(util.WrongArity, stage, r.Fname)
		}
		// Flatten names every function's temporaries the same way
		// ("retvar", "retvar-sum-rhs", ...), so two inlined call sites
		// would otherwise reuse identical names for unrelated, possibly
		// overlapping temporaries. Every callee local (including its
		// formals and its synthetic retvar) is therefore renamed to a
		// call-site-unique name before inlining, keyed by a monotonic
		// counter rather than by nesting depth (siblings share a depth).
		id := s.callID
		s.callID++
		inlineSubst := make(map[string]string, len(callee.Locals)+len(callee.Formals))
		for local := range callee.Locals {
			inlineSubst[local] = fmt.Sprintf("%s@%d", local, id)
		}
		for i, formal := range callee.Formals {
			inlineSubst[formal] = rename(r.Args[i])
		}
		calleeRetName := inlineSubst["retvar"]
		if err := s.function(callee, inlineSubst, depth+1); err != nil {
			return err
		}
		s.emit(virt.Movq{Src: virt.VReg{Name: calleeRetName}, Dst: d})
	default:
		return util.NewError(util.IllFormed, stage, "unknown rhs variant")
	}
	return nil
}
