// Package llvmdump renders L-virt as textual LLVM IR, purely as a
// side-by-side debugging aid for comparing the allocator's input against a
// real optimizing backend. It sits outside the correctness-critical path:
// the pipeline's output assembly never passes through this package.
//
// Grounded on the teacher's src/ir/llvm/transform.go, which walks the
// syntax tree with an llvm.Builder against a single llvm.Module. This
// version drops the teacher's parallel-worker/symTab-mutex machinery
// (transform.go shards work across goroutines because it lowers an entire
// program's worth of global declarations) since one L-virt program lowers
// to one straight-line function with no cross-function symbol table to
// share.
package llvmdump

import (
	"os"

	"tinygo.org/x/go-llvm"

	"lcc/internal/ir/virt"
)

// Write lowers p to a single LLVM function named "lvirt_main" and writes
// its textual IR representation to path.
func Write(p *virt.Program, path string) error {
	ctx := llvm.NewContext()
	defer ctx.Dispose()

	m := ctx.NewModule("lvirt")
	defer m.Dispose()

	b := ctx.NewBuilder()
	defer b.Dispose()

	i64 := ctx.Int64Type()
	fn := llvm.AddFunction(m, "lvirt_main", llvm.FunctionType(i64, nil, false))
	entry := llvm.AddBasicBlock(fn, "entry")
	b.SetInsertPointAtEnd(entry)

	regs := make(map[string]llvm.Value)
	slot := func(name string) llvm.Value {
		if v, ok := regs[name]; ok {
			return v
		}
		v := b.CreateAlloca(i64, name)
		regs[name] = v
		return v
	}
	operand := func(op virt.Operand) llvm.Value {
		switch o := op.(type) {
		case virt.Imm:
			return llvm.ConstInt(i64, uint64(o.Value), true)
		case virt.VReg:
			return b.CreateLoad(i64, slot(o.Name), o.Name+".v")
		default:
			return llvm.ConstInt(i64, 0, false)
		}
	}

	for _, instr := range p.Instrs {
		switch n := instr.(type) {
		case virt.Movq:
			b.CreateStore(operand(n.Src), dstSlot(slot, n.Dst))
		case virt.Addq:
			dst := dstSlot(slot, n.Dst)
			sum := b.CreateAdd(b.CreateLoad(i64, dst, "acc"), operand(n.Src), "sum")
			b.CreateStore(sum, dst)
		case virt.Subq:
			dst := dstSlot(slot, n.Dst)
			diff := b.CreateSub(b.CreateLoad(i64, dst, "acc"), operand(n.Src), "diff")
			b.CreateStore(diff, dst)
		case virt.Negq:
			dst := dstSlot(slot, n.Dst)
			neg := b.CreateNeg(b.CreateLoad(i64, dst, "acc"), "neg")
			b.CreateStore(neg, dst)
		case virt.Callq:
			ft := llvm.FunctionType(i64, nil, false)
			callee := m.NamedFunction(n.Label)
			if callee.IsNil() {
				callee = llvm.AddFunction(m, n.Label, ft)
			}
			res := b.CreateCall(ft, callee, nil, "call")
			b.CreateStore(res, dstSlot(slot, n.Dst))
		case virt.Retq:
			b.CreateRet(operand(virt.VReg{Name: virt.Retvar}))
		}
	}

	return os.WriteFile(path, []byte(m.String()), 0644)
}

func dstSlot(slot func(string) llvm.Value, op virt.Operand) llvm.Value {
	v, ok := op.(virt.VReg)
	if !ok {
		panic("llvmdump: destination operand is not a VReg")
	}
	return slot(v.Name)
}
