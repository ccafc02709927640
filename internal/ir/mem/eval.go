package mem

import (
	"lcc/internal/oracle"
	"lcc/internal/util"
)

const stage = "mem"

// machine is the register file plus a byte-addressed memory model used by
// Eval. Memory is modeled as a map keyed by address rather than a fixed
// array: RSP/RBP are plain integers starting at zero in this reference
// machine, so every Addr operand's (base+offset) resolves to a stable key
// without needing to pre-size a real stack segment.
type machine struct {
	regs [R15 + 1]int64
	mem  map[int64]int64
}

func newMachine() *machine {
	return &machine{mem: make(map[int64]int64)}
}

func (m *machine) read(op Operand) (int64, error) {
	switch v := op.(type) {
	case Imm:
		return v.Value, nil
	case Reg:
		return m.regs[v.Name], nil
	case Addr:
		return m.mem[m.regs[v.Base]+v.Offset], nil
	default:
		return 0, util.NewError(util.IllFormed, stage, "unknown operand")
	}
}

func (m *machine) write(op Operand, val int64) error {
	switch v := op.(type) {
	case Reg:
		m.regs[v.Name] = val
	case Addr:
		m.mem[m.regs[v.Base]+v.Offset] = val
	default:
		return util.NewError(util.IllFormed, stage, "destination operand is not writable")
	}
	return nil
}

// Eval evaluates Program p against the given oracle and returns the value
// held in RAX when Retq executes.
func Eval(p *Program, o oracle.Oracle) (int64, error) {
	m := newMachine()
	for _, instr := range p.Instrs() {
		switch n := instr.(type) {
		case Movq:
			v, err := m.read(n.Src)
			if err != nil {
				return 0, err
			}
			if err := m.write(n.Dst, v); err != nil {
				return 0, err
			}
		case Addq:
			s, err := m.read(n.Src)
			if err != nil {
				return 0, err
			}
			d, err := m.read(n.Dst)
			if err != nil {
				return 0, err
			}
			if err := m.write(n.Dst, d+s); err != nil {
				return 0, err
			}
		case Subq:
			s, err := m.read(n.Src)
			if err != nil {
				return 0, err
			}
			d, err := m.read(n.Dst)
			if err != nil {
				return 0, err
			}
			if err := m.write(n.Dst, d-s); err != nil {
				return 0, err
			}
		case Negq:
			d, err := m.read(n.Dst)
			if err != nil {
				return 0, err
			}
			if err := m.write(n.Dst, -d); err != nil {
				return 0, err
			}
		case Pushq:
			v, err := m.read(n.Src)
			if err != nil {
				return 0, err
			}
			m.regs[RSP] -= WordSize
			m.mem[m.regs[RSP]] = v
		case Popq:
			v := m.mem[m.regs[RSP]]
			m.regs[RSP] += WordSize
			if err := m.write(n.Dst, v); err != nil {
				return 0, err
			}
		case Callq:
			v, err := o.Next()
			if err != nil {
				return 0, err
			}
			m.regs[RAX] = v
			if _, isRAX := n.Dst.(Reg); !isRAX || n.Dst.(Reg).Name != RAX {
				if err := m.write(n.Dst, v); err != nil {
					return 0, err
				}
			}
		case Retq:
			return m.regs[RAX], nil
		default:
			return 0, util.NewError(util.IllFormed, stage, "unknown instruction variant")
		}
	}
	return 0, util.NewError(util.IllFormed, stage, "program did not end in retq")
}
