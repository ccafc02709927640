// Package flat defines C-flat: the three-address form produced by flatten
// and consumed by select-instructions.
package flat

// RHS is the closed sum of atomic right-hand sides an Assign may carry.
// Every variant's operands are themselves atomic (a literal or a bare
// variable name) — spec.md §3.3's "no nested operators" invariant.
type RHS interface {
	rhsNode()
}

// IntLit is an integer literal rhs.
type IntLit struct {
	Value int64
}

// Read is the read-oracle rhs.
type Read struct{}

// VarRef copies the value of Name.
type VarRef struct {
	Name string
}

// Negate negates the value of Src, which must already be a declared local
// or formal.
type Negate struct {
	Src string
}

// AddOp adds the values of Left and Right.
type AddOp struct {
	Left, Right string
}

// CallOp invokes Fname with the atomic arguments Args.
type CallOp struct {
	Fname string
	Args  []string
}

func (IntLit) rhsNode() {}
func (Read) rhsNode()   {}
func (VarRef) rhsNode() {}
func (Negate) rhsNode() {}
func (AddOp) rhsNode()  {}
func (CallOp) rhsNode() {}

// Instr is the closed sum of C-flat instructions.
type Instr interface {
	instrNode()
}

// Assign writes the result of RHS to Dst.
type Assign struct {
	Dst string
	RHS RHS
}

// Return ends a function, yielding the value of Src.
type Return struct {
	Src string
}

func (Assign) instrNode() {}
func (Return) instrNode() {}
