package flat

// Function is a C-flat function: Locals is the set of every name an
// Assign in Instrs writes to (formals are listed in Formals), and Instrs
// always ends with a Return.
type Function struct {
	Name    string
	Formals []string
	Locals  map[string]bool
	Instrs  []Instr
}

// Program is the C-flat top-level unit: Main is the synthetic entry
// function built by flatten around the L-uniq body, Functions holds the
// user-defined, callable functions.
type Program struct {
	Main      *Function
	Functions []*Function
}

// Lookup returns the callable function named name, or nil.
func (p *Program) Lookup(name string) *Function {
	for _, f := range p.Functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}
