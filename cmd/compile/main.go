// Command compile is the lcc driver: it reads an L-src program, runs it
// through the pipeline, and writes the resulting L-asm listing. Structure
// follows the teacher's main.go run()/main() split.
package main

import (
	"fmt"
	"io"
	"os"

	"lcc/internal/ir/mem"
	"lcc/internal/llvmdump"
	"lcc/internal/pipeline"
	"lcc/internal/sexpr"
	"lcc/internal/util"
)

func run(opt util.Options) error {
	src, err := util.ReadSource(opt)
	if err != nil {
		return fmt.Errorf("could not read source code: %w", err)
	}

	prog, err := sexpr.Parse(src)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	var verbose io.Writer
	if opt.Verbose {
		verbose = os.Stdout
	}
	res, err := pipeline.Compile(prog, verbose)
	if err != nil {
		return fmt.Errorf("compile error: %w", err)
	}

	if opt.DumpLLVM != "" {
		if err := llvmdump.Write(res.Virt, opt.DumpLLVM); err != nil {
			return fmt.Errorf("llvm dump error: %w", err)
		}
	}

	out := mem.Print(res.Asm)
	if err := util.WriteOutput(opt.Out, out); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return nil
}

func main() {
	opt, err := util.ParseArgs(os.Args[1:])
	if err != nil {
		if util.IsHelp(err) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "command line argument error: %s\n", err)
		os.Exit(1)
	}

	if err := run(opt); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
