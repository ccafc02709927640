package util

import (
	"fmt"
	"strings"
)

const appVersion = "lcc 1.0"

// ParseArgs parses the command line arguments of the compile driver:
//
//	compile <input-path> <output-path> [-v] [-dump-llvm <path>]
func ParseArgs(args []string) (Options, error) {
	opt := Options{}
	var positional []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			printHelp()
			return opt, errHelp
		case "--version":
			fmt.Println(appVersion)
			return opt, errHelp
		case "-v", "-vb", "-verbose":
			opt.Verbose = true
		case "-dump-llvm":
			if i+1 >= len(args) {
				return opt, fmt.Errorf("got flag %s but no argument", args[i])
			}
			if strings.HasPrefix(args[i+1], "-") {
				return opt, fmt.Errorf("expected path after %s, got flag %s", args[i], args[i+1])
			}
			opt.DumpLLVM = args[i+1]
			i++
		default:
			if strings.HasPrefix(args[i], "-") {
				return opt, fmt.Errorf("unexpected flag: %s", args[i])
			}
			positional = append(positional, args[i])
		}
	}

	switch len(positional) {
	case 0:
		return opt, fmt.Errorf("expected <input-path> <output-path>")
	case 1:
		return opt, fmt.Errorf("missing <output-path>")
	case 2:
		opt.Src, opt.Out = positional[0], positional[1]
	default:
		return opt, fmt.Errorf("unexpected extra argument: %s", positional[2])
	}
	return opt, nil
}

// errHelp signals that ParseArgs already printed what the caller asked for
// (help or version) and the driver should exit 0 without running anything.
var errHelp = fmt.Errorf("help requested")

// IsHelp reports whether err is the sentinel returned after -h/--help or
// --version handling.
func IsHelp(err error) bool {
	return err == errHelp
}

func printHelp() {
	fmt.Println("usage: compile <input-path> <output-path> [-v] [-dump-llvm <path>]")
	fmt.Println("  -v, -vb, -verbose  print every intermediate IR while compiling")
	fmt.Println("  -dump-llvm p   also write an LLVM-IR textual dump of L-virt to p")
	fmt.Println("  -h, --help     print this message and exit")
	fmt.Println("  --version      print the compiler version and exit")
}
