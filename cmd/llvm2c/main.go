// Command llvm2c reads a textual LLVM IR (.ll) file and writes the
// translated, semantically equivalent C source to stdout or a given output
// file. Bitcode (.bc) input is not supported.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/llir/llvm/asm"

	"github.com/dshills/llvm2c/internal/translate"
)

func main() {
	var input string
	var output string
	var noFuncCasts bool
	var forceBlockLabels bool
	flag.StringVar(&input, "file", "", "textual LLVM IR file to translate (.ll)")
	flag.StringVar(&output, "o", "", "Output C file (default: stdout)")
	flag.BoolVar(&noFuncCasts, "no-func-casts", false, "strip casts on indirect call targets")
	flag.BoolVar(&forceBlockLabels, "force-block-labels", false, "emit labels on inlined blocks for debugging")
	flag.Parse()

	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		os.Exit(1)
	}

	module, err := asm.ParseFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", input, err)
		os.Exit(1)
	}

	src, err := translate.Run(module, translate.Options{
		NoFuncCasts:      noFuncCasts,
		ForceBlockLabels: forceBlockLabels,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Translation failed: %v\n", err)
		os.Exit(1)
	}

	if output == "" {
		fmt.Fprint(os.Stdout, src)
		return
	}
	if err := os.WriteFile(output, []byte(src), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
}
