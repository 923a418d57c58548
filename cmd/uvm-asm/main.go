package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/uvmkit/uvm/asm"
	"github.com/uvmkit/uvm/vm"
)

func main() {
	var src string
	var out string
	var test bool

	flag.StringVar(&src, "src", "", "YAML source file")
	flag.StringVar(&out, "out", "", "Output machine code file")
	flag.BoolVar(&test, "test", false, "Print the parsed instruction list")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(src) == 0 || len(out) == 0 {
		flag.PrintDefaults()
		os.Exit(2)
	}

	inf, err := os.Open(src)
	if err != nil {
		log.Fatalf("%v: %v", src, err)
	}
	defer inf.Close()

	program, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", src, err)
	}

	if test {
		for n, line := range asm.Listing(program) {
			fmt.Printf("%d: %s\n", n, line)
		}
	}

	err = os.WriteFile(out, vm.Assemble(program), 0o644)
	if err != nil {
		log.Fatalf("%v: %v", out, err)
	}
}
