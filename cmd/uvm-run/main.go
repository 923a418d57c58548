package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/uvmkit/uvm/config"
	"github.com/uvmkit/uvm/dump"
	"github.com/uvmkit/uvm/vm"
)

func main() {
	var bin string
	var dumpPath string
	var dumpRange string
	var stackPath string
	var cfgPath string
	var memSize int
	var verbose bool

	flag.StringVar(&bin, "bin", "", "Machine code file")
	flag.StringVar(&dumpPath, "dump", "", "CSV memory dump file")
	flag.StringVar(&dumpRange, "range", "", "Dump range as start:end (e.g. 0:300)")
	flag.StringVar(&stackPath, "stack", "", "Optional CSV dump of the final stack")
	flag.StringVar(&cfgPath, "config", "", "Optional uvm.toml configuration file")
	flag.IntVar(&memSize, "mem-size", 0, "Data memory size (default 1024)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(bin) == 0 || len(dumpPath) == 0 {
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.Default()
	if len(cfgPath) != 0 {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			log.Fatalf("%v: %v", cfgPath, err)
		}
	}

	// Flags override the config file.
	if memSize > 0 {
		cfg.MemSize = memSize
	}
	if len(dumpRange) != 0 {
		cfg.Range = dumpRange
	}
	if verbose {
		cfg.Verbose = true
	}

	start, end, err := dump.ParseRange(cfg.Range)
	if err != nil {
		log.Fatal(err)
	}

	code, err := os.ReadFile(bin)
	if err != nil {
		log.Fatalf("%v: %v", bin, err)
	}

	program, err := vm.Disassemble(code)
	if err != nil {
		log.Fatalf("%v: %v", bin, err)
	}

	logger := zap.NewNop()
	if cfg.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
	}
	defer logger.Sync()

	m := vm.New(vm.WithMemSize(cfg.MemSize), vm.WithLogger(logger))

	err = m.Run(program)
	if err != nil {
		log.Fatalf("runtime error: %v", err)
	}

	ouf, err := os.Create(dumpPath)
	if err != nil {
		log.Fatalf("%v: %v", dumpPath, err)
	}
	defer ouf.Close()

	err = dump.WriteCSV(ouf, m.Data, start, end)
	if err != nil {
		log.Fatalf("%v: %v", dumpPath, err)
	}

	if len(stackPath) != 0 {
		sf, err := os.Create(stackPath)
		if err != nil {
			log.Fatalf("%v: %v", stackPath, err)
		}
		defer sf.Close()

		err = dump.WriteStack(sf, m.Stack.Data)
		if err != nil {
			log.Fatalf("%v: %v", stackPath, err)
		}
	}
}
