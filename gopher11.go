// This file is part of Gopher11.
//
// Gopher11 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher11 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher11.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopher11/debugger"
	"github.com/jetsetilly/gopher11/debugger/terminal"
	"github.com/jetsetilly/gopher11/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher11/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher11/hardware"
	"github.com/jetsetilly/gopher11/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher11/logger"
	"github.com/jetsetilly/gopher11/modalflag"
	"github.com/jetsetilly/gopher11/performance"
	"github.com/jetsetilly/gopher11/statsview"
	"github.com/jetsetilly/gopher11/version"
)

const imageHelp = `The memory image is ASCII text: one octal word per line, each fitting in 16
bits. The Nth word of the image is loaded at byte address 2*N and execution
begins at address zero.`

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* error: %v (use -help to list available flags)\n", err)
		os.Exit(1)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		ver, rev := version.Version()
		fmt.Printf("%s (%s)\n", ver, rev)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* error in %s mode: %v\n", md, err)
		os.Exit(1)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	trace := md.AddBool("t", false, "print a one line trace per executed instruction")
	verbose := md.AddBool("v", false, "print a verbose trace per executed instruction")
	useCache := md.AddBool("cache", true, "model the data cache")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	md.AdditionalHelp(imageHelp)

	p, err := md.Parse()
	if p == modalflag.ParseError {
		return fmt.Errorf("%v (use -help to list available flags)", err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("run mode takes no arguments; the memory image is read from stdin")
	}

	sys := hardware.NewPDP11(*useCache)

	if *verbose {
		fmt.Println("Reading words in octal from stdin:")
	}

	n, err := sys.Mem.Load(os.Stdin)
	if err != nil {
		return err
	}

	if *verbose {
		for i := 0; i < n; i++ {
			w, _ := sys.Mem.Peek(uint16(2 * i))
			fmt.Printf("%07o\n", w)
		}
		fmt.Println("instruction trace:")
	}

	var onInstruction func() error
	if *trace || *verbose {
		onInstruction = func() error {
			fmt.Println(sys.CPU.LastResult.String())
			if *verbose {
				printVerbose(os.Stdout, sys)
			}
			return nil
		}
	}

	err = sys.Run(onInstruction)
	if err != nil {
		return err
	}

	printStatistics(os.Stdout, sys)

	return nil
}

// printVerbose emits the extended trace information for the instruction in
// LastResult: operand values, condition codes and a register dump.
func printVerbose(output io.Writer, sys *hardware.PDP11) {
	res := sys.CPU.LastResult

	switch res.Instruction.Defn.Class {
	case instructions.DoubleOperand:
		fmt.Fprintf(output, "src.value = %07o, dst.value = %07o, result = %07o\n",
			res.Src.Value, res.Dst.Value, res.Value)

	case instructions.SingleOperand:
		fmt.Fprintf(output, "dst.value = %07o, result = %07o\n",
			res.Dst.Value, res.Value)

	case instructions.Branch, instructions.SubtractBranch:
		if res.Taken {
			fmt.Fprintln(output, "branch taken")
		} else {
			fmt.Fprintln(output, "branch not taken")
		}
	}

	fmt.Fprintf(output, "nzvc bits = %s\n", res.Status.Bits())

	fmt.Fprintf(output, "\tR0:%07o R2:%07o R4:%07o R6:%07o\n",
		sys.CPU.Reg[0].Value(), sys.CPU.Reg[2].Value(),
		sys.CPU.Reg[4].Value(), sys.CPU.Reg[6].Value())
	fmt.Fprintf(output, "\tR1:%07o R3:%07o R5:%07o R7:%07o\n",
		sys.CPU.Reg[1].Value(), sys.CPU.Reg[3].Value(),
		sys.CPU.Reg[5].Value(), sys.CPU.Reg[7].Value())
}

// printStatistics emits the final statistics block: execution counters, the
// first 20 words of memory and, when the cache model is attached, the cache
// counters.
func printStatistics(output io.Writer, sys *hardware.PDP11) {
	io.WriteString(output, sys.CPU.Counters.String())

	fmt.Fprintln(output, "first 20 words of memory after execution halts:")
	for a := uint16(0); a < 40; a += 2 {
		v, _ := sys.Mem.Peek(a)
		fmt.Fprintf(output, "%07o  %06o\n", a, v)
	}

	if sys.Cache != nil {
		io.WriteString(output, sys.Cache.Counters.String())
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "color", "terminal type to use in debug mode: color, plain")
	useCache := md.AddBool("cache", true, "model the data cache")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	md.AdditionalHelp(imageHelp)

	p, err := md.Parse()
	if p == modalflag.ParseError {
		return fmt.Errorf("%v (use -help to list available flags)", err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	// unlike run mode the image is read from a file. stdin belongs to the
	// debugging terminal
	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("debug mode requires a memory image filename")
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	sys := hardware.NewPDP11(*useCache)
	_, err = sys.Mem.Load(f)
	if err != nil {
		return err
	}

	var term terminal.Terminal

	switch strings.ToLower(*termType) {
	case "color":
		term = &colorterm.ColorTerminal{}
	case "plain":
		term = &plainterm.PlainTerminal{}
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	dbg := debugger.NewDebugger(sys, term)

	return dbg.Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (will run shorter if the program halts)")
	profile := md.AddString("profile", "none", "run Go profiler: cpu, mem, all, none")
	stats := md.AddBool("statsview", false, "run the statsview HTTP server during the measurement")
	useCache := md.AddBool("cache", true, "model the data cache")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	md.AdditionalHelp(imageHelp)

	p, err := md.Parse()
	if p == modalflag.ParseError {
		return fmt.Errorf("%v (use -help to list available flags)", err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("performance mode requires a memory image filename")
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	sys := hardware.NewPDP11(*useCache)
	_, err = sys.Mem.Load(f)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	return performance.Check(os.Stdout, sys, *duration, prof)
}
