// Command famicore is a thin driver around the emulation core and the
// assembler: assemble source files, run ROMs headless, disassemble
// binaries, or step a program in the interactive monitor.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/urfave/cli.v2"

	"famicore/asm"
	"famicore/nes"
)

func main() {
	app := &cli.App{
		Name:    "famicore",
		Usage:   "6502/NES emulation core and assembler",
		Version: "v0.1.0",
		Commands: []*cli.Command{
			asmCommand(),
			runCommand(),
			disasmCommand(),
			monitorCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func asmCommand() *cli.Command {
	return &cli.Command{
		Name:      "asm",
		Usage:     "Assemble a source file into a flat binary or an iNES image",
		ArgsUsage: "file.s",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file", Value: "out.bin"},
			&cli.BoolFlag{Name: "ines", Usage: "wrap the binary in an iNES header"},
			&cli.IntFlag{Name: "mapper", Usage: "mapper number for --ines", Value: 0},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				cli.ShowSubcommandHelp(c)
				return cli.Exit("", 2)
			}
			path := c.Args().First()

			source, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			// includes resolve relative to the source file
			base := filepath.Dir(path)
			pre := asm.NewPreprocessor()
			lines, err := pre.Process(string(source), func(name string) (string, error) {
				b, err := os.ReadFile(filepath.Join(base, name))
				return string(b), err
			})
			if err != nil {
				return err
			}

			binary, err := asm.AssembleLines(lines)
			if err != nil {
				return err
			}

			out, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}
			defer out.Close()

			if c.Bool("ines") {
				if err := nes.WriteINES(out, binary, nil, byte(c.Int("mapper")), nes.Horizontal); err != nil {
					return err
				}
			} else if _, err := out.Write(binary); err != nil {
				return err
			}

			fmt.Printf("assembled %d bytes to %s\n", len(binary), c.String("out"))
			return nil
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run an iNES image headless and dump the final state",
		ArgsUsage: "file.nes",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "frames", Usage: "frames to run", Value: 60},
			&cli.IntFlag{Name: "max-instructions", Usage: "instruction budget per frame", Value: 1 << 20},
			&cli.BoolFlag{Name: "trace", Usage: "write an execution trace to stderr"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				cli.ShowSubcommandHelp(c)
				return cli.Exit("", 2)
			}

			console := nes.NewConsole()
			if c.Bool("trace") {
				console.SetTrace(os.Stderr)
			}
			if err := console.LoadPath(c.Args().First()); err != nil {
				return err
			}

			budget := c.Int("max-instructions")
			for i := 0; i < c.Int("frames") && !console.CPU.Halted; i++ {
				frame := console.PPU.Frame
				for n := 0; n < budget && frame == console.PPU.Frame && !console.CPU.Halted; n++ {
					console.CPU.Clock()
				}
			}

			cpu := console.CPU
			fmt.Printf("PC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%02X CYC:%d frame:%d\n",
				cpu.PC, cpu.A, cpu.X, cpu.Y, cpu.SP, byte(cpu.P), cpu.Cycles, console.PPU.Frame)
			if fault := cpu.Fault(); fault != nil {
				return fault
			}
			return nil
		},
	}
}

func disasmCommand() *cli.Command {
	return &cli.Command{
		Name:      "disasm",
		Usage:     "Disassemble a flat binary",
		ArgsUsage: "file.bin",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "org", Usage: "load address", Value: 0x8000},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				cli.ShowSubcommandHelp(c)
				return cli.Exit("", 2)
			}

			binary, err := os.ReadFile(c.Args().First())
			if err != nil {
				return err
			}

			bus := nes.NewBus()
			org := uint16(c.Int("org"))
			bus.Load(org, binary)

			for pc := org; pc < org+uint16(len(binary)); {
				text, size := nes.Sprint(bus, pc)
				fmt.Printf("%04X  %s\n", pc, text)
				pc += uint16(size)
			}
			return nil
		},
	}
}

func monitorCommand() *cli.Command {
	return &cli.Command{
		Name:      "monitor",
		Usage:     "Step a binary interactively",
		ArgsUsage: "file.bin",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "org", Usage: "load address", Value: 0x8000},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				cli.ShowSubcommandHelp(c)
				return cli.Exit("", 2)
			}

			binary, err := os.ReadFile(c.Args().First())
			if err != nil {
				return err
			}

			console := nes.NewConsole()
			console.LoadProgram(binary, uint16(c.Int("org")))
			return nes.NewMonitor(console).Run()
		},
	}
}
