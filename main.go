package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	core "github.com/otu-tools/otusub/core"
	_ "github.com/otu-tools/otusub/pbs"
	_ "github.com/otu-tools/otusub/slurm"
)

var parser = flags.NewNamedParser("otusub", flags.PassDoubleDash)

func printHelp(parser *flags.Parser) {
	// Print help for active command
	if parser.Command.Active != nil {
		parser.Command = parser.Command.Active
	}
	var b bytes.Buffer
	parser.WriteHelp(&b)
	fmt.Println(b.String())
}

func main() {
	var err error
	args := []string{}
	if args, err = core.PreprocessArgs(os.Args); err != nil {
		goto errHandler
	}
	if args, err = parser.ParseArgs(args); err != nil {
		goto errHandler
	}
	os.Exit(0)
errHandler:
	switch flagsErr := err.(type) {
	case *flags.Error:
		if flagsErr.Type == flags.ErrHelp ||
			flagsErr.Type == flags.ErrCommandRequired ||
			flagsErr.Type == flags.ErrRequired {
			printHelp(parser)
			os.Exit(0)
		} else if flagsErr.Type == flags.ErrUnknownCommand {
			if len(args) > 0 {
				fmt.Printf("`%v' not supported\n\n", args[0])
			}
			printHelp(parser)
		}
		fmt.Println(flagsErr.Error())
		os.Exit(1)

	default:
		fmt.Println(flagsErr.Error())
		os.Exit(1)

	}
}
