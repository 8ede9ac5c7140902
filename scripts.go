package main

import (
	_ "embed"
	"fmt"
	"strings"

	core "github.com/otu-tools/otusub/core"
)

// Documentation index for the companion analysis toolkit. Data only;
// nothing here depends on the listed scripts.
//
//go:embed available_scripts.txt
var availableScripts string

type ScriptsCommand struct {
	Help   bool   `short:"h" long:"help" description:"Show this help message"`
	Filter string `short:"f" long:"filter" description:"only show script names containing this substring"`
}

var scriptsCommand ScriptsCommand

func (x *ScriptsCommand) Execute(args []string) error {
	if x.Help {
		return core.CreateHelpErr()
	}
	for _, name := range strings.Split(strings.TrimSpace(availableScripts), "\n") {
		if len(x.Filter) > 0 && !strings.Contains(name, x.Filter) {
			continue
		}
		fmt.Println(name)
	}
	return nil
}

func init() {
	parser.AddCommand("scripts",
		"list toolkit scripts",
		"Print the documentation index of the companion analysis toolkit",
		&scriptsCommand)
}
