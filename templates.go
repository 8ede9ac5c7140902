package main

import (
	"fmt"

	core "github.com/otu-tools/otusub/core"
)

type TemplatesCommand struct {
	Help         bool   `short:"h" long:"help" description:"Show this help message"`
	List         bool   `short:"l" long:"list" description:"list registered scheduler templates"`
	Placeholders string `long:"placeholders" description:"print the required placeholders for a scheduler kind" value-name:"kind"`
	Show         string `long:"show" description:"print the raw template for a scheduler kind" value-name:"kind"`
}

var templatesCommand TemplatesCommand

func (x *TemplatesCommand) Execute(args []string) error {
	if x.Help {
		return core.CreateHelpErr()
	}
	if len(x.Placeholders) > 0 {
		kind, err := core.ParseSchedulerKind(x.Placeholders)
		if err != nil {
			return err
		}
		template, err := core.Load(kind)
		if err != nil {
			return err
		}
		for _, name := range template.RequiredPlaceholders() {
			fmt.Println(name)
		}
		return nil
	}
	if len(x.Show) > 0 {
		kind, err := core.ParseSchedulerKind(x.Show)
		if err != nil {
			return err
		}
		template, err := core.Load(kind)
		if err != nil {
			return err
		}
		fmt.Print(template.Raw)
		return nil
	}
	for _, kind := range core.Kinds() {
		sched, err := core.Lookup(kind)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%s\n", kind, sched.Manifest.Name, sched.Manifest.Description)
	}
	return nil
}

func init() {
	parser.AddCommand("templates",
		"inspect job templates",
		"List the registered scheduler templates, their placeholders, and their raw text",
		&templatesCommand)
}
