package main

import (
	"fmt"
	"io/ioutil"

	core "github.com/otu-tools/otusub/core"
	logger "github.com/otu-tools/otusub/logger"
)

type RenderCommand struct {
	Help   bool     `short:"h" long:"help" description:"Show this help message"`
	Job    JobFlags `group:"Job Options"`
	Output string   `short:"o" long:"output" description:"write the rendered script to a file instead of stdout"`
}

var renderCommand RenderCommand

func (x *RenderCommand) Execute(args []string) error {
	if x.Help {
		return core.CreateHelpErr()
	}
	kind, err := x.Job.schedulerKind()
	if err != nil {
		return err
	}
	ctx, err := x.Job.renderContext(x.Job.JobNum)
	if err != nil {
		return err
	}
	template, err := core.Load(kind)
	if err != nil {
		return err
	}
	logger.DebugObj("render context", ctx)
	script, err := template.Render(ctx)
	if err != nil {
		return err
	}
	if len(x.Output) > 0 {
		return ioutil.WriteFile(x.Output, []byte(script.Body), 0644)
	}
	fmt.Print(script.Body)
	return nil
}

func init() {
	parser.AddCommand("render",
		"render a job script",
		"Render the scheduler-specific job script for one input chunk and print it or write it to a file",
		&renderCommand)
}
