package main

import (
	"fmt"

	core "github.com/otu-tools/otusub/core"
	logger "github.com/otu-tools/otusub/logger"
)

type ConfigCommand struct {
	Help       bool   `short:"h" long:"help" description:"Show this help message"`
	List       bool   `short:"l" long:"list" description:"list configured profiles"`
	Profile    string `short:"p" long:"profile" description:"profile to update" default:"default"`
	Scheduler  string `long:"scheduler" description:"default scheduler kind (slurm|pbs)"`
	Walltime   string `long:"walltime" description:"default wall clock limit"`
	Threads    int    `long:"threads" description:"default worker thread count"`
	Database   string `long:"database" description:"default reference database path"`
	Similarity string `long:"similarity" description:"default similarity threshold"`
}

var configCommand ConfigCommand

func (x *ConfigCommand) Execute(args []string) error {
	if x.Help {
		return core.CreateHelpErr()
	}
	if x.List {
		config, err := core.ReadConfig()
		if err != nil {
			return err
		}
		for name, defaults := range config {
			fmt.Printf("%s\tscheduler=%s walltime=%s threads=%d database=%s similarity=%s\n",
				name, defaults.Scheduler, defaults.Walltime, defaults.Threads,
				defaults.DatabasePath, defaults.Similarity)
		}
		return nil
	}
	if len(x.Scheduler) > 0 {
		if _, err := core.ParseSchedulerKind(x.Scheduler); err != nil {
			return err
		}
	}
	config, _ := core.ReadConfig()
	if config == nil {
		config = make(core.Config)
	}
	defaults := config[x.Profile]
	if len(x.Scheduler) > 0 {
		defaults.Scheduler = x.Scheduler
	}
	if len(x.Walltime) > 0 {
		defaults.Walltime = x.Walltime
	}
	if x.Threads > 0 {
		defaults.Threads = x.Threads
	}
	if len(x.Database) > 0 {
		defaults.DatabasePath = x.Database
	}
	if len(x.Similarity) > 0 {
		defaults.Similarity = x.Similarity
	}
	config[x.Profile] = defaults
	logger.DebugObj("write config", config)
	return core.WriteConfig(config)
}

func init() {
	parser.AddCommand("config",
		"job default configuration",
		"The config command records per-profile job defaults used by render and submit",
		&configCommand)
}
