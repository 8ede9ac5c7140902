// Package slurm registers the Slurm job template and submission
// specifics with the core registry.
package slurm

import (
	_ "embed"
	"regexp"

	"github.com/pkg/errors"

	core "github.com/otu-tools/otusub/core"
)

const (
	SubmitCommand = "sbatch"
	Directive     = "SBATCH"
	ScriptSuffix  = ".sbatch"
)

//go:embed pick_otus.sbatch
var pickOtusTemplate string

//go:embed manifest.yaml
var manifestData []byte

// sbatch prints "Submitted batch job <id>" on success
var jobIDRe = regexp.MustCompile(`Submitted batch job ([0-9]+)`)

func parseJobID(output string) (string, error) {
	if m := jobIDRe.FindStringSubmatch(output); m != nil {
		return m[1], nil
	}
	return "", errors.Errorf("sbatch: no job id in scheduler output: %q", output)
}

func init() {
	template, err := core.NewJobTemplate(core.SchedulerSlurm, pickOtusTemplate)
	if err != nil {
		panic(err)
	}
	manifest, err := core.ParseManifest(manifestData)
	if err != nil {
		panic(err)
	}
	core.MustRegister(&core.Scheduler{
		Kind:          core.SchedulerSlurm,
		SubmitCommand: SubmitCommand,
		Directive:     Directive,
		ScriptSuffix:  ScriptSuffix,
		Template:      template,
		Manifest:      manifest,
		ParseJobID:    parseJobID,
	})
}
