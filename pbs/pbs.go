// Package pbs registers the PBS job template and submission specifics
// with the core registry.
package pbs

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	core "github.com/otu-tools/otusub/core"
)

const (
	SubmitCommand = "qsub"
	Directive     = "PBS"
	ScriptSuffix  = ".pbs"
)

//go:embed pick_otus.pbs
var pickOtusTemplate string

//go:embed manifest.yaml
var manifestData []byte

// qsub prints the full job id on success, e.g. "42.pbsserver"
var jobIDRe = regexp.MustCompile(`^[0-9]+(\.\S+)?$`)

func parseJobID(output string) (string, error) {
	id := strings.TrimSpace(output)
	if jobIDRe.MatchString(id) {
		return id, nil
	}
	return "", errors.Errorf("qsub: no job id in scheduler output: %q", output)
}

func init() {
	template, err := core.NewJobTemplate(core.SchedulerPBS, pickOtusTemplate)
	if err != nil {
		panic(err)
	}
	manifest, err := core.ParseManifest(manifestData)
	if err != nil {
		panic(err)
	}
	core.MustRegister(&core.Scheduler{
		Kind:          core.SchedulerPBS,
		SubmitCommand: SubmitCommand,
		Directive:     Directive,
		ScriptSuffix:  ScriptSuffix,
		Template:      template,
		Manifest:      manifest,
		ParseJobID:    parseJobID,
	})
}
