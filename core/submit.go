package core

import (
	"io/ioutil"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// CommandRunner executes a scheduler submission binary. Split out so
// tests can fake sbatch/qsub.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
}

type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// SubmitResult reports one accepted job.
type SubmitResult struct {
	JobID      string
	ScriptPath string
}

// Submitter writes rendered scripts to a spool directory and hands
// them to the scheduler's submission binary.
type Submitter struct {
	Runner   CommandRunner
	SpoolDir string
}

func NewSubmitter(spoolDir string) *Submitter {
	return &Submitter{
		Runner:   ExecRunner{},
		SpoolDir: spoolDir,
	}
}

// Spool writes the script body to <spool>/<tag><suffix> and returns
// the path.
func (s *Submitter) Spool(script RenderedScript, tag string) (string, error) {
	sched, err := Lookup(script.Kind)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.SpoolDir, tag+sched.ScriptSuffix)
	if err := ioutil.WriteFile(path, []byte(script.Body), 0644); err != nil {
		return "", errors.Wrap(err, "core: cannot write job script")
	}
	return path, nil
}

// Submit spools the script and invokes the scheduler's submission
// binary on it.
func (s *Submitter) Submit(script RenderedScript, tag string) (SubmitResult, error) {
	sched, err := Lookup(script.Kind)
	if err != nil {
		return SubmitResult{}, err
	}
	path, err := s.Spool(script, tag)
	if err != nil {
		return SubmitResult{}, err
	}
	out, err := s.Runner.Run(sched.SubmitCommand, path)
	if err != nil {
		return SubmitResult{}, errors.Wrapf(err, "%s: submit failed: %s",
			sched.SubmitCommand, string(out))
	}
	jobID, err := sched.ParseJobID(string(out))
	if err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{JobID: jobID, ScriptPath: path}, nil
}
