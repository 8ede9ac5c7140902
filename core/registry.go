package core

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Scheduler bundles everything the CLI needs to target one batch
// system: the job template plus the submission specifics.
type Scheduler struct {
	Kind SchedulerKind
	// Submission binary, e.g. sbatch or qsub
	SubmitCommand string
	// Directive prefix used in the template, e.g. SBATCH or PBS
	Directive string
	// Filename suffix for spooled job scripts
	ScriptSuffix string
	Template     *JobTemplate
	Manifest     Manifest
	// ParseJobID extracts the job id from the submission binary's
	// stdout
	ParseJobID func(output string) (string, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[SchedulerKind]*Scheduler{}
)

// Register adds a scheduler to the process-wide registry. The
// registry is populated from package init functions and is read-only
// afterwards.
func Register(sched *Scheduler) error {
	if sched == nil || sched.Template == nil {
		return errors.New("core: cannot register scheduler without a template")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[sched.Kind]; ok {
		return errors.Errorf("core: scheduler %q already registered", string(sched.Kind))
	}
	registry[sched.Kind] = sched
	return nil
}

// MustRegister is Register for init functions; a broken embedded
// template is a packaging defect, so fail fast.
func MustRegister(sched *Scheduler) {
	if err := Register(sched); err != nil {
		panic(err)
	}
}

// Load returns the job template registered for the given scheduler
// kind. Templates are immutable for the process lifetime, so repeated
// loads return identical templates.
func Load(kind SchedulerKind) (*JobTemplate, error) {
	sched, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	return sched.Template, nil
}

// Lookup returns the full scheduler entry for the given kind.
func Lookup(kind SchedulerKind) (*Scheduler, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if sched, ok := registry[kind]; ok {
		return sched, nil
	}
	return nil, &TemplateNotFoundError{Kind: kind}
}

// Kinds lists the registered scheduler kinds in sorted order.
func Kinds() []SchedulerKind {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]SchedulerKind, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
