package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	core "github.com/otu-tools/otusub/core"
	logger "github.com/otu-tools/otusub/logger"
)

type SubmitCommand struct {
	Help     bool     `short:"h" long:"help" description:"Show this help message"`
	Job      JobFlags `group:"Job Options"`
	Jobs     string   `long:"jobs" description:"chunk number range to submit, e.g. 1-24 (overrides --job-num)"`
	SpoolDir string   `long:"spool-dir" description:"directory for rendered job scripts" default:"."`
	DryRun   bool     `long:"dry-run" description:"render and spool scripts without calling the scheduler"`
}

var submitCommand SubmitCommand

// parseJobRange accepts a single chunk number or an inclusive range
// N-M.
func parseJobRange(spec string) ([]int, error) {
	if n, err := strconv.Atoi(spec); err == nil {
		return []int{n}, nil
	}
	split := strings.SplitN(spec, "-", 2)
	if len(split) != 2 {
		return nil, errors.Errorf("submit: invalid job range %q", spec)
	}
	first, ferr := strconv.Atoi(split[0])
	last, lerr := strconv.Atoi(split[1])
	if ferr != nil || lerr != nil || first > last {
		return nil, errors.Errorf("submit: invalid job range %q", spec)
	}
	nums := make([]int, 0, last-first+1)
	for n := first; n <= last; n++ {
		nums = append(nums, n)
	}
	return nums, nil
}

func (x *SubmitCommand) Execute(args []string) error {
	if x.Help {
		return core.CreateHelpErr()
	}
	jobNums := []int{x.Job.JobNum}
	if len(x.Jobs) > 0 {
		if nums, err := parseJobRange(x.Jobs); err != nil {
			return err
		} else {
			jobNums = nums
		}
	}
	kind, err := x.Job.schedulerKind()
	if err != nil {
		return err
	}
	template, err := core.Load(kind)
	if err != nil {
		return err
	}
	// Render the whole range before touching the scheduler; a bad
	// context fails the batch without submitting anything. Rendering
	// is pure, so the chunks render in parallel.
	scripts := make([]core.RenderedScript, len(jobNums))
	renderErrs := make([]error, len(jobNums))
	var wg sync.WaitGroup
	for i, jobNum := range jobNums {
		wg.Add(1)
		go func(i, jobNum int) {
			defer wg.Done()
			ctx, err := x.Job.renderContext(jobNum)
			if err != nil {
				renderErrs[i] = err
				return
			}
			scripts[i], renderErrs[i] = template.Render(ctx)
		}(i, jobNum)
	}
	wg.Wait()
	for _, err := range renderErrs {
		if err != nil {
			return err
		}
	}
	submitter := core.NewSubmitter(x.SpoolDir)
	for i, jobNum := range jobNums {
		tag := x.Job.jobTag(jobNum)
		if x.DryRun {
			path, err := submitter.Spool(scripts[i], tag)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote job script %s\n", path)
			continue
		}
		result, err := submitter.Submit(scripts[i], tag)
		if err != nil {
			return err
		}
		logger.InfoPrintf("submitted %s as job %s", result.ScriptPath, result.JobID)
		fmt.Printf("Your job %s (\"%s\") has been submitted\n", result.JobID, tag)
	}
	return nil
}

func init() {
	parser.AddCommand("submit",
		"render and submit job scripts",
		"Render job scripts for one chunk or a range of chunks and hand them to the scheduler's submission binary",
		&submitCommand)
}
