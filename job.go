package main

import (
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	core "github.com/otu-tools/otusub/core"
)

// JobFlags are the job options shared by the render and submit
// commands. Unset flags fall back to the selected config profile.
type JobFlags struct {
	Scheduler     string `short:"k" long:"scheduler" description:"target scheduler (slurm|pbs)"`
	Profile       string `short:"p" long:"profile" description:"config profile with job defaults" default:"default"`
	JobName       string `short:"N" long:"job-name" description:"base name for the job" default:"pick_otus"`
	JobNum        int    `short:"j" long:"job-num" description:"input chunk number; selects the <num>.fna split"`
	Walltime      string `short:"t" long:"walltime" description:"wall clock limit hours:minutes:seconds"`
	Threads       int    `short:"O" long:"threads" description:"worker threads for the OTU picker"`
	Database      string `short:"r" long:"database" description:"path to the reference database"`
	DatabaseFname string `long:"database-fname" description:"staged database file name (default: basename of --database)"`
	Similarity    string `short:"s" long:"similarity" description:"sequence similarity threshold"`
}

// schedulerKind resolves the target scheduler from flags and profile
// defaults.
func (j *JobFlags) schedulerKind() (core.SchedulerKind, error) {
	name := j.Scheduler
	if len(name) == 0 {
		if defaults, err := core.GetProfile(j.Profile); err == nil {
			name = defaults.Scheduler
		}
	}
	if len(name) == 0 {
		name = string(core.SchedulerSlurm)
	}
	return core.ParseSchedulerKind(name)
}

// renderContext merges CLI flags with profile defaults into the
// render context for one job. The database file name is derived from
// the database path here, on the caller side; the renderer itself
// never checks the two for consistency.
func (j *JobFlags) renderContext(jobNum int) (core.RenderContext, error) {
	defaults, err := core.GetProfile(j.Profile)
	if err != nil {
		return nil, err
	}
	walltime := j.Walltime
	if len(walltime) == 0 {
		walltime = defaults.Walltime
	}
	if len(walltime) == 0 {
		walltime = "24:00:00"
	}
	threads := j.Threads
	if threads == 0 {
		threads = defaults.Threads
	}
	if threads <= 0 {
		return nil, errors.New("job: missing worker thread count (-O)")
	}
	database := j.Database
	if len(database) == 0 {
		database = defaults.DatabasePath
	}
	if len(database) == 0 {
		return nil, errors.New("job: missing reference database (-r)")
	}
	databaseFname := j.DatabaseFname
	if len(databaseFname) == 0 {
		databaseFname = filepath.Base(database)
	}
	similarity := j.Similarity
	if len(similarity) == 0 {
		similarity = defaults.Similarity
	}
	if len(similarity) == 0 {
		similarity = "0.97"
	}
	if _, err := strconv.ParseFloat(similarity, 64); err != nil {
		return nil, errors.Errorf("job: invalid similarity threshold %q", similarity)
	}
	return core.RenderContext{
		"job_name":       j.JobName,
		"job_num":        jobNum,
		"walltime":       walltime,
		"threads":        threads,
		"database_path":  database,
		"database_fname": databaseFname,
		"similarity":     similarity,
	}, nil
}

func (j *JobFlags) jobTag(jobNum int) string {
	return j.JobName + "_" + strconv.Itoa(jobNum)
}
