package slurm

import (
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/otu-tools/otusub/core"
)

func pickOtusContext() core.RenderContext {
	return core.RenderContext{
		"job_name":       "otus",
		"job_num":        7,
		"walltime":       "04:00:00",
		"threads":        16,
		"database_path":  "/db/ref.fna",
		"database_fname": "ref.fna",
		"similarity":     0.97,
	}
}

func TestPickOtusTemplateRegistered(t *testing.T) {
	first, err := core.Load(core.SchedulerSlurm)
	require.NoError(t, err)
	second, err := core.Load(core.SchedulerSlurm)
	require.NoError(t, err)
	assert.Equal(t, first.Raw, second.Raw)
	assert.Equal(t, first.RequiredPlaceholders(), second.RequiredPlaceholders())
	assert.ElementsMatch(t, []string{
		"job_name", "job_num", "walltime", "threads",
		"database_path", "database_fname", "similarity",
	}, first.RequiredPlaceholders())
}

func TestRenderPickOtusScript(t *testing.T) {
	template, err := core.Load(core.SchedulerSlurm)
	require.NoError(t, err)
	script, err := template.Render(pickOtusContext())
	require.NoError(t, err)
	lines := strings.Split(script.Body, "\n")
	assert.Equal(t, "#SBATCH --job-name=otus_7", lines[0])
	assert.Contains(t, lines, "#SBATCH --cpus-per-task=16")
	assert.Contains(t, lines, "#SBATCH --time=04:00:00")
	assert.Contains(t, lines, "cp /db/ref.fna .")
	assert.Contains(t, lines,
		"/usr/bin/time parallel_pick_otus_blast.py -i 7.fna -r ref.fna -O 16 -s 0.97 -o bpo.7")
	for _, name := range template.RequiredPlaceholders() {
		assert.NotContains(t, script.Body, "{"+name+"}")
	}
}

func TestRenderPickOtusMissingSimilarity(t *testing.T) {
	template, err := core.Load(core.SchedulerSlurm)
	require.NoError(t, err)
	ctx := pickOtusContext()
	delete(ctx, "similarity")
	_, rerr := template.Render(ctx)
	var missing *core.MissingPlaceholderError
	require.ErrorAs(t, rerr, &missing)
	assert.Equal(t, "similarity", missing.Name)
}

func TestParseJobID(t *testing.T) {
	id, err := parseJobID("Submitted batch job 42\n")
	require.NoError(t, err)
	assert.Equal(t, "42", id)
	_, err = parseJobID("sbatch: error: invalid partition\n")
	assert.Error(t, err)
}

type fakeRunner struct {
	name   string
	args   []string
	output string
}

func (r *fakeRunner) Run(name string, args ...string) ([]byte, error) {
	r.name = name
	r.args = args
	return []byte(r.output), nil
}

func TestSubmitPickOtusScript(t *testing.T) {
	template, err := core.Load(core.SchedulerSlurm)
	require.NoError(t, err)
	script, err := template.Render(pickOtusContext())
	require.NoError(t, err)
	runner := &fakeRunner{output: "Submitted batch job 42\n"}
	submitter := &core.Submitter{Runner: runner, SpoolDir: t.TempDir()}
	result, err := submitter.Submit(script, "otus_7")
	require.NoError(t, err)
	assert.Equal(t, "42", result.JobID)
	assert.Equal(t, SubmitCommand, runner.name)
	assert.True(t, strings.HasSuffix(result.ScriptPath, "otus_7"+ScriptSuffix))
	body, err := ioutil.ReadFile(result.ScriptPath)
	require.NoError(t, err)
	assert.Equal(t, script.Body, string(body))
}
