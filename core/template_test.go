package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanPlaceholders(t *testing.T) {
	names, err := ScanPlaceholders("#SBATCH --job-name={job_name}_{job_num}\ncp {database_path} .\n-o bpo.{job_num}\n")
	require.NoError(t, err)
	// distinct names, first-appearance order
	assert.Equal(t, []string{"job_name", "job_num", "database_path"}, names)
}

func TestScanPlaceholdersNoTokens(t *testing.T) {
	names, err := ScanPlaceholders("pwd; hostname; date\n")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNewJobTemplateUnterminatedBrace(t *testing.T) {
	_, err := NewJobTemplate(SchedulerSlurm, "cp {database_path")
	require.Error(t, err)
	var malformed *MalformedTemplateError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 3, malformed.Offset)
}

func TestNewJobTemplateEmptyPlaceholder(t *testing.T) {
	_, err := NewJobTemplate(SchedulerSlurm, "echo {}")
	var malformed *MalformedTemplateError
	require.ErrorAs(t, err, &malformed)
}

func TestNewJobTemplateNestedBrace(t *testing.T) {
	_, err := NewJobTemplate(SchedulerSlurm, "echo {job{name}")
	var malformed *MalformedTemplateError
	require.ErrorAs(t, err, &malformed)
}

func TestRenderOnMalformedTemplateFails(t *testing.T) {
	// a template built without NewJobTemplate still fails atomically
	template := &JobTemplate{Kind: SchedulerPBS, Raw: "cp {database_path"}
	_, err := template.Render(RenderContext{"database_path": "/db/ref.fna"})
	var malformed *MalformedTemplateError
	require.ErrorAs(t, err, &malformed)
}

func TestRenderSubstitutesAllPlaceholders(t *testing.T) {
	template, err := NewJobTemplate(SchedulerSlurm,
		"#SBATCH --job-name={job_name}_{job_num}\n-O {threads} -s {similarity}\n")
	require.NoError(t, err)
	script, err := template.Render(RenderContext{
		"job_name":   "otus",
		"job_num":    7,
		"threads":    16,
		"similarity": 0.97,
	})
	require.NoError(t, err)
	assert.Equal(t, SchedulerSlurm, script.Kind)
	assert.Equal(t, "#SBATCH --job-name=otus_7\n-O 16 -s 0.97\n", script.Body)
	for _, name := range template.RequiredPlaceholders() {
		assert.NotContains(t, script.Body, "{"+name+"}")
	}
}

func TestRenderMissingPlaceholder(t *testing.T) {
	template, err := NewJobTemplate(SchedulerSlurm, "{job_name} {walltime} {threads}")
	require.NoError(t, err)
	_, rerr := template.Render(RenderContext{"job_name": "otus", "threads": 16})
	var missing *MissingPlaceholderError
	require.ErrorAs(t, rerr, &missing)
	// first unresolved name in scan order
	assert.Equal(t, "walltime", missing.Name)
}

func TestRenderIgnoresExtraContextKeys(t *testing.T) {
	template, err := NewJobTemplate(SchedulerPBS, "#PBS -N {job_name}\n")
	require.NoError(t, err)
	ctx := RenderContext{"job_name": "otus"}
	plain, err := template.Render(ctx)
	require.NoError(t, err)
	ctx["extra_key"] = "extra_val"
	extra, err := template.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, plain, extra)
}

func TestRenderDoesNotRecurse(t *testing.T) {
	template, err := NewJobTemplate(SchedulerSlurm, "echo {greeting}\n")
	require.NoError(t, err)
	script, err := template.Render(RenderContext{"greeting": "{job_name}"})
	require.NoError(t, err)
	// substituted values are never re-scanned
	assert.Equal(t, "echo {job_name}\n", script.Body)
}

func TestRenderValueFormats(t *testing.T) {
	template, err := NewJobTemplate(SchedulerSlurm, "{a} {b} {c} {d}")
	require.NoError(t, err)
	script, err := template.Render(RenderContext{
		"a": "text",
		"b": 42,
		"c": int64(7),
		"d": 0.985,
	})
	require.NoError(t, err)
	assert.Equal(t, "text 42 7 0.985", script.Body)
}

func TestRequiredPlaceholdersReturnsCopy(t *testing.T) {
	template, err := NewJobTemplate(SchedulerSlurm, "{a} {b}")
	require.NoError(t, err)
	names := template.RequiredPlaceholders()
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, template.RequiredPlaceholders())
}

func TestParallelRenders(t *testing.T) {
	template, err := NewJobTemplate(SchedulerSlurm, "-i {job_num}.fna -o bpo.{job_num}\n")
	require.NoError(t, err)
	var wg sync.WaitGroup
	bodies := make([]string, 32)
	for i := range bodies {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			script, rerr := template.Render(RenderContext{"job_num": i})
			if rerr != nil {
				return
			}
			bodies[i] = script.Body
		}(i)
	}
	wg.Wait()
	for i, body := range bodies {
		expected, rerr := template.Render(RenderContext{"job_num": i})
		require.NoError(t, rerr)
		assert.Equal(t, expected.Body, body)
	}
}

func TestParseSchedulerKind(t *testing.T) {
	kind, err := ParseSchedulerKind("Slurm")
	require.NoError(t, err)
	assert.Equal(t, SchedulerSlurm, kind)
	kind, err = ParseSchedulerKind("torque")
	require.NoError(t, err)
	assert.Equal(t, SchedulerPBS, kind)
	_, err = ParseSchedulerKind("lsf")
	var notFound *TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
}
