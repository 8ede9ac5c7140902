package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Batch scheduler targeted by a job template
type SchedulerKind string

const (
	SchedulerSlurm SchedulerKind = "slurm"
	SchedulerPBS   SchedulerKind = "pbs"
)

func ParseSchedulerKind(name string) (SchedulerKind, error) {
	switch strings.ToLower(name) {
	case "slurm":
		return SchedulerSlurm, nil
	case "pbs", "torque":
		return SchedulerPBS, nil
	}
	return "", &TemplateNotFoundError{Kind: SchedulerKind(name)}
}

// Job script template with {identifier} substitution points
/*
#SBATCH --job-name={job_name}_{job_num}
#SBATCH --time={walltime}
cp {database_path} .
*/
type JobTemplate struct {
	Kind SchedulerKind
	Raw  string

	placeholders []string
}

// Values used to fill a template's placeholders for one job
// Keys not referenced by the template are ignored
type RenderContext map[string]interface{}

// Fully substituted job script ready for sbatch/qsub
type RenderedScript struct {
	Kind SchedulerKind
	Body string
}

// NewJobTemplate scans raw for placeholder tokens and rejects
// malformed template text up front.
func NewJobTemplate(kind SchedulerKind, raw string) (*JobTemplate, error) {
	names, err := ScanPlaceholders(raw)
	if err != nil {
		return nil, err
	}
	return &JobTemplate{
		Kind:         kind,
		Raw:          raw,
		placeholders: names,
	}, nil
}

// RequiredPlaceholders returns the distinct placeholder names in raw
// text order. The returned slice is a copy.
func (t *JobTemplate) RequiredPlaceholders() []string {
	if t.placeholders == nil {
		names, err := ScanPlaceholders(t.Raw)
		if err != nil {
			return nil
		}
		t.placeholders = names
	}
	names := make([]string, len(t.placeholders))
	copy(names, t.placeholders)
	return names
}

// ScanPlaceholders extracts the distinct {identifier} tokens from
// template text. An identifier is a non-empty run of characters other
// than '{' and '}'.
func ScanPlaceholders(raw string) ([]string, error) {
	var names []string
	seen := map[string]bool{}
	err := scan(raw, func(name string) error {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Render substitutes every placeholder with the string form of its
// context value. Substitution is literal and single pass; a
// substituted value is never re-scanned for placeholders. Rendering
// either fully succeeds or returns no text.
func (t *JobTemplate) Render(ctx RenderContext) (RenderedScript, error) {
	var body strings.Builder
	err := scan(t.Raw, func(name string) error {
		val, ok := ctx[name]
		if !ok {
			return &MissingPlaceholderError{Name: name}
		}
		body.WriteString(formatValue(val))
		return nil
	}, &body)
	if err != nil {
		return RenderedScript{}, err
	}
	return RenderedScript{Kind: t.Kind, Body: body.String()}, nil
}

// scan walks template text once. Literal text outside placeholders is
// written to out (when non-nil); each placeholder name is handed to
// sub, which may substitute into out or just record the name.
func scan(raw string, sub func(name string) error, out *strings.Builder) error {
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '{' {
			if out != nil {
				out.WriteByte(c)
			}
			continue
		}
		end := strings.IndexAny(raw[i+1:], "{}")
		if end < 0 || raw[i+1+end] != '}' {
			return &MalformedTemplateError{
				Offset: i,
				Reason: "unterminated '{'",
			}
		}
		name := raw[i+1 : i+1+end]
		if len(name) == 0 {
			return &MalformedTemplateError{
				Offset: i,
				Reason: "empty placeholder",
			}
		}
		if err := sub(name); err != nil {
			return err
		}
		i += 1 + end
	}
	return nil
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
