package core

import "fmt"

// Rendering failures are local validation errors. None of them is
// retryable: the same input fails the same way.

// TemplateNotFoundError reports a scheduler kind with no registered
// template.
type TemplateNotFoundError struct {
	Kind SchedulerKind
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("core: no job template registered for scheduler %q", string(e.Kind))
}

// MissingPlaceholderError reports the first required placeholder the
// render context did not supply.
type MissingPlaceholderError struct {
	Name string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("core: render context missing placeholder {%s}", e.Name)
}

// MalformedTemplateError reports invalid template text, e.g. an
// unterminated '{'.
type MalformedTemplateError struct {
	Offset int
	Reason string
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("core: malformed template at offset %d: %s", e.Offset, e.Reason)
}
