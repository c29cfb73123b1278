package sheet

import (
	"strconv"
	"strings"
)

// Status is the workflow state of a job request.
type Status string

const (
	StatusNeedsToStart Status = "Needs to start"
	StatusInProgress   Status = "In-progress"
	StatusComplete     Status = "Complete"
	StatusBlocked      Status = "Blocked"
)

// Priority ranks a job request.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Field names one projectable attribute of a Record.
type Field string

const (
	FieldID         Field = "id"
	FieldJobRequest Field = "jobRequest"
	FieldSubmitted  Field = "submitted"
	FieldStatus     Field = "status"
	FieldSubmitter  Field = "submitter"
	FieldURL        Field = "url"
	FieldAssigned   Field = "assigned"
	FieldPriority   Field = "priority"
	FieldDueDate    Field = "dueDate"
	FieldEstValue   Field = "estValue"
)

var knownFields = map[Field]struct{}{
	FieldID:         {},
	FieldJobRequest: {},
	FieldSubmitted:  {},
	FieldStatus:     {},
	FieldSubmitter:  {},
	FieldURL:        {},
	FieldAssigned:   {},
	FieldPriority:   {},
	FieldDueDate:    {},
	FieldEstValue:   {},
}

// Valid reports whether f names a Record field.
func (f Field) Valid() bool {
	_, ok := knownFields[f]
	return ok
}

// Numeric reports whether commits to f are coerced to an integer.
func (f Field) Numeric() bool {
	return f == FieldEstValue
}

// Badge reports whether f renders as a fixed enumerated badge. Badge fields
// are not editable as text.
func (f Field) Badge() bool {
	return f == FieldStatus || f == FieldPriority
}

// Record is one job-request row. Records are shared by pointer between
// successive record lists and must not be modified in place; use With.
type Record struct {
	ID         string   `toml:"id"`
	JobRequest string   `toml:"job_request"`
	Submitted  string   `toml:"submitted"`
	Status     Status   `toml:"status"`
	Submitter  string   `toml:"submitter"`
	URL        string   `toml:"url"`
	Assigned   string   `toml:"assigned"`
	Priority   Priority `toml:"priority"`
	DueDate    string   `toml:"due_date"`
	EstValue   int64    `toml:"est_value"`
}

// Text returns the raw text of field f. Numbers are rendered without
// grouping, which is also the initial contents of an edit buffer.
func (r *Record) Text(f Field) string {
	switch f {
	case FieldID:
		return r.ID
	case FieldJobRequest:
		return r.JobRequest
	case FieldSubmitted:
		return r.Submitted
	case FieldStatus:
		return string(r.Status)
	case FieldSubmitter:
		return r.Submitter
	case FieldURL:
		return r.URL
	case FieldAssigned:
		return r.Assigned
	case FieldPriority:
		return string(r.Priority)
	case FieldDueDate:
		return r.DueDate
	case FieldEstValue:
		return strconv.FormatInt(r.EstValue, 10)
	default:
		return ""
	}
}

// With returns a copy of r with field f set to v. The id is immutable, so
// FieldID and unknown fields return an unchanged copy.
func (r *Record) With(f Field, v Value) *Record {
	next := *r
	switch f {
	case FieldJobRequest:
		next.JobRequest = v.String()
	case FieldSubmitted:
		next.Submitted = v.String()
	case FieldStatus:
		next.Status = Status(strings.TrimSpace(v.String()))
	case FieldSubmitter:
		next.Submitter = v.String()
	case FieldURL:
		next.URL = v.String()
	case FieldAssigned:
		next.Assigned = v.String()
	case FieldPriority:
		next.Priority = Priority(strings.TrimSpace(v.String()))
	case FieldDueDate:
		next.DueDate = v.String()
	case FieldEstValue:
		if n, ok := v.Int(); ok {
			next.EstValue = n
		} else {
			next.EstValue = ParseAmount(v.String())
		}
	}
	return &next
}
