package sheet

import (
	"fmt"
	"strings"
)

// Column describes how one record field is displayed.
type Column struct {
	ID       string
	Header   string
	Accessor Field
	Width    int // terminal cells, including padding
	Sortable bool
}

// Editable reports whether the column accepts direct text edits.
func (c Column) Editable() bool {
	return !c.Accessor.Badge()
}

// Columns is the ordered column registry. Order is display order and the
// order used for horizontal navigation.
type Columns []Column

// DefaultColumns returns the job-request column registry.
func DefaultColumns() Columns {
	return Columns{
		{ID: "job-request", Header: "Job Request", Accessor: FieldJobRequest, Width: 34, Sortable: true},
		{ID: "submitted", Header: "Submitted", Accessor: FieldSubmitted, Width: 12, Sortable: true},
		{ID: "status", Header: "Status", Accessor: FieldStatus, Width: 16, Sortable: true},
		{ID: "submitter", Header: "Submitter", Accessor: FieldSubmitter, Width: 17, Sortable: true},
		{ID: "url", Header: "URL", Accessor: FieldURL, Width: 22, Sortable: false},
		{ID: "assigned", Header: "Assigned", Accessor: FieldAssigned, Width: 17, Sortable: true},
		{ID: "priority", Header: "Priority", Accessor: FieldPriority, Width: 10, Sortable: true},
		{ID: "due-date", Header: "Due Date", Accessor: FieldDueDate, Width: 12, Sortable: true},
		{ID: "est-value", Header: "Est. Value", Accessor: FieldEstValue, Width: 12, Sortable: true},
	}
}

// ByID returns the column with the given id.
func (cs Columns) ByID(id string) (Column, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// At returns the column at index i, if in range.
func (cs Columns) At(i int) (Column, bool) {
	if i < 0 || i >= len(cs) {
		return Column{}, false
	}
	return cs[i], true
}

// Validate checks that ids are unique and accessors name real fields.
func (cs Columns) Validate() error {
	seen := make(map[string]struct{}, len(cs))
	for i, c := range cs {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			return fmt.Errorf("column %d: empty id", i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("column %q: duplicate id", id)
		}
		seen[id] = struct{}{}
		if !c.Accessor.Valid() || c.Accessor == FieldID {
			return fmt.Errorf("column %q: unknown accessor %q", id, c.Accessor)
		}
	}
	return nil
}
