package sheet

// ApplyUpdate returns a record list with one field of one record replaced.
// The returned slice is new; every record other than the target is the same
// pointer as in records. When recordID or columnID does not resolve, records
// is returned unchanged with ok=false.
func ApplyUpdate(records []*Record, columns Columns, recordID, columnID string, v Value) ([]*Record, bool) {
	col, ok := columns.ByID(columnID)
	if !ok {
		return records, false
	}
	idx := -1
	for i, r := range records {
		if r.ID == recordID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return records, false
	}

	next := make([]*Record, len(records))
	copy(next, records)
	next[idx] = records[idx].With(col.Accessor, v)
	return next, true
}
