package manuscript

// EntryPatch is a partial update for an entry. Nil fields are left
// unchanged. A non-nil Details replaces the entire prior details payload;
// there is no field-level merge inside details.
type EntryPatch struct {
	Title        *string
	Authors      *[]string
	Affiliations *[]string
	Abstract     *string
	Details      *Details
}

// IsZero reports whether the patch changes nothing.
func (p EntryPatch) IsZero() bool {
	return p.Title == nil && p.Authors == nil && p.Affiliations == nil &&
		p.Abstract == nil && p.Details == nil
}

// Apply merges the patch into the entry.
func (p EntryPatch) Apply(e *Entry) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Authors != nil {
		e.Authors = append([]string(nil), (*p.Authors)...)
	}
	if p.Affiliations != nil {
		e.Affiliations = append([]string(nil), (*p.Affiliations)...)
	}
	if p.Abstract != nil {
		e.Abstract = *p.Abstract
	}
	if p.Details != nil {
		d := *p.Details
		e.Details = &d
	}
}
