package notes

// Note is one named note. Timestamps are ISO-8601 strings carrying the
// offset of the timezone that was resolved when the note was written.
type Note struct {
	Name      string `json:"note_name"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AddResult is the non-raising outcome of an add or update.
type AddResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Note    *Note  `json:"note"`
}

// GetResult is the non-raising outcome of a single-note lookup.
type GetResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Note    *Note  `json:"note"`
}

// ListResult is the non-raising outcome of a list-all.
type ListResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Notes   []Note `json:"notes"`
}

// DeleteResult is the non-raising outcome of a delete. DeletedNote carries
// the removed note's name, or null when nothing was removed.
type DeleteResult struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	DeletedNote *string `json:"deleted_note"`
}
