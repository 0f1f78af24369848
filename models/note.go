package models

import "time"

// Note is a user-owned note record. The owning user never changes after
// creation; the folder association is optional and may only reference a
// folder that belongs to the same owner.
//
// Deleted marks the trashed state: a trashed note stays in the database and
// can be restored until it is hard-deleted.
type Note struct {
	// NoteID is the internal unique identifier of the note.
	NoteID int64 `json:"id"`

	// Title is the user-visible note title.
	Title string `json:"title"`

	// Content is the opaque note body.
	Content string `json:"content"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id"`

	// FolderID is the optional identifier of the containing folder.
	// Nil means the note is not placed in any folder.
	FolderID *int64 `json:"folder_id"`

	// Deleted reports whether the note is in the trash.
	Deleted bool `json:"deleted"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every mutation of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteUpdate describes a partial update of a note record.
// Nil fields are left untouched. SetFolderNil detaches the note from its
// folder explicitly, since a nil FolderID alone is indistinguishable from
// "no change".
type NoteUpdate struct {
	Title        *string `json:"title,omitempty"`
	Content      *string `json:"content,omitempty"`
	FolderID     *int64  `json:"folder_id,omitempty"`
	SetFolderNil bool    `json:"detach_folder,omitempty"`
}

// IsEmpty reports whether the update carries no effective changes.
func (n NoteUpdate) IsEmpty() bool {
	return n.Title == nil && n.Content == nil && n.FolderID == nil && !n.SetFolderNil
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
