package models

import "time"

// Folder is an owned container for notes. A folder belongs to exactly one
// user and its owner never changes after creation.
type Folder struct {
	// FolderID is the internal unique identifier of the folder.
	FolderID int64 `json:"id"`

	// Name is the user-visible folder name.
	Name string `json:"name"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id"`

	// CreatedAt is the timestamp when the folder was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Folder model.
func (f Folder) TableName() string {
	return "folders"
}
