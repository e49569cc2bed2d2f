package models

// IterationStatus is the test/analysis status of an iteration.
type IterationStatus string

// IterationStatusDeleted marks iterations removed by their author. They are
// never backed up.
const IterationStatusDeleted IterationStatus = "deleted"

// Iteration is one versioned submission within a solution's history.
//
// Index is a 1-based ordinal, strictly ascending in the remote listing.
// Locally an iteration is stored in a directory literally named by its
// decimal Index.
type Iteration struct {
	UUID           string          `json:"uuid"`
	SubmissionUUID string          `json:"submission_uuid,omitempty"`
	Index          int             `json:"idx"`
	Status         IterationStatus `json:"status"`
	IsPublished    bool            `json:"is_published"`
	IsLatest       bool            `json:"is_latest,omitempty"`
	CreatedAt      string          `json:"created_at,omitempty"`
}

// SubmissionFile is a single file of an iteration's submission, returned
// inline by the API.
type SubmissionFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Digest   string `json:"digest,omitempty"`
}

// SyncOps is the outcome of planning an iteration synchronization: local
// iteration indices to delete and remote iterations to download.
// It is never persisted.
type SyncOps struct {
	CleanUp  []int
	ToBackup []Iteration
}

// Empty reports whether applying ops would not touch the disk.
func (o SyncOps) Empty() bool {
	return len(o.CleanUp) == 0 && len(o.ToBackup) == 0
}
