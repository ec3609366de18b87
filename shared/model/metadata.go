package model

// Metadata carries the audit timestamps shared by every table. The
// sqlite driver returns TEXT columns as strings, so timestamps are
// stored pre-formatted (RFC3339) rather than as time.Time.
type Metadata struct {
	CreatedAt  string `db:"created_at"`
	ModifiedAt string `db:"modified_at"`
}
