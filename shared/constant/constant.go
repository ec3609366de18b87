package constant

const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02T15:04:05Z07:00"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 50
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
)

// SQLite extended result codes for constraint violations.
// https://sqlite.org/rescode.html
const (
	SQLiteConstraintForeignKey = 787
	SQLiteConstraintPrimaryKey = 1555
	SQLiteConstraintUnique     = 2067
	SQLiteConstraintCheck      = 275
)

const (
	Empty = ""
)
