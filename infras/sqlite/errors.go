package sqlite

import (
	"errors"

	sqlitedriver "modernc.org/sqlite"

	"lodge/shared/constant"
	"lodge/shared/failure"
)

// TranslateError maps driver constraint violations onto domain failure
// kinds so duplicate unique fields surface as Conflict and broken
// references as Integrity instead of raw storage errors.
func TranslateError(err error, entityName string) error {
	if err == nil {
		return nil
	}

	var driverErr *sqlitedriver.Error
	if !errors.As(err, &driverErr) {
		return err
	}

	switch driverErr.Code() {
	case constant.SQLiteConstraintUnique, constant.SQLiteConstraintPrimaryKey:
		return failure.Conflict("duplicate " + entityName)
	case constant.SQLiteConstraintForeignKey:
		return failure.Integrity(errors.New(entityName + " references a row that does not exist"))
	case constant.SQLiteConstraintCheck:
		return failure.Integrity(errors.New(entityName + " violates a storage constraint"))
	default:
		return err
	}
}
