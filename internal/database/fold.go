package database

import (
	"database/sql/driver"

	"golang.org/x/text/cases"
	msqlite "modernc.org/sqlite"
)

// FoldFunc is the SQLite function that case-folds text with Unicode rules.
// SQLite's own LOWER only folds ASCII.
const FoldFunc = "fold"

var folder = cases.Fold()

func init() {
	msqlite.MustRegisterDeterministicScalarFunction(FoldFunc, 1, fold)
}

func fold(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return folder.String(v), nil
	case []byte:
		return folder.String(string(v)), nil
	default:
		return v, nil
	}
}
