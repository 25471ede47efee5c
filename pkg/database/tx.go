package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	appErrors "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/errors"
)

// Statement pairs one SQL command with its ordered bound arguments.
type Statement struct {
	SQL  string
	Args []interface{}
}

// RunTransaction executes the statements in order on a single connection
// inside one transaction. Either every statement commits or none does; on
// failure the error names the offending statement index. The connection is
// returned to the pool on every exit path.
func RunTransaction(ctx context.Context, db *sqlx.DB, stmts []Statement) ([]sql.Result, error) {
	if db == nil {
		return nil, appErrors.ErrNotInitialized
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrTransaction.Code, appErrors.ErrTransaction.Status, "begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	results := make([]sql.Result, 0, len(stmts))
	for i, stmt := range stmts {
		res, execErr := tx.ExecContext(ctx, stmt.SQL, stmt.Args...)
		if execErr != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				execErr = fmt.Errorf("rollback failed (%v) after statement %d: %w", rbErr, i, execErr)
			} else {
				execErr = fmt.Errorf("statement %d: %w", i, execErr)
			}
			return nil, appErrors.Wrap(execErr, appErrors.ErrTransaction.Code, appErrors.ErrTransaction.Status, "transaction rolled back")
		}
		results = append(results, res)
	}

	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrTransaction.Code, appErrors.ErrTransaction.Status, "commit transaction")
	}

	return results, nil
}
