package database

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/errors"
)

func newTxMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestRunTransactionCommitsAllStatements(t *testing.T) {
	db, mock, cleanup := newTxMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO dogs").WithArgs("b").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	results, err := RunTransaction(context.Background(), db, []Statement{
		{SQL: "INSERT INTO users (name) VALUES ($1)", Args: []interface{}{"a"}},
		{SQL: "INSERT INTO dogs (name) VALUES ($1)", Args: []interface{}{"b"}},
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunTransactionRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newTxMock(t)
	defer cleanup()

	boom := errors.New("unique_violation")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").WithArgs("b").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").WithArgs("c").WillReturnError(boom)
	mock.ExpectRollback()

	_, err := RunTransaction(context.Background(), db, []Statement{
		{SQL: "INSERT INTO users (name) VALUES ($1)", Args: []interface{}{"a"}},
		{SQL: "INSERT INTO users (name) VALUES ($1)", Args: []interface{}{"b"}},
		{SQL: "INSERT INTO users (name) VALUES ($1)", Args: []interface{}{"c"}},
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrTransaction))
	assert.Contains(t, err.Error(), "statement 2")
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunTransactionNilHandle(t *testing.T) {
	_, err := RunTransaction(context.Background(), nil, nil)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotInitialized))
}
