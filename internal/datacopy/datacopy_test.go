package datacopy

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return sqlx.NewDb(db, "pgx"), mock
}

func TestOrderTables(t *testing.T) {
	got, err := orderTables([]string{"products", "users", "brands"})
	require.NoError(t, err)
	assert.Equal(t, []string{"users", "brands", "products"}, got)

	got, err = orderTables(nil)
	require.NoError(t, err)
	assert.Equal(t, Tables, got)

	_, err = orderTables([]string{"users; DROP TABLE users"})
	assert.Error(t, err)
}

func TestCopyContinuesPastFailedRows(t *testing.T) {
	src, srcMock := newMockDB(t)
	dst, dstMock := newMockDB(t)
	log, hook := test.NewNullLogger()

	rows := []string{
		`{"id":1,"category":"Disposables"}`,
		`{"id":2,"category":"Pods"}`,
		`{"id":3,"category":"Juice"}`,
	}
	srcRows := sqlmock.NewRows([]string{"row_to_json"})
	for _, r := range rows {
		srcRows.AddRow(r)
	}
	srcMock.ExpectQuery(regexp.QuoteMeta(selectRowsQuery("brand_categories"))).WillReturnRows(srcRows)

	insert := regexp.QuoteMeta(insertRowQuery("brand_categories"))
	dstMock.ExpectExec(insert).WithArgs(rows[0]).WillReturnResult(sqlmock.NewResult(0, 1))
	dstMock.ExpectExec(insert).WithArgs(rows[1]).WillReturnError(errors.New("value too long"))
	dstMock.ExpectExec(insert).WithArgs(rows[2]).WillReturnResult(sqlmock.NewResult(0, 0))
	dstMock.ExpectExec(regexp.QuoteMeta(resetSequenceQuery("brand_categories"))).
		WithArgs("brand_categories").
		WillReturnResult(sqlmock.NewResult(0, 1))

	report, err := New(src, dst, log).Copy(context.Background(), []string{"brand_categories"})
	require.NoError(t, err)

	require.Len(t, report.Tables, 1)
	assert.Equal(t, TableReport{Table: "brand_categories", Read: 3, Copied: 1, Skipped: 1, Failed: 1}, report.Tables[0])
	assert.Equal(t, 1, report.Failed())

	var failed *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			failed = e
		}
	}
	require.NotNil(t, failed)
	assert.Equal(t, int64(2), failed.Data["id"])
}

func TestCopyStopsWhenSourceUnreadable(t *testing.T) {
	src, srcMock := newMockDB(t)
	dst, _ := newMockDB(t)
	log, _ := test.NewNullLogger()

	srcMock.ExpectQuery(regexp.QuoteMeta(selectRowsQuery("users"))).WillReturnError(errors.New("relation does not exist"))

	report, err := New(src, dst, log).Copy(context.Background(), []string{"users"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read users")
	require.Len(t, report.Tables, 1)
	assert.Zero(t, report.Tables[0].Read)
}
