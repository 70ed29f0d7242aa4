// Package datacopy moves the catalog from one Postgres database to another,
// table by table, keeping primary keys.
package datacopy

import (
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Tables lists every copyable table in an order that is safe for foreign
// keys. Sessions are not copied; users log in again on the new database.
var Tables = []string{
	"users",
	"brand_categories",
	"brands",
	"blog_posts",
	"store_locations",
	"product_categories",
	"products",
	"newsletter_subscriptions",
}

// TableReport counts what happened to one table.
type TableReport struct {
	Table   string `json:"table"`
	Read    int    `json:"read"`
	Copied  int    `json:"copied"`
	Skipped int    `json:"skipped"` // id already present on the target
	Failed  int    `json:"failed"`
}

// Report is the outcome of a whole run.
type Report struct {
	Tables []TableReport `json:"tables"`
}

// Failed is the number of rows that could not be written across all tables.
func (r Report) Failed() int {
	n := 0
	for _, t := range r.Tables {
		n += t.Failed
	}
	return n
}

type Copier struct {
	src *sqlx.DB
	dst *sqlx.DB
	log logrus.FieldLogger
}

func New(src, dst *sqlx.DB, log logrus.FieldLogger) *Copier {
	return &Copier{src: src, dst: dst, log: log}
}

// Copy copies the named tables (all of Tables when empty). Rows are written
// one at a time with no surrounding transaction: a row that fails is logged
// and counted, and the copy carries on. Each table's id sequence is moved to
// max(id) afterwards so new inserts on the target do not collide.
func (c *Copier) Copy(ctx context.Context, tables []string) (Report, error) {
	ordered, err := orderTables(tables)
	if err != nil {
		return Report{}, err
	}

	var report Report
	for _, table := range ordered {
		tr, err := c.copyTable(ctx, table)
		report.Tables = append(report.Tables, tr)
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

// orderTables validates the requested names and puts them in Tables order.
func orderTables(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return Tables, nil
	}
	for _, t := range requested {
		if !slices.Contains(Tables, t) {
			return nil, fmt.Errorf("unknown table %q", t)
		}
	}
	out := make([]string, 0, len(requested))
	for _, t := range Tables {
		if slices.Contains(requested, t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (c *Copier) copyTable(ctx context.Context, table string) (TableReport, error) {
	tr := TableReport{Table: table}
	log := c.log.WithField("table", table)

	// 1. --- Read every row as JSON ---
	// row_to_json keeps JSONB columns and timestamps intact without this
	// package knowing each table's shape.
	var rows []string
	if err := c.src.SelectContext(ctx, &rows, selectRowsQuery(table)); err != nil {
		return tr, fmt.Errorf("read %s: %w", table, err)
	}
	tr.Read = len(rows)

	// 2. --- Insert one by one ---
	insert := insertRowQuery(table)
	for _, row := range rows {
		res, err := c.dst.ExecContext(ctx, insert, row)
		if err != nil {
			tr.Failed++
			log.WithError(err).WithField("id", gjson.Get(row, "id").Int()).Error("Failed to copy row")
			continue
		}
		if n, _ := res.RowsAffected(); n == 0 {
			tr.Skipped++
			continue
		}
		tr.Copied++
	}

	// 3. --- Move the sequence past the copied ids ---
	if _, err := c.dst.ExecContext(ctx, resetSequenceQuery(table), table); err != nil {
		return tr, fmt.Errorf("reset %s id sequence: %w", table, err)
	}

	log.WithFields(logrus.Fields{
		"read":    tr.Read,
		"copied":  tr.Copied,
		"skipped": tr.Skipped,
		"failed":  tr.Failed,
	}).Info("Table copied")
	return tr, nil
}

func selectRowsQuery(table string) string {
	return fmt.Sprintf("SELECT row_to_json(t)::text FROM %s t ORDER BY id", table)
}

func insertRowQuery(table string) string {
	return fmt.Sprintf(
		"INSERT INTO %[1]s SELECT * FROM json_populate_record(NULL::%[1]s, $1::json) ON CONFLICT (id) DO NOTHING",
		table,
	)
}

func resetSequenceQuery(table string) string {
	return fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence($1, 'id'), COALESCE(MAX(id), 1), MAX(id) IS NOT NULL) FROM %s",
		table,
	)
}
