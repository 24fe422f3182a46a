package output

import (
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type table struct {
	name   string
	schema string
	insert string
}

var (
	ihsTable = table{
		name:   "ihs",
		schema: "id TEXT, pos INTEGER, freq REAL, ihh1 REAL, ihh0 REAL, ihs REAL",
		insert: "(id, pos, freq, ihh1, ihh0, ihs) VALUES (:id, :pos, :freq, :ihh1, :ihh0, :ihs)",
	}
	xpehhTable = table{
		name:   "xpehh",
		schema: "id TEXT, pos INTEGER, gpos REAL, p1 REAL, ihh1 REAL, p2 REAL, ihh2 REAL, xpehh REAL",
		insert: "(id, pos, gpos, p1, ihh1, p2, ihh2, xpehh) VALUES (:id, :pos, :gpos, :p1, :ihh1, :p2, :ihh2, :xpehh)",
	}
	softTable = table{
		name:   "soft",
		schema: "id TEXT, pos INTEGER, freq REAL, h1 REAL, h12 REAL, h2dh1 REAL",
		insert: "(id, pos, freq, h1, h12, h2dh1) VALUES (:id, :pos, :freq, :h1, :h12, :h2dh1)",
	}
	ehhTable = table{
		name:   "ehh",
		schema: "phys_offset INTEGER, gen_offset REAL, ehh1 REAL, ehh0 REAL",
		insert: "(phys_offset, gen_offset, ehh1, ehh0) VALUES (:phys_offset, :gen_offset, :ehh1, :ehh0)",
	}
	softEHHTable = table{
		name:   "soft_ehh",
		schema: "phys_offset INTEGER, gen_offset REAL, h1 REAL, h12 REAL, h2dh1 REAL",
		insert: "(phys_offset, gen_offset, h1, h12, h2dh1) VALUES (:phys_offset, :gen_offset, :h1, :h12, :h2dh1)",
	}
)

// SQLiteWriter stores result rows in a SQLite database, one table per scan
// mode. Writing a table replaces its previous contents.
type SQLiteWriter struct {
	db *sqlx.DB
}

func OpenSQLite(path string) (*SQLiteWriter, error) {
	db, err := sqlx.Connect("sqlite3", "file:"+path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return &SQLiteWriter{db: db}, nil
}

func (w *SQLiteWriter) Close() error {
	return w.db.Close()
}

func (w *SQLiteWriter) DB() *sqlx.DB {
	return w.db
}

func (w *SQLiteWriter) WriteIHS(rows []IHSRow) error {
	return w.write(ihsTable, len(rows), func(i int) interface{} { return rows[i] })
}

func (w *SQLiteWriter) WriteXPEHH(rows []XPEHHRow) error {
	return w.write(xpehhTable, len(rows), func(i int) interface{} { return rows[i] })
}

func (w *SQLiteWriter) WriteSoft(rows []SoftRow) error {
	return w.write(softTable, len(rows), func(i int) interface{} { return rows[i] })
}

func (w *SQLiteWriter) WriteEHH(rows []EHHRow) error {
	return w.write(ehhTable, len(rows), func(i int) interface{} { return rows[i] })
}

func (w *SQLiteWriter) WriteSoftEHH(rows []SoftEHHRow) error {
	return w.write(softEHHTable, len(rows), func(i int) interface{} { return rows[i] })
}

func (w *SQLiteWriter) write(t table, n int, row func(int) interface{}) error {
	tx, err := w.db.Beginx()
	if err != nil {
		return pfx.Err(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", t.name)); err != nil {
		return pfx.Err(err)
	}
	if _, err := tx.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", t.name, t.schema)); err != nil {
		return pfx.Err(err)
	}

	stmt, err := tx.PrepareNamed(fmt.Sprintf("INSERT INTO %s %s", t.name, t.insert))
	if err != nil {
		return pfx.Err(err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(row(i)); err != nil {
			return pfx.Err(fmt.Errorf("%s row %d: %w", t.name, i+1, err))
		}
	}

	return pfx.Err(tx.Commit())
}
