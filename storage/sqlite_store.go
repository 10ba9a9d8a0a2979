// Package storage persists loaded datasets in a local SQLite database so
// they can be inspected and exported later without re-reading the source
// file. Each dataset lives in its own table with TEXT columns; a catalog
// table records the original column order.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"tabload/tabular"
)

type SQLiteStore struct {
	db *sql.DB
}

var ErrTableNotFound = errors.New("dataset table not found")

type TableInfo struct {
	Name       string
	Columns    []string
	RowCount   int
	SourceFile string
	ImportedAt string
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS dataset_catalog (
	table_name TEXT PRIMARY KEY,
	columns TEXT NOT NULL,
	source_file TEXT NOT NULL DEFAULT '',
	imported_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SaveDataset stores the dataset under the given table name, replacing
// any previous import with the same name. Returns the number of rows
// persisted.
func (s *SQLiteStore) SaveDataset(table string, dataset *tabular.Dataset, sourceFile string) (int, error) {
	if err := validateTableName(table); err != nil {
		return 0, err
	}
	if dataset.NumCols() == 0 {
		return 0, fmt.Errorf("dataset has no columns")
	}

	columnsJSON, err := json.Marshal(dataset.Columns)
	if err != nil {
		return 0, fmt.Errorf("encode column list: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s;`, quoteIdentifier(table))); err != nil {
		return 0, fmt.Errorf("drop previous table %s: %w", table, err)
	}

	columnDefs := make([]string, len(dataset.Columns))
	for i, column := range dataset.Columns {
		columnDefs[i] = quoteIdentifier(column) + " TEXT"
	}
	createStmt := fmt.Sprintf(`CREATE TABLE %s (%s);`, quoteIdentifier(table), strings.Join(columnDefs, ", "))
	if _, err := tx.Exec(createStmt); err != nil {
		return 0, fmt.Errorf("create table %s: %w", table, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(dataset.Columns)), ", ")
	insertStmt, err := tx.Prepare(fmt.Sprintf(`INSERT INTO %s VALUES (%s);`, quoteIdentifier(table), placeholders))
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer insertStmt.Close()

	inserted := 0
	for _, row := range dataset.Rows {
		values := make([]any, len(dataset.Columns))
		for i, column := range dataset.Columns {
			values[i] = tabular.FormatValue(row[column])
		}
		if _, err := insertStmt.Exec(values...); err != nil {
			return 0, fmt.Errorf("insert row %d: %w", inserted+1, err)
		}
		inserted++
	}

	if _, err := tx.Exec(
		`INSERT INTO dataset_catalog (table_name, columns, source_file) VALUES (?, ?, ?)
		 ON CONFLICT(table_name) DO UPDATE SET columns = excluded.columns,
		 source_file = excluded.source_file, imported_at = CURRENT_TIMESTAMP;`,
		table, string(columnsJSON), sourceFile,
	); err != nil {
		return 0, fmt.Errorf("update catalog for %s: %w", table, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

// LoadDataset reads a previously saved dataset back, restoring the
// original column order from the catalog.
func (s *SQLiteStore) LoadDataset(table string) (*tabular.Dataset, error) {
	if err := validateTableName(table); err != nil {
		return nil, err
	}

	columns, err := s.catalogColumns(table)
	if err != nil {
		return nil, err
	}

	selectList := make([]string, len(columns))
	for i, column := range columns {
		selectList[i] = quoteIdentifier(column)
	}
	rows, err := s.db.Query(fmt.Sprintf(`SELECT %s FROM %s;`, strings.Join(selectList, ", "), quoteIdentifier(table)))
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", table, err)
	}
	defer rows.Close()

	dataset := &tabular.Dataset{Columns: columns, Rows: make([]tabular.Row, 0, 128)}
	for rows.Next() {
		cells := make([]sql.NullString, len(columns))
		targets := make([]any, len(columns))
		for i := range cells {
			targets[i] = &cells[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(tabular.Row, len(columns))
		for i, column := range columns {
			row[column] = cells[i].String
		}
		dataset.Rows = append(dataset.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table %s: %w", table, err)
	}

	return dataset, nil
}

// ListTables returns catalog entries for all stored datasets, ordered by
// table name.
func (s *SQLiteStore) ListTables() ([]TableInfo, error) {
	rows, err := s.db.Query(`SELECT table_name, columns, source_file, imported_at FROM dataset_catalog ORDER BY table_name;`)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	infos := make([]TableInfo, 0, 8)
	for rows.Next() {
		var info TableInfo
		var columnsJSON string
		if err := rows.Scan(&info.Name, &columnsJSON, &info.SourceFile, &info.ImportedAt); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		if err := json.Unmarshal([]byte(columnsJSON), &info.Columns); err != nil {
			return nil, fmt.Errorf("decode column list for %s: %w", info.Name, err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}

	for i := range infos {
		var count int
		if err := s.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s;`, quoteIdentifier(infos[i].Name))).Scan(&count); err != nil {
			return nil, fmt.Errorf("count rows in %s: %w", infos[i].Name, err)
		}
		infos[i].RowCount = count
	}

	return infos, nil
}

func (s *SQLiteStore) catalogColumns(table string) ([]string, error) {
	var columnsJSON string
	err := s.db.QueryRow(`SELECT columns FROM dataset_catalog WHERE table_name = ?;`, table).Scan(&columnsJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	if err != nil {
		return nil, fmt.Errorf("query catalog for %s: %w", table, err)
	}

	var columns []string
	if err := json.Unmarshal([]byte(columnsJSON), &columns); err != nil {
		return nil, fmt.Errorf("decode column list for %s: %w", table, err)
	}
	return columns, nil
}

func validateTableName(table string) error {
	if strings.TrimSpace(table) == "" {
		return fmt.Errorf("table name must not be empty")
	}
	if table == "dataset_catalog" {
		return fmt.Errorf("table name %q is reserved", table)
	}
	return nil
}

// quoteIdentifier makes an arbitrary header usable as a SQLite
// identifier. Double quotes inside the name are doubled per the SQL
// standard.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
