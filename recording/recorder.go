// Package recording persists flowsheet simulation results into SQLite
// files so that passes can be compared and reported offline.
package recording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	// SQLite driver for the result files.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// A Recorder is a backend that stores rows of simulation results. Rows are
// buffered and written in batches; a flush is registered at process exit.
type Recorder interface {
	// CreateTable creates a table whose columns are the fields of the
	// sample entry.
	CreateTable(tableName string, sampleEntry any)

	// Insert buffers one row for a table that already exists.
	Insert(tableName string, entry any)

	// ListTables returns the names of all created tables.
	ListTables() []string

	// Flush writes all buffered rows to the database.
	Flush()

	// Close flushes and closes the database.
	Close() error
}

// NewRecorder creates a SQLite-backed recorder. An empty path picks a
// unique file name. The file must not already exist.
func NewRecorder(path string) *SQLiteRecorder {
	if path == "" {
		path = "unitops_results_" + xid.New().String()
	}

	r := &SQLiteRecorder{
		path:      path,
		batchSize: 10000,
		tables:    make(map[string]*resultTable),
	}

	r.open()

	atexit.Register(func() { r.Flush() })

	return r
}

type resultTable struct {
	rowType reflect.Type
	rows    []any
}

// SQLiteRecorder writes result rows into a SQLite database file.
type SQLiteRecorder struct {
	*sql.DB

	path      string
	batchSize int
	tables    map[string]*resultTable
	rowCount  int
}

func (r *SQLiteRecorder) open() {
	filename := r.path + ".sqlite3"

	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("result file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	fmt.Fprintf(os.Stderr, "Recording results to %s\n", filename)

	r.DB = db
}

func rowFieldsMustBeScalar(entry any) {
	t := reflect.TypeOf(entry)

	for i := 0; i < t.NumField(); i++ {
		switch t.Field(i).Type.Kind() {
		case reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16,
			reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16,
			reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64,
			reflect.String:
		default:
			panic(fmt.Errorf(
				"field %s of a result row must be a scalar",
				t.Field(i).Name))
		}
	}
}

// CreateTable creates a table whose columns are the fields of the sample
// entry.
func (r *SQLiteRecorder) CreateTable(tableName string, sampleEntry any) {
	rowFieldsMustBeScalar(sampleEntry)

	fields := structs.Names(sampleEntry)
	query := "CREATE TABLE " + tableName +
		" (\n\t" + strings.Join(fields, ",\n\t") + "\n);"
	r.mustExecute(query)

	r.tables[tableName] = &resultTable{
		rowType: reflect.TypeOf(sampleEntry),
	}
}

// Insert buffers one row for a table that already exists.
func (r *SQLiteRecorder) Insert(tableName string, entry any) {
	table, exists := r.tables[tableName]
	if !exists {
		panic(fmt.Errorf("result table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != table.rowType {
		panic(fmt.Errorf(
			"row type %T does not match table %s", entry, tableName))
	}

	table.rows = append(table.rows, entry)

	r.rowCount++
	if r.rowCount >= r.batchSize {
		r.Flush()
	}
}

// ListTables returns the names of all created tables.
func (r *SQLiteRecorder) ListTables() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}

	return names
}

// Flush writes all buffered rows to the database.
func (r *SQLiteRecorder) Flush() {
	if r.rowCount == 0 {
		return
	}

	r.mustExecute("BEGIN TRANSACTION")
	defer r.mustExecute("COMMIT TRANSACTION")

	for tableName, table := range r.tables {
		if len(table.rows) == 0 {
			continue
		}

		stmt := r.prepareInsert(tableName, table)

		for _, row := range table.rows {
			v := reflect.ValueOf(row)

			args := make([]any, 0, v.NumField())
			for i := 0; i < v.NumField(); i++ {
				args = append(args, v.Field(i).Interface())
			}

			if _, err := stmt.Exec(args...); err != nil {
				panic(err)
			}
		}

		table.rows = nil
		stmt.Close()
	}

	r.rowCount = 0
}

// Close flushes and closes the database.
func (r *SQLiteRecorder) Close() error {
	r.Flush()
	return r.DB.Close()
}

func (r *SQLiteRecorder) prepareInsert(
	tableName string,
	table *resultTable,
) *sql.Stmt {
	placeholders := make([]string, table.rowType.NumField())
	for i := range placeholders {
		placeholders[i] = "?"
	}

	query := "INSERT INTO " + tableName +
		" VALUES (" + strings.Join(placeholders, ", ") + ")"

	stmt, err := r.Prepare(query)
	if err != nil {
		panic(err)
	}

	return stmt
}

func (r *SQLiteRecorder) mustExecute(query string) {
	if _, err := r.Exec(query); err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}
}
