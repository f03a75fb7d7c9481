// Package recording stores simulation traces and closed-form curves in a
// SQLite database so that external tools can inspect them after a run.
package recording

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// DataRecorder is a backend that can record and store data.
type DataRecorder interface {
	// CreateTable creates a new table with the given name, using the fields
	// of sampleEntry as columns.
	CreateTable(tableName string, sampleEntry any)

	// InsertData buffers one entry of the table's type for writing.
	InsertData(tableName string, entry any)

	// ListTables returns a slice containing the names of all tables.
	ListTables() []string

	// Flush writes all the buffered entries into the database.
	Flush()

	// Close flushes and closes the database.
	Close()
}

// NewDataRecorder creates a DataRecorder backed by a SQLite file at path. An
// empty path picks a random file name. The recorder flushes on process exit.
func NewDataRecorder(path string) DataRecorder {
	w := &sqliteWriter{
		dbName:    path,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	w.init()

	atexit.Register(func() { w.Flush() })

	return w
}

type table struct {
	structType reflect.Type
	entries    []any
}

// sqliteWriter writes data into a SQLite database.
type sqliteWriter struct {
	*sql.DB

	dbName     string
	tables     map[string]*table
	batchSize  int
	entryCount int
}

func (w *sqliteWriter) init() {
	if w.dbName == "" {
		w.dbName = "rowperf_" + xid.New().String()
	}

	filename := w.dbName
	if !strings.HasSuffix(filename, ".sqlite3") {
		filename += ".sqlite3"
	}

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	w.DB = db
}

func (w *sqliteWriter) CreateTable(tableName string, sampleEntry any) {
	err := checkStructFields(sampleEntry)
	if err != nil {
		panic(err)
	}

	fields := strings.Join(structs.Names(sampleEntry), ", \n\t")

	createTableSQL := `CREATE TABLE ` + tableName +
		` (` + "\n\t" + fields + "\n" + `);`
	w.mustExecute(createTableSQL)

	w.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
		entries:    []any{},
	}
}

func (w *sqliteWriter) InsertData(tableName string, entry any) {
	t, exists := w.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	t.entries = append(t.entries, entry)

	w.entryCount++
	if w.entryCount >= w.batchSize {
		w.Flush()
	}
}

func (w *sqliteWriter) ListTables() []string {
	tables := make([]string, 0, len(w.tables))
	for name := range w.tables {
		tables = append(tables, name)
	}

	return tables
}

func (w *sqliteWriter) Flush() {
	if w.entryCount == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	for tableName, t := range w.tables {
		if len(t.entries) == 0 {
			continue
		}

		stmt := w.prepareStatement(tableName, t.entries[0])

		for _, entry := range t.entries {
			v := []any{}

			value := reflect.ValueOf(entry)
			for i := 0; i < value.NumField(); i++ {
				v = append(v, value.Field(i).Interface())
			}

			_, err := stmt.Exec(v...)
			if err != nil {
				panic(err)
			}
		}

		t.entries = nil

		stmt.Close()
	}

	w.entryCount = 0
}

func (w *sqliteWriter) Close() {
	w.Flush()

	err := w.DB.Close()
	if err != nil {
		panic(err)
	}
}

func (w *sqliteWriter) mustExecute(query string) sql.Result {
	res, err := w.Exec(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}

func (w *sqliteWriter) prepareStatement(tableName string, entry any) *sql.Stmt {
	n := structs.Names(entry)
	for i := 0; i < len(n); i++ {
		n[i] = "?"
	}

	sqlStr := "INSERT INTO " + tableName +
		" VALUES (" + strings.Join(n, ", ") + ")"

	stmt, err := w.Prepare(sqlStr)
	if err != nil {
		panic(err)
	}

	return stmt
}

func checkStructFields(entry any) error {
	types := reflect.TypeOf(entry)

	for i := 0; i < types.NumField(); i++ {
		field := types.Field(i)

		if !isAllowedType(field.Type.Kind()) {
			return errors.New(
				"entry field " + field.Name + " is not a scalar type")
		}
	}

	return nil
}

func isAllowedType(kind reflect.Kind) bool {
	switch kind {
	case
		reflect.Bool,
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Float32,
		reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}
