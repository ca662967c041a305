package loader

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/borough-records-go/internal/database"
	"github.com/jengzang/borough-records-go/internal/dataset"
	"github.com/jengzang/borough-records-go/internal/repository"
)

// Source kinds
const (
	KindCSV    = "csv"
	KindSQLite = "sqlite"
)

// Open returns the record source for kind. The returned closer releases any
// database handle and is never nil.
func Open(kind, dataPath, dbPath string) (dataset.Source, func() error, error) {
	noop := func() error { return nil }

	switch kind {
	case KindCSV:
		return CSVSource{Path: dataPath}, noop, nil
	case KindSQLite:
		db, err := database.Open(database.Config{Path: dbPath})
		if err != nil {
			return nil, noop, err
		}
		if err := database.EnsureSchema(db); err != nil {
			db.Close()
			return nil, noop, err
		}
		return repository.NewRecordRepository(db), db.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown data source %q", kind)
	}
}

// ImportCSV copies every record of a CSV file into the database, replacing
// what was stored before. It returns the number of imported records.
func ImportCSV(db *sql.DB, csvPath string) (int, error) {
	records, err := CSVSource{Path: csvPath}.Records()
	if err != nil {
		return 0, err
	}
	if err := database.EnsureSchema(db); err != nil {
		return 0, err
	}

	repo := repository.NewRecordRepository(db)
	if err := repo.DeleteAll(); err != nil {
		return 0, err
	}
	if err := repo.InsertBatch(records); err != nil {
		return 0, err
	}
	return len(records), nil
}
