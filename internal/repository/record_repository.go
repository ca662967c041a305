package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/borough-records-go/internal/database"
	"github.com/jengzang/borough-records-go/internal/models"
)

const recordColumns = `date, borough, retail_recreation_gmr, grocery_pharmacy_gmr, parks_gmr,
	transit_gmr, workplaces_gmr, residential_gmr, new_cases, total_cases, new_deaths, total_deaths`

// RecordRepository handles database operations for raw borough records
type RecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// List returns every stored record in insertion order. Dates are returned
// unparsed; the snapshot loader validates them.
func (r *RecordRepository) List() ([]models.RawRecord, error) {
	rows, err := r.db.Query(`SELECT ` + recordColumns + ` FROM borough_records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.RawRecord
	for rows.Next() {
		var rec models.RawRecord
		m := &rec.Measurements
		err := rows.Scan(
			&rec.Date, &rec.Borough,
			&m.RetailRecreationGMR, &m.GroceryPharmacyGMR, &m.ParksGMR,
			&m.TransitGMR, &m.WorkplacesGMR, &m.ResidentialGMR,
			&m.NewCases, &m.TotalCases, &m.NewDeaths, &m.TotalDeaths,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// Records implements dataset.Source
func (r *RecordRepository) Records() ([]models.RawRecord, error) {
	return r.List()
}

// Count returns the number of stored records
func (r *RecordRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM borough_records`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return total, nil
}

// InsertBatch stores records in one transaction
func (r *RecordRepository) InsertBatch(records []models.RawRecord) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO borough_records (` + recordColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, rec := range records {
			m := rec.Measurements
			_, err := stmt.Exec(
				rec.Date, rec.Borough,
				m.RetailRecreationGMR, m.GroceryPharmacyGMR, m.ParksGMR,
				m.TransitGMR, m.WorkplacesGMR, m.ResidentialGMR,
				m.NewCases, m.TotalCases, m.NewDeaths, m.TotalDeaths,
			)
			if err != nil {
				return fmt.Errorf("failed to insert record %d: %w", i, err)
			}
		}
		return nil
	})
}

// DeleteAll removes every stored record
func (r *RecordRepository) DeleteAll() error {
	if _, err := r.db.Exec(`DELETE FROM borough_records`); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	return nil
}
