package repositories

import (
	"database/sql"
	"fmt"

	"github.com/gfmartins/racing-system/models"
)

// rowScanner cobre *sql.Row e *sql.Rows, para reaproveitar os scans.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func checkRowsAffected(result sql.Result) (int64, error) {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return rowsAffected, nil
}

func nullDate(nt sql.NullTime) *models.Date {
	if !nt.Valid {
		return nil
	}
	return models.NewDate(nt.Time)
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}
