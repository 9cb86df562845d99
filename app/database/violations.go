package database

import (
	"database/sql"
	"fmt"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
)

const violationDetailSelect = `
	SELECT v.violation_id, v.vehicle_number, v.user_id, v.type_id, v.area_id,
		   v.officer_id, v.violation_date, v.fine_amount, v.status, v.notes,
		   v.created_at,
		   vt.type_name, a.area_name, a.city, o.full_name AS officer_name,
		   u.full_name AS owner_name
	FROM violations v
	JOIN violation_types vt ON v.type_id = vt.type_id
	JOIN areas a ON v.area_id = a.area_id
	JOIN users o ON v.officer_id = o.user_id
	LEFT JOIN users u ON v.user_id = u.user_id`

func scanViolationDetail(rows *sql.Rows) (*models.ViolationDetail, error) {
	d := &models.ViolationDetail{}
	var userID sql.NullInt64
	var ownerName sql.NullString
	err := rows.Scan(
		&d.ID, &d.VehicleNumber, &userID, &d.TypeID, &d.AreaID,
		&d.OfficerID, &d.ViolationDate, &d.FineAmount, &d.Status, &d.Notes,
		&d.CreatedAt,
		&d.TypeName, &d.AreaName, &d.City, &d.OfficerName, &ownerName,
	)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		id := int(userID.Int64)
		d.UserID = &id
	}
	d.OwnerName = ownerName.String
	return d, nil
}

// CreateViolation inserts a new record; the store assigns the identifier.
func CreateViolation(db *sql.DB, v *models.Violation) error {
	query := `INSERT INTO violations
			  (vehicle_number, user_id, type_id, area_id, officer_id,
			   violation_date, fine_amount, status, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING violation_id, created_at`

	var userID interface{}
	if v.UserID != nil {
		userID = *v.UserID
	}
	return db.QueryRow(query,
		v.VehicleNumber, userID, v.TypeID, v.AreaID, v.OfficerID,
		v.ViolationDate, v.FineAmount, string(v.Status), v.Notes,
	).Scan(&v.ID, &v.CreatedAt)
}

// GetViolationByID returns a single violation with its joined names.
func GetViolationByID(db *sql.DB, violationID int) (*models.ViolationDetail, error) {
	rows, err := db.Query(violationDetailSelect+` WHERE v.violation_id = $1`, violationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, models.ErrNotFound
	}
	return scanViolationDetail(rows)
}

// withLimit appends a LIMIT clause with the next placeholder number. A limit
// of 0 means no limit.
func withLimit(query string, limit int, args []interface{}) (string, []interface{}) {
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}
	return query, args
}

// GetAllViolations returns violations newest first.
func GetAllViolations(db *sql.DB, limit int) ([]models.ViolationDetail, error) {
	query := violationDetailSelect + ` ORDER BY v.violation_date DESC`
	query, args := withLimit(query, limit, nil)
	return queryViolationDetails(db, query, args...)
}

// GetViolationsByUser returns a citizen's own violations, newest first.
func GetViolationsByUser(db *sql.DB, userID, limit int) ([]models.ViolationDetail, error) {
	query := violationDetailSelect + ` WHERE v.user_id = $1 ORDER BY v.violation_date DESC`
	query, args := withLimit(query, limit, []interface{}{userID})
	return queryViolationDetails(db, query, args...)
}

// GetViolationsByVehicle returns every violation recorded against a vehicle.
func GetViolationsByVehicle(db *sql.DB, vehicleNumber string) ([]models.ViolationDetail, error) {
	query := violationDetailSelect + ` WHERE v.vehicle_number = $1 ORDER BY v.violation_date DESC`
	return queryViolationDetails(db, query, vehicleNumber)
}

// SearchViolations matches by vehicle number or owner name.
func SearchViolations(db *sql.DB, term string) ([]models.ViolationDetail, error) {
	query := violationDetailSelect + `
	WHERE v.vehicle_number ILIKE $1 OR u.full_name ILIKE $1
	ORDER BY v.violation_date DESC`
	return queryViolationDetails(db, query, "%"+term+"%")
}

func queryViolationDetails(db *sql.DB, query string, args ...interface{}) ([]models.ViolationDetail, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []models.ViolationDetail{}
	for rows.Next() {
		d, err := scanViolationDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, rows.Err()
}

// UpdateViolationStatus moves a violation to a new status after re-checking
// the transition against the current row inside a transaction.
func UpdateViolationStatus(db *sql.DB, violationID int, from, to models.ViolationStatus) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current models.ViolationStatus
	err = tx.QueryRow(`SELECT status FROM violations WHERE violation_id = $1 FOR UPDATE`, violationID).Scan(&current)
	if err == sql.ErrNoRows {
		return models.ErrNotFound
	}
	if err != nil {
		return err
	}
	if current != from {
		return fmt.Errorf("violation %d is %s, not %s: %w", violationID, current, from, models.ErrInvalidState)
	}

	if _, err := tx.Exec(`UPDATE violations SET status = $1 WHERE violation_id = $2`, string(to), violationID); err != nil {
		return err
	}
	return tx.Commit()
}
