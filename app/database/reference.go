package database

import (
	"database/sql"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
)

// GetViolationTypes returns the violation type master data.
func GetViolationTypes(db *sql.DB) ([]models.ViolationType, error) {
	query := `SELECT type_id, type_name, base_fine, description
			  FROM violation_types
			  ORDER BY type_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []models.ViolationType{}
	for rows.Next() {
		t := models.ViolationType{}
		var desc sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &t.BaseFine, &desc); err != nil {
			return nil, err
		}
		t.Description = desc.String
		types = append(types, t)
	}
	return types, rows.Err()
}

// GetAreas returns the area master data.
func GetAreas(db *sql.DB) ([]models.Area, error) {
	query := `SELECT area_id, area_name, city
			  FROM areas
			  ORDER BY city, area_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []models.Area{}
	for rows.Next() {
		a := models.Area{}
		if err := rows.Scan(&a.ID, &a.Name, &a.City); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}
