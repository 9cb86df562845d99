package analytics

import (
	"database/sql"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
)

// GetMonthlyTrends returns per-month violation volume for the last N months.
func GetMonthlyTrends(db *sql.DB, months int) ([]models.MonthlyTrend, error) {
	query := `
		SELECT
			TO_CHAR(violation_date, 'YYYY-MM') AS month,
			COUNT(*) AS total_violations,
			COALESCE(SUM(fine_amount), 0) AS total_fines,
			COALESCE(SUM(CASE WHEN status = 'paid' THEN fine_amount ELSE 0 END), 0) AS collected_amount,
			COUNT(CASE WHEN status = 'paid' THEN 1 END) AS paid_count,
			COUNT(CASE WHEN status = 'unpaid' THEN 1 END) AS unpaid_count
		FROM violations
		WHERE violation_date >= NOW() - ($1 || ' months')::interval
		GROUP BY TO_CHAR(violation_date, 'YYYY-MM')
		ORDER BY month DESC`

	rows, err := db.Query(query, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trends := []models.MonthlyTrend{}
	for rows.Next() {
		t := models.MonthlyTrend{}
		if err := rows.Scan(&t.Month, &t.TotalViolations, &t.TotalFines, &t.CollectedAmount, &t.PaidCount, &t.UnpaidCount); err != nil {
			return nil, err
		}
		trends = append(trends, t)
	}
	return trends, rows.Err()
}

// GetOfficerPerformance summarises registrations per officer.
func GetOfficerPerformance(db *sql.DB) ([]models.OfficerPerformance, error) {
	query := `
		SELECT
			u.full_name AS officer_name,
			u.email,
			COUNT(v.violation_id) AS violations_registered,
			COALESCE(SUM(v.fine_amount), 0) AS total_fines_imposed,
			COUNT(CASE WHEN v.status = 'paid' THEN 1 END) AS paid_count,
			COUNT(CASE WHEN v.status = 'unpaid' THEN 1 END) AS unpaid_count,
			ROUND(
				COUNT(CASE WHEN v.status = 'paid' THEN 1 END)::numeric /
				NULLIF(COUNT(v.violation_id), 0) * 100, 2
			) AS collection_rate
		FROM users u
		LEFT JOIN violations v ON u.user_id = v.officer_id
		WHERE u.role = 'officer'
		GROUP BY u.user_id, u.full_name, u.email
		HAVING COUNT(v.violation_id) > 0
		ORDER BY violations_registered DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	performance := []models.OfficerPerformance{}
	for rows.Next() {
		p := models.OfficerPerformance{}
		var rate sql.NullFloat64
		if err := rows.Scan(&p.OfficerName, &p.Email, &p.Registered, &p.TotalImposed, &p.PaidCount, &p.UnpaidCount, &rate); err != nil {
			return nil, err
		}
		p.CollectionRate = rate.Float64
		performance = append(performance, p)
	}
	return performance, rows.Err()
}

// GetTopViolators returns vehicles with repeat violations, worst first.
func GetTopViolators(db *sql.DB, limit int) ([]models.TopViolator, error) {
	query := `
		SELECT
			v.vehicle_number,
			COALESCE(u.full_name, '') AS owner_name,
			COUNT(v.violation_id) AS violation_count,
			COALESCE(SUM(v.fine_amount), 0) AS total_fines,
			COALESCE(SUM(CASE WHEN v.status = 'paid' THEN v.fine_amount ELSE 0 END), 0) AS paid_amount,
			COALESCE(SUM(CASE WHEN v.status = 'unpaid' THEN v.fine_amount ELSE 0 END), 0) AS unpaid_amount
		FROM violations v
		LEFT JOIN users u ON v.user_id = u.user_id
		GROUP BY v.vehicle_number, u.full_name
		HAVING COUNT(v.violation_id) > 1
		ORDER BY violation_count DESC, total_fines DESC
		LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	violators := []models.TopViolator{}
	for rows.Next() {
		t := models.TopViolator{}
		if err := rows.Scan(&t.VehicleNumber, &t.OwnerName, &t.ViolationCount, &t.TotalFines, &t.PaidAmount, &t.UnpaidAmount); err != nil {
			return nil, err
		}
		violators = append(violators, t)
	}
	return violators, rows.Err()
}

// GetDailyViolations returns daily counts for the last N days.
func GetDailyViolations(db *sql.DB, days int) ([]models.DailyCount, error) {
	query := `
		SELECT
			TO_CHAR(violation_date, 'YYYY-MM-DD') AS date,
			COUNT(*) AS violation_count,
			COALESCE(SUM(fine_amount), 0) AS total_fines
		FROM violations
		WHERE violation_date >= NOW() - ($1 || ' days')::interval
		GROUP BY TO_CHAR(violation_date, 'YYYY-MM-DD')
		ORDER BY date DESC`

	rows, err := db.Query(query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.DailyCount{}
	for rows.Next() {
		d := models.DailyCount{}
		if err := rows.Scan(&d.Date, &d.ViolationCount, &d.TotalFines); err != nil {
			return nil, err
		}
		counts = append(counts, d)
	}
	return counts, rows.Err()
}

// GetPeakHours returns the violation distribution by hour of day.
func GetPeakHours(db *sql.DB) ([]models.HourCount, error) {
	query := `
		SELECT
			EXTRACT(HOUR FROM violation_date)::int AS hour,
			COUNT(*) AS violation_count
		FROM violations
		GROUP BY EXTRACT(HOUR FROM violation_date)::int
		ORDER BY hour`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hours := []models.HourCount{}
	for rows.Next() {
		h := models.HourCount{}
		if err := rows.Scan(&h.Hour, &h.ViolationCount); err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}
