package database

import (
	"database/sql"
	"fmt"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
)

// MarkViolationPaid records a payment and flips the violation to paid in one
// transaction. The status check runs against a locked row, so two officers
// settling the same violation concurrently cannot both succeed.
func MarkViolationPaid(db *sql.DB, payment *models.Payment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status models.ViolationStatus
	err = tx.QueryRow(`SELECT status FROM violations WHERE violation_id = $1 FOR UPDATE`, payment.ViolationID).Scan(&status)
	if err == sql.ErrNoRows {
		return models.ErrNotFound
	}
	if err != nil {
		return err
	}
	if status == models.StatusPaid {
		return fmt.Errorf("violation %d is already paid: %w", payment.ViolationID, models.ErrInvalidState)
	}

	queryPayment := `INSERT INTO payments (violation_id, payment_date, amount_paid, payment_method, transaction_id)
	                 VALUES ($1, $2, $3, $4, $5)
					 RETURNING payment_id`
	err = tx.QueryRow(queryPayment,
		payment.ViolationID, payment.PaymentDate, payment.AmountPaid,
		string(payment.PaymentMethod), payment.TransactionID,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %v", err)
	}

	if _, err := tx.Exec(`UPDATE violations SET status = 'paid' WHERE violation_id = $1`, payment.ViolationID); err != nil {
		return fmt.Errorf("failed to update violation status: %v", err)
	}

	return tx.Commit()
}

// RefundPayment deletes a payment and returns its violation to unpaid.
func RefundPayment(db *sql.DB, paymentID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var violationID int
	err = tx.QueryRow(`SELECT violation_id FROM payments WHERE payment_id = $1`, paymentID).Scan(&violationID)
	if err == sql.ErrNoRows {
		return models.ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM payments WHERE payment_id = $1`, paymentID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE violations SET status = 'unpaid' WHERE violation_id = $1`, violationID); err != nil {
		return err
	}
	return tx.Commit()
}

// GetAllPayments returns payments with violation details, newest first.
func GetAllPayments(db *sql.DB, limit int) ([]models.PaymentDetail, error) {
	query := `SELECT p.payment_id, p.violation_id, p.payment_date, p.amount_paid,
				     p.payment_method, p.transaction_id,
				     v.vehicle_number, vt.type_name, u.full_name AS owner_name
			  FROM payments p
			  JOIN violations v ON p.violation_id = v.violation_id
			  JOIN violation_types vt ON v.type_id = vt.type_id
			  LEFT JOIN users u ON v.user_id = u.user_id
			  ORDER BY p.payment_date DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.PaymentDetail{}
	for rows.Next() {
		p := models.PaymentDetail{}
		var txnID, ownerName sql.NullString
		err := rows.Scan(
			&p.ID, &p.ViolationID, &p.PaymentDate, &p.AmountPaid,
			&p.PaymentMethod, &txnID, &p.VehicleNumber, &p.TypeName, &ownerName,
		)
		if err != nil {
			return nil, err
		}
		p.TransactionID = txnID.String
		p.OwnerName = ownerName.String
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetPaymentsByViolation returns the payments recorded against one violation.
func GetPaymentsByViolation(db *sql.DB, violationID int) ([]models.Payment, error) {
	query := `SELECT payment_id, violation_id, payment_date, amount_paid, payment_method, transaction_id
			  FROM payments
			  WHERE violation_id = $1
			  ORDER BY payment_date DESC`

	rows, err := db.Query(query, violationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		p := models.Payment{}
		var txnID sql.NullString
		if err := rows.Scan(&p.ID, &p.ViolationID, &p.PaymentDate, &p.AmountPaid, &p.PaymentMethod, &txnID); err != nil {
			return nil, err
		}
		p.TransactionID = txnID.String
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// PaymentMethodDistribution aggregates payments by method.
func PaymentMethodDistribution(db *sql.DB) ([]models.MethodStats, error) {
	query := `SELECT payment_method, COUNT(*), SUM(amount_paid), ROUND(AVG(amount_paid), 2)
			  FROM payments
			  GROUP BY payment_method
			  ORDER BY SUM(amount_paid) DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.MethodStats{}
	for rows.Next() {
		s := models.MethodStats{}
		if err := rows.Scan(&s.Method, &s.Count, &s.TotalAmount, &s.AverageAmount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
