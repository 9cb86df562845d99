package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates on top of
// schema.sql. Each block is a no-op when the change is already present.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := addTransactionIDColumn(db); err != nil {
		return err
	}
	if err := addViolationNotesColumn(db); err != nil {
		return err
	}
	if err := ensureIndexes(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func addTransactionIDColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'payments'
				AND column_name = 'transaction_id'
			) THEN
				ALTER TABLE payments ADD COLUMN transaction_id VARCHAR(50);
				RAISE NOTICE 'Added transaction_id column to payments';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for transaction_id column: %v", err)
		return err
	}
	return nil
}

func addViolationNotesColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'violations'
				AND column_name = 'notes'
			) THEN
				ALTER TABLE violations ADD COLUMN notes TEXT NOT NULL DEFAULT '';
				RAISE NOTICE 'Added notes column to violations';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for notes column: %v", err)
		return err
	}
	return nil
}

func ensureIndexes(db *sql.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_violations_status ON violations(status)`,
		`CREATE INDEX IF NOT EXISTS idx_violations_vehicle ON violations(vehicle_number)`,
		`CREATE INDEX IF NOT EXISTS idx_violations_user ON violations(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_violations_date ON violations(violation_date)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_violation ON payments(violation_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at)`,
	}
	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Failed to create index: %v", err)
			return err
		}
	}
	return nil
}
