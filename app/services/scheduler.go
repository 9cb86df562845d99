package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/database"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
)

// StartScheduler starts the background task loop.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Drop expired sessions once an hour
			if now.Minute() == 0 {
				if err := database.DeleteExpiredSessions(db); err != nil {
					log.Printf("Scheduler: failed to delete expired sessions: %v", err)
				}
			}

			// Log the collection summary once a day at 06:00
			if now.Hour() == 6 && now.Minute() == 0 {
				logCollectionSummary(db)
			}
		}
	}()
}

func logCollectionSummary(db *sql.DB) {
	details, err := database.GetAllViolations(db, 0)
	if err != nil {
		log.Printf("Scheduler: failed to fetch violations: %v", err)
		return
	}
	records := models.Records(details)
	totals := ComputeTotals(records)
	breakdown := ComputeStatusBreakdown(records)
	log.Printf("Daily summary: %d violations, %s total, %s collected (%.1f%%), %d unpaid, %d disputed",
		totals.Count, totals.TotalFineAmount, totals.CollectedAmount,
		CollectionRate(totals), breakdown.UnpaidCount, breakdown.DisputedCount)
}
