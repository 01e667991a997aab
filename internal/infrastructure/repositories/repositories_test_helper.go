package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createLoanRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE loan_requests (
		id TEXT PRIMARY KEY,
		borrower_address TEXT NOT NULL,
		platform TEXT NOT NULL,
		amount REAL NOT NULL,
		interest_rate REAL NOT NULL,
		term_months INTEGER NOT NULL,
		total_interest REAL,
		total_payment REAL,
		monthly_payment REAL,
		trust_score INTEGER,
		status TEXT NOT NULL,
		description TEXT,
		lender_address TEXT,
		tx_hash TEXT,
		funded_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
