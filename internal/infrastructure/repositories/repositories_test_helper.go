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

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		first_name TEXT,
		last_name TEXT,
		email TEXT,
		phone TEXT,
		id_number TEXT,
		address TEXT,
		employer TEXT,
		occupation TEXT,
		income_level TEXT,
		banking_details TEXT,
		role TEXT NOT NULL,
		deleted BOOLEAN DEFAULT FALSE,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createLoanTypeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE loan_types (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		min_amount REAL NOT NULL,
		max_amount REAL NOT NULL,
		min_term_months INTEGER NOT NULL,
		max_term_months INTEGER NOT NULL,
		base_interest_rate REAL NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createLoanApplicationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE loan_applications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		loan_type_id TEXT NOT NULL,
		loan_amount REAL NOT NULL,
		loan_term_months INTEGER NOT NULL,
		interest_rate REAL NOT NULL,
		purpose TEXT NOT NULL,
		employment_type TEXT,
		payment_schedule TEXT,
		status TEXT NOT NULL,
		application_date DATETIME NOT NULL,
		rejection_reason TEXT,
		approved_by TEXT,
		approved_date DATETIME,
		disbursed_amount REAL,
		disbursed_date DATETIME,
		monthly_payment REAL,
		total_payable REAL,
		total_interest REAL,
		remaining_balance REAL,
		next_payment_date DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		application_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount REAL NOT NULL,
		balance_after REAL,
		description TEXT,
		transaction_date DATETIME NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME
	);`)
}
