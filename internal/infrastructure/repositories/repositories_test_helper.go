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
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 0,
		is_admin BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL UNIQUE,
		email_verified BOOLEAN NOT NULL DEFAULT 0
	);`)
}

func createCategoryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(100) NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	);`)
}

func createStoreTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE stores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seller_id INTEGER NOT NULL,
		name VARCHAR(100) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_approved BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createSizeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sizes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		size_code VARCHAR(2) NOT NULL
	);`)
}

func createColorTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE colors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		color VARCHAR(20) NOT NULL DEFAULT 'brown'
	);`)
}

func createProductTables(t *testing.T, db *gorm.DB) {
	createSizeTable(t, db)
	createColorTable(t, db)
	mustExec(t, db, `CREATE TABLE products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		store_id INTEGER,
		category_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		discount_percentage INTEGER NOT NULL DEFAULT 0,
		main_image TEXT,
		hover_image TEXT,
		on_sale BOOLEAN NOT NULL DEFAULT 0,
		stock INTEGER NOT NULL DEFAULT 0,
		created_by_super_admin BOOLEAN NOT NULL DEFAULT 0
	);`)
	mustExec(t, db, `CREATE TABLE product_sizes (
		product_id INTEGER NOT NULL,
		size_id INTEGER NOT NULL,
		PRIMARY KEY (product_id, size_id)
	);`)
	mustExec(t, db, `CREATE TABLE product_colors (
		product_id INTEGER NOT NULL,
		color_id INTEGER NOT NULL,
		PRIMARY KEY (product_id, color_id)
	);`)
}
