// Package kv reads and writes a configuration mapping as rows of a key/value settings table.
package kv

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/julianstephens/nyfont/internal/constants"
	"github.com/julianstephens/nyfont/internal/models"
)

// Dialect selects bind parameter syntax.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// EncodeValue serializes one setting value for the value column.
func EncodeValue(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeValue parses a value column. Rows that are not valid JSON, such as values written
// by hand, are returned as plain strings.
func DecodeValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

// Load reads every row of the settings table into a mapping.
func Load(db *sql.DB) (models.Config, error) {
	rows, err := db.Query("SELECT key, value FROM " + constants.SettingsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	cfg := models.Config{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		cfg[key] = DecodeValue(value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return cfg, nil
}

// Replace writes cfg as the complete contents of the settings table in one transaction.
// Keys missing from cfg are deleted.
func Replace(db *sql.DB, d Dialect, cfg models.Config) error {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + constants.SettingsTable); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (key, value) VALUES (%s, %s)",
		constants.SettingsTable, d.placeholder(1), d.placeholder(2)))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, k := range keys {
		value, err := EncodeValue(cfg[k])
		if err != nil {
			return fmt.Errorf("failed to encode setting %s: %w", k, err)
		}
		if _, err := stmt.Exec(k, value); err != nil {
			return fmt.Errorf("failed to write setting %s: %w", k, err)
		}
	}

	return tx.Commit()
}
