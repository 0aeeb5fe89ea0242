package db

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`

// ConnectDB opens (creating if needed) the sqlite file that backs local
// storage and ensures the kv schema exists.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", conf.DBPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
