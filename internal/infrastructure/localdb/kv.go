// Package localdb implementa la superficie clave-valor durable sobre un
// SQLite embebido (driver puro Go). Es el análogo local del localStorage
// del navegador: la sesión sobrevive a los reinicios del proceso.
package localdb

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/arjunaprint/printdesk-core/internal/application/ports"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Verificar en tiempo de compilación que KV implementa el puerto.
var _ ports.KeyValueStore = (*KV)(nil)

// KV almacén clave-valor respaldado por una tabla única.
type KV struct {
	db *sqlx.DB
}

// Open abre (o crea) la base en path y asegura el esquema. Para tests se
// puede usar ":memory:".
func Open(path string) (*KV, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("localdb: abrir %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("localdb: ping: %w", err)
	}
	schema := `CREATE TABLE IF NOT EXISTS kv(
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("localdb: esquema: %w", err)
	}
	return &KV{db: db}, nil
}

// Close cierra la base.
func (s *KV) Close() error {
	return s.db.Close()
}

// Get devuelve el valor de key. Una clave ausente es un miss normal
// (found=false), no un error.
func (s *KV) Get(key string) (string, bool, error) {
	var value string
	err := s.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("localdb: get %q: %w", key, err)
	}
	return value, true, nil
}

// Set inserta o reemplaza el valor de key.
func (s *KV) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("localdb: set %q: %w", key, err)
	}
	return nil
}

// Delete elimina key. Borrar una clave inexistente no es error.
func (s *KV) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("localdb: delete %q: %w", key, err)
	}
	return nil
}
