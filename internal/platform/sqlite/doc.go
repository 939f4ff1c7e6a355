// Package sqlite implements the store interfaces on an embedded SQLite
// database. It owns connection setup (WAL journaling, busy timeout, foreign
// keys), schema migrations, and the translation of SQLite errors into the
// sentinel errors defined in internal/store.
//
// The driver is github.com/ncruces/go-sqlite3, a pure-Go build of SQLite, so
// the binary has no cgo or system-library dependency.
package sqlite
