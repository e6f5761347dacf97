package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"taskboard/db"
)

// IsUniqueViolation reports whether err is a Postgres duplicate-key error
// (SQLSTATE 23505). Seeded rows carry explicit ids, so a stale serial
// sequence surfaces as exactly this error on the next insert.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// ResyncSequence realigns a table's serial sequence with the maximum
// stored id, so the next generated value is max(id)+1.
func ResyncSequence(gormDB *gorm.DB, table, column string) error {
	stmt := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE((SELECT MAX(%s) FROM %s), 1), true)`,
		table, column, column, table,
	)
	return gormDB.Exec(stmt).Error
}

func resyncSequence(table, column string) error {
	return ResyncSequence(db.DB, table, column)
}
