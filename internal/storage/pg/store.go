package pg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/news-press/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Store is the Postgres implementation of storage.Store. Counter updates are
// single UPDATE statements run in the same transaction as the row they count.
type Store struct {
	db *pgxpool.Pool
}

var _ storage.Store = (*Store)(nil)

func NewStore(pool *ConnectionPool) *Store {
	return &Store{db: pool.conn}
}

// mapError translates driver errors into storage errors while keeping the
// operation name in the message.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to %s: %w", op, storage.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("failed to %s: %w", op, storage.ErrConflict)
		case codeForeignKeyViolation:
			return fmt.Errorf("failed to %s: %w", op, storage.ErrNotFound)
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func uuidStrings(ids []uuid.UUID) []string {
	res := make([]string, len(ids))
	for i, id := range ids {
		res[i] = id.String()
	}
	return res
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func limitArg(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
