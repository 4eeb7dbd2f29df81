package postgres

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// toInt normaliza el valor de un COUNT/SUM según lo que devuelva el driver
// (int64, int32, numeric como string o []byte).
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	case int:
		return n, nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("count no numérico %q: %w", n, err)
		}
		return i, nil
	case []byte:
		i, err := strconv.Atoi(string(n))
		if err != nil {
			return 0, fmt.Errorf("count no numérico %q: %w", n, err)
		}
		return i, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("tipo de count inesperado %T", v)
	}
}

// scanCount lee una fila de un query de agregación y normaliza a int.
func scanCount(row pgx.Row) (int, error) {
	var v any
	if err := row.Scan(&v); err != nil {
		return 0, err
	}
	return toInt(v)
}
