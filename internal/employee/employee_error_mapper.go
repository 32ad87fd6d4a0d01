package employee

import (
	"errors"
	"strings"

	employeeerrors "go-empms/internal/employee/errors"
	"go-empms/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError normalizes store failures. Unique violations carry the
// driver's one-line message only, never the full constraint detail.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return apperror.Wrap(
				errors.New(truncateDiagnostic(pgErr.Message)),
				apperror.CodeConflict,
				employeeerrors.ErrUsernameAlreadyExists.Message,
				employeeerrors.ErrUsernameAlreadyExists.HTTPStatus,
			)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employees_username") {
		return employeeerrors.ErrUsernameAlreadyExists
	}

	return err
}

// truncateDiagnostic cuts the raw store message at the constraint detail so
// internals do not leak into the response body.
func truncateDiagnostic(msg string) string {
	if idx := strings.Index(msg, " for key "); idx > 0 {
		return msg[:idx]
	}
	if idx := strings.Index(msg, "\n"); idx > 0 {
		return msg[:idx]
	}
	return msg
}
