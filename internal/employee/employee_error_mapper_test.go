package employee

import (
	"errors"
	"testing"

	employeeerrors "go-empms/internal/employee/errors"
	"go-empms/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, mapRepositoryError(nil))
	})

	t.Run("record not found", func(t *testing.T) {
		err := mapRepositoryError(gorm.ErrRecordNotFound)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("unique violation carries truncated diagnostic", func(t *testing.T) {
		err := mapRepositoryError(&pgconn.PgError{
			Code:    "23505",
			Message: `duplicate key value violates unique constraint "uq_employees_username"`,
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeConflict, appErr.Code)
		assert.NotNil(t, appErr.Err)
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		cause := errors.New("connection reset")
		assert.Equal(t, cause, mapRepositoryError(cause))
	})
}

func TestTruncateDiagnostic(t *testing.T) {
	assert.Equal(t, "Duplicate entry 'ann1'",
		truncateDiagnostic("Duplicate entry 'ann1' for key 'uq_employees_username'"))
	assert.Equal(t, "first line",
		truncateDiagnostic("first line\nDETAIL: internals"))
	assert.Equal(t, "plain", truncateDiagnostic("plain"))
}
