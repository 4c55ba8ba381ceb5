//go:build unit

package shared_test

import (
	"errors"
	"testing"

	"field-reservation/internal/infra"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPersistence(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "not found", err: infra.WrapRepoErr("missing", errors.New("no rows"), infra.KindNotFound), want: errs.KindNotFound},
		{name: "exclusion constraint", err: infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23P01"}), want: errs.KindSlotConflict},
		{name: "database failure", err: infra.WrapRepoErr("insert", errors.New("broken pipe")), want: errs.KindPersistenceFailure},
		{name: "duplicate key", err: infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505"}), want: errs.KindPersistenceFailure},
		{name: "unclassified", err: errors.New("boom"), want: errs.KindPersistenceFailure},
		{name: "already classified", err: errs.Wrap(errs.ErrForbidden, "not yours"), want: errs.KindForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.KindOf(shared.Persistence(tc.err)))
		})
	}

	assert.NoError(t, shared.Persistence(nil))
}
