package shared

import (
	"field-reservation/internal/infra"
	"field-reservation/internal/pkg/errs"
)

// Persistence attaches an engine kind to an error coming from a repository or
// read store. Errors that already carry a kind are returned unchanged.
func Persistence(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.KindOf(err) != errs.KindUnknown:
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrSlotConflict)
	default:
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
}
