package shared

import (
	"dh-booking/internal/infra"
	"dh-booking/internal/pkg/errs"
)

// StoreError places a store failure in the error taxonomy. Errors that
// already carry a kind pass through untouched. notFound, when non-nil,
// replaces a not-found repository error.
func StoreError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errs.KindOf(err) != errs.KindUnknown {
		return err
	}

	kind, ok := infra.KindOf(err)
	if !ok {
		return errs.AsKind(err, errs.ErrTransient)
	}
	switch kind {
	case infra.KindNotFound:
		if notFound != nil {
			return notFound
		}
		return errs.AsKind(err, errs.ErrNotFound)
	case infra.KindForeignKeyViolated:
		return errs.AsKind(err, errs.ErrNotFound)
	case infra.KindConflict, infra.KindDuplicateKey:
		return errs.AsKind(err, errs.ErrConflict)
	case infra.KindInvalidInput:
		return errs.AsKind(err, errs.ErrInvalidArgument)
	default:
		return errs.AsKind(err, errs.ErrTransient)
	}
}
