package domain

import (
	financeErrors "github.com/fintrackio/fintrack/internal/finance/errors"
)

// Authorize decides whether callerID may read or mutate a record owned by
// ownerID. Both the fetch-then-check path (update/delete) and the
// repository-filtered list path express ownership through this package, so
// the two never diverge.
func Authorize(ownerID, callerID string) error {
	if ownerID != callerID {
		return financeErrors.ErrNotRecordOwner
	}
	return nil
}
