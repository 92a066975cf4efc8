package pruning

import "errors"

var (
	// ErrInvalidBound is returned when a target precedes the relevant boundary: soft behind
	// soft, hard behind hard, or hard ahead of soft. The caller has to retry with another
	// bound; targets are never clamped.
	ErrInvalidBound = errors.New("invalid pruning bound")
	// ErrStorageFailure wraps any error of the underlying database. The whole call has been
	// rolled back when it is returned.
	ErrStorageFailure = errors.New("pruning storage failure")
	// ErrConsistencyViolation means compaction would have left a key without its surviving
	// write. The call is aborted.
	ErrConsistencyViolation = errors.New("pruning consistency violation")
)
