package repository

import (
	"context"

	"formapi/internal/model"
)

// SubmissionRepository defines data access for submissions.
// No business logic here — strictly persistence operations. There is no
// update operation: the model is append/delete-only.
type SubmissionRepository interface {
	// Insert persists a fully-populated submission. The caller provides
	// all fields including ID and CreatedAt.
	Insert(ctx context.Context, sub *model.Submission) error

	// List returns stored submissions in store order, at most limit
	// records. An empty result is a nil error with an empty slice.
	List(ctx context.Context, limit int64) ([]model.Submission, error)

	// Delete removes the submission with the given id. It reports
	// whether a record was found and deleted; a missing id is not an
	// error.
	Delete(ctx context.Context, id string) (bool, error)
}
