package repository

import (
	"context"

	"github.com/tcdirect/direct-common/pkg/domain"
)

// SubmissionRepository reads the data shown on a studio contest's submissions page.
// This interface abstracts database operations to allow for testing and different implementations.
type SubmissionRepository interface {
	// GetContest retrieves a contest by ID.
	// Returns nil if the contest does not exist.
	GetContest(ctx context.Context, contestID int64) (*domain.Contest, error)

	// GetContestSubmissions retrieves the non-deleted submissions of a contest.
	// Placed submissions come first, ordered by placement; the rest follow in upload order.
	// Returns empty slice if the contest has no submissions.
	GetContestSubmissions(ctx context.Context, contestID int64) ([]*domain.Submission, error)

	// GetContestPrizes retrieves the prizes of a contest ordered by type and place.
	GetContestPrizes(ctx context.Context, contestID int64) ([]*domain.Prize, error)

	// GetSubmissionFeedback retrieves the client feedback text keyed by submission ID.
	// Submissions without feedback are absent from the map.
	GetSubmissionFeedback(ctx context.Context, submissionIDs []int64) (map[int64]string, error)

	// GetSubmissionResources retrieves the submitter resource keyed by submission ID.
	GetSubmissionResources(ctx context.Context, submissionIDs []int64) (map[int64]*domain.Resource, error)

	// GetBillingProject retrieves the billing project a contest is charged to.
	// Returns nil if the contest has no billing project.
	GetBillingProject(ctx context.Context, contestID int64) (*domain.Project, error)
}
