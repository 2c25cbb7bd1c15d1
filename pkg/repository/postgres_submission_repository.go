package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq" // PostgreSQL driver and array support

	"github.com/tcdirect/direct-common/pkg/domain"
	"github.com/tcdirect/direct-common/pkg/errors"
)

// PostgresSubmissionRepository implements SubmissionRepository using PostgreSQL.
type PostgresSubmissionRepository struct {
	db *sql.DB
}

// NewPostgresSubmissionRepository creates a new PostgreSQL-backed submission repository.
func NewPostgresSubmissionRepository(db *sql.DB) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{
		db: db,
	}
}

// GetContest retrieves a contest by ID.
func (r *PostgresSubmissionRepository) GetContest(ctx context.Context, contestID int64) (*domain.Contest, error) {
	query := `
		SELECT contest_id, name, contest_type_id, status, milestone_feedback
		FROM contest
		WHERE contest_id = $1
	`

	var contest domain.Contest
	var feedback sql.NullString
	err := r.db.QueryRowContext(ctx, query, contestID).Scan(
		&contest.ID,
		&contest.Name,
		&contest.ContestTypeID,
		&contest.Status,
		&feedback,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, errors.ErrDatabaseError("get contest", err)
	}

	contest.MilestoneFeedbackText = feedback.String
	return &contest, nil
}

// GetContestSubmissions retrieves the non-deleted submissions of a contest.
func (r *PostgresSubmissionRepository) GetContestSubmissions(ctx context.Context, contestID int64) ([]*domain.Submission, error) {
	query := `
		SELECT submission_id, contest_id, resource_id, type, status,
		       placement, user_rank, extra, file_name, created_at, modified_at
		FROM submission
		WHERE contest_id = $1 AND status <> 'deleted'
		ORDER BY CASE WHEN placement > 0 THEN 0 ELSE 1 END, placement, created_at, submission_id
	`

	rows, err := r.db.QueryContext(ctx, query, contestID)
	if err != nil {
		return nil, errors.ErrDatabaseError("get contest submissions", err)
	}
	defer func() { _ = rows.Close() }()

	submissions := make([]*domain.Submission, 0)
	for rows.Next() {
		var s domain.Submission
		if err := rows.Scan(
			&s.ID,
			&s.ContestID,
			&s.ResourceID,
			&s.Type,
			&s.Status,
			&s.Placement,
			&s.UserRank,
			&s.Extra,
			&s.FileName,
			&s.CreatedAt,
			&s.ModifiedAt,
		); err != nil {
			return nil, errors.ErrDatabaseError("scan submission", err)
		}
		submissions = append(submissions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError("iterate submissions", err)
	}

	return submissions, nil
}

// GetContestPrizes retrieves the prizes of a contest ordered by type and place.
func (r *PostgresSubmissionRepository) GetContestPrizes(ctx context.Context, contestID int64) ([]*domain.Prize, error) {
	query := `
		SELECT prize_id, contest_id, place, amount, type, number_of_submissions
		FROM prize
		WHERE contest_id = $1
		ORDER BY type, place
	`

	rows, err := r.db.QueryContext(ctx, query, contestID)
	if err != nil {
		return nil, errors.ErrDatabaseError("get contest prizes", err)
	}
	defer func() { _ = rows.Close() }()

	prizes := make([]*domain.Prize, 0)
	for rows.Next() {
		var p domain.Prize
		if err := rows.Scan(
			&p.ID,
			&p.ContestID,
			&p.Place,
			&p.Amount,
			&p.Type,
			&p.NumberOfSubmissions,
		); err != nil {
			return nil, errors.ErrDatabaseError("scan prize", err)
		}
		prizes = append(prizes, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError("iterate prizes", err)
	}

	return prizes, nil
}

// GetSubmissionFeedback retrieves the client feedback text keyed by submission ID.
func (r *PostgresSubmissionRepository) GetSubmissionFeedback(ctx context.Context, submissionIDs []int64) (map[int64]string, error) {
	feedback := make(map[int64]string)
	if len(submissionIDs) == 0 {
		return feedback, nil
	}

	query := `
		SELECT submission_id, feedback_text
		FROM submission_feedback
		WHERE submission_id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(submissionIDs))
	if err != nil {
		return nil, errors.ErrDatabaseError("get submission feedback", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id int64
		var text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, errors.ErrDatabaseError("scan submission feedback", err)
		}
		feedback[id] = text
	}

	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError("iterate submission feedback", err)
	}

	return feedback, nil
}

// GetSubmissionResources retrieves the submitter resource keyed by submission ID.
func (r *PostgresSubmissionRepository) GetSubmissionResources(ctx context.Context, submissionIDs []int64) (map[int64]*domain.Resource, error) {
	resources := make(map[int64]*domain.Resource)
	if len(submissionIDs) == 0 {
		return resources, nil
	}

	query := `
		SELECT s.submission_id, r.resource_id, r.contest_id, r.user_id, r.handle, r.role
		FROM submission s
		JOIN resource r ON r.resource_id = s.resource_id
		WHERE s.submission_id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(submissionIDs))
	if err != nil {
		return nil, errors.ErrDatabaseError("get submission resources", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var submissionID int64
		var res domain.Resource
		if err := rows.Scan(
			&submissionID,
			&res.ID,
			&res.ContestID,
			&res.UserID,
			&res.Handle,
			&res.Role,
		); err != nil {
			return nil, errors.ErrDatabaseError("scan submission resource", err)
		}
		resources[submissionID] = &res
	}

	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError("iterate submission resources", err)
	}

	return resources, nil
}

// GetBillingProject retrieves the billing project a contest is charged to.
func (r *PostgresSubmissionRepository) GetBillingProject(ctx context.Context, contestID int64) (*domain.Project, error) {
	query := `
		SELECT p.project_id, p.name, p.client_name, p.active
		FROM contest c
		JOIN billing_project p ON p.project_id = c.billing_project_id
		WHERE c.contest_id = $1
	`

	var project domain.Project
	err := r.db.QueryRowContext(ctx, query, contestID).Scan(
		&project.ID,
		&project.Name,
		&project.ClientName,
		&project.Active,
	)

	if err == sql.ErrNoRows {
		return nil, nil // Contest not billed to a project
	}

	if err != nil {
		return nil, errors.ErrDatabaseError("get billing project", err)
	}

	return &project, nil
}

var _ SubmissionRepository = (*PostgresSubmissionRepository)(nil)
