package domain

import "time"

// Contest is the minimal contest record needed to render its submissions page.
type Contest struct {
	ID            int64  `json:"contest_id" db:"contest_id"`
	Name          string `json:"name" db:"name"`
	ContestTypeID int64  `json:"contest_type_id" db:"contest_type_id"`
	Status        string `json:"status" db:"status"`

	// MilestoneFeedbackText is the client's overall feedback on the milestone round.
	MilestoneFeedbackText string `json:"milestone_feedback" db:"milestone_feedback"`
}

// SubmissionType distinguishes final-round submissions from milestone-round submissions.
type SubmissionType string

const (
	// SubmissionTypeContest is a submission to the final round.
	SubmissionTypeContest SubmissionType = "contest"

	// SubmissionTypeMilestone is a submission to the milestone (checkpoint) round.
	SubmissionTypeMilestone SubmissionType = "milestone"
)

// IsValid returns true if the submission type is a known type.
func (t SubmissionType) IsValid() bool {
	switch t {
	case SubmissionTypeContest, SubmissionTypeMilestone:
		return true
	default:
		return false
	}
}

// SubmissionStatus is the review state of a submission.
type SubmissionStatus string

const (
	// SubmissionStatusActive indicates the submission is visible to the client.
	SubmissionStatusActive SubmissionStatus = "active"

	// SubmissionStatusFailedScreening indicates the submission failed screening.
	SubmissionStatusFailedScreening SubmissionStatus = "failed_screening"

	// SubmissionStatusDeleted indicates the submitter removed the submission.
	SubmissionStatusDeleted SubmissionStatus = "deleted"
)

// IsValid returns true if the status is a known submission status.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusActive, SubmissionStatusFailedScreening, SubmissionStatusDeleted:
		return true
	default:
		return false
	}
}

// Submission is a single entry uploaded to a studio contest.
type Submission struct {
	ID         int64            `json:"submission_id" db:"submission_id"`
	ContestID  int64            `json:"contest_id" db:"contest_id"`
	ResourceID int64            `json:"resource_id" db:"resource_id"` // Submitter resource
	Type       SubmissionType   `json:"type" db:"type"`
	Status     SubmissionStatus `json:"status" db:"status"`
	Placement  int              `json:"placement" db:"placement"` // 0 when not placed
	UserRank   int              `json:"user_rank" db:"user_rank"` // Submitter's own ranking, 0 when unranked
	Extra      bool             `json:"extra" db:"extra"`         // Purchased beyond the placed prizes
	FileName   string           `json:"file_name" db:"file_name"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
	ModifiedAt time.Time        `json:"modified_at" db:"modified_at"`
}

// IsMilestone returns true for milestone round submissions.
func (s *Submission) IsMilestone() bool {
	return s.Type == SubmissionTypeMilestone
}

// IsPlaced returns true if the submission won a placement.
func (s *Submission) IsPlaced() bool {
	return s.Placement > 0
}

// PrizeType defines which round or purchase a prize pays for.
type PrizeType string

const (
	// PrizeTypeContest is a placement prize of the final round.
	PrizeTypeContest PrizeType = "contest"

	// PrizeTypeMilestone is a prize paid to each milestone round winner.
	PrizeTypeMilestone PrizeType = "milestone"

	// PrizeTypeAdditional is the price paid for each additionally purchased submission.
	PrizeTypeAdditional PrizeType = "additional"
)

// IsValid returns true if the prize type is a known type.
func (t PrizeType) IsValid() bool {
	switch t {
	case PrizeTypeContest, PrizeTypeMilestone, PrizeTypeAdditional:
		return true
	default:
		return false
	}
}

// Prize is one prize slot configured for a contest.
type Prize struct {
	ID                  int64     `json:"prize_id" db:"prize_id"`
	ContestID           int64     `json:"contest_id" db:"contest_id"`
	Place               int       `json:"place" db:"place"`
	Amount              float64   `json:"amount" db:"amount"`
	Type                PrizeType `json:"type" db:"type"`
	NumberOfSubmissions int       `json:"number_of_submissions" db:"number_of_submissions"`
}

// Resource is a member's role on a contest (submitter, reviewer, copilot...).
type Resource struct {
	ID        int64  `json:"resource_id" db:"resource_id"`
	ContestID int64  `json:"contest_id" db:"contest_id"`
	UserID    int64  `json:"user_id" db:"user_id"`
	Handle    string `json:"handle" db:"handle"`
	Role      string `json:"role" db:"role"`
}

// Project is the billing project a contest is charged to.
type Project struct {
	ID         int64  `json:"project_id" db:"project_id"`
	Name       string `json:"name" db:"name"`
	ClientName string `json:"client_name" db:"client_name"`
	Active     bool   `json:"active" db:"active"`
}
