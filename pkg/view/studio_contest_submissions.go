// Package view holds the request-scoped models rendered by the studio contest pages.
package view

import "github.com/tcdirect/direct-common/pkg/domain"

// StudioContestSubmissions carries everything the studio contest submissions page renders.
//
// A value is built for one request and is not safe for concurrent mutation.
type StudioContestSubmissions struct {
	ContestID          int64
	ContestSubmissions []*domain.Submission

	// Milestone round
	HasMilestoneRound          bool
	MilestoneRoundFeedbackText string
	MilestonePrize             float64
	MilestoneAwardNumber       int

	// Prizes
	PrizeNumber     int
	Prizes          []*domain.Prize
	AdditionalPrize float64

	// Keyed by submission ID
	SubmissionFeedback  map[int64]string
	SubmissionResources map[int64]*domain.Resource

	BillingAccount *domain.Project

	HasCheckout               bool
	HasContestWritePermission bool
	PhaseOpen                 bool
}

// SubmissionsCount returns the number of contest submissions, 0 when none are set.
func (s *StudioContestSubmissions) SubmissionsCount() int {
	return len(s.ContestSubmissions)
}
