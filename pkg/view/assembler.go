package view

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tcdirect/direct-common/pkg/domain"
	"github.com/tcdirect/direct-common/pkg/errors"
	"github.com/tcdirect/direct-common/pkg/metrics"
	"github.com/tcdirect/direct-common/pkg/repository"
)

// Flags are the request-specific switches decided by the caller
// (session permissions, current phase, cart state).
type Flags struct {
	HasCheckout               bool
	HasContestWritePermission bool
	PhaseOpen                 bool
}

// Assembler builds StudioContestSubmissions from the submission repository.
type Assembler struct {
	repo    repository.SubmissionRepository
	logger  *slog.Logger
	metrics *metrics.Manager
}

// NewAssembler creates a new view-model assembler. metricsManager may be nil.
func NewAssembler(repo repository.SubmissionRepository, logger *slog.Logger, metricsManager *metrics.Manager) *Assembler {
	return &Assembler{
		repo:    repo,
		logger:  logger,
		metrics: metricsManager,
	}
}

// Build loads the contest and its submissions and assembles the page model.
// Returns a CONTEST_NOT_FOUND error if the contest does not exist.
func (a *Assembler) Build(ctx context.Context, contestID int64, flags Flags) (*StudioContestSubmissions, error) {
	vm, err := a.build(ctx, contestID, flags)
	if err != nil {
		a.metrics.RecordViewModelError()
		a.logger.Error("Failed to assemble submissions view",
			"contest_id", contestID,
			"error", err,
		)
		return nil, err
	}

	a.metrics.RecordViewModelAssembled()
	a.logger.Debug("Submissions view assembled",
		"contest_id", contestID,
		"submissions", vm.SubmissionsCount(),
		"prizes", vm.PrizeNumber,
		"milestone_round", vm.HasMilestoneRound,
	)

	return vm, nil
}

func (a *Assembler) build(ctx context.Context, contestID int64, flags Flags) (*StudioContestSubmissions, error) {
	contest, err := a.repo.GetContest(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contest: %w", err)
	}
	if contest == nil {
		return nil, errors.ErrContestNotFound(contestID)
	}

	submissions, err := a.repo.GetContestSubmissions(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}

	ids := make([]int64, 0, len(submissions))
	for _, s := range submissions {
		ids = append(ids, s.ID)
	}

	feedback, err := a.repo.GetSubmissionFeedback(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load submission feedback: %w", err)
	}

	resources, err := a.repo.GetSubmissionResources(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load submission resources: %w", err)
	}

	prizes, err := a.repo.GetContestPrizes(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load prizes: %w", err)
	}

	project, err := a.repo.GetBillingProject(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load billing project: %w", err)
	}

	vm := &StudioContestSubmissions{
		ContestID:                  contest.ID,
		ContestSubmissions:         submissions,
		MilestoneRoundFeedbackText: contest.MilestoneFeedbackText,
		SubmissionFeedback:         feedback,
		SubmissionResources:        resources,
		BillingAccount:             project,
		HasCheckout:                flags.HasCheckout,
		HasContestWritePermission:  flags.HasContestWritePermission,
		PhaseOpen:                  flags.PhaseOpen,
	}
	applyPrizes(vm, prizes)

	return vm, nil
}

// applyPrizes splits the contest's prizes into placement, milestone and
// additional-purchase amounts.
func applyPrizes(vm *StudioContestSubmissions, prizes []*domain.Prize) {
	placement := make([]*domain.Prize, 0, len(prizes))

	for _, p := range prizes {
		switch p.Type {
		case domain.PrizeTypeContest:
			placement = append(placement, p)
		case domain.PrizeTypeMilestone:
			if !vm.HasMilestoneRound {
				vm.MilestonePrize = p.Amount
			}
			vm.HasMilestoneRound = true
			vm.MilestoneAwardNumber += p.NumberOfSubmissions
		case domain.PrizeTypeAdditional:
			vm.AdditionalPrize = p.Amount
		}
	}

	sort.SliceStable(placement, func(i, j int) bool {
		return placement[i].Place < placement[j].Place
	})

	vm.Prizes = placement
	vm.PrizeNumber = len(placement)
}
