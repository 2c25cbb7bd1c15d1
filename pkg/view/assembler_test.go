package view

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tcdirect/direct-common/pkg/domain"
	"github.com/tcdirect/direct-common/pkg/errors"
	"github.com/tcdirect/direct-common/pkg/metrics"
	"github.com/tcdirect/direct-common/pkg/repository"
)

const contestID int64 = 30010001

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// mockFullContest wires the mock with a contest that has two placed prizes,
// a five-slot milestone round and an additional-purchase price.
func mockFullContest(repo *repository.MockSubmissionRepository) {
	ctx := mock.Anything
	submissions := []*domain.Submission{
		{ID: 1, ContestID: contestID, ResourceID: 11, Type: domain.SubmissionTypeContest, Placement: 1},
		{ID: 2, ContestID: contestID, ResourceID: 12, Type: domain.SubmissionTypeContest},
		{ID: 3, ContestID: contestID, ResourceID: 12, Type: domain.SubmissionTypeMilestone},
	}

	repo.On("GetContest", ctx, contestID).Return(&domain.Contest{
		ID:                    contestID,
		Name:                  "Home Page Design",
		ContestTypeID:         17,
		MilestoneFeedbackText: "Bolder colors please",
	}, nil)
	repo.On("GetContestSubmissions", ctx, contestID).Return(submissions, nil)
	repo.On("GetSubmissionFeedback", ctx, []int64{1, 2, 3}).Return(map[int64]string{3: "Nice layout"}, nil)
	repo.On("GetSubmissionResources", ctx, []int64{1, 2, 3}).Return(map[int64]*domain.Resource{
		1: {ID: 11, Handle: "pixel"},
		2: {ID: 12, Handle: "vector"},
		3: {ID: 12, Handle: "vector"},
	}, nil)
	repo.On("GetContestPrizes", ctx, contestID).Return([]*domain.Prize{
		{ID: 22, Place: 2, Amount: 200, Type: domain.PrizeTypeContest},
		{ID: 21, Place: 1, Amount: 1000, Type: domain.PrizeTypeContest},
		{ID: 23, Place: 1, Amount: 50, Type: domain.PrizeTypeMilestone, NumberOfSubmissions: 5},
		{ID: 24, Place: 1, Amount: 150, Type: domain.PrizeTypeAdditional},
	}, nil)
	repo.On("GetBillingProject", ctx, contestID).Return(&domain.Project{ID: 5, Name: "Direct Redesign"}, nil)
}

func TestAssembler_Build(t *testing.T) {
	repo := repository.NewMockSubmissionRepository()
	mockFullContest(repo)
	assembler := NewAssembler(repo, testLogger(), nil)

	vm, err := assembler.Build(context.Background(), contestID, Flags{
		HasContestWritePermission: true,
		PhaseOpen:                 true,
	})

	require.NoError(t, err)
	require.NotNil(t, vm)
	repo.AssertExpectations(t)

	assert.Equal(t, contestID, vm.ContestID)
	assert.Equal(t, 3, vm.SubmissionsCount())
	assert.Equal(t, "Bolder colors please", vm.MilestoneRoundFeedbackText)
	assert.Equal(t, "Nice layout", vm.SubmissionFeedback[3])
	assert.Equal(t, "vector", vm.SubmissionResources[2].Handle)
	assert.Equal(t, "Direct Redesign", vm.BillingAccount.Name)

	t.Run("placement prizes ordered by place", func(t *testing.T) {
		assert.Equal(t, 2, vm.PrizeNumber)
		require.Len(t, vm.Prizes, 2)
		assert.Equal(t, 1, vm.Prizes[0].Place)
		assert.Equal(t, 1000.0, vm.Prizes[0].Amount)
		assert.Equal(t, 2, vm.Prizes[1].Place)
	})

	t.Run("milestone round", func(t *testing.T) {
		assert.True(t, vm.HasMilestoneRound)
		assert.Equal(t, 50.0, vm.MilestonePrize)
		assert.Equal(t, 5, vm.MilestoneAwardNumber)
	})

	t.Run("additional prize", func(t *testing.T) {
		assert.Equal(t, 150.0, vm.AdditionalPrize)
	})

	t.Run("caller flags", func(t *testing.T) {
		assert.True(t, vm.HasContestWritePermission)
		assert.True(t, vm.PhaseOpen)
		assert.False(t, vm.HasCheckout)
	})
}

func TestAssembler_Build_NoMilestoneRound(t *testing.T) {
	repo := repository.NewMockSubmissionRepository()
	repo.On("GetContest", mock.Anything, contestID).Return(&domain.Contest{ID: contestID}, nil)
	repo.On("GetContestSubmissions", mock.Anything, contestID).Return([]*domain.Submission{}, nil)
	repo.On("GetSubmissionFeedback", mock.Anything, []int64{}).Return(map[int64]string{}, nil)
	repo.On("GetSubmissionResources", mock.Anything, []int64{}).Return(map[int64]*domain.Resource{}, nil)
	repo.On("GetContestPrizes", mock.Anything, contestID).Return([]*domain.Prize{
		{ID: 1, Place: 1, Amount: 500, Type: domain.PrizeTypeContest},
	}, nil)
	repo.On("GetBillingProject", mock.Anything, contestID).Return(nil, nil)

	vm, err := NewAssembler(repo, testLogger(), nil).Build(context.Background(), contestID, Flags{HasCheckout: true})

	require.NoError(t, err)
	assert.Equal(t, 0, vm.SubmissionsCount())
	assert.Equal(t, 1, vm.PrizeNumber)
	assert.False(t, vm.HasMilestoneRound)
	assert.Zero(t, vm.MilestonePrize)
	assert.Zero(t, vm.MilestoneAwardNumber)
	assert.Zero(t, vm.AdditionalPrize)
	assert.Nil(t, vm.BillingAccount)
	assert.True(t, vm.HasCheckout)
}

func TestAssembler_Build_ContestNotFound(t *testing.T) {
	repo := repository.NewMockSubmissionRepository()
	repo.On("GetContest", mock.Anything, contestID).Return(nil, nil)

	vm, err := NewAssembler(repo, testLogger(), nil).Build(context.Background(), contestID, Flags{})

	assert.Nil(t, vm)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeContestNotFound))
	repo.AssertNotCalled(t, "GetContestSubmissions", mock.Anything, mock.Anything)
}

func TestAssembler_Build_RepositoryErrors(t *testing.T) {
	dbErr := errors.ErrDatabaseError("get contest prizes", stderrors.New("connection reset"))

	repo := repository.NewMockSubmissionRepository()
	repo.On("GetContest", mock.Anything, contestID).Return(&domain.Contest{ID: contestID}, nil)
	repo.On("GetContestSubmissions", mock.Anything, contestID).Return([]*domain.Submission{{ID: 1}}, nil)
	repo.On("GetSubmissionFeedback", mock.Anything, []int64{1}).Return(map[int64]string{}, nil)
	repo.On("GetSubmissionResources", mock.Anything, []int64{1}).Return(map[int64]*domain.Resource{}, nil)
	repo.On("GetContestPrizes", mock.Anything, contestID).Return(nil, dbErr)

	vm, err := NewAssembler(repo, testLogger(), nil).Build(context.Background(), contestID, Flags{})

	assert.Nil(t, vm)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load prizes")
	assert.True(t, errors.HasCode(err, errors.ErrCodeDatabaseError))
	repo.AssertNotCalled(t, "GetBillingProject", mock.Anything, mock.Anything)
}

func TestAssembler_Build_RecordsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))

	repo := repository.NewMockSubmissionRepository()
	mockFullContest(repo)
	repo.On("GetContest", mock.Anything, int64(404)).Return(nil, nil)

	assembler := NewAssembler(repo, testLogger(), manager)

	_, err := assembler.Build(context.Background(), contestID, Flags{})
	require.NoError(t, err)
	_, err = assembler.Build(context.Background(), 404, Flags{})
	require.Error(t, err)

	count, err := testutil.GatherAndCount(registry,
		"direct_common_submissions_view_models_total",
		"direct_common_submissions_view_model_errors_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
