package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tcdirect/direct-common/pkg/domain"
)

// MockSubmissionRepository is a mock implementation of SubmissionRepository for testing.
// It uses testify/mock to allow test assertions on method calls.
type MockSubmissionRepository struct {
	mock.Mock
}

// NewMockSubmissionRepository creates a new mock submission repository.
func NewMockSubmissionRepository() *MockSubmissionRepository {
	return &MockSubmissionRepository{}
}

// GetContest mocks retrieving a contest.
func (m *MockSubmissionRepository) GetContest(ctx context.Context, contestID int64) (*domain.Contest, error) {
	args := m.Called(ctx, contestID)
	contest, _ := args.Get(0).(*domain.Contest)
	return contest, args.Error(1)
}

// GetContestSubmissions mocks retrieving contest submissions.
func (m *MockSubmissionRepository) GetContestSubmissions(ctx context.Context, contestID int64) ([]*domain.Submission, error) {
	args := m.Called(ctx, contestID)
	submissions, _ := args.Get(0).([]*domain.Submission)
	return submissions, args.Error(1)
}

// GetContestPrizes mocks retrieving contest prizes.
func (m *MockSubmissionRepository) GetContestPrizes(ctx context.Context, contestID int64) ([]*domain.Prize, error) {
	args := m.Called(ctx, contestID)
	prizes, _ := args.Get(0).([]*domain.Prize)
	return prizes, args.Error(1)
}

// GetSubmissionFeedback mocks retrieving submission feedback.
func (m *MockSubmissionRepository) GetSubmissionFeedback(ctx context.Context, submissionIDs []int64) (map[int64]string, error) {
	args := m.Called(ctx, submissionIDs)
	feedback, _ := args.Get(0).(map[int64]string)
	return feedback, args.Error(1)
}

// GetSubmissionResources mocks retrieving submission resources.
func (m *MockSubmissionRepository) GetSubmissionResources(ctx context.Context, submissionIDs []int64) (map[int64]*domain.Resource, error) {
	args := m.Called(ctx, submissionIDs)
	resources, _ := args.Get(0).(map[int64]*domain.Resource)
	return resources, args.Error(1)
}

// GetBillingProject mocks retrieving the billing project.
func (m *MockSubmissionRepository) GetBillingProject(ctx context.Context, contestID int64) (*domain.Project, error) {
	args := m.Called(ctx, contestID)
	project, _ := args.Get(0).(*domain.Project)
	return project, args.Error(1)
}

var _ SubmissionRepository = (*MockSubmissionRepository)(nil)
