package registry

import "github.com/tcdirect/direct-common/pkg/domain"

// Registry provides read-only access to the configuration resources.
// It is built once at application startup and never mutated afterwards, so all
// accessors are safe for concurrent use without synchronization.
type Registry interface {
	// Overview returns the decoded overview.xml.
	Overview() *domain.Overview

	// StudioOverviews returns the subtype overviews of the STUDIO category.
	// Never empty for a registry that was built successfully.
	StudioOverviews() []*domain.StudioSubtypeOverview

	// StudioOverview returns the studio subtype overview with the given id.
	// Returns nil if no subtype has that id.
	StudioOverview(contestTypeID int64) *domain.StudioSubtypeOverview

	// ContestFees returns the decoded contestFees.xml.
	ContestFees() *domain.ContestFees

	// StudioContestFees returns the studio subtype fees.
	// Never empty for a registry that was built successfully.
	StudioContestFees() []*domain.StudioSubtypeContestFee

	// FileTypes returns the decoded fileTypes.xml.
	FileTypes() *domain.FileTypes

	// SoftwareContestFees returns the non-studio contest fees keyed by
	// domain.ContestTypeKey. Callers must not modify the map.
	SoftwareContestFees() map[string]*domain.ContestFee

	// SoftwareContestFee returns the software contest fee of a contest type.
	// Returns nil if the contest type has no fee.
	SoftwareContestFee(contestTypeID int64) *domain.ContestFee

	// CopilotFees returns the copilot fees keyed by domain.ContestTypeKey.
	// Callers must not modify the map.
	CopilotFees() map[string]*domain.CopilotFee

	// CopilotFee returns the copilot fee of a contest type.
	// Returns nil if the contest type has no copilot fee.
	CopilotFee(contestTypeID int64) *domain.CopilotFee

	// IssueTrackingConfig returns the decoded IssueTrackingConfig.xml.
	IssueTrackingConfig() *domain.IssueTrackingConfig
}
