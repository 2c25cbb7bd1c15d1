package config

import "github.com/tcdirect/direct-common/pkg/domain"

// Resource file names, relative to the resource root.
const (
	OverviewFile      = "overview.xml"
	ContestFeesFile   = "contestFees.xml"
	FileTypesFile     = "fileTypes.xml"
	CopilotFeesFile   = "copilotFees.xml"
	IssueTrackingFile = "IssueTrackingConfig.xml"
)

// Config holds the decoded configuration resources.
// It is produced by ConfigLoader and only handed out after validation succeeds.
type Config struct {
	Overview            *domain.Overview
	ContestFees         *domain.ContestFees
	FileTypes           *domain.FileTypes
	CopilotFees         *domain.CopilotFees
	IssueTrackingConfig *domain.IssueTrackingConfig
}
