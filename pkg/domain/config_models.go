package domain

import (
	"encoding/xml"
	"strconv"
)

// StudioCategoryID is the contest overview category whose subtype list describes studio contests.
const StudioCategoryID = "STUDIO"

// ContestTypeKey returns the map key used for contest-type lookups.
// Fee maps are keyed by the decimal string form of the contest type identifier.
func ContestTypeKey(contestTypeID int64) string {
	return strconv.FormatInt(contestTypeID, 10)
}

// Overview is the root of overview.xml.
// It groups contest overviews by category (e.g., "STUDIO", "SOFTWARE").
type Overview struct {
	XMLName          xml.Name           `xml:"overview"`
	ContestOverviews []*ContestOverview `xml:"contestOverview"`
}

// ContestOverview describes one contest category and the subtypes it offers.
type ContestOverview struct {
	ID                     string                   `xml:"id,attr"`
	StudioSubtypeOverviews []*StudioSubtypeOverview `xml:"studioSubtypeOverview"`
}

// StudioOverviews returns the studio subtype overviews of the STUDIO category.
// Returns nil if the overview has no STUDIO category. When the category is
// declared more than once, the last declaration wins.
func (o *Overview) StudioOverviews() []*StudioSubtypeOverview {
	if o == nil {
		return nil
	}

	var overviews []*StudioSubtypeOverview
	for _, contestOverview := range o.ContestOverviews {
		if contestOverview.ID == StudioCategoryID {
			overviews = contestOverview.StudioSubtypeOverviews
		}
	}
	return overviews
}

// StudioSubtypeOverview is the marketing overview for a single studio contest subtype.
type StudioSubtypeOverview struct {
	ID               int64  `xml:"id,attr"`
	Name             string `xml:"name,attr"`
	Description      string `xml:"description"`
	PrizeDescription string `xml:"prizeDescription"`
}

// ContestFees is the root of contestFees.xml.
type ContestFees struct {
	XMLName     xml.Name      `xml:"contestFees"`
	ContestFees []*ContestFee `xml:"contestFee" validate:"dive"`
}

// ContestFee is the fee record for a contest type.
// A fee flagged as StudioFee carries the per-subtype studio fees instead of a
// software contest fee.
type ContestFee struct {
	ContestTypeID            int64                      `xml:"contestTypeId,attr"`
	Description              string                     `xml:"description,attr"`
	ContestFee               float64                    `xml:"contestFee,attr" validate:"gte=0"`
	StudioFee                bool                       `xml:"studioFee,attr"`
	StudioSubtypeContestFees []*StudioSubtypeContestFee `xml:"studioSubtypeContestFee" validate:"dive"`
}

// StudioSubtypeContestFees returns the subtype fees of the studio-flagged fee record.
// Returns nil if no record is studio-flagged. When several records are
// studio-flagged, the last one wins.
func (f *ContestFees) StudioSubtypeContestFees() []*StudioSubtypeContestFee {
	if f == nil {
		return nil
	}

	var fees []*StudioSubtypeContestFee
	for _, contestFee := range f.ContestFees {
		if contestFee.StudioFee {
			fees = contestFee.StudioSubtypeContestFees
		}
	}
	return fees
}

// StudioSubtypeContestFee is the fee schedule of one studio contest subtype.
type StudioSubtypeContestFee struct {
	ID              int64   `xml:"id,attr"`
	Name            string  `xml:"name,attr"`
	ContestFee      float64 `xml:"contestFee,attr" validate:"gte=0"`
	FirstPlaceCost  float64 `xml:"firstPlaceCost,attr" validate:"gte=0"`
	SecondPlaceCost float64 `xml:"secondPlaceCost,attr" validate:"gte=0"`
	MilestoneCost   float64 `xml:"milestoneCost,attr" validate:"gte=0"`
}

// FileTypes is the root of fileTypes.xml. The registry passes it through untouched.
type FileTypes struct {
	XMLName   xml.Name    `xml:"fileTypes"`
	FileTypes []*FileType `xml:"fileType"`
}

// FileType describes a file type accepted for studio submissions.
type FileType struct {
	ID          int64  `xml:"id,attr"`
	Description string `xml:"description,attr"`
	Extension   string `xml:"extension,attr"`
	ImageFile   bool   `xml:"imageFile,attr"`
	Sort        int    `xml:"sort,attr"`
}

// CopilotFees is the root of copilotFees.xml.
type CopilotFees struct {
	XMLName     xml.Name      `xml:"copilotFees"`
	CopilotFees []*CopilotFee `xml:"copilotFee" validate:"dive"`
}

// CopilotFee is the copilot fee charged for a contest type.
type CopilotFee struct {
	ContestTypeID int64   `xml:"contestTypeId,attr"`
	CopilotFee    float64 `xml:"copilotFee,attr" validate:"gte=0"`
}

// IssueTrackingConfig is the root of IssueTrackingConfig.xml.
// It configures how contest bugs are looked up in the issue tracker.
type IssueTrackingConfig struct {
	XMLName            xml.Name `xml:"issueTrackingConfig"`
	IssueTrackingURL   string   `xml:"issueTrackingURL" validate:"omitempty,url"`
	ProjectKey         string   `xml:"projectKey"`
	BugIssueType       string   `xml:"bugIssueType"`
	ContestIDFieldName string   `xml:"contestIdFieldName"`
	ClosedStatuses     []string `xml:"closedStatuses>status"`
}

// IsClosedStatus returns true if the issue status counts as closed.
func (c *IssueTrackingConfig) IsClosedStatus(status string) bool {
	if c == nil {
		return false
	}
	for _, closed := range c.ClosedStatuses {
		if closed == status {
			return true
		}
	}
	return false
}
