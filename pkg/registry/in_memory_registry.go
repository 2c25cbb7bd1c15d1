package registry

import (
	"io/fs"
	"log/slog"

	"github.com/tcdirect/direct-common/pkg/config"
	"github.com/tcdirect/direct-common/pkg/domain"
	"github.com/tcdirect/direct-common/pkg/metrics"
)

// InMemoryRegistry holds the configuration resources and the lookup maps built from them.
// All fields are assigned during construction and only read afterwards.
type InMemoryRegistry struct {
	overview            *domain.Overview
	studioOverviews     []*domain.StudioSubtypeOverview
	contestFees         *domain.ContestFees
	studioContestFees   []*domain.StudioSubtypeContestFee
	fileTypes           *domain.FileTypes
	softwareContestFees map[string]*domain.ContestFee // "contest-type-id" -> ContestFee
	copilotFees         map[string]*domain.CopilotFee // "contest-type-id" -> CopilotFee
	issueTrackingConfig *domain.IssueTrackingConfig
}

// Option configures registry construction.
type Option func(*options)

type options struct {
	metrics *metrics.Manager
}

// WithMetrics records load duration, failures and index sizes on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// Load reads, validates and indexes the configuration resources under fsys.
// Construction is all-or-nothing: on any error no registry is returned, and the
// caller is expected to abort startup.
func Load(fsys fs.FS, logger *slog.Logger, opts ...Option) (*InMemoryRegistry, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := config.NewConfigLoader(fsys, logger).WithMetrics(o.metrics).LoadConfig()
	if err != nil {
		return nil, err
	}

	r := NewInMemoryRegistry(cfg, logger)
	r.recordSizes(o.metrics)

	return r, nil
}

// NewInMemoryRegistry creates a registry from a validated configuration.
//
// Contest fees are partitioned into the studio subtype fees (taken from the
// studio-flagged record) and a software fee map keyed by contest type. Copilot
// fees are keyed the same way; a later record for the same contest type
// replaces an earlier one.
func NewInMemoryRegistry(cfg *config.Config, logger *slog.Logger) *InMemoryRegistry {
	r := &InMemoryRegistry{
		overview:            cfg.Overview,
		studioOverviews:     cfg.Overview.StudioOverviews(),
		contestFees:         cfg.ContestFees,
		fileTypes:           cfg.FileTypes,
		softwareContestFees: make(map[string]*domain.ContestFee),
		copilotFees:         make(map[string]*domain.CopilotFee),
		issueTrackingConfig: cfg.IssueTrackingConfig,
	}

	for _, contestFee := range cfg.ContestFees.ContestFees {
		if contestFee.StudioFee {
			r.studioContestFees = contestFee.StudioSubtypeContestFees
		} else {
			r.softwareContestFees[domain.ContestTypeKey(contestFee.ContestTypeID)] = contestFee
		}
	}

	if cfg.CopilotFees != nil {
		for _, copilotFee := range cfg.CopilotFees.CopilotFees {
			r.copilotFees[domain.ContestTypeKey(copilotFee.ContestTypeID)] = copilotFee
		}
	}

	logger.Info("Registry built successfully",
		"studio_overviews", len(r.studioOverviews),
		"studio_contest_fees", len(r.studioContestFees),
		"software_contest_fees", len(r.softwareContestFees),
		"copilot_fees", len(r.copilotFees),
	)

	return r
}

func (r *InMemoryRegistry) recordSizes(m *metrics.Manager) {
	m.SetRegistryEntries("studio_overviews", len(r.studioOverviews))
	m.SetRegistryEntries("studio_contest_fees", len(r.studioContestFees))
	m.SetRegistryEntries("software_contest_fees", len(r.softwareContestFees))
	m.SetRegistryEntries("copilot_fees", len(r.copilotFees))
}

// Overview returns the decoded overview.xml.
func (r *InMemoryRegistry) Overview() *domain.Overview {
	return r.overview
}

// StudioOverviews returns the subtype overviews of the STUDIO category.
func (r *InMemoryRegistry) StudioOverviews() []*domain.StudioSubtypeOverview {
	return r.studioOverviews
}

// StudioOverview returns the studio subtype overview with the given id, or nil.
// Time complexity: O(n) over the studio subtypes, which number in the tens.
func (r *InMemoryRegistry) StudioOverview(contestTypeID int64) *domain.StudioSubtypeOverview {
	for _, overview := range r.studioOverviews {
		if overview.ID == contestTypeID {
			return overview
		}
	}
	return nil
}

// ContestFees returns the decoded contestFees.xml.
func (r *InMemoryRegistry) ContestFees() *domain.ContestFees {
	return r.contestFees
}

// StudioContestFees returns the studio subtype fees.
func (r *InMemoryRegistry) StudioContestFees() []*domain.StudioSubtypeContestFee {
	return r.studioContestFees
}

// FileTypes returns the decoded fileTypes.xml.
func (r *InMemoryRegistry) FileTypes() *domain.FileTypes {
	return r.fileTypes
}

// SoftwareContestFees returns the software contest fee map.
func (r *InMemoryRegistry) SoftwareContestFees() map[string]*domain.ContestFee {
	return r.softwareContestFees
}

// SoftwareContestFee returns the software contest fee of a contest type, or nil.
// Time complexity: O(1)
func (r *InMemoryRegistry) SoftwareContestFee(contestTypeID int64) *domain.ContestFee {
	return r.softwareContestFees[domain.ContestTypeKey(contestTypeID)]
}

// CopilotFees returns the copilot fee map.
func (r *InMemoryRegistry) CopilotFees() map[string]*domain.CopilotFee {
	return r.copilotFees
}

// CopilotFee returns the copilot fee of a contest type, or nil.
// Time complexity: O(1)
func (r *InMemoryRegistry) CopilotFee(contestTypeID int64) *domain.CopilotFee {
	return r.copilotFees[domain.ContestTypeKey(contestTypeID)]
}

// IssueTrackingConfig returns the decoded IssueTrackingConfig.xml.
func (r *InMemoryRegistry) IssueTrackingConfig() *domain.IssueTrackingConfig {
	return r.issueTrackingConfig
}

var _ Registry = (*InMemoryRegistry)(nil)
