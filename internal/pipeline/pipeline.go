package pipeline

import (
	"path"
	"strings"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/categoryengine"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/config"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/dateengine"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/mapping"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/nameengine"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/separator"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/userengine"
)

// PipelineConfig is the narrow slice of config.Config that Assemble needs,
// kept free of the config package so filename assembly stays a pure
// function over plain data (spec.md §4.6 Assemble).
type PipelineConfig struct {
	ComponentOrder           []string
	ComponentSep             string
	CategoryPlacement        string
	CategoryAppendToFilename bool
	ManagementEnabled        bool
	ManagementYesFlag        string
	ManagementNoFlag         string
}

// Pipeline runs the spec.md §4.6 state machine over one file at a time. The
// engines it wraps compile their regex sets once at construction and are
// read-only afterward, shared freely across files (spec.md §5 "Shared
// state").
type Pipeline struct {
	pcfg       PipelineConfig
	users      *userengine.Engine
	categories *categoryengine.Engine
	names      *nameengine.Engine
	dates      *dateengine.Engine
	seps       *separator.Engine
}

// New builds a Pipeline from the loaded config and mapping tables.
func New(cfg *config.Config, userMap *mapping.UserMap, categoryMap *mapping.CategoryMap) (*Pipeline, error) {
	dates, err := dateengine.New(cfg.Date)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		pcfg: PipelineConfig{
			ComponentOrder:           cfg.Global.ComponentOrder,
			ComponentSep:             cfg.Global.ComponentSep,
			CategoryPlacement:        cfg.Category.Placement,
			CategoryAppendToFilename: cfg.Category.AppendToFilename,
			ManagementEnabled:        cfg.ManagementFlag.Enabled,
			ManagementYesFlag:        cfg.ManagementFlag.YesFlag,
			ManagementNoFlag:         cfg.ManagementFlag.NoFlag,
		},
		users:      userengine.New(userMap, cfg.UserMapping, cfg.Global.CaseNormalization),
		categories: categoryengine.New(categoryMap, cfg.Category),
		names:      nameengine.New(cfg.Name, cfg.Global.Separators.Input),
		dates:      dates,
		seps:       separator.New(cfg.Global.Separators.Input, cfg.Global.Separators.Normalized),
	}, nil
}

// Run executes the full Start -> ... -> Assemble state machine (spec.md
// §4.6) over one relative input path. statPath, when non-empty, is the
// absolute filesystem path stat'd for the metadata fallback; stat may be
// nil when no fallback is configured or available. excludeManagementFlag
// mirrors the `--exclude-management-flag` CLI flag.
func (p *Pipeline) Run(rawPath, statPath string, stat dateengine.StatSource, excludeManagementFlag bool) (Components, string) {
	// Start: detach extension, split into person segment + residual path.
	ext := path.Ext(rawPath)
	base := strings.TrimSuffix(rawPath, ext)
	segments := strings.Split(base, "/")

	userSeg := segments[0]
	residual := ""
	if len(segments) > 1 {
		residual = strings.Join(segments[1:], "/")
	}

	// UserPass
	ur := p.users.Resolve(userSeg)

	// CategoryPass
	cr := p.categories.Match(residual)

	// NamePass (path-aware: the remainder may still contain "/")
	nr := p.names.Run(ur.CanonicalName, cr.Remainder, true)

	// DatePass
	dates, rewrittenPath, segResults := dateengine.ExtractFromPath(p.dates, nr.Remainder)
	dateStr := dateengine.FirstDate(dates)
	if dateStr == "" && stat != nil {
		dateStr = p.dates.Fallback(statPath, stat)
	}
	protected := joinProtectedSpans(segResults)

	// CleanPass
	cleaned := p.seps.CleanRemainder(rewrittenPath, protected)

	comps := Components{
		RawPath:       rawPath,
		Extension:     ext,
		UserID:        ur.UserID,
		CanonicalName: ur.CanonicalName,
		IsManagement:  ur.IsManagement,
		CategoryID:    cr.CategoryID,
		CategoryName:  cr.CanonicalName,
		CategoryFound: cr.Status == categoryengine.Matched,
		Date:          dateStr,
		Remainder:     cleaned,
		Protected:     protected,
		NameMatches:   nr.Matches,
	}

	// Assemble
	filename := Assemble(comps, &p.pcfg, excludeManagementFlag)
	return comps, filename
}

// joinProtectedSpans shifts each path segment's locally-scoped protected
// spans into the byte-offset space of the "/"-rejoined path, so CleanPass
// still honors protection markers produced by the per-segment date engine
// passes (spec.md §4.2 protected spans, §4.6 "Clean last").
func joinProtectedSpans(segments []dateengine.SegmentResult) []separator.Span {
	var spans []separator.Span
	offset := 0
	for i, seg := range segments {
		for _, sp := range seg.Protected {
			spans = append(spans, separator.Span{Start: sp.Start + offset, End: sp.End + offset})
		}
		offset += len(seg.Remainder)
		if i != len(segments)-1 {
			offset++ // the "/" joiner
		}
	}
	return spans
}
