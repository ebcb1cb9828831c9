// Package pipeline provides the high-level orchestration for resume
// generation: score the catalog, tailor (AI or fallback), render. There is
// exactly one rendering path regardless of which builder produced the record.
package pipeline

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/intersync-backend/internal/catalog"
	"github.com/jonathan/intersync-backend/internal/ranking"
	"github.com/jonathan/intersync-backend/internal/rendering"
	"github.com/jonathan/intersync-backend/internal/tailoring"
	"github.com/jonathan/intersync-backend/internal/types"
)

// topProjectCount is how many scored catalog entries are surfaced to
// callers. Truncation is a presentation policy of the orchestrator; the
// ranker itself returns the full ordering.
const topProjectCount = 3

// state tracks where a run is in the tailoring state machine.
type state string

const (
	stateAIAttempted  state = "ai_attempted"
	stateFallbackUsed state = "fallback_used"
	stateDone         state = "done"
)

// Options holds the per-request inputs for a pipeline run.
type Options struct {
	TargetRole     string
	JobDescription string
	Candidate      types.CandidateProfile
	Catalog        []catalog.Entry
	// Tailor is the AI path. Nil means AI is not configured.
	Tailor tailoring.Tailor
	// DisableAI skips the AI path even when a tailor is configured.
	DisableAI bool
	Verbose   bool
}

// Result is the terminal output of a run. It always carries a ResumeRecord
// and its rendered document; UsedAI reports provenance and Warning names the
// reason whenever the AI path was skipped or failed.
type Result struct {
	Record      types.ResumeRecord    `json:"resume_json"`
	Document    string                `json:"latex"`
	TopProjects []ranking.ScoredEntry `json:"suggested_projects,omitempty"`
	UsedAI      bool                  `json:"used_ai"`
	Warning     string                `json:"warning,omitempty"`
}

// Run executes the pipeline. It never fails on AI-path errors; the only
// errors it returns come from context cancellation. Catalog scoring and
// tailoring are independent and run concurrently.
func Run(ctx context.Context, opts Options) (Result, error) {
	var (
		record      types.ResumeRecord
		usedAI      bool
		warning     string
		topProjects []ranking.ScoredEntry
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scored := ranking.Rank(opts.Candidate.Interests, opts.Candidate.Skills, opts.Catalog)
		if len(scored) > topProjectCount {
			scored = scored[:topProjectCount]
		}
		topProjects = scored
		return nil
	})

	g.Go(func() error {
		record, usedAI, warning = buildRecord(gctx, opts)
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Result{
		Record:      record,
		Document:    rendering.Render(record),
		TopProjects: topProjects,
		UsedAI:      usedAI,
		Warning:     warning,
	}, nil
}

// buildRecord runs the tailoring state machine. Every AI failure kind is
// absorbed into the fallback builder; the AI path never surfaces as a
// request failure.
func buildRecord(ctx context.Context, opts Options) (record types.ResumeRecord, usedAI bool, warning string) {
	current := stateFallbackUsed
	if opts.Tailor != nil && !opts.DisableAI {
		current = stateAIAttempted
	}

	if current == stateAIAttempted {
		tailored, err := opts.Tailor.Tailor(ctx, opts.TargetRole, opts.JobDescription, opts.Candidate)
		if err == nil {
			logTransition(opts, stateAIAttempted, stateDone)
			return tailored, true, ""
		}

		warning = err.Error()
		logTransition(opts, stateAIAttempted, stateFallbackUsed)
		current = stateFallbackUsed
	} else if opts.DisableAI {
		warning = "ai tailoring disabled for this request"
	} else {
		warning = "ai tailoring not configured"
	}

	record = tailoring.BuildFallback(opts.TargetRole, opts.JobDescription, opts.Candidate)
	logTransition(opts, current, stateDone)
	return record, false, warning
}

func logTransition(opts Options, from, to state) {
	if opts.Verbose {
		log.Printf("[pipeline] %s -> %s", from, to)
	}
}
