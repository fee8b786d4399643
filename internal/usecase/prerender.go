package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/3-lines-studio/prerender/internal/adapters/cli"
	"github.com/3-lines-studio/prerender/internal/config"
	"github.com/3-lines-studio/prerender/internal/core"
)

type PrerenderInput struct {
	Config    *config.Config
	OutputDir string
}

type PrerenderOutput struct {
	BuildID    string
	Pages      []core.RenderedPage
	Suppressed []core.PrerenderErrorEvent
	Error      error
}

type PrerenderService struct {
	renderer PageRenderer
	adapter  Adapter
	cli      CLIOutput
	logger   *slog.Logger
}

func NewPrerenderService(renderer PageRenderer, adapter Adapter, cli CLIOutput, logger *slog.Logger) *PrerenderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PrerenderService{
		renderer: renderer,
		adapter:  adapter,
		cli:      cli,
		logger:   logger,
	}
}

type queuedPath struct {
	path     string
	referrer string
}

type renderResult struct {
	page       core.RenderedPage
	suppressed *core.PrerenderErrorEvent
}

// Prerender renders every entry, and every same-origin link reached from
// them when crawling is on, then hands the pages to the adapter. The first
// failure the error handler does not suppress stops the run.
func (s *PrerenderService) Prerender(ctx context.Context, input PrerenderInput) PrerenderOutput {
	cfg := input.Config
	s.cli.PrintHeader("Prerender")

	if cfg == nil {
		return PrerenderOutput{Error: errors.New("missing build configuration")}
	}
	if err := cfg.Validate(); err != nil {
		return PrerenderOutput{Error: err}
	}

	opts := cfg.Kit.Prerender
	handler := opts.ErrorHandler()
	buildID := uuid.NewString()

	s.cli.PrintStep("", "Target: %s (%d entries)", cfg.Name, opts.Entries.Len())
	s.logger.Debug("prerender started", "target", cfg.Name, "build", buildID, "crawl", opts.Crawl, "concurrency", opts.Concurrency)

	report := cli.NewBuildReport(s.cli, s.cli.Writer(), input.OutputDir)

	seen := make(map[string]bool)
	var level []queuedPath
	for _, entry := range opts.Entries.Entries() {
		key := core.NormalizePath(string(entry))
		if seen[key] {
			continue
		}
		seen[key] = true
		level = append(level, queuedPath{path: string(entry)})
	}

	output := PrerenderOutput{BuildID: buildID}

	stepRender := report.StartStep("Rendering pages")
	for depth := 0; len(level) > 0; depth++ {
		s.logger.Debug("rendering level", "depth", depth, "paths", len(level))

		results, err := s.renderLevel(ctx, level, handler, opts.Concurrency)
		if err != nil {
			report.EndStep(stepRender, false, err.Error())
			output.Error = err
			return output
		}

		var next []queuedPath
		for _, result := range results {
			if result.suppressed != nil {
				output.Suppressed = append(output.Suppressed, *result.suppressed)
				continue
			}

			page := result.page
			output.Pages = append(output.Pages, page)
			s.cli.PrintFile(page.Path)
			if page.IsRedirect() {
				report.AddWarning(page.Path, "Redirect written as refresh page", page.Links)
			}

			if !opts.Crawl {
				continue
			}
			for _, link := range page.Links {
				if seen[link] {
					continue
				}
				seen[link] = true
				next = append(next, queuedPath{path: link, referrer: page.Path})
			}
		}
		level = next
	}
	report.EndStep(stepRender, true, "")
	report.SetPageCount(len(output.Pages))
	report.SetSkippedCount(len(output.Suppressed))

	stepAdapt := report.StartStep(fmt.Sprintf("Writing output with %s adapter", s.adapter.Name()))
	err := s.adapter.Adapt(ctx, core.ExportInput{
		BuildID:    buildID,
		Target:     cfg.Name,
		Pages:      output.Pages,
		Suppressed: output.Suppressed,
	})
	if err != nil {
		report.EndStep(stepAdapt, false, err.Error())
		report.AddError(s.adapter.Name(), "Adapter failed", []string{err.Error()})
		report.Render()
		output.Error = fmt.Errorf("adapter %s failed: %w", s.adapter.Name(), err)
		return output
	}
	report.EndStep(stepAdapt, true, "")

	report.Render()
	return output
}

func (s *PrerenderService) renderLevel(ctx context.Context, level []queuedPath, handler core.HTTPErrorHandler, limit int) ([]renderResult, error) {
	results := make([]renderResult, len(level))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, q := range level {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			page, err := s.renderer.Render(gctx, q.path)
			if err == nil {
				page.Referrer = q.referrer
				results[i] = renderResult{page: page}
				return nil
			}
			// The build was cancelled or another route already failed.
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}

			event := core.PrerenderErrorEvent{
				Path:     q.path,
				Referrer: q.referrer,
				Message:  failureMessage(err, q),
			}
			if fatal := handler(event).Err(event); fatal != nil {
				return fatal
			}

			s.logger.Debug("prerender error suppressed", "path", event.Path, "referrer", event.Referrer, "message", event.Message)
			results[i] = renderResult{suppressed: &event}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func failureMessage(err error, q queuedPath) string {
	var statusErr *core.HTTPStatusError
	if errors.As(err, &statusErr) {
		return core.FormatHTTPError(statusErr.Status, q.path, q.referrer)
	}
	return err.Error()
}
