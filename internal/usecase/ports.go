package usecase

import (
	"context"
	"io"

	"github.com/3-lines-studio/prerender/internal/core"
)

type PageRenderer interface {
	Render(ctx context.Context, path string) (core.RenderedPage, error)
}

// Adapter materializes rendered pages into a build output. The pipeline
// does not look inside it.
type Adapter interface {
	Name() string
	Adapt(ctx context.Context, input core.ExportInput) error
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Writer() io.Writer
}
