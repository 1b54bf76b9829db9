package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formmask/pkg/widgets"
)

// Renderer collects widget values through a PromptDriver.
type Renderer struct {
	driver      PromptDriver
	theme       Theme
	maxAttempts int
}

// New constructs a TUI renderer backed by survey unless a driver is given.
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver: newSurveyDriver(),
		theme:  DefaultTheme,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// Collect prompts for every widget in order and returns the accepted texts
// keyed by widget name. A rejected answer is reported with the widget hint
// and asked again; the widget keeps its previous value in the meantime.
func (r *Renderer) Collect(ctx context.Context, items []widgets.Widget) (map[string]string, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if len(items) == 0 {
		return nil, ErrNoWidgets
	}

	values := make(map[string]string, len(items))
	for _, w := range items {
		if err := r.collectOne(ctx, w); err != nil {
			return nil, fmt.Errorf("tui: field %q: %w", w.Name(), err)
		}
		values[w.Name()] = w.Text()
	}
	return values, nil
}

func (r *Renderer) collectOne(ctx context.Context, w widgets.Widget) error {
	for attempt := 1; ; attempt++ {
		answer, err := r.driver.Input(ctx, InputConfig{
			Message: r.theme.PromptPrefix + w.Name(),
			Default: w.Text(),
			Help:    w.Hint(),
		})
		if err != nil {
			return err
		}
		if w.Assign(answer) {
			return nil
		}

		hint := w.Hint()
		if hint == "" {
			hint = fmt.Sprintf("%q is not a complete value", answer)
		}
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+hint); err != nil {
			return err
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return fmt.Errorf("%w after %d attempts: %s", ErrRejected, attempt, hint)
		}
	}
}
