package selector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jrywalker/displayselect/internal/model"
)

// Applier realizes a chosen arrangement on the display server.
type Applier interface {
	Apply(ctx context.Context, arrangement model.Arrangement) error
}

// PostApply runs the best-effort refresh actions after a successful
// apply.
type PostApply interface {
	Run(ctx context.Context)
}

// Notifier shows an informational desktop notification.
type Notifier func(summary, body string) error

// Pipeline wires the selector to the applier and the post-apply hooks:
// select, apply once, then hooks. A cancelled or failed selection never
// reaches the applier; failed applies never reach the hooks.
type Pipeline struct {
	Selector *Selector
	Applier  Applier
	Hooks    PostApply
	Notify   Notifier
	Logger   *slog.Logger
}

// Run executes one selection round. A Manual arrangement is returned
// untouched for the caller to hand off to the external arrangement
// tool.
func (p *Pipeline) Run(ctx context.Context) (model.Arrangement, error) {
	arrangement, err := p.Selector.Select(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := arrangement.(model.Manual); ok {
		p.Logger.Debug("deferring to manual arrangement tool")
		return arrangement, nil
	}

	if err := p.Applier.Apply(ctx, arrangement); err != nil {
		return arrangement, err
	}

	if single, ok := arrangement.(model.Single); ok && single.Auto && p.Notify != nil {
		body := fmt.Sprintf("Output %s configured automatically.", single.Output)
		if err := p.Notify("Display configured", body); err != nil {
			p.Logger.Debug("notification failed", "error", err)
		}
	}

	if p.Hooks != nil {
		p.Hooks.Run(ctx)
	}
	return arrangement, nil
}
