// Package aur resolves install plans against the Arch User Repository.
package aur

import (
	"context"

	"github.com/matzehuels/aurorder/pkg/deps"
	aurrpc "github.com/matzehuels/aurorder/pkg/integrations/aur"
)

// NewResolver creates a resolver backed by the AUR RPC client c.
func NewResolver(c *aurrpc.Client) *deps.Resolver {
	return deps.NewResolver(Fetcher{c})
}

// Fetcher adapts an [aurrpc.Client] to [deps.Fetcher].
type Fetcher struct{ *aurrpc.Client }

// Fetch implements [deps.Fetcher].
func (f Fetcher) Fetch(ctx context.Context, names []string, refresh bool) ([]*deps.Package, error) {
	infos, err := f.Info(ctx, names, refresh)
	if err != nil {
		return nil, err
	}
	pkgs := make([]*deps.Package, len(infos))
	for i, p := range infos {
		pkgs[i] = &deps.Package{
			Name:         p.Name,
			Version:      p.Version,
			Description:  p.Description,
			Dependencies: p.AllDepends(),
		}
	}
	return pkgs, nil
}
