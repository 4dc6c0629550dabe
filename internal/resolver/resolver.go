// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package resolver pins "latest version" layer references in deployment
// descriptors to the concrete latest published version, issuing one Lambda
// lookup per distinct layer no matter how many places reference it.
package resolver

import (
	"context"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"github.com/platform-engineering-labs/strata/pkg/model"
)

// Resolver runs the pinning pipeline over a descriptor. A Resolver is cheap
// and stateless between invocations; every call builds its groups fresh.
type Resolver struct {
	client LayerVersionLister
	region string
}

// New returns a Resolver that queries layer versions through client and
// substitutes region for placeholder regions in qualified references.
func New(client LayerVersionLister, region string) *Resolver {
	return &Resolver{client: client, region: region}
}

// Resolution summarizes the outcome for one distinct target. Paths lists
// the document locations that received the resolved ARN, in discovery order.
type Resolution struct {
	Target  string
	Version int64
	Arn     string
	Paths   []string
}

// ResolveTemplate pins every eligible layer reference in a compiled
// template. Corresponds to the post-compile lifecycle moment.
func (r *Resolver) ResolveTemplate(ctx context.Context, tpl *model.Template) ([]Resolution, error) {
	return r.Resolve(ctx, SlotsFromTemplate(tpl))
}

// ResolveFunctions pins every eligible layer reference in the declarative
// function list. Corresponds to the pre-deploy lifecycle moment.
func (r *Resolver) ResolveFunctions(ctx context.Context, svc *model.Service) ([]Resolution, error) {
	return r.Resolve(ctx, SlotsFromService(svc))
}

// Resolve groups eligible slots by canonical target, resolves each
// distinct target concurrently, and writes the resolved ARN into every slot
// of a successful target. A failing target fails the whole call, but targets
// that already completed keep their mutations: pinning is idempotent and the
// caller's recourse is to rerun. Slots from both source representations may
// be combined in one call so a layer referenced from both is queried once.
func (r *Resolver) Resolve(ctx context.Context, slots []Slot) ([]Resolution, error) {
	groups := make(map[string][]Slot)
	var targets []string

	for _, slot := range slots {
		ref, ok := model.MatchLayerRef(slot.Value())
		if !ok {
			continue
		}

		target := ref.Target(r.region)
		if _, seen := groups[target]; !seen {
			targets = append(targets, target)
		}
		groups[target] = append(groups[target], slot)
	}

	if len(targets) == 0 {
		return nil, nil
	}

	results := make([]Resolution, len(targets))
	p := pool.New().WithErrors().WithContext(ctx)

	for i, target := range targets {
		p.Go(func(ctx context.Context) error {
			record, err := r.latestVersion(ctx, target)
			if err != nil {
				return err
			}

			paths := make([]string, 0, len(groups[target]))
			for _, slot := range groups[target] {
				slog.Debug("Pinning layer reference", "path", slot.Path, "arn", record.Arn)
				slot.Set(record.Arn)
				paths = append(paths, slot.Path)
			}

			results[i] = Resolution{
				Target:  target,
				Version: record.Version,
				Arn:     record.Arn,
				Paths:   paths,
			}

			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
