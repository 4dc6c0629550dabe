// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// ErrNoVersionAvailable is returned when a layer has no published versions
// across all pages of the listing.
var ErrNoVersionAvailable = errors.New("no layer version available")

// LayerVersionLister is the slice of the Lambda API the resolver consumes.
// *lambda.Client satisfies it.
type LayerVersionLister interface {
	ListLayerVersions(ctx context.Context, params *lambda.ListLayerVersionsInput, optFns ...func(*lambda.Options)) (*lambda.ListLayerVersionsOutput, error)
}

// VersionRecord is one published version of a layer.
type VersionRecord struct {
	Version int64
	Arn     string
}

// latestVersion pages through every published version of a layer and keeps
// the highest-numbered one. Pages are fetched sequentially since each marker
// comes from the previous response. On equal version numbers the first-seen
// record wins; only a strictly greater version replaces the current best.
func (r *Resolver) latestVersion(ctx context.Context, layer string) (VersionRecord, error) {
	var (
		best   VersionRecord
		found  bool
		marker *string
		pages  int
	)

	for {
		out, err := r.client.ListLayerVersions(ctx, &lambda.ListLayerVersionsInput{
			LayerName: aws.String(layer),
			Marker:    marker,
		})
		if err != nil {
			return VersionRecord{}, fmt.Errorf("failed to list versions of layer %s: %w", layer, err)
		}

		pages++
		for _, v := range out.LayerVersions {
			if !found || v.Version > best.Version {
				best = VersionRecord{Version: v.Version, Arn: aws.ToString(v.LayerVersionArn)}
				found = true
			}
		}

		if out.NextMarker == nil {
			break
		}
		marker = out.NextMarker
	}

	if !found {
		return VersionRecord{}, fmt.Errorf("%w: layer %s has no published versions", ErrNoVersionAvailable, layer)
	}

	slog.Debug("Resolved latest layer version", "layer", layer, "version", best.Version, "pages", pages)

	return best, nil
}
