// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package model

import (
	"fmt"
	"regexp"
)

// LatestMarker is the sentinel version component meaning "pin me to the
// latest published version at deploy time".
const LatestMarker = "serverless-latest-layer-version"

// Placeholder marks a region or account component that should be filled in
// from the ambient deployment context.
const Placeholder = "?"

// VersionLatest is the normalized version token carried by every eligible
// reference, regardless of which marker spelled it.
const VersionLatest = "latest"

// layerRefPattern recognizes exactly one shape: a fully qualified Lambda
// layer ARN whose version component asks for resolution. References that
// already carry a numeric version do not match and are left untouched.
var layerRefPattern = regexp.MustCompile(
	`^arn:aws:lambda:([a-z0-9-]+|\?):([0-9]+|\?):layer:([a-zA-Z0-9_-]+):(\?|latest|` + LatestMarker + `)$`)

// LayerRef is a decomposed layer reference. Region and Account hold either
// a concrete value or Placeholder; Version is always VersionLatest.
type LayerRef struct {
	Region  string
	Account string
	Name    string
	Version string
}

// MatchLayerRef decides whether a raw layer entry is eligible for pinning.
// Non-string entries (CloudFormation intrinsics, nulls) are not eligible;
// neither are references already carrying an explicit version.
func MatchLayerRef(raw any) (LayerRef, bool) {
	s, ok := raw.(string)
	if !ok {
		return LayerRef{}, false
	}

	m := layerRefPattern.FindStringSubmatch(s)
	if m == nil {
		return LayerRef{}, false
	}

	return LayerRef{
		Region:  m[1],
		Account: m[2],
		Name:    m[3],
		Version: VersionLatest,
	}, true
}

// Target returns the canonical name to resolve this reference under.
// A placeholder account means the layer lives in the deploying account, so
// the bare layer name is enough. Otherwise the target is the qualified ARN
// with the version suffix dropped and a placeholder region replaced by the
// ambient deployment region.
func (r LayerRef) Target(ambientRegion string) string {
	if r.Account == Placeholder {
		return r.Name
	}

	region := r.Region
	if region == Placeholder {
		region = ambientRegion
	}

	return fmt.Sprintf("arn:aws:lambda:%s:%s:layer:%s", region, r.Account, r.Name)
}
