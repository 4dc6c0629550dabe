// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchLayerRef_MatchesLatestMarkers(t *testing.T) {
	for _, marker := range []string{LatestMarker, "latest", "?"} {
		t.Run(marker, func(t *testing.T) {
			ref, ok := MatchLayerRef("arn:aws:lambda:us-east-1:123456789012:layer:shared-utils:" + marker)
			require.True(t, ok)
			assert.Equal(t, "us-east-1", ref.Region)
			assert.Equal(t, "123456789012", ref.Account)
			assert.Equal(t, "shared-utils", ref.Name)
			assert.Equal(t, VersionLatest, ref.Version)
		})
	}
}

func TestMatchLayerRef_KeepsPlaceholders(t *testing.T) {
	ref, ok := MatchLayerRef("arn:aws:lambda:?:?:layer:shared-utils:latest")
	require.True(t, ok)
	assert.Equal(t, Placeholder, ref.Region)
	assert.Equal(t, Placeholder, ref.Account)
}

func TestMatchLayerRef_NotEligible(t *testing.T) {
	cases := map[string]any{
		"explicit numeric version": "arn:aws:lambda:us-east-1:123456789012:layer:shared-utils:42",
		"not a layer arn":          "arn:aws:s3:::my-bucket",
		"missing version":          "arn:aws:lambda:us-east-1:123456789012:layer:shared-utils",
		"trailing garbage":         "arn:aws:lambda:us-east-1:123456789012:layer:shared-utils:latest:extra",
		"plain name":               "shared-utils",
		"empty string":             "",
		"not a string":             map[string]any{"Ref": "SharedUtilsLambdaLayer"},
		"nil entry":                nil,
		"numeric entry":            42,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := MatchLayerRef(raw)
			assert.False(t, ok)
		})
	}
}

func TestLayerRefTarget(t *testing.T) {
	t.Run("placeholder account resolves to bare name", func(t *testing.T) {
		ref, ok := MatchLayerRef("arn:aws:lambda:?:?:layer:shared-utils:latest")
		require.True(t, ok)
		assert.Equal(t, "shared-utils", ref.Target("us-east-1"))
	})

	t.Run("placeholder region substituted from ambient region", func(t *testing.T) {
		ref, ok := MatchLayerRef("arn:aws:lambda:?:123456789012:layer:shared-utils:latest")
		require.True(t, ok)
		assert.Equal(t, "arn:aws:lambda:eu-west-1:123456789012:layer:shared-utils", ref.Target("eu-west-1"))
	})

	t.Run("explicit region kept, version suffix dropped", func(t *testing.T) {
		ref, ok := MatchLayerRef("arn:aws:lambda:us-west-2:123456789012:layer:shared-utils:" + LatestMarker)
		require.True(t, ok)
		assert.Equal(t, "arn:aws:lambda:us-west-2:123456789012:layer:shared-utils", ref.Target("eu-west-1"))
	})
}
