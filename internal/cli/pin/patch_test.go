// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package pin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/platform-engineering-labs/strata/internal/resolver"
)

func TestPatchServiceYAML(t *testing.T) {
	source := []byte(`service: hello-world
provider:
  name: aws
  region: us-east-1

functions:
  hello:
    handler: index.handler
    # keep shared-utils on the newest build
    layers:
      - arn:aws:lambda:?:?:layer:shared-utils:latest
      - { Ref: SharedLambdaLayer }
`)

	results := []resolver.Resolution{{
		Target: "shared-utils",
		Arn:    "arn:aws:lambda:us-east-1:123456789012:layer:shared-utils:9",
		Paths:  []string{"functions.hello.layers.0"},
	}}

	patched, err := patchServiceYAML(source, results)
	require.NoError(t, err)

	out := string(patched)
	assert.Contains(t, out, "arn:aws:lambda:us-east-1:123456789012:layer:shared-utils:9")
	assert.NotContains(t, out, "shared-utils:latest")
	assert.Contains(t, out, "# keep shared-utils on the newest build", "comments survive patching")
	assert.Contains(t, out, "Ref: SharedLambdaLayer", "untouched entries survive patching")
}

func TestPatchServiceYAML_MissingPath(t *testing.T) {
	source := []byte("functions:\n  hello:\n    handler: index.handler\n")

	_, err := patchServiceYAML(source, []resolver.Resolution{{
		Arn:   "arn:resolved",
		Paths: []string{"functions.hello.layers.0"},
	}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "functions.hello.layers.0")
}

func TestPatchTemplateJSON(t *testing.T) {
	source := []byte(`{
  "Resources": {
    "HelloLambdaFunction": {
      "Type": "AWS::Lambda::Function",
      "Properties": {
        "Handler": "index.handler",
        "Layers": ["arn:aws:lambda:?:?:layer:shared-utils:latest"]
      }
    }
  }
}`)

	results := []resolver.Resolution{{
		Target: "shared-utils",
		Arn:    "arn:aws:lambda:us-east-1:123456789012:layer:shared-utils:9",
		Paths: []string{
			"functions.hello.layers.0",
			"Resources.HelloLambdaFunction.Properties.Layers.0",
		},
	}}

	patched, err := patchTemplateJSON(source, results)
	require.NoError(t, err)

	arn := gjson.GetBytes(patched, "Resources.HelloLambdaFunction.Properties.Layers.0")
	assert.Equal(t, "arn:aws:lambda:us-east-1:123456789012:layer:shared-utils:9", arn.String())
	handler := gjson.GetBytes(patched, "Resources.HelloLambdaFunction.Properties.Handler")
	assert.Equal(t, "index.handler", handler.String())
}

func TestRenderSummary(t *testing.T) {
	out := renderSummary([]resolver.Resolution{{
		Target:  "shared-utils",
		Version: 9,
		Arn:     "arn:v9",
		Paths:   []string{"functions.hello.layers.0", "functions.world.layers.0"},
	}})

	assert.Contains(t, out, "shared-utils")
	assert.Contains(t, out, "arn:v9")
	assert.Contains(t, out, "2")
}
