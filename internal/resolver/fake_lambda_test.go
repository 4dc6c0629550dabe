// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package resolver

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

type fakePage struct {
	versions []types.LayerVersionsListItem
	last     bool
}

// fakeLambda serves canned ListLayerVersions pages per layer name and
// counts the calls it receives.
type fakeLambda struct {
	mu    sync.Mutex
	pages map[string][]fakePage
	errs  map[string]error
	calls map[string]int
}

func newFakeLambda() *fakeLambda {
	return &fakeLambda{
		pages: make(map[string][]fakePage),
		errs:  make(map[string]error),
		calls: make(map[string]int),
	}
}

func (f *fakeLambda) addPage(layer string, last bool, versions ...types.LayerVersionsListItem) {
	f.pages[layer] = append(f.pages[layer], fakePage{versions: versions, last: last})
}

func (f *fakeLambda) addVersions(layer string, versions ...types.LayerVersionsListItem) {
	f.addPage(layer, true, versions...)
}

func (f *fakeLambda) failWith(layer string, err error) {
	f.errs[layer] = err
}

func (f *fakeLambda) callCount(layer string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[layer]
}

func (f *fakeLambda) ListLayerVersions(_ context.Context, params *lambda.ListLayerVersionsInput, _ ...func(*lambda.Options)) (*lambda.ListLayerVersionsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	layer := aws.ToString(params.LayerName)
	f.calls[layer]++

	if err, ok := f.errs[layer]; ok {
		return nil, err
	}

	page := 0
	if params.Marker != nil {
		if _, err := fmt.Sscanf(*params.Marker, "page-%d", &page); err != nil {
			return nil, fmt.Errorf("unexpected marker %q", *params.Marker)
		}
	}

	pages := f.pages[layer]
	if page >= len(pages) {
		return &lambda.ListLayerVersionsOutput{}, nil
	}

	out := &lambda.ListLayerVersionsOutput{LayerVersions: pages[page].versions}
	if !pages[page].last {
		out.NextMarker = aws.String(fmt.Sprintf("page-%d", page+1))
	}

	return out, nil
}

func layerVersion(version int64, arn string) types.LayerVersionsListItem {
	return types.LayerVersionsListItem{
		Version:         version,
		LayerVersionArn: aws.String(arn),
	}
}
