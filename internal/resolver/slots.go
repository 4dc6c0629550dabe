// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package resolver

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/platform-engineering-labs/strata/pkg/model"
)

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Slot is a writable location inside a configuration tree: the layers slice
// that owns it plus the element index. Writing through a Slot mutates the
// descriptor in place, so there is no separate write-back step.
type Slot struct {
	Container []any
	Index     int

	// Path is the dotted location of the slot inside its document, used for
	// debug logs and file patching. It plays no part in resolution.
	Path string
}

func (s Slot) Value() any {
	return s.Container[s.Index]
}

func (s Slot) Set(arn string) {
	s.Container[s.Index] = arn
}

// SlotsFromTemplate collects layer slots from a compiled template, visiting
// Lambda function resources in stable id order. Entries without a Layers
// property contribute nothing; a Layers value that is not an array is
// skipped with a debug note.
func SlotsFromTemplate(tpl *model.Template) []Slot {
	var slots []Slot
	for _, id := range sortedKeys(tpl.Resources) {
		res := tpl.Resources[id]
		if res == nil || res.Type != model.ResourceTypeLambdaFunction {
			continue
		}

		raw, ok := res.Properties["Layers"]
		if !ok || raw == nil {
			continue
		}

		layers, ok := raw.([]any)
		if !ok {
			slog.Debug("Skipping malformed Layers property", "resource", id, "type", fmt.Sprintf("%T", raw))
			continue
		}

		for i := range layers {
			slots = append(slots, Slot{
				Container: layers,
				Index:     i,
				Path:      fmt.Sprintf("Resources.%s.Properties.Layers.%d", id, i),
			})
		}
	}

	return slots
}

// SlotsFromService collects layer slots from the declarative function list,
// visiting functions in stable id order.
func SlotsFromService(svc *model.Service) []Slot {
	var slots []Slot
	for _, id := range sortedKeys(svc.Functions) {
		fn := svc.Functions[id]
		if fn == nil || fn.Layers == nil {
			continue
		}

		for i := range fn.Layers {
			slots = append(slots, Slot{
				Container: fn.Layers,
				Index:     i,
				Path:      fmt.Sprintf("functions.%s.layers.%d", id, i),
			})
		}
	}

	return slots
}
