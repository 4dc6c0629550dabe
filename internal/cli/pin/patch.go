// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package pin

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/platform-engineering-labs/strata/internal/resolver"
)

// patchTemplateJSON writes resolved ARNs back into the original template
// bytes, one path at a time, so the formatting and key order of everything
// untouched survives the rewrite.
func patchTemplateJSON(data []byte, results []resolver.Resolution) ([]byte, error) {
	var err error
	for _, res := range results {
		for _, path := range res.Paths {
			if !strings.HasPrefix(path, "Resources.") {
				continue
			}

			if !gjson.GetBytes(data, path).Exists() {
				return nil, fmt.Errorf("template has no value at %s", path)
			}

			data, err = sjson.SetBytes(data, path, res.Arn)
			if err != nil {
				return nil, fmt.Errorf("failed to patch template at %s: %w", path, err)
			}
		}
	}

	return data, nil
}

// patchServiceYAML writes resolved ARNs back into the original service
// file through its yaml node tree, keeping comments and document order.
func patchServiceYAML(data []byte, results []resolver.Resolution) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse service file for patching: %w", err)
	}

	for _, res := range results {
		for _, path := range res.Paths {
			if !strings.HasPrefix(path, "functions.") {
				continue
			}

			if err := setYAMLPath(&doc, strings.Split(path, "."), res.Arn); err != nil {
				return nil, fmt.Errorf("failed to patch service file at %s: %w", path, err)
			}
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode patched service file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func setYAMLPath(node *yaml.Node, parts []string, value string) error {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return fmt.Errorf("empty document")
		}
		return setYAMLPath(node.Content[0], parts, value)
	}

	if len(parts) == 0 {
		node.SetString(value)
		return nil
	}

	head := parts[0]
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == head {
				return setYAMLPath(node.Content[i+1], parts[1:], value)
			}
		}
		return fmt.Errorf("key %q not found", head)
	case yaml.SequenceNode:
		idx, err := strconv.Atoi(head)
		if err != nil || idx < 0 || idx >= len(node.Content) {
			return fmt.Errorf("invalid sequence index %q", head)
		}
		return setYAMLPath(node.Content[idx], parts[1:], value)
	default:
		return fmt.Errorf("cannot descend into scalar at %q", head)
	}
}
