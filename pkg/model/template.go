// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package model

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// ResourceTypeLambdaFunction is the compiled resource kind that carries
// layer associations.
const ResourceTypeLambdaFunction = "AWS::Lambda::Function"

// Template is the fully compiled low-level form of a deployment: a
// CloudFormation-style document keyed by logical resource id. Properties
// stay loosely typed so pinning never has to understand the full resource
// schema.
type Template struct {
	Resources map[string]*TemplateResource `json:"Resources,omitempty"`
	Outputs   map[string]any               `json:"Outputs,omitempty"`
}

type TemplateResource struct {
	Type       string         `json:"Type,omitempty"`
	Properties map[string]any `json:"Properties,omitempty"`
}

func ParseTemplate(data []byte) (*Template, error) {
	var tpl Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("failed to parse compiled template: %w", err)
	}

	return &tpl, nil
}

func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read compiled template %s: %w", path, err)
	}

	return ParseTemplate(data)
}

func (t *Template) ToJSON() string {
	result, _ := json.Marshal(t)

	return string(result)
}
