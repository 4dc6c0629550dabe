// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Service is the high-level declarative form of a serverless deployment.
// Layer entries are kept loosely typed: a layer may be a plain ARN string,
// a CloudFormation intrinsic (a map), or anything else the host framework
// understands. Only string entries are candidates for version pinning.
type Service struct {
	Service   string               `yaml:"service,omitempty" json:"Service,omitempty"`
	Provider  Provider             `yaml:"provider,omitempty" json:"Provider,omitempty"`
	Functions map[string]*Function `yaml:"functions,omitempty" json:"Functions,omitempty"`
}

type Provider struct {
	Name    string `yaml:"name,omitempty" json:"Name,omitempty"`
	Region  string `yaml:"region,omitempty" json:"Region,omitempty"`
	Profile string `yaml:"profile,omitempty" json:"Profile,omitempty"`
}

type Function struct {
	Handler string `yaml:"handler,omitempty" json:"Handler,omitempty"`
	Runtime string `yaml:"runtime,omitempty" json:"Runtime,omitempty"`
	Layers  []any  `yaml:"layers,omitempty" json:"Layers,omitempty"`
}

func ParseService(data []byte) (*Service, error) {
	var svc Service
	if err := yaml.Unmarshal(data, &svc); err != nil {
		return nil, fmt.Errorf("failed to parse service descriptor: %w", err)
	}

	return &svc, nil
}

func LoadService(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service descriptor %s: %w", path, err)
	}

	return ParseService(data)
}

func (s *Service) ToYAML() ([]byte, error) {
	return yaml.Marshal(s)
}
