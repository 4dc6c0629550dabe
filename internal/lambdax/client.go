// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package lambdax builds the Lambda API client the resolver queries layer
// versions through.
package lambdax

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/platform-engineering-labs/strata/pkg/model"
)

type Config struct {
	Region  string
	Profile string
}

func FromProvider(provider model.Provider) *Config {
	return &Config{
		Region:  provider.Region,
		Profile: provider.Profile,
	}
}

func (c *Config) ToAwsConfig(ctx context.Context) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error

	opts = append(opts, awsconfig.WithRegion(c.Region))
	if c.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(c.Profile))
	}

	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

func NewClient(ctx context.Context, config *Config) (*lambda.Client, error) {
	awsCfg, err := config.ToAwsConfig(ctx)
	if err != nil {
		return nil, err
	}

	return lambda.NewFromConfig(awsCfg), nil
}
