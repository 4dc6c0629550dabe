// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package pin

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/platform-engineering-labs/strata/internal/cli/cmd"
	"github.com/platform-engineering-labs/strata/internal/cli/display"
	"github.com/platform-engineering-labs/strata/internal/lambdax"
	"github.com/platform-engineering-labs/strata/internal/resolver"
	"github.com/platform-engineering-labs/strata/internal/util"
	"github.com/platform-engineering-labs/strata/pkg/model"
)

// DefaultRegion is used as the ambient deployment region when neither the
// service file nor the --region flag names one.
const DefaultRegion = "us-east-1"

type PinOptions struct {
	ServiceFile  string
	TemplateFile string
	Region       string
	Profile      string
	DryRun       bool
}

func PinCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "pin",
		Short: "Pin latest-version layer references to concrete versions",
		RunE: func(command *cobra.Command, args []string) error {
			opts := &PinOptions{}
			opts.ServiceFile = command.Flags().Arg(0)
			opts.TemplateFile, _ = command.Flags().GetString("template")
			opts.Region, _ = command.Flags().GetString("region")
			opts.Profile, _ = command.Flags().GetString("profile")
			opts.DryRun, _ = command.Flags().GetBool("dry-run")

			return runPin(command.Context(), opts)
		},
		Annotations: map[string]string{
			"type":     "Deployment",
			"examples": "{{.Name}} {{.Command}} serverless.yml  |  {{.Name}} {{.Command}} serverless.yml --template .serverless/template.json",
			"args":     "<service file>",
		},
		SilenceErrors: true,
	}

	command.SetUsageTemplate(cmd.SimpleCmdUsageTemplate)

	command.Flags().String("template", "", "Compiled template to pin alongside the service file")
	command.Flags().String("region", "", "Deployment region, overriding the service file's provider region")
	command.Flags().String("profile", "", "AWS shared config profile, overriding the service file's provider profile")
	command.Flags().Bool("dry-run", false, "Resolve and report without rewriting any file")

	return command
}

func runPin(ctx context.Context, opts *PinOptions) error {
	if opts.ServiceFile == "" {
		return cmd.FlagErrorf("service file is required")
	}
	opts.ServiceFile = util.ExpandHomePath(opts.ServiceFile)
	opts.TemplateFile = util.ExpandHomePath(opts.TemplateFile)

	serviceData, err := os.ReadFile(opts.ServiceFile)
	if err != nil {
		return fmt.Errorf("failed to read service descriptor %s: %w", opts.ServiceFile, err)
	}

	svc, err := model.ParseService(serviceData)
	if err != nil {
		return err
	}

	var (
		tpl          *model.Template
		templateData []byte
	)
	if opts.TemplateFile != "" {
		templateData, err = os.ReadFile(opts.TemplateFile)
		if err != nil {
			return fmt.Errorf("failed to read compiled template %s: %w", opts.TemplateFile, err)
		}

		tpl, err = model.ParseTemplate(templateData)
		if err != nil {
			return err
		}
	}

	cfg := lambdax.FromProvider(svc.Provider)
	if opts.Region != "" {
		cfg.Region = opts.Region
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if opts.Profile != "" {
		cfg.Profile = opts.Profile
	}

	client, err := lambdax.NewClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build lambda client: %w", err)
	}

	// Both representations go through one pass so a layer referenced from
	// both is still queried exactly once.
	slots := resolver.SlotsFromService(svc)
	if tpl != nil {
		slots = append(slots, resolver.SlotsFromTemplate(tpl)...)
	}

	results, err := resolver.New(client, cfg.Region).Resolve(ctx, slots)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		display.Success("Nothing to pin")
		return nil
	}

	if !opts.DryRun {
		patched, err := patchServiceYAML(serviceData, results)
		if err != nil {
			return err
		}
		if err := writeBack(opts.ServiceFile, patched); err != nil {
			return err
		}

		if tpl != nil {
			patched, err := patchTemplateJSON(templateData, results)
			if err != nil {
				return err
			}
			if err := writeBack(opts.TemplateFile, patched); err != nil {
				return err
			}
		}
	}

	fmt.Print(renderSummary(results))

	total := 0
	for _, res := range results {
		total += len(res.Paths)
	}
	display.Success(fmt.Sprintf("Pinned %d reference(s) across %d layer(s)", total, len(results)))

	return nil
}

func writeBack(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func renderSummary(results []resolver.Resolution) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
		})))

	table.Header(display.LightBlue("Layer"), "Version", "Pinned ARN", "References")

	data := make([][]string, len(results))
	for i, res := range results {
		data[i] = []string{
			display.LightBlue(res.Target),
			fmt.Sprintf("%d", res.Version),
			res.Arn,
			fmt.Sprintf("%d", len(res.Paths)),
		}
	}

	if err := table.Bulk(data); err != nil {
		return ""
	}
	if err := table.Render(); err != nil {
		return ""
	}

	return buf.String()
}
