package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/piwi3910/areapocket/internal/area"
	"github.com/piwi3910/areapocket/internal/boolean"
	"github.com/piwi3910/areapocket/internal/cadio"
	"github.com/piwi3910/areapocket/internal/pocket"
	"github.com/piwi3910/areapocket/internal/preview"
	"github.com/piwi3910/areapocket/internal/report"
)

var runConfigPath string

var runCmd = &cobra.Command{
	Use:   "run INPUT.dxf",
	Short: "run a pocketing job against a DXF boundary file",
	Long: `Run a pocketing job: reads closed boundary curves from INPUT.dxf,
splits and offsets them by a tool radius, generates a toolpath per the
job settings (see 'areapocket config'), and writes the toolpath back out
as DXF, plus an optional PNG preview, PDF report and XLSX manifest.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		check(runJob(args[0]))
	},
}

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runConfigPath, "config", "areapocket.yml", "job settings file")
}

func runJob(inputPath string) error {
	cfg := DefaultJobConfig()
	if err := fileExists(runConfigPath); err == nil {
		if err := unmarshalYAMLFile(runConfigPath, &cfg); err != nil {
			return fmt.Errorf("read job settings: %w", err)
		}
	}

	mode, err := pocket.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	boundary, err := cadio.ReadCurves(inputPath, cfg.Accuracy)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	a := &area.Area{Engine: boolean.ClipperEngine{}, Curves: boundary}
	ctx := pocket.NewContext(cfg.Units, cfg.Accuracy)
	params := pocket.Params{
		ToolRadius:  cfg.ToolRadius,
		ExtraOffset: cfg.ExtraOffset,
		Stepover:    cfg.Stepover,
		Mode:        mode,
		ZigAngle:    cfg.ZigAngle,
		FromCenter:  cfg.FromCenter,
	}

	toolpath := pocket.SplitAndMakePocket(ctx, a, params)
	fmt.Printf("emitted %d contour(s), %.1f%% done\n", len(toolpath), ctx.ProcessingDone)

	if cfg.OutputDXF != "" {
		if err := cadio.WriteCurves(cfg.OutputDXF, toolpath); err != nil {
			return err
		}
	}

	if cfg.OutputPreview != "" {
		if err := preview.RenderFile(cfg.OutputPreview, boundary, toolpath, 1024, 1024); err != nil {
			return err
		}
	}

	jobID := strings.Split(uuid.New().String(), "-")[0]
	if cfg.OutputReport != "" {
		summary := report.NewSummary(jobID, inputPath, params, toolpath)
		renderedPreview := preview.Render(boundary, toolpath, 1024, 1024)
		if err := report.WritePDF(cfg.OutputReport, summary, renderedPreview); err != nil {
			return err
		}
	}

	if cfg.OutputManifest != "" {
		if err := report.WriteManifest(cfg.OutputManifest, toolpath, boundary, a.Engine, cfg.Units, cfg.Accuracy); err != nil {
			return err
		}
	}

	return nil
}
