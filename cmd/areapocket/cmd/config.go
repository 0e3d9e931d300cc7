package cmd

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// JobConfig is the YAML job description `areapocket config` writes and
// `areapocket run` reads: one pocketing pass over one input file.
type JobConfig struct {
	Units       float64 `yaml:"units"`
	Accuracy    float64 `yaml:"accuracy"`
	ToolRadius  float64 `yaml:"tool_radius"`
	ExtraOffset float64 `yaml:"extra_offset"`
	Stepover    float64 `yaml:"stepover"`
	Mode        string  `yaml:"mode"`
	ZigAngle    float64 `yaml:"zig_angle"`
	FromCenter  bool    `yaml:"from_center"`

	OutputDXF      string `yaml:"output_dxf"`
	OutputPreview  string `yaml:"output_preview,omitempty"`
	OutputReport   string `yaml:"output_report,omitempty"`
	OutputManifest string `yaml:"output_manifest,omitempty"`
}

// DefaultJobConfig returns a JobConfig prefilled with sane defaults, for
// `areapocket config` to write out as a starting point.
func DefaultJobConfig() JobConfig {
	return JobConfig{
		Units:          1,
		Accuracy:       0.001,
		ToolRadius:     3.0,
		ExtraOffset:    0,
		Stepover:       2.0,
		Mode:           "ZigZag",
		ZigAngle:       0,
		FromCenter:     false,
		OutputDXF:      "toolpath.dxf",
		OutputPreview:  "preview.png",
		OutputReport:   "report.pdf",
		OutputManifest: "manifest.xlsx",
	}
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}

func marshalYAMLFile(path string, in interface{}) error {
	buf, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal job config: %w", err)
	}
	return os.WriteFile(path, buf, 0644)
}
