package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"github.com/xiaoyu2006/glens/config"
	"github.com/xiaoyu2006/glens/scene"
	"github.com/xiaoyu2006/glens/sweep"
)

// Print the frames of a sweep without invoking the renderer.
func PlanSweep(ctx *cli.Context) error {
	def, err := loadDefinition(ctx)
	if err != nil {
		return err
	}
	drv, err := def.Driver()
	if err != nil {
		return err
	}
	ser, err := def.Serializer()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Label", "Value", "Output"})
	for _, frame := range drv.Frames() {
		table.Append([]string{
			fmt.Sprintf("%d", frame.Index),
			frame.Label,
			scene.FormatFloat(frame.Value),
			drv.Path(frame.Index),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", drv.Len())})
	table.Render()
	fmt.Fprint(ctx.App.Writer, buf.String())

	_, cfg, err := drv.Frame(0)
	if err != nil {
		return err
	}
	args, err := ser.Serialize(&cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "\nfirst frame (%s dialect):\n  %s %s\n", ser.Dialect(), def.Renderer.Binary, strings.Join(args, " "))

	if def.Encoder.Enabled {
		fmt.Fprintf(ctx.App.Writer, "encoder input: %s\n", describeInput(drv.Input()))
	}
	return nil
}

func describeInput(in sweep.EncoderInput) string {
	if in.Glob {
		return fmt.Sprintf("%s (glob, %d frames)", in.Pattern, in.Frames)
	}
	return fmt.Sprintf("%s (from %d, %d frames)", in.Pattern, in.StartNumber, in.Frames)
}

// List the built-in sweep definitions.
func ListPresets(ctx *cli.Context) error {
	setupLogging(ctx, nil)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Preset", "Frames", "Dialect", "Description"})
	for _, name := range config.PresetNames() {
		def, err := config.Preset(name)
		if err != nil {
			return err
		}
		spec, err := def.Spec()
		if err != nil {
			return err
		}
		table.Append([]string{name, fmt.Sprintf("%d", spec.Len()), def.Renderer.Dialect, config.PresetDescription(name)})
	}
	table.Render()
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}
