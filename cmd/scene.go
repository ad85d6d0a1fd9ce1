package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/achilleasa/usdindex/compose"
	"github.com/achilleasa/usdindex/config"
	"github.com/achilleasa/usdindex/index"
)

// BuildIndex parses a root stage and every stage it reaches, then writes
// the resulting binary scene-index.
func BuildIndex(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 2 {
		return errors.New("usage: build-index <stage.usda> <output.index>")
	}
	stageFile := ctx.Args().Get(0)
	outputFile := ctx.Args().Get(1)

	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger.Noticef("composing index for %s", stageFile)
	stats, err := compose.BuildIndex(stageFile, outputFile, cfg)
	if err != nil {
		return err
	}

	displayBuildStats(stats)
	return nil
}

func displayBuildStats(stats *index.Stats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Shards", "Mesh records", "Source files"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.ShardCount),
		fmt.Sprintf("%d", stats.RecordCount),
		fmt.Sprintf("%d", stats.SourceCount),
	})
	table.Render()
	logger.Noticef("index statistics\n%s", buf.String())
}

// InspectIndex opens a binary scene-index and prints a summary of its
// contents grouped by source file.
func InspectIndex(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("usage: inspect-index <output.index>")
	}
	indexFile := ctx.Args().First()

	loaded, err := index.LoadFromIndex(indexFile, 0)
	if err != nil {
		return err
	}

	displayIndexSummary(loaded)
	return nil
}

func displayIndexSummary(loaded *index.LoadedIndex) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Source file", "Mesh records"})

	grouped := loaded.GroupBySourceFile()
	for _, path := range loaded.SourcePaths {
		table.Append([]string{path, fmt.Sprintf("%d", len(grouped[path]))})
	}
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%d", len(loaded.Records))})
	table.Render()

	var instBuf bytes.Buffer
	instTable := tablewriter.NewWriter(&instBuf)
	instTable.SetAutoFormatHeaders(false)
	instTable.SetHeader([]string{"Mesh", "Instances"})
	for key, instances := range loaded.GeometryInstances() {
		instTable.Append([]string{key, fmt.Sprintf("%d", len(instances))})
	}
	instTable.Render()

	logger.Noticef("index version %d\n%s\n%s", loaded.Version, buf.String(), instBuf.String())
}
