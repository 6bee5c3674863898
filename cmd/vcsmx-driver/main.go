// Package main provides the CLI entrypoint for vcsmx-driver.
//
// vcsmx-driver is a thin adapter around the Synopsys VCS-MX toolchain:
//   - Loads a YAML project description (libraries, sources, sim config)
//   - Maintains the synopsys_sim.setup library mapping file
//   - Compiles every source with vhdlan/vlogan via generated args files
//   - Elaborates with vcs and runs the resulting simv binary
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"vcsmx-driver/internal/logging"
	"vcsmx-driver/internal/project"
	"vcsmx-driver/internal/runner"
	"vcsmx-driver/internal/vcsmx"
)

func main() {
	projectPath := flag.String("project", "", "Project description file (required)")
	outputPath := flag.String("output", "vcsmx_out", "Output directory for logs and scratch files")
	setupPath := flag.String("setup", "", "synopsys_sim.setup file to use; defaults to the driver-maintained one")
	logLevel := flag.String("log-level", "info", "Log level: error, warn, info or debug")
	compileOnly := flag.Bool("compile-only", false, "Stop after compilation")
	elaborateOnly := flag.Bool("elaborate-only", false, "Elaborate the design but do not run the simulation")
	gui := flag.Bool("gui", false, "Generate simulator files for a GUI session")
	flag.Parse()

	logger := logging.Default()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	logger.SetLevel(level)

	if *projectPath == "" {
		logger.Error("a project file is required (-project)")
		os.Exit(1)
	}

	if err := run(logger, *projectPath, *outputPath, *setupPath, *gui, *compileOnly, *elaborateOnly); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run(logger *logging.Logger, projectPath, outputPath, setupPath string, gui, compileOnly, elaborateOnly bool) error {
	p, err := project.LoadFile(projectPath)
	if err != nil {
		return err
	}

	diags := project.Validate(p)
	for _, w := range diags.Warnings {
		logger.Warn("%s", w.String())
	}

	if diags.HasErrors() {
		for _, e := range diags.Errors {
			logger.Error("%s", e.String())
		}

		return fmt.Errorf("project %s is invalid", projectPath)
	}

	prefix, err := runner.FindPrefix("vcs")
	if err != nil {
		return err
	}

	logger.Debug("toolchain prefix is %s", prefix)

	sim, err := vcsmx.New(vcsmx.Config{
		Prefix:     prefix,
		OutputPath: outputPath,
		SetupPath:  setupPath,
		GUI:        gui,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outputPath, err)
	}

	ctx := context.Background()

	if err := sim.SetupLibraryMapping(p); err != nil {
		return err
	}

	logger.Info("compiling %d libraries", len(p.Libraries))

	if compileDiags := sim.Compile(ctx, p); compileDiags.HasErrors() {
		for _, e := range compileDiags.Errors {
			logger.Error("%s", e.String())
		}

		return fmt.Errorf("compilation failed")
	}

	if compileOnly {
		return nil
	}

	if p.Sim == nil {
		logger.Info("no sim block in project, done after compile")
		return nil
	}

	logger.Info("simulating %s", p.Sim.Top)

	return sim.Simulate(ctx, outputPath, *p.Sim, elaborateOnly)
}
