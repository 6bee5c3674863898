package vcsmx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vcsmx-driver/internal/argfile"
	"vcsmx-driver/internal/common"
	"vcsmx-driver/internal/project"
	"vcsmx-driver/internal/runner"
)

// Simulate elaborates the design top with vcs and, unless elaborateOnly is
// set, runs the produced simv binary. outputPath receives the elaboration
// scratch files, logs and the simulation executable.
func (i *Interface) Simulate(ctx context.Context, outputPath string, sim project.SimConfig, elaborateOnly bool) error {
	library, entity, err := sim.SplitTop()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputPath, dirPerm); err != nil {
		return fmt.Errorf("creating simulation output directory %s: %w", outputPath, err)
	}

	if err := i.copySetupFile(outputPath); err != nil {
		return err
	}

	launchGUI := i.cfg.GUI && !elaborateOnly

	if err := i.elaborate(ctx, outputPath, library, entity, sim, launchGUI); err != nil {
		return err
	}

	if elaborateOnly {
		return nil
	}

	return i.runSimv(ctx, outputPath, launchGUI)
}

// copySetupFile places the current setup file next to the simulation
// artifacts, where the vendor tools look for it.
func (i *Interface) copySetupFile(outputPath string) error {
	data, err := os.ReadFile(i.cfg.SetupPath)
	if err != nil {
		return fmt.Errorf("reading setup file %s: %w", i.cfg.SetupPath, err)
	}

	dst := filepath.Join(outputPath, SetupFileName)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("copying setup file to %s: %w", dst, err)
	}

	return nil
}

// elaborate writes the generics and args files and runs vcs.
func (i *Interface) elaborate(ctx context.Context, outputPath, library, entity string, sim project.SimConfig, launchGUI bool) error {
	genericsPath := filepath.Join(outputPath, "vcsmx.generics")
	if err := writeGenericsFile(genericsPath, entity, sim.Generics); err != nil {
		return err
	}

	var args argfile.List
	args.Addf("%s.%s", library, entity)

	if !launchGUI {
		args.Add("-ucli")
	}

	args.Add("-licqueue")
	args.Add("-debug_all")

	if i.verbose() {
		args.Add("-V")
		args.Add("-notice")
	} else {
		args.Add("-q")
		args.Add("-nc")
	}

	args.AddValue("-l", filepath.Join(outputPath, "vcsmx.log"))
	args.Add("-lca")
	args.AddValue("-gfile", genericsPath)
	args.AddAll(sim.Flags)

	argsPath := filepath.Join(outputPath, "vcsmx.args")
	if err := args.WriteFile(argsPath); err != nil {
		return err
	}

	cmd := runner.Command{
		Exe:  i.toolPath(vcsExe),
		Args: []string{"-file", argsPath},
		Dir:  outputPath,
	}

	if i.cfg.Logger != nil {
		i.cfg.Logger.Debug("running %s", cmd.String())
	}

	return i.cfg.Runner.Run(ctx, cmd)
}

// runSimv writes the do file and runs the elaborated simulation binary.
func (i *Interface) runSimv(ctx context.Context, outputPath string, launchGUI bool) error {
	doPath := filepath.Join(outputPath, "simv.do")

	var args argfile.List
	args.AddValue("-l", filepath.Join(outputPath, "simv.log"))

	var do argfile.List
	if launchGUI {
		args.Add("-gui")
	} else {
		args.Add("-ucli")
		args.AddValue("-do", doPath)
		do.Add("run")
		do.Add("quit")
	}

	if err := do.WriteFile(doPath); err != nil {
		return err
	}

	// The args file is a debugging artifact; simv itself receives the
	// arguments directly.
	if err := args.WriteFile(filepath.Join(outputPath, "simv.args")); err != nil {
		return err
	}

	cmd := runner.Command{
		Exe:  filepath.Join(outputPath, simvExe),
		Args: simvArgv(args),
		Dir:  outputPath,
	}

	if i.cfg.Logger != nil {
		i.cfg.Logger.Debug("running %s", cmd.String())
	}

	return i.cfg.Runner.Run(ctx, cmd)
}

// simvArgv flattens the args-file entries into an argv the process can
// receive directly: flag/value entries become two arguments.
func simvArgv(args argfile.List) []string {
	var argv []string
	for _, line := range args.Lines() {
		argv = append(argv, splitFlagValue(line)...)
	}

	return argv
}

func splitFlagValue(line string) []string {
	if flag, value, ok := strings.Cut(line, " "); ok {
		return []string{flag, value}
	}

	return []string{line}
}

// writeGenericsFile emits one assign directive per generic, in sorted name
// order. Quoting follows the declared kind of each value: strings and
// booleans are quoted, numeric values are not.
func writeGenericsFile(path, entity string, generics map[string]project.GenericValue) error {
	var lines argfile.List
	for _, name := range common.SortedKeys(generics) {
		value := generics[name]
		if value.NeedsQuoting() {
			lines.Addf("assign %q /%s/%s", value.Literal(), entity, name)
		} else {
			lines.Addf("assign %s /%s/%s", value.Literal(), entity, name)
		}
	}

	return lines.WriteFile(path)
}
