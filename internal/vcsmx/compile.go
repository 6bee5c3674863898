package vcsmx

import (
	"context"
	"fmt"
	"path/filepath"

	"vcsmx-driver/internal/argfile"
	"vcsmx-driver/internal/common"
	"vcsmx-driver/internal/diagnostic"
	"vcsmx-driver/internal/project"
	"vcsmx-driver/internal/runner"
)

// CodeCompileFailed is the diagnostic code for a failed tool invocation.
const CodeCompileFailed = "compile-failed"

// Compile compiles every source file of every library, in project order.
// A failing file stops the rest of its library's build; remaining libraries
// are still attempted so one run reports as much as possible. The caller
// decides from the returned diagnostics whether to continue.
func (i *Interface) Compile(ctx context.Context, p *project.Project) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, lib := range p.Libraries {
		for _, src := range lib.Sources {
			if err := i.CompileSource(ctx, src); err != nil {
				diags.AddError(CodeCompileFailed, err.Error(), lib.Name, src.Path)
				break
			}
		}
	}

	return diags
}

// CompileSource compiles a single source file with the tool selected by its
// kind. An unknown kind is an unrecoverable configuration error; the driver
// must not guess a compiler.
func (i *Interface) CompileSource(ctx context.Context, src project.SourceFile) error {
	switch src.Kind {
	case project.KindVHDL:
		return i.compileVHDL(ctx, src)
	case project.KindVerilog:
		return i.compileVerilog(ctx, src)
	default:
		return fmt.Errorf("%w for %s", ErrUnknownFileKind, src.Path)
	}
}

// vhdlStdFlag converts a VHDL standard to the vhdlan command line flag.
// VHDL-93 is the tool default and needs no flag; VCS-MX has no dedicated
// switch for VHDL-2002, which is compiled in 2008 mode.
func vhdlStdFlag(std project.VHDLStandard) (string, error) {
	switch std {
	case project.VHDL87:
		return "-vhdl87", nil
	case project.VHDL93:
		return "", nil
	case project.VHDL2002, project.VHDL2008:
		return "-vhdl08", nil
	default:
		return "", fmt.Errorf("no vhdlan flag for VHDL standard %q", std)
	}
}

// compileVHDL builds the vhdlan args file for src and runs the tool.
func (i *Interface) compileVHDL(ctx context.Context, src project.SourceFile) error {
	stdFlag, err := vhdlStdFlag(src.Standard)
	if err != nil {
		return err
	}

	var args argfile.List
	if stdFlag != "" {
		args.Add(stdFlag)
	}

	args.AddValue("-work", src.Library)
	args.AddValue("-l", filepath.Join(i.cfg.OutputPath,
		fmt.Sprintf("vcsmx_compile_vhdl_file_%s.log", src.Library)))

	if i.verbose() {
		args.Add("-verbose")
	} else {
		args.Add("-q")
		args.Add("-nc")
	}

	args.AddAll(src.VHDLFlags)
	args.Add(src.Path)

	argsPath := filepath.Join(i.cfg.OutputPath,
		fmt.Sprintf("vcsmx_compile_vhdl_file_%s.args", src.Library))

	return i.runWithArgsFile(ctx, vhdlanExe, &args, argsPath)
}

// compileVerilog builds the vlogan args file for src and runs the tool.
func (i *Interface) compileVerilog(ctx context.Context, src project.SourceFile) error {
	var args argfile.List
	args.Add("-compile")
	args.Add("-debug_all")
	args.Add("-sverilog")
	args.Add("+v2k")
	args.AddValue("-work", src.Library)
	args.AddAll(src.VerilogFlags)
	args.AddValue("-l", filepath.Join(i.cfg.OutputPath,
		fmt.Sprintf("vcsmx_compile_verilog_file_%s.log", src.Library)))

	if i.verbose() {
		args.Add("-V")
		args.Add("-notice")
		args.Add("+libverbose")
	} else {
		args.Add("-q")
		args.Add("-nc")
	}

	for _, dir := range src.IncludeDirs {
		args.Addf("+incdir+%s", dir)
	}

	for _, key := range common.SortedKeys(src.Defines) {
		args.Add(argfile.EscapeDefine(key, src.Defines[key]))
	}

	args.Add(src.Path)

	argsPath := filepath.Join(i.cfg.OutputPath,
		fmt.Sprintf("vcsmx_compile_verilog_file_%s.args", src.Library))

	return i.runWithArgsFile(ctx, vloganExe, &args, argsPath)
}

// runWithArgsFile persists the args file and invokes the tool with -f.
func (i *Interface) runWithArgsFile(ctx context.Context, tool string, args *argfile.List, argsPath string) error {
	if err := args.WriteFile(argsPath); err != nil {
		return err
	}

	cmd := runner.Command{
		Exe:  i.toolPath(tool),
		Args: []string{"-f", argsPath},
	}

	if i.cfg.Logger != nil {
		i.cfg.Logger.Debug("running %s", cmd.String())
	}

	return i.cfg.Runner.Run(ctx, cmd)
}
