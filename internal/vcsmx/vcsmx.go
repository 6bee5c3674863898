package vcsmx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vcsmx-driver/internal/logging"
	"vcsmx-driver/internal/project"
	"vcsmx-driver/internal/runner"
	"vcsmx-driver/internal/setupfile"
)

// Vendor tool executable names.
const (
	vhdlanExe = "vhdlan"
	vloganExe = "vlogan"
	vcsExe    = "vcs"
	simvExe   = "simv"
)

// SetupFileName is the setup file's conventional basename.
const SetupFileName = "synopsys_sim.setup"

// SetupEnvVar names the environment variable the toolchain itself consults
// for the setup file location.
const SetupEnvVar = "SYNOPSYS_SIM_SETUP"

const dirPerm = 0o755

// Sentinel errors.
var (
	// ErrUnknownFileKind indicates a source file whose kind the driver
	// cannot compile. This is a configuration error; the build for that
	// file must stop rather than guess a tool.
	ErrUnknownFileKind = errors.New("unknown file kind")
)

// Config holds the adapter configuration. All session state is threaded
// through here explicitly; there is no process-global setup path.
type Config struct {
	// Prefix is the directory containing the vendor executables.
	// Required (use runner.FindPrefix to discover it).
	Prefix string

	// OutputPath is the directory for logs, args files and other scratch
	// artifacts. Required.
	OutputPath string

	// SetupPath overrides the setup file location. When empty, the
	// SYNOPSYS_SIM_SETUP environment variable is honored, and failing
	// that the file lives at OutputPath/synopsys_sim.setup.
	SetupPath string

	// GUI requests the simulator's GUI flags in generated files.
	GUI bool

	// Runner runs the vendor tools. Defaults to runner.ExecRunner.
	Runner runner.Runner

	// Logger receives progress and debug output. May be nil.
	Logger *logging.Logger

	// Duplicates is the duplicate-declaration policy applied when parsing
	// the setup file. Defaults to setupfile.LastWins.
	Duplicates setupfile.DuplicatePolicy
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	var missing []string

	if c.Prefix == "" {
		missing = append(missing, "Prefix")
	}

	if c.OutputPath == "" {
		missing = append(missing, "OutputPath")
	}

	if len(missing) > 0 {
		return fmt.Errorf("vcsmx config missing required fields: %v", missing)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.SetupPath == "" {
		if env := os.Getenv(SetupEnvVar); env != "" {
			c.SetupPath = env
		} else {
			c.SetupPath = filepath.Join(c.OutputPath, SetupFileName)
		}
	}

	if c.Runner == nil {
		c.Runner = runner.ExecRunner{}
	}
}

// Interface is the VCS-MX simulator adapter.
type Interface struct {
	cfg Config
}

// New creates a new adapter from the given configuration.
func New(cfg Config) (*Interface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	abs, err := filepath.Abs(cfg.SetupPath)
	if err != nil {
		return nil, fmt.Errorf("resolving setup file path %s: %w", cfg.SetupPath, err)
	}

	cfg.SetupPath = abs

	if cfg.Logger != nil {
		cfg.Logger.Debug("setup file is %s", cfg.SetupPath)
	}

	return &Interface{cfg: cfg}, nil
}

// SetupPath returns the resolved setup file location.
func (i *Interface) SetupPath() string {
	return i.cfg.SetupPath
}

func (i *Interface) parseConfig() setupfile.ParseConfig {
	return setupfile.ParseConfig{
		Duplicates: i.cfg.Duplicates,
		Logger:     i.cfg.Logger,
	}
}

func (i *Interface) toolPath(name string) string {
	return filepath.Join(i.cfg.Prefix, name)
}

// verbose reports whether generated tool invocations should run with the
// tools' verbose flags instead of the quiet ones.
func (i *Interface) verbose() bool {
	return i.cfg.Logger.LevelEnabled(logging.LevelDebug)
}

// EnsureSetupFile creates the setup file from the default template if it
// does not exist yet. An existing file, hand-edited or not, is left alone.
func (i *Interface) EnsureSetupFile() error {
	if _, err := os.Stat(i.cfg.SetupPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking setup file %s: %w", i.cfg.SetupPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(i.cfg.SetupPath), dirPerm); err != nil {
		return fmt.Errorf("creating setup file directory: %w", err)
	}

	s := setupfile.Parse(setupfile.DefaultContents(i.cfg.OutputPath), i.parseConfig())
	if err := s.WriteFile(i.cfg.SetupPath); err != nil {
		return err
	}

	if i.cfg.Logger != nil {
		i.cfg.Logger.Info("created setup file %s", i.cfg.SetupPath)
	}

	return nil
}

// SetupLibraryMapping creates every project library's directory and records
// its mapping in the setup file.
func (i *Interface) SetupLibraryMapping(p *project.Project) error {
	if err := i.EnsureSetupFile(); err != nil {
		return err
	}

	mapped, err := i.mappedLibraries()
	if err != nil {
		return err
	}

	for _, lib := range p.Libraries {
		if err := i.createLibrary(lib.Name, lib.Directory, mapped); err != nil {
			return err
		}
	}

	return nil
}

// createLibrary creates the library directory (plus the 64/ subdirectory
// the toolchain expects) and maps the name in the setup file, unless the
// mapping is already current.
func (i *Interface) createLibrary(name, directory string, mapped map[string]string) error {
	abs, err := filepath.Abs(directory)
	if err != nil {
		return fmt.Errorf("resolving library directory %s: %w", directory, err)
	}

	if err := os.MkdirAll(filepath.Join(abs, "64"), dirPerm); err != nil {
		return fmt.Errorf("creating library directory for %s: %w", name, err)
	}

	if current, ok := mapped[name]; ok && current == abs {
		return nil
	}

	s, err := setupfile.ParseFile(i.cfg.SetupPath, i.parseConfig())
	if err != nil {
		return err
	}

	s.Set(name, abs)

	if err := s.WriteFile(i.cfg.SetupPath); err != nil {
		return err
	}

	mapped[name] = abs

	if i.cfg.Logger != nil {
		i.cfg.Logger.Debug("mapped library %s to %s", name, abs)
	}

	return nil
}

// mappedLibraries returns the library mappings currently recorded in the
// setup file.
func (i *Interface) mappedLibraries() (map[string]string, error) {
	s, err := setupfile.ParseFile(i.cfg.SetupPath, i.parseConfig())
	if err != nil {
		return nil, err
	}

	return s.Mappings(), nil
}
