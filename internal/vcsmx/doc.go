// Package vcsmx drives the Synopsys VCS-MX simulator toolchain. It owns the
// synopsys_sim.setup library mapping, creates library directories, builds
// the argument files for vhdlan/vlogan/vcs, and runs compile, elaboration
// and simulation through a pluggable command runner.
//
// The package performs no HDL parsing or simulation itself; all of that is
// the vendor tools' job. Failures are reported as errors derived from the
// tools' exit status, never retried.
package vcsmx
