// Package project defines the project model consumed by the simulator
// adapter: libraries, HDL source files with their file kind and per-file
// tool options, and the simulation configuration.
//
// A project is described by a YAML file:
//
//	version: "1"
//	libraries:
//	  - name: work
//	    directory: ./libraries/work
//	    sources:
//	      - path: src/counter.vhd
//	        standard: "2008"
//	      - path: src/tb_counter.sv
//	        defines:
//	          WIDTH: "8"
//	        include_dirs:
//	          - include
//	sim:
//	  top: work.tb_counter
//	  generics:
//	    depth: 4
//	    name: smoke
//
// The file kind is inferred from the source path's extension when omitted.
// Generic values keep the type spelled in the YAML document (string, bool,
// integer, real); the adapter decides quoting from that declared type.
package project
