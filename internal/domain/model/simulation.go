package model

// SimulationRequest names the four input files for one simulation run.
// The launcher treats every value as an untrusted filename: directory
// components are stripped before the file is resolved under the trusted
// data directory.
type SimulationRequest struct {
	StationsFile1      string
	StationsFile2      string
	CustomerOrdersFile string
	AssemblyLineFile   string
}

// SimulationResult reports the outcome of one successful simulation run.
// RunID identifies the invocation in logs; the store itself carries no
// run fingerprint.
type SimulationResult struct {
	RunID  string
	Status string
	Output string
}
