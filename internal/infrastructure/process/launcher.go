package process

import (
	"assemblyStatApp/internal/domain/model"
	"assemblyStatApp/internal/domain/useCases"
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// Launcher invokes the external simulation executable, which mutates the
// shared store as a side effect. The launcher only reports process-level
// success or failure; it never verifies what the run wrote.
//
// Invocations are serialized through a single run slot: the store cannot
// tolerate two concurrent writers, so a second request while one run is
// active is rejected with model.ErrRunInProgress instead of interleaving.
type Launcher struct {
	execPath string
	dataDir  string
	timeout  time.Duration

	runSlot sync.Mutex
}

func NewLauncher(execPath, dataDir string, timeout time.Duration) *Launcher {
	return &Launcher{
		execPath: execPath,
		dataDir:  dataDir,
		timeout:  timeout,
	}
}

// Ensure Launcher implements the SimulationRunner interface
var _ useCases.SimulationRunner = (*Launcher)(nil)

// Run executes one simulation with the four input files named in req.
// Caller-supplied values are untrusted filenames: any directory components
// are stripped and the remainder is resolved under the trusted data
// directory, so "../../etc/passwd" degrades to "<dataDir>/passwd".
func (l *Launcher) Run(ctx context.Context, req model.SimulationRequest) (*model.SimulationResult, error) {
	if !l.runSlot.TryLock() {
		return nil, model.ErrRunInProgress
	}
	defer l.runSlot.Unlock()

	execPath, err := filepath.Abs(l.execPath)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(execPath); err != nil {
		return nil, model.ErrExecutableNotFound
	}

	args := []string{
		l.resolveDataFile(req.StationsFile1),
		l.resolveDataFile(req.StationsFile2),
		l.resolveDataFile(req.CustomerOrdersFile),
		l.resolveDataFile(req.AssemblyLineFile),
	}

	runCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	runID := uuid.NewString()
	log.Printf("starting simulation run %s: %s %v", runID, execPath, args)

	cmd := exec.CommandContext(runCtx, execPath, args...)
	cmd.Dir = filepath.Dir(execPath)

	// The simulator may fork helpers that inherit our stdout/stderr pipes.
	// Killing only the direct child would leave Run blocked on the pipe
	// copies until every descendant exits, so the child gets its own
	// process group and the deadline kills the whole group. WaitDelay is
	// the backstop for anything that survives the group kill.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		if err == syscall.ESRCH {
			return os.ErrProcessDone
		}
		return err
	}
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if runCtx.Err() != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		log.Printf("simulation run %s killed after %s", runID, l.timeout)
		return nil, model.ErrSimulationTimedOut
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		log.Printf("simulation run %s failed: exit %d", runID, exitCode)
		return nil, &model.SimulationError{ExitCode: exitCode, Stderr: stderr.String()}
	}

	log.Printf("simulation run %s completed", runID)
	return &model.SimulationResult{
		RunID:  runID,
		Status: "success",
		Output: stdout.String(),
	}, nil
}

// resolveDataFile strips directory components from the supplied name and
// re-roots it under the data directory as an absolute path.
func (l *Launcher) resolveDataFile(name string) string {
	resolved := filepath.Join(l.dataDir, filepath.Base(filepath.FromSlash(name)))
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return resolved
	}
	return abs
}
