package util

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

type emptyStruct struct{}

// readyChan is a channel used to signal completion of command execution.
type readyChan chan emptyStruct

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond

	ready = emptyStruct{}
)

// sendReady sends ready to channel.
func sendReady(readyChannel readyChan) {
	readyChannel <- ready
}

// startAndWaitCommand executes a command and sends `ready` flag to the
// channel before return.
func startAndWaitCommand(cmd *exec.Cmd, readyChannel readyChan,
	workGroup *sync.WaitGroup, err *error,
) {
	defer workGroup.Done()
	defer sendReady(readyChannel)

	if *err = cmd.Start(); *err != nil {
		return
	}

	if *err = cmd.Wait(); *err != nil {
		return
	}
}

// StartCommandSpinner starts running spinner until `ready` flag is received
// from the channel.
func StartCommandSpinner(readyChannel readyChan, wg *sync.WaitGroup, prefix string) {
	defer wg.Done()

	spinner := spinner.New(spinnerPicture, spinnerUpdateTime)
	if prefix != "" {
		spinner.Prefix = fmt.Sprintf("%s ", strings.TrimSpace(prefix))
	}

	spinner.Start()

	// Wait for the command to complete.
	<-readyChannel

	spinner.Stop()
}

// RunCommand runs the specified command in workingDir and returns an error.
// If showOutput is set to true, command output is streamed to the user.
// Else a spinner is shown while the command is running and the captured
// output is included in the returned error.
func RunCommand(cmd *exec.Cmd, workingDir string, showOutput bool) error {
	var err error
	var workGroup sync.WaitGroup
	var outputBuf bytes.Buffer

	if showOutput {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &outputBuf
		cmd.Stderr = &outputBuf
	}
	cmd.Dir = workingDir

	readyChannel := make(readyChan, 1)
	if !showOutput {
		workGroup.Add(1)
		go StartCommandSpinner(readyChannel, &workGroup, "")
	}

	workGroup.Add(1)
	startAndWaitCommand(cmd, readyChannel, &workGroup, &err)
	workGroup.Wait()

	if err != nil && outputBuf.Len() > 0 {
		return fmt.Errorf("%s: %s", err, strings.TrimSpace(outputBuf.String()))
	}

	return err
}
