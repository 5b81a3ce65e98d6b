package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/etnz/finflow/config"
)

// EnvVerbose is set for extensions when -v is used.
const EnvVerbose = "FINFLOW_VERBOSE"

// RunExtension attempts to find and execute an external flow-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "flow-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger := newLogger()
		logger.Debug().Err(err).Str("command", externalCmdName).Msg("external command not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables, empty ones keep the
	// inherited value.
	cmd.Env = os.Environ()
	for _, v := range []struct{ key, value string }{
		{config.EnvData, *dataFile},
		{config.EnvLang, *lang},
		{config.EnvCurrency, *defaultCurrency},
	} {
		if v.value != "" {
			cmd.Env = append(cmd.Env, v.key+"="+v.value)
		}
	}
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
