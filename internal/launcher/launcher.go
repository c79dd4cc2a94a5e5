// Package launcher emits the start/stop scripts users run after installation.
// Script dialect follows the host OS family: cmd batch files on Windows,
// bash scripts everywhere else.
package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// StartScriptPath returns the path of the start script for the host OS.
func StartScriptPath(installRoot string) string {
	return filepath.Join(installRoot, "start-demo"+scriptExt(runtime.GOOS))
}

// StopScriptPath returns the path of the stop script for the host OS.
func StopScriptPath(installRoot string) string {
	return filepath.Join(installRoot, "stop-services"+scriptExt(runtime.GOOS))
}

// Write emits the start and stop scripts into installRoot, referencing
// demoDir. On POSIX hosts the scripts are marked executable.
func Write(installRoot, demoDir string) error {
	return writeFor(runtime.GOOS, installRoot, demoDir)
}

func writeFor(goos, installRoot, demoDir string) error {
	start := filepath.Join(installRoot, "start-demo"+scriptExt(goos))
	stop := filepath.Join(installRoot, "stop-services"+scriptExt(goos))

	if err := writeScript(goos, start, startBody(goos, demoDir)); err != nil {
		return fmt.Errorf("writing start script: %w", err)
	}
	if err := writeScript(goos, stop, stopBody(goos, demoDir)); err != nil {
		return fmt.Errorf("writing stop script: %w", err)
	}
	return nil
}

func writeScript(goos, path, body string) error {
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return err
	}
	if goos != "windows" {
		return os.Chmod(path, 0755)
	}
	return nil
}

func scriptExt(goos string) string {
	if goos == "windows" {
		return ".bat"
	}
	return ".sh"
}

func startBody(goos, demoDir string) string {
	if goos == "windows" {
		return "@echo off\r\n" +
			"echo Starting AnarQ^&Q Demo...\r\n" +
			fmt.Sprintf("cd /d \"%s\"\r\n", demoDir) +
			"npm run dev\r\n" +
			"pause\r\n"
	}
	return "#!/bin/bash\n" +
		"echo \"Starting AnarQ&Q Demo...\"\n" +
		fmt.Sprintf("cd \"%s\"\n", demoDir) +
		"npm run dev\n"
}

// stopBody brings down container services, but only when the demo actually
// ships a compose manifest.
func stopBody(goos, demoDir string) string {
	if goos == "windows" {
		return "@echo off\r\n" +
			"echo Stopping AnarQ^&Q services...\r\n" +
			fmt.Sprintf("cd /d \"%s\"\r\n", demoDir) +
			"if exist \"docker-compose.yml\" docker-compose down\r\n" +
			"echo Services stopped\r\n" +
			"pause\r\n"
	}
	return "#!/bin/bash\n" +
		"echo \"Stopping AnarQ&Q services...\"\n" +
		fmt.Sprintf("cd \"%s\"\n", demoDir) +
		"if [ -f \"docker-compose.yml\" ]; then\n" +
		"    docker-compose down\n" +
		"fi\n" +
		"echo \"Services stopped\"\n"
}
