package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/AnarQorp/anarqq-installer/internal/config"
	"github.com/AnarQorp/anarqq-installer/internal/launcher"
	"github.com/AnarQorp/anarqq-installer/internal/state"
)

// consoleInstall is the scripted flow: two prompts, then a plain rendering
// of the progress and log streams.
func consoleInstall(cfg *config.Config, st *state.State, version string) error {
	fmt.Println("AnarQ&Q Ecosystem Demo Installer (console mode)")
	fmt.Println(strings.Repeat("=", 50))

	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("Installation directory [%s]: ", cfg.InstallRoot)
	if dir := readLine(reader); dir != "" {
		cfg.InstallRoot = dir
	}

	fmt.Print("Install complete ecosystem (core repository)? (y/N): ")
	cfg.InstallCore = strings.EqualFold(readLine(reader), "y")

	fmt.Println()
	fmt.Println("Starting installation...")

	outcome := runInstallation(context.Background(), cfg,
		func(percent int, message string) {
			fmt.Printf("[%3d%%] %s\n", percent, message)
		},
		func(line string) {
			fmt.Println(line)
		},
	)

	fmt.Println()
	if !outcome.Success {
		fmt.Println("Installation failed. Check the log for details.")
		fmt.Printf("Log file: %s\n", outcome.LogPath)
		return errInstallFailed
	}

	fmt.Println("Installation completed successfully!")
	fmt.Printf("Installation directory: %s\n", outcome.InstallRoot)
	fmt.Printf("Log file: %s\n", outcome.LogPath)
	fmt.Println()
	fmt.Println("To start the demo:")
	fmt.Printf("  %s\n", launcher.StartScriptPath(outcome.InstallRoot))

	saveInstallState(st, cfg, version)
	return nil
}

func readLine(r *bufio.Reader) string {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
