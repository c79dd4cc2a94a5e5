package wizard

import "github.com/AnarQorp/anarqq-installer/internal/installer"

// FormConfirmMsg is sent when the user confirms the setup form.
type FormConfirmMsg struct {
	InstallRoot string
	InstallCore bool
}

// ProgressMsg carries one orchestrator progress checkpoint.
type ProgressMsg struct {
	Percent int
	Message string
}

// LogMsg carries one formatted log line.
type LogMsg struct {
	Line string
}

// DoneMsg is sent when the run finishes, success or failure.
type DoneMsg struct {
	Outcome installer.Outcome
}
