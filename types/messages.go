// Package types holds the message envelope the keyline CLI emits on
// stdout and mirrors into the run folder.
package types

// MessageType denotes the type of message being emitted
type MessageType string

const (
	SummaryMessage          MessageType = "SUMMARY"
	ConnectionStatusMessage MessageType = "CONNECTION_STATUS"
	SpecMessage             MessageType = "SPEC"
)

// Message is a dto for the keyline output stream
type Message struct {
	Type             MessageType    `json:"type"`
	Summary          *Summary       `json:"summary,omitempty"`
	ConnectionStatus *StatusRow     `json:"connectionStatus,omitempty"`
	Spec             map[string]any `json:"spec,omitempty"`
}

// ConnectionStatus is the result of a check run
type ConnectionStatus string

const (
	ConnectionSucceed ConnectionStatus = "SUCCEEDED"
	ConnectionFailed  ConnectionStatus = "FAILED"
)

// StatusRow is a dto for check command output
type StatusRow struct {
	Status  ConnectionStatus `json:"status,omitempty"`
	Message string           `json:"message,omitempty"`
}

// Summary describes one finished diff or merge run.
type Summary struct {
	Run       string   `json:"run"`
	Command   string   `json:"command"`
	Inputs    []string `json:"inputs"`
	Records   int64    `json:"records"`
	OnlyLeft  int64    `json:"only_left,omitempty"`
	OnlyRight int64    `json:"only_right,omitempty"`
	Matched   int64    `json:"matched,omitempty"`
	Elapsed   string   `json:"elapsed"`
}
