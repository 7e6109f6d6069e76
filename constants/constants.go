package constants

const (
	ConfigFolder = "CONFIG_FOLDER"
	RunID        = "RUN_ID"

	ReportFileExt  = "txt"
	SummaryFileExt = "json"

	// DefaultReportLimit caps an accumulated run report, in bytes.
	DefaultReportLimit = 64 * 1024
)
