package constants

// ScanStatus is the canonical status for rows in scan_job.
type ScanStatus string

// Stable values (store these exact strings in DB).
const (
	ScanStatusRunning ScanStatus = "RUNNING" // in progress
	ScanStatusOK      ScanStatus = "OK"      // pipeline produced a result
	ScanStatusFailed  ScanStatus = "FAILED"  // terminal failure
)
