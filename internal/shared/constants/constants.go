package constants

import "io/fs"

const (
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// MaxReportBytes caps how many bytes of a scan report we are willing to read.
	// SSL Labs reports for a single host with full details stay well below this.
	MaxReportBytes int64 = 32 << 20
	// ExpectedReportRecords is the number of host records accepted per input file.
	ExpectedReportRecords = 1
)
