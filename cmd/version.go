package cmd

import (
	"fmt"
	"io"
	"runtime"
)

// Build metadata, overridden with -ldflags "-X github.com/khanhnv2901/ssllint/cmd.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func writeVersion(out io.Writer, verbose bool) {
	if !verbose {
		fmt.Fprintf(out, "ssllint version %s\n", Version)
		return
	}
	fmt.Fprintf(out, "ssllint %s\n", Version)
	fmt.Fprintf(out, "  commit:  %s\n", GitCommit)
	fmt.Fprintf(out, "  built:   %s\n", BuildDate)
	fmt.Fprintf(out, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
