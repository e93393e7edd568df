package cmd

import (
	"fmt"
	"io"

	"github.com/khanhnv2901/ssllint/internal/policy"
)

// printPolicy lists the grades, protocol versions, cipher suites and
// key-exchange groups reports are validated against.
func printPolicy(out io.Writer, p *policy.Policy) {
	fmt.Fprintf(out, "%s %v\n", colorInfo("Accepted grades:"), p.Grades())

	fmt.Fprintln(out, colorInfo("Accepted protocol versions:"))
	for _, id := range p.TLSVersions() {
		fmt.Fprintf(out, "  %-6d %s\n", id, policy.TLSVersionName(id))
	}

	fmt.Fprintln(out, colorInfo("Accepted cipher suites:"))
	for _, id := range p.CipherSuites() {
		fmt.Fprintf(out, "  0x%04X %s\n", id, policy.CipherSuiteName(id))
	}

	fmt.Fprintln(out, colorInfo("Accepted key-exchange groups:"))
	for _, id := range p.KexGroups() {
		marker := ""
		if p.RequiresKexGroup(id) {
			marker = " " + colorWarn("(required)")
		}
		fmt.Fprintf(out, "  %-6d %s%s\n", id, policy.KexGroupName(id), marker)
	}
}
