package cmd

import (
	"fmt"
	"io"

	"github.com/khanhnv2901/ssllint/internal/checker"
	"github.com/khanhnv2901/ssllint/internal/policy"
	"github.com/khanhnv2901/ssllint/internal/report"
)

// runAnalyse loads the report at path and runs the grade and TLS checks against
// the built-in policy, printing diagnostics to out.
func runAnalyse(out io.Writer, path string, allViolations bool) error {
	return analyse(out, path, policy.Default(), checker.Options{CollectAll: allViolations})
}

func analyse(out io.Writer, path string, p *policy.Policy, opts checker.Options) error {
	fmt.Fprintf(out, "%s %s\n", colorInfo("Reading"), path)

	r, err := report.Load(path)
	if err != nil {
		logger.Debugw("report rejected", "path", path, "error", err)
		return err
	}
	logger.Infow("report loaded", "host", r.Host, "endpoints", r.IPAddresses())
	for _, ep := range r.Endpoints {
		logger.Debugw("endpoint", "ip", ep.IPAddress, "grade", ep.Grade, "protocols", ep.Details.ProtocolIDs())
	}

	// Grade rejections are informational; the TLS check always runs.
	grades := checker.CheckGrades(r, p)
	printGrades(out, grades)
	logger.Debugw("grades checked", "accepted", len(grades.Accepted), "rejected", len(grades.Rejected))

	result, err := checker.CheckTLSConfig(r, p, opts)
	printFindings(out, result.Findings)
	if warnings := result.Warnings(); len(warnings) > 0 {
		logger.Warnw("protocols outside policy", "host", r.Host, "count", len(warnings))
	}
	if err != nil {
		logger.Debugw("tls configuration rejected", "host", r.Host, "endpoints_checked", result.EndpointsChecked)
		return err
	}

	fmt.Fprintf(out, "%s for %s (%d endpoint(s) checked)\n",
		colorSuccess("TLS configuration acceptable"), r.Host, result.EndpointsChecked)
	return nil
}

func printGrades(out io.Writer, g checker.GradeResult) {
	if !g.AllAccepted() {
		fmt.Fprintf(out, "%s %v\n", colorWarn("Not all hosts have acceptable grades:"), g.Rejected)
		return
	}
	fmt.Fprintf(out, "%s (%v).\n", colorSuccess("All hosts have acceptable grades"), g.Accepted)
}

func printFindings(out io.Writer, findings []checker.Finding) {
	for _, f := range findings {
		switch f.Kind {
		case checker.KindCipherSuite:
			fmt.Fprintf(out, "Got ciphersuite  %s for %s (%s)\n", f.Name, f.Host, f.IPAddress)
		case checker.KindNamedGroup:
			fmt.Fprintf(out, "Got named group  %s for %s (%s)\n", f.Name, f.Host, f.IPAddress)
		case checker.KindProtocol:
			fmt.Fprintf(out, "%s protocol %s is outside the policy for %s (%s)\n",
				colorWarn("Warning:"), f.Name, f.Host, f.IPAddress)
		}
	}
}
