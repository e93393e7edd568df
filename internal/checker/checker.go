package checker

// FindingKind identifies what a finding refers to.
type FindingKind string

const (
	KindCipherSuite FindingKind = "ciphersuite"
	KindNamedGroup  FindingKind = "named group"
	KindProtocol    FindingKind = "protocol"
)

// Severity grades a finding. Findings never fail a run on their own; policy
// violations are reported as errors.
type Severity string

const (
	SeverityInfo Severity = "info"
	SeverityWarn Severity = "warn"
)

// Finding is a single diagnostic produced while validating an endpoint.
type Finding struct {
	Kind      FindingKind
	Severity  Severity
	Host      string
	IPAddress string
	// Protocol is the protocol version id the finding was observed under, 0 for named groups.
	Protocol int
	ID       int
	Name     string
}

// GradeResult partitions endpoint addresses by grade acceptance, in report order.
type GradeResult struct {
	Accepted []string
	Rejected []string
}

// AllAccepted reports whether no endpoint was rejected.
func (g GradeResult) AllAccepted() bool {
	return len(g.Rejected) == 0
}

// TLSResult holds the findings gathered by CheckTLSConfig. When validation fails
// it contains everything recorded before the failure.
type TLSResult struct {
	Findings []Finding
	// EndpointsChecked counts endpoints that were fully processed.
	EndpointsChecked int
}

// Warnings returns findings with SeverityWarn.
func (r *TLSResult) Warnings() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityWarn {
			out = append(out, f)
		}
	}
	return out
}

// Options tunes CheckTLSConfig.
type Options struct {
	// CollectAll keeps validating after a violation and returns every violation
	// across all endpoints combined into one error. By default the first
	// violation aborts the run.
	CollectAll bool
}
