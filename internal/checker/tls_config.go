package checker

import (
	"go.uber.org/multierr"

	"github.com/khanhnv2901/ssllint/internal/policy"
	"github.com/khanhnv2901/ssllint/internal/report"
)

// CheckTLSConfig validates every endpoint's cipher suites and key-exchange groups
// against p. Endpoints are processed in report order and, unless
// opts.CollectAll is set, the first violation stops the run. The returned
// result is never nil and holds the findings recorded up to that point.
func CheckTLSConfig(r *report.Report, p *policy.Policy, opts Options) (*TLSResult, error) {
	result := &TLSResult{}
	var errs error

	for i := range r.Endpoints {
		ep := &r.Endpoints[i]
		v := endpointValidator{
			host:       r.Host,
			ep:         ep,
			policy:     p,
			result:     result,
			collectAll: opts.CollectAll,
		}

		err := v.run()
		if err != nil && !opts.CollectAll {
			return result, err
		}
		errs = multierr.Append(errs, err)
		result.EndpointsChecked++
	}

	return result, errs
}

type endpointValidator struct {
	host       string
	ep         *report.Endpoint
	policy     *policy.Policy
	result     *TLSResult
	collectAll bool
	errs       error
}

// fail records err. It returns true when validation of the endpoint must stop.
func (v *endpointValidator) fail(err error) bool {
	v.errs = multierr.Append(v.errs, err)
	return !v.collectAll
}

func (v *endpointValidator) record(kind FindingKind, sev Severity, protocol, id int, name string) {
	v.result.Findings = append(v.result.Findings, Finding{
		Kind:      kind,
		Severity:  sev,
		Host:      v.host,
		IPAddress: v.ep.IPAddress,
		Protocol:  protocol,
		ID:        id,
		Name:      name,
	})
}

func (v *endpointValidator) run() error {
	if v.checkSuites() {
		return v.errs
	}
	v.checkGroups()
	return v.errs
}

// checkSuites walks the suite list of every supported protocol.
func (v *endpointValidator) checkSuites() (stop bool) {
	details := &v.ep.Details
	for _, proto := range details.Protocols {
		if !v.policy.AcceptsTLSVersion(proto.ID) {
			label := proto.Label()
			if label == "" {
				label = policy.TLSVersionName(proto.ID)
			}
			v.record(KindProtocol, SeverityWarn, proto.ID, proto.ID, label)
		}

		group, ok := details.SuiteGroup(proto.ID)
		if !ok {
			err := &SuiteGroupNotFoundError{Host: v.host, IPAddress: v.ep.IPAddress, Protocol: proto.ID}
			if v.fail(err) {
				return true
			}
			continue
		}

		for _, suite := range group.List {
			name := suite.Name
			if name == "" {
				name = policy.CipherSuiteName(suite.ID)
			}
			if !v.policy.AcceptsCipherSuite(suite.ID) {
				err := &CipherSuiteViolation{
					Host:      v.host,
					IPAddress: v.ep.IPAddress,
					Protocol:  proto.ID,
					SuiteID:   suite.ID,
					SuiteName: name,
				}
				if v.fail(err) {
					return true
				}
				continue
			}
			v.record(KindCipherSuite, SeverityInfo, proto.ID, suite.ID, name)
		}
	}
	return false
}

// checkGroups validates offered key-exchange groups, then verifies the required
// groups were all offered.
func (v *endpointValidator) checkGroups() {
	required := v.policy.RequiredKexGroups()
	satisfied := make(map[int]bool, len(required))

	for _, group := range v.ep.Details.NamedGroups.List {
		name := group.Name
		if name == "" {
			name = policy.KexGroupName(group.ID)
		}
		if !v.policy.AcceptsKexGroup(group.ID) {
			err := &KexGroupViolation{
				Host:      v.host,
				IPAddress: v.ep.IPAddress,
				GroupID:   group.ID,
				GroupName: name,
			}
			if v.fail(err) {
				return
			}
			continue
		}
		v.record(KindNamedGroup, SeverityInfo, 0, group.ID, name)
		if v.policy.RequiresKexGroup(group.ID) {
			satisfied[group.ID] = true
		}
	}

	var missing []int
	for _, id := range required {
		if !satisfied[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		v.fail(&MissingKexGroupsError{Host: v.host, IPAddress: v.ep.IPAddress, Missing: missing})
	}
}
