// Package report models SSL Labs host assessments and decodes them from JSON.
package report

// Report is the assessment of a single scanned host.
type Report struct {
	Host      string
	Endpoints []Endpoint
}

// Endpoint is the scan result for one IP address of the host.
type Endpoint struct {
	IPAddress string
	Grade     string
	Details   EndpointDetails
}

// EndpointDetails carries the TLS capabilities observed on an endpoint.
type EndpointDetails struct {
	Protocols   []Protocol
	Suites      []SuiteGroup
	NamedGroups NamedGroupList
}

// Protocol is a protocol version supported by the endpoint.
type Protocol struct {
	ID      int
	Name    string
	Version string
}

// SuiteGroup lists the cipher suites offered for one protocol version.
type SuiteGroup struct {
	Protocol int
	List     []CipherSuite
}

// CipherSuite is a single offered cipher suite.
type CipherSuite struct {
	ID   int
	Name string
}

// NamedGroupList holds the key-exchange groups offered by the endpoint.
type NamedGroupList struct {
	List []NamedGroup
}

// NamedGroup is a single offered key-exchange group.
type NamedGroup struct {
	ID   int
	Name string
}

// Label renders the protocol as "TLS 1.2" when the report names it.
func (p Protocol) Label() string {
	switch {
	case p.Name != "" && p.Version != "":
		return p.Name + " " + p.Version
	case p.Name != "":
		return p.Name
	}
	return ""
}

// SuiteGroup returns the first suite group advertised for protocolID.
func (d EndpointDetails) SuiteGroup(protocolID int) (SuiteGroup, bool) {
	for _, sg := range d.Suites {
		if sg.Protocol == protocolID {
			return sg, true
		}
	}
	return SuiteGroup{}, false
}

// ProtocolIDs returns the supported protocol version ids in report order.
func (d EndpointDetails) ProtocolIDs() []int {
	ids := make([]int, 0, len(d.Protocols))
	for _, p := range d.Protocols {
		ids = append(ids, p.ID)
	}
	return ids
}

// IPAddresses returns the endpoint addresses in report order.
func (r *Report) IPAddresses() []string {
	ips := make([]string, 0, len(r.Endpoints))
	for _, ep := range r.Endpoints {
		ips = append(ips, ep.IPAddress)
	}
	return ips
}
