// Package policy holds the fixed TLS acceptance policy that scan reports are validated against.
package policy

import (
	"crypto/tls"
	"fmt"
	"slices"
)

// Protocol version identifiers as reported by SSL Labs.
const (
	VersionTLS12 = 771
	VersionTLS13 = 772
)

// Key-exchange group identifiers (IANA TLS Supported Groups registry).
const (
	GroupSecp256r1 = 23
	GroupSecp384r1 = 24
	GroupSecp521r1 = 25
	GroupX25519    = 29
	GroupX448      = 30
)

// Policy is an immutable set of acceptance criteria. Build it once with New or
// Default and pass it to the checker.
type Policy struct {
	grades        map[string]struct{}
	tlsVersions   map[int]struct{}
	cipherSuites  map[int]struct{}
	kexGroups     map[int]struct{}
	requiredKex   map[int]struct{}
	requiredOrder []int
}

// Spec lists the raw policy values used to build a Policy.
type Spec struct {
	AcceptedGrades         []string
	AcceptedTLSVersionIDs  []int
	AcceptedCipherSuiteIDs []int
	AcceptedKexGroupIDs    []int
	MinRequiredKexGroupIDs []int
}

// DefaultSpec returns the built-in policy values.
func DefaultSpec() Spec {
	return Spec{
		AcceptedGrades:        []string{"A", "A+"},
		AcceptedTLSVersionIDs: []int{VersionTLS12, VersionTLS13},
		AcceptedCipherSuiteIDs: []int{
			0xC02F, 0xC02B, 0xC02C, 0xC030, 0xCCA8, 0xCCA9, 0x1301, 0x1302, 0x1303,
		},
		AcceptedKexGroupIDs:    []int{GroupSecp256r1, GroupSecp384r1, GroupSecp521r1, GroupX25519, GroupX448},
		MinRequiredKexGroupIDs: []int{GroupSecp256r1},
	}
}

// Default returns the built-in policy.
func Default() *Policy {
	return New(DefaultSpec())
}

// New builds a Policy from the given sets. The input slices are copied.
func New(spec Spec) *Policy {
	p := &Policy{
		grades:       make(map[string]struct{}, len(spec.AcceptedGrades)),
		tlsVersions:  toSet(spec.AcceptedTLSVersionIDs),
		cipherSuites: toSet(spec.AcceptedCipherSuiteIDs),
		kexGroups:    toSet(spec.AcceptedKexGroupIDs),
		requiredKex:  toSet(spec.MinRequiredKexGroupIDs),
	}
	for _, g := range spec.AcceptedGrades {
		p.grades[g] = struct{}{}
	}
	for _, id := range spec.MinRequiredKexGroupIDs {
		if !slices.Contains(p.requiredOrder, id) {
			p.requiredOrder = append(p.requiredOrder, id)
		}
	}
	return p
}

func toSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// AcceptsGrade reports whether grade is an acceptable overall grade. Matching is exact.
func (p *Policy) AcceptsGrade(grade string) bool {
	_, ok := p.grades[grade]
	return ok
}

// AcceptsTLSVersion reports whether the protocol version id is acceptable.
func (p *Policy) AcceptsTLSVersion(id int) bool {
	_, ok := p.tlsVersions[id]
	return ok
}

// AcceptsCipherSuite reports whether the cipher suite id is acceptable.
func (p *Policy) AcceptsCipherSuite(id int) bool {
	_, ok := p.cipherSuites[id]
	return ok
}

// AcceptsKexGroup reports whether the key-exchange group id is acceptable.
func (p *Policy) AcceptsKexGroup(id int) bool {
	_, ok := p.kexGroups[id]
	return ok
}

// RequiresKexGroup reports whether id belongs to the minimum required groups.
func (p *Policy) RequiresKexGroup(id int) bool {
	_, ok := p.requiredKex[id]
	return ok
}

// RequiredKexGroups returns the minimum required group ids in declaration order.
func (p *Policy) RequiredKexGroups() []int {
	return slices.Clone(p.requiredOrder)
}

// Grades returns the accepted grades, sorted.
func (p *Policy) Grades() []string {
	out := make([]string, 0, len(p.grades))
	for g := range p.grades {
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}

// TLSVersions returns the accepted protocol version ids, sorted.
func (p *Policy) TLSVersions() []int { return sortedIDs(p.tlsVersions) }

// CipherSuites returns the accepted cipher suite ids, sorted.
func (p *Policy) CipherSuites() []int { return sortedIDs(p.cipherSuites) }

// KexGroups returns the accepted key-exchange group ids, sorted.
func (p *Policy) KexGroups() []int { return sortedIDs(p.kexGroups) }

func sortedIDs(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

var groupNames = map[int]string{
	GroupSecp256r1: "secp256r1",
	GroupSecp384r1: "secp384r1",
	GroupSecp521r1: "secp521r1",
	GroupX25519:    "x25519",
	GroupX448:      "x448",
}

var versionNames = map[int]string{
	0x0200:       "SSL 2.0",
	0x0300:       "SSL 3.0",
	0x0301:       "TLS 1.0",
	0x0302:       "TLS 1.1",
	VersionTLS12: "TLS 1.2",
	VersionTLS13: "TLS 1.3",
}

// CipherSuiteName returns the IANA name for a cipher suite id.
func CipherSuiteName(id int) string {
	if id < 0 || id > 0xFFFF {
		return fmt.Sprintf("Unknown (%d)", id)
	}
	return tls.CipherSuiteName(uint16(id))
}

// KexGroupName returns a display name for a key-exchange group id.
func KexGroupName(id int) string {
	if name, ok := groupNames[id]; ok {
		return name
	}
	return fmt.Sprintf("group %d", id)
}

// TLSVersionName returns a display name for a protocol version id.
func TLSVersionName(id int) string {
	if name, ok := versionNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%04x)", id)
}
