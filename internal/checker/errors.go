package checker

import (
	"fmt"

	domainerrors "github.com/khanhnv2901/ssllint/internal/shared/errors"
)

// CipherSuiteViolation signals an offered cipher suite outside the policy.
type CipherSuiteViolation struct {
	Host      string
	IPAddress string
	Protocol  int
	SuiteID   int
	SuiteName string
}

func (e *CipherSuiteViolation) Error() string {
	return fmt.Sprintf("ciphersuite %s is not acceptable for %s (%s)", e.SuiteName, e.Host, e.IPAddress)
}

// Is matches ErrPolicyViolation.
func (e *CipherSuiteViolation) Is(target error) bool {
	return target == domainerrors.ErrPolicyViolation
}

// KexGroupViolation signals an offered key-exchange group outside the policy.
type KexGroupViolation struct {
	Host      string
	IPAddress string
	GroupID   int
	GroupName string
}

func (e *KexGroupViolation) Error() string {
	return fmt.Sprintf("named group %s is not acceptable for %s (%s)", e.GroupName, e.Host, e.IPAddress)
}

// Is matches ErrPolicyViolation.
func (e *KexGroupViolation) Is(target error) bool {
	return target == domainerrors.ErrPolicyViolation
}

// MissingKexGroupsError signals required key-exchange groups the endpoint does not offer.
type MissingKexGroupsError struct {
	Host      string
	IPAddress string
	Missing   []int
}

func (e *MissingKexGroupsError) Error() string {
	return fmt.Sprintf("named groups %v are not supported for %s (%s)", e.Missing, e.Host, e.IPAddress)
}

// Is matches ErrPolicyViolation.
func (e *MissingKexGroupsError) Is(target error) bool {
	return target == domainerrors.ErrPolicyViolation
}

// SuiteGroupNotFoundError signals a supported protocol without a cipher suite list.
type SuiteGroupNotFoundError struct {
	Host      string
	IPAddress string
	Protocol  int
}

func (e *SuiteGroupNotFoundError) Error() string {
	return fmt.Sprintf("no cipher suite list for protocol %d on %s (%s)", e.Protocol, e.Host, e.IPAddress)
}

// Is matches ErrSuiteGroupNotFound.
func (e *SuiteGroupNotFoundError) Is(target error) bool {
	return target == domainerrors.ErrSuiteGroupNotFound
}
