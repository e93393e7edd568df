package checker

import (
	"github.com/khanhnv2901/ssllint/internal/policy"
	"github.com/khanhnv2901/ssllint/internal/report"
)

// CheckGrades splits the report's endpoints into accepted and rejected IP
// addresses depending on whether their grade is accepted by p.
func CheckGrades(r *report.Report, p *policy.Policy) GradeResult {
	result := GradeResult{
		Accepted: []string{},
		Rejected: []string{},
	}
	for _, ep := range r.Endpoints {
		if p.AcceptsGrade(ep.Grade) {
			result.Accepted = append(result.Accepted, ep.IPAddress)
		} else {
			result.Rejected = append(result.Rejected, ep.IPAddress)
		}
	}
	return result
}
