package cmd

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/fatih/color"
	"go.uber.org/zap"

	consts "github.com/khanhnv2901/ssllint/internal/shared/constants"
)

// scenarioReport is a minimal single-endpoint report; callers tweak grade, suite and groups.
func scenarioReport(grade string, suiteID int, groups string) string {
	return `[{"host":"ex.com","endpoints":[{"ipAddress":"1.1.1.1","grade":"` + grade + `","details":{` +
		`"protocols":[{"id":771}],` +
		`"suites":[{"protocol":771,"list":[{"id":` + strconv.Itoa(suiteID) + `,"name":"X"}]}],` +
		`"namedGroups":{"list":[` + groups + `]}}}]}]`
}

// writeReport stores content in a temp file and returns its path.
func writeReport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, []byte(content), consts.DefaultFilePerm); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}
	return path
}

// quietOutput disables colors and logging for the duration of the test.
func quietOutput(t *testing.T) {
	t.Helper()
	originalColor := color.NoColor
	originalLogger := logger
	color.NoColor = true
	logger = zap.NewNop().Sugar()
	t.Cleanup(func() {
		color.NoColor = originalColor
		logger = originalLogger
	})
}
