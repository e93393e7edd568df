package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	consts "github.com/khanhnv2901/ssllint/internal/shared/constants"
	domainerrors "github.com/khanhnv2901/ssllint/internal/shared/errors"
)

const sampleReport = `[{
  "host": "ex.com",
  "port": 443,
  "status": "READY",
  "endpoints": [{
    "ipAddress": "1.1.1.1",
    "grade": "A",
    "hasWarnings": false,
    "details": {
      "protocols": [{"id": 771, "name": "TLS", "version": "1.2"}, {"id": 772, "name": "TLS", "version": "1.3"}],
      "suites": [
        {"protocol": 771, "list": [{"id": 49199, "name": "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256", "cipherStrength": 128}]},
        {"protocol": 772, "list": [{"id": 4865, "name": "TLS_AES_128_GCM_SHA256"}]}
      ],
      "namedGroups": {"list": [{"id": 29, "name": "x25519", "bits": 255}, {"id": 23, "name": "secp256r1"}], "preference": true}
    }
  }]
}]`

func TestDecodeSampleReport(t *testing.T) {
	r, err := Decode([]byte(sampleReport))
	require.NoError(t, err)

	assert.Equal(t, "ex.com", r.Host)
	require.Len(t, r.Endpoints, 1)

	ep := r.Endpoints[0]
	assert.Equal(t, "1.1.1.1", ep.IPAddress)
	assert.Equal(t, "A", ep.Grade)
	assert.Equal(t, []int{771, 772}, ep.Details.ProtocolIDs())
	assert.Equal(t, "TLS 1.3", ep.Details.Protocols[1].Label())

	sg, ok := ep.Details.SuiteGroup(772)
	require.True(t, ok)
	assert.Equal(t, []CipherSuite{{ID: 0x1301, Name: "TLS_AES_128_GCM_SHA256"}}, sg.List)

	assert.Equal(t, []NamedGroup{{ID: 29, Name: "x25519"}, {ID: 23, Name: "secp256r1"}}, ep.Details.NamedGroups.List)
	assert.Equal(t, []string{"1.1.1.1"}, r.IPAddresses())
}

func TestDecodeRecordCount(t *testing.T) {
	one := strings.TrimSuffix(strings.TrimPrefix(sampleReport, "["), "]")

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty array", input: `[]`},
		{name: "two records", input: "[" + one + "," + one + "]"},
		{name: "null", input: `null`},
		{name: "object instead of array", input: one},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)

			var shapeErr *InputShapeError
			assert.True(t, errors.As(err, &shapeErr), "expected InputShapeError, got %T", err)
			assert.ErrorIs(t, err, domainerrors.ErrInputShape)
		})
	}
}

func TestDecodeRecordCountMessage(t *testing.T) {
	_, err := Decode([]byte(`[]`))
	require.Error(t, err)
	assert.Equal(t, "invalid report: expected exactly 1 report record, got 0", err.Error())
}

func TestDecodeMalformedJSON(t *testing.T) {
	for _, input := range []string{`[{"host": "ex.com",]`, `not json`, ``, `[{"id": 0xC02F}]`} {
		_, err := Decode([]byte(input))
		require.Error(t, err, "input %q", input)

		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr), "input %q: expected ParseError, got %T", input, err)
		assert.ErrorIs(t, err, domainerrors.ErrMalformedJSON)
		assert.NotErrorIs(t, err, domainerrors.ErrInputShape)
	}
}

func TestDecodeRejectsDuplicateMembers(t *testing.T) {
	for _, input := range []string{
		`[{"host":"a","host":"b","endpoints":[]}]`,
		`[{"host":"ex.com","endpoints":[{"ipAddress":"1.1.1.1","ipAddress":"2.2.2.2","grade":"A","details":{}}]}]`,
	} {
		_, err := Decode([]byte(input))

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr), "input %q: expected ParseError, got %v", input, err)
		assert.ErrorIs(t, err, domainerrors.ErrMalformedJSON)
	}
}

func TestDecodeWrongTypes(t *testing.T) {
	input := `[{"host": "ex.com", "endpoints": [{"ipAddress": "1.1.1.1", "grade": 5, "details": {}}]}]`

	_, err := Decode([]byte(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInputShape)
}

func TestDecodeMissingFields(t *testing.T) {
	details := `"details": {"protocols": [{"id": 771}], "suites": [{"protocol": 771, "list": [{"id": 49199}]}], "namedGroups": {"list": [{"id": 23}]}}`

	tests := []struct {
		name     string
		input    string
		wantPath string
	}{
		{
			name:     "host",
			input:    `[{"endpoints": []}]`,
			wantPath: "host",
		},
		{
			name:     "endpoints",
			input:    `[{"host": "ex.com"}]`,
			wantPath: "endpoints",
		},
		{
			name:     "ip address",
			input:    `[{"host": "ex.com", "endpoints": [{"grade": "A", ` + details + `}]}]`,
			wantPath: "endpoints[0].ipAddress",
		},
		{
			name:     "grade",
			input:    `[{"host": "ex.com", "endpoints": [{"ipAddress": "1.1.1.1", ` + details + `}]}]`,
			wantPath: "endpoints[0].grade",
		},
		{
			name:     "details",
			input:    `[{"host": "ex.com", "endpoints": [{"ipAddress": "1.1.1.1", "grade": "A"}]}]`,
			wantPath: "endpoints[0].details",
		},
		{
			name:     "null details",
			input:    `[{"host": "ex.com", "endpoints": [{"ipAddress": "1.1.1.1", "grade": "A", "details": null}]}]`,
			wantPath: "endpoints[0].details",
		},
		{
			name:     "named groups",
			input:    `[{"host": "ex.com", "endpoints": [{"ipAddress": "1.1.1.1", "grade": "A", "details": {"protocols": [], "suites": []}}]}]`,
			wantPath: "endpoints[0].details.namedGroups",
		},
		{
			name:     "named group list",
			input:    `[{"host": "ex.com", "endpoints": [{"ipAddress": "1.1.1.1", "grade": "A", "details": {"protocols": [], "suites": [], "namedGroups": {}}}]}]`,
			wantPath: "endpoints[0].details.namedGroups.list",
		},
		{
			name:     "suite id",
			input:    `[{"host": "ex.com", "endpoints": [{"ipAddress": "1.1.1.1", "grade": "A", "details": {"protocols": [], "suites": [{"protocol": 771, "list": [{"name": "X"}]}], "namedGroups": {"list": []}}}]}]`,
			wantPath: "endpoints[0].details.suites[0].list[0].id",
		},
		{
			name:     "suite protocol",
			input:    `[{"host": "ex.com", "endpoints": [{"ipAddress": "1.1.1.1", "grade": "A", "details": {"protocols": [], "suites": [{"list": []}], "namedGroups": {"list": []}}}]}]`,
			wantPath: "endpoints[0].details.suites[0].protocol",
		},
		{
			name:     "protocol id",
			input:    `[{"host": "ex.com", "endpoints": [{"ipAddress": "1.1.1.1", "grade": "A", "details": {"protocols": [{"name": "TLS"}], "suites": [], "namedGroups": {"list": []}}}]}]`,
			wantPath: "endpoints[0].details.protocols[0].id",
		},
		{
			name:     "group id",
			input:    `[{"host": "ex.com", "endpoints": [{"ipAddress": "1.1.1.1", "grade": "A", "details": {"protocols": [], "suites": [], "namedGroups": {"list": [{"name": "x25519"}]}}}]}]`,
			wantPath: "endpoints[0].details.namedGroups.list[0].id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)

			var shapeErr *InputShapeError
			require.True(t, errors.As(err, &shapeErr), "expected InputShapeError, got %T", err)
			assert.Equal(t, tt.wantPath, shapeErr.Path)
			assert.ErrorIs(t, err, domainerrors.ErrMissingField)
			assert.Equal(t, "invalid report: "+tt.wantPath+": missing required field", err.Error())
		})
	}
}

func TestDecodeEmptyEndpoints(t *testing.T) {
	r, err := Decode([]byte(`[{"host": "ex.com", "endpoints": []}]`))
	require.NoError(t, err)
	assert.Empty(t, r.Endpoints)
}

func TestSuiteGroupFirstMatchWins(t *testing.T) {
	d := EndpointDetails{
		Suites: []SuiteGroup{
			{Protocol: 771, List: []CipherSuite{{ID: 1}}},
			{Protocol: 771, List: []CipherSuite{{ID: 2}}},
		},
	}

	sg, ok := d.SuiteGroup(771)
	require.True(t, ok)
	assert.Equal(t, 1, sg.List[0].ID)

	_, ok = d.SuiteGroup(772)
	assert.False(t, ok)
}

func TestProtocolLabel(t *testing.T) {
	assert.Equal(t, "TLS 1.2", Protocol{ID: 771, Name: "TLS", Version: "1.2"}.Label())
	assert.Equal(t, "TLS", Protocol{ID: 771, Name: "TLS"}.Label())
	assert.Equal(t, "", Protocol{ID: 771}.Label())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleReport), consts.DefaultFilePerm))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ex.com", r.Host)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFileLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleReport), consts.DefaultFilePerm))

	_, err := readFile(path, 10)
	assert.ErrorIs(t, err, domainerrors.ErrInputTooLarge)

	data, err := readFile(path, int64(len(sampleReport)))
	require.NoError(t, err)
	assert.Equal(t, sampleReport, string(data))
}
