package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	consts "github.com/khanhnv2901/ssllint/internal/shared/constants"
	domainerrors "github.com/khanhnv2901/ssllint/internal/shared/errors"
	"github.com/khanhnv2901/ssllint/internal/shared/security"
)

// Wire types mirror the SSL Labs JSON. Required members are pointers so an
// absent or null member can be told apart from a zero value.
type wireReport struct {
	Host      *string         `json:"host"`
	Endpoints *[]wireEndpoint `json:"endpoints"`
}

type wireEndpoint struct {
	IPAddress *string      `json:"ipAddress"`
	Grade     *string      `json:"grade"`
	Details   *wireDetails `json:"details"`
}

type wireDetails struct {
	Protocols   *[]wireProtocol   `json:"protocols"`
	Suites      *[]wireSuiteGroup `json:"suites"`
	NamedGroups *wireNamedGroups  `json:"namedGroups"`
}

type wireProtocol struct {
	ID      *int   `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

type wireSuiteGroup struct {
	Protocol *int               `json:"protocol"`
	List     *[]wireCipherSuite `json:"list"`
}

type wireCipherSuite struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

type wireNamedGroups struct {
	List *[]wireNamedGroup `json:"list"`
}

type wireNamedGroup struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

// Load reads the report file at path in full and decodes it.
func Load(path string) (*Report, error) {
	resolved, err := security.ResolveInputFile(path, consts.MaxReportBytes)
	if err != nil {
		return nil, err
	}

	data, err := readFile(resolved, consts.MaxReportBytes)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}

func readFile(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided report path
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s", domainerrors.ErrInputTooLarge, path)
	}
	return data, nil
}

// Decode parses a JSON array holding exactly one host report. Unknown members
// are ignored; required members must be present.
func Decode(data []byte) (*Report, error) {
	var records []wireReport
	if err := json.Unmarshal(data, &records); err != nil {
		if !jsontext.Value(data).IsValid() {
			return nil, &ParseError{Err: err}
		}
		return nil, &InputShapeError{Reason: "does not match the report schema", Err: err}
	}
	if records == nil {
		return nil, &InputShapeError{Reason: "expected a JSON array of reports, got null"}
	}
	if len(records) != consts.ExpectedReportRecords {
		return nil, &InputShapeError{
			Reason: fmt.Sprintf("expected exactly %d report record, got %d", consts.ExpectedReportRecords, len(records)),
		}
	}

	return records[0].toReport()
}

func (w wireReport) toReport() (*Report, error) {
	if w.Host == nil {
		return nil, missingField("host")
	}
	if w.Endpoints == nil {
		return nil, missingField("endpoints")
	}

	r := &Report{
		Host:      *w.Host,
		Endpoints: make([]Endpoint, 0, len(*w.Endpoints)),
	}
	for i, we := range *w.Endpoints {
		ep, err := we.toEndpoint(fmt.Sprintf("endpoints[%d]", i))
		if err != nil {
			return nil, err
		}
		r.Endpoints = append(r.Endpoints, ep)
	}
	return r, nil
}

func (w wireEndpoint) toEndpoint(path string) (Endpoint, error) {
	switch {
	case w.IPAddress == nil:
		return Endpoint{}, missingField(path + ".ipAddress")
	case w.Grade == nil:
		return Endpoint{}, missingField(path + ".grade")
	case w.Details == nil:
		return Endpoint{}, missingField(path + ".details")
	}

	details, err := w.Details.toDetails(path + ".details")
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{
		IPAddress: *w.IPAddress,
		Grade:     *w.Grade,
		Details:   details,
	}, nil
}

func (w wireDetails) toDetails(path string) (EndpointDetails, error) {
	switch {
	case w.Protocols == nil:
		return EndpointDetails{}, missingField(path + ".protocols")
	case w.Suites == nil:
		return EndpointDetails{}, missingField(path + ".suites")
	case w.NamedGroups == nil:
		return EndpointDetails{}, missingField(path + ".namedGroups")
	case w.NamedGroups.List == nil:
		return EndpointDetails{}, missingField(path + ".namedGroups.list")
	}

	d := EndpointDetails{
		Protocols: make([]Protocol, 0, len(*w.Protocols)),
		Suites:    make([]SuiteGroup, 0, len(*w.Suites)),
		NamedGroups: NamedGroupList{
			List: make([]NamedGroup, 0, len(*w.NamedGroups.List)),
		},
	}

	for i, wp := range *w.Protocols {
		if wp.ID == nil {
			return EndpointDetails{}, missingField(fmt.Sprintf("%s.protocols[%d].id", path, i))
		}
		d.Protocols = append(d.Protocols, Protocol{ID: *wp.ID, Name: wp.Name, Version: wp.Version})
	}

	for i, ws := range *w.Suites {
		groupPath := fmt.Sprintf("%s.suites[%d]", path, i)
		if ws.Protocol == nil {
			return EndpointDetails{}, missingField(groupPath + ".protocol")
		}
		if ws.List == nil {
			return EndpointDetails{}, missingField(groupPath + ".list")
		}
		sg := SuiteGroup{Protocol: *ws.Protocol, List: make([]CipherSuite, 0, len(*ws.List))}
		for j, wc := range *ws.List {
			if wc.ID == nil {
				return EndpointDetails{}, missingField(fmt.Sprintf("%s.list[%d].id", groupPath, j))
			}
			sg.List = append(sg.List, CipherSuite{ID: *wc.ID, Name: wc.Name})
		}
		d.Suites = append(d.Suites, sg)
	}

	for i, wg := range *w.NamedGroups.List {
		if wg.ID == nil {
			return EndpointDetails{}, missingField(fmt.Sprintf("%s.namedGroups.list[%d].id", path, i))
		}
		d.NamedGroups.List = append(d.NamedGroups.List, NamedGroup{ID: *wg.ID, Name: wg.Name})
	}

	return d, nil
}
