package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lohum/schemetrack/pkg/types"
)

func newAPIStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/schemes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(types.Overview{
			Summary: types.Summary{SchemeCount: 1, TotalIncentiveCrores: "300.00", LastUpdated: "01 Aug 2026, 10:00"},
			Rows: []types.OverviewRow{{
				RowID:           "1",
				Scheme:          "PLI for ACC Batteries",
				Ministry:        "Ministry of Heavy Industries",
				IncentiveCrores: "300.00",
				Deadline:        "15 Aug 2026",
				DaysLeft:        "14 days",
				Urgency:         types.BucketSoon,
			}},
		})
	})
	mux.HandleFunc("/api/v1/schemes/detail", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(types.Detail{
			RowID:  r.URL.Query().Get("row"),
			Scheme: "PLI for ACC Batteries",
			Stages: []types.StageInfo{{Name: "Application", Deadline: "15 Aug 2026"}},
		})
	})
	return httptest.NewServer(mux)
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommandTable(t *testing.T) {
	server := newAPIStub(t)
	defer server.Close()

	out, err := runCommand(t, "list", "--server", server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "PLI for ACC Batteries")
	assert.Contains(t, out, "15 Aug 2026")
	assert.Contains(t, out, "1 scheme(s), total incentive 300.00 Cr")
}

func TestListCommandJSON(t *testing.T) {
	server := newAPIStub(t)
	defer server.Close()

	out, err := runCommand(t, "list", "--server", server.URL, "-o", "json")
	require.NoError(t, err)

	var overview types.Overview
	require.NoError(t, json.Unmarshal([]byte(out), &overview))
	assert.Equal(t, 1, overview.Summary.SchemeCount)
}

func TestShowCommand(t *testing.T) {
	server := newAPIStub(t)
	defer server.Close()

	out, err := runCommand(t, "show", "--server", server.URL, "--row", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "PLI for ACC Batteries (row 1)")
	assert.Contains(t, out, "Stage 1:       Application (deadline 15 Aug 2026)")
}

func TestListCommandServerDown(t *testing.T) {
	server := newAPIStub(t)
	server.Close()

	_, err := runCommand(t, "list", "--server", server.URL)
	assert.Error(t, err)
}

func TestFormatTable(t *testing.T) {
	out := formatTable(
		[]string{"Row", "Scheme"},
		[][]string{{"1", "PLI"}, {"2", "EV Subsidy"}},
	)
	assert.Equal(t, ""+
		"Row  Scheme    \n"+
		"---  ----------\n"+
		"1    PLI       \n"+
		"2    EV Subsidy\n",
		out)
}
