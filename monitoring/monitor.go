// Package monitoring turns a finished simulation run into a small web server
// so the row-state trace and the closed-form curves can be inspected in a
// browser. It consumes (x, y) point sequences only and owns no algorithmic
// content.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"

	"github.com/rowlab/rowperf/analysis"
	"github.com/rowlab/rowperf/config"
	"github.com/rowlab/rowperf/model"
	"github.com/rowlab/rowperf/monitoring/web"
)

// A Monitor serves a recorded simulation run over HTTP.
type Monitor struct {
	portNumber int

	params  config.Params
	samples []model.Sample
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterRun registers the finished run to serve.
func (m *Monitor) RegisterRun(params config.Params, samples []model.Sample) {
	m.params = params
	m.samples = samples
}

// Handler returns the HTTP handler that serves the run.
func (m *Monitor) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/params", m.listParams)
	r.HandleFunc("/api/samples", m.listSamples)
	r.HandleFunc("/api/usable-fraction", m.usableFractionCurve)
	r.HandleFunc("/api/efficiency", m.efficiencyCurve)
	r.PathPrefix("/").Handler(http.FileServer(web.GetAssets()))

	return r
}

// StartServer starts the monitor as a web server and returns the URL it
// listens on.
func (m *Monitor) StartServer() string {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)

	fmt.Fprintf(os.Stderr, "Serving simulation results at %s\n", url)

	go func() {
		dieOnErr(http.Serve(listener, m.Handler()))
	}()

	return url
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	err := browser.OpenURL(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open browser: %s\n", err)
	}
}

type jsonParams struct {
	TotalRows       int     `json:"total_rows"`
	WriteTimePerRow int64   `json:"write_time_ns"`
	SettlingTime    int64   `json:"settling_ns"`
	Horizon         int64   `json:"horizon_ns"`
	Triggers        []int64 `json:"triggers_ns"`
}

func (m *Monitor) listParams(w http.ResponseWriter, _ *http.Request) {
	p := jsonParams{
		TotalRows:       m.params.TotalRows,
		WriteTimePerRow: int64(m.params.WriteTimePerRow),
		SettlingTime:    int64(m.params.SettlingTime),
		Horizon:         int64(m.params.Horizon),
		Triggers:        make([]int64, 0, len(m.params.Triggers)),
	}
	for _, trig := range m.params.Triggers {
		p.Triggers = append(p.Triggers, int64(trig))
	}

	writeJSON(w, p)
}

type jsonSample struct {
	Time         int64 `json:"time_ns"`
	SettledGreen int   `json:"settled_green"`
	SettledBlue  int   `json:"settled_blue"`
	Unsettled    int   `json:"unsettled"`
}

func (m *Monitor) listSamples(w http.ResponseWriter, _ *http.Request) {
	out := make([]jsonSample, 0, len(m.samples))
	for _, s := range m.samples {
		out = append(out, jsonSample{
			Time:         int64(s.Time),
			SettledGreen: s.SettledGreen,
			SettledBlue:  s.SettledBlue,
			Unsettled:    s.Unsettled,
		})
	}

	writeJSON(w, out)
}

func (m *Monitor) usableFractionCurve(w http.ResponseWriter, _ *http.Request) {
	writeTime := m.params.WriteTimePerRow
	if writeTime <= 0 {
		writeTime = 1
	}

	points := analysis.UsableFractionSeries(
		m.params.Horizon, 1, m.params.TotalRows,
		writeTime, m.params.SettlingTime)

	writeJSON(w, points)
}

func (m *Monitor) efficiencyCurve(w http.ResponseWriter, _ *http.Request) {
	points := analysis.PipelineEfficiencyCurve(25000, 250, m.params.TotalRows)

	writeJSON(w, points)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(v)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
