// Package monitoring turns a flowsheet into a small web server for
// inspecting units, streams, and cost results while iterating on a design.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	// Enable profiling endpoints.
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/sirupsen/logrus"
	"github.com/syifan/goseth"

	"github.com/prosimlab/unitops/flowsheet"
	"github.com/prosimlab/unitops/thermo"
)

// A Monitor serves a flowsheet's state over HTTP.
type Monitor struct {
	fs          *flowsheet.Flowsheet
	portNumber  int
	openBrowser bool
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor. Ports below 1000 are
// replaced with a random port.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes StartServer open the monitor in the default browser.
func (m *Monitor) WithBrowser() *Monitor {
	m.openBrowser = true
	return m
}

// RegisterFlowsheet registers the flowsheet to be monitored.
func (m *Monitor) RegisterFlowsheet(fs *flowsheet.Flowsheet) {
	m.fs = fs
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()
	r.HandleFunc("/api/flowsheet", m.flowsheetSummary)
	r.HandleFunc("/api/simulate", m.simulate)
	r.HandleFunc("/api/units", m.listUnits)
	r.HandleFunc("/api/unit/{name}", m.unitDetails)
	r.HandleFunc("/api/streams", m.listStreams)
	r.HandleFunc("/api/stream/{name}", m.streamDetails)
	r.HandleFunc("/api/results", m.listResults)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	logrus.WithField("url", url).Info("monitoring flowsheet")

	if m.openBrowser {
		if err := browser.OpenURL(url + "/api/flowsheet"); err != nil {
			logrus.WithError(err).Warn("cannot open browser")
		}
	}

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

type flowsheetRsp struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	CostYear           int     `json:"cost_year"`
	NumUnits           int     `json:"num_units"`
	NumStreams         int     `json:"num_streams"`
	TotalPurchaseCost  float64 `json:"total_purchase_cost"`
	TotalInstalledCost float64 `json:"total_installed_cost"`
	TotalUtilityCost   float64 `json:"total_utility_cost"`
}

func (m *Monitor) flowsheetSummary(w http.ResponseWriter, _ *http.Request) {
	rsp := flowsheetRsp{
		ID:                 m.fs.ID(),
		Name:               m.fs.Name(),
		CostYear:           m.fs.CostYear(),
		NumUnits:           len(m.fs.Units()),
		NumStreams:         len(m.fs.Streams()),
		TotalPurchaseCost:  m.fs.TotalPurchaseCost(),
		TotalInstalledCost: m.fs.TotalInstalledCost(),
		TotalUtilityCost:   m.fs.TotalUtilityCost(),
	}

	writeJSON(w, rsp)
}

func (m *Monitor) simulate(w http.ResponseWriter, _ *http.Request) {
	if err := m.fs.Simulate(); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type unitRsp struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

func (m *Monitor) listUnits(w http.ResponseWriter, _ *http.Request) {
	units := make([]unitRsp, 0, len(m.fs.Units()))
	for _, u := range m.fs.Units() {
		units = append(units, unitRsp{
			Name:   u.Name(),
			Kind:   u.Kind(),
			Status: u.Status().String(),
		})
	}

	writeJSON(w, units)
}

func (m *Monitor) unitDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	unit := m.fs.UnitByName(name)
	if unit == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Unit not found"))
		dieOnErr(err)
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(unit)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) listStreams(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(m.fs.Streams()))
	for _, s := range m.fs.Streams() {
		names = append(names, s.Name())
	}

	writeJSON(w, names)
}

type streamRsp struct {
	Name  string             `json:"name"`
	T     float64            `json:"temperature_k"`
	P     float64            `json:"pressure_pa"`
	Phase string             `json:"phase"`
	Flows map[string]float64 `json:"flows_kmol_per_hr"`
}

func (m *Monitor) streamDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	stream := m.fs.StreamByName(name)
	if stream == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Stream not found"))
		dieOnErr(err)
		return
	}

	writeJSON(w, streamToRsp(stream))
}

func streamToRsp(s *thermo.Stream) streamRsp {
	flows := make(map[string]float64)
	for _, c := range s.Registry().Components() {
		flows[c.Name] = s.Flow(c.Name)
	}

	return streamRsp{
		Name:  s.Name(),
		T:     s.T,
		P:     s.P,
		Phase: s.Phase.String(),
		Flows: flows,
	}
}

func (m *Monitor) listResults(w http.ResponseWriter, _ *http.Request) {
	results := make(map[string]*flowsheet.CostReport)
	for _, u := range m.fs.Units() {
		if report := m.fs.CostReportOf(u.Name()); report != nil {
			results[u.Name()] = report
		}
	}

	writeJSON(w, results)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memoryInfo, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(data)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		logrus.Panic(err)
	}
}
