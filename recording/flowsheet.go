package recording

import (
	"github.com/rs/xid"

	"github.com/prosimlab/unitops/flowsheet"
)

// A DesignRow is one design metric of one unit for one pass.
type DesignRow struct {
	Pass   string
	Unit   string
	Metric string
	Value  float64
}

// A CostRow is the cost report of one unit for one pass.
type CostRow struct {
	Pass          string
	Unit          string
	Equipment     string
	PurchaseCost  float64
	InstalledCost float64
	ElectricityKW float64
	UtilityCost   float64
}

// A UtilityRow is one utility entry of one unit for one pass. Heat entries
// carry a duty and a temperature; power entries carry a draw in kW.
type UtilityRow struct {
	Pass  string
	Unit  string
	Kind  string
	Agent string
	Duty  float64
	T     float64
	KW    float64
	Cost  float64
}

// A FlowsheetRecorder records the results of flowsheet passes.
type FlowsheetRecorder struct {
	rec Recorder
}

// NewFlowsheetRecorder creates a flowsheet recorder writing to a SQLite
// file at the given path (empty for a unique name).
func NewFlowsheetRecorder(path string) *FlowsheetRecorder {
	return WrapRecorder(NewRecorder(path))
}

// WrapRecorder creates a flowsheet recorder on top of an existing backend.
func WrapRecorder(rec Recorder) *FlowsheetRecorder {
	rec.CreateTable("design_results", DesignRow{})
	rec.CreateTable("cost_reports", CostRow{})
	rec.CreateTable("utilities", UtilityRow{})

	return &FlowsheetRecorder{rec: rec}
}

// RecordPass stores the results of the flowsheet's latest simulation pass
// and returns the pass id.
func (r *FlowsheetRecorder) RecordPass(fs *flowsheet.Flowsheet) string {
	passID := xid.New().String()

	for _, u := range fs.Units() {
		r.recordUnit(passID, fs, u)
	}

	r.rec.Flush()

	return passID
}

func (r *FlowsheetRecorder) recordUnit(
	passID string,
	fs *flowsheet.Flowsheet,
	u flowsheet.Unit,
) {
	for metric, value := range u.DesignResults() {
		r.rec.Insert("design_results", DesignRow{
			Pass:   passID,
			Unit:   u.Name(),
			Metric: metric,
			Value:  value,
		})
	}

	if report := fs.CostReportOf(u.Name()); report != nil {
		r.rec.Insert("cost_reports", CostRow{
			Pass:          passID,
			Unit:          u.Name(),
			Equipment:     report.Equipment,
			PurchaseCost:  report.PurchaseCost,
			InstalledCost: report.InstalledCost,
			ElectricityKW: report.ElectricityKW,
			UtilityCost:   report.UtilityCost,
		})
	}

	for _, e := range u.Utilities().HeatEntries() {
		r.rec.Insert("utilities", UtilityRow{
			Pass:  passID,
			Unit:  u.Name(),
			Kind:  "heat",
			Agent: e.Agent,
			Duty:  e.Duty,
			T:     e.T,
			Cost:  e.Cost,
		})
	}

	for _, e := range u.Utilities().PowerEntries() {
		r.rec.Insert("utilities", UtilityRow{
			Pass:  passID,
			Unit:  u.Name(),
			Kind:  "power",
			Agent: "Electricity",
			KW:    e.KW,
			Cost:  e.Cost,
		})
	}
}

// Close flushes and closes the underlying backend.
func (r *FlowsheetRecorder) Close() error {
	return r.rec.Close()
}
