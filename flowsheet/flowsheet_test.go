package flowsheet_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/prosimlab/unitops"
	"github.com/prosimlab/unitops/costing"
	"github.com/prosimlab/unitops/flowsheet"
	"github.com/prosimlab/unitops/thermo"
	"github.com/prosimlab/unitops/utility"
)

const dryerKind = "TestDryer"

func init() {
	costing.Register(dryerKind, costing.Correlation{
		Basis:      "Flow rate",
		Equipment:  "Drum",
		Cost:       100000,
		Size:       1000,
		Index:      500,
		Exponent:   0.6,
		BareModule: 2,
		KW:         10,
	})
}

// dryerUnit is a minimal unit for driving the flowsheet: it forwards its
// inlet to its outlet and sizes itself by the outlet mass flow.
type dryerUnit struct {
	flowsheet.UnitBase

	runErr    error
	designErr error
	skipBasis bool
	heatDuty  float64
}

func (d *dryerUnit) Run() error {
	d.ResetPass()

	if d.runErr != nil {
		return d.runErr
	}

	in, out := d.Ins()[0], d.Outs()[0]
	for i := range in.Registry().Components() {
		out.SetFlowAt(i, in.FlowAt(i))
	}
	out.CopyConditionFrom(in)

	return nil
}

func (d *dryerUnit) Design() error {
	if d.designErr != nil {
		return d.designErr
	}

	if !d.skipBasis {
		d.DesignResults()["Flow rate"] = d.Outs()[0].TotalMassFlow()
	}

	if d.heatDuty != 0 {
		d.Utilities().AddHeat(d.heatDuty, d.Outs()[0].T)
	}

	return nil
}

var _ = Describe("Flowsheet", func() {
	var (
		mockCtrl *gomock.Controller
		provider *MockIndexProvider
		reg      *thermo.Registry
		in, out  *thermo.Stream
		dryer    *dryerUnit
		fs       *flowsheet.Flowsheet
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		provider = NewMockIndexProvider(mockCtrl)

		reg = thermo.NewRegistry(
			thermo.Component{Name: "Water", MW: 18.01528})
		in = thermo.NewStream("Wet", reg)
		in.SetFlow("Water", 100)
		in.T = 400
		out = thermo.NewStream("Dry", reg)

		dryer = &dryerUnit{
			UnitBase: flowsheet.NewUnitBase(
				"DR1", dryerKind,
				[]*thermo.Stream{in},
				[]*thermo.Stream{out},
			),
		}

		fs = flowsheet.MakeBuilder().
			WithIndexProvider(provider).
			WithUtilityCatalog(utility.DefaultCatalog()).
			WithCostYear(2015).
			Build("TestFlowsheet")
		fs.RegisterUnit(dryer)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should run, design, and cost each unit in order", func() {
		provider.EXPECT().Index(2015).Return(500.0, nil)

		err := fs.Simulate()

		Expect(err).ToNot(HaveOccurred())
		Expect(dryer.Status()).To(Equal(flowsheet.StatusCosted))

		report := fs.CostReportOf("DR1")
		Expect(report).ToNot(BeNil())
		Expect(report.Equipment).To(Equal("Drum"))
		Expect(report.PurchaseCost).To(BeNumerically(">", 0))
		Expect(report.InstalledCost).To(
			BeNumerically("~", 2*report.PurchaseCost, 1e-9))
	})

	It("should book the correlation electricity draw as a power entry",
		func() {
			provider.EXPECT().Index(2015).Return(500.0, nil)

			err := fs.Simulate()

			Expect(err).ToNot(HaveOccurred())
			Expect(dryer.Utilities().PowerEntries()).To(HaveLen(1))

			massRatio := out.TotalMassFlow() / 1000
			Expect(dryer.Utilities().PowerEntries()[0].KW).To(
				BeNumerically("~", 10*massRatio, 1e-9))
		})

	It("should overwrite results on re-simulation", func() {
		provider.EXPECT().Index(2015).Return(500.0, nil).Times(2)

		Expect(fs.Simulate()).To(Succeed())
		first := *fs.CostReportOf("DR1")

		Expect(fs.Simulate()).To(Succeed())

		Expect(*fs.CostReportOf("DR1")).To(Equal(first))
		Expect(dryer.Utilities().PowerEntries()).To(HaveLen(1))
	})

	It("should propagate run failures", func() {
		dryer.runErr = unitops.ValidationErrorf("inlet is empty")

		err := fs.Simulate()

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("DR1"))
		Expect(dryer.Status()).To(Equal(flowsheet.StatusConfigured))
	})

	It("should propagate design failures", func() {
		dryer.designErr = unitops.ValidationErrorf("cannot size")

		err := fs.Simulate()

		Expect(err).To(HaveOccurred())
		Expect(dryer.Status()).To(Equal(flowsheet.StatusRun))
	})

	It("should fail when the design basis is missing", func() {
		dryer.skipBasis = true

		err := fs.Simulate()

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Flow rate"))
	})

	It("should propagate index provider failures", func() {
		provider.EXPECT().Index(2015).
			Return(0.0, unitops.ValidationErrorf("no index for 2015"))

		err := fs.Simulate()

		Expect(err).To(HaveOccurred())
	})

	It("should price heat duties during the costing step", func() {
		dryer.heatDuty = 1e6
		provider.EXPECT().Index(2015).Return(500.0, nil)

		Expect(fs.Simulate()).To(Succeed())

		entries := dryer.Utilities().HeatEntries()
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Agent).To(Equal("Low pressure steam"))
		Expect(fs.CostReportOf("DR1").UtilityCost).To(
			BeNumerically(">", entries[0].Cost-1e-9))
	})

	It("should reject duplicate unit names", func() {
		other := &dryerUnit{
			UnitBase: flowsheet.NewUnitBase(
				"DR1", dryerKind,
				[]*thermo.Stream{in},
				[]*thermo.Stream{out},
			),
		}

		Expect(func() { fs.RegisterUnit(other) }).To(Panic())
	})

	It("should keep one identity per stream name", func() {
		Expect(fs.StreamByName("Wet")).To(BeIdenticalTo(in))
		Expect(fs.StreamByName("Dry")).To(BeIdenticalTo(out))
		Expect(fs.Streams()).To(HaveLen(2))

		impostor := thermo.NewStream("Wet", reg)
		other := &dryerUnit{
			UnitBase: flowsheet.NewUnitBase(
				"DR2", dryerKind,
				[]*thermo.Stream{impostor},
				[]*thermo.Stream{thermo.NewStream("Dry2", reg)},
			),
		}

		Expect(func() { fs.RegisterUnit(other) }).To(Panic())
	})
})
