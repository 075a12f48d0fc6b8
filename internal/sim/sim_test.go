package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/snowsim/internal/config"
	"github.com/san-kum/snowsim/internal/divertor"
	"github.com/san-kum/snowsim/internal/ecrh"
	"github.com/san-kum/snowsim/internal/sim"
)

var _ = Describe("Run", func() {
	Context("with the default ITER-edge scenario", func() {
		var res sim.Result

		BeforeEach(func() {
			res = sim.Run(config.DefaultConfig())
		})

		It("evaluates the toroidal-only field at the strike point", func() {
			Expect(res.FieldTotal).To(BeNumerically("~", 5.3*6.2/8.0, 1e-9))
		})

		It("clamps flux expansion to the realistic range", func() {
			Expect(res.FluxExpansion).To(BeNumerically(">=", divertor.FluxExpansionMin))
			Expect(res.FluxExpansion).To(BeNumerically("<=", divertor.FluxExpansionMax))
		})

		It("computes the edge optical depth and absorption", func() {
			Expect(res.OpticalDepth).To(BeNumerically("~", 1.23225, 1e-9))
			Expect(res.ECRHEfficiency).To(BeNumerically("~", 1-math.Exp(-1.23225), 1e-9))
			Expect(res.ECRHEfficiency).To(BeNumerically("<=", ecrh.AbsorptionCap))
		})

		It("derives the heat flux chain consistently", func() {
			cfg := config.DefaultConfig()
			Expect(res.PowerToDivertor).To(BeNumerically("~", cfg.HeatingPower*(1-res.ECRHEfficiency), 1e-12))
			Expect(res.RawHeatFlux).To(BeNumerically("~", res.PowerToDivertor/cfg.WettedArea, 1e-12))
			Expect(res.FinalHeatFlux).To(BeNumerically("~", res.RawHeatFlux/res.FluxExpansion, 1e-12))
			Expect(res.SafetyMargin).To(BeNumerically("~", divertor.ITERLimit/res.FinalHeatFlux, 1e-9))
		})

		It("stays well inside the ITER limit", func() {
			Expect(res.Viable).To(BeTrue())
			Expect(res.FinalHeatFlux).To(BeNumerically("<", divertor.ITERLimit))
			Expect(res.SafetyMargin).To(BeNumerically(">", 1.0))
		})

		It("is deterministic across invocations", func() {
			Expect(sim.Run(config.DefaultConfig())).To(Equal(res))
		})
	})

	Context("with scenario presets", func() {
		It("keeps every preset within the physics bounds", func() {
			for _, name := range config.ListPresets() {
				res := sim.Run(config.GetPreset(name))
				Expect(res.FluxExpansion).To(And(
					BeNumerically(">=", divertor.FluxExpansionMin),
					BeNumerically("<=", divertor.FluxExpansionMax)), name)
				Expect(res.ECRHEfficiency).To(And(
					BeNumerically(">=", 0.0),
					BeNumerically("<=", ecrh.AbsorptionCap)), name)
			}
		})

		It("sends more power to the divertor at high heating power", func() {
			base := sim.Run(config.GetPreset("iter-edge"))
			high := sim.Run(config.GetPreset("high-power"))
			Expect(high.PowerToDivertor).To(BeNumerically(">", base.PowerToDivertor))
		})
	})
})
