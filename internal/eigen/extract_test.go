package eigen_test

import (
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/androclassic/quantum-particle-simulation/internal/analysis"
	"github.com/androclassic/quantum-particle-simulation/internal/eigen"
	"github.com/androclassic/quantum-particle-simulation/internal/engine"
	"github.com/androclassic/quantum-particle-simulation/internal/grid"
	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
	"github.com/androclassic/quantum-particle-simulation/internal/wavepacket"
)

var _ = Describe("Extractor", func() {
	var (
		g     *grid.Grid1D
		v     quantum.Potential
		cfg   engine.Config
		ext   *eigen.Extractor
		trial func(k int) quantum.Wavefunction
	)

	BeforeEach(func() {
		var err error
		g, err = grid.New1D(-5, 5, 64)
		Expect(err).NotTo(HaveOccurred())
		v = wavepacket.Harmonic1D(g, 1.0, 1.0)

		cfg = engine.Config{Method: "rk4", Dt: 0.01, Steps: 4000, Mass: 1.0}
		ext, err = eigen.New(g, v, cfg)
		Expect(err).NotTo(HaveOccurred())

		// Slightly off-center packet: generic, overlaps every parity.
		trial = func(k int) quantum.Wavefunction {
			return wavepacket.Gaussian1D(g, 0.3, 0.7, 0)
		}
	})

	Describe("GroundState", func() {
		It("relaxes to a normalized symmetric state", func() {
			ground, err := ext.GroundState(trial(0))
			Expect(err).NotTo(HaveOccurred())

			dv := g.CellVolume()
			Expect(ground.NormSq(dv)).To(BeNumerically("~", 1.0, 1e-8))

			// The trap is even, so the ground state magnitude must be
			// symmetric about the origin despite the off-center trial.
			n := len(ground)
			for i := 0; i < n/2; i++ {
				Expect(cmplx.Abs(ground[i])).To(BeNumerically("~", cmplx.Abs(ground[n-1-i]), 1e-6))
			}

			// A real trial state stays real under imaginary time.
			for i := range ground {
				Expect(imag(ground[i])).To(BeNumerically("~", 0, 1e-10))
			}

			Expect(analysis.Energy(g, v, ground, 1.0)).To(BeNumerically(">", 0))
		})
	})

	Describe("Spectrum", func() {
		It("walks up the spectrum in energy order", func() {
			states, err := ext.Spectrum(trial, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(states).To(HaveLen(3))

			dv := g.CellVolume()
			energies := make([]float64, len(states))
			for k, s := range states {
				Expect(s.NormSq(dv)).To(BeNumerically("~", 1.0, 1e-8))
				energies[k] = analysis.Energy(g, v, s, 1.0)
			}

			Expect(energies[0]).To(BeNumerically("<", energies[1]))
			Expect(energies[1]).To(BeNumerically("<", energies[2]))
		})

		It("produces mutually orthogonal states", func() {
			states, err := ext.Spectrum(trial, 3)
			Expect(err).NotTo(HaveOccurred())

			dv := g.CellVolume()
			for i := 0; i < len(states); i++ {
				for j := i + 1; j < len(states); j++ {
					Expect(analysis.Overlap(states[i], states[j], dv)).To(BeNumerically("<", 1e-6))
				}
			}
		})

		It("rejects a non-positive count", func() {
			_, err := ext.Spectrum(trial, 0)
			Expect(err).To(MatchError(quantum.ErrConfig))
		})
	})

	Describe("Next", func() {
		It("stays orthogonal to the deflation set", func() {
			ground, err := ext.GroundState(trial(0))
			Expect(err).NotTo(HaveOccurred())

			first, err := ext.Next(trial(1), []quantum.Wavefunction{ground})
			Expect(err).NotTo(HaveOccurred())

			dv := g.CellVolume()
			Expect(analysis.Overlap(ground, first, dv)).To(BeNumerically("<", 1e-6))
			Expect(first.NormSq(dv)).To(BeNumerically("~", 1.0, 1e-8))
		})
	})

	Describe("PhaseOnly", func() {
		realTimeTrace := func(psi0 quantum.Wavefunction) *engine.Trace {
			rcfg := engine.Config{Method: "rk4", Dt: 0.01, Steps: 200, Mass: 1.0, Normalize: true, SaveEvery: 50}
			eng, err := engine.New(g, v, rcfg)
			Expect(err).NotTo(HaveOccurred())
			trace, err := eng.Run(psi0, nil)
			Expect(err).NotTo(HaveOccurred())
			return trace
		}

		It("accepts an extracted eigenstate evolved in real time", func() {
			ground, err := ext.GroundState(trial(0))
			Expect(err).NotTo(HaveOccurred())

			trace := realTimeTrace(ground)
			Expect(eigen.PhaseOnly(trace, 1e-3)).To(BeTrue())

			// The phase itself must have moved: the final snapshot is
			// no longer purely real at the peak.
			final := trace.Final()
			peak := 0
			for i := range final {
				if cmplx.Abs(final[i]) > cmplx.Abs(final[peak]) {
					peak = i
				}
			}
			Expect(math.Abs(imag(final[peak]))).To(BeNumerically(">", 0.01))
		})

		It("rejects a non-stationary state", func() {
			slosh := wavepacket.Gaussian1D(g, 1.5, 0.5, 0)
			trace := realTimeTrace(slosh)
			Expect(eigen.PhaseOnly(trace, 1e-3)).To(BeFalse())
		})
	})

	Describe("New", func() {
		It("rejects a zero time step", func() {
			bad := cfg
			bad.Dt = 0
			_, err := eigen.New(g, v, bad)
			Expect(err).To(MatchError(quantum.ErrConfig))
		})
	})
})
