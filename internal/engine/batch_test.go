package engine

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/androclassic/quantum-particle-simulation/internal/grid"
	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
	"github.com/androclassic/quantum-particle-simulation/internal/wavepacket"
)

func TestRunBatch(t *testing.T) {
	g := NewWithT(t)

	gr, err := grid.New1D(-5, 5, 64)
	g.Expect(err).NotTo(HaveOccurred())

	cfg := DefaultConfig()
	cfg.Steps = 50
	cfg.SaveEvery = 25

	eng, err := New(gr, nil, cfg)
	g.Expect(err).NotTo(HaveOccurred())

	seeds := []quantum.Wavefunction{
		wavepacket.Gaussian1D(gr, -1, 0.5, 0),
		wavepacket.Gaussian1D(gr, 0, 0.5, 1),
		wavepacket.Gaussian1D(gr, 1, 0.5, -1),
	}

	traces, err := eng.RunBatch(context.Background(), seeds, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(traces).To(HaveLen(3))

	dv := gr.CellVolume()
	for i, tr := range traces {
		g.Expect(tr.States).To(HaveLen(3), "seed %d", i)
		g.Expect(tr.Final().NormSq(dv)).To(BeNumerically("~", 1, 1e-8))
	}

	// Batch runs must match the sequential result bit for bit.
	solo, err := eng.Run(seeds[1], nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(traces[1].Final()).To(Equal(solo.Final()))
}

func TestRunBatchCancelled(t *testing.T) {
	g := NewWithT(t)

	gr, err := grid.New1D(-5, 5, 32)
	g.Expect(err).NotTo(HaveOccurred())

	eng, err := New(gr, nil, DefaultConfig())
	g.Expect(err).NotTo(HaveOccurred())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seeds := []quantum.Wavefunction{wavepacket.Gaussian1D(gr, 0, 0.5, 0)}
	_, err = eng.RunBatch(ctx, seeds, nil)
	g.Expect(err).To(MatchError(context.Canceled))
}
