package config

var Presets = map[string]*Config{
	// Free Gaussian packet spreading symmetrically over a long run.
	"free_spread": {
		Scenario: "free_spread", Integrator: "rk4", Dt: 0.1, Steps: 40000, SaveEvery: 1000,
		Normalize: true, Mass: 1.0,
		Grid:      GridConfig{Dim: 1, XMin: -10, XMax: 10, NX: 5000},
		Packet:    PacketConfig{Center: 0, Width: 0.5, Momentum: 0},
		Potential: PotentialConfig{Type: "none"},
	},
	// Offset packet sloshing in a harmonic trap.
	"harmonic_trap": {
		Scenario: "harmonic_trap", Integrator: "rk4", Dt: 0.005, Steps: 4000, SaveEvery: 100,
		Normalize: true, Mass: 1.0,
		Grid:      GridConfig{Dim: 1, XMin: -5, XMax: 5, NX: 256},
		Packet:    PacketConfig{Center: 1.0, Width: 0.5},
		Potential: PotentialConfig{Type: "harmonic", Omega: 1.0},
	},
	// Packet with momentum hitting a rectangular barrier.
	"barrier_scatter": {
		Scenario: "barrier_scatter", Integrator: "rk4", Dt: 0.002, Steps: 8000, SaveEvery: 200,
		Normalize: true, Mass: 1.0,
		Grid:      GridConfig{Dim: 1, XMin: -20, XMax: 20, NX: 1024},
		Packet:    PacketConfig{Center: -8, Width: 1.0, Momentum: 2.0},
		Potential: PotentialConfig{Type: "barrier", X0: 0, X1: 1, Height: 2.0},
	},
	// Imaginary-time extraction of the lowest trap eigenstates.
	"eigen_ladder": {
		Scenario: "eigen_ladder", Integrator: "rk4", Dt: 0.005, ImaginaryTime: true,
		Steps: 3000, SaveEvery: 0, Normalize: true, Mass: 1.0,
		Grid:      GridConfig{Dim: 1, XMin: -5, XMax: 5, NX: 128},
		Packet:    PacketConfig{Center: 0.3, Width: 0.7},
		Potential: PotentialConfig{Type: "harmonic", Omega: 1.0},
		Eigen:     EigenConfig{Count: 4},
	},
	// 2D anisotropic trap.
	"trap_2d": {
		Scenario: "trap_2d", Integrator: "rk4", Dt: 0.002, Steps: 5000, SaveEvery: 250,
		Normalize: true, Mass: 1.0,
		Grid:      GridConfig{Dim: 2, XMin: -5, XMax: 5, NX: 64, YMin: -5, YMax: 5, NY: 64},
		Packet:    PacketConfig{Center: 1.0, CenterY: 0, Width: 0.6, WidthY: 0.6},
		Potential: PotentialConfig{Type: "harmonic", Omega: 1.0, OmegaY: 1.5},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
