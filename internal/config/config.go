package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/androclassic/quantum-particle-simulation/internal/engine"
	"github.com/androclassic/quantum-particle-simulation/internal/grid"
	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
	"github.com/androclassic/quantum-particle-simulation/internal/wavepacket"
)

const (
	DefaultDt        = 0.005
	DefaultSteps     = 2000
	DefaultSaveEvery = 100
	DefaultMass      = 1.0
	DefaultPoints    = 512
	DefaultWidth     = 0.5
)

type Config struct {
	Scenario      string          `yaml:"scenario"`
	Integrator    string          `yaml:"integrator"`
	Dt            float64         `yaml:"dt"`
	ImaginaryTime bool            `yaml:"imaginary_time"`
	Steps         int             `yaml:"steps"`
	SaveEvery     int             `yaml:"save_every"`
	Normalize     bool            `yaml:"normalize"`
	Mass          float64         `yaml:"mass"`
	Grid          GridConfig      `yaml:"grid"`
	Packet        PacketConfig    `yaml:"packet"`
	Potential     PotentialConfig `yaml:"potential"`
	Eigen         EigenConfig     `yaml:"eigen"`
}

type GridConfig struct {
	Dim  int     `yaml:"dim"`
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	NX   int     `yaml:"nx"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
	NY   int     `yaml:"ny"`
}

type PacketConfig struct {
	Center    float64 `yaml:"center"`
	CenterY   float64 `yaml:"center_y"`
	Width     float64 `yaml:"width"`
	WidthY    float64 `yaml:"width_y"`
	Momentum  float64 `yaml:"momentum"`
	MomentumY float64 `yaml:"momentum_y"`
}

type PotentialConfig struct {
	Type   string  `yaml:"type"` // none, harmonic, barrier, well, double_well
	Omega  float64 `yaml:"omega"`
	OmegaY float64 `yaml:"omega_y"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	X0     float64 `yaml:"x0"`
	X1     float64 `yaml:"x1"`
	A      float64 `yaml:"a"`
	B      float64 `yaml:"b"`
}

type EigenConfig struct {
	Count int `yaml:"count"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario:   "free",
		Integrator: "rk4",
		Dt:         DefaultDt,
		Steps:      DefaultSteps,
		SaveEvery:  DefaultSaveEvery,
		Normalize:  true,
		Mass:       DefaultMass,
		Grid:       GridConfig{Dim: 1, XMin: -10, XMax: 10, NX: DefaultPoints, YMin: -10, YMax: 10, NY: DefaultPoints},
		Packet:     PacketConfig{Width: DefaultWidth, WidthY: DefaultWidth},
		Potential:  PotentialConfig{Type: "none", Omega: 1, OmegaY: 1},
		Eigen:      EigenConfig{Count: 4},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// TimeStep maps the real-valued dt onto the complex step the engine
// takes: real time by default, -i*dt in imaginary-time mode.
func (c *Config) TimeStep() complex128 {
	if c.ImaginaryTime {
		return complex(0, -c.Dt)
	}
	return complex(c.Dt, 0)
}

func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Method:    c.Integrator,
		Dt:        c.TimeStep(),
		Steps:     c.Steps,
		Mass:      c.Mass,
		Normalize: c.Normalize,
		SaveEvery: c.SaveEvery,
	}
}

// BuildGrid constructs the grid described by the configuration.
func (c *Config) BuildGrid() (grid.Grid, error) {
	switch c.Grid.Dim {
	case 1:
		return grid.New1D(c.Grid.XMin, c.Grid.XMax, c.Grid.NX)
	case 2:
		return grid.New2D(c.Grid.XMin, c.Grid.XMax, c.Grid.NX, c.Grid.YMin, c.Grid.YMax, c.Grid.NY)
	default:
		return nil, quantum.NewConfigError(quantum.ErrGridParams, "dim must be 1 or 2, got %d", c.Grid.Dim)
	}
}

// BuildPotential samples the configured potential on g. A "none" type
// yields the nil free-particle potential.
func (c *Config) BuildPotential(g grid.Grid) (quantum.Potential, error) {
	p := c.Potential
	switch p.Type {
	case "", "none":
		return nil, nil
	case "harmonic":
		switch t := g.(type) {
		case *grid.Grid1D:
			return wavepacket.Harmonic1D(t, c.Mass, p.Omega), nil
		case *grid.Grid2D:
			return wavepacket.Harmonic2D(t, c.Mass, p.Omega, p.OmegaY), nil
		}
	case "barrier":
		if t, ok := g.(*grid.Grid1D); ok {
			return wavepacket.Barrier1D(t, p.X0, p.X1, p.Height), nil
		}
	case "well":
		if t, ok := g.(*grid.Grid1D); ok {
			return wavepacket.Well1D(t, p.X0, p.X1, p.Depth), nil
		}
	case "double_well":
		if t, ok := g.(*grid.Grid1D); ok {
			return wavepacket.DoubleWell1D(t, p.A, p.B), nil
		}
	default:
		return nil, quantum.NewConfigError(quantum.ErrConfig, "unknown potential type %q", p.Type)
	}
	return nil, quantum.NewConfigError(quantum.ErrConfig,
		"potential type %q not available on a %dD grid", p.Type, g.Dim())
}

// BuildPacket constructs the configured initial wave packet on g.
func (c *Config) BuildPacket(g grid.Grid) (quantum.Wavefunction, error) {
	switch t := g.(type) {
	case *grid.Grid1D:
		return wavepacket.Gaussian1D(t, c.Packet.Center, c.Packet.Width, c.Packet.Momentum), nil
	case *grid.Grid2D:
		return wavepacket.Gaussian2D(t, c.Packet.Center, c.Packet.CenterY,
			c.Packet.Width, c.Packet.WidthY, c.Packet.Momentum, c.Packet.MomentumY), nil
	default:
		return nil, quantum.NewConfigError(quantum.ErrGridParams, "unsupported grid type")
	}
}
