package aggregator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ethpandaops/validator-info/pkg/config"
	"github.com/sirupsen/logrus"
)

// Generator rebuilds the secp -> name lookup tables of all configured networks.
type Generator struct {
	config  *config.GenerateConfig
	logger  logrus.FieldLogger
	out     io.Writer
	metrics *Metrics
}

func NewGenerator(cfg *config.GenerateConfig, out io.Writer, logger logrus.FieldLogger) *Generator {
	if out == nil {
		out = io.Discard
	}

	return &Generator{
		config:  cfg,
		logger:  logger,
		out:     out,
		metrics: NewMetrics(),
	}
}

func (g *Generator) Metrics() *Metrics {
	return g.metrics
}

func (g *Generator) Run() error {
	if err := os.MkdirAll(g.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory %v: %w", g.config.OutputDir, err)
	}

	for _, network := range g.config.Networks {
		idx, err := g.GenerateNetwork(network)
		if err != nil {
			return err
		}

		g.metrics.ObserveIndex(idx)
	}

	g.metrics.ObserveRun()

	if g.config.MetricsFile != "" {
		if err := g.metrics.WriteTextfile(g.config.MetricsFile); err != nil {
			return fmt.Errorf("error writing metrics file %v: %w", g.config.MetricsFile, err)
		}
	}

	return nil
}

// GenerateNetwork reads <rootDir>/<network> and writes <network>_validators.json and .csv.
func (g *Generator) GenerateNetwork(network string) (*Index, error) {
	idx := NewIndex(network, g.logger)

	if err := idx.LoadDirectory(filepath.Join(g.config.RootDir, network)); err != nil {
		return nil, err
	}

	jsonFile := filepath.Join(g.config.OutputDir, fmt.Sprintf("%v_validators.json", network))
	if err := idx.WriteJSON(jsonFile); err != nil {
		return nil, err
	}

	fmt.Fprintf(g.out, "Generated %v with %v validators\n", jsonFile, idx.Len())

	csvFile := filepath.Join(g.config.OutputDir, fmt.Sprintf("%v_validators.csv", network))
	if err := idx.WriteCSV(csvFile); err != nil {
		return nil, err
	}

	fmt.Fprintf(g.out, "Generated %v with %v validators\n", csvFile, idx.Len())

	return idx, nil
}
