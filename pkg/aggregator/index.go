package aggregator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethpandaops/validator-info/pkg/validatorinfo"
	"github.com/sirupsen/logrus"
)

// Index maps secp keys to validator names, entries keep the order they were first added in.
type Index struct {
	network string
	logger  logrus.FieldLogger
	names   map[string]string
	order   []string
	skipped int
}

type Entry struct {
	Secp string
	Name string
}

func NewIndex(network string, logger logrus.FieldLogger) *Index {
	return &Index{
		network: network,
		logger:  logger.WithField("module", "aggregator").WithField("network", network),
		names:   map[string]string{},
		order:   []string{},
	}
}

func (idx *Index) Network() string {
	return idx.network
}

// LoadDirectory adds all *.json entries of dir. Unreadable or malformed files are skipped with a warning.
func (idx *Index) LoadDirectory(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("error listing validator entries in %v: %w", dir, err)
	}

	nameCount := 0

	for _, file := range files {
		if err := idx.loadFile(file); err != nil {
			idx.logger.WithError(err).Warnf("Failed to read %v", file)
			idx.skipped++

			continue
		}

		nameCount++
	}

	idx.logger.Infof("loaded %v validator names from %v", nameCount, dir)

	return nil
}

func (idx *Index) loadFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	record, err := validatorinfo.ParseRecord(data)
	if err != nil {
		return err
	}

	// a missing secp indexes under the empty key, any other non-string value is unusable
	if record.Has(validatorinfo.FieldSecp) {
		if _, ok := record.String(validatorinfo.FieldSecp); !ok {
			return fmt.Errorf("secp is %v, expected string", validatorinfo.TypeName(record.Fields[validatorinfo.FieldSecp]))
		}
	}

	idx.Add(record.Secp(), record.DisplayName())

	return nil
}

// Add sets the name of a secp key. A later name for the same key replaces the earlier one.
func (idx *Index) Add(secp, name string) {
	if previous, exists := idx.names[secp]; exists {
		idx.logger.Debugf("duplicate secp key %v: replacing name %q with %q", secp, previous, name)
	} else {
		idx.order = append(idx.order, secp)
	}

	idx.names[secp] = name
}

func (idx *Index) Len() int {
	return len(idx.order)
}

// Skipped returns the number of files that could not be loaded.
func (idx *Index) Skipped() int {
	return idx.skipped
}

func (idx *Index) Entries() []Entry {
	entries := make([]Entry, 0, len(idx.order))
	for _, secp := range idx.order {
		entries = append(entries, Entry{
			Secp: secp,
			Name: idx.names[secp],
		})
	}

	return entries
}
