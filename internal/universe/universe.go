// Package universe holds the sector to candidate-ticker table used by
// the market scanner. The table is static per process: either the
// built-in default or a YAML file loaded at startup.
package universe

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultSector = "technology"

type Universe struct {
	Sectors map[string][]string `yaml:"sectors"`
}

func Default() *Universe {
	return &Universe{
		Sectors: map[string][]string{
			"technology": {"PLTR", "SNOW", "CRWD", "NET", "DDOG", "ZS"},
			"healthcare": {"TDOC", "VEEV", "HIMS"},
			"finance":    {"SOFI", "UPST", "AFRM"},
		},
	}
}

// Load reads a sector table from a YAML file. An empty path returns
// the built-in default table.
func Load(path string) (*Universe, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read universe file: %w", err)
	}

	var u Universe
	if err := yaml.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("parse universe file: %w", err)
	}
	if len(u.Sectors) == 0 {
		return nil, fmt.Errorf("universe file %s defines no sectors", path)
	}

	return &u, nil
}

// Candidates returns up to limit tickers for a sector. Unknown sectors
// fall back to the default sector's list.
func (u *Universe) Candidates(sector string, limit int) []string {
	tickers, ok := u.Sectors[strings.ToLower(sector)]
	if !ok {
		tickers = u.Sectors[DefaultSector]
	}
	if limit > 0 && len(tickers) > limit {
		tickers = tickers[:limit]
	}
	return tickers
}
