package park

import (
	"os"

	"github.com/hansbonini/parktools/pkg/common"
	"gopkg.in/yaml.v3"
)

// Load reads a park state tree from a YAML file
func Load(filename string) (*State, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToReadParkFile, err)
	}
	return Parse(data)
}

// Parse decodes a park state tree from YAML bytes
func Parse(data []byte) (*State, error) {
	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, common.FormatError(common.ErrFailedToParseYAML, err)
	}
	common.LogDebug(common.DebugParkStateStats,
		len(state.TileElements), len(state.Sprites), len(state.Rides))
	return &state, nil
}
