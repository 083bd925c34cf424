// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/amulya/writer-engine/pkg/types"
)

// RunFile is the on-disk representation of a pipeline run: the request that
// produced it and the accumulated result. A run can be saved to a file and
// its request reloaded later without retyping flags. PDF bytes are not
// stored; re-render from the saved essay instead.
type RunFile struct {
	Request types.WriteRequest `yaml:"request"`
	Result  types.WriteResult  `yaml:"result,omitempty"`
	Saved   time.Time          `yaml:"saved,omitempty"`
}

// WriteRunFile saves a request and its result to a YAML file.
func WriteRunFile(path string, req types.WriteRequest, res types.WriteResult) error {
	rf := RunFile{
		Request: req,
		Result:  res,
		Saved:   time.Now(),
	}
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a previously saved run file from disk.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &rf, nil
}
