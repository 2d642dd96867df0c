package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// propsFlags reads a property bag from --props or --props-file.
type propsFlags struct {
	inline string
	file   string
}

func (f *propsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.inline, "props", "p", "", "Props as a JSON object")
	cmd.Flags().StringVar(&f.file, "props-file", "", "Read props from a JSON file")
	cmd.MarkFlagsMutuallyExclusive("props", "props-file")
}

// payload returns the JSON payload, "{}" when no props were given.
func (f *propsFlags) payload() (string, error) {
	raw := f.inline
	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return "", err
		}
		raw = string(data)
	}
	if raw == "" {
		return "{}", nil
	}
	if !json.Valid([]byte(raw)) {
		return "", fmt.Errorf("props are not valid JSON")
	}
	return raw, nil
}

// bag decodes the payload into a generic map.
func (f *propsFlags) bag() (map[string]any, error) {
	payload, err := f.payload()
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, fmt.Errorf("props must be a JSON object: %w", err)
	}
	return out, nil
}
