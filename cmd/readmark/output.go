package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// printStructured writes v to stdout in the selected output format.
// Returns false for "text" so callers fall through to their plain rendering.
func printStructured(v any) (bool, error) {
	switch outputFormat {
	case "text":
		return false, nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return true, err
	case "json":
		data, err := sonic.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Println(string(data))
		return true, err
	default:
		return true, fmt.Errorf("unknown output format: %s", outputFormat)
	}
}
