// Package validation checks the file arguments of batch commands.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateInputFile checks that path exists and is a regular file.
func ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking input file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path %s is not a regular file", path)
	}
	return nil
}

// ValidateOutputFile checks that output is not a directory and does not point
// at the input file.
func ValidateOutputFile(output, input string) error {
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return fmt.Errorf("output path %s is a directory", output)
	}

	absOut, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("error resolving output path %s: %w", output, err)
	}
	absIn, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("error resolving input path %s: %w", input, err)
	}
	if absOut == absIn {
		return fmt.Errorf("output file must differ from input file: %s", output)
	}
	return nil
}
