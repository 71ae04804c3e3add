package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer
	Err io.Writer
}

// Success outputs a successful result. JSON mode wraps data under key;
// otherwise human writes the readable form.
func (f *OutputFormatter) Success(key string, data any, human func(w io.Writer)) error {
	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": true,
			key:       data,
		})
	}
	human(f.Out)
	return nil
}

// Fail reports err in the selected format and returns it wrapped with its exit code
func (f *OutputFormatter) Fail(err error) error {
	exit, code := Classify(err)

	if f.JSON {
		if encErr := json.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    code,
				"message": err.Error(),
			},
		}); encErr != nil {
			return encErr
		}
	} else {
		fmt.Fprintf(f.Err, "Error: %s\n", err)
	}

	return &CommandError{Code: exit, Err: err}
}
