// Shared helpers for chairside CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/praxos/chairside/internal/store"
	"github.com/praxos/chairside/pkg/types"
)

// attachStore resolves the data directory and attaches the store. The
// caller must defer st.Detach().
func attachStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	st := store.New()
	cfg := types.Config{
		DataDir:    dataDir,
		QuotaBytes: configQuotaBytes,
	}
	if err := st.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return st, nil
}

// parseFields turns key=value arguments into a patch map. Values that parse
// as JSON are used structurally (numbers, booleans, arrays); everything
// else stays a string.
func parseFields(args []string) (map[string]any, error) {
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid field %q (expected key=value)", arg)
		}
		var parsed any
		if err := json.Unmarshal([]byte(parts[1]), &parsed); err != nil {
			parsed = parts[1]
		}
		fields[parts[0]] = parsed
	}
	return fields, nil
}

// printRecord writes v as indented JSON when --json is set, otherwise via
// the provided plain formatter.
func printRecord(v any, plain func()) error {
	if !flagJSON {
		plain()
		return nil
	}
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
