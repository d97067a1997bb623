// Package export provides the runner that serializes a month's record.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/tally/pkg/store"
)

// Export writes the month's record to stdout as JSON or YAML.
type Export struct {
	Year   int
	Month  time.Month
	Format string
	Store  *store.Store
}

// Do resolves the record and prints it in the requested format.
func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no store")
	}

	rec, err := n.Store.Resolve(n.Year, n.Month)
	if err != nil {
		return err
	}

	switch n.Format {
	case "", "json":
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(rec)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown format %q, expected json or yaml", n.Format)
	}

	return nil
}
