package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONRenderer emits the full ReviewSet as an order-preserving JSON document.
type JSONRenderer struct{}

func (j *JSONRenderer) Write(w io.Writer, set *ReviewSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// ParseJSON reads a ReviewSet back from its JSON rendering.
func ParseJSON(data []byte) (*ReviewSet, error) {
	var set ReviewSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing review set: %w", err)
	}
	return &set, nil
}
