package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sadopc/ticktock/internal/timesheet"
)

func WriteYAML(w io.Writer, records []timesheet.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(records, time.Now())); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return enc.Close()
}

func ToYAML(records []timesheet.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create yaml file: %w", err)
	}
	defer f.Close()

	if err := WriteYAML(f, records); err != nil {
		return fmt.Errorf("write yaml file: %w", err)
	}
	return nil
}
