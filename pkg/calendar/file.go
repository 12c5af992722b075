package calendar

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the layout of holidays in a holiday file.
const DateLayout = "2006-01-02"

type holidayFile struct {
	Holidays []string `yaml:"holidays"`
}

// Parse reads a YAML document of the form
//
//	holidays:
//	  - "2025-12-26"
//
// and returns the listed dates.
func Parse(r io.Reader) ([]time.Time, error) {
	var f holidayFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not decode holiday file: %w", err)
	}

	days := make([]time.Time, 0, len(f.Holidays))
	for _, s := range f.Holidays {
		d, err := time.Parse(DateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("could not parse holiday %q: %w", s, err)
		}
		days = append(days, d)
	}

	return days, nil
}

// LoadFile parses the holiday file at path.
func LoadFile(path string) ([]time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open holiday file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
