package internal

import "errors"

// ScanOptions - public options from CLI.
type ScanOptions struct {
	Filenames []string
	Workers   int
	Archives  bool
}

// Validate checks invariants.
func (o *ScanOptions) Validate() error {
	if o.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}

// Prepare sets sensible defaults. One worker keeps scanning strictly
// sequential in input order, which is the default behavior.
func (o *ScanOptions) Prepare() {
	if o.Workers <= 0 {
		o.Workers = 1
	}
}
