package config

import (
	"errors"
	"fmt"

	"github.com/waozixyz/formview/internal/logging"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Form == "" {
		errs = append(errs, errors.New("form path is required"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.Scale < 1 {
		errs = append(errs, fmt.Errorf("window scale must be at least 1, got %g", c.Window.Scale))
	}
	if c.Window.Border < 0 {
		errs = append(errs, fmt.Errorf("window border must not be negative, got %d", c.Window.Border))
	}
	if c.Term.Width < 0 {
		errs = append(errs, fmt.Errorf("term width must not be negative, got %d", c.Term.Width))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
