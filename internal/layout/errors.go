package layout

import "fmt"

// ConfigError reports a configuration that cannot produce a valid page:
// margins larger than their slot, a paper size with a non-positive
// dimension, or an unknown layout variant. It is fatal to the placement
// call; the engine never clamps its way around a bad configuration.
type ConfigError struct {
	Page   int    // 1-based page number, 0 when not page-specific
	Slot   int    // slot index, -1 when not slot-specific
	Reason string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Page > 0 && e.Slot >= 0:
		return fmt.Sprintf("layout config: page %d slot %d: %s", e.Page, e.Slot, e.Reason)
	case e.Page > 0:
		return fmt.Sprintf("layout config: page %d: %s", e.Page, e.Reason)
	default:
		return fmt.Sprintf("layout config: %s", e.Reason)
	}
}
