package config

import "fmt"

// validCaseNormalizations enumerates Global.case_normalization per spec.md §3.
var validCaseNormalizations = map[string]bool{
	"titlecase": true,
	"lowercase": true,
	"uppercase": true,
	"asis":      true,
}

// validComponents enumerates Global.component_order entries per spec.md §3.
var validComponents = map[string]bool{
	"id":         true,
	"name":       true,
	"remainder":  true,
	"date":       true,
	"category":   true,
	"management": true,
}

// validPlacements enumerates Category.placement per spec.md §3.
var validPlacements = map[string]bool{
	"prefix":            true,
	"suffix":            true,
	"separate_component": true,
}

// validDatePrioritySources enumerates Date.date_priority_order entries.
var validDatePrioritySources = map[string]bool{
	"filename":   true,
	"foldername": true,
	"modified":   true,
	"created":    true,
}

// Validate checks that every enumerated option in the config is one of the
// recognized values from spec.md §3. This is a config error (fatal,
// per spec.md §7) when it fails.
func (c *Config) Validate() error {
	if !validCaseNormalizations[c.Global.CaseNormalization] {
		return fmt.Errorf("vcrename: invalid global.case_normalization %q", c.Global.CaseNormalization)
	}
	if len(c.Global.ComponentOrder) == 0 {
		return fmt.Errorf("vcrename: global.component_order must not be empty")
	}
	seen := make(map[string]bool, len(c.Global.ComponentOrder))
	for _, comp := range c.Global.ComponentOrder {
		if !validComponents[comp] {
			return fmt.Errorf("vcrename: invalid global.component_order entry %q", comp)
		}
		if seen[comp] {
			return fmt.Errorf("vcrename: duplicate global.component_order entry %q", comp)
		}
		seen[comp] = true
	}
	if !validPlacements[c.Category.Placement] {
		return fmt.Errorf("vcrename: invalid category.placement %q", c.Category.Placement)
	}
	for _, src := range c.Date.DatePriorityOrder {
		if !validDatePrioritySources[src] {
			return fmt.Errorf("vcrename: invalid date.date_priority_order entry %q", src)
		}
	}
	if len(c.Global.Separators.Input) == 0 {
		return fmt.Errorf("vcrename: global.separators.input must not be empty")
	}
	if c.Global.Separators.Normalized == "" {
		return fmt.Errorf("vcrename: global.separators.normalized must not be empty")
	}
	return nil
}
