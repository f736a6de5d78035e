package pipeline

import "strings"

// Assemble builds the output filename from Global.component_order (spec.md
// §4.6 Assemble, §6 "Output filename grammar"). Empty fields contribute
// nothing and no adjacent separator; the extension is attached verbatim.
func Assemble(c Components, cfg *PipelineConfig, excludeManagementFlag bool) string {
	name := c.CanonicalName
	switch cfg.CategoryPlacement {
	case "prefix":
		if c.CategoryName != "" {
			name = c.CategoryName + " " + name
		}
	case "suffix":
		if c.CategoryName != "" {
			name = name + " " + c.CategoryName
		}
	}

	categoryField := ""
	if cfg.CategoryPlacement == "separate_component" && cfg.CategoryAppendToFilename {
		categoryField = c.CategoryID
	}

	managementField := ""
	if cfg.ManagementEnabled && !excludeManagementFlag {
		// Spec §8/§9: the source's labeling is counterintuitive and is
		// preserved rather than corrected.
		if c.IsManagement {
			managementField = cfg.ManagementNoFlag
		} else {
			managementField = cfg.ManagementYesFlag
		}
	}

	fields := map[string]string{
		"id":         c.UserID,
		"name":       name,
		"remainder":  c.Remainder,
		"date":       c.Date,
		"category":   categoryField,
		"management": managementField,
	}

	var parts []string
	for _, comp := range cfg.ComponentOrder {
		if v := fields[comp]; v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, cfg.ComponentSep) + c.Extension
}
