// Package config loads vcrename's YAML configuration: separators, date
// formats, name fuzzy substitutions, component ordering, mapping file
// locations and column names — the enumerated option set of spec.md §3.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds every recognized vcrename configuration option.
type Config struct {
	Global         GlobalConfig          `mapstructure:"global" yaml:"global"`
	Date           DateConfig            `mapstructure:"date" yaml:"date"`
	Name           NameConfig            `mapstructure:"name" yaml:"name"`
	UserMapping    UserMappingConfig     `mapstructure:"user_mapping" yaml:"user_mapping"`
	CategoryMap    CategoryMappingConfig `mapstructure:"category_mapping" yaml:"category_mapping"`
	ManagementFlag ManagementFlagConfig  `mapstructure:"management_flag" yaml:"management_flag"`
	Category       CategoryConfig        `mapstructure:"category" yaml:"category"`
}

// GlobalConfig is spec.md §3 "Global.*".
type GlobalConfig struct {
	Separators        SeparatorsConfig `mapstructure:"separators" yaml:"separators"`
	ComponentOrder    []string         `mapstructure:"component_order" yaml:"component_order"`
	ComponentSep      string           `mapstructure:"component_separator" yaml:"component_separator"`
	CaseNormalization string           `mapstructure:"case_normalization" yaml:"case_normalization"`
	FileExclusions    []string         `mapstructure:"file_exclusions" yaml:"file_exclusions"`
}

// SeparatorsConfig is spec.md §3 "Global.separators.*".
type SeparatorsConfig struct {
	Input      []string `mapstructure:"input" yaml:"input"`
	Normalized string   `mapstructure:"normalized" yaml:"normalized"`
}

// DateConfig is spec.md §3 "Date.*".
type DateConfig struct {
	AllowedFormats             []string `mapstructure:"allowed_formats" yaml:"allowed_formats"`
	NormalizedFormat           string   `mapstructure:"normalized_format" yaml:"normalized_format"`
	NormalizedPrefixFormat     string   `mapstructure:"normalized_prefix_format" yaml:"normalized_prefix_format"`
	NormalizedRangesFormat     string   `mapstructure:"normalized_ranges_format" yaml:"normalized_ranges_format"`
	ExcludeRanges              bool     `mapstructure:"exclude_ranges" yaml:"exclude_ranges"`
	ExcludeRangesSeparators    string   `mapstructure:"exclude_ranges_separators" yaml:"exclude_ranges_separators"`
	ExcludeRangesSeparatorStrs []string `mapstructure:"exclude_ranges_separator_strings" yaml:"exclude_ranges_separator_strings"`
	ExcludeRangesNormalizedSep string   `mapstructure:"exclude_ranges_normalized_separator" yaml:"exclude_ranges_normalized_separator"`
	ExcludedDateByPrefix       []string `mapstructure:"excluded_date_by_prefix" yaml:"excluded_date_by_prefix"`
	DatePriorityOrder          []string `mapstructure:"date_priority_order" yaml:"date_priority_order"`
}

// NameConfig is spec.md §3 "Name.*".
type NameConfig struct {
	ExtractionOrder    []string            `mapstructure:"extraction_order" yaml:"extraction_order"`
	FuzzySubstitutions map[string][]string `mapstructure:"fuzzy_substitutions" yaml:"fuzzy_substitutions"`
}

// UserMappingConfig is spec.md §3 "UserMapping.*" plus the mapping file
// location / column names from §6.
type UserMappingConfig struct {
	Prefix            string `mapstructure:"prefix" yaml:"prefix"`
	ManagementSuffix  string `mapstructure:"management_suffix" yaml:"management_suffix"`
	MappingFile       string `mapstructure:"mapping_file" yaml:"mapping_file"`
	IDColumn          string `mapstructure:"id_column" yaml:"id_column"`
	NameColumn        string `mapstructure:"name_column" yaml:"name_column"`
	CreateIfMissing   bool   `mapstructure:"create_if_missing" yaml:"create_if_missing"`
	FuzzyIndexEnabled bool   `mapstructure:"fuzzy_index_enabled" yaml:"fuzzy_index_enabled"`
}

// CategoryMappingConfig is the mapping file location / column names for
// categories, from §6.
type CategoryMappingConfig struct {
	MappingFile     string `mapstructure:"mapping_file" yaml:"mapping_file"`
	IDColumn        string `mapstructure:"id_column" yaml:"id_column"`
	NameColumn      string `mapstructure:"name_column" yaml:"name_column"`
	CreateIfMissing bool   `mapstructure:"create_if_missing" yaml:"create_if_missing"`
}

// ManagementFlagConfig is spec.md §3 "ManagementFlag.*".
type ManagementFlagConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	YesFlag string `mapstructure:"yes_flag" yaml:"yes_flag"`
	NoFlag  string `mapstructure:"no_flag" yaml:"no_flag"`
}

// CategoryConfig is spec.md §3 "Category.*".
type CategoryConfig struct {
	AppendToFilename bool   `mapstructure:"append_to_filename" yaml:"append_to_filename"`
	Placement        string `mapstructure:"placement" yaml:"placement"`
	CaseInsensitive  bool   `mapstructure:"case_insensitive" yaml:"case_insensitive"`
	FirstLevelOnly   bool   `mapstructure:"first_level_only" yaml:"first_level_only"`
}

// Dump renders the config as YAML, for the `vcrename config` debug
// subcommand.
func (c *Config) Dump() (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("vcrename: marshaling config: %w", err)
	}
	return string(b), nil
}

// Default returns the built-in default configuration. It is deliberately a
// function, not a package variable holding slices, so callers each get
// their own backing arrays and cannot mutate shared defaults.
func Default() Config {
	return Config{
		Global: GlobalConfig{
			Separators: SeparatorsConfig{
				Input:      []string{"_", "-", ".", " "},
				Normalized: " ",
			},
			ComponentOrder:    []string{"id", "name", "remainder", "date", "category", "management"},
			ComponentSep:      "_",
			CaseNormalization: "titlecase",
			FileExclusions:    []string{"*.tmp", "~$*", "*tmp*"},
		},
		Date: DateConfig{
			AllowedFormats:             []string{"%Y-%m-%d", "%d.%m.%Y", "%d %B %Y", "%d.%m.%y"},
			NormalizedFormat:           "%Y-%m-%d",
			NormalizedPrefixFormat:     "%Y.%m.%d",
			NormalizedRangesFormat:     "%Y-%m-%d",
			ExcludeRanges:              true,
			ExcludeRangesSeparators:    "-~",
			ExcludeRangesSeparatorStrs: []string{" to ", " - "},
			ExcludeRangesNormalizedSep: " - ",
			ExcludedDateByPrefix:       []string{"exp", "due", "expiry"},
			DatePriorityOrder:          []string{"filename", "foldername", "modified", "created"},
		},
		Name: NameConfig{
			ExtractionOrder: []string{"shorthand", "initials", "name_components"},
			FuzzySubstitutions: map[string][]string{
				"o": {"0", "ô", "ö", "ó"},
				"e": {"3"},
				"a": {"@", "4", "à", "á", "â", "ä"},
				"s": {"5", "$"},
				"i": {"1", "í", "ì", "î", "ï"},
				"l": {"1", "|"},
				"z": {"2"},
				"t": {"7", "+"},
			},
		},
		UserMapping: UserMappingConfig{
			Prefix:            "",
			ManagementSuffix:  " - MGMT",
			MappingFile:       "config/user_mapping.csv",
			IDColumn:          "user_id",
			NameColumn:        "full_name",
			CreateIfMissing:   true,
			FuzzyIndexEnabled: false,
		},
		CategoryMap: CategoryMappingConfig{
			MappingFile:     "config/category_mapping.csv",
			IDColumn:        "category_id",
			NameColumn:      "category_name",
			CreateIfMissing: false,
		},
		ManagementFlag: ManagementFlagConfig{
			Enabled: true,
			YesFlag: "_yes",
			NoFlag:  "_no",
		},
		Category: CategoryConfig{
			AppendToFilename: true,
			Placement:        "separate_component",
			CaseInsensitive:  true,
			FirstLevelOnly:   true,
		},
	}
}

// Load reads configuration from the given YAML file (if non-empty and it
// exists), layering it over Default(), with environment variable overrides
// under the VC_ prefix (VC_GLOBAL_COMPONENT_SEPARATOR, etc). A missing path
// is not an error: the defaults are returned as-is, matching goneat's
// LoadProjectConfig falling back silently when no project config exists.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	def := Default()
	setDefaults(v, &def)

	v.SetEnvPrefix("VC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("vcrename: reading config %s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("vcrename: unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults seeds viper's default layer from a Config value so that env
// vars and partial YAML files only need to override what they care about.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("global.separators.input", d.Global.Separators.Input)
	v.SetDefault("global.separators.normalized", d.Global.Separators.Normalized)
	v.SetDefault("global.component_order", d.Global.ComponentOrder)
	v.SetDefault("global.component_separator", d.Global.ComponentSep)
	v.SetDefault("global.case_normalization", d.Global.CaseNormalization)
	v.SetDefault("global.file_exclusions", d.Global.FileExclusions)

	v.SetDefault("date.allowed_formats", d.Date.AllowedFormats)
	v.SetDefault("date.normalized_format", d.Date.NormalizedFormat)
	v.SetDefault("date.normalized_prefix_format", d.Date.NormalizedPrefixFormat)
	v.SetDefault("date.normalized_ranges_format", d.Date.NormalizedRangesFormat)
	v.SetDefault("date.exclude_ranges", d.Date.ExcludeRanges)
	v.SetDefault("date.exclude_ranges_separators", d.Date.ExcludeRangesSeparators)
	v.SetDefault("date.exclude_ranges_separator_strings", d.Date.ExcludeRangesSeparatorStrs)
	v.SetDefault("date.exclude_ranges_normalized_separator", d.Date.ExcludeRangesNormalizedSep)
	v.SetDefault("date.excluded_date_by_prefix", d.Date.ExcludedDateByPrefix)
	v.SetDefault("date.date_priority_order", d.Date.DatePriorityOrder)

	v.SetDefault("name.extraction_order", d.Name.ExtractionOrder)
	v.SetDefault("name.fuzzy_substitutions", d.Name.FuzzySubstitutions)

	v.SetDefault("user_mapping.prefix", d.UserMapping.Prefix)
	v.SetDefault("user_mapping.management_suffix", d.UserMapping.ManagementSuffix)
	v.SetDefault("user_mapping.mapping_file", d.UserMapping.MappingFile)
	v.SetDefault("user_mapping.id_column", d.UserMapping.IDColumn)
	v.SetDefault("user_mapping.name_column", d.UserMapping.NameColumn)
	v.SetDefault("user_mapping.create_if_missing", d.UserMapping.CreateIfMissing)
	v.SetDefault("user_mapping.fuzzy_index_enabled", d.UserMapping.FuzzyIndexEnabled)

	v.SetDefault("category_mapping.mapping_file", d.CategoryMap.MappingFile)
	v.SetDefault("category_mapping.id_column", d.CategoryMap.IDColumn)
	v.SetDefault("category_mapping.name_column", d.CategoryMap.NameColumn)
	v.SetDefault("category_mapping.create_if_missing", d.CategoryMap.CreateIfMissing)

	v.SetDefault("management_flag.enabled", d.ManagementFlag.Enabled)
	v.SetDefault("management_flag.yes_flag", d.ManagementFlag.YesFlag)
	v.SetDefault("management_flag.no_flag", d.ManagementFlag.NoFlag)

	v.SetDefault("category.append_to_filename", d.Category.AppendToFilename)
	v.SetDefault("category.placement", d.Category.Placement)
	v.SetDefault("category.case_insensitive", d.Category.CaseInsensitive)
	v.SetDefault("category.first_level_only", d.Category.FirstLevelOnly)
}

// ResolvePath resolves a possibly-relative mapping file path against the
// directory containing the loaded config file, falling back to the current
// working directory when configDir is empty.
func ResolvePath(configDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if configDir == "" {
		return path
	}
	return filepath.Join(configDir, path)
}
