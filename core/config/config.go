package config

import (
	"reflect"
	"strings"

	"roster-sync/core/database"
	"roster-sync/core/logger"
	"roster-sync/core/server"
	"roster-sync/core/sis"
	"roster-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the run-history database.
	Database database.Config `mapstructure:"database"`
	// SIS holds configuration for the remote SIS API.
	SIS sis.Config `mapstructure:"sis"`
	// Sync holds configuration for the reconciliation runs themselves.
	Sync SyncConfig `mapstructure:"sync"`
}

// SyncConfig holds the settings of a reconciliation run: where the CSV drop
// comes from, which template reads it, how students are matched and where
// reports end up.
type SyncConfig struct {
	// Template names the drop layout (default, legacy).
	Template string `mapstructure:"template" default:"default"`
	// DropDir is a local directory holding the drop. When set it takes
	// precedence over the storage drop zone.
	DropDir string `mapstructure:"drop_dir" default:""`
	// DropPrefix is the object prefix of the storage drop zone.
	DropPrefix string `mapstructure:"drop_prefix" default:"drops/"`
	// MatchField selects the student match key (student_number, fteid).
	MatchField string `mapstructure:"match_field" default:"student_number"`
	// Strict fails a run on any import issue instead of reporting it.
	Strict bool `mapstructure:"strict" default:"false"`
	// Archive stores the full change report in object storage when true.
	Archive bool `mapstructure:"archive" default:"true"`
	// ArchivePrefix is the object prefix archived reports are written under.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"reports/"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
