package config

import (
	"github.com/spf13/viper"
)

// Annotation engine modes selectable via ANNOTATION_MODE.
const (
	AnnotationModeFull    = "full"    // prose-backed engine: entities + parsing
	AnnotationModeMinimal = "minimal" // tokenization only
)

// Config holds all configuration values needed by the application.
// The mapstructure tags tell Viper how to map environment variables to
// struct fields.
type Config struct {
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`  // Address the server listens on (e.g. "0.0.0.0:8080")
	AnnotationMode string `mapstructure:"ANNOTATION_MODE"` // "full" or "minimal"
	VocabularyFile string `mapstructure:"VOCABULARY_FILE"` // Optional YAML vocabulary file; empty means built-in
}

// LoadConfig loads values from an app.env file in path, with environment
// variables taking precedence.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	if config.AnnotationMode == "" {
		config.AnnotationMode = AnnotationModeFull
	}
	return
}
