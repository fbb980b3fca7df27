package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_ADDRESS=127.0.0.1:9090\nANNOTATION_MODE=minimal\nVOCABULARY_FILE=/etc/skillscan/vocab.yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", cfg.ServerAddress)
	require.Equal(t, AnnotationModeMinimal, cfg.AnnotationMode)
	require.Equal(t, "/etc/skillscan/vocab.yaml", cfg.VocabularyFile)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}
