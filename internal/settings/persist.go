package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Read loads settings from a YAML file. A missing or empty path yields
// Defaults.
func Read(path string) (Values, error) {
	if path == "" {
		return Defaults(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	def := Defaults()
	v.SetDefault("color_theme", string(def.ColorTheme))
	v.SetDefault("extra_cols", def.ExtraCols)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Values{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	var out Values
	if err := v.Unmarshal(&out); err != nil {
		return Values{}, fmt.Errorf("decode settings %s: %w", path, err)
	}
	return out.Normalize(), nil
}

// Write stores settings as YAML. The file is replaced atomically so a
// watcher never sees a half-written file.
func Write(path string, vals Values) error {
	if path == "" {
		return errors.New("settings path is empty")
	}
	data, err := yaml.Marshal(vals.Normalize())
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
