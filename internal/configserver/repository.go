// Package configserver отдаёт свойства приложений из yaml-файлов каталога.
//
// Для запроса {application}/{profile} читаются {application}-{profile}.yml
// (для каждого профиля из списка через запятую) и {application}.yml.
// Источники идут от самого приоритетного: последний профиль первым, базовый файл последним.
package configserver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Totarae/EazyBank/internal/apperr"
	"github.com/Totarae/EazyBank/internal/config"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Repository читает конфигурации из каталога dir.
type Repository struct {
	dir    string
	logger *zap.Logger
}

func NewRepository(dir string, logger *zap.Logger) *Repository {
	return &Repository{dir: dir, logger: logger}
}

// Environment собирает свойства приложения для списка профилей.
// Отсутствующий файл пропускается; если нет ни одного, источников просто нет.
func (r *Repository) Environment(application, profile string) (*config.Environment, error) {
	if !namePattern.MatchString(application) {
		return nil, apperr.Validation("application: must match " + namePattern.String())
	}
	profiles := strings.Split(profile, ",")
	for _, p := range profiles {
		if !namePattern.MatchString(p) {
			return nil, apperr.Validation("profile: must match " + namePattern.String())
		}
	}

	files := make([]string, 0, len(profiles)+1)
	for i := len(profiles) - 1; i >= 0; i-- {
		files = append(files, application+"-"+profiles[i]+".yml")
	}
	files = append(files, application+".yml")

	env := &config.Environment{
		Name:            application,
		Profiles:        profiles,
		PropertySources: []config.PropertySource{},
	}
	for _, name := range files {
		path := filepath.Join(r.dir, name)
		source, err := readSource(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		env.PropertySources = append(env.PropertySources, config.PropertySource{
			Name:   "file:" + filepath.ToSlash(path),
			Source: source,
		})
	}

	r.logger.Debug("Environment assembled",
		zap.String("application", application),
		zap.Strings("profiles", profiles),
		zap.Int("sources", len(env.PropertySources)))
	return env, nil
}

func readSource(path string) (map[string]any, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return config.Flatten(v.AllSettings()), nil
}
