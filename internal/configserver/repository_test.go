package configserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Totarae/EazyBank/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestRepository_Environment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "accounts.yml", "build_version: \"1.0\"\ncontact:\n  message: local\n  name: Madan\n")
	writeFile(t, dir, "accounts-prod.yml", "build_version: \"3.0\"\ncontact:\n  message: prod\n")
	writeFile(t, dir, "accounts-qa.yml", "contact:\n  message: qa\n")

	repo := NewRepository(dir, zaptest.NewLogger(t))

	env, err := repo.Environment("accounts", "qa,prod")
	require.NoError(t, err)

	assert.Equal(t, "accounts", env.Name)
	assert.Equal(t, []string{"qa", "prod"}, env.Profiles)
	require.Len(t, env.PropertySources, 3)

	// Последний профиль приоритетнее
	assert.Equal(t, "prod", env.PropertySources[0].Source["contact.message"])
	assert.Equal(t, "qa", env.PropertySources[1].Source["contact.message"])
	assert.Equal(t, "Madan", env.PropertySources[2].Source["contact.name"])
	assert.Contains(t, env.PropertySources[2].Name, "accounts.yml")
}

func TestRepository_MissingFiles(t *testing.T) {
	repo := NewRepository(t.TempDir(), zaptest.NewLogger(t))

	env, err := repo.Environment("loans", "default")
	require.NoError(t, err)
	assert.Empty(t, env.PropertySources)
	assert.NotNil(t, env.PropertySources)
}

func TestRepository_RejectsPaths(t *testing.T) {
	repo := NewRepository(t.TempDir(), zaptest.NewLogger(t))

	_, err := repo.Environment("../secrets", "default")
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)

	_, err = repo.Environment("accounts", "prod,../x")
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)
}

func TestRepository_BrokenYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cards.yml", "contact: [unclosed\n")

	_, err := NewRepository(dir, zaptest.NewLogger(t)).Environment("cards", "default")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInternal, apperr.CodeOf(err))
}
