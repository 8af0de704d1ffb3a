package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		profile, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))

		require.NoError(t, err)
		assert.Equal(t, DefaultProfile(), profile)
	})

	t.Run("parses a full profile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "site.yaml")
		content := []byte(`
name: Ada Lovelace
title: Software Engineer
tagline: Programs before computers
email: ada@example.com
location: London
about:
  - First paragraph
  - Second paragraph
social:
  github: https://github.com/ada
  linkedin: https://linkedin.com/in/ada
`)
		require.NoError(t, os.WriteFile(path, content, 0o600))

		profile, err := LoadProfile(path)

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", profile.Name)
		assert.Equal(t, "ada@example.com", profile.Email)
		assert.Len(t, profile.About, 2)
		assert.Equal(t, "https://github.com/ada", profile.Social.Github)
	})

	t.Run("partial file keeps defaults for missing fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "site.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: Ada Lovelace\n"), 0o600))

		profile, err := LoadProfile(path)

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", profile.Name)
		assert.Equal(t, DefaultProfile().Title, profile.Title)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "site.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0o600))

		_, err := LoadProfile(path)
		assert.Error(t, err)
	})
}
