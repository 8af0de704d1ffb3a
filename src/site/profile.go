package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds the static site-owner information rendered on the public
// portfolio alongside the database-backed content
type Profile struct {
	Name     string   `yaml:"name" json:"name"`
	Title    string   `yaml:"title" json:"title"`
	Tagline  string   `yaml:"tagline" json:"tagline"`
	Email    string   `yaml:"email" json:"email"`
	Location string   `yaml:"location" json:"location"`
	About    []string `yaml:"about" json:"about"`

	Social struct {
		Github   string `yaml:"github" json:"github,omitempty"`
		Linkedin string `yaml:"linkedin" json:"linkedin,omitempty"`
		Twitter  string `yaml:"twitter" json:"twitter,omitempty"`
	} `yaml:"social" json:"social"`
}

// DefaultProfile returns the profile used when no config file exists
func DefaultProfile() *Profile {
	return &Profile{
		Name:    "Portfolio Owner",
		Title:   "Software Engineer",
		Tagline: "Building things for the web",
	}
}

// LoadProfile reads the site profile from a YAML file. A missing file is not
// an error; defaults are returned so the server still starts.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProfile(), nil
		}
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}

	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse site config: %w", err)
	}

	return profile, nil
}
