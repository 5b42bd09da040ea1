// Package pathconfig maps destinations to navigation properties.
//
// A configuration is an ordered list of rules. Each rule has regular expression
// patterns, matched against the path of a destination URL, and a properties bag.
// Every matching rule contributes its properties; later rules override earlier ones.
//
//	{
//	  "settings": {},
//	  "rules": [
//	    {"patterns": ["/new$", "/edit$"], "properties": {"context": "modal"}},
//	    {"patterns": ["^/$"], "properties": {"presentation": "clear_all"}}
//	  ]
//	}
//
// The same document can be written in TOML or YAML.
package pathconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration document.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from a file name or URL path extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Rule applies Properties to every destination whose path matches one of Patterns.
type Rule struct {
	Patterns   []string       `json:"patterns" toml:"patterns" yaml:"patterns"`
	Properties map[string]any `json:"properties" toml:"properties" yaml:"properties"`
	Comment    string         `json:"comment,omitempty" toml:"comment,omitempty" yaml:"comment,omitempty"`

	compiled []*regexp.Regexp
}

// Matches reports whether any pattern matches path.
func (r *Rule) Matches(path string) bool {
	for _, re := range r.compiled {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Configuration is a compiled path configuration.
type Configuration struct {
	// Settings are app-wide values. Servers sometimes send an empty list here,
	// so it is kept undecoded beyond the generic form.
	Settings any    `json:"settings" toml:"settings" yaml:"settings"`
	Rules    []Rule `json:"rules" toml:"rules" yaml:"rules"`
}

// New compiles rules into a configuration.
func New(rules ...Rule) (*Configuration, error) {
	c := &Configuration{Rules: rules}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes and compiles a configuration document.
func Parse(data []byte, format Format) (*Configuration, error) {
	var c Configuration
	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &c)
	case FormatTOML:
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&c)
	case FormatYAML:
		err = yaml.Unmarshal(data, &c)
	default:
		return nil, NewConfigError("decode", fmt.Errorf("%w: %q", ErrUnknownFormat, format))
	}
	if err != nil {
		return nil, NewConfigError("decode", err)
	}

	if err := c.compile(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a configuration file; the extension selects the format.
func Load(path string) (*Configuration, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, NewConfigError("load", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError("read", err)
	}
	return Parse(data, format)
}

func (c *Configuration) compile() error {
	for i := range c.Rules {
		rule := &c.Rules[i]
		rule.compiled = make([]*regexp.Regexp, 0, len(rule.Patterns))
		for _, pattern := range rule.Patterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return NewConfigError("compile", fmt.Errorf("rule %d: %w", i, err))
			}
			rule.compiled = append(rule.compiled, re)
		}
	}
	return nil
}

// Properties returns the merged properties of every rule matching destination.
// A nil configuration has no properties.
func (c *Configuration) Properties(destination string) map[string]any {
	props := make(map[string]any)
	if c == nil {
		return props
	}

	path := destinationPath(destination)
	for i := range c.Rules {
		if c.Rules[i].Matches(path) {
			maps.Copy(props, c.Rules[i].Properties)
		}
	}
	return props
}

// Setting returns an app-wide setting by key.
func (c *Configuration) Setting(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	settings, ok := c.Settings.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := settings[key]
	return v, ok
}

// destinationPath returns the URL path of destination, "/" for a bare host, or
// destination itself when it does not parse as a URL.
func destinationPath(destination string) string {
	u, err := url.Parse(destination)
	if err != nil {
		return destination
	}
	if u.Path == "" && u.Host != "" {
		return "/"
	}
	if u.Path == "" {
		return destination
	}
	return u.Path
}
