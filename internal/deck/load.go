package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File is the on-disk description of a deck. It only seeds the initial cards;
// nothing is ever written back.
type File struct {
	Stacks []StackSpec `toml:"stack" yaml:"stack"`
}

// StackSpec describes one stack in a deck file.
type StackSpec struct {
	Name  string     `toml:"name" yaml:"name"`
	Icon  string     `toml:"icon" yaml:"icon"`
	Cards []CardSpec `toml:"card" yaml:"card"`
}

// CardSpec describes one card in a deck file.
type CardSpec struct {
	ID       string `toml:"id" yaml:"id"`
	Title    string `toml:"title" yaml:"title"`
	Severity string `toml:"severity" yaml:"severity"`
	Body     string `toml:"body" yaml:"body"`
}

// Format is a deck file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported deck file %q (expected .toml, .yaml or .yml)", path)
	}
}

// LoadFile reads, validates and builds a deck from path.
func LoadFile(path string) (*Deck, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Build()
}

// ReadFile reads and validates a deck file without building it.
func ReadFile(path string) (*File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates deck file contents.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown deck format %q", format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Build validates the file and turns it into a deck.
func (f *File) Build() (*Deck, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	stacks := make([]*Stack, 0, len(f.Stacks))
	for i, s := range f.Stacks {
		cards := make([]*Card, 0, len(s.Cards))
		for _, c := range s.Cards {
			sev := Severity(strings.ToLower(strings.TrimSpace(c.Severity)))
			if sev == "" {
				sev = SeverityInfo
			}
			cards = append(cards, NewCard(c.ID, c.Title, sev, c.Body))
		}
		name := s.Name
		if name == "" {
			name = "Stack " + strconv.Itoa(i+1)
		}
		stacks = append(stacks, NewStack(i, name, iconFor(s.Icon, name, i), cards...))
	}
	return New(stacks...), nil
}

func iconFor(icon, name string, i int) string {
	if icon != "" {
		r, _ := utf8.DecodeRuneInString(icon)
		return string(r)
	}
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
		return strings.ToUpper(string(r))
	}
	return strconv.Itoa(i + 1)
}
