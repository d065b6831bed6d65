package embedding

import (
	"fmt"
	"go/token"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/maja42/packer"
	"github.com/maja42/packer/internal"
)

// DefaultManifest is the manifest file name looked up in a package directory.
const DefaultManifest = "embed.yaml"

// fileNamePattern restricts embedded copies to plain file names that can be used unquoted in a //go:embed directive.
// Go sources are rejected separately.
var fileNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Manifest describes the payloads of a single generated package.
type Manifest struct {
	Package  string  `yaml:"package"`
	Payloads []Entry `yaml:"payloads"`
}

// Entry configures a single payload.
type Entry struct {
	Accessor string `yaml:"accessor"` // Exported accessor function, like "GetData"
	Env      string `yaml:"env"`      // Environment variable holding the source file path
	File     string `yaml:"file"`     // Name of the embedded copy within the package directory
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	return m, nil
}

// ParseManifest parses and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate ensures that the manifest results in a compilable package.
func (m *Manifest) Validate() error {
	if !token.IsIdentifier(m.Package) {
		return packer.NewBuildErr("invalid package name %q", m.Package)
	}
	if len(m.Payloads) == 0 {
		return packer.NewBuildErr("no payloads configured")
	}

	// identifiers declared by the generated source
	declared := make(map[string]string, 3*len(m.Payloads))
	declare := func(ident, accessor string) error {
		if other, ok := declared[ident]; ok {
			return packer.NewBuildErr("accessor %q: identifier %q already declared by %q", accessor, ident, other)
		}
		declared[ident] = accessor
		return nil
	}
	files := make(map[string]string, len(m.Payloads))

	for _, e := range m.Payloads {
		if !token.IsIdentifier(e.Accessor) || !token.IsExported(e.Accessor) {
			return packer.NewBuildErr("invalid accessor %q (must be an exported identifier)", e.Accessor)
		}
		for _, ident := range []string{e.Accessor, e.Accessor + "Size", internal.VarName(e.Accessor)} {
			if err := declare(ident, e.Accessor); err != nil {
				return err
			}
		}
		if e.Env == "" {
			return packer.NewBuildErr("accessor %q: missing environment variable", e.Accessor)
		}
		if !fileNamePattern.MatchString(e.File) || strings.HasSuffix(e.File, ".go") {
			return packer.NewBuildErr("accessor %q: invalid file name %q", e.Accessor, e.File)
		}
		if other, ok := files[e.File]; ok {
			return packer.NewBuildErr("accessor %q: file %q already used by %q", e.Accessor, e.File, other)
		}
		files[e.File] = e.Accessor
	}
	return nil
}
