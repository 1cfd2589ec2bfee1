package snapshot

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Format is a snapshot file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatMsgpack
)

// ErrNoFiles is returned by LoadGlob when no pattern matches a snapshot file.
var ErrNoFiles = errors.New("no snapshot files matched")

// FormatFromPath picks the encoding from a file extension.
// JSON files are decoded as YAML.
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("unsupported snapshot extension %q", filepath.Ext(p))
	}
}

// Parse decodes one snapshot file and applies defaults.
func Parse(data []byte, format Format) (*File, error) {
	var f File

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot YAML: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot msgpack: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown snapshot format %d", format)
	}

	if err := applyDefaults(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Encode serializes a snapshot file in the given format.
func Encode(f *File, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatMsgpack:
		return msgpack.Marshal(f)
	default:
		return nil, fmt.Errorf("unknown snapshot format %d", format)
	}
}

// applyDefaults fills in the schema version and rejects unsupported majors.
func applyDefaults(f *File) error {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	v := f.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) {
		return fmt.Errorf("invalid snapshot version %q", f.Version)
	}

	if semver.Major(v) != semver.Major(CurrentVersion) {
		return fmt.Errorf("unsupported snapshot version %q (want %s.x)", f.Version, semver.Major(CurrentVersion))
	}

	f.Version = v

	return nil
}

// LoadFile loads one snapshot file, picking the format from its extension.
func LoadFile(fsys afero.Fs, p string) (*File, error) {
	format, err := FormatFromPath(p)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", p, err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}

	f.Path = p

	return f, nil
}

// LoadGlob loads every snapshot file matching any of the patterns.
// Patterns use doublestar syntax ("snapshots/**/*.yaml"). Files with
// unsupported extensions are ignored, and files are ordered by path.
func LoadGlob(fsys afero.Fs, patterns ...string) (*Program, error) {
	paths, err := Match(fsys, patterns...)
	if err != nil {
		return nil, err
	}

	prog := &Program{}

	for _, p := range paths {
		f, err := LoadFile(fsys, p)
		if err != nil {
			return nil, err
		}

		prog.Files = append(prog.Files, f)
	}

	return prog, nil
}

// Match expands the patterns into a sorted, de-duplicated list of snapshot paths.
func Match(fsys afero.Fs, patterns ...string) ([]string, error) {
	seen := make(map[string]struct{})

	var out []string

	for _, pattern := range patterns {
		base, rel := doublestar.SplitPattern(filepath.ToSlash(pattern))

		var iofs afero.IOFS
		if base == "." {
			iofs = afero.NewIOFS(fsys)
		} else {
			iofs = afero.NewIOFS(afero.NewBasePathFs(fsys, base))
		}

		matches, err := doublestar.Glob(iofs, rel)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}

		for _, m := range matches {
			full := m
			if base != "." {
				full = path.Join(base, m)
			}

			if _, err := FormatFromPath(full); err != nil {
				continue
			}

			if _, ok := seen[full]; ok {
				continue
			}

			seen[full] = struct{}{}
			out = append(out, full)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, strings.Join(patterns, ", "))
	}

	slices.Sort(out)

	return out, nil
}
