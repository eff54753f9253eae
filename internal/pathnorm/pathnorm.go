// Package pathnorm canonicalizes game-project asset paths.
//
// A path is rewritten in five ordered stages: separator unification, root
// resolution, slash style, leading-slash policy, trailing-slash policy.
// The transform is pure, never fails, and is idempotent for a fixed
// Options value.
package pathnorm

import (
	"fmt"
	"os"
	"strings"
)

// Root identifies the well-known base directory a path is expressed
// relative to.
type Root int

const (
	// FileSystem treats the path as-is; no root marker applies.
	FileSystem Root = iota

	// Assets anchors the path at the project's Assets/ directory. The
	// marker stays in the output ("Assets/...").
	Assets

	// Resources anchors the path below a Resources/ directory. The marker
	// and everything before it are dropped.
	Resources

	// StreamingAssets anchors the path below a StreamingAssets/ directory.
	// The marker and everything before it are dropped.
	StreamingAssets
)

// Roots lists every root kind, in declaration order.
var Roots = []Root{FileSystem, Assets, Resources, StreamingAssets}

// folder returns the marker folder name for roots that have one.
func (r Root) folder() string {
	switch r {
	case Assets:
		return "Assets"
	case Resources:
		return "Resources"
	case StreamingAssets:
		return "StreamingAssets"
	case FileSystem:
		return ""
	}
	return ""
}

// forcesForward reports whether this root always writes forward slashes.
// Resources and StreamingAssets paths are engine-internal identifiers, not
// file-system paths, and never use the platform separator.
func (r Root) forcesForward() bool {
	return r == Resources || r == StreamingAssets
}

// String returns the name used in flags and config files.
func (r Root) String() string {
	switch r {
	case FileSystem:
		return "filesystem"
	case Assets:
		return "assets"
	case Resources:
		return "resources"
	case StreamingAssets:
		return "streamingassets"
	}
	return fmt.Sprintf("Root(%d)", int(r))
}

// ParseRoot parses a root kind name as written in flags or config.
func ParseRoot(s string) (Root, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "filesystem", "fs":
		return FileSystem, nil
	case "assets":
		return Assets, nil
	case "resources":
		return Resources, nil
	case "streamingassets", "streaming-assets":
		return StreamingAssets, nil
	}
	return 0, fmt.Errorf("unknown root %q (want filesystem, assets, resources, or streamingassets)", s)
}

// SlashStyle selects the separator character written into the output.
type SlashStyle int

const (
	// SystemDefault writes the host platform's separator.
	SystemDefault SlashStyle = iota

	// Forward writes '/'.
	Forward

	// Backward writes '\'.
	Backward
)

// SlashStyles lists every slash style, in declaration order.
var SlashStyles = []SlashStyle{SystemDefault, Forward, Backward}

// separator returns the separator this style writes.
func (y SlashStyle) separator() string {
	switch y {
	case SystemDefault:
		return string(os.PathSeparator)
	case Forward:
		return "/"
	case Backward:
		return `\`
	}
	return "/"
}

// String returns the name used in flags and config files.
func (y SlashStyle) String() string {
	switch y {
	case SystemDefault:
		return "system"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return fmt.Sprintf("SlashStyle(%d)", int(y))
}

// ParseSlashStyle parses a slash style name as written in flags or config.
func ParseSlashStyle(s string) (SlashStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "system", "systemdefault", "native":
		return SystemDefault, nil
	case "forward", "/":
		return Forward, nil
	case "backward", `\`:
		return Backward, nil
	}
	return 0, fmt.Errorf("unknown slash style %q (want system, forward, or backward)", s)
}

// SlashPolicy governs a boundary separator: forced present, forced absent,
// or left as given.
type SlashPolicy int

const (
	// Optional leaves the boundary untouched.
	Optional SlashPolicy = iota

	// Include forces the boundary separator to be present.
	Include

	// Omit strips the boundary separator.
	Omit
)

// SlashPolicies lists every slash policy, in declaration order.
var SlashPolicies = []SlashPolicy{Optional, Include, Omit}

// String returns the name used in flags and config files.
func (p SlashPolicy) String() string {
	switch p {
	case Optional:
		return "optional"
	case Include:
		return "include"
	case Omit:
		return "omit"
	}
	return fmt.Sprintf("SlashPolicy(%d)", int(p))
}

// ParseSlashPolicy parses a slash policy name as written in flags or config.
func ParseSlashPolicy(s string) (SlashPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "optional":
		return Optional, nil
	case "include":
		return Include, nil
	case "omit":
		return Omit, nil
	}
	return 0, fmt.Errorf("unknown slash policy %q (want optional, include, or omit)", s)
}

// Options configures a single Normalize call. The zero value is
// FileSystem root, system separator, boundaries left untouched.
type Options struct {
	Root     Root
	Style    SlashStyle
	Leading  SlashPolicy
	Trailing SlashPolicy
}

// Default returns the options used when nothing else is configured:
// Assets root, forward slashes, no leading slash, forced trailing slash.
func Default() Options {
	return Options{
		Root:     Assets,
		Style:    Forward,
		Leading:  Omit,
		Trailing: Include,
	}
}

// Normalize canonicalizes path according to opts. Empty and
// whitespace-only input is returned unchanged. Malformed input never
// fails; the result is always deterministic.
func Normalize(path string, opts Options) string {
	if strings.TrimSpace(path) == "" {
		return path
	}

	// Stage 1: unify separators for parsing and trim surrounding space.
	s := strings.TrimSpace(strings.ReplaceAll(path, `\`, "/"))

	// Stage 2: root resolution.
	s = resolveRoot(s, opts.Root)

	// Stage 3: slash style.
	if sep := outputSeparator(opts); sep != "/" {
		s = strings.ReplaceAll(s, "/", sep)
	}

	// Stages 4 and 5: boundary policies.
	s = applyLeading(s, opts)
	s = applyTrailing(s, opts)

	return s
}

// Anchored reports whether path already contains or starts at the root's
// marker folder. FileSystem paths are always anchored.
func Anchored(path string, root Root) bool {
	if root == FileSystem {
		return true
	}
	s := strings.ReplaceAll(strings.TrimSpace(path), `\`, "/")
	marker := "/" + root.folder() + "/"
	return indexFold(s, marker) >= 0 || hasPrefixFold(s, root.folder()+"/")
}

// resolveRoot anchors s at the configured root.
//
// The Assets case keeps the matched marker in the output: the result
// starts one character after the marker's leading slash, so anything
// before "Assets/" is dropped but the marker itself survives. Resources
// and StreamingAssets instead drop the whole marker. The asymmetry is
// intentional and covered by tests.
func resolveRoot(s string, root Root) string {
	switch root {
	case FileSystem:
		return s

	case Assets:
		if i := indexFold(s, "/assets/"); i >= 0 {
			return s[i+1:]
		}
		if hasPrefixFold(s, "assets/") {
			return s
		}
		return "Assets/" + strings.TrimLeft(s, "/")

	case Resources, StreamingAssets:
		marker := "/" + root.folder() + "/"
		if i := indexFold(s, marker); i >= 0 {
			return s[i+len(marker):]
		}
		if prefix := root.folder() + "/"; hasPrefixFold(s, prefix) {
			return s[len(prefix):]
		}
		return s
	}
	return s
}

// outputSeparator returns the separator written into the final string.
func outputSeparator(opts Options) string {
	if opts.Root.forcesForward() {
		return "/"
	}
	return opts.Style.separator()
}

// applyLeading applies the leading-slash policy. Only the Assets root has
// a configurable leading boundary.
func applyLeading(s string, opts Options) string {
	if opts.Root != Assets {
		return s
	}
	sep := outputSeparator(opts)
	switch opts.Leading {
	case Include:
		if !strings.HasPrefix(s, sep) {
			s = sep + s
		}
	case Omit:
		s = strings.TrimLeft(s, `/\`)
	case Optional:
	}
	return s
}

// applyTrailing applies the trailing-slash policy. Resources and
// StreamingAssets paths never carry a trailing separator.
func applyTrailing(s string, opts Options) string {
	if opts.Root.forcesForward() {
		return s
	}
	sep := outputSeparator(opts)
	switch opts.Trailing {
	case Include:
		if !strings.HasSuffix(s, sep) {
			s += sep
		}
	case Omit:
		s = strings.TrimRight(s, `/\`)
	case Optional:
	}
	return s
}

// indexFold returns the index of the first case-insensitive occurrence of
// substr in s. Root markers are fixed ASCII folder names, so only A-Z
// folding applies and byte offsets stay valid in the original string.
func indexFold(s, substr string) int {
	return strings.Index(asciiLower(s), asciiLower(substr))
}

// hasPrefixFold reports whether s starts with prefix, ignoring ASCII case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// asciiLower lowercases A-Z only, leaving all other bytes unchanged.
func asciiLower(s string) string {
	upper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			upper = true
			break
		}
	}
	if !upper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
