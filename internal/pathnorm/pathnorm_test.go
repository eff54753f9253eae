package pathnorm

import (
	"testing"
)

func TestNormalize_EmptyInputPreserved(t *testing.T) {
	opts := Default()
	for _, in := range []string{"", " ", "   ", "\t\n"} {
		if got := Normalize(in, opts); got != in {
			t.Errorf("Normalize(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestNormalize_AssetsRoot(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"absolute with marker", "C:/MyGame/Assets/MyFolder/MySubFolder/", "Assets/MyFolder/MySubFolder/"},
		{"backslash input", `C:\MyGame\Assets\MyFolder\MySubFolder\`, "Assets/MyFolder/MySubFolder/"},
		{"marker lowercase", "c:/mygame/assets/textures", "assets/textures/"},
		{"already rooted", "Assets/Prefabs", "Assets/Prefabs/"},
		{"already rooted lowercase", "assets/Prefabs", "assets/Prefabs/"},
		{"no marker gets prefixed", "Textures/Wood", "Assets/Textures/Wood/"},
		{"no marker leading slashes stripped", "///Textures", "Assets/Textures/"},
		{"surrounding whitespace", "  Assets/Audio  ", "Assets/Audio/"},
	}

	opts := Default()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input, opts)
			if got != tc.expect {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestNormalize_ResourcesRoot(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"absolute with marker", "C:/MyGame/Assets/Resources/MyFolder/MySubFolder/", "MyFolder/MySubFolder/"},
		{"marker mixed case", "C:/Game/Assets/RESOURCES/Sprites", "Sprites"},
		{"rooted prefix stripped", "Resources/Audio/Music", "Audio/Music"},
		{"no marker unchanged", "Audio/Music", "Audio/Music"},
		{"backslash input", `Game\Assets\Resources\Fonts`, "Fonts"},
	}

	opts := Options{Root: Resources, Style: Forward}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input, opts)
			if got != tc.expect {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestNormalize_StreamingAssetsRoot(t *testing.T) {
	opts := Options{Root: StreamingAssets, Style: Forward}

	got := Normalize("C:/MyGame/Assets/StreamingAssets/MyFolder/MySubFolder/", opts)
	want := "MyFolder/MySubFolder/"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Backward style is ignored for engine-internal roots.
	opts.Style = Backward
	got = Normalize(`C:\MyGame\Assets\StreamingAssets\Video`, opts)
	if got != "Video" {
		t.Errorf("backward style leaked into streaming assets path: %q", got)
	}
}

func TestNormalize_FileSystemRoot(t *testing.T) {
	opts := Options{Root: FileSystem, Style: Forward, Trailing: Include}

	// Absolute root is untouched; style and trailing policy still apply.
	got := Normalize(`C:\MyGame\Builds`, opts)
	want := "C:/MyGame/Builds/"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	opts.Style = Backward
	got = Normalize("C:/MyGame/Builds", opts)
	want = `C:\MyGame\Builds\`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalize_LeadingPolicy(t *testing.T) {
	tests := []struct {
		name    string
		leading SlashPolicy
		input   string
		expect  string
	}{
		{"include adds", Include, "Assets/Scenes", "/Assets/Scenes"},
		{"include keeps existing", Include, "/Assets/Scenes", "/Assets/Scenes"},
		{"omit strips", Omit, "/Assets/Scenes", "Assets/Scenes"},
		{"optional leaves absent", Optional, "Assets/Scenes", "Assets/Scenes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options{Root: Assets, Style: Forward, Leading: tc.leading, Trailing: Optional}
			got := Normalize(tc.input, opts)
			if got != tc.expect {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestNormalize_LeadingIncludeRestoresAfterRootResolution(t *testing.T) {
	// Root resolution slices off the marker's leading slash; the Include
	// policy puts it back, so a previously normalized path is stable.
	opts := Options{Root: Assets, Style: Forward, Leading: Include, Trailing: Optional}
	got := Normalize("/Assets/Scenes", opts)
	if got != "/Assets/Scenes" {
		t.Errorf("got %q, want %q", got, "/Assets/Scenes")
	}
}

func TestNormalize_TrailingPolicy(t *testing.T) {
	tests := []struct {
		name     string
		trailing SlashPolicy
		input    string
		expect   string
	}{
		{"include adds", Include, "Assets/Scenes", "Assets/Scenes/"},
		{"include keeps existing", Include, "Assets/Scenes/", "Assets/Scenes/"},
		{"omit strips", Omit, "Assets/Scenes///", "Assets/Scenes"},
		{"optional leaves present", Optional, "Assets/Scenes/", "Assets/Scenes/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options{Root: Assets, Style: Forward, Trailing: tc.trailing}
			got := Normalize(tc.input, opts)
			if got != tc.expect {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestNormalize_PolicyIndependence(t *testing.T) {
	// Boundary policies never touch interior separators.
	opts := Options{Root: Assets, Style: Forward, Leading: Include, Trailing: Include}
	got := Normalize("Assets/A/B/C", opts)
	if got != "/Assets/A/B/C/" {
		t.Errorf("got %q, want %q", got, "/Assets/A/B/C/")
	}
}

func TestNormalize_MarkerAsymmetry(t *testing.T) {
	// The Assets root keeps the matched marker in the output; Resources
	// drops it. Both slice from the same kind of mid-string match.
	in := "C:/Game/Assets/Resources/Foo"

	got := Normalize(in, Options{Root: Assets, Style: Forward})
	if got != "Assets/Resources/Foo" {
		t.Errorf("assets root: got %q, want %q", got, "Assets/Resources/Foo")
	}

	got = Normalize(in, Options{Root: Resources, Style: Forward})
	if got != "Foo" {
		t.Errorf("resources root: got %q, want %q", got, "Foo")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"C:/MyGame/Assets/MyFolder/MySubFolder/",
		`C:\MyGame\Assets\Resources\Fonts`,
		"Assets/sub/Assets/x",
		"///weird//path///",
		"no-markers-at-all",
		"/Assets/Scenes",
		"relative/path/file.txt",
	}

	var optsSet []Options
	for _, root := range Roots {
		for _, style := range []SlashStyle{Forward, Backward} {
			for _, leading := range SlashPolicies {
				for _, trailing := range SlashPolicies {
					optsSet = append(optsSet, Options{
						Root:     root,
						Style:    style,
						Leading:  leading,
						Trailing: trailing,
					})
				}
			}
		}
	}

	for _, opts := range optsSet {
		for _, in := range inputs {
			once := Normalize(in, opts)
			twice := Normalize(once, opts)
			if once != twice {
				t.Errorf("not idempotent with %+v: %q -> %q -> %q", opts, in, once, twice)
			}
		}
	}
}

func TestAnchored(t *testing.T) {
	tests := []struct {
		path   string
		root   Root
		expect bool
	}{
		{"C:/Game/Assets/Foo", Assets, true},
		{"assets/Foo", Assets, true},
		{`Game\Assets\Foo`, Assets, true},
		{"Textures/Wood", Assets, false},
		{"C:/Game/Assets/Resources/Foo", Resources, true},
		{"Resources/Foo", Resources, true},
		{"Assets/Foo", Resources, false},
		{"anything", FileSystem, true},
	}

	for _, tc := range tests {
		if got := Anchored(tc.path, tc.root); got != tc.expect {
			t.Errorf("Anchored(%q, %v) = %v, want %v", tc.path, tc.root, got, tc.expect)
		}
	}
}

func TestParseRoot(t *testing.T) {
	for _, r := range Roots {
		got, err := ParseRoot(r.String())
		if err != nil {
			t.Fatalf("ParseRoot(%q): %v", r.String(), err)
		}
		if got != r {
			t.Errorf("ParseRoot(%q) = %v, want %v", r.String(), got, r)
		}
	}
	if _, err := ParseRoot("plugins"); err == nil {
		t.Error("expected error for unknown root")
	}
}

func TestParseSlashStyle(t *testing.T) {
	for _, y := range SlashStyles {
		got, err := ParseSlashStyle(y.String())
		if err != nil {
			t.Fatalf("ParseSlashStyle(%q): %v", y.String(), err)
		}
		if got != y {
			t.Errorf("ParseSlashStyle(%q) = %v, want %v", y.String(), got, y)
		}
	}
	if _, err := ParseSlashStyle("diagonal"); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestParseSlashPolicy(t *testing.T) {
	for _, p := range SlashPolicies {
		got, err := ParseSlashPolicy(p.String())
		if err != nil {
			t.Fatalf("ParseSlashPolicy(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParseSlashPolicy(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if _, err := ParseSlashPolicy("sometimes"); err == nil {
		t.Error("expected error for unknown policy")
	}
}
