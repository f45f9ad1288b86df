package internal

import "testing"

func goStyle() fileRegexes { return resolveFileRegexes("main.go") }

func TestInlinePragma_Spellings(t *testing.T) {
	re := goStyle().inline[0]

	ok := []string{
		`key := "value" // pragma: allowlist secret`,
		`key := "value" // pragma: whitelist secret`,
		`key := "value" // pragma:allowlist secret`,
		`key := "value" // pragma: allowlist-secret`,
		`key := "value" //pragma: allowlist secret`,
		`// pragma: allowlist secret with trailing words`,
	}
	for _, line := range ok {
		if !re.MatchString(line) {
			t.Errorf("inline pragma should match %q", line)
		}
	}

	bad := []string{
		`key := "value" // PRAGMA: ALLOWLIST SECRET`, // case-sensitive
		`key := "value" // pragma: allowlist`,        // missing secret
		`key := "value" // pragma: allowlist_secret`, // bad joiner
		`key := "value" # pragma: allowlist secret`,  // wrong comment style
	}
	for _, line := range bad {
		if re.MatchString(line) {
			t.Errorf("inline pragma should not match %q", line)
		}
	}
}

func TestInlinePragma_EndAnchorOnly(t *testing.T) {
	// Inline pragmas are anchored at end of line but not at the start:
	// they may follow arbitrary code on the same line. For block styles the
	// closing token must sit at end of line.
	re := goStyle().inline[0]
	if !re.MatchString(`x := 1 // pragma: allowlist secret`) {
		t.Error("inline pragma must be allowed mid-line")
	}
	java := resolveFileRegexes("App.java").inline[0]
	if java.MatchString(`/* pragma: allowlist secret */ int x = 1;`) {
		t.Error("block inline pragma must anchor its closing token at end of line")
	}
}

func TestNextlinePragma_StartAnchorAndSpelling(t *testing.T) {
	re := goStyle().nextline[0]

	ok := []string{
		`// pragma: allowlist nextline secret`,
		`	// pragma: allowlist nextline secret`,
		`// pragma: allowlist-nextline-secret`,
		`// pragma:allowlist nextline secret and a reason`,
	}
	for _, line := range ok {
		if !re.MatchString(line) {
			t.Errorf("nextline pragma should match %q", line)
		}
	}

	bad := []string{
		`x := 1 // pragma: allowlist nextline secret`, // not at line start
		`// pragma: whitelist nextline secret`,        // whitelist not accepted
		`// pragma: allowlist secret`,                 // missing nextline keyword
	}
	for _, line := range bad {
		if re.MatchString(line) {
			t.Errorf("nextline pragma should not match %q", line)
		}
	}
}

func TestPragma_BlockAndMarkupStyles(t *testing.T) {
	java := resolveFileRegexes("App.java")
	if len(java.inline) != 1 {
		t.Fatalf("expected single style for .java, got %d", len(java.inline))
	}
	if !java.inline[0].MatchString(`int x = 1; /* pragma: allowlist secret */`) {
		t.Error("block-comment inline pragma should match")
	}
	if java.inline[0].MatchString(`int x = 1; /* pragma: allowlist secret`) {
		t.Error("unterminated block comment should not match")
	}

	xml := resolveFileRegexes("config.xml")
	if !xml.inline[0].MatchString(`<key>v</key> <!-- pragma: allowlist secret -->`) {
		t.Error("xml inline pragma should match")
	}

	sql := resolveFileRegexes("schema.sql")
	if !sql.inline[0].MatchString(`INSERT ...; -- pragma: whitelist secret`) {
		t.Error("sql inline pragma should match")
	}

	py := resolveFileRegexes("conf.yaml")
	if !py.inline[0].MatchString(`password: hunter2  # pragma: allowlist secret`) {
		t.Error("hash inline pragma should match")
	}
}

func TestResolveFileRegexes_Fallback(t *testing.T) {
	known := resolveFileRegexes("secret.py")
	if len(known.inline) != 1 || len(known.nextline) != 1 {
		t.Fatalf("known extension should resolve to one style, got %d/%d",
			len(known.inline), len(known.nextline))
	}

	for _, name := range []string{"notes.txt", "noext", "FILE.PY", "", "trailingdot."} {
		got := resolveFileRegexes(name)
		if len(got.inline) != len(commentStyles) || len(got.nextline) != len(commentStyles) {
			t.Errorf("%q should fall back to all %d styles, got %d/%d",
				name, len(commentStyles), len(got.inline), len(got.nextline))
		}
	}
}

func TestFileExt(t *testing.T) {
	cases := map[string]string{
		"a.py":          "py",
		"a.tar.gz":      "gz",
		"noext":         "",
		"trailing.":     "",
		"dir.v2/plain":  "",
		"dir/deep/f.go": "go",
	}
	for in, want := range cases {
		if got := fileExt(in); got != want {
			t.Errorf("fileExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPragmaTables_Aligned(t *testing.T) {
	if len(inlinePragmas) != len(commentStyles) || len(nextlinePragmas) != len(commentStyles) {
		t.Fatalf("pragma tables must be index-aligned with commentStyles")
	}
	for ext, idx := range extToStyle {
		if idx < 0 || idx >= len(commentStyles) {
			t.Errorf("extension %q maps to invalid style index %d", ext, idx)
		}
	}
}
