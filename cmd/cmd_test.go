package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_makeDocs(t *testing.T) {
	dir := t.TempDir()
	if err := makeDocs(RootCmd, dir); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		file string
		want string
	}{
		{"stitch.md", "permalink: /"},
		{"stitch_assemble.md", "parent: stitch"},
		{"stitch_overlaps.md", "title: overlaps"},
	}
	for _, tt := range tests {
		contents, err := os.ReadFile(filepath.Join(dir, tt.file))
		if err != nil {
			t.Errorf("missing doc page %s: %v", tt.file, err)
			continue
		}
		if !strings.HasPrefix(string(contents), "---\n") || !strings.Contains(string(contents), tt.want) {
			t.Errorf("%s front matter lacks %q:\n%s", tt.file, tt.want, contents)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "stitch_docs.md")); err == nil {
		t.Error("hidden docs command shouldn't be documented")
	}
}

func Test_linkHandler(t *testing.T) {
	if got := linkHandler("stitch.md"); got != "/" {
		t.Errorf("linkHandler(stitch.md) = %q, want /", got)
	}
	if got := linkHandler("stitch_assemble.md"); got != "stitch_assemble" {
		t.Errorf("linkHandler(stitch_assemble.md) = %q", got)
	}
}

func TestRootCmd_assemble(t *testing.T) {
	in := filepath.Join("..", "internal", "assemble", "testdata", "sample.fa")

	var stdout bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetArgs([]string{"assemble", in, "--settings", filepath.Join("testdata", "settings.yaml")})
	defer RootCmd.SetArgs(nil)

	if err := RootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	// the settings file sets a name and line width
	want := ">contig_1\nATTAGACCTGCC\nGGAATAC\n"
	if got := stdout.String(); got != want {
		t.Errorf("assemble wrote %q, want %q", got, want)
	}
}

func TestRootCmd_assembleFails(t *testing.T) {
	in := filepath.Join("..", "internal", "assemble", "testdata", "cycle.fa")

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs([]string{"assemble", in})
	defer func() {
		RootCmd.SetArgs(nil)
		RootCmd.SetErr(nil)
	}()

	if err := RootCmd.Execute(); err == nil {
		t.Fatal("expected an error assembling fragments without a chain")
	}
	if stdout.Len() > 0 {
		t.Errorf("assemble wrote to stdout on failure: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "no chain") {
		t.Errorf("stderr lacks the error: %q", stderr.String())
	}
}
