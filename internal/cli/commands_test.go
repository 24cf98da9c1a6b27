package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"testing"

	wlerrors "github.com/matzehuels/wordladder/pkg/errors"
)

const testWords = `bag
bog
bat
bug
cat
cog
cot
dog
fog
fig
fat
foo
qux
`

// testEnv points the config and cache directories at fresh temp dirs.
func testEnv(t *testing.T) (configHome, cacheHome string) {
	t.Helper()
	configHome, cacheHome = t.TempDir(), t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	return configHome, cacheHome
}

func writeTestDict(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(testWords), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansi.ReplaceAllString(s, "") }

func decodeLadder(t *testing.T, out string) ladderJSON {
	t.Helper()
	var got ladderJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return got
}

func TestLadderCommandJSON(t *testing.T) {
	testEnv(t)
	dict := writeTestDict(t)

	out, err := execute(t, "ladder", "dog", "cat", "--dict", dict, "--json", "--no-cache")
	if err != nil {
		t.Fatalf("ladder: %v", err)
	}
	got := decodeLadder(t, out)
	want := ladderJSON{Origin: "dog", Target: "cat", Found: true, Path: []string{"dog", "cog", "cot", "cat"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ladder = %+v, want %+v", got, want)
	}
}

func TestLadderCommandNoLadder(t *testing.T) {
	testEnv(t)
	dict := writeTestDict(t)

	out, err := execute(t, "ladder", "dog", "qux", "--dict", dict, "--json", "--no-cache")
	if !errors.Is(err, ErrNoLadder) {
		t.Fatalf("err = %v, want ErrNoLadder", err)
	}
	if ExitCode(err) != ExitNoLadder {
		t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitNoLadder)
	}
	got := decodeLadder(t, out)
	if got.Found || len(got.Path) != 0 {
		t.Errorf("ladder = %+v, want not found with empty path", got)
	}
	if !strings.Contains(out, `"path": []`) {
		t.Errorf("output %q should encode the path as an empty array", out)
	}
}

func TestLadderCommandStyled(t *testing.T) {
	testEnv(t)
	dict := writeTestDict(t)

	out, err := execute(t, "ladder", "dog", "cat", "--dict", dict, "--no-cache")
	if err != nil {
		t.Fatalf("ladder: %v", err)
	}
	plain := stripANSI(out)
	for _, want := range []string{"3 steps", "dog → cog → cot → cat", "13 words", "fresh"} {
		if !strings.Contains(plain, want) {
			t.Errorf("output %q should contain %q", plain, want)
		}
	}
}

func TestLadderCommandCached(t *testing.T) {
	testEnv(t)
	dict := writeTestDict(t)

	if _, err := execute(t, "ladder", "dog", "cat", "--dict", dict); err != nil {
		t.Fatalf("first run: %v", err)
	}
	out, err := execute(t, "ladder", "dog", "cat", "--dict", dict)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !strings.Contains(stripANSI(out), "cached") {
		t.Errorf("second run output %q should report a cache hit", out)
	}
}

func TestLadderCommandConfigFile(t *testing.T) {
	testEnv(t)
	dict := writeTestDict(t)
	cfg := filepath.Join(t.TempDir(), "config.toml")
	text := fmt.Sprintf("dictionary = %q\nfold_case = true\nindex = \"scan\"\n", dict)
	if err := os.WriteFile(cfg, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "ladder", "Dog", "cat", "--config", cfg, "--json")
	if err != nil {
		t.Fatalf("ladder: %v", err)
	}
	got := decodeLadder(t, out)
	if want := []string{"DOG", "COG", "COT", "CAT"}; !reflect.DeepEqual(got.Path, want) {
		t.Errorf("path = %v, want %v", got.Path, want)
	}

	// Flags win over the file.
	out, err = execute(t, "ladder", "dog", "cat", "--config", cfg, "--fold-case=false", "--json")
	if err != nil {
		t.Fatalf("ladder: %v", err)
	}
	if got := decodeLadder(t, out); got.Origin != "dog" {
		t.Errorf("origin = %q, want case preserved", got.Origin)
	}
}

func TestLadderCommandErrors(t *testing.T) {
	testEnv(t)
	dict := writeTestDict(t)

	tests := []struct {
		name string
		args []string
		code wlerrors.Code
	}{
		{"no dictionary", []string{"ladder", "dog", "cat"}, wlerrors.ErrCodeInvalidInput},
		{"missing dictionary", []string{"ladder", "dog", "cat", "--dict", filepath.Join(t.TempDir(), "nope.txt")}, wlerrors.ErrCodeFileNotFound},
		{"missing config", []string{"ladder", "dog", "cat", "--config", filepath.Join(t.TempDir(), "nope.toml")}, wlerrors.ErrCodeFileNotFound},
		{"bad index", []string{"ladder", "dog", "cat", "--dict", dict, "--index", "trie"}, wlerrors.ErrCodeInvalidInput},
		{"bad word", []string{"ladder", "d g", "cat", "--dict", dict}, wlerrors.ErrCodeInvalidWord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := wlerrors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.code, err)
			}
			if ExitCode(err) != ExitError {
				t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitError)
			}
		})
	}
}

func TestLadderCommandDOT(t *testing.T) {
	testEnv(t)
	dict := writeTestDict(t)
	dotPath := filepath.Join(t.TempDir(), "ladder.dot")

	if _, err := execute(t, "ladder", "dog", "cat", "--dict", dict, "--no-cache", "--json", "--dot", dotPath, "--detailed"); err != nil {
		t.Fatalf("ladder: %v", err)
	}
	data, err := os.ReadFile(dotPath)
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	dot := string(data)
	for _, want := range []string{"digraph ladder", `"dog" -> "cog"`, `"cot" -> "cat"`, "1: d→c"} {
		if !strings.Contains(dot, want) {
			t.Errorf("dot output should contain %q:\n%s", want, dot)
		}
	}
}

func TestLadderCommandPDFWithoutConverter(t *testing.T) {
	testEnv(t)
	dict := writeTestDict(t)
	dir := t.TempDir()
	t.Setenv("PATH", dir)

	dotPath := filepath.Join(dir, "ladder.dot")
	pdfPath := filepath.Join(dir, "ladder.pdf")
	_, err := execute(t, "ladder", "dog", "cat", "--dict", dict, "--no-cache", "--json", "--dot", dotPath, "--pdf", pdfPath)
	if !wlerrors.Is(err, wlerrors.ErrCodeUnsupported) {
		t.Fatalf("err = %v, want UNSUPPORTED", err)
	}
	if _, err := os.Stat(dotPath); err != nil {
		t.Errorf("dot should be written before conversion: %v", err)
	}
	if _, err := os.Stat(pdfPath); !os.IsNotExist(err) {
		t.Errorf("pdf should not exist, stat err = %v", err)
	}
}

func TestNeighborsCommand(t *testing.T) {
	testEnv(t)
	dict := writeTestDict(t)

	out, err := execute(t, "neighbors", "dog", "--dict", dict, "--json")
	if err != nil {
		t.Fatalf("neighbors: %v", err)
	}
	var got []string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if want := []string{"bog", "cog", "fog"}; !reflect.DeepEqual(got, want) {
		t.Errorf("neighbors = %v, want %v", got, want)
	}

	out, err = execute(t, "neighbors", "qux", "--dict", dict)
	if err != nil {
		t.Fatalf("neighbors: %v", err)
	}
	if plain := stripANSI(out); !strings.Contains(plain, "qux has 0 neighbors") {
		t.Errorf("output %q should report no neighbors", plain)
	}
}

func TestConfigCommand(t *testing.T) {
	configHome, _ := testEnv(t)

	out, err := execute(t, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if got, want := strings.TrimSpace(out), filepath.Join(configHome, "wordladder", "config.toml"); got != want {
		t.Errorf("config path = %q, want %q", got, want)
	}

	out, err = execute(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, `index = "bucket"`) {
		t.Errorf("config show output should contain defaults:\n%s", out)
	}
}

func TestCompletionCommand(t *testing.T) {
	testEnv(t)

	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "wordladder") {
		t.Error("bash completion should mention the command name")
	}
}
