package cli

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"

	"go.dw1.io/compacthash"
	"go.dw1.io/compacthash/multihash"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rc := NewRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	rc.SetArgs(args)
	err := rc.Execute()

	return stdout.String(), err
}

func mustRun(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	out, err := run(t, stdin, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}

	return out
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func TestSumFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hello.txt", "hello world")

	got := mustRun(t, "", "sum", "--seed", "12345", path)
	want := "41c96fbb5bf6b6eb  " + path + "\n"
	if got != want {
		t.Fatalf("sum = %q, want %q", got, want)
	}

	// Hex seeds select the same digest.
	if got := mustRun(t, "", "sum", "--seed", "0x3039", path); got != want {
		t.Fatalf("sum with hex seed = %q, want %q", got, want)
	}
}

func TestSumStdin(t *testing.T) {
	want := "be6a9b4f459d7dd1  -\n"
	if got := mustRun(t, "hello world", "sum"); got != want {
		t.Fatalf("sum = %q, want %q", got, want)
	}
	if got := mustRun(t, "hello world", "sum", "-"); got != want {
		t.Fatalf("sum - = %q, want %q", got, want)
	}
}

func TestSumEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty", "")

	want := "5c6fd239b557d505  " + path + "\n"
	if got := mustRun(t, "", "sum", path); got != want {
		t.Fatalf("sum = %q, want %q", got, want)
	}
}

func TestMany(t *testing.T) {
	got := mustRun(t, "hello world", "many", "--seed", "12345", "--words", "4")
	want := "35f3c9754f242722 6dabab0d64e055e2 70df3ad73c350177 20ac1bc21ce47de4  -\n"
	if got != want {
		t.Fatalf("many = %q, want %q", got, want)
	}
}

func TestManyMatchesLibrary(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data", strings.Repeat("compacthash ", 500))

	out := mustRun(t, "", "many", "-n", "3", "--seed", "7", path)
	fields := strings.Fields(out)
	if len(fields) != 4 {
		t.Fatalf("many output = %q", out)
	}

	data, _ := os.ReadFile(path)
	want := hexWords(compacthash.SumMany(data, 3, 7))
	if diff := cmp.Diff(want, fields[:3]); diff != "" {
		t.Fatalf("many words mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONOutput(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hello.txt", "hello world")

	out := mustRun(t, "", "many", "--json", "--words", "2", "--seed", "12345", path)

	var got record
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Unmarshal(%q): %v", out, err)
	}

	want := record{
		Path:  path,
		Size:  11,
		Seed:  "0x3039",
		Words: []string{"35f3c9754f242722", "6dabab0d64e055e2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("json record mismatch (-want +got):\n%s", diff)
	}
}

func TestRecursiveFilter(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "hello world")
	writeFile(t, dir, "b.log", "abc")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	c := writeFile(t, filepath.Join(dir, "sub"), "c.txt", "hello world")

	got := mustRun(t, "", "sum", "-r", "--include", `\.txt$`, dir)
	want := "be6a9b4f459d7dd1  " + a + "\n" + "be6a9b4f459d7dd1  " + c + "\n"
	if got != want {
		t.Fatalf("sum -r = %q, want %q", got, want)
	}

	got = mustRun(t, "", "sum", "-r", "--include", `\.txt$`, "--exclude", "/sub/", dir)
	if want := "be6a9b4f459d7dd1  " + a + "\n"; got != want {
		t.Fatalf("sum -r --exclude = %q, want %q", got, want)
	}
}

func TestDirectoryNeedsRecursive(t *testing.T) {
	_, err := run(t, "", "sum", t.TempDir())
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("err = %v, want ErrUsage", err)
	}
}

func TestMissingFile(t *testing.T) {
	_, err := run(t, "", "sum", filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatalf("no error for missing file")
	}
	if code := ExitCode(err); code != 1 {
		t.Fatalf("ExitCode = %d, want 1", code)
	}
}

func TestCID(t *testing.T) {
	out := mustRun(t, "hello world", "cid")
	s, path, ok := strings.Cut(strings.TrimSpace(out), "  ")
	if !ok || path != "-" {
		t.Fatalf("cid output = %q", out)
	}
	if !strings.HasPrefix(s, "b") {
		t.Fatalf("cid %q is not base32", s)
	}

	c, err := cid.Decode(s)
	if err != nil {
		t.Fatalf("Decode(%q): %v", s, err)
	}
	if c.Version() != 1 || c.Type() != cid.Raw {
		t.Fatalf("cid version/codec = %d/%#x", c.Version(), c.Type())
	}

	dec, err := mh.Decode(c.Hash())
	if err != nil {
		t.Fatalf("mh.Decode: %v", err)
	}
	if dec.Code != multihash.Code {
		t.Fatalf("code = %#x, want %#x", dec.Code, multihash.Code)
	}

	want := binary.BigEndian.AppendUint64(nil, compacthash.SumMany([]byte("hello world"), 1, 0)[0])
	if !bytes.Equal(dec.Digest, want) {
		t.Fatalf("digest = %x, want %x", dec.Digest, want)
	}
}

func TestCIDLengthAndBase(t *testing.T) {
	out := mustRun(t, "hello world", "cid", "--length", "12", "--base", "base58btc")
	s, _, _ := strings.Cut(out, "  ")
	if !strings.HasPrefix(s, "z") {
		t.Fatalf("cid %q is not base58btc", s)
	}

	c, err := cid.Decode(s)
	if err != nil {
		t.Fatalf("Decode(%q): %v", s, err)
	}
	dec, err := mh.Decode(c.Hash())
	if err != nil {
		t.Fatalf("mh.Decode: %v", err)
	}
	if dec.Length != 12 {
		t.Fatalf("digest length = %d, want 12", dec.Length)
	}

	if _, err := run(t, "", "cid", "--base", "nope"); !errors.Is(err, ErrUsage) {
		t.Fatalf("bad base err = %v, want ErrUsage", err)
	}
}

func TestRand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"rand", "--count", "3"}, "e220a8397b1dcdaf\n6e789e6aa1b965f4\n06c45d188009454f\n"},
		{[]string{"rand", "--count", "2", "--discard", "1"}, "6e789e6aa1b965f4\n06c45d188009454f\n"},
		{[]string{"rand", "--count", "1", "--seed", "12345"}, "22118258a9d111a0\n"},
	}
	for _, tt := range tests {
		if got := mustRun(t, "", tt.args...); got != tt.want {
			t.Fatalf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestRandNonDeterministic(t *testing.T) {
	out := mustRun(t, "", "rand", "--random", "--count", "2")
	if lines := strings.Fields(out); len(lines) != 2 {
		t.Fatalf("rand --random = %q", out)
	}
}

func TestEnvironmentSeed(t *testing.T) {
	t.Setenv("COMPACTHASH_SEED", "12345")

	if got, want := mustRun(t, "", "rand", "--count", "1"), "22118258a9d111a0\n"; got != want {
		t.Fatalf("rand = %q, want %q", got, want)
	}

	// Flags win over the environment.
	if got, want := mustRun(t, "", "rand", "--count", "1", "--seed", "0"), "e220a8397b1dcdaf\n"; got != want {
		t.Fatalf("rand = %q, want %q", got, want)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()

	for _, body := range []string{"seed = 12345\n", "seed = \"0x3039\"\n"} {
		conf := writeFile(t, dir, "compacthash.toml", body+"count = 1\n")
		if got, want := mustRun(t, "", "rand", "--config", conf), "22118258a9d111a0\n"; got != want {
			t.Fatalf("rand with %q = %q, want %q", body, got, want)
		}
	}
}

func TestConfigUnknownKey(t *testing.T) {
	conf := writeFile(t, t.TempDir(), "compacthash.toml", "bogus = 1\n")

	_, err := run(t, "", "rand", "-c", conf)
	if code := ExitCode(err); code != 2 {
		t.Fatalf("ExitCode(%v) = %d, want 2", err, code)
	}
}

func TestUsageErrors(t *testing.T) {
	tests := [][]string{
		{"sum", "--seed", "nope"},
		{"many", "--words", "0"},
		{"rand", "--count", "-1"},
		{"sum", "--include", "("},
		{"sum", "--no-such-flag"},
		{"sum", "--log-level", "loud"},
	}
	for _, args := range tests {
		_, err := run(t, "", args...)
		if !errors.Is(err, ErrUsage) {
			t.Fatalf("%v: err = %v, want ErrUsage", args, err)
		}
	}
}

func TestDigestCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hello.txt", "hello world")
	cacheFile := filepath.Join(dir, "cache")

	first := mustRun(t, "", "sum", "--cache", "--cache-file", cacheFile, path)
	second := mustRun(t, "", "sum", "--cache", "--cache-file", cacheFile, "--log-level", "debug", path)
	if first != second {
		t.Fatalf("cached run = %q, first run = %q", second, first)
	}
	if want := "be6a9b4f459d7dd1  " + path + "\n"; first != want {
		t.Fatalf("sum = %q, want %q", first, want)
	}
	if _, err := os.Stat(cacheFile); err != nil {
		t.Fatalf("cache not saved: %v", err)
	}
}
