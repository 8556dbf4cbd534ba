package main

import "bytes"
import "context"
import "os"
import "path/filepath"
import "strings"
import "testing"

import "github.com/google/go-cmp/cmp"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		out  string
	}{
		{[]string{"add", "1.5", "2.25"}, "3.75\n"},
		{[]string{"mul", "-1.5", "2"}, "-3\n"},
		{[]string{"--width", "32", "div", "7", "2"}, "3.5\n"},
		{[]string{"-w", "128", "sqrt", "4"}, "2\n"},
		{[]string{"sqrt", "-4"}, "error: efix: square root of a negative value\n"},
		{[]string{"div", "1", "0"}, "error: efix: division by zero\n"},
		{[]string{"--width", "32", "add", "30000", "30000"}, "32767.9999847412\n"},
		{[]string{"--width", "32", "--raw", "neg", "0.5"}, "0xffff8000\n"},
		{[]string{"floor", "-2.5"}, "-3\n"},
		{[]string{"atan2", "0", "-1"}, "3.1415926537\n"},
		{[]string{"log2", "8"}, "3\n"},
	}

	for i, test := range tests {
		out, err := run(t, test.args...)
		if err != nil {
			t.Fatalf("test #%d (%v): unexpected error %v", i, test.args, err)
		}
		if out != test.out {
			t.Fatalf("test #%d (%v): expected %q, got %q", i, test.args, test.out, out)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	tests := [][]string{
		{"frobnicate", "1"},
		{"add", "1"},
		{"sqrt", "one"},
		{"--width", "48", "add", "1", "2"},
		{},
	}
	for i, args := range tests {
		if _, err := run(t, args...); err == nil {
			t.Fatalf("test #%d (%v): expected an error", i, args)
		}
	}
}

func TestConsts(t *testing.T) {
	out, err := run(t, "--width", "32", "consts")
	if err != nil { t.Fatal(err) }
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 constants, got %d:\n%s", len(lines), out)
	}
	if lines[5] != "max      32767.9999847412" {
		t.Fatalf("unexpected max line %q", lines[5])
	}
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	confPath := filepath.Join(dir, "efixcalc.yaml")
	err := os.WriteFile(confPath, []byte("width: 32\nraw: true\nworkers: 0\n"), 0644)
	if err != nil { t.Fatal(err) }

	conf, err := loadConfig(confPath)
	if err != nil { t.Fatal(err) }
	want := config{ Width: 32, Raw: true, Workers: 1 }
	if diff := cmp.Diff(want, conf); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}

	// flags take precedence over the config file
	out, err := run(t, "--config", confPath, "--width", "64", "one_plus_one_is_not_an_op")
	if err == nil { t.Fatalf("expected unknown operation error, got %q", out) }
	out, err = run(t, "--config", confPath, "--width", "64", "add", "1", "1")
	if err != nil { t.Fatal(err) }
	if out != "0x0000000200000000\n" {
		t.Fatalf("unexpected output %q", out)
	}

	err = os.WriteFile(confPath, []byte("width: 16\n"), 0644)
	if err != nil { t.Fatal(err) }
	if _, err = loadConfig(confPath); err == nil {
		t.Fatal("expected invalid width error")
	}
}

const batchYAML = `width: 128
jobs:
  - op: mul
    args: ["1.5", "-2"]
  - op: sqrt
    args: ["2"]
  - op: sqrt
    args: ["-2"]
  - op: cos
    args: ["0"]
  - op: exp2
    args: ["10"]
`

func TestBatch(t *testing.T) {
	batchPath := filepath.Join(t.TempDir(), "jobs.yaml")
	err := os.WriteFile(batchPath, []byte(batchYAML), 0644)
	if err != nil { t.Fatal(err) }

	out, err := run(t, "batch", batchPath)
	if err != nil { t.Fatal(err) }
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got:\n%s", out)
	}
	wantPrefix := []string{
		"mul(1.5, -2) = -3",
		"sqrt(2) = 1.41421356237309504",
		"sqrt(-2) = error: efix: square root of a negative value",
		"cos(0) = 1",
		"exp2(10) = 1024",
		"Fixed128 checksum ",
	}
	for i, prefix := range wantPrefix {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Fatalf("line #%d: expected prefix %q, got %q", i, prefix, lines[i])
		}
	}
}

func TestBatchDeterminism(t *testing.T) {
	var jobs []job
	ops := operationNames()
	operands := []string{"0.75", "-3.5", "2", "1000.125", "-0.001"}
	for i := 0; i < 200; i++ {
		op := ops[i % len(ops)]
		calc, _ := newCalculator(64, false)
		args := []string{operands[i % len(operands)]}
		if _, err := calc.Eval(op, args); err != nil {
			args = append(args, operands[(i + 1) % len(operands)])
		}
		jobs = append(jobs, job{ Op: op, Args: args })
	}

	for _, width := range []int{32, 64, 128} {
		calc, err := newCalculator(width, false)
		if err != nil { t.Fatal(err) }
		serial, sumSerial, err := runBatch(context.Background(), calc, jobs, 1)
		if err != nil { t.Fatal(err) }
		parallel, sumParallel, err := runBatch(context.Background(), calc, jobs, 8)
		if err != nil { t.Fatal(err) }
		if sumSerial != sumParallel {
			t.Fatalf("width %d: checksum mismatch %x vs %x", width, sumSerial, sumParallel)
		}
		if diff := cmp.Diff(serial, parallel); diff != "" {
			t.Fatalf("width %d: results differ (-serial +parallel):\n%s", width, diff)
		}
	}
}
