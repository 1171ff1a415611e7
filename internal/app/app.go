// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"

	"tesim-core/genome"
	"tesim-core/script"
	"tesim/internal/cli"
	"tesim/internal/version"
	"tesim/internal/writers"
	"tesim/pkg/api"
)

// RunContext parses argv, executes the operation script against the chosen
// genome backend(s), and writes step records to stdout. Exit codes: 0 ok,
// 1 rejected operation or backend divergence, 2 usage error, 3 write error,
// 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("tesim")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "tesim version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	ops, err := loadScript(opts.ScriptFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	gens := newGenomes(opts.Backend, opts.Length)

	var steps []api.StepV1
	for i, op := range ops {
		if parent.Err() != nil {
			_, _ = fmt.Fprintln(stderr, "cancelled")
			return 130
		}
		rec, err := applyAll(gens, op)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "%s:%d: %s: %v\n", opts.ScriptFile, op.Line, op, err)
			return 1
		}
		if opts.Trace {
			rec.Step = i + 1
			if !opts.Render {
				rec.Render = ""
			}
			steps = append(steps, rec)
		}
	}
	if !opts.Trace {
		rec := snapshot(gens[0])
		rec.Step = len(ops)
		rec.Op = "final"
		if !opts.Render {
			rec.Render = ""
		}
		steps = append(steps, rec)
	}

	if err := writers.WriteSteps(opts.Output, outw, steps, opts.Header); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func loadScript(path string) ([]script.Op, error) {
	if path == "-" {
		return script.Parse(os.Stdin, "stdin")
	}
	return script.Load(path)
}

// newGenomes builds the genome(s) the backend option asks for. The first
// entry is the primary whose state feeds the output records.
func newGenomes(backend string, n int) []*genome.Genome {
	switch backend {
	case cli.BackendRing:
		return []*genome.Genome{genome.NewRing(n)}
	case cli.BackendBoth:
		return []*genome.Genome{genome.NewSlice(n), genome.NewRing(n)}
	default:
		return []*genome.Genome{genome.NewSlice(n)}
	}
}

// applyOp executes one script operation against g.
func applyOp(g *genome.Genome, op script.Op) (id int, skipped bool, err error) {
	switch op.Kind {
	case script.Insert:
		id, err = g.InsertTE(op.A, op.B)
	case script.Copy:
		var ok bool
		id, ok = g.CopyTE(op.A, op.B)
		skipped = !ok
	case script.Disable:
		g.DisableTE(op.A)
	}
	return id, skipped, err
}

// applyAll executes op on every genome and cross-checks that the backends
// stay observably identical. The returned record reflects the primary.
func applyAll(gens []*genome.Genome, op script.Op) (api.StepV1, error) {
	id, skipped, err := applyOp(gens[0], op)
	if err != nil {
		return api.StepV1{}, err
	}
	for _, g := range gens[1:] {
		id2, skipped2, err2 := applyOp(g, op)
		if err2 != nil {
			return api.StepV1{}, fmt.Errorf("backends diverged: %v", err2)
		}
		if id2 != id || skipped2 != skipped {
			return api.StepV1{}, fmt.Errorf("backends diverged: result (%d,%v) vs (%d,%v)", id, skipped, id2, skipped2)
		}
		if g.Len() != gens[0].Len() || g.Render() != gens[0].Render() {
			return api.StepV1{}, fmt.Errorf("backends diverged: render %q vs %q", gens[0].Render(), g.Render())
		}
		if !reflect.DeepEqual(g.ActiveTEs(), gens[0].ActiveTEs()) {
			return api.StepV1{}, fmt.Errorf("backends diverged: active %v vs %v", gens[0].ActiveTEs(), g.ActiveTEs())
		}
	}
	rec := snapshot(gens[0])
	rec.Op = op.String()
	rec.ID = id
	rec.Skipped = skipped
	return rec, nil
}

// snapshot captures the observable state of g into a step record.
func snapshot(g *genome.Genome) api.StepV1 {
	return api.StepV1{
		Length: g.Len(),
		Active: g.ActiveTEs(),
		Render: g.Render(),
	}
}
