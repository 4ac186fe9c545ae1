/*
exhaust is a console utility enumerating sentences of a grammar.

Usage is

	exhaust [-j] [-n <count>] <file>

-j flag instructs exhaust to JSON-encode each sentence;

-n <count> stops the enumeration after the given number of sentences, default is 0 (unbounded);

<file> defines a grammar file parsable by langdef.Parse().

Sentences are written to standard output, one per line, in a fair,
deterministic order. Exit code is 0 on normal termination (including closure
of the downstream pipe), 1 on misuse, and 2 on a grammar parse or validation
error.
*/
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ava12/exhaust"
	"github.com/ava12/exhaust/generate"
	"github.com/ava12/exhaust/langdef"
	"github.com/ava12/exhaust/source"
)

var (
	jsonOut  bool
	maxCount int
)

func main() {
	signal.Ignore(syscall.SIGPIPE)

	if e := newCommand().Execute(); e != nil {
		var ge *exhaust.Error
		if errors.As(e, &ge) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "exhaust <grammar-file>",
		Short:        "enumerate every sentence of a grammar",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().BoolVarP(&jsonOut, "json", "j", false, "JSON-encode each sentence")
	cmd.Flags().IntVarP(&maxCount, "max", "n", 0, "stop after this many sentences, 0 for unbounded")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	content, e := os.ReadFile(args[0])
	if e != nil {
		return e
	}

	src := source.New(args[0], content)
	g, e := langdef.Parse(src)
	if e != nil {
		return describe(src, e)
	}

	errs := generate.Validate(g)
	if len(errs) > 0 {
		for _, ve := range errs[:len(errs)-1] {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", describe(src, ve))
		}
		return describe(src, errs[len(errs)-1])
	}

	gen, e := generate.New(g)
	if e != nil {
		return describe(src, e)
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	it := gen.Sentences()
	for i := 0; maxCount == 0 || i < maxCount; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}

		line := []byte(v)
		if jsonOut {
			line, e = json.Marshal(v)
			if e != nil {
				return e
			}
		}

		line = append(line, '\n')
		if _, e = out.Write(line); e != nil {
			return pipeClosed(e)
		}
	}

	if e = out.Flush(); e != nil {
		return pipeClosed(e)
	}
	return nil
}

// pipeClosed turns closure of the downstream pipe into normal termination.
func pipeClosed(e error) error {
	if errors.Is(e, syscall.EPIPE) {
		return nil
	}
	return e
}

// describe renders an error with line and column information for the source file.
func describe(src *source.Source, e error) error {
	ee, is := e.(*exhaust.Error)
	if !is {
		return e
	}

	line, col := src.LineCol(ee.Start)
	return exhaust.NewError(ee.Code, fmt.Sprintf("%s (line %d col %d)", ee.Message, line, col), "", 0, 0)
}
