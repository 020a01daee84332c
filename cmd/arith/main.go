package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/arithlang/arith"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		with         [][2]string
		echo         bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Parse()

	ctx := arith.NewContext()
	for _, d := range with {
		nm := d[0]
		vl := d[1]
		r, err := arith.EvalString(vl)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		ctx.Set(nm, r)
	}

	srcs := flag.Args()
	if len(srcs) == 0 {
		line, err := readline(inname)
		if err != nil {
			log.Fatal(err)
		}
		srcs = []string{line}
	}

	// Failed evaluations are reported, never propagated as an exit status.
	errfmt := color.New(color.FgRed)
	verb += "\n"
	for _, src := range srcs {
		a, err := arith.Parse(strings.NewReader(src))
		if err != nil {
			errfmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := ctx.Eval(a)
		if err != nil {
			errfmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

// readline reads one line from the named file, or from stdin if inname is
// empty or "-".
func readline(inname string) (string, error) {
	f := os.Stdin
	if inname != "" && inname != "-" {
		in, err := os.Open(inname)
		if err != nil {
			return "", err
		}
		defer in.Close()
		f = in
	}
	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
