package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/basecalc"
)

func main() {
	log.SetFlags(0)
	var (
		cfg    config
		inname string
		tui    bool
	)
	cfg.out = baseList{10}
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		cfg.with = append(cfg.with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.IntVar(&cfg.in, "in", 10, "base of numbers in expressions")
	flag.Var(&cfg.out, "out", "comma-separated bases in which to print results")
	flag.StringVar(&inname, "file", "", "input file (default stdin if no args given)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&cfg.lines, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&cfg.echo, "echo", false, "print postfix forms of expressions")
	flag.BoolVar(&cfg.verbose, "v", false, "log lexing and cache statistics")
	flag.BoolVar(&tui, "tui", false, "use the interactive interface even if stdin is not a terminal")
	flag.Parse()
	if err := basecalc.CheckBase(cfg.in); err != nil {
		log.Fatalf("-in: %v", err)
	}
	for _, b := range cfg.out {
		if err := basecalc.CheckBase(b); err != nil {
			log.Fatalf("-out: %v", err)
		}
	}

	calc := basecalc.NewCalculator(nil, nil)
	for _, d := range cfg.with {
		nm, vl := d[0], d[1]
		r, err := basecalc.EvalString(vl, cfg.in, calc.Vars())
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		calc.Vars().Set(nm, r)
	}

	interactive := flag.NArg() == 0 && inname == "" && term.IsTerminal(int(os.Stdin.Fd()))
	if tui || interactive {
		if err := runTUI(calc, cfg.in, cfg.out[0]); err != nil {
			log.Fatal(err)
		}
		return
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s, err := readExprs(f, cfg.lines)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, flag.Args()...)
	if run(calc, cfg, srcs, os.Stdout) > 0 {
		os.Exit(1)
	}
}

// config is the configuration for line-oriented evaluation.
type config struct {
	in      int
	out     baseList
	with    [][2]string
	lines   bool
	echo    bool
	verbose bool
}

// run evaluates each expression in srcs in order and writes its results to
// w, one line per expression. Errors are written in place of results.
// Returns the number of expressions that failed.
func run(calc *basecalc.Calculator, cfg config, srcs []string, w io.Writer) int {
	failed := 0
	for _, src := range srcs {
		// Every line is a new submission, even if it repeats the last one.
		calc.Forget()
		if cfg.echo || cfg.verbose {
			e, err := calc.Lex(src)
			if cfg.verbose {
				log.Printf("lexed %q: %v (err: %v)", src, e, err)
			}
			if cfg.echo && err == nil {
				fmt.Fprintf(w, "%v : ", e)
			}
		}
		outs := make([]string, 0, len(cfg.out))
		var err error
		for _, b := range cfg.out {
			var s string
			s, err = calc.Calc(src, cfg.in, b)
			if err != nil {
				break
			}
			outs = append(outs, s)
		}
		if err != nil {
			fmt.Fprintln(w, err)
			failed++
			continue
		}
		fmt.Fprintln(w, strings.Join(outs, " "))
	}
	if cfg.verbose {
		st := calc.Stats()
		log.Printf("%d expressions: %d lexes, %d evaluations, %d formats", len(srcs), st.Lexes, st.Evals, st.Formats)
	}
	return failed
}

// readExprs reads expressions from r. If lines is true, each non-blank line
// is an expression; otherwise the entire input is one.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	return srcs, sc.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}

// baseList is a flag.Value holding a comma-separated list of bases.
type baseList []int

func (l *baseList) String() string {
	if l == nil {
		return ""
	}
	s := make([]string, len(*l))
	for i, b := range *l {
		s[i] = strconv.Itoa(b)
	}
	return strings.Join(s, ",")
}

func (l *baseList) Set(value string) error {
	var r baseList
	for _, f := range strings.Split(value, ",") {
		b, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return fmt.Errorf("invalid base %q", f)
		}
		r = append(r, b)
	}
	if len(r) == 0 {
		return errors.New("no bases")
	}
	*l = r
	return nil
}
