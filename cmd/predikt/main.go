/*
Predikt builds an LL(1) predictive parser from a user-supplied context-free
grammar and drives token streams through it.

It reads a grammar description, runs it through left-recursion elimination,
left factoring, FIRST/FOLLOW propagation, and LL(1) parse-table synthesis,
then either parses a single token stream given on the command line, drops
into an interactive REPL that parses one token stream per line, or serves
the compiled grammar's artifacts over HTTP for inspection.

Usage:

	predikt [flags]

The flags are:

	-v, --version
		Give the current version of predikt and then exit.

	-g, --grammar FILE
		Read the grammar from FILE in the counted-list format.
		Defaults to "grammar.txt" in the current working directory.

	-t, --toml
		Treat --grammar's file as a TOML grammar document instead of the
		counted-list format.

	-i, --input FILE
		Parse the whitespace-separated tokens in FILE once, print the
		verdict, and exit. Mutually exclusive with --repl and --serve.

	-r, --repl
		Start an interactive session: read one line of whitespace-separated
		tokens at a time and print the parse verdict for each.

	-s, --serve ADDR
		Serve the compiled grammar's artifacts (grammar, FIRST/FOLLOW sets,
		parse table) read-only over HTTP at ADDR, e.g. ":8080". Blocks until
		killed.

Exactly one of --input, --repl, or --serve should be given; if none is, the
grammar is built, its transformed form is printed, and predikt exits.
*/
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/RajShah-1/LL1-Parser"
	"github.com/RajShah-1/LL1-Parser/internal/grammar"
	"github.com/RajShah-1/LL1-Parser/internal/httpapi"
	"github.com/RajShah-1/LL1-Parser/internal/ingest"
	"github.com/RajShah-1/LL1-Parser/internal/parse"
	"github.com/RajShah-1/LL1-Parser/internal/render"
)

const version = "0.1.0"

const (
	ExitSuccess = iota
	ExitInitError
	ExitParseError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	grammarFile = pflag.StringP("grammar", "g", "grammar.txt", "Grammar definition file")
	useTOML     = pflag.BoolP("toml", "t", false, "Read --grammar as a TOML grammar document")
	inputFile   = pflag.StringP("input", "i", "", "Parse the tokens in this file once and exit")
	repl        = pflag.BoolP("repl", "r", false, "Start an interactive token-parsing session")
	serveAddr   = pflag.StringP("serve", "s", "", "Serve the compiled grammar's artifacts read-only at this address")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("predikt %s\n", version)
		return
	}

	p, err := buildFromFile(*grammarFile, *useTOML)
	if err != nil {
		log.Printf("ERROR: %s", err)
		returnCode = ExitInitError
		return
	}

	switch {
	case *inputFile != "":
		runInputFile(p, *inputFile)
	case *repl:
		runREPL(p)
	case *serveAddr != "":
		runServer(p, *serveAddr)
	default:
		fmt.Println(render.Grammar(p.Grammar))
	}
}

func buildFromFile(path string, asTOML bool) (*predikt.Parser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	var src *grammar.Grammar
	if asTOML {
		src, err = ingest.FromTOML(data)
	} else {
		src, err = ingest.FromCountedList(strings.NewReader(string(data)))
	}
	if err != nil {
		return nil, err
	}

	return predikt.Build(src)
}

func runInputFile(p *predikt.Parser, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("ERROR: reading %q: %v", path, err)
		returnCode = ExitParseError
		return
	}

	tokens := strings.Fields(string(data))
	verdict := p.Parse(tokens)
	printVerdict(verdict)
	if !verdict.Accepted {
		returnCode = ExitParseError
	}
}

func runREPL(p *predikt.Parser) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "predikt> "})
	if err != nil {
		log.Printf("ERROR: starting readline: %v", err)
		returnCode = ExitInitError
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		verdict := p.Parse(tokens)
		printVerdict(verdict)
	}
}

func runServer(p *predikt.Parser, addr string) {
	api := httpapi.API{
		BuildID: p.BuildID,
		Grammar: p.Grammar,
		First:   p.First,
		Follow:  p.Follow,
		Table:   p.Table,
	}
	log.Printf("INFO: serving grammar artifacts on %s%s", addr, httpapi.PathPrefix)
	if err := http.ListenAndServe(addr, api.Router()); err != nil {
		log.Printf("ERROR: %v", err)
		returnCode = ExitInitError
	}
}

func printVerdict(v parse.Verdict) {
	if v.Accepted {
		fmt.Println("accepted")
		return
	}
	fmt.Fprintf(os.Stderr, "rejected: %s\n", v.Diagnostic)
}
