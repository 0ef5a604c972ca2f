package main

import (
	"bufio"
	"flag"
	"fmt"
	"go/types"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/konzept"
	"github.com/npillmayer/konzept/conform"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("K.REPL"), where users may query iterator
// capabilities of Go types. Candidate types are drawn from packages loaded
// into a universe; the universe defaults to this module's own packages, so
// the tool is usable out of the box.
//
// Commands given as arguments are executed before interactive mode starts;
// with -batch the tool stops after them, which is the mode for CI use.
//
// Please refer to packages "konzept" and "conform".
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	patterns := flag.String("load", "github.com/npillmayer/konzept/...", "Packages to draw candidate types from")
	initf := flag.String("init", "", "Initial command file")
	batch := flag.Bool("batch", false, "Execute argument commands, then exit")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to K.REPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	//
	// set up REPL
	repl, err := readline.New("krepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		patterns: strings.Split(*patterns, ","),
		repl:     repl,
		aliases:  make(map[string]string),
	}
	//
	// load an init file and start receiving commands
	intp.loadInitFile(*initf)
	if input != "" {
		if _, err := intp.Eval(input); err != nil && *batch {
			os.Exit(2)
		}
	}
	if *batch {
		return
	}
	tracer().Infof("Quit with <ctrl>D or 'bye'")
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	patterns   []string
	u          *conform.Universe
	repl       *readline.Instance
	aliases    map[string]string // short names for type expressions
	lastReport *conform.Report
}

// universe loads the candidate packages on first use. The load command
// replaces it.
func (intp *Intp) universe() (*conform.Universe, error) {
	if intp.u != nil {
		return intp.u, nil
	}
	tracer().Infof("Loading candidate packages %v", intp.patterns)
	u, err := conform.Load(intp.patterns...)
	if err != nil {
		return nil, err
	}
	intp.u = u
	return u, nil
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a command, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	args := strings.Fields(line)
	quit, err := intp.Execute(args[0], args[1:])
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return quit, err
}

// Execute dispatches a single command.
func (intp *Intp) Execute(cmd string, args []string) (bool, error) {
	switch cmd {
	case "check":
		return false, intp.cmdCheck(args, false)
	case "audit":
		return false, intp.cmdCheck(args, true)
	case "classify":
		return false, intp.cmdClassify(args)
	case "traits":
		return false, intp.cmdTraits(args)
	case "caps":
		return false, intp.cmdCaps(args)
	case "pkgs":
		return false, intp.cmdPkgs()
	case "load":
		return false, intp.cmdLoad(args)
	case "let":
		return false, intp.cmdLet(args)
	case "help":
		intp.help()
		return false, nil
	case "bye", "quit", "exit":
		return true, nil
	}
	return false, fmt.Errorf("no such command: %q; try 'help'", cmd)
}

// --- Commands --------------------------------------------------------------

func (intp *Intp) cmdCheck(args []string, exhaustive bool) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: check|audit <type> <capability>")
	}
	u, err := intp.universe()
	if err != nil {
		return err
	}
	T, err := intp.resolveType(u, args[0])
	if err != nil {
		return err
	}
	c, err := konzept.ParseCapability(args[1])
	if err != nil {
		return err
	}
	var report *conform.Report
	if exhaustive {
		report, err = conform.Audit(T, c)
	} else {
		report, err = conform.Check(T, c)
	}
	if err != nil {
		return err
	}
	intp.lastReport = report
	intp.printReport(report)
	return nil
}

func (intp *Intp) printReport(report *conform.Report) {
	ll := pterm.LeveledList{{Level: 0, Text: report.Candidate + " as " + report.Target.String()}}
	for _, lvl := range report.Satisfied {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "✓ " + lvl.String()})
	}
	current := konzept.Invalid
	for _, v := range report.Violations() {
		if v.Cap != current {
			current = v.Cap
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "✗ " + current.String()})
		}
		ll = append(ll, pterm.LeveledListItem{Level: 2, Text: v.Req.Name + ": " + violationText(v)})
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	if report.OK() {
		pterm.Success.Println(report.String())
	} else {
		pterm.Error.Println(report.String())
	}
	pterm.Info.Println("fingerprint " + report.Fingerprint())
}

func violationText(v conform.Violation) string {
	want := strings.Join(v.Req.Signatures(), " or ")
	if v.Got == "" {
		return "missing " + want + " (" + v.Req.Expl + ")"
	}
	return "have " + v.Got + ", want " + want + " (" + v.Req.Expl + ")"
}

func (intp *Intp) cmdClassify(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: classify <type>")
	}
	u, err := intp.universe()
	if err != nil {
		return err
	}
	T, err := intp.resolveType(u, args[0])
	if err != nil {
		return err
	}
	profile, err := conform.Classify(T)
	if err != nil {
		return err
	}
	pterm.Success.Println(profile.String())
	ll := pterm.LeveledList{{Level: 0, Text: profile.Candidate}}
	for _, c := range profile.Capabilities() {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "✓ " + c.String()})
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	pterm.Info.Println(profile.Traits.String())
	return nil
}

func (intp *Intp) cmdTraits(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: traits <type>")
	}
	u, err := intp.universe()
	if err != nil {
		return err
	}
	T, err := intp.resolveType(u, args[0])
	if err != nil {
		return err
	}
	tr, err := conform.ExtractTraits(T)
	if err != nil {
		return err
	}
	data := pterm.TableData{
		{"trait", "type"},
		{"iterator", conform.TypeString(tr.Iter)},
		{"element", conform.TypeString(tr.Value)},
		{"reference", conform.TypeString(tr.Reference())},
		{"pointer", conform.TypeString(tr.Pointer())},
		{"difference", conform.TypeString(tr.Diff)},
		{"access", tr.Mode()},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}

func (intp *Intp) cmdCaps(args []string) error {
	if len(args) == 0 {
		ll := capTree(konzept.RandomAccess, 0, pterm.LeveledList{})
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
		return nil
	}
	c, err := konzept.ParseCapability(strings.Join(args, " "))
	if err != nil {
		return err
	}
	data := pterm.TableData{{"requirement", "methods", "provides"}}
	for _, req := range conform.RequirementsFor(c) {
		sig := strings.Join(req.Signatures(), " or ")
		if req.Kind == conform.ReqImplicit {
			sig = "(implicit)"
		}
		data = append(data, []string{req.Name, sig, req.Expl})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}

// capTree renders the refinement hierarchy, strongest capability on top.
func capTree(c konzept.Capability, level int, ll pterm.LeveledList) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: c.String()})
	for _, p := range c.Requires() {
		ll = capTree(p, level+1, ll)
	}
	return ll
}

func (intp *Intp) cmdPkgs() error {
	u, err := intp.universe()
	if err != nil {
		return err
	}
	for _, path := range u.Packages() {
		pterm.Println(path)
	}
	return nil
}

func (intp *Intp) cmdLoad(args []string) error {
	if len(args) > 0 {
		intp.patterns = args
	}
	intp.u = nil
	u, err := intp.universe()
	if err != nil {
		return err
	}
	pterm.Success.Println(fmt.Sprintf("%d packages", len(u.Packages())))
	return nil
}

// cmdLet binds a short name to a type expression, saving the typing of long
// expressions over and over. Without arguments, the bindings are listed.
func (intp *Intp) cmdLet(args []string) error {
	if len(args) == 0 {
		for name, expr := range intp.aliases {
			pterm.Println(name + " = " + expr)
		}
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: let <name> <type>")
	}
	intp.aliases[args[0]] = args[1]
	return nil
}

// resolveType resolves a type expression, expanding aliases bound with let.
func (intp *Intp) resolveType(u *conform.Universe, expr string) (types.Type, error) {
	if alias, ok := intp.aliases[expr]; ok {
		expr = alias
	}
	return u.Resolve(expr)
}

func (intp *Intp) help() {
	data := pterm.TableData{
		{"command", "what it does"},
		{"check <type> <cap>", "verify a capability, stopping at the weakest gap"},
		{"audit <type> <cap>", "verify a capability, listing every gap"},
		{"classify <type>", "determine all capabilities of a type"},
		{"traits <type>", "show the associated types of a candidate"},
		{"caps [cap]", "show the capability hierarchy or one requirement table"},
		{"pkgs", "list the packages of the universe"},
		{"load [patterns…]", "reload the universe of candidate packages"},
		{"let <name> <type>", "bind a short name to a type expression"},
		{"bye", "leave"},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Println("types are written like *arraylist.Iterator[int]")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
