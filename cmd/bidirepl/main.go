// Command bidirepl is an interactive tool for exploring the bidi algorithm.
// Input lines are resolved as paragraphs and displayed with their classes,
// embedding levels and visual order. Lines starting with ':' are commands,
// see ':help'.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/uba/bidi"
	"github.com/pterm/pterm"
)

// tracer traces with key 'uax.bidi.cli'
func tracer() tracing.Trace {
	return tracing.Select("uax.bidi.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.uax.bidi":     "Error",
		"trace.uax.bidi.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	dir := flag.String("dir", "", "Paragraph direction [LeftToRight|RightToLeft|AutoLeftToRight|AutoRightToLeft]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the UAX#9 bidi REPL")
	//
	// set up REPL
	repl, err := readline.New("bidi > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{repl: repl, bc: bidi.NewContext(), hint: bidi.HintFromEnvironment()}
	if *dir != "" {
		if intp.hint, err = bidi.ParseHint(*dir); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D or :quit, help with :help")
	var level tracing.TraceLevel
	switch *tlevel {
	case "Debug":
		level = tracing.LevelDebug
	case "Info":
		level = tracing.LevelInfo
	case "Error":
		level = tracing.LevelError
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().SetTraceLevel(level)
	tracing.Select("uax.bidi").SetTraceLevel(level) // tracing of the algorithm
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	bc       *bidi.Context
	hint     bidi.ParagraphDirectionHint
	nsm      bool // apply rule L3
	testing  bool // uppercase letters are RTL
	showRuns bool
	last     []rune // most recent paragraph
}

func (intp *Intp) String() string {
	var flags []string
	if intp.nsm {
		flags = append(flags, "nsm")
	}
	if intp.testing {
		flags = append(flags, "test")
	}
	if intp.showRuns {
		flags = append(flags, "runs")
	}
	return fmt.Sprintf("( %s %s )", intp.hint, strings.Join(flags, " "))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			intp.resolve([]rune(line))
			continue
		}
		op := parseCommand(line)
		err, quit := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single REPL command.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	LTR
	RTL
	AUTO
	AUTORTL
	ENV
	NSM
	TEST
	RUNS
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"ltr":     LTR,
	"rtl":     RTL,
	"auto":    AUTO,
	"autortl": AUTORTL,
	"env":     ENV,
	"nsm":     NSM,
	"test":    TEST,
	"runs":    RUNS,
}

// parseCommand parses lines like ":rtl" or ":help levels". Unknown commands
// are mapped to help.
func parseCommand(line string) *Op {
	name, arg, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(line), ":"), " ")
	code, ok := opMap[strings.ToLower(name)]
	if !ok {
		tracer().Infof("unknown command %q", name)
		code = HELP
	}
	return &Op{code: code, arg: strings.TrimSpace(arg)}
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	LTR:     hintOp(bidi.HintLeftToRight),
	RTL:     hintOp(bidi.HintRightToLeft),
	AUTO:    hintOp(bidi.HintAutoLeftToRight),
	AUTORTL: hintOp(bidi.HintAutoRightToLeft),
	ENV:     envOp,
	NSM:     nsmOp,
	TEST:    testOp,
	RUNS:    runsOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	tracer().Debugf("op = %v", op)
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

// hintOp sets the paragraph direction and re-displays the last paragraph.
func hintOp(hint bidi.ParagraphDirectionHint) func(*Intp, *Op) (error, bool) {
	return func(intp *Intp, op *Op) (error, bool) {
		intp.hint = hint
		intp.redisplay()
		return nil, false
	}
}

func envOp(intp *Intp, op *Op) (error, bool) {
	intp.hint = bidi.HintFromEnvironment()
	pterm.Info.Printf("direction from environment: %s\n", intp.hint)
	intp.redisplay()
	return nil, false
}

func nsmOp(intp *Intp, op *Op) (error, bool) {
	intp.nsm = !intp.nsm
	intp.redisplay()
	return nil, false
}

func testOp(intp *Intp, op *Op) (error, bool) {
	intp.testing = !intp.testing
	intp.redisplay()
	return nil, false
}

func runsOp(intp *Intp, op *Op) (error, bool) {
	intp.showRuns = !intp.showRuns
	intp.redisplay()
	return nil, false
}

// ----------------------------------------------------------------------

func (intp *Intp) redisplay() {
	if len(intp.last) > 0 {
		intp.resolve(intp.last)
	}
}

func (intp *Intp) resolve(paragraph []rune) {
	intp.last = paragraph
	intp.bc = bidi.NewContext(bidi.Testing(intp.testing), bidi.ReorderNonSpacingMarks(intp.nsm))
	intp.bc.ResolveParagraph(paragraph, intp.hint)
	tracer().Infof("paragraph level is %d", intp.bc.BaseLevel())
	printCharacters(intp.bc, paragraph)
	printVisualLine(intp.bc, paragraph)
	if intp.showRuns {
		printRuns(intp.bc)
	}
}
