package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/th3l1ghtd3m0n/noq"
	"github.com/th3l1ghtd3m0n/noq/termr"
)

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

// setTraceLevel switches every noq tracer to the given level.
func setTraceLevel(level string) {
	l := tracing.TraceLevelFromString(level)
	for _, key := range []string{"noq.termr", "noq.lexer", "noq.lang", "noq.session", "noq.repl"} {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// completer proposes statement keywords and REPL commands.
var completer = readline.NewPrefixCompleter(
	readline.PcItem("rule"),
	readline.PcItem("shape"),
	readline.PcItem("apply",
		readline.PcItem("rule")),
	readline.PcItem("done"),
	readline.PcItem(".help"),
	readline.PcItem(".rules"),
	readline.PcItem(".shape"),
	readline.PcItem(".tree"),
	readline.PcItem(".undo"),
	readline.PcItem(".load"),
	readline.PcItem(".trace",
		readline.PcItem("Debug"),
		readline.PcItem("Info"),
		readline.PcItem("Error")),
	readline.PcItem(".quit"),
)

// repl runs the interactive loop until .quit or EOF.
func repl(intp *Intp, cfg *Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.History,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()
	pterm.Info.Println("Welcome to noq " + Version)
	tracer().Infof("Quit with <ctrl>D or .quit")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ".") {
			if quit := intp.dotCommand(line); quit {
				break
			}
			continue
		}
		if err := intp.ExecLine(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
	return nil
}

// dotCommand executes a REPL meta command. It reports whether the REPL
// should quit.
func (intp *Intp) dotCommand(line string) bool {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true
	case ".help":
		printHelp()
	case ".rules":
		if intp.session.RuleCount() == 0 {
			pterm.Info.Println("no rules defined")
			break
		}
		intp.session.Each(func(name string, rule termr.Rule) {
			pterm.Info.Println(fmt.Sprintf("%-12s %v", name, rule))
		})
	case ".shape":
		if cur, ok := intp.session.Current(); ok {
			pterm.Info.Println(cur.String())
		} else {
			pterm.Info.Println("no shaping in progress")
		}
	case ".tree":
		if cur, ok := intp.session.Current(); ok {
			printTree(cur)
		} else {
			pterm.Info.Println("no shaping in progress")
		}
	case ".undo":
		shape, err := intp.session.Undo()
		if err != nil {
			pterm.Error.Println(err.Error())
			break
		}
		pterm.Info.Println(shape.String())
	case ".load":
		if len(parts) < 2 {
			pterm.Error.Println("usage: .load <file>")
			break
		}
		if err := intp.ExecFile(parts[1]); err != nil {
			pterm.Error.Println(err.Error())
		}
	case ".trace":
		if len(parts) < 2 {
			pterm.Error.Println("usage: .trace <Debug|Info|Error>")
			break
		}
		setTraceLevel(parts[1])
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %s, try .help", parts[0]))
	}
	return false
}

func printHelp() {
	pterm.Println("noq statements:")
	pterm.Println("  rule <name> [:] <head> = <body>   define a named rewrite rule")
	pterm.Println("  shape <expr>                      start shaping an expression")
	pterm.Println("  apply <name>                      apply a defined rule once")
	pterm.Println("  apply rule <head> = <body>        apply an anonymous rule once")
	pterm.Println("  done                              finish the current shaping")
	pterm.Println("REPL commands:")
	pterm.Println("  .rules           list defined rules")
	pterm.Println("  .shape           print the current shape")
	pterm.Println("  .tree            print the current shape as a tree")
	pterm.Println("  .undo            rewind the last rewrite step")
	pterm.Println("  .load <file>     execute a noq source file")
	pterm.Println("  .trace <level>   set the trace level [Debug|Info|Error]")
	pterm.Println("  .quit            leave the REPL")
}

// printTree displays a term as a tree on the terminal, functors as inner
// nodes and symbols as leaves.
func printTree(e noq.Expr) {
	ll := leveledExpr(e, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledExpr(e noq.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch t := e.(type) {
	case noq.Symbol:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  string(t),
		})
	case noq.Application:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  t.Functor,
		})
		for _, arg := range t.Args {
			ll = leveledExpr(arg, ll, level+1)
		}
	}
	return ll
}
