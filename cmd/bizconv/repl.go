package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tuannm99/bizconv/internal/wire"
	"github.com/tuannm99/bizconv/pkg/util"
)

const prompt = "bizconv> "

// ---- History ----

type History struct {
	path  string
	lines []string
}

func NewHistory(path string) *History {
	return &History{path: path}
}

func (h *History) Load(max int) error {
	if h.path == "" {
		return nil
	}
	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer util.CloseFileFunc(f)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		h.lines = append(h.lines, s)
		if max > 0 && len(h.lines) > max {
			h.lines = h.lines[len(h.lines)-max:]
		}
	}
	return sc.Err()
}

func (h *History) Append(line string) error {
	line = compactOneLine(line)
	if line == "" || h.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return err
	}
	h.lines = append(h.lines, line)
	return nil
}

// Last returns up to n most recent lines, oldest first, with their 1-based
// position in the history.
func (h *History) Last(n int) ([]string, int) {
	if n <= 0 || n > len(h.lines) {
		n = len(h.lines)
	}
	start := len(h.lines) - n
	return h.lines[start:], start + 1
}

func compactOneLine(s string) string {
	// replace newlines/tabs with spaces, then collapse multiple spaces
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.Join(strings.Fields(s), " ")
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".bizconv_history"
	}
	return filepath.Join(home, ".bizconv_history")
}

// ---- REPL ----

const replHelp = `meta commands:
  \q | quit | exit       quit
  \history               print history
  \kind [K]              set (or clear) the kind used by encode
  \format F              switch output format (json|yaml|cbor|frame)
  \help                  show help

commands:
  encode VALUE...
  decode DOC
  criteria DOC
  decode-criteria DOC
  enum [TABLE [NAME|CODE]]
  parameter COLUMN VALUE
  selection DOC
  decode-entity DOC`

func isMetaCommand(line string) bool {
	return strings.HasPrefix(line, "\\") || line == "quit" || line == "exit"
}

// meta runs one meta command and reports whether the REPL should stop.
func (a *app) meta(line string, h *History) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "\\q", "quit", "exit":
		return true
	case "\\help":
		fmt.Fprintln(a.out, replHelp)
	case "\\history":
		lines, first := h.Last(50)
		for i, l := range lines {
			fmt.Fprintf(a.out, "%5d  %s\n", first+i, l)
		}
	case "\\kind":
		a.kind = ""
		if len(fields) > 1 {
			a.kind = fields[1]
		}
		fmt.Fprintf(a.out, "kind: %q\n", a.kind)
	case "\\format":
		if len(fields) < 2 {
			fmt.Fprintf(a.out, "format: %s\n", a.format)
			break
		}
		f, err := wire.ParseFormat(fields[1])
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			break
		}
		a.format = f
	default:
		fmt.Fprintf(a.out, "unknown command: %s\n", line)
	}
	return false
}

// exec runs one command line and prints errors instead of returning them.
func (a *app) exec(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	if err := a.run(fields[0], fields[1:]); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
	}
}

func (a *app) repl(histPath string, histMax int) error {
	h := NewHistory(histPath)
	if err := h.Load(histMax); err != nil {
		a.log.Warn("load history", "path", histPath, "err", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	// preload history into readline so up-arrow works immediately
	for _, line := range h.lines {
		_ = rl.SaveHistory(line)
	}

	fmt.Fprintln(a.out, "type \\help for help")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			// EOF
			fmt.Fprintln(a.out)
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		_ = h.Append(line)

		if isMetaCommand(line) {
			if a.meta(line, h) {
				return nil
			}
			continue
		}
		a.exec(line)
	}
}
