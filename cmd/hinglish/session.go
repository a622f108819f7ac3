package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/hinglish"
	"github.com/npillmayer/hinglish/cmd/hinglish/internal/config"
	"go.uber.org/zap"
)

// session converts text in one of the configured modes.
type session struct {
	tr     *hinglish.Transliterator
	mode   string
	logger *zap.Logger
}

func (s *session) convert(text string) string {
	switch s.mode {
	case config.ModeHindi:
		return s.tr.ToDevanagari(text)
	case config.ModeRoman:
		return s.tr.ToRoman(text)
	}
	return s.tr.Convert(text)
}

// convertLines converts every line on its own. In auto mode each line is
// classified separately.
func (s *session) convertLines(lines []string) []string {
	switch s.mode {
	case config.ModeHindi:
		return s.tr.ToDevanagariBatch(lines)
	case config.ModeRoman:
		return s.tr.ToRomanBatch(lines)
	}
	return s.tr.ConvertBatch(lines)
}

var modeDescriptions = map[string]string{
	config.ModeHindi: "Roman → Hindi (Devanagari)",
	config.ModeRoman: "Hindi → Roman (Hinglish)",
	config.ModeAuto:  "Auto-detect",
}

const banner = `=======================================================
  hinglish: interactive transliterator
  Type text and press Enter to translate.
  Commands: /hindi  /roman  /auto  /help  /quit
=======================================================
`

const help = `  /hindi  force Roman → Devanagari
  /roman  force Devanagari → Roman
  /auto   auto-detect input script
  /quit   exit
`

// interactive runs a read-convert-print loop until /quit, /exit or end of
// input.
func (s *session) interactive(in io.Reader, out io.Writer) error {
	fmt.Fprint(out, banner+"\n")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "[%s] > ", s.mode)
		if !scanner.Scan() {
			fmt.Fprintln(out, "\nBye!")
			return scanner.Err()
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		switch command := strings.ToLower(text); command {
		case "/quit", "/exit":
			fmt.Fprintln(out, "Bye!")
			return nil
		case "/hindi", "/roman", "/auto":
			s.mode = strings.TrimPrefix(command, "/")
			fmt.Fprintf(out, "  Mode: %s\n", modeDescriptions[s.mode])
			continue
		case "/help":
			fmt.Fprint(out, help)
			continue
		}
		fmt.Fprintf(out, "  → %s\n\n", s.convert(text))
	}
}
