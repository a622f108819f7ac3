package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/hinglish"
	"github.com/npillmayer/hinglish/cmd/hinglish/internal/config"
	"github.com/npillmayer/hinglish/wordlist"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// environment holds the process resources the command works on.
type environment struct {
	stdin           io.Reader
	stdout, stderr  io.Writer
	stdinIsTerminal func() bool
}

type flags struct {
	toHindi     bool
	toRoman     bool
	interactive bool
	inputFile   string
	outputFile  string
	words       []string
	configFile  string
	verbose     bool
}

func newRootCmd(env *environment) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "hinglish [text...]",
		Short: "Hinglish ↔ Hindi (Devanagari) transliterator",
		Long: `Hinglish ↔ Hindi (Devanagari) transliterator

Converts Roman Hindi (Hinglish) to Devanagari and back. Without a forced
direction the script of the input is detected automatically.`,
		Example: `  hinglish "Namaste Dosto"
  hinglish "नमस्ते दोस्तो"
  hinglish --to-hindi "Kya haal hai"
  hinglish --to-roman "क्या हाल है"
  hinglish --interactive
  hinglish --file input.txt --output output.txt
  echo "Namaste" | hinglish`,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, env, &f, args)
		},
	}
	cmd.SetIn(env.stdin)
	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)

	fl := cmd.Flags()
	fl.BoolVarP(&f.toHindi, "to-hindi", "H", false, "force Roman → Devanagari conversion")
	fl.BoolVarP(&f.toRoman, "to-roman", "R", false, "force Devanagari → Roman conversion")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "interactive mode (translate line by line)")
	fl.StringVarP(&f.inputFile, "file", "f", "", "input file to translate")
	fl.StringVarP(&f.outputFile, "output", "o", "", "output file (default: stdout)")
	fl.StringSliceVar(&f.words, "words", nil, "custom word list, as roman:path or devanagari:path")
	fl.StringVar(&f.configFile, "config", "", "config file (default: $"+config.EnvConfigFile+" or "+config.DefaultFile+")")
	fl.BoolVar(&f.verbose, "verbose", false, "verbose logging")
	cmd.MarkFlagsMutuallyExclusive("to-hindi", "to-roman")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hinglish %s\n", version)
		},
	}
}

func run(cmd *cobra.Command, env *environment, f *flags, args []string) error {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return err
	}
	switch {
	case f.toHindi:
		cfg.Mode = config.ModeHindi
	case f.toRoman:
		cfg.Mode = config.ModeRoman
	}
	cfg.Words = append(cfg.Words, f.words...)
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, f.verbose, env.stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	s, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	switch {
	case f.interactive:
		return s.interactive(env.stdin, env.stdout)
	case f.inputFile != "":
		return convertFile(s, f.inputFile, f.outputFile, env)
	case len(args) > 0:
		return writeResult(s.convert(strings.Join(args, " "))+"\n", f.outputFile, env)
	case !env.stdinIsTerminal():
		lines, err := readLines(env.stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return writeResult(joinLines(s.convertLines(lines)), f.outputFile, env)
	}
	return cmd.Help()
}

// newSession creates a transliterator as configured and loads all custom
// word lists into it.
func newSession(cfg *config.Config, logger *zap.Logger) (*session, error) {
	tr := hinglish.New(nil,
		hinglish.WithWorkers(cfg.Workers),
		hinglish.WithCacheSize(cfg.CacheSize),
	)
	for _, list := range cfg.WordLists() {
		if err := loadWordList(tr, list); err != nil {
			logger.Error("failed to load word list", zap.String("path", list.Path), zap.Error(err))
			return nil, err
		}
		logger.Info("loaded word list", zap.String("path", list.Path),
			zap.String("direction", list.Direction))
	}
	logger.Debug("session ready", zap.String("mode", cfg.Mode), zap.Int("workers", cfg.Workers))
	return &session{tr: tr, mode: cfg.Mode, logger: logger}, nil
}

func loadWordList(tr *hinglish.Transliterator, list config.WordList) error {
	file, err := wordlist.Open(list.Path)
	if err != nil {
		return err
	}
	defer file.Close()
	if list.Direction == config.DirectionDevanagari {
		err = tr.DevanagariEngine().AddWordsFrom(file)
	} else {
		err = tr.RomanEngine().AddWordsFrom(file)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", list.Path, err)
	}
	return nil
}

func convertFile(s *session, input, output string, env *environment) error {
	in, err := os.Open(input)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file not found: %s", input)
	} else if err != nil {
		return err
	}
	defer in.Close()
	lines, err := readLines(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	s.logger.Info("converting file", zap.String("input", input), zap.Int("lines", len(lines)))
	if err := writeResult(joinLines(s.convertLines(lines)), output, env); err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintf(env.stdout, "Translated: %s → %s\n", input, output)
	}
	return nil
}

func writeResult(text, output string, env *environment) error {
	if output == "" {
		_, err := io.WriteString(env.stdout, text)
		return err
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
