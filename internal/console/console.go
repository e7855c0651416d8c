package console

import (
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"cardroom/internal/config"
)

// Console is the presentation layer: it prints with pterm and asks the
// Prompter for every player decision.
type Console struct {
	cfg    *config.Config
	prompt Prompter
	out    io.Writer
	logger *slog.Logger
}

type Option func(*Console)

func WithPrompter(p Prompter) Option {
	return func(c *Console) {
		c.prompt = p
	}
}

func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

func New(cfg *config.Config, opts ...Option) *Console {
	c := &Console{
		cfg:    cfg,
		prompt: TerminalPrompter{},
		out:    os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) println(a ...any) {
	pterm.Fprintln(c.out, a...)
}

func (c *Console) info(text string) {
	pterm.Fprintln(c.out, pterm.Info.Sprint(text))
}

func (c *Console) warn(text string) {
	pterm.Fprintln(c.out, pterm.Warning.Sprint(text))
}

func (c *Console) success(text string) {
	pterm.Fprintln(c.out, pterm.Success.Sprint(text))
}

func (c *Console) section(title string) {
	pterm.Fprintln(c.out, pterm.DefaultSection.Sprint(title))
}

func (c *Console) box(title, text string) {
	pterm.Fprintln(c.out, pterm.DefaultBox.WithTitle(title).WithTitleTopCenter().Sprint(text))
}
