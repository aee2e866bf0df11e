package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via PUSHIT_NO_INTERACTIVE
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (PUSHIT_NO_INTERACTIVE is set)")

// ErrCanceled is returned when the user cancels a prompt with Ctrl+C or Esc
var ErrCanceled = errors.New("canceled")

// InteractiveAllowed reports whether prompts may be shown
func InteractiveAllowed() bool {
	return os.Getenv("PUSHIT_NO_INTERACTIVE") == ""
}

func checkInteractiveAllowed() error {
	if !InteractiveAllowed() {
		return ErrInteractiveDisabled
	}
	return nil
}

// textInputModel is a simple text input prompt model
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(fmt.Sprintf("%s\n%s\n\n(Press Enter to submit, Ctrl+C to cancel)", m.prompt, m.textInput.View()))
}

// PromptTextInput prompts the user for a single line of text on the terminal
func PromptTextInput(prompt, placeholder string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.Width = 80

	m := textInputModel{
		textInput: ti,
		prompt:    prompt,
	}

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	if finalModel, ok := model.(textInputModel); ok {
		if finalModel.err != nil {
			return "", finalModel.err
		}
		return finalModel.textInput.Value(), nil
	}

	return "", fmt.Errorf("unexpected model type")
}

// PromptConfirm prompts the user for yes/no confirmation on the terminal
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	answer := defaultValue
	if err := survey.AskOne(&survey.Confirm{Message: prompt, Default: defaultValue}, &answer); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, ErrCanceled
		}
		return false, err
	}
	return answer, nil
}

// ReadLine writes prompt to w and blocks until one line is read from r.
// The trailing newline is dropped; EOF before any input yields an empty string.
// Callers asking several questions must reuse r so buffered input is not lost.
func ReadLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}

	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParseYesNo interprets a typed answer, returning defaultValue for an empty one
func ParseYesNo(answer string, defaultValue bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return defaultValue, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q (expected y or n)", answer)
	}
}

// Prompter asks questions on the console. On a terminal it uses the
// bubbletea and survey widgets; otherwise it falls back to plain line reads.
type Prompter struct {
	In  io.Reader
	Out io.Writer
	TTY bool

	reader *bufio.Reader
}

// NewPrompter creates a Prompter reading from in and writing to out.
// The terminal widgets are only used when in is the process's own terminal stdin.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		In:     in,
		Out:    out,
		TTY:    in == os.Stdin && IsTTY(),
		reader: bufio.NewReader(in),
	}
}

// lineReader returns the buffered reader shared by every question asked on In
func (p *Prompter) lineReader() *bufio.Reader {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	return p.reader
}

// AskLine asks for a single line of text. The placeholder is shown as the
// value an empty answer stands for.
func (p *Prompter) AskLine(prompt, placeholder string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}
	if p.TTY {
		return PromptTextInput(prompt, placeholder)
	}
	if placeholder != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, placeholder)
	}
	return ReadLine(p.lineReader(), p.Out, prompt+" ")
}

// Confirm asks a yes/no question
func (p *Prompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}
	if p.TTY {
		return PromptConfirm(prompt, defaultValue)
	}

	hint := "[y/N]"
	if defaultValue {
		hint = "[Y/n]"
	}
	answer, err := ReadLine(p.lineReader(), p.Out, fmt.Sprintf("%s %s ", prompt, hint))
	if err != nil {
		return false, err
	}
	return ParseYesNo(answer, defaultValue)
}
