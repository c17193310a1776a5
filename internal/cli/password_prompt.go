package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var errNotTerminal = errors.New("stdin is not a terminal")

// PasswordPrompt asks for a new password twice. On a terminal the input is
// not echoed; piped input is read line by line.
type PasswordPrompt struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

func NewPasswordPrompt(in *os.File, out io.Writer) *PasswordPrompt {
	return &PasswordPrompt{in: in, out: out, reader: bufio.NewReader(in)}
}

func (prompt *PasswordPrompt) NewPassword() (string, error) {
	first, err := prompt.ask("New password: ")
	if err != nil {
		return "", err
	}
	second, err := prompt.ask("Repeat password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errors.New("passwords do not match")
	}
	return first, nil
}

func (prompt *PasswordPrompt) ask(label string) (string, error) {
	if prompt.in == nil {
		return "", errors.New("stdin unavailable")
	}
	fmt.Fprint(prompt.out, label)

	line, err := withEchoDisabled(prompt.in, prompt.readLine)
	if errors.Is(err, errNotTerminal) {
		return prompt.readLine()
	}
	fmt.Fprintln(prompt.out)
	return line, err
}

func (prompt *PasswordPrompt) readLine() (string, error) {
	line, err := prompt.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if err != nil && line == "" {
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}
