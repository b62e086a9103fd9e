package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var errPasswordMismatch = errors.New("passwords do not match")

// readPasswordNoEcho reads one line from in. Echo is disabled when in is a
// terminal; piped input is read as-is.
func readPasswordNoEcho(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		raw, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptNewPassword asks for a password twice and requires both to match.
func promptNewPassword(in io.Reader, out io.Writer, label string) (string, error) {
	reader := bufferedInput(in)

	password, err := readPasswordNoEcho(reader, out, label+": ")
	if err != nil {
		return "", err
	}
	confirmation, err := readPasswordNoEcho(reader, out, "Repeat "+strings.ToLower(label)+": ")
	if err != nil {
		return "", err
	}
	if password != confirmation {
		return "", errPasswordMismatch
	}
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}

// bufferedInput keeps terminals as *os.File so echo can be disabled, and
// wraps anything else once so consecutive prompts share one buffer.
func bufferedInput(in io.Reader) io.Reader {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return file
	}
	if _, ok := in.(*bufio.Reader); ok {
		return in
	}
	return bufio.NewReader(in)
}
