package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// readLine prints prompt to w and reads one trimmed line. A final line
// without a newline is accepted.
func readLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readHiddenPassword reads a password from the terminal without echo.
func readHiddenPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Password (hidden)\n> "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// PromptCredential asks for one extra user: the email on reader, the
// password on the terminal.
func PromptCredential(reader *bufio.Reader, w io.Writer) (Credential, error) {
	email, err := readLine(reader, "Email", w)
	if err != nil {
		return Credential{}, err
	}
	password, err := readHiddenPassword(w)
	if err != nil {
		return Credential{}, err
	}
	if email == "" || password == "" {
		return Credential{}, ErrEmptyCredential
	}
	return Credential{Email: email, Password: password}, nil
}
