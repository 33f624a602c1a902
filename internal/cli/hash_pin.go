package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sproutworks/ecopods/internal/services"
	"golang.org/x/term"
)

// RunHashPINCommand prompts for a 4-digit admin PIN and prints a bcrypt
// hash suitable for the ADMIN_PIN_HASH environment variable. On a real
// terminal the PIN is read with echo disabled.
func RunHashPINCommand(input io.Reader, output io.Writer) error {
	pin, err := readPIN(input, output)
	if err != nil {
		return fmt.Errorf("read pin: %w", err)
	}

	hash, err := services.HashAdminPIN(pin)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, hash)
	return nil
}

func readPIN(input io.Reader, output io.Writer) (string, error) {
	fmt.Fprint(output, "Admin PIN: ")

	if file, ok := input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		raw, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(output)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
