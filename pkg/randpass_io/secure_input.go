// pkg/randpass_io/secure_input.go

package randpass_io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/randpass/pkg/crypto"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ReadSecret reads one secret line. On a terminal the prompt goes to
// prompt and input is not echoed; otherwise the first line of in is used.
func ReadSecret(rc *RuntimeContext, in io.Reader, prompt io.Writer, label string) (string, error) {
	logger := otelzap.Ctx(rc.Ctx)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.Debug("Reading secret from terminal")
		fmt.Fprint(prompt, label)
		secret, err := term.ReadPassword(int(f.Fd()))
		defer crypto.SecureZero(secret)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", cerr.Wrap(err, "failed to read password")
		}
		return string(secret), nil
	}

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", cerr.Wrap(err, "failed to read input")
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" && err == io.EOF {
		return "", cerr.WithHint(cerr.New("no input received"), "pipe the password on stdin")
	}

	logger.Debug("Read secret from stdin", zap.Int("length", len(line)))
	return line, nil
}
