package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/marklogic-publisher/internal/adapters/driven/crypto"
)

var encryptGenerateKey bool

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a credential for the configuration file",
	Long: `Reads a secret from stdin and prints it in the enc: form accepted for
ml.user and ml.password. The key is read from --secret-key-file.

Use --generate-key to print a new random key instead.`,
	Args: cobra.NoArgs,
	RunE: runEncrypt,
}

func init() {
	encryptCmd.Flags().BoolVar(&encryptGenerateKey, "generate-key", false, "print a new base64 key and exit")
	rootCmd.AddCommand(encryptCmd)
}

func runEncrypt(cmd *cobra.Command, _ []string) error {
	if encryptGenerateKey {
		key, err := crypto.GenerateKey()
		if err != nil {
			return err
		}
		cmd.Println(key)
		return nil
	}

	box, err := loadSecretBox()
	if err != nil {
		return err
	}

	secret := readSecret(cmd)
	if secret == "" {
		return errors.New("no secret given")
	}

	sealed, err := box.Encrypt(secret)
	if err != nil {
		return err
	}
	cmd.Println(sealed)
	return nil
}

// readSecret reads one line without echo when stdin is a terminal.
func readSecret(cmd *cobra.Command) string {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		cmd.PrintErr("Secret: ")
		secret, err := term.ReadPassword(int(f.Fd()))
		cmd.PrintErrln()
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	// Fallback to regular input
	return readLine(in)
}

func readLine(in io.Reader) string {
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(line)
}
