// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package main provides the mnemonic CLI tool for generating,
// validating and deriving seeds from BIP39 phrases.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/mnemonic"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const maxWidth = 72

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	language     string
	wordlistPath string
	separator    string
	wordCount    int
	entropyHex   string
	passphrase   string
	askPass      bool

	rootCmd = &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a BIP39 mnemonic phrase",
		Long: `Generate a BIP39 mnemonic phrase from cryptographically random entropy.

Valid word counts are: 12, 15, 18, 21, or 24, encoding 128, 160, 192,
224 or 256 bits of entropy. With --entropy, the given hex bytes are
encoded deterministically instead of fresh randomness.

SECURITY TIP: Add a space before the command to prevent it from being
saved in your shell history when passing --entropy or a passphrase.
Most shells (bash, zsh) are configured to ignore commands that start
with a space. Check your HISTCONTROL or HIST_IGNORE_SPACE settings.`,
		Example: `  mnemonic
  mnemonic --words 24
  mnemonic --language english
  mnemonic --wordlist ./japanese.txt --separator ideographic
  mnemonic --entropy 9e885d952ad362caeb4efe34a8e91bd2`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wl, err := selectWordlist()
			if err != nil {
				return err
			}

			if entropyHex != "" {
				entropy, err := hex.DecodeString(entropyHex)
				if err != nil {
					return fmt.Errorf("could not parse entropy hex: %w", err)
				}
				sentence, err := mnemonic.EntropyToMnemonic(entropy, wl)
				if err != nil {
					return formatError(err)
				}
				fmt.Println(sentence)
				return nil
			}

			bits, err := bitsForWordCount(wordCount)
			if err != nil {
				return err
			}
			sentence, err := mnemonic.Generate(wl, bits)
			if err != nil {
				return formatError(err)
			}
			fmt.Println(sentence)
			return nil
		},
	}

	validateCmd = &cobra.Command{
		Use:   "validate [phrase]",
		Short: "Check whether a phrase is a valid mnemonic",
		Long: `Check whether a phrase is a valid BIP39 mnemonic: known words,
allowed word count, and a matching checksum. Exits 0 when valid and 1
when not. Use "entropy" instead to see the reason for a failure.`,
		Example: `  mnemonic validate zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong
  echo "pill frown erosion humor invest inquiry rich garment seek such mention punch" | mnemonic validate`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := selectWordlist()
			if err != nil {
				return err
			}
			sentence, err := readPhrase(args, wl)
			if err != nil {
				return err
			}
			if !mnemonic.Validate(sentence, wl) {
				return formatError(fmt.Errorf("invalid mnemonic"))
			}
			fmt.Println("valid")
			return nil
		},
	}

	entropyCmd = &cobra.Command{
		Use:   "entropy [phrase]",
		Short: "Decode a mnemonic back to its entropy hex",
		Long: `Decode a mnemonic phrase back to the entropy bytes it encodes,
verifying words, length and checksum. The failure reason is reported
when decoding is not possible.`,
		Example:      `  mnemonic entropy ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := selectWordlist()
			if err != nil {
				return err
			}
			sentence, err := readPhrase(args, wl)
			if err != nil {
				return err
			}
			entropy, err := mnemonic.MnemonicToEntropy(sentence, wl)
			if err != nil {
				return formatError(err)
			}
			fmt.Println(hex.EncodeToString(entropy))
			return nil
		},
	}

	seedCmd = &cobra.Command{
		Use:   "seed [phrase]",
		Short: "Derive the 64-byte seed from a mnemonic",
		Long: `Derive the 64-byte BIP39 seed from a mnemonic phrase and an
optional passphrase, printed as hex.

Seed derivation deliberately performs no wordlist or checksum
validation: any phrase yields a deterministic seed. Run "validate"
first when recovering a wallet.`,
		Example: `  mnemonic seed pill frown erosion humor invest inquiry rich garment seek such mention punch
  mnemonic seed --passphrase TREZOR abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about
  echo "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong" | mnemonic seed --ask-passphrase`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := selectWordlist()
			if err != nil {
				return err
			}
			sentence, err := readPhrase(args, wl)
			if err != nil {
				return err
			}
			if askPass {
				pass, err := readPassword("Enter the seed passphrase (empty for none): ")
				if err != nil {
					return err
				}
				passphrase = string(pass)
			}
			seed, err := mnemonic.Seed(sentence, passphrase)
			if err != nil {
				return formatError(err)
			}
			fmt.Println(hex.EncodeToString(seed))
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex (complex@ft.hn)\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for mnemonic.

To load completions:

Bash:
  $ source <(mnemonic completion bash)

Zsh:
  $ mnemonic completion zsh > "${fpath[1]}/_mnemonic"

Fish:
  $ mnemonic completion fish | source

PowerShell:
  PS> mnemonic completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "en", "Language of the wordlist")
	rootCmd.PersistentFlags().StringVar(&wordlistPath, "wordlist", "", "Path to a 2048-word wordlist file")
	rootCmd.PersistentFlags().StringVar(&separator, "separator", "space", "Word separator for --wordlist: space or ideographic")
	rootCmd.Flags().IntVarP(&wordCount, "words", "w", 12, "Word count to generate (12, 15, 18, 21 or 24)")
	rootCmd.Flags().StringVar(&entropyHex, "entropy", "", "Hex entropy to encode instead of random bytes")
	seedCmd.Flags().StringVar(&passphrase, "passphrase", "", "Passphrase for seed derivation")
	seedCmd.Flags().BoolVar(&askPass, "ask-passphrase", false, "Prompt for the passphrase on the terminal")
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(entropyCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bitsForWordCount maps a phrase word count to its entropy strength.
func bitsForWordCount(words int) (int, error) {
	switch words {
	case 12:
		return 128, nil
	case 15:
		return 160, nil
	case 18:
		return 192, nil
	case 21:
		return 224, nil
	case 24:
		return 256, nil
	}
	return 0, fmt.Errorf("invalid word count: %d (must be 12, 15, 18, 21, or 24)", words)
}

// readPhrase joins argument words, or reads one line from a stdin pipe
// when no arguments are given. Argument words are joined with the
// wordlist's separator so ideographic-space lists work from the shell.
func readPhrase(args []string, wl *mnemonic.Wordlist) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, wl.Separator()), nil
	}
	if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeNamedPipe) == 0 {
		return "", fmt.Errorf("no phrase given: pass it as arguments or pipe it on stdin")
	}
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("could not read phrase: %w", err)
		}
		return "", fmt.Errorf("no phrase given on stdin")
	}
	return strings.TrimSpace(sc.Text()), nil
}

var wordlistNames = map[lang.Tag]func() *mnemonic.Wordlist{
	lang.AmericanEnglish: mnemonic.English,
	lang.BritishEnglish:  mnemonic.English,
	lang.English:         mnemonic.English,
}

// selectWordlist resolves the wordlist: an explicit --wordlist file
// wins, otherwise the --language name is matched against the built-in
// lists.
func selectWordlist() (*mnemonic.Wordlist, error) {
	if wordlistPath != "" {
		sep, err := separatorFor(separator)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(wordlistPath) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("could not open %s: %w", wordlistPath, err)
		}
		defer f.Close() //nolint:errcheck
		wl, err := mnemonic.ParseWordlist(wordlistPath, f, sep)
		if err != nil {
			return nil, fmt.Errorf("could not load wordlist %s: %w", wordlistPath, err)
		}
		return wl, nil
	}
	wl := getWordlist(language)
	if wl == nil {
		return nil, fmt.Errorf("this language is not supported; use --wordlist to supply a list")
	}
	return wl, nil
}

func separatorFor(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "space":
		return mnemonic.SeparatorSpace, nil
	case "ideographic":
		return mnemonic.SeparatorIdeographic, nil
	}
	return "", fmt.Errorf("unknown separator %q: use space or ideographic", name)
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// getWordlist matches a language given by tag ("en") or by English
// name ("english") against the built-in lists.
func getWordlist(language string) *mnemonic.Wordlist {
	language = sanitizeLang(language)
	tag := lang.Make(language)
	en := display.English.Languages() // default language name matcher
	for t := range wordlistNames {
		if sanitizeLang(en.Name(t)) == language {
			tag = t
			break
		}
	}
	if tag == lang.Und { // Unknown language
		return nil
	}
	if get := wordlistNames[tag]; get != nil {
		return get()
	}
	base, _ := tag.Base()
	btag := lang.MustParse(base.String())
	if get := wordlistNames[btag]; get != nil {
		return get()
	}
	return nil
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// formatError shows a styled error block on a terminal and returns a
// plain error so the command exits non-zero.
func formatError(err error) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, err.Error())
		b.WriteRune('\n')

		fmt.Print(b.String())
	}
	return err
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	defer fmt.Fprintf(os.Stderr, "\n")
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                     //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read passphrase: %w", err)
	}
	return pass, nil
}
