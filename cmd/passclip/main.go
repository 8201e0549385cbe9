// Command passclip generates a random password, prints it and copies it to
// the clipboard.
//
//	-l  password length, defaults to 16
//	-u  uppercase characters, defaults to 2
//	-d  digits, defaults to 2
//	-s  special characters, defaults to 2
//
// Values that are not non-negative integers fall back to the default. When
// the class counts add up to more than the length, the length grows to fit
// them.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/passclip/passclip-go/internal/clipboard"
	"github.com/passclip/passclip-go/internal/crypto"
)

const version = "0.1.1"

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, clipboard.System{}); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		slog.Error("passclip failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, clip clipboard.Writer) error {
	flagSet := pflag.NewFlagSet("passclip", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	length := flagSet.StringP("length", "l", "", "password length, defaults to 16 when omitted")
	upper := flagSet.StringP("upper", "u", "", "uppercase characters, defaults to 2 when omitted")
	digits := flagSet.StringP("digits", "d", "", "number of digits, defaults to 2 when omitted")
	special := flagSet.StringP("special", "s", "", "special characters, defaults to 2 when omitted")
	seed := flagSet.String("seed", "", "derive the password deterministically from this phrase")
	noClipboard := flagSet.BoolP("no-clipboard", "n", false, "print the password without copying it")
	showVersion := flagSet.BoolP("version", "V", false, "print version and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if *showVersion {
		fmt.Fprintf(stdout, "passclip %s\n", version)
		return nil
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		fmt.Fprintf(stderr, "unexpected argument: %s\n", rest[0])
		return errUsage
	}

	q := crypto.ResolveQuota(
		crypto.ParseCount(*length, crypto.DefaultLength),
		crypto.ParseCount(*upper, crypto.DefaultUpper),
		crypto.ParseCount(*digits, crypto.DefaultDigit),
		crypto.ParseCount(*special, crypto.DefaultSpecial),
	)

	var rnd crypto.Random
	if flagSet.Changed("seed") {
		rnd = crypto.NewSeededRandom(*seed)
	} else {
		rnd = crypto.NewSecureRandom()
	}

	password := crypto.Generate(rnd, q)

	// Print before touching the clipboard so the password survives a
	// clipboard failure.
	fmt.Fprintln(stdout, password)

	if *noClipboard {
		return nil
	}
	if err := clip.WriteAll(password); err != nil {
		return fmt.Errorf("copying password to clipboard: %w", err)
	}
	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `passclip %s - password generator

Generates a random password, prints it and copies it to the clipboard.
Class counts take priority over the length: -l 4 -u 2 -d 2 -s 2 yields a
6 character password.

Usage:
  passclip [flags]

Flags:
`, version)
	flagSet.PrintDefaults()
}
