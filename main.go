package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/commands"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/language"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/pipeline"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/secure"
)

func optionsFromFlags(languageFlag string, maxKeyLength int, maxRails int, seed int64) pipeline.Options {
	opts := pipeline.DefaultOptions()
	if languageFlag != "" {
		lang := language.Language(strings.ToLower(languageFlag))
		opts.TargetLanguage = &lang
	}
	if maxKeyLength > 0 {
		opts.MaxKeyLength = maxKeyLength
	}
	if maxRails > 0 {
		opts.MaxRails = maxRails
	}
	if seed != 0 {
		opts.Rand = rand.New(rand.NewSource(seed))
	}
	return opts
}

func main() {
	app := cli.NewApp()
	app.Name = "cryptanalyze"
	app.Version = "1.0.0"
	app.Usage = "classical cipher cryptanalysis engine"

	var (
		inputArg        string
		outputArg       string
		cipherArg       string
		keyArg          string
		languageArg     string
		archivePathArg  string
		maxKeyLengthArg int
		maxRailsArg     int
		seedArg         int64
		wantArchive     bool
	)

	app.Commands = []cli.Command{
		{
			Name:  "analyze",
			Usage: "run the full cryptanalysis pipeline against a ciphertext file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "input, i",
					Usage:       "path to the file containing ciphertext",
					Required:    true,
					Destination: &inputArg,
				},
				cli.StringFlag{
					Name:        "language, l",
					Usage:       "pin analysis to a single reference language instead of searching all of them",
					Destination: &languageArg,
				},
				cli.IntFlag{
					Name:        "max-key-length",
					Usage:       "maximum key length considered by key-search engines",
					Destination: &maxKeyLengthArg,
				},
				cli.IntFlag{
					Name:        "max-rails",
					Usage:       "maximum rail count considered by the rail fence engine",
					Destination: &maxRailsArg,
				},
				cli.Int64Flag{
					Name:        "seed",
					Usage:       "seed the pseudo-random stream used by hill-climbing and random search",
					Destination: &seedArg,
				},
				cli.BoolFlag{
					Name:        "archive-passphrase",
					Usage:       "prompt for a passphrase and write an encrypted archive of the result alongside the report",
					Destination: &wantArchive,
				},
			},
			Action: func(c *cli.Context) error {
				opts := optionsFromFlags(languageArg, maxKeyLengthArg, maxRailsArg, seedArg)
				if wantArchive {
					archivePathArg = inputArg + ".cryptanalysis"
				} else {
					archivePathArg = ""
				}
				var pr secure.PassphraseReader
				if wantArchive {
					pr = secure.StdinPassphraseReader{}
				}
				result, err := commands.AnalyzeFile(inputArg, opts, archivePathArg, pr)
				if err != nil {
					return err
				}
				fmt.Printf("classification: monoalphabetic=%.2f polyalphabetic=%.2f transposition=%.2f (confidence %.2f)\n",
					result.Classification.PMono, result.Classification.PPoly, result.Classification.PTrans, result.Classification.ClassificationConfidence)
				fmt.Printf("tiers executed: %v\n", result.TiersExecuted)
				if result.EarlyExit {
					fmt.Printf("early exit: %s\n", result.EarlyExitReason)
				}
				fmt.Printf("candidates generated: %d, survived filter: %d\n", result.Counters.Generated, result.Counters.AfterFilter)
				if result.BestCandidate != nil {
					b := result.BestCandidate
					fmt.Printf("best candidate: cipher=%s key=%q language=%s confidence=%.2f\n", b.CipherType, b.Key, b.BestLanguage, b.Confidence)
					fmt.Printf("plaintext: %s\n", b.Plaintext)
				} else {
					fmt.Println("no candidate survived filtering")
				}
				if wantArchive {
					fmt.Printf("archive written to %s\n", archivePathArg)
				}
				return nil
			},
		},
		{
			Name:  "decrypt",
			Usage: "decrypt a file with a known cipher, with or without a known key",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "input, i",
					Usage:       "path to the file containing ciphertext",
					Required:    true,
					Destination: &inputArg,
				},
				cli.StringFlag{
					Name:        "cipher, c",
					Usage:       "cipher type to decrypt with",
					Required:    true,
					Destination: &cipherArg,
				},
				cli.StringFlag{
					Name:        "key, k",
					Usage:       "key to decrypt with; if omitted, the engine searches for one",
					Destination: &keyArg,
				},
				cli.StringFlag{
					Name:        "output, o",
					Usage:       "path to write the recovered plaintext to",
					Required:    true,
					Destination: &outputArg,
				},
				cli.IntFlag{
					Name:        "max-key-length",
					Destination: &maxKeyLengthArg,
				},
				cli.IntFlag{
					Name:        "max-rails",
					Destination: &maxRailsArg,
				},
				cli.Int64Flag{
					Name:        "seed",
					Destination: &seedArg,
				},
			},
			Action: func(c *cli.Context) error {
				opts := optionsFromFlags("", maxKeyLengthArg, maxRailsArg, seedArg)
				result, err := commands.DecryptFile(inputArg, outputArg, cipherArg, keyArg, opts)
				if err != nil {
					return err
				}
				fmt.Printf("decrypted with cipher=%s key=%q confidence=%.2f\n", result.CipherType, result.Key, result.Confidence)
				return nil
			},
		},
		{
			Name:  "encrypt",
			Usage: "encrypt a file with a named cipher and key",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "input, i",
					Usage:       "path to the file containing plaintext",
					Required:    true,
					Destination: &inputArg,
				},
				cli.StringFlag{
					Name:        "cipher, c",
					Usage:       "cipher type to encrypt with",
					Required:    true,
					Destination: &cipherArg,
				},
				cli.StringFlag{
					Name:        "key, k",
					Usage:       "key to encrypt with",
					Required:    true,
					Destination: &keyArg,
				},
				cli.StringFlag{
					Name:        "output, o",
					Usage:       "path to write the encrypted ciphertext to",
					Required:    true,
					Destination: &outputArg,
				},
			},
			Action: func(c *cli.Context) error {
				ciphertext, err := commands.EncryptFile(inputArg, outputArg, cipherArg, keyArg)
				if err != nil {
					return err
				}
				fmt.Println(ciphertext)
				return nil
			},
		},
	}

	app.Action = func(c *cli.Context) error {
		return errors.New("command is required; use help to see list of commands")
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
