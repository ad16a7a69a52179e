// Command corpus generates and validates cryptanalysis regression fixtures
// across every registered cipher type and reference language, in the shape
// of the teacher's golden tool repurposed from format-compatibility vectors
// to cryptanalysis-correctness vectors.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/language"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/pipeline"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/registry"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// VectorRecord is one row of a corpus file: a known cipher/key/plaintext
// triple and the ciphertext it produces.
type VectorRecord struct {
	Language   string `json:"language"`
	CipherType string `json:"cipherType"`
	Key        string `json:"key"`
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext"`
	Comment    string `json:"comment"`
}

func main() {
	var (
		outputPath string
		inputPath  string
		maxRows    int64
		seed       int64
	)

	rootCmd := &cli.Command{
		Name:    "corpus",
		Version: "1.0.0",
		Usage:   "generate and validate cryptanalysis regression fixtures",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "generate a corpus of cipher/plaintext/key/ciphertext vectors",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "output",
						Value:       "testdata/corpus-vectors.json",
						Destination: &outputPath,
					},
					&cli.IntFlag{
						Name:        "max-rows",
						Value:       6,
						Destination: &maxRows,
					},
					&cli.IntFlag{
						Name:        "seed",
						Value:       1,
						Destination: &seed,
					},
				},
				Action: func(_ context.Context, _ *cli.Command) error {
					return generateCorpus(outputPath, int(maxRows), seed)
				},
			},
			{
				Name:  "validate",
				Usage: "validate a corpus file produced by generate",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "input",
						Value:       "testdata/corpus-vectors.json",
						Destination: &inputPath,
					},
				},
				Action: func(_ context.Context, _ *cli.Command) error {
					return validateCorpus(inputPath)
				},
			},
		},
		Action: func(_ context.Context, _ *cli.Command) error {
			return errors.New("command is required; use help to see list of commands")
		},
	}

	if err := rootCmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// sampleSentence draws up to n common words from lang's reference table and
// joins them into a plausible plaintext sentence.
func sampleSentence(lang language.Language, rng *rand.Rand, n int) string {
	words := language.CommonWords(lang)
	if len(words) == 0 {
		return "THE QUICK BROWN FOX"
	}
	picked := make([]byte, 0, n*8)
	for i := 0; i < n; i++ {
		if i > 0 {
			picked = append(picked, ' ')
		}
		picked = append(picked, []byte(words[rng.Intn(len(words))])...)
	}
	return string(picked)
}

// generateCorpus builds maxRows vectors per (cipher type x language) pair,
// round-tripping each through DecryptWithKey before it is emitted, mirroring
// the teacher's writeCase self-check.
func generateCorpus(outputPath string, maxRows int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	var vectors []VectorRecord

	for _, cipherType := range registry.All() {
		eng, ok := registry.GetEngine(cipherType)
		if !ok {
			continue
		}
		for _, lang := range language.Languages {
			for row := 0; row < maxRows; row++ {
				plaintext := stats.Canonicalize(sampleSentence(lang, rng, 6))
				if plaintext == "" {
					continue
				}

				var key string
				var ciphertext string
				var err error
				for attempts := 0; attempts < 10; attempts++ {
					key = eng.GenerateRandomKey(rng)
					ciphertext, err = eng.Encrypt(plaintext, key)
					if err == nil {
						break
					}
				}
				if err != nil {
					return fmt.Errorf("failed to encrypt vector for %s/%s: %w", cipherType, lang, err)
				}

				result, err := eng.DecryptWithKey(ciphertext, key)
				if err != nil {
					return fmt.Errorf("round-trip self-check failed for %s/%s: %w", cipherType, lang, err)
				}
				// Columnar pads with trailing X to fill its last row.
				if !strings.HasPrefix(result.Plaintext, plaintext) || strings.Trim(result.Plaintext[len(plaintext):], "X") != "" {
					return fmt.Errorf("round-trip self-check mismatch for %s/%s: got %q, want %q", cipherType, lang, result.Plaintext, plaintext)
				}

				vectors = append(vectors, VectorRecord{
					Language:   string(lang),
					CipherType: cipherType,
					Key:        key,
					Plaintext:  plaintext,
					Ciphertext: ciphertext,
					Comment:    cipherType + " over " + string(lang) + " row " + strconv.Itoa(row),
				})
			}
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(vectors); err != nil {
		return fmt.Errorf("failed to write corpus: %w", err)
	}

	fmt.Printf("wrote %d vectors to %s\n", len(vectors), outputPath)
	return nil
}

// validateCorpus re-decrypts every vector with its known key and additionally
// runs the full pipeline to confirm the orchestrator itself recovers the
// right cipher type and language, in the style of the teacher's validateGolden.
func validateCorpus(inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read corpus: %w", err)
	}

	var vectors []VectorRecord
	if err := json.Unmarshal(data, &vectors); err != nil {
		return fmt.Errorf("failed to parse corpus: %w", err)
	}

	fmt.Printf("validating %d corpus vectors...\n", len(vectors))

	failCount := 0
	opts := pipeline.DefaultOptions()
	for i, v := range vectors {
		eng, ok := registry.GetEngine(v.CipherType)
		if !ok {
			fmt.Printf("FAIL [%d] %s: unknown cipher type %s\n", i, v.Comment, v.CipherType)
			failCount++
			continue
		}

		res, err := eng.DecryptWithKey(v.Ciphertext, v.Key)
		if err != nil {
			fmt.Printf("FAIL [%d] %s: known-key decrypt failed: %v\n", i, v.Comment, err)
			failCount++
			continue
		}
		if !strings.HasPrefix(res.Plaintext, v.Plaintext) || strings.Trim(res.Plaintext[len(v.Plaintext):], "X") != "" {
			fmt.Printf("FAIL [%d] %s: known-key plaintext mismatch\n", i, v.Comment)
			failCount++
			continue
		}

		analyzed, err := pipeline.Analyze(v.Ciphertext, opts)
		if err != nil {
			fmt.Printf("FAIL [%d] %s: analyze failed: %v\n", i, v.Comment, err)
			failCount++
			continue
		}
		if analyzed.BestCandidate == nil {
			fmt.Printf("FAIL [%d] %s: analyze produced no best candidate\n", i, v.Comment)
			failCount++
			continue
		}
		if analyzed.BestCandidate.CipherType != v.CipherType {
			fmt.Printf("FAIL [%d] %s: best_candidate.cipher_type=%s, want %s\n", i, v.Comment, analyzed.BestCandidate.CipherType, v.CipherType)
			failCount++
			continue
		}
		if string(analyzed.BestCandidate.BestLanguage) != v.Language {
			fmt.Printf("FAIL [%d] %s: best_candidate.best_language=%s, want %s\n", i, v.Comment, analyzed.BestCandidate.BestLanguage, v.Language)
			failCount++
			continue
		}

		fmt.Printf("PASS [%d] %s\n", i, v.Comment)
	}

	if failCount > 0 {
		return fmt.Errorf("%d of %d vectors failed", failCount, len(vectors))
	}

	fmt.Printf("\nall %d vectors passed\n", len(vectors))
	return nil
}
