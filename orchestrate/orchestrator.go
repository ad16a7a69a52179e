// Package orchestrate implements the tiered cryptanalysis orchestrator (C5):
// it runs the classifier, builds a cost-ordered engine selection, dispatches
// engines tier by tier with early-exit, and scores/filters the accumulated
// candidates into a final OrchestrationResult (spec.md §4.5).
package orchestrate

import (
	"fmt"
	"math"
	"sort"

	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/ciphers"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/classify"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/filter"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/language"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/registry"
	"github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/stats"
)

// Fixed combined-score thresholds driving early exit (spec.md §4.5).
const (
	EarlyExitChi  = 40.0
	GoodEnoughChi = 80.0
)

const (
	selectThreshold          = 0.2
	lowConfidenceThreshold   = 0.1
	lowConfidenceCeiling     = 0.3
	minCiphertextLength      = 3
	topCandidates            = 10
)

// Tiers, in cost order (spec.md §4.5 step 4): T1 is near-instant brute force,
// T2 is polyalphabetic key search plus columnar permutation search, T3 is the
// hill climber.
var (
	tier1 = []string{ciphers.TypeCaesar, ciphers.TypeROT13, ciphers.TypeAtbash, ciphers.TypeAffine, ciphers.TypeRailFence}
	tier2 = []string{ciphers.TypeVigenere, ciphers.TypeBeaufort, ciphers.TypeAutokey, ciphers.TypeColumnar}
	tier3 = []string{ciphers.TypeSimpleSubstitution}

	tiers     = [][]string{tier1, tier2, tier3}
	tierNames = []string{"T1", "T2", "T3"}
)

// ScoredCandidate is a raw engine candidate after C2 scoring.
type ScoredCandidate struct {
	Plaintext  string
	CipherType string
	Key        string
	Method     string

	AllScores    map[language.Language]language.Scores
	BestLanguage language.Language
	BestScore    float64
	Confidence   float64
}

// Counters summarizes how many candidates were produced and how many survived
// the filter (spec.md §3 wire shape).
type Counters struct {
	Generated   int
	AfterFilter int
}

// OrchestrationResult is the orchestrator's (and the pipeline facade's) output.
type OrchestrationResult struct {
	Classification  classify.Probabilities
	Candidates      []ScoredCandidate
	BestCandidate   *ScoredCandidate
	Counters        Counters
	EarlyExit       bool
	EarlyExitReason string
	TiersExecuted   []string
}

// Analyze runs the full C1->C3->C5->(engines)->C2->C6 pipeline over an
// already-canonicalized ciphertext.
func Analyze(canon string, opts ciphers.Options) OrchestrationResult {
	if len(canon) < minCiphertextLength {
		return OrchestrationResult{EarlyExit: true, EarlyExitReason: "ciphertext too short"}
	}

	profile := stats.Compute(canon)
	classification := classify.Classify(profile)
	selection := buildSelectionList(classification)

	var reasoning []string
	var raw []ciphers.Candidate
	var tiersExecuted []string
	earlyExit := false
	earlyExitReason := ""
	best := math.Inf(1)

	for ti, tier := range tiers {
		engines := intersect(selection, tier)
		if len(engines) == 0 {
			continue
		}
		for _, cipherType := range engines {
			eng, ok := registry.GetEngine(cipherType)
			if !ok {
				continue
			}
			raw = append(raw, safeAttemptDecrypt(eng, canon, profile, opts, &reasoning)...)
		}
		tiersExecuted = append(tiersExecuted, tierNames[ti])

		best = bestQuickRejectedScore(raw)
		if best < EarlyExitChi {
			earlyExit = true
			earlyExitReason = fmt.Sprintf("early exit after %s: best combined score %.2f below %.2f", tierNames[ti], best, EarlyExitChi)
			break
		}
		if tierNames[ti] == "T2" && best < GoodEnoughChi {
			earlyExit = true
			earlyExitReason = fmt.Sprintf("good-enough result after T2: best combined score %.2f below %.2f, skipping T3", best, GoodEnoughChi)
			break
		}
	}

	classification.Reasoning = append(classification.Reasoning, reasoning...)

	scored, accepted := scoreAndFilter(raw)
	sortScored(scored)
	if len(scored) > topCandidates {
		scored = scored[:topCandidates]
	}

	result := OrchestrationResult{
		Classification:  classification,
		Candidates:      scored,
		Counters:        Counters{Generated: len(raw), AfterFilter: accepted},
		EarlyExit:       earlyExit,
		EarlyExitReason: earlyExitReason,
		TiersExecuted:   tiersExecuted,
	}
	if len(scored) > 0 {
		best := scored[0]
		result.BestCandidate = &best
	}
	return result
}

// buildSelectionList implements spec.md §4.5 step 3.
func buildSelectionList(cl classify.Probabilities) []string {
	qualifies := func(prob float64) bool {
		if prob >= selectThreshold {
			return true
		}
		return cl.ClassificationConfidence < lowConfidenceCeiling && prob >= lowConfidenceThreshold
	}

	seen := make(map[string]bool)
	var selection []string
	add := func(types []string) {
		for _, t := range types {
			if !seen[t] {
				seen[t] = true
				selection = append(selection, t)
			}
		}
	}

	if qualifies(cl.PMono) {
		add(cl.MonoTypes)
		add([]string{ciphers.TypeCaesar})
	}
	if qualifies(cl.PPoly) {
		add(cl.PolyTypes)
		add([]string{ciphers.TypeVigenere})
	}
	if qualifies(cl.PTrans) {
		add(cl.TransTypes)
		add([]string{ciphers.TypeRailFence})
	}

	if len(selection) == 0 {
		return []string{ciphers.TypeCaesar, ciphers.TypeVigenere, ciphers.TypeRailFence}
	}
	return selection
}

func intersect(selection, tier []string) []string {
	sel := make(map[string]bool, len(selection))
	for _, s := range selection {
		sel[s] = true
	}
	var out []string
	for _, t := range tier {
		if sel[t] {
			out = append(out, t)
		}
	}
	return out
}

// safeAttemptDecrypt recovers a panicking engine (EngineInternalFailure,
// spec.md §7): its results are discarded and the failure is logged to
// reasoning, never surfaced to the caller.
func safeAttemptDecrypt(eng ciphers.Engine, ciphertext string, p stats.Profile, opts ciphers.Options, reasoning *[]string) (cands []ciphers.Candidate) {
	defer func() {
		if r := recover(); r != nil {
			*reasoning = append(*reasoning, fmt.Sprintf("engine %s failed internally and was skipped: %v", eng.Type(), r))
			cands = nil
		}
	}()
	return eng.AttemptDecrypt(ciphertext, p, opts)
}

// bestQuickRejectedScore is the cheap per-tier probe (spec.md §4.5 step 4c):
// engines already compute their InternalScore via the same combined-score
// formula C2 uses, so probing only needs QuickReject plus a min-scan, no
// re-scoring.
func bestQuickRejectedScore(cands []ciphers.Candidate) float64 {
	best := math.Inf(1)
	for _, c := range cands {
		if filter.QuickReject(c.Plaintext) {
			continue
		}
		if c.InternalScore < best {
			best = c.InternalScore
		}
	}
	return best
}

// scoreAndFilter attaches full C2 scores to every raw candidate and drops
// anything C6's full filter rejects (spec.md §4.5 step 6, invariant I6).
func scoreAndFilter(raw []ciphers.Candidate) ([]ScoredCandidate, int) {
	var out []ScoredCandidate
	accepted := 0
	for _, c := range raw {
		if !filter.Accept(c.Plaintext) {
			continue
		}
		allScores, best := language.Score(c.Plaintext)
		out = append(out, ScoredCandidate{
			Plaintext:    c.Plaintext,
			CipherType:   c.CipherType,
			Key:          c.Key,
			Method:       c.Method,
			AllScores:    allScores,
			BestLanguage: best,
			BestScore:    allScores[best].Combined,
			Confidence:   language.Confidence(allScores[best].ChiSquared),
		})
		accepted++
	}
	return out, accepted
}

// sortScored orders by combined score ascending; ties break first by
// best_language declaration order, then cipher-type declaration order
// (spec.md §5).
func sortScored(cands []ScoredCandidate) {
	langIndex := make(map[language.Language]int, len(language.Languages))
	for i, l := range language.Languages {
		langIndex[l] = i
	}
	typeIndex := make(map[string]int, len(registry.All()))
	for i, t := range registry.All() {
		typeIndex[t] = i
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].BestScore != cands[j].BestScore {
			return cands[i].BestScore < cands[j].BestScore
		}
		if li, lj := langIndex[cands[i].BestLanguage], langIndex[cands[j].BestLanguage]; li != lj {
			return li < lj
		}
		return typeIndex[cands[i].CipherType] < typeIndex[cands[j].CipherType]
	})
}
