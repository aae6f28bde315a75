package distractor

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/aglebova/distractors/internal/llm"
	"github.com/aglebova/distractors/internal/tokens"
)

// Request identifies one word/translation pair to generate distractors for.
type Request struct {
	Word           string
	Translation    string
	SourceLanguage string
	TargetLanguage string

	// Count is the number of distractors to generate.
	Count int
}

// ShortfallError reports that fewer unique distractors than requested
// survived generation, backfill and the duplicate-pool top-up. The partial
// result is still returned alongside it.
type ShortfallError struct {
	Requested int
	Got       int
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("generated %d of %d requested distractors", e.Got, e.Requested)
}

// Generator produces distractor sets using an LLM provider.
// It is safe for sequential reuse; concurrent calls are not coordinated.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// PromptTokens returns the token count of the system prompt for the
// provider's model. Reporting only; never used for truncation.
func (g *Generator) PromptTokens() (int, error) {
	return tokens.Count(g.cfg.SystemPrompt, g.provider.ModelID())
}

// Generate produces up to req.Count distractors for the given word.
//
// The initial reply is filtered: the exact translation is dropped, then
// near-duplicates are removed. If too few candidates remain, backfill
// rounds request more at a higher temperature, and any remaining gap is
// filled by sampling from the removed duplicates. The result is truncated
// to exactly req.Count; if both pools run dry first, the short list is
// returned together with a *ShortfallError.
func (g *Generator) Generate(ctx context.Context, req Request) ([]string, error) {
	messages, err := buildMessages(g.cfg.SystemPrompt, req)
	if err != nil {
		return nil, err
	}

	reply, err := g.safeGenerate(llm.WithPurpose(ctx, "distractor-gen"), messages, g.cfg.Temperature)
	if err != nil {
		return nil, err
	}

	// The correct translation must never appear in the result. Exact
	// string match only; a fuzzy match here would throw away valid
	// near-miss distractors.
	var candidates []string
	for _, c := range reply.Candidates() {
		if c != req.Translation {
			candidates = append(candidates, c)
		}
	}

	unique, duplicates := dropDuplicates(candidates, g.cfg.Threshold)

	if len(unique) < req.Count {
		unique, err = g.backfill(llm.WithPurpose(ctx, "backfill"), messages, unique, req)
		if err != nil {
			return nil, err
		}
	}

	if len(unique) < req.Count {
		unique = topUp(unique, duplicates, req.Count)
	}

	if len(unique) > req.Count {
		unique = unique[:req.Count]
	}
	if len(unique) < req.Count {
		return unique, &ShortfallError{Requested: req.Count, Got: len(unique)}
	}
	return unique, nil
}

// callKind tags the outcome of a single backend call so the retry loop is
// independent of provider SDK error types.
type callKind int

const (
	callOK callKind = iota
	callMalformed
	callRetryable
	callFailed
)

type callResult struct {
	kind  callKind
	reply *Reply
	wait  time.Duration // backend-suggested delay, retryable only
	err   error         // failure cause, failed only
}

// safeGenerate runs one generation attempt with retries. Malformed replies
// retry immediately; rate limits and transient unavailability wait for the
// suggested delay (or RetryWait) first. Exhausting the trial budget yields
// a nil reply rather than an error: downstream treats it as zero
// candidates. Context cancellation and unexpected backend errors abort.
func (g *Generator) safeGenerate(ctx context.Context, messages []llm.Message, temperature float64) (*Reply, error) {
	for trial := 0; trial < g.cfg.MaxTrials; trial++ {
		res := g.callOnce(ctx, messages, temperature)
		switch res.kind {
		case callOK:
			return res.reply, nil
		case callMalformed:
			continue
		case callRetryable:
			wait := res.wait
			if wait <= 0 {
				wait = g.cfg.RetryWait
			}
			if err := sleep(ctx, wait); err != nil {
				return nil, err
			}
		default:
			return nil, res.err
		}
	}
	return nil, nil
}

func (g *Generator) callOnce(ctx context.Context, messages []llm.Message, temperature float64) callResult {
	callCtx, cancel := context.WithTimeout(ctx, g.cfg.CallTimeout)
	defer cancel()

	resp, err := g.provider.Generate(callCtx, llm.Request{
		Messages:    messages,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		if ctx.Err() != nil {
			return callResult{kind: callFailed, err: ctx.Err()}
		}

		var rateLimit *llm.ErrRateLimit
		if errors.As(err, &rateLimit) {
			return callResult{kind: callRetryable, wait: rateLimit.RetryAfter}
		}
		var unavailable *llm.ErrProviderUnavailable
		if errors.As(err, &unavailable) {
			return callResult{kind: callRetryable}
		}
		// The per-call deadline fired but the parent context is live:
		// a hung backend call, worth another attempt.
		if errors.Is(err, context.DeadlineExceeded) {
			return callResult{kind: callRetryable}
		}
		return callResult{kind: callFailed, err: err}
	}

	reply, perr := parseReply(resp.Content)
	if perr != nil {
		return callResult{kind: callMalformed}
	}
	return callResult{kind: callOK, reply: reply}
}

// backfill requests additional candidates at the backfill temperature,
// keeping only those that are not near-duplicates of anything already kept
// and never the exact translation. Stops early once the target count is
// reached or the trial budget runs out.
func (g *Generator) backfill(ctx context.Context, messages []llm.Message, unique []string, req Request) ([]string, error) {
	if len(unique) >= req.Count || g.cfg.BackfillTrials <= 0 {
		return unique, nil
	}

	for trial := 0; trial < g.cfg.BackfillTrials; trial++ {
		reply, err := g.safeGenerate(ctx, messages, g.cfg.BackfillTemperature)
		if err != nil {
			return unique, err
		}
		if reply == nil {
			continue
		}

		for _, candidate := range reply.Candidates() {
			if candidate == req.Translation {
				continue
			}
			if !isDuplicateOfAny(candidate, unique, g.cfg.Threshold) {
				unique = append(unique, candidate)
			}
		}

		if len(unique) >= req.Count {
			break
		}
	}
	return unique, nil
}

// topUp fills the remaining slots by sampling uniformly without replacement
// from the discarded duplicates. Near-duplicates are deliberately
// reintroduced here; a short set is worse than a repetitive one.
func topUp(unique, duplicates []string, count int) []string {
	need := count - len(unique)
	if need <= 0 || len(duplicates) == 0 {
		return unique
	}

	pool := slices.Clone(duplicates)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if need > len(pool) {
		need = len(pool)
	}
	return append(unique, pool[:need]...)
}

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
