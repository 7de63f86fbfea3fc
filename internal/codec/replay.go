package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/evaluator"
	"github.com/osse101/Scavenger_Go/internal/random"
)

// Replayer re-runs logged encounters to find what the scavenger ended up holding
type Replayer struct {
	rng random.Source
}

// NewReplayer creates a Replayer. rng decides the risk-taking rock gamble at trading posts.
func NewReplayer(rng random.Source) *Replayer {
	return &Replayer{rng: rng}
}

// ReplayResult is the outcome of one line of a multi-line log
type ReplayResult struct {
	LineNumber int
	Line       string
	Held       domain.Artifact
	Err        error
}

// Replay returns the artifact held after entry.
//
// ASTEROID uses the rational swap-if-valuable rule. A hazardous verdict keeps
// the owned artifact; replay never flips the shield coin.
// TRADING_POST asks the risk-taking rules whether the owned artifact is worth
// taking from the holder of the other one.
func (r *Replayer) Replay(entry LogEntry) domain.Artifact {
	var verdict domain.Verdict
	switch entry.Encounter {
	case domain.LogEncounterAsteroid:
		verdict = evaluator.Rational(entry.Owned, entry.Other)
	case domain.LogEncounterTradingPost:
		verdict = evaluator.RiskTaking(r.rng, entry.Other, entry.Owned)
	default:
		return entry.Owned
	}

	if verdict.IsValuable() {
		return entry.Other
	}
	return entry.Owned
}

// ParseLogEntry parses line and replays it
func (r *Replayer) ParseLogEntry(line string) (domain.Artifact, error) {
	entry, err := ParseLogLine(line)
	if err != nil {
		return nil, err
	}
	return r.Replay(entry), nil
}

// ReplayAll replays every non-blank line of src. Line errors, including lines
// over MaxLogLineBytes, are reported per result; the returned error is only set
// when src cannot be read, alongside the results gathered so far.
func (r *Replayer) ReplayAll(src io.Reader) ([]ReplayResult, error) {
	var results []ReplayResult

	reader := bufio.NewReader(src)
	lineNumber := 0
	for {
		line, tooLong, err := readLine(reader, MaxLogLineBytes)
		if err != nil && !errors.Is(err, io.EOF) {
			return results, fmt.Errorf("failed to read replay log at line %d: %w", lineNumber+1, err)
		}
		atEOF := err != nil
		if atEOF && line == "" && !tooLong {
			break
		}
		lineNumber++

		switch {
		case tooLong:
			results = append(results, ReplayResult{
				LineNumber: lineNumber,
				Err:        malformed(errMsgLineTooLong, MaxLogLineBytes),
			})
		case strings.TrimSpace(line) != "":
			held, parseErr := r.ParseLogEntry(line)
			results = append(results, ReplayResult{
				LineNumber: lineNumber,
				Line:       line,
				Held:       held,
				Err:        parseErr,
			})
		}

		if atEOF {
			break
		}
	}

	return results, nil
}

// readLine returns the next line without its line ending. A line over limit
// bytes is drained from br and only flagged, so memory stays bounded.
func readLine(br *bufio.Reader, limit int) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			buf = append(buf, chunk...)
			// allow room for a trailing "\r\n"
			if len(buf) > limit+2 {
				tooLong = true
				buf = nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		line := strings.TrimSuffix(strings.TrimSuffix(string(buf), "\n"), "\r")
		if !tooLong && len(line) > limit {
			tooLong = true
			line = ""
		}
		return line, tooLong, err
	}
}
