// Package intake runs the interactive console loop that collects client
// readings, one client per iteration.
package intake

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/logging"
)

// constError lets sentinel errors be declared as constants.
type constError string

func (e constError) Error() string { return string(e) }

// ErrReport wraps any failure returned by the Reporter. It ends the session.
const ErrReport = constError("report generation failed")

// Prompts and messages written to the session output.
const (
	PromptHeader    = "Enter client data:"
	PromptEnergy    = "Energy (kWh): "
	PromptTransport = "Transport (km): "
	PromptWaste     = "Waste (kg): "
	PromptName      = "Client Name: "
	PromptContinue  = "Add data for another client? (yes/no): "
	MsgInvalidInput = "Invalid input. Please enter numbers."
)

// maxLineBytes bounds a single input line, such as a pasted client name.
const maxLineBytes = 1 << 20

// continueAnswer is the only answer that starts another iteration.
const continueAnswer = "yes"

// Reporter renders the per-client report and returns its path.
type Reporter interface {
	WriteReport(ctx context.Context, rec footprint.ClientRecord) (string, error)
}

// Session reads client entries from in and writes prompts to out.
type Session struct {
	scanner  *bufio.Scanner
	out      io.Writer
	reporter Reporter
}

// NewSession returns a Session reading from in, prompting on out and
// handing each completed record to reporter.
func NewSession(in io.Reader, out io.Writer, reporter Reporter) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	return &Session{
		scanner:  scanner,
		out:      out,
		reporter: reporter,
	}
}

// ShouldContinue reports whether answer asks for another client. Only
// "yes", after trimming and lower-casing, does; "y" and "sure" do not.
func ShouldContinue(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == continueAnswer
}

// Run collects entries into ledger until the user declines to continue or
// input ends. Each completed record is appended and reported before the
// continue prompt.
//
// End of input is a normal stop: any partial entry is discarded and Run
// returns nil. A Reporter failure is returned wrapped in ErrReport; records
// already in ledger stay there.
func (s *Session) Run(ctx context.Context, ledger *footprint.Ledger) error {
	log := logging.FromContext(ctx).With().Str("component", "intake").Logger()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec, ok, err := s.readEntry(log)
		if errors.Is(err, io.EOF) {
			s.endOfInput(log, "entry")
			return nil
		}
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		ledger.Append(rec)
		log.Debug().
			Str("client", rec.Name).
			Float64("footprint_kg", rec.TotalFootprint).
			Int("records", ledger.Len()).
			Msg("client record added")

		path, err := s.reporter.WriteReport(ctx, rec)
		if err != nil {
			return fmt.Errorf("%w for client %q: %w", ErrReport, rec.Name, err)
		}
		s.printf("PDF Report Created: %s\n", path)
		s.printf("Report created for %s: %s\n", rec.Name, path)

		answer, err := s.ask(PromptContinue)
		if errors.Is(err, io.EOF) {
			s.endOfInput(log, "confirmation")
			return nil
		}
		if err != nil {
			return err
		}
		if !ShouldContinue(answer) {
			log.Debug().Str("answer", answer).Int("records", ledger.Len()).Msg("session finished")
			return nil
		}
	}
}

// readEntry prompts for one client. ok is false when a reading did not
// parse as a finite number; the remaining prompts are skipped in that case.
func (s *Session) readEntry(log zerolog.Logger) (footprint.ClientRecord, bool, error) {
	s.printf("%s\n", PromptHeader)

	var readings [3]float64
	for i, prompt := range []string{PromptEnergy, PromptTransport, PromptWaste} {
		answer, err := s.ask(prompt)
		if err != nil {
			return footprint.ClientRecord{}, false, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = strconv.ErrSyntax
		}
		if err != nil {
			log.Warn().Str("prompt", strings.TrimSpace(prompt)).Str("input", answer).Msg("discarding entry with non-numeric reading")
			s.printf("%s\n", MsgInvalidInput)
			return footprint.ClientRecord{}, false, nil
		}
		readings[i] = v
	}

	name, err := s.ask(PromptName)
	if err != nil {
		return footprint.ClientRecord{}, false, err
	}

	return footprint.NewClientRecord(name, readings[0], readings[1], readings[2]), true, nil
}

// ask writes prompt and returns the next input line without its line ending.
// It returns io.EOF when input is exhausted.
func (s *Session) ask(prompt string) (string, error) {
	s.printf("%s", prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(s.scanner.Text(), "\r"), nil
}

func (s *Session) endOfInput(log zerolog.Logger, stage string) {
	s.printf("\n")
	log.Info().Str("stage", stage).Msg("input closed, ending session")
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
