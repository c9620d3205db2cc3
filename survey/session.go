package survey

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session wires one survey run: load profiles, ask, guess, ask actual affiliation, blend, save.
type Session struct {
	ID       string
	Catalog  []Question
	Parties  []Party
	Store    *Store
	Prompter *Prompter
	Out      io.Writer
	Logger   *zap.Logger
}

// SessionResult summarizes a completed run.
type SessionResult struct {
	Responses Responses
	Guess     Guess
	Actual    Party
	Table     ProfileTable
	// Saved is false when the final write failed; the failure has already been shown to the user.
	Saved bool
}

// NewSession builds a session over the fixed catalog and party list, reading answers from in
// and writing prompts and messages to out.
func NewSession(store *Store, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		ID:       uuid.NewString(),
		Catalog:  Catalog(),
		Parties:  Parties(),
		Store:    store,
		Prompter: NewPrompter(in, out),
		Out:      out,
		Logger:   logger,
	}
}

// Run executes the session. Save failures are reported on Out and do not fail the run;
// an error is returned only when input ends early or ctx is cancelled.
func (s *Session) Run(ctx context.Context) (SessionResult, error) {
	if s.Store == nil || s.Prompter == nil || s.Out == nil {
		return SessionResult{}, errors.New("Session.Run: store, prompter and out are required")
	}
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("session_id", s.ID))

	table, created, err := s.Store.LoadOrInitialize(s.Catalog, s.Parties)
	if created {
		s.reportSave(log, err)
	}

	responses, err := s.Prompter.AskQuestions(ctx, s.Catalog)
	if err != nil {
		return SessionResult{}, fmt.Errorf("Session.Run: %w", err)
	}
	log.Debug("responses collected", zap.Int("answered", len(responses)))

	guess, err := GuessAffiliation(responses, table, s.Parties)
	if err != nil {
		return SessionResult{}, fmt.Errorf("Session.Run: %w", err)
	}
	if label := guess.Label(); label != "" {
		fmt.Fprintf(s.Out, "Based on your responses, I guess you might be affiliated with the %s party.\n", label)
	} else {
		fmt.Fprintln(s.Out, "Based on your responses, I couldn't make a confident guess about your party affiliation.")
	}
	log.Debug("affiliation guessed",
		zap.String("label", guess.Label()),
		zap.Bool("confident", guess.Confident),
		zap.Any("scores", guess.Scores))

	actual, err := s.Prompter.AskAffiliation(ctx, s.Parties)
	if err != nil {
		return SessionResult{}, fmt.Errorf("Session.Run: %w", err)
	}

	if err := UpdateProfile(table, actual, responses); err != nil {
		return SessionResult{}, fmt.Errorf("Session.Run: %w", err)
	}
	log.Info("profile updated", zap.String("party", string(actual)))

	saveErr := s.Store.Save(table)
	s.reportSave(log, saveErr)

	fmt.Fprintln(s.Out, "Thank you for participating in the survey!")

	return SessionResult{
		Responses: responses,
		Guess:     guess,
		Actual:    actual,
		Table:     table,
		Saved:     saveErr == nil,
	}, nil
}

func (s *Session) reportSave(log *zap.Logger, err error) {
	if err != nil {
		log.Warn("save failed", zap.String("path", s.Store.Path), zap.Error(err))
		fmt.Fprintf(s.Out, "Failed to save party data: %v\n", err)
		return
	}
	fmt.Fprintln(s.Out, "Party data saved successfully.")
}
