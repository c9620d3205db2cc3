package survey

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter runs line-oriented multiple-choice prompts over a reader/writer pair.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// pending is non-nil while a line read is in flight. A read abandoned by a cancelled
	// context is picked up by the next call instead of starting a second reader.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewPrompter wraps in and out. in is buffered; one line is read per attempt.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// AskQuestions walks the catalog in order and returns one zero-based answer per question.
// Invalid entries re-prompt the same question.
func (p *Prompter) AskQuestions(ctx context.Context, catalog []Question) (Responses, error) {
	responses := make(Responses, len(catalog))
	for _, q := range catalog {
		idx, err := p.choose(ctx, len(q.Options), func() {
			fmt.Fprintln(p.out, q.Text)
			for i, opt := range q.Options {
				fmt.Fprintf(p.out, "%d. %s\n", i+1, opt)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("AskQuestions: %s: %w", q.ID, err)
		}
		responses[q.ID] = idx
	}
	return responses, nil
}

// AskAffiliation asks the respondent to pick their actual party from parties.
func (p *Prompter) AskAffiliation(ctx context.Context, parties []Party) (Party, error) {
	if len(parties) == 0 {
		return "", errors.New("AskAffiliation: no parties")
	}
	fmt.Fprintln(p.out, "What is your actual party affiliation?")
	idx, err := p.choose(ctx, len(parties), func() {
		for i, party := range parties {
			fmt.Fprintf(p.out, "%d. %s\n", i+1, party)
		}
	})
	if err != nil {
		return "", fmt.Errorf("AskAffiliation: %w", err)
	}
	return parties[idx], nil
}

// choose renders the prompt and reads lines until one holds an integer in [1, n].
// It returns the zero-based selection.
func (p *Prompter) choose(ctx context.Context, n int, render func()) (int, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		render()
		fmt.Fprintf(p.out, "Enter your choice (1-%d): ", n)

		line, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		// Blank lines are skipped without re-rendering the prompt.
		for line == "" {
			if line, err = p.readLine(ctx); err != nil {
				return 0, err
			}
		}

		choice, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
			continue
		}
		if choice < 1 || choice > n {
			fmt.Fprintf(p.out, "Invalid option. Please choose a number between 1 and %d\n", n)
			continue
		}
		return choice - 1, nil
	}
}

// readLine consumes one full input line, returning early with ctx.Err() if ctx is done while
// waiting. A final line without a newline is still returned; end of input with nothing left is
// io.ErrUnexpectedEOF.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		p.pending = ch
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}

	var res lineResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-p.pending:
		p.pending = nil
	}

	if res.err != nil {
		if !errors.Is(res.err, io.EOF) {
			return "", fmt.Errorf("read input: %w", res.err)
		}
		if res.line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}
	return strings.TrimSpace(res.line), nil
}
