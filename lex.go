package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/chorpler/boxes/lexer"
	"github.com/chorpler/boxes/token"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// result is the token stream of one config file.
type result struct {
	Path       string        `json:"path"`
	Session    string        `json:"session"`
	Tokens     []token.Token `json:"tokens"`
	Suppressed int           `json:"suppressed_diagnostics"`
}

// lexFiles scans every file in its own session. The files are processed concurrently,
// the results keep the order of paths. The first fatal error cancels the remaining files.
func lexFiles(ctx context.Context, paths []string, opts lexer.Options) ([]result, error) {
	results := make([]result, len(paths))

	g, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s, err := lexer.Open(path, opts)
			if err != nil {
				return err
			}

			tokens := s.All()

			log.Debug().
				Str("session", s.ID).
				Str("file", path).
				Int("tokens", len(tokens)).
				Int("suppressed", s.Suppressed()).
				Msg("file scanned")

			results[i] = result{
				Path:       path,
				Session:    s.ID,
				Tokens:     tokens,
				Suppressed: s.Suppressed(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func writeText(w io.Writer, results []result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "==> %s <==\n", r.Path); err != nil {
			return err
		}

		for _, tok := range r.Tokens {
			if _, err := fmt.Fprintln(w, tok); err != nil {
				return err
			}
		}

		if r.Suppressed > 0 {
			if _, err := fmt.Fprintf(w, "(%d diagnostics suppressed)\n", r.Suppressed); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeJSON(w io.Writer, results []result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
