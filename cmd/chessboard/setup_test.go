package main

import (
	"errors"
	"testing"

	"github.com/daystram/chessboard/board"
	"github.com/daystram/chessboard/store"
)

func TestSetup(t *testing.T) {
	t.Parallel()

	st, err := store.Open("", store.WithInMemory())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer st.Close()

	saved := board.NewBoard(board.WithRandom(board.NewRandom(5)))
	if err := saved.Init(board.ModeChess960); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := st.Save("saved", saved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		cfg     showConfig
		wantFEN string
		wantErr error
	}{
		{
			name:    "normal",
			cfg:     showConfig{mode: "Normal", seed: 1},
			wantFEN: board.DefaultStartingPositionFEN,
		},
		{
			name:    "unknown mode",
			cfg:     showConfig{mode: "Normall", seed: 1},
			wantErr: board.ErrInvalidConfiguration,
		},
		{
			name:    "fen",
			cfg:     showConfig{fen: "8/8/8/4k3/8/8/8/4K3 w - - 0 1"},
			wantFEN: "8/8/8/4k3/8/8/8/4K3 w - - 0 1",
		},
		{
			name:    "bad fen",
			cfg:     showConfig{fen: "8/8 w - - 0 1"},
			wantErr: board.ErrInvalidFEN,
		},
		{
			name:    "load",
			cfg:     showConfig{dbLoad: "saved"},
			wantFEN: saved.FEN(),
		},
		{
			name:    "load missing",
			cfg:     showConfig{dbLoad: "missing"},
			wantErr: store.ErrNotFound,
		},
	}

	for _, tt := range tests {
		b, err := setup(tt.cfg, st)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: unexpected error: got=%v want=%v", tt.name, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got := b.FEN(); got != tt.wantFEN {
			t.Errorf("%s: unexpected FEN: got=%s want=%s", tt.name, got, tt.wantFEN)
		}
	}
}

func TestSetupChess960Seeded(t *testing.T) {
	t.Parallel()
	cfg := showConfig{mode: "Chess960", seed: 99}
	a, err := setup(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := setup(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.FEN() != b.FEN() {
		t.Errorf("unexpected divergence for equal seeds: %s != %s", a.FEN(), b.FEN())
	}
}
