package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/daystram/chessboard/board"
	"github.com/daystram/chessboard/store"
)

type showConfig struct {
	mode   string
	seed   int64
	fen    string
	draw   bool
	dbDir  string
	dbSave string
	dbLoad string
}

func show(cfg showConfig) error {
	log.Println("============ show")
	var st *store.Store
	if cfg.dbSave != "" || cfg.dbLoad != "" {
		if cfg.dbDir == "" {
			return errors.New("-db is required with -save and -load")
		}
		var err error
		st, err = store.Open(cfg.dbDir)
		if err != nil {
			return err
		}
		defer st.Close()
	}

	b, err := setup(cfg, st)
	if err != nil {
		return err
	}

	if cfg.draw {
		fmt.Println(b.Draw())
	} else {
		fmt.Println(b.Dump())
	}
	fmt.Println(b.FEN())
	for _, s := range board.Sides {
		r, _, err := b.Rank(s.HomeRow())
		if err != nil {
			return err
		}
		fmt.Printf("%s home rank: %s\n", s, r)
	}

	if cfg.dbSave != "" {
		if err := st.Save(cfg.dbSave, b); err != nil {
			return err
		}
		log.Printf("saved board %q\n", cfg.dbSave)
	}
	return nil
}

func setup(cfg showConfig, st *store.Store) (*board.Board, error) {
	withRand := board.WithRandom(board.NewRandom(cfg.seed))
	switch {
	case cfg.dbLoad != "":
		return st.Load(cfg.dbLoad, withRand)
	case cfg.fen != "":
		b := board.NewBoard(withRand)
		if err := board.UnmarshalFEN(cfg.fen, b); err != nil {
			return nil, err
		}
		return b, nil
	default:
		m, err := board.ParseMode(cfg.mode)
		if err != nil {
			return nil, err
		}
		b := board.NewBoard(withRand)
		if err := b.Init(m); err != nil {
			return nil, err
		}
		return b, nil
	}
}

func list(dir string) error {
	if dir == "" {
		return errors.New("-db is required with -list")
	}
	st, err := store.Open(dir)
	if err != nil {
		return err
	}
	defer st.Close()

	names, err := st.List()
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
