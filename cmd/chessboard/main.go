package main

import (
	"flag"
	"log"
	"os"
	"time"
)

const (
	exitOK = iota
	exitErr
)

var (
	mode = flag.String("mode", "Normal", "starting position: Normal or Chess960")
	seed = flag.Int64("seed", 0, "random seed for Chess960 (0 uses the clock)")
	fen  = flag.String("fen", "", "load the board from a FEN string instead of initialising it")
	draw = flag.Bool("draw", false, "draw the board with coloured cells instead of plain text")

	dbDir  = flag.String("db", "", "board store directory")
	dbSave = flag.String("save", "", "save the board to the store under this name")
	dbLoad = flag.String("load", "", "load the board from the store by name")
	dbList = flag.Bool("list", false, "list boards saved in the store")

	sampleRun     = flag.Int("sample", 0, "draw this many Chess960 back ranks and report the distribution")
	sampleWorkers = flag.Int("sample.workers", 1, "worker goroutines in sample mode")
)

func main() {
	flag.Parse()

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	if *sampleRun > 0 {
		return sample(*sampleRun, *sampleWorkers, s)
	}
	if *dbList {
		return list(*dbDir)
	}
	return show(showConfig{
		mode:   *mode,
		seed:   s,
		fen:    *fen,
		draw:   *draw,
		dbDir:  *dbDir,
		dbSave: *dbSave,
		dbLoad: *dbLoad,
	})
}
