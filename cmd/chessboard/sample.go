package main

import (
	"log"

	"github.com/daystram/chessboard/bench"
)

func sample(n, workers int, seed int64) error {
	log.Printf("============ sample(%d): workers=%d seed=%d\n", n, workers, seed)
	log.Println(bench.Sample(n, workers, seed))
	return nil
}
