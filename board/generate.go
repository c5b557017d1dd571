package board

import (
	"fmt"

	"github.com/daystram/chessboard/position"
)

const Width = position.MaxComponentScalar

var backRankCount = [KindKing + 1]int{KindKnight: 2, KindBishop: 2, KindRook: 2, KindQueen: 1, KindKing: 1}

// Rank maps files a..h (index 0..7) to the kind standing there.
type Rank [Width]Kind

func (r Rank) String() string {
	b := make([]byte, 0, Width)
	for _, k := range r {
		sym := k.SymbolFEN(SideWhite)
		if sym == "" {
			sym = "."
		}
		b = append(b, sym...)
	}
	return string(b)
}

func NormalRank() Rank {
	return Rank{KindRook, KindKnight, KindBishop, KindQueen, KindKing, KindBishop, KindKnight, KindRook}
}

func PawnRank() Rank {
	var r Rank
	for i := range r {
		r[i] = KindPawn
	}
	return r
}

// Chess960Rank draws a back rank with the king strictly between the rooks and
// the bishops on files of different parity. Files are 1-based in the draw
// order below:
//
//	king          2..7
//	left rook     1..king-1
//	right rook    king+1..8
//	bishop 1      any free file
//	bishop 2      any free file of the other parity
//	knights       any free file, twice
//	queen         the last free file
func Chess960Rank(r Random) Rank {
	var (
		rank    Rank
		claimed [Width + 1]bool
	)
	claim := func(file int, k Kind) {
		claimed[file] = true
		rank[file-1] = k
	}
	free := func(keep func(file int) bool) []int {
		files := make([]int, 0, Width)
		for f := 1; f <= Width; f++ {
			if !claimed[f] && keep(f) {
				files = append(files, f)
			}
		}
		return files
	}
	anyFile := func(int) bool { return true }

	king := draw(r, 2, Width-1)
	claim(king, KindKing)
	claim(draw(r, 1, king-1), KindRook)
	claim(draw(r, king+1, Width), KindRook)

	bishop := pick(r, free(anyFile))
	claim(bishop, KindBishop)
	claim(pick(r, free(func(f int) bool { return f%2 != bishop%2 })), KindBishop)

	claim(pick(r, free(anyFile)), KindKnight)
	claim(pick(r, free(anyFile)), KindKnight)

	claim(free(anyFile)[0], KindQueen)
	return rank
}

// IsChess960Rank reports whether the rank holds exactly the eight back-rank
// pieces with the king between the rooks and bishops on opposite colours.
func IsChess960Rank(rank Rank) bool {
	var (
		count          [KindKing + 1]int
		rooks, bishops []int
		king           int
	)
	for i, k := range rank {
		if k > KindKing {
			return false
		}
		count[k]++
		switch k {
		case KindRook:
			rooks = append(rooks, i)
		case KindBishop:
			bishops = append(bishops, i)
		case KindKing:
			king = i
		}
	}
	if count != backRankCount {
		return false
	}
	return rooks[0] < king && king < rooks[1] && bishops[0]%2 != bishops[1]%2
}

// Chess960Ranks enumerates all legal Chess960 back ranks.
func Chess960Ranks() []Rank {
	ranks := make([]Rank, 0, 960)
	seen := make(map[Rank]bool, 960)
	base := []Kind{KindRook, KindRook, KindKnight, KindKnight, KindBishop, KindBishop, KindQueen, KindKing}
	var permute func(i int)
	permute = func(i int) {
		if i == len(base)-1 {
			var r Rank
			copy(r[:], base)
			if !seen[r] && IsChess960Rank(r) {
				seen[r] = true
				ranks = append(ranks, r)
			}
			return
		}
		for j := i; j < len(base); j++ {
			base[i], base[j] = base[j], base[i]
			permute(i + 1)
			base[i], base[j] = base[j], base[i]
		}
	}
	permute(0)
	return ranks
}

func draw(r Random, low, high int) int {
	v := r.IntRange(low, high)
	if v < low || v > high {
		panic(fmt.Sprintf("random source returned %d outside [%d, %d]", v, low, high))
	}
	return v
}

func pick(r Random, files []int) int {
	return files[draw(r, 0, len(files)-1)]
}
