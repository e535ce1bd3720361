package chess

import (
	"golang.org/x/exp/slices"
)

// ray is one direction of travel from a fixed origin (or target), ordered
// by increasing distance from that origin.
type ray []Square

// moveRays[piece][origin] lists every geometrically possible destination
// for a piece of that type on an otherwise empty board, grouped by
// direction. Built once in init and never mutated afterwards.
var moveRays map[Piece][64][]ray

// raysFromTarget[side][attacker][target] lists, for a defender of the given
// side, the rays outward from target along which the named attacker piece
// type could strike. Pawn rays hold only the diagonal capture squares, and
// king rays omit the castling destinations moveRays carries.
var raysFromTarget map[byte]map[Piece][64][]ray

func init() {
	moveRays = buildMoveRays()
	raysFromTarget = buildRaysFromTarget()
}

func onBoard(file, rank int) bool { return file >= 0 && file < 8 && rank >= 0 && rank < 8 }

// step returns the square reached from origin by the given file/rank delta,
// and whether that square is on the board.
func step(origin Square, dFile, dRank int) (Square, bool) {
	file, rank := origin.File()+dFile, origin.Rank()+dRank
	if !onBoard(file, rank) {
		return NoSquare, false
	}
	return sq(file, rank), true
}

// kingOffsets is ordered so that index 0 is the kingside (+file) direction
// and index 4 — exactly 4 slots (half a full turn) later — is the
// queenside (-file) direction. Offsets that leave the board are dropped, so
// on the back rank the queenside ray can sit at a lower index; appendCastle
// moves it into the reserved slot before extending it.
var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var rookDirs = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// singleStepRays builds one length-1 ray per offset that stays on the
// board.
func singleStepRays(origin Square, offsets [][2]int) []ray {
	var rays []ray
	for _, o := range offsets {
		if to, ok := step(origin, o[0], o[1]); ok {
			rays = append(rays, ray{to})
		}
	}
	return rays
}

// sliderRay walks repeatedly from origin in direction (dFile, dRank) until
// falling off the board, collecting squares in increasing-distance order.
func sliderRay(origin Square, dFile, dRank int) ray {
	var r ray
	cur := origin
	for {
		to, ok := step(cur, dFile, dRank)
		if !ok {
			break
		}
		r = append(r, to)
		cur = to
	}
	return r
}

func sliderRays(origin Square, dirs [][2]int) []ray {
	var rays []ray
	for _, d := range dirs {
		if r := sliderRay(origin, d[0], d[1]); len(r) > 0 {
			rays = append(rays, r)
		}
	}
	return rays
}

func dirSlice(a [4][2]int) [][2]int {
	out := make([][2]int, len(a))
	copy(out, a[:])
	return out
}
func offsetSlice8(a [8][2]int) [][2]int {
	out := make([][2]int, len(a))
	copy(out, a[:])
	return out
}

func sortRay(r ray, origin Square) ray {
	slices.SortFunc(r, func(a, b Square) int {
		return abs(int(a)-int(origin)) - abs(int(b)-int(origin))
	})
	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func buildMoveRays() map[Piece][64][]ray {
	m := make(map[Piece][64][]ray)

	var kingRays, queenRays, rookRays, bishopRays, knightRays [64][]ray
	var whitePawnRays, blackPawnRays [64][]ray

	for i := 0; i < 64; i++ {
		origin := Square(i)

		kr := singleStepRays(origin, offsetSlice8(kingOffsets))
		kingRays[i] = kr

		rookRays[i] = sliderRays(origin, dirSlice(rookDirs))
		bishopRays[i] = sliderRays(origin, dirSlice(bishopDirs))
		queenRays[i] = append(append([]ray{}, rookRays[i]...), bishopRays[i]...)
		knightRays[i] = singleStepRays(origin, offsetSlice8(knightOffsets))

		whitePawnRays[i] = buildPawnRays(origin, +1, 1)
		blackPawnRays[i] = buildPawnRays(origin, -1, 6)
	}

	// Append castling destinations to the king's kingside/queenside rays.
	appendCastle(kingRays[:], 60, 0, 62) // white, e1->g1, ray index 0
	appendCastle(kingRays[:], 60, 4, 58) // white, e1->c1, ray index 4
	appendCastle(kingRays[:], 4, 0, 6)   // black, e8->g8, ray index 0
	appendCastle(kingRays[:], 4, 4, 2)   // black, e8->c8, ray index 4

	m['K'] = kingRays
	m['k'] = kingRays
	m['Q'] = queenRays
	m['q'] = queenRays
	m['R'] = rookRays
	m['r'] = rookRays
	m['B'] = bishopRays
	m['b'] = bishopRays
	m['N'] = knightRays
	m['n'] = knightRays
	m['P'] = whitePawnRays
	m['p'] = blackPawnRays
	return m
}

func appendCastle(rays [][]ray, origin Square, rayIdx int, dest Square) {
	if int(origin) >= len(rays) || rayIdx >= len(rays[origin]) {
		return
	}
	// The castling ray is the one-step ray through the transit square; swap
	// it into rayIdx, then extend it with the destination.
	rs := rays[origin]
	mid := Square((int(origin) + int(dest)) / 2)
	for i, r := range rs {
		if len(r) == 1 && r[0] == mid {
			rs[i], rs[rayIdx] = rs[rayIdx], rs[i]
			rs[rayIdx] = sortRay(append(append(ray{}, r...), dest), origin)
			return
		}
	}
}

// buildPawnRays returns the rays for a pawn of the given forward rank
// direction (+1 for White, -1 for Black), whose two-square advance is only
// available from startRank (the pawn's own second rank).
func buildPawnRays(origin Square, forward, startRank int) []ray {
	var rays []ray

	if one, ok := step(origin, 0, forward); ok {
		fwd := ray{one}
		if origin.Rank() == startRank {
			if two, ok := step(origin, 0, 2*forward); ok {
				fwd = append(fwd, two)
			}
		}
		rays = append(rays, fwd)
	}
	if capL, ok := step(origin, -1, forward); ok {
		rays = append(rays, ray{capL})
	}
	if capR, ok := step(origin, 1, forward); ok {
		rays = append(rays, ray{capR})
	}
	return rays
}

func buildRaysFromTarget() map[byte]map[Piece][64][]ray {
	out := make(map[byte]map[Piece][64][]ray)
	out[White] = buildRaysFromTargetForDefender(White)
	out[Black] = buildRaysFromTargetForDefender(Black)
	return out
}

// buildRaysFromTargetForDefender builds the attacker tables for a defender
// of the given side; the opposing pieces are the other colour's letters.
func buildRaysFromTargetForDefender(defender byte) map[Piece][64][]ray {
	attackerCase := func(t byte) Piece {
		if defender == White {
			return Piece(t) // lowercase: black attacker
		}
		return Piece(t - ('a' - 'A')) // uppercase: white attacker
	}

	tables := make(map[Piece][64][]ray)

	var kingT, queenT, rookT, bishopT, knightT, pawnT [64][]ray
	pawnForward := -1 // a black pawn attacks toward decreasing rank...
	if defender == White {
		pawnForward = 1 // ...so to threaten a white-defended target, look one rank higher
	}

	for i := 0; i < 64; i++ {
		target := Square(i)
		kingT[i] = singleStepRays(target, offsetSlice8(kingOffsets))
		rookT[i] = sliderRays(target, dirSlice(rookDirs))
		bishopT[i] = sliderRays(target, dirSlice(bishopDirs))
		queenT[i] = append(append([]ray{}, rookT[i]...), bishopT[i]...)
		knightT[i] = singleStepRays(target, offsetSlice8(knightOffsets))

		var pr []ray
		if l, ok := step(target, -1, pawnForward); ok {
			pr = append(pr, ray{l})
		}
		if r, ok := step(target, 1, pawnForward); ok {
			pr = append(pr, ray{r})
		}
		pawnT[i] = pr
	}

	tables[attackerCase('k')] = kingT
	tables[attackerCase('q')] = queenT
	tables[attackerCase('r')] = rookT
	tables[attackerCase('b')] = bishopT
	tables[attackerCase('n')] = knightT
	tables[attackerCase('p')] = pawnT
	return tables
}
