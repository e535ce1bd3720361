package chess

import "golang.org/x/exp/slices"

// castlingRight maps a castling destination square to the right character
// that must be held for a king move to that square to be a castle.
var castlingRight = map[Square]byte{62: 'K', 58: 'Q', 6: 'k', 2: 'q'}

// legalMoves collects own-side origins restricted to origins, filters them
// against check/pin status, and traces every geometric ray from each
// surviving origin to build the legal move list for side.
func legalMoves(b *Board, st *State, side byte, origins []Square) []Move {
	king := b.FindPiece(colored('k', side))

	ownOrigins := make([]Square, 0, len(origins))
	sawKing := false
	for _, o := range origins {
		if b.GetOwner(o) != side {
			continue
		}
		if o == king {
			sawKing = true
			continue
		}
		ownOrigins = append(ownOrigins, o)
	}
	// The king's origin leads the list when the filter names it (or the
	// filter is empty); check and pin detection run off the king's square
	// either way.
	if sawKing || len(origins) == 0 {
		ownOrigins = append([]Square{king}, ownOrigins...)
	}

	_, info := squareAttacked(b, king, side, true)
	numAttacks := len(info.Attackers)

	switch {
	case numAttacks >= 2:
		ownOrigins = []Square{king}
	case numAttacks == 1:
		filtered := ownOrigins[:0:0]
		for _, o := range ownOrigins {
			if _, pinned := pinRayFor(info, o); pinned && o != king {
				continue
			}
			filtered = append(filtered, o)
		}
		ownOrigins = filtered
	}

	var moves []Move
	for _, origin := range ownOrigins {
		piece := b.GetPiece(origin)
		for _, r := range moveRays[piece][origin] {
			if pr, pinned := pinRayFor(info, origin); pinned {
				r = intersectRay(r, pr)
			}
			moves = append(moves, traceRay(b, st, origin, piece, r, side, numAttacks, info)...)
		}
	}
	return moves
}

func intersectRay(r, allowed ray) ray {
	var out ray
	for _, s := range r {
		if slices.Contains(allowed, s) {
			out = append(out, s)
		}
	}
	return out
}

// traceRay walks one geometric ray belonging to (origin, piece), stopping at
// the first occupied square and emitting a move for every square up to and
// including it, subject to king safety, castling legality, pawn forward/
// capture rules and check-response filtering.
func traceRay(b *Board, st *State, origin Square, piece Piece, r ray, side byte, numAttacks int, info *AttackInfo) []Move {
	var moves []Move
	isKing := piece.Type() == 'k'
	isPawn := piece.Type() == 'p'
	forwardRay := isPawn && len(r) > 0 && r[0].File() == origin.File()

	for _, end := range r {
		if b.GetOwner(end) == side {
			break
		}

		if isKing {
			if kingMoveUnsafe(b, origin, end, side) {
				break
			}
			if d := end.File() - origin.File(); d == 2 || d == -2 {
				if !castleLegal(b, st, origin, end, side, numAttacks) {
					break
				}
			}
		}

		emit := true
		stopAfter := b.GetOwner(end) == opponent(side)

		if isPawn {
			if forwardRay {
				if b.GetPiece(end) != Empty {
					break
				}
				stopAfter = false
			} else {
				if b.GetPiece(end) == Empty {
					if end != st.EnPassant {
						break
					}
					stopAfter = false
				} else {
					stopAfter = true
				}
			}
		}

		if !isKing && numAttacks == 1 && !attackPathContains(info, end) {
			emit = false
		}

		if emit {
			moves = append(moves, promotionAwareMoves(origin, end, piece)...)
		}
		if stopAfter {
			break
		}
	}
	return moves
}

// kingMoveUnsafe temporarily relocates the king from origin to end (saving
// and restoring whatever stood at end, a capture or emptiness) and asks the
// resolver whether end is then attacked. No board copy is needed: the two
// squares touched are restored immediately after the probe.
func kingMoveUnsafe(b *Board, origin, end Square, side byte) bool {
	king := b.GetPiece(origin)
	saved := b.GetPiece(end)
	b.MovePiece(origin, end, king)
	attacked, _ := squareAttacked(b, end, side, false)
	b.MovePiece(end, origin, king)
	b.MovePiece(end, end, saved)
	return attacked
}

// castleLegal checks the remaining castling preconditions, given that the
// generic king-safety check on the destination has already passed: the king
// must not currently be in check, the matching right must still be held,
// the transit and destination squares (and, queenside, the square beyond the
// destination) must be empty, and the transit square must not be attacked.
func castleLegal(b *Board, st *State, origin, end Square, side byte, numAttacks int) bool {
	if numAttacks > 0 {
		return false
	}
	right, ok := castlingRight[end]
	if !ok {
		return false
	}
	if !containsByte(st.Rights, right) {
		return false
	}
	mid := Square((int(origin) + int(end)) / 2)
	if b.GetPiece(end) != Empty || b.GetPiece(mid) != Empty {
		return false
	}
	if end.File() < origin.File() { // queenside: one more empty square toward the rook
		if b.GetPiece(end-1) != Empty {
			return false
		}
	}
	attacked, _ := squareAttacked(b, mid, side, false)
	return !attacked
}

func containsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

// promotionAwareMoves returns the one move origin->end, or the four
// promotion variants when end lands on the back rank for a pawn.
func promotionAwareMoves(origin, end Square, piece Piece) []Move {
	if piece.Type() == 'p' && (end.Rank() == 0 || end.Rank() == 7) {
		return []Move{
			{From: origin, To: end, Promotion: 'n'},
			{From: origin, To: end, Promotion: 'b'},
			{From: origin, To: end, Promotion: 'r'},
			{From: origin, To: end, Promotion: 'q'},
		}
	}
	return []Move{{From: origin, To: end}}
}
