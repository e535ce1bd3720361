package chess

import "golang.org/x/exp/slices"

// attackOrder fixes the iteration order over attacker piece types so that
// Attackers/Pins come back in a deterministic sequence regardless of map
// iteration order.
var attackOrder = [6]byte{'q', 'r', 'b', 'n', 'k', 'p'}

// Attacker records one piece directly threatening the target square.
type Attacker struct {
	Piece  Piece
	Square Square
	// Path holds every square from target up to and including Square, in
	// the order a ray walk visits them. For a single-step attacker (knight,
	// king, pawn) Path has exactly one element. Blocking any one square in
	// Path (other than Square itself) or capturing the attacker answers the
	// check.
	Path ray
}

// Pin records a friendly piece standing between target and a would-be
// slider attacker along one ray: the piece may move only within Path
// without exposing target.
type Pin struct {
	Pinned   Square
	Attacker Attacker
	// Path holds every square of the ray from target through Pinned to
	// Attacker.Square inclusive; the pinned piece may move to any square in
	// Path (besides its own) without exposing the king.
	Path ray
}

// AttackInfo is the detailed result of squareAttacked when getDetails is
// requested: every piece directly attacking target, and every pin along a
// slider ray through it.
type AttackInfo struct {
	Attackers []Attacker
	Pins      []Pin
}

// squareAttacked reports whether any piece of the side opposing `side`
// attacks target, on the position recorded in b. side is the defender's
// color: the square being tested is assumed to belong to (or be relevant
// to) that side, and attackers are drawn from the other color.
//
// When getDetails is false, squareAttacked returns as soon as the first
// attacker is found and a nil *AttackInfo — the fast path used for plain
// king-safety probes. When getDetails is true, it walks every ray for
// every attacker type and returns the complete AttackInfo, used while
// building the legal move list's check-response and pin filters.
func squareAttacked(b *Board, target Square, side byte, getDetails bool) (bool, *AttackInfo) {
	tables := raysFromTarget[side]
	var info *AttackInfo
	if getDetails {
		info = &AttackInfo{}
	}

	for _, t := range attackOrder {
		attacker := colored(t, opponent(side))
		rays, ok := tables[attacker]
		if !ok {
			continue
		}
		for _, r := range rays[target] {
			atk, pin, found := walkRay(b, r, side, attacker)
			if !found && pin == nil {
				continue
			}
			if !getDetails {
				if found {
					return true, nil
				}
				continue
			}
			if found {
				info.Attackers = append(info.Attackers, Attacker{
					Piece:  attacker,
					Square: r[len(atk)-1],
					Path:   append(ray{}, atk...),
				})
			}
			if pin != nil {
				info.Pins = append(info.Pins, *pin)
			}
		}
	}
	if info != nil {
		return len(info.Attackers) > 0, info
	}
	return false, nil
}

func opponent(side byte) byte {
	if side == White {
		return Black
	}
	return White
}

// walkRay scans one ray outward from target (r is already ordered nearest
// to farthest). It returns the path up to and including a direct attacker
// (found=true) when the first occupied square on the ray is the matching
// attacker; or a Pin when the first occupied square is a friendly piece
// and the next occupied square beyond it on the same ray holds a matching
// attacker.
func walkRay(b *Board, r ray, side byte, attacker Piece) (path ray, pin *Pin, found bool) {
	var blocker Square = NoSquare
	for i, s := range r {
		p := b.GetPiece(s)
		if p == Empty {
			continue
		}
		if blocker == NoSquare {
			if p == attacker {
				return r[:i+1], nil, true
			}
			if p.Color() == side {
				blocker = s
				continue
			}
			return nil, nil, false // blocked by a non-matching enemy piece
		}
		// Second occupied square: only matters if it is the matching
		// attacker, in which case blocker is pinned.
		if p == attacker {
			full := append(ray{}, r[:i+1]...)
			return nil, &Pin{
				Pinned:   blocker,
				Attacker: Attacker{Piece: attacker, Square: s, Path: full},
				Path:     full,
			}, false
		}
		return nil, nil, false
	}
	return nil, nil, false
}

// attackPathContains reports whether sq lies on any recorded attacker's
// path, the test used to decide whether a candidate move answers a single
// check (by capturing the attacker or blocking the line to it).
func attackPathContains(info *AttackInfo, sq Square) bool {
	for _, a := range info.Attackers {
		if slices.Contains(a.Path, sq) {
			return true
		}
	}
	return false
}

// pinRayFor returns the ray a pinned piece at sq may still move along, and
// whether sq is pinned at all.
func pinRayFor(info *AttackInfo, sq Square) (ray, bool) {
	for _, p := range info.Pins {
		if p.Pinned == sq {
			return p.Path, true
		}
	}
	return nil, false
}
