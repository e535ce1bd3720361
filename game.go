package chess

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultFEN is the standard chess starting position, used by NewGame and
// Reset when no FEN is supplied.
const DefaultFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// State is FEN fields 2-6: everything about a position that is not the
// board itself.
type State struct {
	Player    byte // 'w' or 'b'
	Rights    string
	EnPassant Square
	Ply       int
	Turn      int
}

// Status is the game-state classification produced by Game.Status.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

func (s Status) String() string {
	switch s {
	case Normal:
		return "NORMAL"
	case Check:
		return "CHECK"
	case Checkmate:
		return "CHECKMATE"
	case Stalemate:
		return "STALEMATE"
	case Draw:
		return "DRAW"
	default:
		return "UNKNOWN"
	}
}

// Game owns a Board, a State, the ordered history of applied move strings
// and of FEN strings (including the starting one), a cached legal-move
// list invalidated on every state change, and a multiset counting how many
// times each board-field string has occurred, for threefold repetition.
type Game struct {
	board Board
	state State

	moveHistory []string
	fenHistory  []string
	repetition  map[string]int

	movesCache []Move // nil: not computed; non-nil (possibly empty): valid
}

// NewGame constructs a game from an optional starting FEN, defaulting to
// the standard opening position.
func NewGame(fen ...string) (*Game, error) {
	g := &Game{}
	if err := g.Reset(fen...); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset wipes move/FEN history, the repetition counter, and the move
// cache, then reseeds the game from an optional FEN (defaulting to
// DefaultFEN).
func (g *Game) Reset(fen ...string) error {
	f := DefaultFEN
	if len(fen) > 0 {
		f = fen[0]
	}
	board, state, err := parseFEN(f)
	if err != nil {
		return err
	}
	g.board = board
	g.state = state
	g.moveHistory = nil
	g.repetition = map[string]int{}
	canonical := g.FEN()
	g.fenHistory = []string{canonical}
	g.repetition[g.board.String()] = 1
	g.movesCache = nil
	return nil
}

// SetFEN updates the board and state from fen, appends it to the FEN
// history and bumps the repetition counter, but — unlike Reset — does not
// clear move/FEN history.
func (g *Game) SetFEN(fen string) error {
	board, state, err := parseFEN(fen)
	if err != nil {
		return err
	}
	g.board = board
	g.state = state
	canonical := g.FEN()
	g.fenHistory = append(g.fenHistory, canonical)
	g.repetition[g.board.String()]++
	g.movesCache = nil
	return nil
}

// FEN serialises the current board and state to a standard six-field FEN
// string.
func (g *Game) FEN() string {
	rights := g.state.Rights
	if rights == "" {
		rights = "-"
	}
	return fmt.Sprintf("%s %c %s %s %d %d",
		g.board.String(), g.state.Player, rights, g.state.EnPassant.String(),
		g.state.Ply, g.state.Turn)
}

func parseFEN(fen string) (Board, State, error) {
	var board Board
	var state State
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return board, state, fmt.Errorf("chess: FEN %q does not have 6 fields", fen)
	}
	if err := board.SetPosition(fields[0]); err != nil {
		return board, state, err
	}
	if fields[1] != "w" && fields[1] != "b" {
		return board, state, fmt.Errorf("chess: FEN %q has invalid side to move %q", fen, fields[1])
	}
	state.Player = fields[1][0]
	state.Rights = fields[2]
	if state.Rights == "-" {
		state.Rights = ""
	}
	ep, err := ParseSquare(fields[3])
	if err != nil {
		return board, state, fmt.Errorf("chess: FEN %q: %w", fen, err)
	}
	state.EnPassant = ep
	ply, err := strconv.Atoi(fields[4])
	if err != nil {
		return board, state, fmt.Errorf("chess: FEN %q has invalid halfmove clock %q", fen, fields[4])
	}
	state.Ply = ply
	turn, err := strconv.Atoi(fields[5])
	if err != nil {
		return board, state, fmt.Errorf("chess: FEN %q has invalid fullmove number %q", fen, fields[5])
	}
	state.Turn = turn
	return board, state, nil
}

// MoveOption customises a call to Game.Moves.
type MoveOption func(*moveOptions)

type moveOptions struct {
	side       byte
	hasSide    bool
	origins    []Square
	hasOrigins bool
	sorted     bool
}

// WithSide restricts move generation to the given side, instead of the
// side to move.
func WithSide(side byte) MoveOption {
	return func(o *moveOptions) { o.side, o.hasSide = side, true }
}

// WithOrigins restricts move generation to moves starting on one of the
// given squares. The king's square need not be included: check and pin
// detection locate the king themselves, whichever origins the caller asked
// for, and king moves are listed only when its square is named.
func WithOrigins(origins []Square) MoveOption {
	return func(o *moveOptions) { o.origins, o.hasOrigins = origins, true }
}

// Sorted returns the move strings in lexicographic order.
func Sorted() MoveOption {
	return func(o *moveOptions) { o.sorted = true }
}

func allSquares() []Square {
	sqs := make([]Square, 64)
	for i := range sqs {
		sqs[i] = Square(i)
	}
	return sqs
}

// Moves returns the legal move list as move strings. Called with no
// options, it uses (and, if absent, populates) Game's move cache; any
// WithSide/WithOrigins option bypasses the cache, since the cache always
// holds the side-to-move's full-board move list.
func (g *Game) Moves(opts ...MoveOption) []string {
	var o moveOptions
	for _, opt := range opts {
		opt(&o)
	}

	var moves []Move
	if !o.hasSide && !o.hasOrigins {
		moves = g.legalMovesCached()
	} else {
		side := g.state.Player
		if o.hasSide {
			side = o.side
		}
		origins := allSquares()
		if o.hasOrigins {
			origins = o.origins
		}
		moves = legalMoves(&g.board, &g.state, side, origins)
	}

	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	if o.sorted {
		slices.Sort(strs)
	}
	return strs
}

func (g *Game) legalMovesCached() []Move {
	if g.movesCache == nil {
		moves := legalMoves(&g.board, &g.state, g.state.Player, allSquares())
		if moves == nil {
			moves = []Move{}
		}
		g.movesCache = moves
	}
	return g.movesCache
}

// ApplyMove parses and applies a move string. When validate is true (the
// default is false, matching the omitted-argument call), the move must
// appear in the current legal move list or ApplyMove fails with
// *IllegalMoveError; a move string shorter than 4 characters always fails,
// regardless of validate.
func (g *Game) ApplyMove(moveStr string, validate ...bool) error {
	v := false
	if len(validate) > 0 {
		v = validate[0]
	}

	m, err := ParseMoveString(moveStr)
	if err != nil {
		return &IllegalMoveError{Move: moveStr, FEN: g.FEN()}
	}

	if v {
		legal := g.legalMovesCached()
		found := false
		for _, lm := range legal {
			if lm == m {
				found = true
				break
			}
		}
		if !found {
			return &IllegalMoveError{Move: moveStr, FEN: g.FEN()}
		}
	}

	side := g.state.Player
	piece := g.board.GetPiece(m.From)
	isPawnMove := piece.Type() == 'p'
	capture := g.board.GetPiece(m.To) != Empty
	oldEnPassant := g.state.EnPassant
	oldRights := g.state.Rights

	newState := g.state
	newState.Player = opponent(side)
	newState.Rights = removeRights(oldRights, m.From, m.To)
	newState.EnPassant = NoSquare
	if isPawnMove && abs(int(m.To)-int(m.From)) == 16 {
		newState.EnPassant = Square((int(m.From) + int(m.To)) / 2)
	}
	if isPawnMove || capture {
		newState.Ply = 0
	} else {
		newState.Ply++
	}
	if side == Black {
		newState.Turn++
	}

	destPiece := piece
	if m.Promotion != 0 {
		destPiece = colored(m.Promotion, side)
	}
	g.board.MovePiece(m.From, m.To, destPiece)

	if piece.Type() == 'k' {
		if rookFrom, rookTo, ok := castleRookHop(m.To); ok {
			if containsByte(oldRights, castlingRight[m.To]) {
				g.board.MovePiece(rookFrom, rookTo, g.board.GetPiece(rookFrom))
			}
		}
	}
	if isPawnMove && !capture && m.To == oldEnPassant {
		captured := epCapturedSquare(m.To, side)
		g.board.MovePiece(captured, captured, Empty)
	}

	g.state = newState
	g.moveHistory = append(g.moveHistory, moveStr)
	g.fenHistory = append(g.fenHistory, g.FEN())
	g.repetition[g.board.String()]++
	g.movesCache = nil
	return nil
}

// castleRookHop returns the rook's from/to squares for a king move landing
// on dest, if dest is one of the four castling destinations.
func castleRookHop(dest Square) (from, to Square, ok bool) {
	switch dest {
	case 62:
		return 63, 61, true
	case 58:
		return 56, 59, true
	case 6:
		return 7, 5, true
	case 2:
		return 0, 3, true
	}
	return 0, 0, false
}

// epCapturedSquare returns the square of the pawn removed by an en-passant
// capture landing on to, played by side.
func epCapturedSquare(to Square, side byte) Square {
	if side == White {
		return to + 8
	}
	return to - 8
}

// rightsMap associates a square with the castling-right characters that
// are revoked when a king or rook moves from or to it.
var rightsMap = map[Square]string{
	0: "q", 4: "kq", 7: "k",
	56: "Q", 60: "KQ", 63: "K",
}

func removeRights(rights string, from, to Square) string {
	revoke := rightsMap[from] + rightsMap[to]
	var out []byte
	for i := 0; i < len(rights); i++ {
		if !strings.ContainsRune(revoke, rune(rights[i])) {
			out = append(out, rights[i])
		}
	}
	return string(out)
}

// MaterialString concatenates every non-empty square's piece symbol in
// index order — the input the status classifier's insufficient-material
// rule reads.
func (g *Game) MaterialString() string {
	var sb strings.Builder
	for i := 0; i < 64; i++ {
		if p := g.board.GetPiece(Square(i)); p != Empty {
			sb.WriteByte(byte(p))
		}
	}
	return sb.String()
}

// Status classifies the current position: checkmate, stalemate, check or
// normal from the move generator and attack resolver, then the fifty-move,
// insufficient-material and threefold-repetition draw rules layered on top.
func (g *Game) Status() Status {
	king := g.board.FindPiece(colored('k', g.state.Player))
	attacked, _ := squareAttacked(&g.board, king, g.state.Player, false)
	moves := g.legalMovesCached()

	var status Status
	switch {
	case attacked && len(moves) == 0:
		status = Checkmate
	case attacked:
		status = Check
	case len(moves) == 0:
		status = Stalemate
	default:
		status = Normal
	}

	if status == Normal {
		if g.state.Ply >= 100 || insufficientMaterial(&g.board) {
			status = Draw
		}
	}
	if g.isThreefold() {
		status = Draw
	}
	return status
}

// insufficientMaterial reports whether the board holds only kings, knights
// and bishops, with each side's knights+2*bishops <= 2 — the cross-
// multiplied, integer-only form of "knights/2 + bishops <= 1" using true
// division, not floor division (floor(knights/2) would wrongly admit a lone
// knight+bishop pairing against a bare king).
func insufficientMaterial(b *Board) bool {
	var wn, wb, bn, bb int
	for i := 0; i < 64; i++ {
		switch b.GetPiece(Square(i)) {
		case Empty, 'K', 'k':
		case 'N':
			wn++
		case 'B':
			wb++
		case 'n':
			bn++
		case 'b':
			bb++
		default:
			return false
		}
	}
	return wn+2*wb <= 2 && bn+2*bb <= 2
}

func (g *Game) isThreefold() bool {
	for _, c := range maps.Values(g.repetition) {
		if c >= 3 {
			return true
		}
	}
	return false
}
