package bitchess

import "errors"

// Position-string parse failures (§7). All are recoverable: ParsePosition
// returns these instead of panicking or returning a half-built Position.
var (
	ErrMissingFields    = errors.New("bitchess: position string must have at least 4 fields")
	ErrBadPlacement     = errors.New("bitchess: malformed piece placement field")
	ErrBadSide          = errors.New("bitchess: side-to-move field must be \"w\" or \"b\"")
	ErrBadCastling      = errors.New("bitchess: malformed castling rights field")
	ErrBadEPSquare      = errors.New("bitchess: malformed en-passant square field")
	ErrBadHalfmove      = errors.New("bitchess: malformed halfmove clock field")
	ErrBadFullmove      = errors.New("bitchess: malformed fullmove number field")
	ErrMissingKing      = errors.New("bitchess: position is missing a king")
	ErrDuplicateKing    = errors.New("bitchess: position has more than one king for a color")
)

// Move-string parse failures. The first three report syntactic problems;
// ErrMoveNotLegal reports a well-formed move that is absent from the
// generated move list, which is the only way legality is established.
var (
	ErrBadMoveLength = errors.New("bitchess: move string must be 4 or 5 characters")
	ErrBadMoveSquare = errors.New("bitchess: malformed square in move string")
	ErrBadPromotion  = errors.New("bitchess: malformed promotion letter in move string")
	ErrMoveNotLegal  = errors.New("bitchess: move is not present in the legal move list")
)
