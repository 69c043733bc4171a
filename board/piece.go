package board

type Rank uint8

const (
	RankUnknown Rank = iota
	RankMan
	RankKing
)

func (r Rank) String() string {
	return r.Name()
}

func (r Rank) Name() string {
	switch r {
	case RankMan:
		return "Man"
	case RankKing:
		return "King"
	default:
		return ""
	}
}

// Piece is the side and rank pair occupying a square. The zero value NoPiece
// marks an empty square.
type Piece struct {
	Side Side
	Rank Rank
}

var NoPiece = Piece{}

func NewPiece(s Side, r Rank) Piece {
	return Piece{Side: s, Rank: r}
}

func (p Piece) String() string {
	if p == NoPiece {
		return ""
	}
	return p.Side.String() + " " + p.Rank.Name()
}

func (p Piece) SymbolText() string {
	var sym rune
	switch p.Rank {
	case RankMan:
		sym = 'M'
	case RankKing:
		sym = 'K'
	default:
		return ""
	}
	if p.Side == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(invert bool) string {
	s := p.Side
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch p.Rank {
		case RankMan:
			return "⛀"
		case RankKing:
			return "⛁"
		default:
			return ""
		}
	case SideBlack:
		switch p.Rank {
		case RankMan:
			return "⛂"
		case RankKing:
			return "⛃"
		default:
			return ""
		}
	default:
		return ""
	}
}
