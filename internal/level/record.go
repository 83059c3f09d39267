// Package level builds and writes the binary level file read by the
// Flip Doctor game client.
//
// The file is a single fixed-size little-endian record:
//
//	offset  size  type    field
//	0       4     uint32  magic (0xDEADC0DE)
//	4       4     int32   goal peg index
//	8       4     int32   enemy peg index
//	12      4     int32   wall x
//	16      4     int32   wall y
//	20      4     int32   wall width
//	24      4     int32   wall height
package level

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vovakirdan/flipdoctor-levelgen/internal/core"
)

// Magic identifies a level file to the client.
const Magic uint32 = 0xDEADC0DE

// RecordSize is the encoded size of a Record in bytes.
const RecordSize = 28

// ErrInvalidRecord is returned when a record breaks the peg or wall invariants.
var ErrInvalidRecord = errors.New("level: invalid record")

// Record is the in-memory form of a level file.
type Record struct {
	Magic    uint32
	GoalIdx  int32
	EnemyIdx int32
	WallX    int32
	WallY    int32
	WallW    int32
	WallH    int32
}

// Wall returns the wall as a rectangle in pixel units.
func (r Record) Wall() core.Rect {
	return core.NewRect(int(r.WallX), int(r.WallY), int(r.WallW), int(r.WallH))
}

// AppendBinary appends the encoded record to b.
func (r Record) AppendBinary(b []byte) ([]byte, error) {
	b = binary.LittleEndian.AppendUint32(b, r.Magic)
	for _, v := range [...]int32{r.GoalIdx, r.EnemyIdx, r.WallX, r.WallY, r.WallW, r.WallH} {
		b = binary.LittleEndian.AppendUint32(b, uint32(v))
	}
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r Record) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(make([]byte, 0, RecordSize))
}

// Encode returns the RecordSize-byte file contents for r.
func Encode(r Record) []byte {
	b, _ := r.AppendBinary(make([]byte, 0, RecordSize))
	return b
}

// Validate checks r against the peg layout of board.
// Wall placement relative to the screen or to pegs is not checked; the
// client draws whatever it is given.
func (r Record) Validate(board core.Board) error {
	if r.Magic != Magic {
		return fmt.Errorf("%w: magic %#08x, want %#08x", ErrInvalidRecord, r.Magic, Magic)
	}
	total := board.TotalPegs()
	if !board.ValidPeg(int(r.GoalIdx)) {
		return fmt.Errorf("%w: goal peg %d outside [1, %d]", ErrInvalidRecord, r.GoalIdx, total-1)
	}
	if !board.ValidPeg(int(r.EnemyIdx)) {
		return fmt.Errorf("%w: enemy peg %d outside [1, %d]", ErrInvalidRecord, r.EnemyIdx, total-1)
	}
	if r.GoalIdx == r.EnemyIdx {
		return fmt.Errorf("%w: goal and enemy share peg %d", ErrInvalidRecord, r.GoalIdx)
	}
	if r.WallW <= 0 || r.WallH <= 0 {
		return fmt.Errorf("%w: wall size %dx%d must be positive", ErrInvalidRecord, r.WallW, r.WallH)
	}
	return nil
}

// Fixed returns the hand-authored level shipped with the game.
func Fixed() Record {
	return Record{
		Magic:    Magic,
		GoalIdx:  42,
		EnemyIdx: 15,
		WallX:    50,
		WallY:    20,
		WallW:    10,
		WallH:    40,
	}
}
