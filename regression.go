package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Serialize writes a fixed-size value in little endian order.
func Serialize(buf *bytes.Buffer, data any) {
	err := binary.Write(buf, binary.LittleEndian, data)
	Check(err)
}

// StateBytes represents everything that decides how the chamber evolves from
// now on: the next jet, the next shape and the rows of the window. The
// absolute height is not included, so two chambers whose towers have
// the same top but different heights have the same StateBytes.
//
// StateBytes is only meaningful between rocks, when nothing is falling.
func (c *Chamber) StateBytes() []byte {
	buf := new(bytes.Buffer)
	buf.Grow(16 + c.Cap())
	Serialize(buf, int64(c.JetIdx))
	Serialize(buf, int64(c.ShapeIdx))
	for y := range c.Cap() {
		buf.WriteByte(c.Row(y))
	}
	return buf.Bytes()
}

// Signature is a 64 bit digest of StateBytes. Different states can have the
// same signature, so matching signatures must be confirmed with SameState.
func (c *Chamber) Signature() uint64 {
	sum := sha256.Sum256(c.StateBytes())
	return binary.LittleEndian.Uint64(sum[:8])
}

// SameState checks if two chambers will evolve identically from now on, apart
// from a vertical translation.
func SameState(a, b *Chamber) bool {
	return a.JetIdx == b.JetIdx &&
		a.ShapeIdx == b.ShapeIdx &&
		a.Block == nil && b.Block == nil &&
		a.Window.Equal(&b.Window)
}

// RegressionId returns a string which identifies how the simulation behaves
// for the given jets. It is a hash of the state of the chamber and the height
// of the tower after each of the first nPieces rocks.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for an input.
// - Change the implementation of the chamber.
// - Compute the RegressionId for the same input again.
// - If the RegressionId hasn't changed, the rocks fell exactly the same way
// as before.
func RegressionId(jets JetFeed, windowRows int, nPieces int64) string {
	hash := sha256.New()

	c := NewChamber(jets, windowRows)
	hash.Write(c.StateBytes())

	heightBytes := make([]byte, 8)
	for range nPieces {
		c.DropPiece()
		hash.Write(c.StateBytes())
		binary.LittleEndian.PutUint64(heightBytes, uint64(c.TopHeight))
		hash.Write(heightBytes)
	}

	return hex.EncodeToString(hash.Sum(nil))
}
