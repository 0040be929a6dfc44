package engine

import "github.com/mcoot/stackline/internal/model"

// IDIssuer hands out piece identities. Each board owns one, so identities are
// deterministic for a given placement sequence.
type IDIssuer struct {
	next model.PieceID
}

// Issue returns the next unused identity
func (i *IDIssuer) Issue() model.PieceID {
	id := i.next
	i.next++
	return id
}
