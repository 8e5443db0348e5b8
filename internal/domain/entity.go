package domain

// Entity is the identity contract every persisted type satisfies: a
// structural accessor pair rather than an embedded base type. Repositories
// are generic over it; Create implementations assign generated ids through
// SetID, and the zero id marks a not-yet-persisted entity.
type Entity interface {
	GetID() int
	SetID(id int)
}

// Compile-time checks that every persisted type carries the contract.
var (
	_ Entity = (*User)(nil)
	_ Entity = (*Admin)(nil)
	_ Entity = (*StarSign)(nil)
	_ Entity = (*Trait)(nil)
	_ Entity = (*Quote)(nil)
)
