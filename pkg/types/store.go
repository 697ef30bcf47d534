package types

// State is the full persisted state of a ledger: the singleton settings plus
// every entity collection. Membership sets persist as their backing
// sequences; element order within a sequence is positional bookkeeping, not
// a caller-visible ordering. The index maps are derived from the sequences
// on restore and are not part of the persisted layout.
type State struct {
	Owner       Identity
	Backend     Identity
	BaseURI     string
	NextTokenID TokenID

	Registrars  map[Identity]bool
	Media       map[MediaID]Media
	TokenOwner  map[TokenID]Identity
	TokenMedia  map[TokenID]MediaID
	Completions map[CompletionKey]TokenID

	UserTokens   map[Identity][]TokenID
	Completers   map[MediaID][]Identity
	GroupMembers map[MediaID][]Identity
}

// NewState returns an empty State bootstrapped for the given owner. The
// backend identity starts as the owner and the token counter at 1.
func NewState(owner Identity) *State {
	return &State{
		Owner:        owner,
		Backend:      owner,
		NextTokenID:  1,
		Registrars:   make(map[Identity]bool),
		Media:        make(map[MediaID]Media),
		TokenOwner:   make(map[TokenID]Identity),
		TokenMedia:   make(map[TokenID]MediaID),
		Completions:  make(map[CompletionKey]TokenID),
		UserTokens:   make(map[Identity][]TokenID),
		Completers:   make(map[MediaID][]Identity),
		GroupMembers: make(map[MediaID][]Identity),
	}
}

// Store is the durability capability the hosting platform hands to the
// ledger. Callers attach to a backend, load state once, save state after a
// successful operation, and detach when done. Save must commit all writes
// for one call as a unit or not at all.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, Load and Save return ErrStoreDetached.
	Detach() error

	// Load reads the persisted state. Returns (nil, nil) when the store
	// holds no bootstrapped state yet.
	Load() (*State, error)

	// Save writes the full state atomically, replacing whatever was
	// persisted before.
	Save(state *State) error
}
