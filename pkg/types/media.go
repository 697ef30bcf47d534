package types

import "strings"

// Identity is an opaque account reference supplied by the hosting platform.
// The ledger compares identities for equality and never inspects their
// contents.
type Identity string

// MediaID is the content-derived identifier for a media item: 64 lower-case
// hex characters, computed by pkg/mediaid from the (kind, uri, name) triple.
// Two items with identical triples share one MediaID by design.
type MediaID string

// Media kind codes. Any uint8 value is a valid kind; these are the ones the
// product names.
const (
	KindMovie uint8 = 1
	KindAnime uint8 = 2
	KindComic uint8 = 3
	KindBook  uint8 = 4
	KindManga uint8 = 5
	KindShow  uint8 = 6
)

// kindNames maps named kind codes to their labels.
var kindNames = map[uint8]string{
	KindMovie: "movie",
	KindAnime: "anime",
	KindComic: "comic",
	KindBook:  "book",
	KindManga: "manga",
	KindShow:  "show",
}

// kindCodes is the reverse of kindNames.
var kindCodes = map[string]uint8{
	"movie": KindMovie,
	"anime": KindAnime,
	"comic": KindComic,
	"book":  KindBook,
	"manga": KindManga,
	"show":  KindShow,
}

// KindLabel returns the label for a named kind code, or "" if the code has
// no name.
func KindLabel(kind uint8) string {
	return kindNames[kind]
}

// ParseKind resolves a kind label to its code. The lookup is
// case-insensitive. Returns ErrUnknownKind for unrecognized labels.
func ParseKind(label string) (uint8, error) {
	kind, ok := kindCodes[strings.ToLower(label)]
	if !ok {
		return 0, ErrUnknownKind
	}
	return kind, nil
}

// Media holds the descriptive metadata for one MediaID.
// Registered distinguishes explicitly minted media from media known only
// because something referenced it; owner-gated metadata edits require
// Registered to be true.
type Media struct {
	Kind       uint8  `json:"kind"`
	Registered bool   `json:"registered"`
	URI        string `json:"uri"`
	Name       string `json:"name"`
}
