// Package sqlite implements the SQLite Store backend for Keepsake.
package sqlite

// Schema DDL. Tables mirror the persisted entity set: singleton settings,
// the registrar allow-list, the media catalog, the token and completion
// records, and the three membership sequences with explicit positions so
// their in-memory indices rebuild losslessly on load.
const (
	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	createRegistrars = `CREATE TABLE IF NOT EXISTS registrars (
    identity TEXT PRIMARY KEY,
    allowed INTEGER NOT NULL
);`

	createMedia = `CREATE TABLE IF NOT EXISTS media (
    media_id TEXT PRIMARY KEY,
    kind INTEGER NOT NULL,
    registered INTEGER NOT NULL,
    uri TEXT NOT NULL,
    name TEXT NOT NULL
);`

	createTokens = `CREATE TABLE IF NOT EXISTS tokens (
    token_id INTEGER PRIMARY KEY,
    owner TEXT NOT NULL,
    media_id TEXT NOT NULL
);`

	createCompletions = `CREATE TABLE IF NOT EXISTS completions (
    user TEXT NOT NULL,
    media_id TEXT NOT NULL,
    token_id INTEGER NOT NULL,
    PRIMARY KEY (user, media_id)
);`

	createUserTokens = `CREATE TABLE IF NOT EXISTS user_tokens (
    user TEXT NOT NULL,
    position INTEGER NOT NULL,
    token_id INTEGER NOT NULL,
    PRIMARY KEY (user, position)
);`

	createMediaCompleters = `CREATE TABLE IF NOT EXISTS media_completers (
    media_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    user TEXT NOT NULL,
    PRIMARY KEY (media_id, position)
);`

	createGroupMembers = `CREATE TABLE IF NOT EXISTS group_members (
    media_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    user TEXT NOT NULL,
    PRIMARY KEY (media_id, position)
);`
)

// schemaStatements lists every DDL statement executed on Attach.
var schemaStatements = []string{
	createSettings,
	createRegistrars,
	createMedia,
	createTokens,
	createCompletions,
	createUserTokens,
	createMediaCompleters,
	createGroupMembers,
}

// Settings keys.
const (
	settingOwner       = "owner"
	settingBackend     = "backend"
	settingBaseURI     = "base_uri"
	settingNextTokenID = "next_token_id"
)
