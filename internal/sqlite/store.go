package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/oakmere/keepsake/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "keepsake.db"

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements the types.Store durability capability on SQLite. The
// database file persists across runs; Save replaces the full state inside
// one transaction, so a state is either committed whole or not at all.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      *zap.Logger
}

// NewStore creates an unattached Store. A nil logger disables logging.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{log: log}
}

// Attach initializes the store with the given configuration: creates the
// data directory if needed, opens the database, and ensures the schema.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.attached = true
	s.log.Debug("store attached", zap.String("path", dbPath))
	return nil
}

// Detach closes the database. Idempotent; after Detach, Load and Save
// return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
		s.db = nil
	}
	s.attached = false
	s.log.Debug("store detached")
	return nil
}

// Load reads the persisted state. Returns (nil, nil) when the store has
// never been saved to (no owner setting present).
func (s *Store) Load() (*types.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	settings, err := s.loadSettings()
	if err != nil {
		return nil, err
	}
	owner, ok := settings[settingOwner]
	if !ok {
		return nil, nil
	}

	st := types.NewState(types.Identity(owner))
	st.Backend = types.Identity(settings[settingBackend])
	st.BaseURI = settings[settingBaseURI]
	next, err := strconv.ParseUint(settings[settingNextTokenID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse next_token_id: %w", err)
	}
	st.NextTokenID = types.TokenID(next)

	if err := s.loadRegistrars(st); err != nil {
		return nil, err
	}
	if err := s.loadMedia(st); err != nil {
		return nil, err
	}
	if err := s.loadTokens(st); err != nil {
		return nil, err
	}
	if err := s.loadCompletions(st); err != nil {
		return nil, err
	}
	if err := s.loadSequences(st); err != nil {
		return nil, err
	}

	s.log.Debug("state loaded",
		zap.Int("media", len(st.Media)),
		zap.Int("tokens", len(st.TokenOwner)))
	return st, nil
}

// Save replaces the persisted state with st inside a single transaction.
func (s *Store) Save(st *types.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if st == nil {
		return fmt.Errorf("save state: nil state")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if err := saveState(tx, st); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	s.log.Debug("state saved",
		zap.Int("media", len(st.Media)),
		zap.Int("tokens", len(st.TokenOwner)))
	return nil
}

func (s *Store) loadSettings() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

func (s *Store) loadRegistrars(st *types.State) error {
	rows, err := s.db.Query("SELECT identity, allowed FROM registrars")
	if err != nil {
		return fmt.Errorf("load registrars: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var identity string
		var allowed int
		if err := rows.Scan(&identity, &allowed); err != nil {
			return fmt.Errorf("scan registrar: %w", err)
		}
		st.Registrars[types.Identity(identity)] = allowed != 0
	}
	return rows.Err()
}

func (s *Store) loadMedia(st *types.State) error {
	rows, err := s.db.Query("SELECT media_id, kind, registered, uri, name FROM media")
	if err != nil {
		return fmt.Errorf("load media: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, uri, name string
		var kind, registered int
		if err := rows.Scan(&id, &kind, &registered, &uri, &name); err != nil {
			return fmt.Errorf("scan media: %w", err)
		}
		st.Media[types.MediaID(id)] = types.Media{
			Kind:       uint8(kind),
			Registered: registered != 0,
			URI:        uri,
			Name:       name,
		}
	}
	return rows.Err()
}

func (s *Store) loadTokens(st *types.State) error {
	rows, err := s.db.Query("SELECT token_id, owner, media_id FROM tokens")
	if err != nil {
		return fmt.Errorf("load tokens: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var token uint64
		var owner, media string
		if err := rows.Scan(&token, &owner, &media); err != nil {
			return fmt.Errorf("scan token: %w", err)
		}
		st.TokenOwner[types.TokenID(token)] = types.Identity(owner)
		st.TokenMedia[types.TokenID(token)] = types.MediaID(media)
	}
	return rows.Err()
}

func (s *Store) loadCompletions(st *types.State) error {
	rows, err := s.db.Query("SELECT user, media_id, token_id FROM completions")
	if err != nil {
		return fmt.Errorf("load completions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var user, media string
		var token uint64
		if err := rows.Scan(&user, &media, &token); err != nil {
			return fmt.Errorf("scan completion: %w", err)
		}
		key := types.CompletionKey{User: types.Identity(user), Media: types.MediaID(media)}
		st.Completions[key] = types.TokenID(token)
	}
	return rows.Err()
}

// loadSequences reads the three membership sequences in position order so
// the restored backing slices match what was saved.
func (s *Store) loadSequences(st *types.State) error {
	rows, err := s.db.Query("SELECT user, token_id FROM user_tokens ORDER BY user, position")
	if err != nil {
		return fmt.Errorf("load user tokens: %w", err)
	}
	for rows.Next() {
		var user string
		var token uint64
		if err := rows.Scan(&user, &token); err != nil {
			rows.Close()
			return fmt.Errorf("scan user token: %w", err)
		}
		id := types.Identity(user)
		st.UserTokens[id] = append(st.UserTokens[id], types.TokenID(token))
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	rows, err = s.db.Query("SELECT media_id, user FROM media_completers ORDER BY media_id, position")
	if err != nil {
		return fmt.Errorf("load completers: %w", err)
	}
	for rows.Next() {
		var media, user string
		if err := rows.Scan(&media, &user); err != nil {
			rows.Close()
			return fmt.Errorf("scan completer: %w", err)
		}
		id := types.MediaID(media)
		st.Completers[id] = append(st.Completers[id], types.Identity(user))
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	rows, err = s.db.Query("SELECT media_id, user FROM group_members ORDER BY media_id, position")
	if err != nil {
		return fmt.Errorf("load group members: %w", err)
	}
	for rows.Next() {
		var media, user string
		if err := rows.Scan(&media, &user); err != nil {
			rows.Close()
			return fmt.Errorf("scan group member: %w", err)
		}
		id := types.MediaID(media)
		st.GroupMembers[id] = append(st.GroupMembers[id], types.Identity(user))
	}
	return closeRows(rows)
}

// closeRows finishes row iteration, surfacing the first error.
func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}

// saveState writes every table of st within tx, clearing previous contents
// first.
func saveState(tx *sql.Tx, st *types.State) error {
	tables := []string{
		"settings", "registrars", "media", "tokens",
		"completions", "user_tokens", "media_completers", "group_members",
	}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	settings := map[string]string{
		settingOwner:       string(st.Owner),
		settingBackend:     string(st.Backend),
		settingBaseURI:     st.BaseURI,
		settingNextTokenID: strconv.FormatUint(uint64(st.NextTokenID), 10),
	}
	for key, value := range settings {
		if _, err := tx.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("save setting %s: %w", key, err)
		}
	}

	for identity, allowed := range st.Registrars {
		if _, err := tx.Exec(
			"INSERT INTO registrars (identity, allowed) VALUES (?, ?)",
			string(identity), boolInt(allowed),
		); err != nil {
			return fmt.Errorf("save registrar: %w", err)
		}
	}

	for id, rec := range st.Media {
		if _, err := tx.Exec(
			"INSERT INTO media (media_id, kind, registered, uri, name) VALUES (?, ?, ?, ?, ?)",
			string(id), int(rec.Kind), boolInt(rec.Registered), rec.URI, rec.Name,
		); err != nil {
			return fmt.Errorf("save media: %w", err)
		}
	}

	for token, owner := range st.TokenOwner {
		if _, err := tx.Exec(
			"INSERT INTO tokens (token_id, owner, media_id) VALUES (?, ?, ?)",
			uint64(token), string(owner), string(st.TokenMedia[token]),
		); err != nil {
			return fmt.Errorf("save token: %w", err)
		}
	}

	for key, token := range st.Completions {
		if _, err := tx.Exec(
			"INSERT INTO completions (user, media_id, token_id) VALUES (?, ?, ?)",
			string(key.User), string(key.Media), uint64(token),
		); err != nil {
			return fmt.Errorf("save completion: %w", err)
		}
	}

	for user, seq := range st.UserTokens {
		for pos, token := range seq {
			if _, err := tx.Exec(
				"INSERT INTO user_tokens (user, position, token_id) VALUES (?, ?, ?)",
				string(user), pos, uint64(token),
			); err != nil {
				return fmt.Errorf("save user token: %w", err)
			}
		}
	}

	for media, seq := range st.Completers {
		for pos, user := range seq {
			if _, err := tx.Exec(
				"INSERT INTO media_completers (media_id, position, user) VALUES (?, ?, ?)",
				string(media), pos, string(user),
			); err != nil {
				return fmt.Errorf("save completer: %w", err)
			}
		}
	}

	for media, seq := range st.GroupMembers {
		for pos, user := range seq {
			if _, err := tx.Exec(
				"INSERT INTO group_members (media_id, position, user) VALUES (?, ?, ?)",
				string(media), pos, string(user),
			); err != nil {
				return fmt.Errorf("save group member: %w", err)
			}
		}
	}

	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
