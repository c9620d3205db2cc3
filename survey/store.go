package survey

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/theimaginaryfoundation/party-survey/survey/fileutils"
)

// DefaultDataPath is where the profile table lives when no path is given.
const DefaultDataPath = "party_data.json"

// Store persists a ProfileTable to a single structured text file.
// There is no locking: concurrent writers are last-writer-wins.
type Store struct {
	Path   string
	Logger *zap.Logger
}

// NewStore returns a Store for path. A nil logger is replaced with a no-op logger.
func NewStore(path string, logger *zap.Logger) *Store {
	if path == "" {
		path = DefaultDataPath
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{Path: path, Logger: logger}
}

func (s *Store) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Load reads the persisted table. It reports false when the file is missing, unreadable,
// empty, or undecodable; none of those are errors for the caller.
func (s *Store) Load() (ProfileTable, bool) {
	log := s.logger().With(zap.String("path", s.Path))

	codec, err := codecForPath(s.Path)
	if err != nil {
		log.Debug("profile table absent: unsupported extension", zap.Error(err))
		return nil, false
	}

	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("profile table absent: no file")
		} else {
			log.Debug("profile table absent: read failed", zap.Error(err))
		}
		return nil, false
	}

	var t ProfileTable
	if err := codec.unmarshal(b, &t); err != nil {
		log.Debug("profile table absent: decode failed", zap.String("codec", codec.name), zap.Error(err))
		return nil, false
	}
	if len(t) == 0 {
		log.Debug("profile table absent: empty")
		return nil, false
	}

	for p := range t {
		if !p.Valid() {
			log.Warn("profile table holds an unknown party", zap.String("party", string(p)))
		}
	}
	log.Debug("profile table loaded", zap.Int("parties", len(t)))
	return t, true
}

// Save encodes t deterministically (sorted keys, indented) and atomically replaces the file.
func (s *Store) Save(t ProfileTable) error {
	codec, err := codecForPath(s.Path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	b, err := codec.marshal(t)
	if err != nil {
		return fmt.Errorf("Save: marshal %s: %w", codec.name, err)
	}
	if err := fileutils.WriteFileAtomicSameDir(s.Path, b, 0o644); err != nil {
		return fmt.Errorf("Save: write: %w", err)
	}
	s.logger().Debug("profile table saved", zap.String("path", s.Path), zap.Int("bytes", len(b)))
	return nil
}

// LoadOrInitialize applies the startup policy: load the table, or build neutral defaults and
// save them right away so the next run finds a file. The bool reports whether defaults were built.
// The returned table is always usable; the error only carries a failed initial save.
func (s *Store) LoadOrInitialize(catalog []Question, parties []Party) (ProfileTable, bool, error) {
	if loaded, ok := s.Load(); ok {
		return loaded, false, nil
	}

	t := InitializeDefaults(catalog, parties)
	s.logger().Info("initialized default profile table",
		zap.String("path", s.Path),
		zap.Int("parties", len(parties)),
		zap.Int("questions", len(catalog)))
	return t, true, s.Save(t)
}
