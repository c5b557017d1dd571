package store

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/chessboard/board"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("", WithInMemory())
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, s.Close())
	})
	return s
}

func TestSaveLoad(t *testing.T) {
	s := openTestStore(t)

	b := board.NewBoard(board.WithRandom(board.NewPseudoRand(11)))
	require.NoError(t, b.Init(board.ModeChess960))
	require.NoError(t, s.Save("game-1", b))

	got, err := s.Load("game-1")
	require.NoError(t, err)
	assert.True(t, got.Equal(b))
	assert.Equal(t, b.FEN(), got.FEN())
	assert.Len(t, got.SideCellNotations(board.SideWhite), 16)
	assert.Len(t, got.SideCellNotations(board.SideBlack), 16)
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)

	b := board.NewBoard()
	require.NoError(t, b.Init(board.ModeNormal))
	require.NoError(t, s.Save("game", b))

	b.Clear()
	require.NoError(t, s.Save("game", b))

	got, err := s.Load("game")
	require.NoError(t, err)
	assert.Empty(t, got.SideCellNotations(board.SideWhite))
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete("nope"), ErrNotFound)
}

func TestInvalidName(t *testing.T) {
	s := openTestStore(t)
	b := board.NewBoard()

	for _, name := range []string{"", "a/b"} {
		assert.ErrorIs(t, s.Save(name, b), ErrInvalidName)
		_, err := s.Load(name)
		assert.ErrorIs(t, err, ErrInvalidName)
	}
}

func TestListDelete(t *testing.T) {
	s := openTestStore(t)

	b := board.NewBoard()
	require.NoError(t, b.Init(board.ModeNormal))
	for _, name := range []string{"b", "a", "c"} {
		require.NoError(t, s.Save(name, b))
	}

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)

	require.NoError(t, s.Delete("b"))
	names, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, names)
}

func TestLoadCorrupt(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefixBoard+"broken"), []byte(`{"sides":[],"cells":[]}`))
	}))

	_, err := s.Load("broken")
	assert.ErrorIs(t, err, board.ErrInvalidDocument)
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	b := board.NewBoard()
	require.NoError(t, b.Init(board.ModeNormal))
	require.NoError(t, s.Save("persisted", b))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load("persisted")
	require.NoError(t, err)
	assert.Equal(t, board.DefaultStartingPositionFEN, got.FEN())
}
