package setlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-setlist/internal/song"
)

func newTestEngine(songs ...*song.Song) *Engine {
	e := NewEngine()
	for _, s := range songs {
		e.AddSong(s)
	}
	return e
}

func titles(songs []*song.Song) []string {
	result := make([]string, len(songs))
	for i, s := range songs {
		result[i] = s.Title()
	}
	return result
}

func TestNewEngine(t *testing.T) {
	e := NewEngine()

	assert.Equal(t, 0, e.Pool().Len())
	assert.NotNil(t, e.Setlist())
	assert.Equal(t, 0, e.SetlistLen())
	assert.Equal(t, 0, e.TotalDuration())
}

func TestAddSong_KeepsInsertionOrder(t *testing.T) {
	e := newTestEngine(
		song.NewBasic("B", 100, 0, 0, 60),
		song.NewBasic("A", 90, 0, 0, 60),
		song.NewBasic("C", 80, 0, 0, 60),
	)

	assert.Equal(t, []string{"B", "A", "C"}, e.Pool().Titles())
	assert.Equal(t, []string{"B", "A", "C"}, titles(e.Pool().Songs()))
}

func TestAddSong_CollisionReplacesValueKeepsPosition(t *testing.T) {
	e := newTestEngine(
		song.NewBasic("First", 100, 0, 0, 60),
		song.NewBasic("Second", 110, 0, 0, 60),
	)

	e.AddSong(song.NewBasic("First", 140, 0, 0, 90))

	require.Equal(t, 2, e.Pool().Len())
	assert.Equal(t, []string{"First", "Second"}, e.Pool().Titles())

	s, ok := e.Pool().Get("First")
	require.True(t, ok)
	assert.Equal(t, 140, s.BPM())
	assert.Equal(t, 90, s.DurationSeconds())
}

func TestAddSong_TitlesAreCaseSensitive(t *testing.T) {
	e := newTestEngine(
		song.NewBasic("Song A", 100, 0, 0, 60),
		song.NewBasic("song a", 100, 0, 0, 60),
	)

	assert.Equal(t, 2, e.Pool().Len())
}

func TestAddToSetlist_Missing(t *testing.T) {
	e := newTestEngine(song.NewBasic("Known", 100, 0, 0, 60))
	e.AddToSetlist("Known")

	ok := e.AddToSetlist("Unknown")

	assert.False(t, ok)
	assert.Equal(t, 1, e.SetlistLen())
}

func TestAddToSetlist_ExactMatchOnly(t *testing.T) {
	e := newTestEngine(song.NewBasic("Known", 100, 0, 0, 60))

	assert.False(t, e.AddToSetlist("known"))
	assert.False(t, e.AddToSetlist(" Known"))
	assert.Equal(t, 0, e.SetlistLen())
}

func TestAddToSetlist_AppendsSameReference(t *testing.T) {
	anthem := song.NewBasic("Anthem", 120, 80, 20, 225)
	e := newTestEngine(anthem)

	require.True(t, e.AddToSetlist("Anthem"))
	require.True(t, e.AddToSetlist("Anthem"))

	require.Equal(t, 2, e.SetlistLen())
	assert.Same(t, anthem, e.Setlist()[0])
	assert.Same(t, anthem, e.Setlist()[1])
}

func TestRemoveFromSetlist_CaseInsensitiveRemovesAll(t *testing.T) {
	e := newTestEngine(
		song.NewBasic("Song A", 100, 0, 0, 60),
		song.NewBasic("song a", 100, 0, 0, 60),
		song.NewBasic("Other", 100, 0, 0, 60),
	)
	e.AddToSetlist("Song A")
	e.AddToSetlist("Other")
	e.AddToSetlist("song a")
	e.AddToSetlist("Song A")

	removed := e.RemoveFromSetlist("SONG A")

	assert.Equal(t, 3, removed)
	assert.Equal(t, []string{"Other"}, titles(e.Setlist()))
	assert.Equal(t, 3, e.Pool().Len(), "вето не должно затрагивать пул")
}

func TestRemoveFromSetlist_NoMatch(t *testing.T) {
	e := newTestEngine(song.NewBasic("Keep", 100, 0, 0, 60))
	e.AddToSetlist("Keep")

	assert.Equal(t, 0, e.RemoveFromSetlist("Missing"))
	assert.Equal(t, 1, e.SetlistLen())
}

func TestClearSetlist(t *testing.T) {
	e := newTestEngine(
		song.NewBasic("One", 100, 0, 0, 61),
		song.NewBasic("Two", 100, 0, 0, 62),
	)
	e.AddToSetlist("One")
	e.AddToSetlist("Two")

	e.ClearSetlist()

	assert.Equal(t, 0, e.SetlistLen())
	assert.Equal(t, 0, e.TotalDuration())
	assert.Equal(t, 2, e.Pool().Len())

	// После очистки сетлист снова можно наполнять
	assert.True(t, e.AddToSetlist("Two"))
	assert.Equal(t, []string{"Two"}, titles(e.Setlist()))
}

func TestClearSetlist_Empty(t *testing.T) {
	e := NewEngine()
	e.ClearSetlist()
	assert.Equal(t, 0, e.SetlistLen())
}

func TestSortSetlistByBPM(t *testing.T) {
	e := newTestEngine(
		song.NewBasic("Fast", 160, 0, 0, 60),
		song.NewBasic("Slow", 70, 0, 0, 60),
		song.NewBasic("Mid", 110, 0, 0, 60),
	)
	e.AddToSetlist("Fast")
	e.AddToSetlist("Slow")
	e.AddToSetlist("Mid")

	e.SortSetlistByBPM()

	assert.Equal(t, []string{"Slow", "Mid", "Fast"}, titles(e.Setlist()))
}

func TestSortSetlistByBPM_Stable(t *testing.T) {
	e := newTestEngine(
		song.NewBasic("A120", 120, 0, 0, 60),
		song.NewBasic("B100", 100, 0, 0, 60),
		song.NewBasic("C120", 120, 0, 0, 60),
		song.NewBasic("D100", 100, 0, 0, 60),
		song.NewBasic("E90", 90, 0, 0, 60),
	)
	for _, title := range []string{"A120", "B100", "C120", "D100", "E90", "A120"} {
		require.True(t, e.AddToSetlist(title))
	}

	e.SortSetlistByBPM()

	assert.Equal(t, []string{"E90", "B100", "D100", "A120", "C120", "A120"}, titles(e.Setlist()))
}

func TestSortSetlistByBPM_PreservesEntries(t *testing.T) {
	e := newTestEngine(
		song.NewBasic("X", 130, 0, 0, 100),
		song.NewBasic("Y", 95, 0, 0, 200),
		song.NewBasic("Z", -5, 0, 0, 300),
	)
	for _, title := range []string{"X", "Y", "X", "Z", "Y"} {
		e.AddToSetlist(title)
	}
	totalBefore := e.TotalDuration()

	e.SortSetlistByBPM()

	sorted := e.Setlist()
	require.Len(t, sorted, 5)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].BPM(), sorted[i].BPM())
	}
	assert.ElementsMatch(t, []string{"X", "Y", "X", "Z", "Y"}, titles(sorted))
	assert.Equal(t, totalBefore, e.TotalDuration())
}

func TestSortSetlistByBPM_EmptyAndSingle(t *testing.T) {
	e := newTestEngine(song.NewBasic("Solo", 100, 0, 0, 60))
	e.SortSetlistByBPM()
	assert.Equal(t, 0, e.SetlistLen())

	e.AddToSetlist("Solo")
	e.SortSetlistByBPM()
	assert.Equal(t, []string{"Solo"}, titles(e.Setlist()))
}

func TestTotalDuration(t *testing.T) {
	e := newTestEngine(
		song.NewBasic("A", 100, 0, 0, 225),
		song.NewBasic("B", 90, 0, 0, 180),
	)
	e.AddToSetlist("A")
	e.AddToSetlist("B")
	e.AddToSetlist("A")

	assert.Equal(t, 630, e.TotalDuration())

	e.SortSetlistByBPM()
	assert.Equal(t, 630, e.TotalDuration())

	e.RemoveFromSetlist("a")
	assert.Equal(t, 180, e.TotalDuration())
}

func TestSetlist_IsLiveView(t *testing.T) {
	e := newTestEngine(song.NewBasic("Live", 100, 0, 0, 60))
	e.AddToSetlist("Live")

	view := e.Setlist()
	e.SortSetlistByBPM()

	assert.Same(t, view[0], e.Setlist()[0])
}
