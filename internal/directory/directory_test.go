package directory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, businesses []model.Business) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "businesses.json")
	data, err := json.Marshal(businesses)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func sampleBusinesses() []model.Business {
	return []model.Business{
		{
			ID:       "biz-velvet",
			Name:     "Velvet Skin Studio",
			Category: "skincare",
			Timezone: "America/New_York",
			Hours: model.WeeklySchedule{
				"Monday": {Open: "9:00 AM", Close: "5:00 PM"},
			},
		},
		{
			ID:       "biz-apex",
			Name:     "Apex Auto Gallery",
			Category: "automotive",
			Timezone: "America/Chicago",
			Hours: model.WeeklySchedule{
				"Saturday": {Open: "10:00 AM", Close: "4:00 PM"},
			},
		},
	}
}

func TestFileLoader_Load(t *testing.T) {
	path := writeFixture(t, sampleBusinesses())
	loader := NewFileLoader(zerolog.Nop())

	businesses, err := loader.Load(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, businesses, 2)
	assert.Equal(t, "biz-velvet", businesses[0].ID)
	assert.Equal(t, "9:00 AM", businesses[0].Hours["Monday"].Open)
}

func TestFileLoader_MissingFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	_, err := loader.Load(context.Background(), "/nonexistent/businesses.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open fixture file")
}

func TestFileLoader_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	loader := NewFileLoader(zerolog.Nop())
	_, err := loader.Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode fixture file")
}

func TestNewIndex(t *testing.T) {
	path := writeFixture(t, sampleBusinesses())
	idx, err := NewIndex(context.Background(), path, NewFileLoader(zerolog.Nop()), zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 2, idx.Size())

	// Sorted by name: Apex before Velvet.
	all := idx.List("")
	require.Len(t, all, 2)
	assert.Equal(t, "Apex Auto Gallery", all[0].Name)
	assert.Equal(t, "Velvet Skin Studio", all[1].Name)
}

func TestIndex_ListByCategory(t *testing.T) {
	path := writeFixture(t, sampleBusinesses())
	idx, err := NewIndex(context.Background(), path, NewFileLoader(zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)

	skincare := idx.List("Skincare")
	require.Len(t, skincare, 1)
	assert.Equal(t, "biz-velvet", skincare[0].ID)

	assert.Empty(t, idx.List("restaurants"))
}

func TestIndex_Get(t *testing.T) {
	path := writeFixture(t, sampleBusinesses())
	idx, err := NewIndex(context.Background(), path, NewFileLoader(zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)

	b, ok := idx.Get("biz-apex")
	require.True(t, ok)
	assert.Equal(t, "Apex Auto Gallery", b.Name)

	_, ok = idx.Get("biz-missing")
	assert.False(t, ok)
}

func TestNewIndex_SkipsDuplicatesAndEmptyIDs(t *testing.T) {
	businesses := sampleBusinesses()
	businesses = append(businesses,
		model.Business{ID: "biz-velvet", Name: "Duplicate"},
		model.Business{ID: "", Name: "Anonymous"},
	)
	path := writeFixture(t, businesses)

	idx, err := NewIndex(context.Background(), path, NewFileLoader(zerolog.Nop()), zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 2, idx.Size())

	b, ok := idx.Get("biz-velvet")
	require.True(t, ok)
	assert.Equal(t, "Velvet Skin Studio", b.Name)
}

func TestNewIndex_LoaderError(t *testing.T) {
	_, err := NewIndex(context.Background(), "/nonexistent.json", NewFileLoader(zerolog.Nop()), zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build directory index")
}
