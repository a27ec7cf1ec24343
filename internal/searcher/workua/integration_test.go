package workua

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-resume-finder/internal/browser"
	"go-resume-finder/internal/criteria"
	"go-resume-finder/internal/searcher"
)

// Runs a real headless browser against the live site; opt in explicitly.
func liveSearchEnabled(t *testing.T) {
	t.Helper()
	if os.Getenv("RESUME_FINDER_E2E") == "" {
		t.Skip("set RESUME_FINDER_E2E=1 to run live-site searches")
	}
}

func TestSearchLiveSiteZeroResults(t *testing.T) {
	liveSearchEnabled(t)

	mgr, err := browser.NewManager(true)
	require.NoError(t, err)
	defer mgr.Close()

	page, err := mgr.NewPage()
	require.NoError(t, err)

	s := New(zap.NewNop().Sugar(), nil)
	params := &criteria.SearchCriteria{Position: "кваліфікований жонглер кавунами зчщфх"}

	links, err := s.Search(context.Background(), page, params)
	require.ErrorIs(t, err, searcher.ErrResumeNotFound)
	assert.Empty(t, links)
}

func TestSearchLiveSiteCollectsLinks(t *testing.T) {
	liveSearchEnabled(t)

	mgr, err := browser.NewManager(true)
	require.NoError(t, err)
	defer mgr.Close()

	page, err := mgr.NewPage()
	require.NoError(t, err)

	s := New(zap.NewNop().Sugar(), nil)
	params := &criteria.SearchCriteria{Position: "Developer", Location: "Київ"}

	links, err := s.Search(context.Background(), page, params)
	require.NoError(t, err)
	require.NotEmpty(t, links)
	for _, link := range links {
		assert.Contains(t, link, "https://www.work.ua/resumes/")
	}
}
