package founder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults_SeededState(t *testing.T) {
	doc := Defaults()

	require.Equal(t, "2026-03-01", doc.StartDate)
	require.Contains(t, doc.Projects, "verboficaAI")
	require.Contains(t, doc.Projects, "golubot")
	require.Contains(t, doc.Goals.Monthly, "march_2026")
	require.Contains(t, doc.Goals.Monthly, "march_2027")
	require.Contains(t, doc.Goals.Quarterly, "q1")
	require.Contains(t, doc.Goals.Yearly, "2026")
	require.NotNil(t, doc.Days)
	require.NotNil(t, doc.Achievements)
	for _, def := range Achievements {
		require.Contains(t, doc.Achievements, def.ID)
		require.False(t, doc.Achievements[def.ID])
	}
}

func TestOverlay_EmptyKeepsDefaults(t *testing.T) {
	doc, err := Overlay(nil)
	require.NoError(t, err)
	require.Equal(t, Defaults(), doc)

	doc, err = Overlay([]byte("  \n "))
	require.NoError(t, err)
	require.Equal(t, Defaults(), doc)
}

func TestOverlay_PartialDocumentKeepsMissingDefaults(t *testing.T) {
	raw := []byte(`{"streak": 5, "days": {"2026-03-01": {"score": 8}}}`)
	doc, err := Overlay(raw)
	require.NoError(t, err)

	require.Equal(t, 5, doc.Streak)
	require.Equal(t, 8, doc.Days["2026-03-01"].Score)

	// Untouched fields keep their seeded values.
	require.Equal(t, "2026-03-01", doc.StartDate)
	require.Contains(t, doc.Projects, "verboficaAI")
	require.Contains(t, doc.Goals.Monthly, "april_2026")
}

func TestOverlay_InvalidJSON(t *testing.T) {
	_, err := Overlay([]byte("{not json"))
	require.Error(t, err)
}

func TestOverlay_NormalizesNulledMaps(t *testing.T) {
	raw := []byte(`{"days": null, "projects": null, "journal": null, "achievements": null}`)
	doc, err := Overlay(raw)
	require.NoError(t, err)

	require.NotNil(t, doc.Days)
	require.NotNil(t, doc.Projects)
	require.NotNil(t, doc.Journal)
	require.NotNil(t, doc.Achievements)
	require.NotNil(t, doc.Lifestyle.Sleep)
	require.NotNil(t, doc.Lifestyle.Workouts)
}

func TestOverlayLegacy_ResetsBestStreak(t *testing.T) {
	raw := []byte(`{"streak": 4, "bestStreak": 12}`)
	doc, err := OverlayLegacy(raw)
	require.NoError(t, err)
	require.Equal(t, 4, doc.Streak)
	require.Equal(t, 0, doc.BestStreak)
}

func TestMarshalOverlay_RoundTrip(t *testing.T) {
	doc := Defaults()
	doc.Streak = 9
	doc.BestStreak = 14
	doc.Days["2026-03-04"] = &DayRecord{
		Checklist:   map[string]bool{"deepWork": true},
		CompletedAt: map[string]string{"deepWork": "09:12"},
		Score:       1,
		Mood:        "great",
		Energy:      4,
	}
	doc.Journal["2026-03-04"] = &JournalEntry{
		Gratitude: []string{"a", "b", "c"},
		Wins:      "shipped",
	}
	doc.FocusSessions = append(doc.FocusSessions, FocusSession{
		Date: "2026-03-04", Duration: 50, Task: "deep work",
	})

	restored, err := Overlay(doc.Marshal())
	require.NoError(t, err)
	require.Equal(t, doc, restored)
}

func TestClone_Independent(t *testing.T) {
	doc := Defaults()
	doc.Days["2026-03-01"] = &DayRecord{Checklist: map[string]bool{"sleep11pm": true}, CompletedAt: map[string]string{}, Score: 1}

	clone := doc.Clone()
	require.Equal(t, doc, clone)

	clone.Days["2026-03-01"].Score = 7
	clone.Streak = 99
	require.Equal(t, 1, doc.Days["2026-03-01"].Score)
	require.Equal(t, 0, doc.Streak)
}

func TestIsEmptyPayload(t *testing.T) {
	require.True(t, IsEmptyPayload(nil))
	require.True(t, IsEmptyPayload([]byte("")))
	require.True(t, IsEmptyPayload([]byte("null")))
	require.True(t, IsEmptyPayload([]byte(`""`)))
	require.True(t, IsEmptyPayload([]byte("{}")))
	require.True(t, IsEmptyPayload([]byte(" {} ")))
	require.False(t, IsEmptyPayload([]byte(`{"streak":1}`)))
}
