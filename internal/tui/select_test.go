package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/calliope/internal/metadata"
)

func sampleCandidates() []metadata.Item {
	return []metadata.Item{
		{
			MediaType: metadata.MediaMovie,
			Source:    "omdb",
			Title:     "The Matrix",
			Year:      1999,
			Creator:   "Lana Wachowski, Lilly Wachowski",
		},
		{
			MediaType: metadata.MediaMusic,
			Source:    "discogs",
			Title:     "The Matrix OST",
			Year:      1999,
		},
	}
}

func TestSelectNoCandidatesSkips(t *testing.T) {
	result, err := Select("tt0133093", nil)
	require.NoError(t, err)
	assert.Equal(t, ActionSkipped, result.Action)
	assert.Nil(t, result.Selection)
}

func TestSelectSingleCandidateBypassesUI(t *testing.T) {
	orig := runProgram
	runProgram = func(tea.Model) (tea.Model, error) {
		t.Fatal("UI must not run for a single candidate")
		return nil, nil
	}
	t.Cleanup(func() { runProgram = orig })

	result, err := Select("9780134190440", sampleCandidates()[:1])
	require.NoError(t, err)
	assert.Equal(t, ActionSelected, result.Action)
	require.NotNil(t, result.Selection)
	assert.Equal(t, "The Matrix", result.Selection.Title)
}

func TestSelectPropagatesProgramError(t *testing.T) {
	orig := runProgram
	runProgram = func(tea.Model) (tea.Model, error) {
		return nil, errors.New("no tty")
	}
	t.Cleanup(func() { runProgram = orig })

	_, err := Select("tt0133093", sampleCandidates())
	assert.Error(t, err)
}

func TestModelEnterSelectsHighlighted(t *testing.T) {
	m := newModel("tt0133093", sampleCandidates())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typed, ok := updated.(*model)
	require.True(t, ok)

	assert.Equal(t, ActionSelected, typed.result.Action)
	require.NotNil(t, typed.result.Selection)
	assert.Equal(t, "The Matrix", typed.result.Selection.Title)
}

func TestModelSkipAndQuitKeys(t *testing.T) {
	tests := []struct {
		key  string
		want SelectionAction
	}{
		{"s", ActionSkipped},
		{"esc", ActionSkipped},
		{"q", ActionStopped},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newModel("tt0133093", sampleCandidates())

			var msg tea.Msg
			if tt.key == "esc" {
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)}
			}
			updated, _ := m.Update(msg)
			typed, ok := updated.(*model)
			require.True(t, ok)
			assert.Equal(t, tt.want, typed.result.Action)
		})
	}
}

func TestCandidateItemTitle(t *testing.T) {
	withYear := candidateItem{Item: metadata.Item{Title: "Dune", Year: 1965}}
	assert.Equal(t, "Dune (1965)", withYear.Title())

	withoutYear := candidateItem{Item: metadata.Item{Title: "Dune"}}
	assert.Equal(t, "Dune", withoutYear.Title())
}

func TestFormatMetadata(t *testing.T) {
	item := metadata.Item{
		Creator:    "Frank Herbert",
		Categories: []string{"Science Fiction"},
		ExternalID: "b1234",
	}
	assert.Equal(t, "Frank Herbert | Science Fiction | #b1234", formatMetadata(item, 0))

	assert.Equal(t, "No details available", formatMetadata(metadata.Item{}, 0))
}
