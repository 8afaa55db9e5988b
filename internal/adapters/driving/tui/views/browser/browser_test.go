package browser

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/strindex/internal/core/domain"
)

func newTestView(svc *mockStringService) *View {
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, 30)
	return v
}

// run executes cmd and feeds the resulting message back into the view.
func run(t *testing.T, v *View, cmd tea.Cmd) *View {
	t.Helper()
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	return v
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, &mockStringService{})

	assert.False(t, v.Ready())
	assert.True(t, v.InputFocused())
	assert.Equal(t, "Initialising...", v.View())
}

func TestView_LoadAll(t *testing.T) {
	svc := &mockStringService{records: testRecords("abc", "racecar")}
	v := newTestView(svc)

	v = run(t, v, v.load(""))

	assert.Len(t, v.Records(), 2)
	assert.Equal(t, status.StateResults, v.Status())
	assert.Equal(t, "all", v.StatusMessage())
	require.NotNil(t, v.SelectedRecord())
	assert.Equal(t, "abc", v.SelectedRecord().Value)
	assert.True(t, svc.lastParams.IsEmpty())
}

func TestView_SubmitFilters(t *testing.T) {
	svc := &mockStringService{records: testRecords("racecar")}
	v := newTestView(svc)
	v.SetInput("min_length=3&is_palindrome=true")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v = run(t, v, cmd)

	assert.Equal(t, domain.QueryParams{IsPalindrome: "true", MinLength: "3"}, svc.lastParams)
	assert.Equal(t, "is_palindrome=true min_length=3", v.StatusMessage())
	assert.False(t, v.InputFocused())
	assert.Equal(t, "min_length=3&is_palindrome=true", v.LastInput())
}

func TestView_SubmitPhrase(t *testing.T) {
	svc := &mockStringService{records: testRecords("a", "aba")}
	v := newTestView(svc)
	v.SetInput("palindromic strings")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v = run(t, v, cmd)

	assert.Equal(t, "palindromic strings", svc.lastPhrase)
	assert.Equal(t, `{"is_palindrome":true}`, v.StatusMessage())
	assert.Len(t, v.Records(), 2)
}

func TestView_SubmitUnknownFilter(t *testing.T) {
	v := newTestView(&mockStringService{})
	v.SetInput("colour=red")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Error(t, v.Err())
	assert.Equal(t, status.StateError, v.Status())
	assert.True(t, v.InputFocused())
}

func TestView_UnparsablePhrase(t *testing.T) {
	svc := &mockStringService{queryErr: domain.ErrUnparsablePhrase}
	v := newTestView(svc)

	v = run(t, v, v.load("something odd"))

	assert.ErrorIs(t, v.Err(), domain.ErrUnparsablePhrase)
	assert.Equal(t, "phrase not recognised", v.StatusMessage())
}

func TestView_AddReloadsLastQuery(t *testing.T) {
	svc := &mockStringService{}
	v := newTestView(svc)
	v = run(t, v, v.load("min_length=1"))
	v.SetInput("+level")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	v, reload := v.Update(cmd())
	v = run(t, v, reload)

	assert.Equal(t, []string{"level"}, svc.created)
	assert.Equal(t, "", v.Input())
	assert.Equal(t, "1", svc.lastParams.MinLength)
	assert.Len(t, v.Records(), 1)
}

func TestView_AddDuplicate(t *testing.T) {
	svc := &mockStringService{createErr: domain.ErrAlreadyExists}
	v := newTestView(svc)

	v = run(t, v, v.create("abc"))

	assert.ErrorIs(t, v.Err(), domain.ErrAlreadyExists)
	assert.Equal(t, "string already exists", v.StatusMessage())
}

func TestView_Navigation(t *testing.T) {
	v := newTestView(&mockStringService{records: testRecords("a", "b", "c")})
	v = run(t, v, v.load(""))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, v.InputFocused())

	v, _ = v.Update(keyRunes("j"))
	v, _ = v.Update(keyRunes("j"))
	v, _ = v.Update(keyRunes("j"))
	assert.Equal(t, 2, v.SelectedIndex())
	assert.Equal(t, "c", v.SelectedRecord().Value)

	v, _ = v.Update(keyRunes("k"))
	assert.Equal(t, "b", v.SelectedRecord().Value)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_TypingGoesToInput(t *testing.T) {
	v := newTestView(&mockStringService{records: testRecords("a", "b")})
	v = run(t, v, v.load(""))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, v.InputFocused())
	v, _ = v.Update(keyRunes("/"))
	require.True(t, v.InputFocused())

	v, _ = v.Update(keyRunes("j"))

	assert.Equal(t, "j", v.Input())
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_StartsOnQueryLine(t *testing.T) {
	v := newTestView(&mockStringService{})

	assert.True(t, v.InputFocused())
	assert.Len(t, v.StatusHints(), 2)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, v.InputFocused())
	assert.Len(t, v.StatusHints(), 6)
}

func TestView_Delete(t *testing.T) {
	svc := &mockStringService{records: testRecords("a", "b")}
	v := newTestView(svc)
	v = run(t, v, v.load(""))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	v, _ = v.Update(keyRunes("j"))

	v, cmd := v.Update(keyRunes("d"))
	v = run(t, v, cmd)

	assert.Equal(t, []string{"b"}, svc.deleted)
	require.Len(t, v.Records(), 1)
	assert.Equal(t, "a", v.SelectedRecord().Value)
	assert.Equal(t, "deleted b", v.StatusMessage())
}

func TestView_DeleteFailure(t *testing.T) {
	svc := &mockStringService{records: testRecords("a"), deleteErr: domain.ErrNotFound}
	v := newTestView(svc)
	v = run(t, v, v.load(""))

	v = run(t, v, v.remove("a"))

	assert.ErrorIs(t, v.Err(), domain.ErrNotFound)
	assert.Len(t, v.Records(), 1)
}

func TestView_DeleteOnEmptyList(t *testing.T) {
	v := newTestView(&mockStringService{})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	_, cmd := v.Update(keyRunes("d"))

	assert.Nil(t, cmd)
}

func TestView_Refresh(t *testing.T) {
	svc := &mockStringService{records: testRecords("a")}
	v := newTestView(svc)
	v = run(t, v, v.load("word_count=1"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	svc.records = testRecords("a", "b")

	v, cmd := v.Update(keyRunes("r"))
	v = run(t, v, cmd)

	assert.Len(t, v.Records(), 2)
	assert.Equal(t, "1", svc.lastParams.WordCount)
}

func TestView_QuitFromList(t *testing.T) {
	v := newTestView(&mockStringService{})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	_, cmd := v.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_NoService(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetDimensions(80, 24)

	v = run(t, v, v.load(""))

	assert.ErrorIs(t, v.Err(), ErrNoStringService)
}

func TestView_ServiceError(t *testing.T) {
	boom := errors.New("boom")
	v := newTestView(&mockStringService{listErr: boom})

	v = run(t, v, v.load(""))

	assert.ErrorIs(t, v.Err(), boom)
	assert.Equal(t, "boom", v.StatusMessage())
}

func TestView_ErrorClearedOnLoad(t *testing.T) {
	v := newTestView(&mockStringService{})
	v, _ = v.Update(messages.ErrorOccurred{Err: errors.New("x")})
	require.Error(t, v.Err())

	v = run(t, v, v.load(""))

	assert.NoError(t, v.Err())
}

func TestView_Render(t *testing.T) {
	v := newTestView(&mockStringService{records: testRecords("racecar")})
	v = run(t, v, v.load(""))

	out := v.View()

	assert.Contains(t, out, "strindex")
	assert.Contains(t, out, "Query:")
	assert.Contains(t, out, "racecar")
	assert.Contains(t, out, "Strings (1)")
	assert.Contains(t, out, "unique characters")
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil, &mockStringService{})

	v, _ = v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.True(t, v.Ready())
}

func TestDescribeFilters(t *testing.T) {
	assert.Equal(t, "all", describeFilters(nil))
	assert.Equal(t, "max_length=9 min_length=2", describeFilters(map[string]string{
		"min_length": "2",
		"max_length": "9",
	}))
}
