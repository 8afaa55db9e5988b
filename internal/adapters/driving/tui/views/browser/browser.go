// Package browser provides the single-screen string browser for the TUI.
package browser

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/components/detail"
	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/strindex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/strindex/internal/core/domain"
	"github.com/custodia-labs/strindex/internal/core/ports/driving"
)

// View is the browser screen: query line on top, record list on the left,
// detail pane on the right and a status bar underneath.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.RecordList
	detail    *detail.Pane
	statusbar *status.Bar

	service driving.StringService
	ctx     context.Context

	// lastInput is re-run after adds, deletes and refreshes.
	lastInput string

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool
}

// NewView creates a new browser view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.StringService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewQueryInput(s),
		list:      list.NewRecordList(s),
		detail:    detail.NewPane(s),
		statusbar: status.NewBar(s, km),
		service:   service,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
	v.setFocus(true)
	return v
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init blinks the cursor and loads every stored string.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.load(""))
}

// Update handles messages for the browser.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RecordsLoaded:
		v.handleRecordsLoaded(msg)
		return v, nil

	case messages.RecordCreated:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.statusbar.SetMessage("added " + list.Truncate(msg.Record.Value, 24))
		return v, v.load(v.lastInput)

	case messages.RecordDeleted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.list.Remove(msg.Value)
		v.syncSelection()
		v.statusbar.SetCount(len(v.list.Records()))
		v.statusbar.SetMessage("deleted " + list.Truncate(msg.Value, 24))
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.focusInput {
		switch {
		case keymap.Matches(msg, v.keymap.Submit):
			return v, v.submit(v.input.Value())
		case keymap.Matches(msg, v.keymap.Back):
			v.setFocus(false)
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(msg, v.keymap.Quit):
		return v, tea.Quit
	case keymap.Matches(msg, v.keymap.Edit):
		v.setFocus(true)
		return v, nil
	case keymap.Matches(msg, v.keymap.Up):
		v.list.MoveUp()
		v.syncSelection()
	case keymap.Matches(msg, v.keymap.Down):
		v.list.MoveDown()
		v.syncSelection()
	case keymap.Matches(msg, v.keymap.Delete):
		if rec := v.list.SelectedRecord(); rec != nil {
			return v, v.remove(rec.Value)
		}
	case keymap.Matches(msg, v.keymap.Refresh):
		return v, v.load(v.lastInput)
	}
	return v, nil
}

// submit parses the query line and issues the matching command.
func (v *View) submit(line string) tea.Cmd {
	req, err := ParseInput(line)
	if err != nil {
		v.setError(err)
		return nil
	}

	v.statusbar.SetState(status.StateLoading)
	if req.Kind == KindAdd {
		v.input.SetValue("")
		return v.create(req.Value)
	}
	v.setFocus(false)
	return v.load(line)
}

// load runs line against the service and reports the records.
func (v *View) load(line string) tea.Cmd {
	v.lastInput = line
	svc, ctx := v.service, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoStringService}
		}
		req, err := ParseInput(line)
		if err != nil {
			return messages.RecordsLoaded{Input: line, Err: err}
		}

		if req.Kind == KindPhrase {
			res, err := svc.Query(ctx, req.Phrase)
			if err != nil {
				return messages.RecordsLoaded{Input: line, Err: err}
			}
			parsed, _ := json.Marshal(res.InterpretedQuery.ParsedFilters)
			return messages.RecordsLoaded{Input: line, Summary: string(parsed), Records: res.Data}
		}

		res, err := svc.List(ctx, req.Params)
		if err != nil {
			return messages.RecordsLoaded{Input: line, Err: err}
		}
		return messages.RecordsLoaded{Input: line, Summary: describeFilters(res.FiltersApplied), Records: res.Data}
	}
}

func (v *View) create(value string) tea.Cmd {
	svc, ctx := v.service, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoStringService}
		}
		rec, err := svc.Create(ctx, value)
		return messages.RecordCreated{Record: rec, Err: err}
	}
}

func (v *View) remove(value string) tea.Cmd {
	svc, ctx := v.service, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoStringService}
		}
		return messages.RecordDeleted{Value: value, Err: svc.Delete(ctx, value)}
	}
}

func (v *View) handleRecordsLoaded(msg messages.RecordsLoaded) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.list.SetRecords(msg.Records)
	v.syncSelection()
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetCount(len(msg.Records))
	v.statusbar.SetMessage(msg.Summary)
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(errorText(err))
}

func (v *View) setFocus(onInput bool) {
	v.focusInput = onInput
	v.statusbar.SetEditing(onInput)
	if onInput {
		v.input.Focus()
	} else {
		v.input.Blur()
	}
}

func (v *View) syncSelection() {
	v.detail.SetRecord(v.list.SelectedRecord())
}

// errorText shortens domain errors to their user-facing form.
func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return "string already exists"
	case errors.Is(err, domain.ErrNotFound):
		return "string not found"
	case errors.Is(err, domain.ErrUnparsablePhrase):
		return "phrase not recognised"
	default:
		return err.Error()
	}
}

// describeFilters renders applied filters as sorted key=value pairs.
func describeFilters(applied map[string]string) string {
	if len(applied) == 0 {
		return "all"
	}
	pairs := make([]string, 0, len(applied))
	for k, val := range applied {
		pairs = append(pairs, k+"="+val)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, " ")
}

// View renders the browser.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	header := v.styles.Title.Render("strindex")
	body := lipgloss.JoinHorizontal(lipgloss.Top, v.list.View(), "  ", v.detail.View())

	sections := []string{header, "", v.input.View(), ""}
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+errorText(v.err)), "")
	}
	sections = append(sections, body, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions splits the screen between the list and the detail pane.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	bodyHeight := height - 9
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	listWidth := width * 2 / 5
	if listWidth < 20 {
		listWidth = 20
	}

	v.input.SetWidth(width)
	v.list.SetDimensions(listWidth, bodyHeight)
	v.detail.SetDimensions(width-listWidth-2, bodyHeight)
	v.statusbar.SetWidth(width)
}

// Ready reports whether the view has been sized.
func (v *View) Ready() bool {
	return v.ready
}

// Input returns the current query line.
func (v *View) Input() string {
	return v.input.Value()
}

// SetInput replaces the query line.
func (v *View) SetInput(line string) {
	v.input.SetValue(line)
}

// LastInput returns the query line behind the listed records.
func (v *View) LastInput() string {
	return v.lastInput
}

// Records returns the listed records.
func (v *View) Records() []domain.StringRecord {
	return v.list.Records()
}

// SelectedIndex returns the index of the selected record.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedRecord returns the record shown in the detail pane.
func (v *View) SelectedRecord() *domain.StringRecord {
	return v.detail.Record()
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// StatusHints returns the key hints shown in the status bar.
func (v *View) StatusHints() []key.Binding {
	return v.statusbar.Hints()
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused reports whether the query line has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
