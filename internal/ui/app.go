package ui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/five82/doggallery/internal/dogapi"
	"github.com/five82/doggallery/internal/logger"
	"github.com/five82/doggallery/internal/prefs"
	"github.com/five82/doggallery/internal/state"
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Fetcher      dogapi.ImageFetcher
	Store        *state.Store
	Logger       *logger.Logger // nil uses the logger carried by Context
	FetchTimeout time.Duration
	ThemeName    string
	Columns      int
	PrefsPath    string

	// Clipboard writes text to the system clipboard. Defaults to atotto/clipboard.
	Clipboard func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	fetcher      dogapi.ImageFetcher
	store        *state.Store
	log          *logger.Logger
	fetchTimeout time.Duration
	prefsPath    string
	clipboard    func(string) error

	// UI state
	theme   Theme
	columns int
	width   int
	height  int
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	// Grid state
	selected   int
	scrollRow  int
	flash      string
	flashError bool

	// Help overlay
	showHelp bool
	helpView string
}

// imagesLoadedMsg carries the outcome of one fetch cycle.
type imagesLoadedMsg struct {
	generation state.Generation
	requestID  string
	images     dogapi.ImageList
	err        error
}

type copiedMsg struct {
	url string
	err error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	log := opts.Logger
	if log == nil {
		log = logger.FromContext(ctx)
	}

	timeout := opts.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	theme := GetTheme(opts.ThemeName)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = theme.Styles().Spinner

	h := help.New()
	h.ShortSeparator = "  "

	return Model{
		ctx:          ctx,
		fetcher:      opts.Fetcher,
		store:        store,
		log:          log.Component("ui"),
		fetchTimeout: timeout,
		prefsPath:    opts.PrefsPath,
		clipboard:    copyFn,
		theme:        theme,
		columns:      clampColumns(opts.Columns),
		keys:         DefaultKeyMap(),
		help:         h,
		spinner:      sp,
		selected:     -1,
	}
}

// Init implements tea.Model. It starts the first fetch cycle.
func (m Model) Init() tea.Cmd {
	if m.store.Closed() {
		return nil
	}
	gen := m.store.Begin()
	return tea.Batch(m.spinner.Tick, m.fetchImagesCmd(gen))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollRow = clampScroll(m.scrollRow, m.selected, m.geometry())
		if m.showHelp {
			m.helpView = renderHelp(m.theme, m.keys, m.width, m.height)
		}
		return m, nil

	case spinner.TickMsg:
		// Let the tick chain lapse once the fetch has resolved.
		if m.store.Snapshot().Phase != state.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case imagesLoadedMsg:
		return m.handleImagesLoaded(msg)

	case copiedMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("clipboard write failed")
			m.flash = "Copy failed: " + msg.err.Error()
			m.flashError = true
			return m, nil
		}
		m.flash = "Copied " + dogapi.ImageFilename(msg.url)
		m.flashError = false
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp && m.helpView != "" {
		return m.helpView
	}

	vs := m.store.Snapshot()
	return Render(vs, RenderOptions{
		Width:      m.width,
		Height:     m.height,
		Theme:      m.theme,
		Spinner:    m.spinner.View(),
		Columns:    m.columns,
		Selected:   m.selected,
		ScrollRow:  m.scrollRow,
		Batch:      m.store.Fetches(),
		Updated:    m.store.LastUpdated(),
		Footer:     m.help.View(m.keys.forPhase(vs.Phase)),
		Flash:      m.flash,
		FlashError: m.flashError,
	})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) handleImagesLoaded(msg imagesLoadedMsg) (tea.Model, tea.Cmd) {
	entry := m.log.WithFields(logger.Fields{
		logger.FieldRequestID:  msg.requestID,
		logger.FieldGeneration: uint64(msg.generation),
	})

	if !m.store.Resolve(msg.generation, msg.images, msg.err) {
		entry.Debug("discarded stale fetch result")
		return m, nil
	}

	vs := m.store.Snapshot()
	if vs.Phase == state.PhaseReady && len(vs.Images) > 0 {
		m.selected = 0
	} else {
		m.selected = -1
	}
	m.scrollRow = 0
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			return m.quit()
		}
		// Any other key closes help
		m.showHelp = false
		m.helpView = ""
		return m, nil
	}

	m.flash = ""
	m.flashError = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpView = renderHelp(m.theme, m.keys, m.viewWidth(), m.viewHeight())
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = m.theme.Styles().Spinner
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleColumns):
		m.columns = prefs.NextColumns(m.columns)
		m.scrollRow = clampScroll(m.scrollRow, m.selected, m.geometry())
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}

	vs := m.store.Snapshot()
	if vs.Phase != state.PhaseReady || len(vs.Images) == 0 {
		return m, nil
	}

	if key.Matches(msg, m.keys.Copy) {
		if m.selected < 0 || m.selected >= len(vs.Images) {
			return m, nil
		}
		return m, copyCmd(m.clipboard, vs.Images[m.selected])
	}

	m.moveSelection(msg, len(vs.Images))
	return m, nil
}

// reload starts a new fetch cycle. It is ignored while a fetch is in flight.
func (m Model) reload() (tea.Model, tea.Cmd) {
	if m.store.Closed() || m.store.Snapshot().Phase == state.PhaseLoading {
		return m, nil
	}
	gen := m.store.Begin()
	m.selected = -1
	m.scrollRow = 0
	m.log.WithField(logger.FieldGeneration, uint64(gen)).Info("reloading dogs")
	return m, tea.Batch(m.spinner.Tick, m.fetchImagesCmd(gen))
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.store.Close()
	return m, tea.Quit
}

// moveSelection handles grid navigation keys.
func (m *Model) moveSelection(msg tea.KeyMsg, count int) {
	g := m.geometry()
	sel := max(m.selected, 0)

	switch {
	case key.Matches(msg, m.keys.Up):
		if sel-g.Columns >= 0 {
			sel -= g.Columns
		}
	case key.Matches(msg, m.keys.Down):
		if sel+g.Columns < count {
			sel += g.Columns
		}
	case key.Matches(msg, m.keys.Left):
		if sel > 0 {
			sel--
		}
	case key.Matches(msg, m.keys.Right):
		if sel < count-1 {
			sel++
		}
	case key.Matches(msg, m.keys.First):
		sel = 0
	case key.Matches(msg, m.keys.Last):
		sel = count - 1
	default:
		return
	}

	m.selected = sel
	m.scrollRow = clampScroll(m.scrollRow, m.selected, g)
}

func (m Model) geometry() gridGeometry {
	return computeGrid(m.viewWidth(), m.viewHeight(), m.columns, len(m.store.Snapshot().Images))
}

func (m Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) viewHeight() int {
	if m.height <= 0 {
		return defaultHeight
	}
	return m.height
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Columns: m.columns}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.WithError(err).Warn("save prefs failed")
	}
}

// fetchImagesCmd performs one fetch for generation gen off the UI goroutine.
func (m Model) fetchImagesCmd(gen state.Generation) tea.Cmd {
	ctx, fetcher, timeout, log := m.ctx, m.fetcher, m.fetchTimeout, m.log
	return func() tea.Msg {
		requestID := newRequestID()
		entry := log.WithFields(logger.Fields{
			logger.FieldRequestID:  requestID,
			logger.FieldGeneration: uint64(gen),
		})

		if fetcher == nil {
			return imagesLoadedMsg{generation: gen, requestID: requestID, err: errNoFetcher}
		}

		fetchCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		start := time.Now()
		images, err := fetcher.FetchImages(fetchCtx)
		entry = entry.WithField(logger.FieldDurationMs, time.Since(start).Milliseconds())
		if err != nil {
			entry.WithError(err).Warn("fetch dogs failed")
		} else {
			entry.WithField(logger.FieldCount, len(images)).Info("fetched dogs")
		}
		return imagesLoadedMsg{generation: gen, requestID: requestID, images: images, err: err}
	}
}

func copyCmd(write func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{url: url, err: write(url)}
	}
}

func newRequestID() string {
	return uuid.NewString()
}

func clampColumns(n int) int {
	if n < 0 || n > maxColumns {
		return 0
	}
	return n
}

var errNoFetcher = errors.New("no image fetcher configured")

// Compile-time check that Model satisfies tea.Model.
var _ tea.Model = Model{}
