package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-keeper/internal/sitefile"
	"github.com/MKhiriev/go-site-keeper/internal/validators"
	"github.com/MKhiriev/go-site-keeper/models"
)

type pane int

const (
	paneHead pane = iota
	paneBody
	paneConfig
	paneCount
)

var paneTitles = [paneCount]string{"Head", "Body", "Configuration"}

// chromeLines is the height taken by everything around the viewport.
const chromeLines = 7

const statusTimeout = 2 * time.Second

type previewModel struct {
	ctx       context.Context
	source    Source
	publisher Publisher
	buildInfo models.AppBuildInfo

	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model

	pane     pane
	snapshot Snapshot
	loaded   bool
	loadErr  error
	busy     bool
	status   string

	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool

	copyToClipboard func(string) error
}

func newPreviewModel(ctx context.Context, source Source, publisher Publisher, buildInfo models.AppBuildInfo) previewModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return previewModel{
		ctx:             ctx,
		source:          source,
		publisher:       publisher,
		buildInfo:       buildInfo,
		help:            help.New(),
		spinner:         s,
		viewport:        viewport.New(80, 20),
		busy:            true,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m previewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = max(msg.Width-4, 10)
		m.viewport.Height = max(msg.Height-chromeLines, 3)
		m.help.Width = msg.Width
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loadedMsg:
		m.busy = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.snapshot = msg.snapshot
			m.loaded = true
		}
		m.refreshContent()
		return m, nil

	case publishedMsg:
		m.busy = false
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		if msg.created {
			m.status = fmt.Sprintf("published revision #%d (%s)", msg.revision.Number, msg.revision.ID)
		} else {
			m.status = fmt.Sprintf("unchanged, latest is revision #%d", msg.revision.Number)
		}
		return m, cmdClearStatus()

	case copiedMsg:
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		m.status = "head fragment copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m previewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case m.showBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil

	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.nextPane):
		m.pane = (m.pane + 1) % paneCount
		m.refreshContent()
		return m, nil

	case key.Matches(msg, keys.prevPane):
		m.pane = (m.pane + paneCount - 1) % paneCount
		m.refreshContent()
		return m, nil

	case key.Matches(msg, keys.reload):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())

	case key.Matches(msg, keys.copy):
		if !m.ready() {
			m.status = "nothing to copy"
			return m, cmdClearStatus()
		}
		return m, m.cmdCopy(m.snapshot.Head.Head)

	case key.Matches(msg, keys.publish):
		switch {
		case m.busy:
			return m, nil
		case m.publisher == nil:
			m.status = "publishing is not configured"
			return m, cmdClearStatus()
		case !m.ready():
			m.status = "fix the document before publishing"
			return m, cmdClearStatus()
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdPublish(m.snapshot.Sections))
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// ready reports whether the latest load succeeded.
func (m previewModel) ready() bool {
	return m.loaded && m.loadErr == nil
}

func (m previewModel) withError(err error) previewModel {
	m.showError = true
	m.errorOverlay.message = humanizeServerUnavailableError(err)
	return m
}

func (m *previewModel) refreshContent() {
	m.viewport.SetContent(m.content())
}

func (m previewModel) content() string {
	if m.loadErr != nil {
		return renderLoadError(m.loadErr)
	}
	if !m.loaded {
		return "loading..."
	}

	switch m.pane {
	case paneBody:
		return "<body " + m.snapshot.Head.BodyAttrs + ">\n\n" + m.snapshot.Head.ColorModeScript
	case paneConfig:
		var buf bytes.Buffer
		if err := sitefile.Encode(&buf, m.snapshot.Config, sitefile.FormatJSON); err != nil {
			return errorStyle.Render(err.Error())
		}
		return buf.String()
	default:
		return m.snapshot.Head.Head
	}
}

func renderLoadError(err error) string {
	var cfgErr *validators.ConfigError
	if !errors.As(err, &cfgErr) {
		return errorStyle.Render("Error: ") + err.Error()
	}

	var b strings.Builder
	b.WriteString(errorStyle.Render(fmt.Sprintf("Configuration rejected (%d violations)", len(cfgErr.Violations))))
	b.WriteString("\n\n")
	for _, v := range cfgErr.Violations {
		fmt.Fprintf(&b, "• %s %s: %s\n", v.Kind, v.Field, v.Message)
	}
	return b.String()
}

func (m previewModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}

	var b strings.Builder

	title := "sitectl preview"
	if m.snapshot.Path != "" {
		title += "  " + fitText(m.snapshot.Path, m.viewport.Width-len(title)-2)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	for i, name := range paneTitles {
		if pane(i) == m.pane {
			b.WriteString(activeTabStyle.Render(name))
		} else {
			b.WriteString(inactiveTabStyle.Render(name))
		}
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " working...")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return appStyle.Render(b.String())
}

func (m previewModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	source := m.source
	return func() tea.Msg {
		snapshot, err := source.Load(ctx)
		return loadedMsg{snapshot: snapshot, err: err}
	}
}

func (m previewModel) cmdPublish(sections models.Sections) tea.Cmd {
	ctx := m.ctx
	publisher := m.publisher
	return func() tea.Msg {
		rev, created, err := publisher.Publish(ctx, sections)
		return publishedMsg{revision: rev, created: created, err: err}
	}
}

func (m previewModel) cmdCopy(text string) tea.Cmd {
	write := m.copyToClipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
