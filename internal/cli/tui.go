package cli

import (
	"fmt"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/displaypicture/pkg/buildinfo"
	"github.com/matzehuels/displaypicture/pkg/demo"
	"github.com/matzehuels/displaypicture/pkg/errors"
	dpio "github.com/matzehuels/displaypicture/pkg/io"
	"github.com/matzehuels/displaypicture/pkg/paint"
	"github.com/matzehuels/displaypicture/pkg/sink"
	"github.com/matzehuels/displaypicture/pkg/view"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	statusErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	defaultPreviewCols = 32  // preview width in terminal columns
	previewScale       = 1.0 // raster scale used for the terminal preview
)

// =============================================================================
// Controls
// =============================================================================

// controlID identifies a row on the settings screen.
type controlID int

const (
	ctrlShape controlID = iota
	ctrlBorderWidth
	ctrlBorderColor
	ctrlBackground
	ctrlBadge
	ctrlBadgeSide
	ctrlBadgeCount
	ctrlChannel
	ctrlChannelSide
	ctrlShowImage
	ctrlNextProfile
	numControls
)

var controlLabels = [numControls]string{
	ctrlShape:       "Circle",
	ctrlBorderWidth: "Border width",
	ctrlBorderColor: "Border color",
	ctrlBackground:  "Background",
	ctrlBadge:       "Badge",
	ctrlBadgeSide:   "Badge on right",
	ctrlBadgeCount:  "Badge count",
	ctrlChannel:     "Channel",
	ctrlChannelSide: "Channel on right",
	ctrlShowImage:   "Show photo",
	ctrlNextProfile: "Next profile",
}

// =============================================================================
// DemoModel - Interactive widget settings screen
// =============================================================================

// DemoModel is the bubbletea model for the demo settings screen.
type DemoModel struct {
	Ctrl       *demo.Controller
	Cursor     int
	ExportPath string
	Cols       int

	preview   string
	status    string
	statusErr bool
}

// NewDemoModel creates a settings screen for ctrl. Exports go to exportPath.
func NewDemoModel(ctrl *demo.Controller, exportPath string, cols int) DemoModel {
	if cols <= 0 {
		cols = defaultPreviewCols
	}
	m := DemoModel{Ctrl: ctrl, ExportPath: exportPath, Cols: cols}
	m.refresh()
	return m
}

func (m DemoModel) Init() tea.Cmd {
	return nil
}

func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < int(numControls)-1 {
				m.Cursor++
			}
		case "enter", " ":
			m.setResult(m.activate(controlID(m.Cursor)))
		case "left", "h":
			m.setResult(m.adjust(controlID(m.Cursor), -1))
		case "right", "l":
			m.setResult(m.adjust(controlID(m.Cursor), +1))
		case "e":
			m.setResult(m.export())
		}
	case tea.WindowSizeMsg:
		// Leave room for the controls table on the left.
		m.Cols = min(defaultPreviewCols*2, max(8, msg.Width-48))
		m.refresh()
	}
	return m, nil
}

// activate toggles or presses the control.
func (m *DemoModel) activate(id controlID) (string, error) {
	c := m.Ctrl
	s := c.State()
	switch id {
	case ctrlShape:
		c.ToggleShape(s.Shape != view.ShapeCircle)
	case ctrlBorderWidth:
		c.SetBorderWidth(0)
	case ctrlBorderColor:
		if !c.CycleBorderColor() {
			return "set a border width first", nil
		}
	case ctrlBackground:
		if err := c.CycleBackground(); err != nil {
			return "", err
		}
	case ctrlBadge:
		if err := c.ToggleBadge(!s.BadgeOn); err != nil {
			return "", err
		}
	case ctrlBadgeSide:
		if !c.ToggleBadgePosition(!s.BadgeRight) {
			return "turn the badge on first", nil
		}
	case ctrlBadgeCount:
		c.IncrementBadge()
	case ctrlChannel:
		if err := c.ToggleChannel(!s.ChannelOn); err != nil {
			return "", err
		}
	case ctrlChannelSide:
		if !c.ToggleChannelPosition(!s.ChannelRight) {
			return "turn the channel on first", nil
		}
	case ctrlShowImage:
		if err := c.ToggleProfileImage(!s.ShowImage); err != nil {
			return "", err
		}
	case ctrlNextProfile:
		if err := c.NextProfile(); err != nil {
			return "", err
		}
		return "showing " + c.State().Profile.Name, nil
	}
	return "", nil
}

// adjust moves sliders and steppers by delta. Other controls ignore it.
func (m *DemoModel) adjust(id controlID, delta int) (string, error) {
	c := m.Ctrl
	switch id {
	case ctrlBorderWidth:
		c.SetBorderWidth(c.State().BorderWidth + float64(delta))
	case ctrlBadgeCount:
		if delta > 0 {
			c.IncrementBadge()
		} else {
			c.DecrementBadge()
		}
	}
	return "", nil
}

func (m *DemoModel) export() (string, error) {
	data, err := sink.RenderPNG(m.Ctrl.Widget().Layer())
	if err != nil {
		return "", err
	}
	if err := dpio.WriteFile(m.ExportPath, data); err != nil {
		return "", err
	}
	return "exported " + m.ExportPath, nil
}

// setResult records the outcome of an action and redraws the preview.
func (m *DemoModel) setResult(msg string, err error) {
	if err != nil {
		m.status, m.statusErr = errors.UserMessage(err), true
	} else {
		m.status, m.statusErr = msg, false
	}
	m.refresh()
}

func (m *DemoModel) refresh() {
	img, err := sink.RenderImage(m.Ctrl.Widget().Layer(), previewScale)
	if err != nil {
		m.preview = ""
		m.status, m.statusErr = errors.UserMessage(err), true
		return
	}
	m.preview = renderPreview(img, m.Cols)
}

// Status returns the last status line and whether it reports an error.
func (m DemoModel) Status() (string, bool) { return m.status, m.statusErr }

func (m DemoModel) View() string {
	var b strings.Builder

	s := m.Ctrl.State()
	b.WriteString(StyleTitle.Render("Display Picture"))
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(s.Profile.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ toggle  ←/→ adjust  e export  q quit  · " + buildinfo.Short()))
	b.WriteString("\n\n")

	rows := make([][]string, 0, numControls)
	for i := range int(numControls) {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, controlLabels[i], m.controlValue(controlID(i), s)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if !m.enabled(controlID(row), s) {
				return listDimStyle
			}
			if row == m.Cursor && col != 2 {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	preview := lipgloss.NewStyle().PaddingLeft(2).Render(m.preview)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, t.Render(), preview))
	b.WriteString("\n\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(statusErrorStyle.Render(iconError + " " + m.status))
		} else {
			b.WriteString(StyleSuccess.Render(iconSuccess) + " " + StyleDim.Render(m.status))
		}
	}
	return b.String()
}

// enabled mirrors which controls respond in the current state.
func (m DemoModel) enabled(id controlID, s demo.State) bool {
	switch id {
	case ctrlBorderColor:
		return s.BorderColorOK
	case ctrlBadgeSide:
		return s.BadgeSideOK
	case ctrlBadgeCount:
		return s.BadgeOn
	case ctrlChannelSide:
		return s.ChannelSideOK
	}
	return true
}

func (m DemoModel) controlValue(id controlID, s demo.State) string {
	switch id {
	case ctrlShape:
		return onOff(s.Shape == view.ShapeCircle)
	case ctrlBorderWidth:
		w := int(s.BorderWidth)
		return strings.Repeat("■", w) + strings.Repeat("□", demo.MaxBorderWidth-w) + fmt.Sprintf(" %d", w)
	case ctrlBorderColor:
		return swatch(s.BorderColor)
	case ctrlBackground:
		var parts []string
		for _, c := range s.Background {
			parts = append(parts, swatch(c))
		}
		return strings.Join(parts, " ") + "  badge " + swatch(s.BadgeColor)
	case ctrlBadge:
		return onOff(s.BadgeOn)
	case ctrlBadgeSide:
		return onOff(s.BadgeRight)
	case ctrlBadgeCount:
		return fmt.Sprintf("- %d +", s.BadgeCount)
	case ctrlChannel:
		return onOff(s.ChannelOn) + " " + listDimStyle.Render(s.Profile.Channel)
	case ctrlChannelSide:
		return onOff(s.ChannelRight)
	case ctrlShowImage:
		return onOff(s.ShowImage)
	case ctrlNextProfile:
		return fmt.Sprintf("%d/%d", s.ProfileIndex+1, s.ProfileCount)
	}
	return ""
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// swatch renders a small block of c with its hex value.
func swatch(c color.NRGBA) string {
	hex := paint.Hex(c)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██") + " " + hex
}
