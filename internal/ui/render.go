package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/doggallery/internal/dogapi"
	"github.com/five82/doggallery/internal/state"
)

const (
	galleryTitle    = "Adorable Dog Gallery"
	gallerySubtitle = "Random collection of cute dog pictures"
	loadingText     = "Fetching dogs..."
	reloadLabel     = "[r] Load New Dogs"
	tileCaption     = "Good Doggo"
	tileBreed       = "Breed: Unknown"
	emptyText       = "No dogs this time."
)

// RenderOptions carries everything besides the view state that affects the
// rendered frame. Render reads nothing else.
type RenderOptions struct {
	Width  int
	Height int
	Theme  Theme

	// Spinner is the current spinner frame shown while loading.
	Spinner string

	// Columns pins the grid width (1-3). Zero follows the terminal width.
	Columns int

	// Selected is the highlighted tile index, or -1 for none.
	Selected  int
	ScrollRow int

	// Batch is the number of fetch cycles started; Updated is when the
	// last result was applied. Both show in the header once a fetch resolves.
	Batch   int
	Updated time.Time

	Footer string
	Flash  string

	// FlashError styles Flash as a failure.
	FlashError bool
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Theme.Name == "" {
		o.Theme = GetTheme("")
	}
	if o.Spinner == "" {
		o.Spinner = "*"
	}
	return o
}

// Render draws one frame for vs. Identical inputs produce identical output.
func Render(vs state.ViewState, opts RenderOptions) string {
	o := opts.withDefaults()
	s := o.Theme.Styles()

	bodyHeight := max(o.Height-headerHeight-footerHeight, 1)

	var body string
	switch vs.Phase {
	case state.PhaseReady:
		body = renderReady(s, vs.Images, o, bodyHeight)
	case state.PhaseFailed:
		body = renderFailed(s, vs.Message, o.Width)
	default:
		body = renderLoading(s, o.Spinner, o.Width, bodyHeight)
	}

	var b strings.Builder
	b.WriteString(renderHeader(s, vs.Phase, o))
	b.WriteString("\n")
	b.WriteString(fitLines(body, bodyHeight))
	b.WriteString("\n")
	b.WriteString(s.FooterBar.Width(o.Width).Render(truncateANSI(o.Footer, o.Width)))
	return b.String()
}

func renderHeader(s Styles, phase state.Phase, o RenderOptions) string {
	title := lipgloss.PlaceHorizontal(o.Width, lipgloss.Center, s.Title.Render(truncate(galleryTitle, o.Width)))
	subtitle := lipgloss.PlaceHorizontal(o.Width, lipgloss.Center, s.Subtitle.Render(truncate(gallerySubtitle, o.Width)))
	lines := title + "\n" + subtitle
	if meta := batchLine(phase, o); meta != "" {
		lines += "\n" + lipgloss.PlaceHorizontal(o.Width, lipgloss.Center, s.FaintText.Render(truncate(meta, o.Width)))
	}
	return fitLines(lines, headerHeight)
}

// batchLine describes the resolved batch, e.g. "Batch 2 · updated 15:04:05".
func batchLine(phase state.Phase, o RenderOptions) string {
	if phase == state.PhaseLoading || o.Batch <= 0 {
		return ""
	}
	line := fmt.Sprintf("Batch %d", o.Batch)
	if !o.Updated.IsZero() {
		line += " · updated " + o.Updated.Format("15:04:05")
	}
	return line
}

func renderLoading(s Styles, frame string, width, height int) string {
	line := s.Spinner.Render(frame) + " " + s.MutedText.Render(loadingText)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, line)
}

// Below bannerChrome+minBannerInner cells the error drops its banner.
const (
	bannerChrome   = 6 // border plus horizontal padding
	minBannerInner = 6 // len("Error:")
)

func renderFailed(s Styles, message string, width int) string {
	text := "Error: " + message
	if width < bannerChrome+minBannerInner {
		return "\n" + s.DangerText.Render(truncate(text, width))
	}
	banner := s.Banner
	if lipgloss.Width(text)+bannerChrome > width {
		// Width covers padding but not the border.
		banner = banner.Width(width - 2)
	}
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, banner.Render(text))
}

func renderReady(s Styles, images dogapi.ImageList, o RenderOptions, height int) string {
	var lines []string

	if len(images) == 0 {
		lines = append(lines, "", lipgloss.PlaceHorizontal(o.Width, lipgloss.Center, s.WarningText.Render(emptyText)))
	} else {
		g := computeGrid(o.Width, o.Height, o.Columns, len(images))
		scroll := clampScroll(o.ScrollRow, o.Selected, g)
		last := min(scroll+g.VisibleRows, g.Rows)

		for row := scroll; row < last; row++ {
			if row > scroll {
				lines = append(lines, "")
			}
			lines = append(lines, renderGridRow(s, images, row, g, o.Selected)...)
		}
	}

	control := lipgloss.PlaceHorizontal(o.Width, lipgloss.Center, s.Control.Render(reloadLabel))
	if height < controlHeight {
		// The reload control outranks everything else on a tiny terminal.
		return control
	}

	// Grid rows give way to the control lines.
	if avail := height - controlHeight; len(lines) > avail {
		lines = lines[:avail]
	}
	lines = append(lines, "", control, renderStatusLine(s, images, o))
	return strings.Join(lines, "\n")
}

func renderGridRow(s Styles, images dogapi.ImageList, row int, g gridGeometry, selected int) []string {
	out := make([]string, tileHeight)
	gap := strings.Repeat(" ", tileGap)
	for col := 0; col < g.Columns; col++ {
		idx := row*g.Columns + col
		if idx >= len(images) {
			break
		}
		tile := renderTile(s, idx, images[idx], g.TileWidth, idx == selected)
		for i := range out {
			if col > 0 {
				out[i] += gap
			}
			out[i] += tile[i]
		}
	}
	return out
}

// renderTile draws a bordered card with its 1-based position in the top edge.
func renderTile(s Styles, index int, imageURL string, width int, selected bool) []string {
	border := s.Border
	if selected {
		border = s.Focus
	}
	inner := max(width-2, 2)

	badge := fmt.Sprintf(" #%d ", index+1)
	badgeWidth := lipgloss.Width(badge)
	right := 1
	left := max(inner-badgeWidth-right, 0)
	if left == 0 {
		right = max(inner-badgeWidth, 0)
	}
	top := border.Render("┌"+strings.Repeat("─", left)) +
		s.Badge.Render(badge) +
		border.Render(strings.Repeat("─", right)+"┐")

	cell := func(text string, style lipgloss.Style) string {
		content := " " + truncate(text, inner-2)
		return border.Render("│") + style.Render(padRight(content, inner)) + border.Render("│")
	}

	name := s.AccentText
	if selected {
		name = s.SuccessText
	}

	return []string{
		top,
		cell(dogapi.ImageFilename(imageURL), name),
		cell(tileCaption, s.Caption),
		cell(tileBreed, s.MutedText),
		border.Render("└" + strings.Repeat("─", inner) + "┘"),
	}
}

func renderStatusLine(s Styles, images dogapi.ImageList, o RenderOptions) string {
	if o.Flash != "" {
		style := s.SuccessText
		if o.FlashError {
			style = s.DangerText
		}
		return lipgloss.PlaceHorizontal(o.Width, lipgloss.Center, style.Render(truncate(o.Flash, o.Width)))
	}
	if o.Selected < 0 || o.Selected >= len(images) {
		return ""
	}
	prefix := fmt.Sprintf("Selected %d/%d: ", o.Selected+1, len(images))
	url := truncateMiddle(images[o.Selected], max(o.Width-len(prefix), 4))
	return lipgloss.PlaceHorizontal(o.Width, lipgloss.Center, s.FaintText.Render(prefix+url))
}

// truncateANSI cuts a pre-styled line to width cells.
func truncateANSI(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
