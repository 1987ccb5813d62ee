package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/justyntemme/plugbind/pkg/framework/descriptor"
	"github.com/justyntemme/plugbind/pkg/framework/plugin"
)

type renderer struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
	muted  lipgloss.Style
}

func newRenderer(color bool) *renderer {
	r := &renderer{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		cell:   lipgloss.NewStyle().Padding(0, 1),
		border: lipgloss.NewStyle(),
		muted:  lipgloss.NewStyle(),
	}
	if color {
		r.title = r.title.Foreground(lipgloss.Color("86"))
		r.header = r.header.Foreground(lipgloss.Color("252"))
		r.border = r.border.Foreground(lipgloss.Color("240"))
		r.muted = r.muted.Foreground(lipgloss.Color("240"))
	}
	return r
}

func (r *renderer) render(info plugin.Info, iface *descriptor.Interface) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.title.Render(info.String()),
		r.muted.Render(info.Category),
		"",
		r.busTable(iface),
		"",
		r.paramTable(iface),
	)
}

func (r *renderer) busTable(iface *descriptor.Interface) string {
	layout := iface.Layout()
	rows := make([][]string, 0, iface.NumBuses())
	for i, b := range iface.Buses() {
		role, _ := iface.Role(i)
		name := b.Name
		if name == "" {
			name = "-"
		}
		width := "mono"
		if b.Stereo {
			width = "stereo"
		}
		first := layout.ChannelOffset[i]
		chans := fmt.Sprintf("%d", first)
		if b.ChannelCount() > 1 {
			chans = fmt.Sprintf("%d-%d", first, first+b.ChannelCount()-1)
		}
		rows = append(rows, []string{fmt.Sprint(i), role.String(), name, width, chans})
	}
	summary := fmt.Sprintf("%d in / %d out channels", layout.NumChannelsIn, layout.NumChannelsOut)
	return lipgloss.JoinVertical(lipgloss.Left,
		r.table([]string{"#", "ROLE", "NAME", "WIDTH", "CHANNELS"}, rows),
		r.muted.Render(summary),
	)
}

func (r *renderer) paramTable(iface *descriptor.Interface) string {
	if iface.NumParameters() == 0 {
		return r.muted.Render("no parameters")
	}
	rows := make([][]string, 0, iface.NumParameters())
	for i, p := range iface.Parameters() {
		dir := "in"
		if p.Output {
			dir = "out"
		}
		rows = append(rows, []string{fmt.Sprint(i), p.Name, p.ShortName, dir, p.FormatValue(p.DefaultValue)})
	}
	return r.table([]string{"#", "NAME", "SHORT", "DIR", "DEFAULT"}, rows)
}

func (r *renderer) table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.header
			}
			return r.cell
		}).
		Render()
}
