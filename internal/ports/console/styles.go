package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"coup/internal/domain"
)

// Palette colours, 256-colour codes.
var (
	headingColor = lipgloss.Color("213")
	nameColor    = lipgloss.Color("39")
	coinColor    = lipgloss.Color("220")
	warnColor    = lipgloss.Color("203")
	mutedColor   = lipgloss.Color("245")
)

var roleColors = map[domain.Role]lipgloss.Color{
	domain.Duke:       lipgloss.Color("135"),
	domain.Assassin:   lipgloss.Color("240"),
	domain.Captain:    lipgloss.Color("33"),
	domain.Ambassador: lipgloss.Color("35"),
	domain.Contessa:   lipgloss.Color("160"),
}

// styles binds the palette to one writer so colour detection follows it.
type styles struct {
	heading lipgloss.Style
	name    lipgloss.Style
	coins   lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
	roles   map[domain.Role]lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	s := styles{
		heading: r.NewStyle().Foreground(headingColor).Bold(true),
		name:    r.NewStyle().Foreground(nameColor).Bold(true),
		coins:   r.NewStyle().Foreground(coinColor),
		warn:    r.NewStyle().Foreground(warnColor),
		muted:   r.NewStyle().Foreground(mutedColor),
		roles:   make(map[domain.Role]lipgloss.Style, len(roleColors)),
	}
	for role, c := range roleColors {
		s.roles[role] = r.NewStyle().Foreground(c).Bold(true)
	}
	return s
}

func (s styles) role(r domain.Role) string {
	if st, ok := s.roles[r]; ok {
		return st.Render(r.String())
	}
	return s.muted.Render(r.String())
}
