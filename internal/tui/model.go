package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"
	"github.com/deepakvishwakarma24/codeforces-explorer/internal/explore"
	"github.com/deepakvishwakarma24/codeforces-explorer/internal/rank"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205")).
	MarginTop(1).
	MarginBottom(1)

var tabStyle = lipgloss.NewStyle().
	Padding(0, 2).
	Foreground(lipgloss.Color("240"))

var activeTabStyle = lipgloss.NewStyle().
	Padding(0, 2).
	Bold(true).
	Foreground(lipgloss.Color("205")).
	Underline(true)

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

const (
	tabProfile = iota
	tabContests
	tabProblems
	tabCompare
	tabCount
)

var tabNames = []string{"Profile", "Contests", "Problems", "Compare"}

type profileData struct {
	user    codeforces.User
	band    rank.Band
	solved  int
	points  []explore.RatingPoint
	summary explore.SeriesSummary
	rated   bool
}

type compareData struct {
	first   explore.CombinedProfile
	second  explore.CombinedProfile
	outcome explore.Comparison
}

type model struct {
	client *codeforces.Client
	width  int
	height int
	tab    int

	input string

	profile    *profileData
	profileErr string
	// Bumped on every submit so answers to stale queries are dropped.
	profileGen     int
	loadingProfile bool

	contests    explore.ContestGroups
	contestsErr string

	problems     []codeforces.Problem
	problemsErr  string
	searchFilter string
	page         int

	compared       *compareData
	compareErr     string
	compareGen     int
	loadingCompare bool
}

func InitialModel(c *codeforces.Client) model {
	return model{client: c, page: 1}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(loadContests(m.client), loadProblems(m.client), tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case profileMsg:
		if msg.gen != m.profileGen {
			return m, nil
		}
		m.loadingProfile = false
		if msg.err != "" {
			m.profile = nil
			m.profileErr = msg.err
		} else {
			m.profile = &msg.data
			m.profileErr = ""
		}
	case contestsMsg:
		m.contests = msg.groups
		m.contestsErr = msg.err
	case problemsMsg:
		m.problems = msg.problems
		m.problemsErr = msg.err
	case compareMsg:
		if msg.gen != m.compareGen {
			return m, nil
		}
		m.loadingCompare = false
		if msg.err != "" {
			m.compared = nil
			m.compareErr = msg.err
		} else {
			m.compared = &msg.data
			m.compareErr = ""
		}
	case tickMsg:
		// Redraw so the contest countdowns stay current.
		return m, tickCmd()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		m.input = ""
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.input = ""
		return m, nil
	case "esc":
		if m.input != "" {
			m.input = ""
			return m, nil
		}
		return m, tea.Quit
	case "enter":
		return m.submit()
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case "left":
		if m.tab == tabProblems && m.page > 1 {
			m.page--
		}
		return m, nil
	case "right":
		if m.tab == tabProblems {
			filtered := explore.FilterProblems(m.problems, explore.Filter{Search: m.searchFilter})
			if m.page < explore.Paginate(filtered, m.page).Count {
				m.page++
			}
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	case tea.KeySpace:
		m.input += " "
	}
	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	switch m.tab {
	case tabProfile:
		handle := strings.TrimSpace(m.input)
		if handle == "" {
			return m, nil
		}
		m.input = ""
		m.profileGen++
		m.loadingProfile = true
		return m, loadProfile(m.client, handle, m.profileGen)
	case tabProblems:
		m.searchFilter = strings.TrimSpace(m.input)
		m.input = ""
		m.page = 1
		return m, nil
	case tabCompare:
		fields := strings.Fields(m.input)
		if len(fields) != 2 {
			m.compareErr = "enter two handles separated by a space"
			return m, nil
		}
		m.input = ""
		m.compareGen++
		m.loadingCompare = true
		return m, loadCompare(m.client, fields[0], fields[1], m.compareGen)
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🏆 Codeforces Explorer") + "\n")

	var tabs []string
	for i, name := range tabNames {
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	b.WriteString(strings.Join(tabs, "") + "\n\n")

	switch m.tab {
	case tabProfile:
		b.WriteString(m.viewProfile())
	case tabContests:
		b.WriteString(m.viewContests())
	case tabProblems:
		b.WriteString(m.viewProblems())
	case tabCompare:
		b.WriteString(m.viewCompare())
	}

	b.WriteString("\n\n" + dimStyle.Render("tab: switch view • enter: submit • esc: quit"))
	return b.String()
}

func (m model) viewProfile() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("Handle: ") + m.input + "▌\n\n")

	if m.loadingProfile {
		b.WriteString(dimStyle.Render("Loading..."))
		return b.String()
	}
	if m.profileErr != "" {
		b.WriteString(errStyle.Render(m.profileErr))
		return b.String()
	}
	if m.profile == nil {
		b.WriteString(dimStyle.Render("Type a handle and press enter"))
		return b.String()
	}

	p := m.profile
	rankStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.band.Color))
	b.WriteString(rankStyle.Render(p.user.Handle) + "  " + rankStyle.Render(p.band.Label) + "\n")
	if name := p.user.DisplayName(); name != p.user.Handle {
		b.WriteString(dimStyle.Render(name) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Rating: %d (max %d)\n", p.user.Rating, p.user.MaxRating))
	b.WriteString(fmt.Sprintf("Solved: %d problems\n", p.solved))
	b.WriteString(fmt.Sprintf("Contribution: %d\n", p.user.Contribution))

	if p.rated {
		b.WriteString("\n" + renderRatingSparkline(p.points, p.summary))
	} else {
		b.WriteString("\n" + dimStyle.Render("No rated contests yet"))
	}
	return b.String()
}

// renderRatingSparkline draws the rating history as a coarse text
// chart, one column per contest, capped to the last 40.
func renderRatingSparkline(points []explore.RatingPoint, summary explore.SeriesSummary) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Rating History") + "\n")
	b.WriteString(fmt.Sprintf("current %d • peak %d • low %d • %+d over %d contests\n",
		summary.CurrentRating, summary.MaxRating, summary.MinRating, summary.TotalChange, summary.Contests))

	const maxCols = 40
	if len(points) > maxCols {
		points = points[len(points)-maxCols:]
	}

	span := summary.MaxRating - summary.MinRating
	if span == 0 {
		span = 1
	}
	const rows = 8
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, len(points))
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	for j, p := range points {
		level := (p.NewRating - summary.MinRating) * (rows - 1) / span
		grid[rows-1-level][j] = '█'
	}
	for _, row := range grid {
		b.WriteString(string(row) + "\n")
	}

	last := points[len(points)-1]
	b.WriteString(dimStyle.Render(fmt.Sprintf("latest: %s (%+d)", last.ContestName, last.Delta)))
	return b.String()
}

func (m model) viewContests() string {
	if m.contestsErr != "" {
		return errStyle.Render(m.contestsErr)
	}

	var b strings.Builder
	now := time.Now()

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Upcoming") + "\n")
	if len(m.contests.Upcoming) == 0 {
		b.WriteString(dimStyle.Render("none scheduled") + "\n")
	}
	for _, c := range m.contests.Upcoming {
		countdown := promptStyle.Render(explore.TimeUntil(c.StartTimeSeconds, now))
		b.WriteString(fmt.Sprintf("%-58s %s  %s\n",
			truncate(c.Name, 56), countdown, explore.FormatContestDuration(c.DurationSeconds)))
	}

	b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("Recent") + "\n")
	for _, c := range m.contests.Past {
		b.WriteString(fmt.Sprintf("%-58s %s  %s\n",
			truncate(c.Name, 56), explore.FormatStartTime(c.StartTimeSeconds),
			explore.FormatContestDuration(c.DurationSeconds)))
	}
	return b.String()
}

func (m model) viewProblems() string {
	if m.problemsErr != "" {
		return errStyle.Render(m.problemsErr)
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render("Search: ") + m.input + "▌")
	if m.searchFilter != "" {
		b.WriteString(dimStyle.Render("  (filtering by \"" + m.searchFilter + "\")"))
	}
	b.WriteString("\n\n")

	page := explore.Paginate(explore.FilterProblems(m.problems, explore.Filter{Search: m.searchFilter}), m.page)
	if page.Total == 0 {
		b.WriteString(dimStyle.Render("No problems match"))
		return b.String()
	}

	for _, p := range page.Problems {
		rating := "   —"
		if p.Rating > 0 {
			rating = fmt.Sprintf("%4d", p.Rating)
		}
		b.WriteString(fmt.Sprintf("%-8s %-48s %s  %s\n",
			p.Key(), truncate(p.Name, 46), rating, dimStyle.Render(strings.Join(p.Tags, ", "))))
	}

	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("page %d of %d (%d problems) • ←/→ to page",
		page.Number, page.Count, page.Total)))
	return b.String()
}

func (m model) viewCompare() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("Handles (two, space separated): ") + m.input + "▌\n\n")

	if m.loadingCompare {
		b.WriteString(dimStyle.Render("Loading..."))
		return b.String()
	}
	if m.compareErr != "" {
		b.WriteString(errStyle.Render(m.compareErr))
		return b.String()
	}
	if m.compared == nil {
		b.WriteString(dimStyle.Render("Example: tourist Petr"))
		return b.String()
	}

	c := m.compared
	winStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)

	render := func(label string, a, b int, outcome explore.Outcome) string {
		left := fmt.Sprintf("%8d", a)
		right := fmt.Sprintf("%-8d", b)
		switch outcome {
		case explore.OutcomeFirst:
			left = winStyle.Render(left)
		case explore.OutcomeSecond:
			right = winStyle.Render(right)
		}
		return fmt.Sprintf("%s %-14s %s", left, label, right)
	}

	b.WriteString(fmt.Sprintf("%8s vs %s\n\n", c.first.Handle, c.second.Handle))
	b.WriteString(render("rating", c.first.Rating, c.second.Rating, c.outcome.Rating) + "\n")
	b.WriteString(render("max rating", c.first.MaxRating, c.second.MaxRating, c.outcome.MaxRating) + "\n")
	b.WriteString(render("solved", c.first.Solved, c.second.Solved, c.outcome.Solved) + "\n")
	b.WriteString(render("contribution", c.first.Contribution, c.second.Contribution, c.outcome.Contribution) + "\n\n")

	switch c.outcome.Overall {
	case explore.OutcomeFirst:
		b.WriteString(winStyle.Render(c.first.Handle + " leads on rating"))
	case explore.OutcomeSecond:
		b.WriteString(winStyle.Render(c.second.Handle + " leads on rating"))
	default:
		b.WriteString(dimStyle.Render("Dead even on rating"))
	}
	return b.String()
}

// truncate shortens display strings to n cells without cutting a
// rune in half.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

type profileMsg struct {
	gen  int
	data profileData
	err  string
}

func loadProfile(c *codeforces.Client, handle string, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		user, err := c.GetUserInfo(ctx, handle)
		if err != nil {
			return profileMsg{gen: gen, err: err.Error()}
		}
		solved := explore.CountSolved(c.GetUserSubmissions(ctx, handle))
		points := explore.BuildRatingSeries(c.GetRatingHistory(ctx, handle))
		summary, rated := explore.SummarizeSeries(points)
		return profileMsg{gen: gen, data: profileData{
			user:    *user,
			band:    rank.Classify(user.Rating),
			solved:  solved,
			points:  points,
			summary: summary,
			rated:   rated,
		}}
	}
}

type contestsMsg struct {
	groups explore.ContestGroups
	err    string
}

func loadContests(c *codeforces.Client) tea.Cmd {
	return func() tea.Msg {
		contests, err := c.GetContestList(context.Background())
		if err != nil {
			return contestsMsg{err: err.Error()}
		}
		return contestsMsg{groups: explore.PartitionContests(contests)}
	}
}

type problemsMsg struct {
	problems []codeforces.Problem
	err      string
}

func loadProblems(c *codeforces.Client) tea.Cmd {
	return func() tea.Msg {
		problems, err := c.GetProblemSet(context.Background())
		if err != nil {
			return problemsMsg{err: err.Error()}
		}
		return problemsMsg{problems: problems}
	}
}

type compareMsg struct {
	gen  int
	data compareData
	err  string
}

func loadCompare(c *codeforces.Client, a, b string, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		fetch := func(handle string) (explore.CombinedProfile, error) {
			user, err := c.GetUserInfo(ctx, handle)
			if err != nil {
				return explore.CombinedProfile{}, err
			}
			solved := explore.CountSolved(c.GetUserSubmissions(ctx, handle))
			return explore.CombinedProfile{User: *user, Solved: solved}, nil
		}

		type result struct {
			profile explore.CombinedProfile
			err     error
		}
		firstCh := make(chan result, 1)
		go func() {
			p, err := fetch(a)
			firstCh <- result{p, err}
		}()
		second, secondErr := fetch(b)
		first := <-firstCh
		if first.err != nil {
			return compareMsg{gen: gen, err: first.err.Error()}
		}
		if secondErr != nil {
			return compareMsg{gen: gen, err: secondErr.Error()}
		}
		return compareMsg{gen: gen, data: compareData{
			first:   first.profile,
			second:  second,
			outcome: explore.Compare(first.profile, second),
		}}
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second*30, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
