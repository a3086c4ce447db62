package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/scandash/analysis"
	"github.com/marcus/scandash/api"
	"github.com/marcus/scandash/auth"
	"github.com/marcus/scandash/config"
	"github.com/marcus/scandash/export"
	"github.com/marcus/scandash/history"
	"github.com/marcus/scandash/state"
	"github.com/marcus/scandash/tui/githubpane"
	"github.com/marcus/scandash/tui/guide"
	"github.com/marcus/scandash/tui/help"
	"github.com/marcus/scandash/tui/historypane"
	"github.com/marcus/scandash/tui/profilepane"
	"github.com/marcus/scandash/tui/reportview"
	"github.com/marcus/scandash/tui/results"
	"github.com/marcus/scandash/tui/settingspane"
	"github.com/marcus/scandash/tui/shared"
	"github.com/marcus/scandash/tui/upload"
	"github.com/marcus/scandash/tui/visualview"
)

type ActiveView int

const (
	DashboardView ActiveView = iota
	ReportView
	VisualView
)

const sidebarWidth = 18

type App struct {
	cfg        config.Config
	configPath string
	creds      auth.Credentials
	credStore  auth.Store

	session *state.Session
	handoff state.HandoffSlot

	client   *api.Client
	workflow *analysis.Workflow
	histDB   *history.DB

	activeView ActiveView
	showHelp   bool

	// analysisSeq fences async completions: each new run bumps it, and any
	// completion carrying an older value is dropped.
	analysisSeq int

	spin         spinner.Model
	feedback     *shared.Feedback
	loading      map[shared.LoaderOp]string
	archiveStale bool

	// archiveWatchStop cancels the stale-archive watcher of the previous
	// run; a new completion replaces it, a session reset closes it.
	archiveWatchStop chan struct{}

	// LoggedOut is read by the caller after the program exits.
	LoggedOut bool

	guidePane    guide.Model
	uploadPane   upload.Model
	resultsPane  results.Model
	reportView   reportview.Model
	visualView   visualview.Model
	historyPane  historypane.Model
	settingsPane settingspane.Model
	githubPane   githubpane.Model
	profilePane  profilepane.Model
	helpView     help.Model

	width  int
	height int
}

func NewApp(cfg config.Config, configPath string, creds auth.Credentials, credStore auth.Store, client *api.Client, histDB *history.DB) App {
	shared.InitStyles(cfg.ResolvedTheme())

	sp := spinner.New()
	sp.Spinner = shared.SpinnerType
	sp.Style = shared.SpinnerStyle

	return App{
		cfg:          cfg,
		configPath:   configPath,
		creds:        creds,
		credStore:    credStore,
		client:       client,
		workflow:     analysis.NewWorkflow(client),
		histDB:       histDB,
		session:      state.New(),
		activeView:   DashboardView,
		spin:         sp,
		loading:      make(map[shared.LoaderOp]string),
		guidePane:    guide.New(),
		uploadPane:   upload.New(),
		resultsPane:  results.New(),
		reportView:   reportview.New(),
		visualView:   visualview.New(),
		historyPane:  historypane.New(),
		settingsPane: settingspane.New(),
		githubPane:   githubpane.New(),
		profilePane:  profilepane.New(),
		helpView:     help.New(),
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layoutSizes()
		return a, nil

	case spinner.TickMsg:
		if len(a.loading) == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		a.uploadPane.SetSpinnerView(a.spin.View())
		return a, cmd

	case shared.AnalysisCompleteMsg:
		if msg.Seq != a.analysisSeq {
			return a, nil
		}
		delete(a.loading, shared.OpAnalysis)
		a.uploadPane.SetAnalyzing(false)
		if msg.Err != nil {
			a.uploadPane.SetError(msg.Err)
			return a, a.setFeedback(shared.FeedbackError, "Analysis failed", msg.Err.Error(), shared.OpAnalysis)
		}

		a.session.CompleteAnalysis(msg.Outcome)
		a.session.Active = state.SectionResults
		a.archiveStale = false
		a.resultsPane.SetResult(a.session.Result, a.session.ProjectName)

		r := msg.Outcome.Result
		health := analysis.EvaluateHealth(r.TotalIssues, r.CriticalIssues, r.Warnings)
		cmds := []tea.Cmd{
			recordRunCmd(a.histDB, history.Run{
				Project:        msg.Outcome.ProjectName,
				ArchivePath:    msg.Outcome.ArchivePath,
				TotalIssues:    r.TotalIssues,
				CriticalIssues: r.CriticalIssues,
				Warnings:       r.Warnings,
				Suggestions:    r.Suggestions,
				Health:         string(health),
				ReportPath:     msg.Outcome.Locator.Path,
			}),
			a.restartArchiveWatch(msg.Outcome.ArchivePath),
		}
		if msg.Outcome.ClassifyErr != nil {
			cmds = append(cmds, a.setFeedback(shared.FeedbackWarning,
				"Report unavailable, severity counts are estimated",
				msg.Outcome.ClassifyErr.Error(), shared.OpAnalysis))
		} else {
			cmds = append(cmds, a.setFeedback(shared.FeedbackSuccess,
				fmt.Sprintf("Analysis complete: %s, %d issues", msg.Outcome.ProjectName, r.TotalIssues),
				"", shared.OpAnalysis))
		}
		return a, tea.Batch(cmds...)

	case shared.ReportFetchedMsg:
		if msg.Seq != a.analysisSeq {
			return a, nil
		}
		delete(a.loading, shared.OpReport)
		if msg.Err != nil {
			return a, a.setFeedback(shared.FeedbackError, "Could not load report", msg.Err.Error(), shared.OpReport)
		}
		a.session.ReportContent = msg.Content
		return a, a.openReport()

	case shared.VisualReportMsg:
		if msg.Seq != a.analysisSeq {
			return a, nil
		}
		delete(a.loading, shared.OpVisual)
		if msg.Err != nil {
			return a, a.setFeedback(shared.FeedbackError, "Visual report failed", msg.Err.Error(), shared.OpVisual)
		}
		a.visualView.SetSize(a.width, a.height)
		a.visualView.SetPayload(msg.Payload, a.session.ProjectName)
		a.activeView = VisualView
		return a, nil

	case shared.HistoryLoadedMsg:
		a.historyPane.SetRuns(msg.Runs, msg.Err)
		return a, nil

	case shared.RunRecordedMsg:
		if msg.Err != nil {
			return a, a.setFeedback(shared.FeedbackWarning, "Could not record run in history", msg.Err.Error(), shared.OpHistory)
		}
		return a, nil

	case shared.SummaryCopiedMsg:
		delete(a.loading, shared.OpExport)
		if msg.Err != nil {
			return a, a.setFeedback(shared.FeedbackError, "Copy failed", msg.Err.Error(), shared.OpExport)
		}
		return a, a.setFeedback(shared.FeedbackSuccess, "Summary copied to clipboard", "", shared.OpExport)

	case shared.ArchiveChangedMsg:
		if a.session.Result != nil && msg.Path == a.session.ArchivePath {
			a.archiveStale = true
			a.resultsPane.SetStale(true)
		}
		return a, nil

	case shared.CloseReportMsg:
		a.activeView = DashboardView
		if msg.OpenReport {
			a.handoff.Set(msg.Handoff)
			if h, ok := a.handoff.Take(); ok {
				a.session.Restore(h)
				return a, a.openReport()
			}
			return a, nil
		}
		a.session.ReportOpen = false
		return a, nil

	case shared.CloseVisualMsg:
		a.activeView = DashboardView
		return a, nil

	case shared.ConfigSavedMsg:
		if msg.Err != nil {
			return a, a.setFeedback(shared.FeedbackWarning, "Could not save settings", msg.Err.Error(), "")
		}
		return a, a.setFeedback(shared.FeedbackSuccess, "Settings saved", "", "")

	case shared.DismissFeedbackMsg:
		if a.feedback != nil && a.feedback.Timestamp.Equal(msg.Timestamp) {
			a.feedback = nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Route everything else (mouse, viewport internals) to the active view.
	switch a.activeView {
	case ReportView:
		var cmd tea.Cmd
		a.reportView, cmd = a.reportView.Update(msg)
		return a, cmd
	case VisualView:
		var cmd tea.Cmd
		a.visualView, cmd = a.visualView.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Any key closes the help screen.
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch a.activeView {
	case ReportView:
		return a.handleReportKey(msg)
	case VisualView:
		return a.handleVisualKey(msg)
	}

	if a.session.ModalOpen() {
		return a.handleModalKey(msg)
	}

	// The upload prompt owns most printable keys while it has focus.
	if a.session.Active == state.SectionUpload {
		return a.handleUploadKey(msg)
	}

	return a.handleDashboardKey(msg)
}

func (a App) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if a.uploadPane.Analyzing() {
			return a, nil
		}
		return a.startAnalysis()
	case tea.KeyEscape:
		a.session.ShowGuide()
		return a, nil
	}

	if key.Matches(msg, shared.Keys.Help) {
		a.showHelp = true
		return a, nil
	}

	var cmd tea.Cmd
	a.uploadPane, cmd = a.uploadPane.Update(msg)
	return a, cmd
}

func (a App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, shared.Keys.Help):
		a.showHelp = true
		return a, nil

	case key.Matches(msg, shared.Keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, shared.Keys.Guide):
		a.session.ShowGuide()
		return a, nil

	case key.Matches(msg, shared.Keys.Upload):
		a.session.StartAnalysis()
		a.uploadPane.Focus()
		return a, nil

	case key.Matches(msg, shared.Keys.NewAnalysis):
		// Advance the fence so an in-flight fetch from the old run is
		// dropped instead of writing into the fresh session.
		a.analysisSeq++
		a.stopArchiveWatch()
		a.session.NewAnalysis()
		a.uploadPane.Reset()
		a.resultsPane.Clear()
		a.archiveStale = false
		return a, nil

	case key.Matches(msg, shared.Keys.ShowReport):
		return a.showReport()

	case key.Matches(msg, shared.Keys.VisualReport):
		return a.startVisualReport()

	case key.Matches(msg, shared.Keys.Export):
		if a.session.Result == nil {
			return a, a.setFeedback(shared.FeedbackInfo, "Nothing to export yet", "", shared.OpExport)
		}
		a.loading[shared.OpExport] = "Copying summary..."
		return a, tea.Batch(exportCmd(a.session.ProjectName, *a.session.Result), a.spin.Tick)

	case key.Matches(msg, shared.Keys.Settings):
		a.settingsPane.SetValues(a.cfg.ResolvedBaseURL(), a.cfg.ResolvedDarkMode())
		a.session.OpenModal(state.SectionSettings)
		return a, nil

	case key.Matches(msg, shared.Keys.History):
		a.historyPane.SetLoading()
		a.session.OpenModal(state.SectionHistory)
		return a, loadHistoryCmd(a.histDB, a.cfg.ResolvedHistoryLimit())

	case key.Matches(msg, shared.Keys.GitHub):
		a.githubPane.SetBaseURL(a.cfg.ResolvedBaseURL())
		a.session.OpenModal(state.SectionGitHub)
		return a, nil

	case key.Matches(msg, shared.Keys.Profile):
		a.profilePane.SetIdentity(a.creds.Username, a.creds.UserIDOrAnonymous())
		a.session.OpenModal(state.SectionProfile)
		return a, nil
	}

	return a, nil
}

func (a App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.session.SettingsOpen:
		switch a.settingsPane.HandleKey(msg) {
		case settingspane.ActionClose:
			a.session.CloseModal()
		case settingspane.ActionToggleDark:
			dark := !a.cfg.ResolvedDarkMode()
			a.cfg.Display.DarkMode = &dark
			shared.InitStyles(a.cfg.ResolvedTheme())
			a.spin.Spinner = shared.SpinnerType
			a.spin.Style = shared.SpinnerStyle
			a.settingsPane.SetValues(a.cfg.ResolvedBaseURL(), dark)
			return a, saveConfigCmd(a.configPath, a.cfg)
		}
		return a, nil

	case a.session.HistoryOpen:
		if a.historyPane.HandleKey(msg) == historypane.ActionClose {
			a.session.CloseModal()
		}
		return a, nil

	case a.session.GitHubOpen:
		if a.githubPane.HandleKey(msg) == githubpane.ActionClose {
			a.session.CloseModal()
		}
		return a, nil

	case a.session.ProfileOpen:
		switch a.profilePane.HandleKey(msg) {
		case profilepane.ActionClose:
			a.session.CloseModal()
		case profilepane.ActionLogout:
			if err := a.credStore.Delete(); err != nil {
				return a, a.setFeedback(shared.FeedbackError, "Logout failed", err.Error(), "")
			}
			a.LoggedOut = true
			return a, tea.Quit
		}
		return a, nil
	}

	return a, nil
}

func (a App) handleReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.reportView.HandleKey(msg) {
	case reportview.ActionClose:
		return a, func() tea.Msg { return shared.CloseReportMsg{} }
	case reportview.ActionReturnToDashboard:
		h := a.reportView.Handoff()
		return a, func() tea.Msg { return shared.CloseReportMsg{OpenReport: true, Handoff: h} }
	}

	var cmd tea.Cmd
	a.reportView, cmd = a.reportView.Update(msg)
	return a, cmd
}

func (a App) handleVisualKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return a, func() tea.Msg { return shared.CloseVisualMsg{} }
	}

	var cmd tea.Cmd
	a.visualView, cmd = a.visualView.Update(msg)
	return a, cmd
}

// startAnalysis validates the archive path and launches the upload workflow.
func (a App) startAnalysis() (tea.Model, tea.Cmd) {
	path := a.uploadPane.Value()
	if path == "" {
		a.uploadPane.SetError(fmt.Errorf("enter the path to a project archive"))
		return a, nil
	}
	if _, err := os.Stat(path); err != nil {
		a.uploadPane.SetError(fmt.Errorf("cannot read %s: %w", path, err))
		return a, nil
	}

	a.analysisSeq++
	seq := a.analysisSeq
	a.uploadPane.SetError(nil)
	a.uploadPane.SetAnalyzing(true)
	a.loading[shared.OpAnalysis] = "Analyzing..."
	return a, tea.Batch(analyzeCmd(a.workflow, seq, path), a.spin.Tick)
}

// showReport opens the detailed report, fetching the body first if the
// session does not hold it yet.
func (a App) showReport() (tea.Model, tea.Cmd) {
	if a.session.Result == nil {
		return a, a.setFeedback(shared.FeedbackInfo, "Run an analysis first", "", shared.OpReport)
	}
	if a.session.ReportContent != "" {
		return a, a.openReport()
	}
	if a.session.Locator.Empty() {
		return a, a.setFeedback(shared.FeedbackInfo, "No detailed report for this run", "", shared.OpReport)
	}
	a.loading[shared.OpReport] = "Loading report..."
	return a, tea.Batch(fetchReportCmd(a.client, a.analysisSeq, a.session.Locator.Path), a.spin.Tick)
}

// openReport switches to the full-screen viewer over the session's report.
func (a *App) openReport() tea.Cmd {
	a.session.ReportOpen = true
	a.reportView.SetSize(a.width, a.height)
	a.reportView.SetReport(a.session.ReportContent, a.session.ProjectName, a.session.Locator.ProjectDir)
	a.activeView = ReportView
	return nil
}

func (a App) startVisualReport() (tea.Model, tea.Cmd) {
	if a.session.ArchivePath == "" {
		return a, a.setFeedback(shared.FeedbackInfo, "Run an analysis first", "", shared.OpVisual)
	}
	a.loading[shared.OpVisual] = "Generating visual report..."
	return a, tea.Batch(visualCmd(a.client, a.analysisSeq, a.session.ArchivePath), a.spin.Tick)
}

// restartArchiveWatch cancels the previous run's watcher and starts one for
// the new archive.
func (a *App) restartArchiveWatch(path string) tea.Cmd {
	a.stopArchiveWatch()
	a.archiveWatchStop = make(chan struct{})
	return upload.WatchArchive(path, a.archiveWatchStop)
}

func (a *App) stopArchiveWatch() {
	if a.archiveWatchStop != nil {
		close(a.archiveWatchStop)
		a.archiveWatchStop = nil
	}
}

// setFeedback replaces the current feedback and schedules its dismissal.
func (a *App) setFeedback(level shared.FeedbackLevel, message, detail string, op shared.LoaderOp) tea.Cmd {
	fb := shared.Feedback{
		Level:     level,
		Message:   message,
		Detail:    detail,
		Timestamp: time.Now(),
		Op:        op,
	}
	a.feedback = &fb
	ttl := shared.FeedbackTTL(level)
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return shared.DismissFeedbackMsg{Timestamp: fb.Timestamp}
	})
}

func (a App) View() string {
	if a.showHelp {
		return a.helpView.View()
	}

	switch a.activeView {
	case ReportView:
		return a.reportView.View()
	case VisualView:
		return a.visualView.View()
	}

	contentH := a.height - 1
	if contentH < 1 {
		contentH = 1
	}

	sidebar := lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(contentH).
		MaxHeight(contentH).
		Render(a.renderSidebar())

	var content string
	if a.session.ResultsVisible() {
		content = a.resultsPane.View()
	} else {
		switch a.session.Active {
		case state.SectionUpload:
			content = a.uploadPane.View()
		default:
			content = a.guidePane.View()
		}
	}
	content = lipgloss.NewStyle().
		Width(a.width - sidebarWidth).
		Height(contentH).
		MaxHeight(contentH).
		Render(content)

	view := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	view += a.renderStatusBar()

	switch {
	case a.session.SettingsOpen:
		view = a.settingsPane.ViewOverlay(view, a.width, a.height)
	case a.session.HistoryOpen:
		view = a.historyPane.ViewOverlay(view, a.width, a.height)
	case a.session.GitHubOpen:
		view = a.githubPane.ViewOverlay(view, a.width, a.height)
	case a.session.ProfileOpen:
		view = a.profilePane.ViewOverlay(view, a.width, a.height)
	}

	return view
}

type sidebarItem struct {
	label   string
	section state.Section
}

var sidebarItems = []sidebarItem{
	{"Guide", state.SectionGuide},
	{"Analyze", state.SectionUpload},
	{"Results", state.SectionResults},
	{"History", state.SectionHistory},
	{"Settings", state.SectionSettings},
	{"GitHub", state.SectionGitHub},
	{"Profile", state.SectionProfile},
}

func (a App) renderSidebar() string {
	var b strings.Builder

	b.WriteString(" " + shared.SidebarTitleStyle.Render("ScanDash"))
	b.WriteString("\n\n")

	for _, item := range sidebarItems {
		if item.section == a.session.Active {
			b.WriteString(" " + shared.SidebarActiveStyle.Render("▸ "+item.label))
		} else {
			b.WriteString(" " + shared.SidebarItemStyle.Render("  "+item.label))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (a App) renderStatusBar() string {
	parts := []string{"scandash"}
	if a.session.ProjectName != "" {
		parts = append(parts, a.session.ProjectName)
	}
	if a.archiveStale {
		parts = append(parts, shared.StaleBadgeStyle.Render("stale"))
	}
	for _, label := range a.loading {
		parts = append(parts, a.spin.View()+" "+label)
	}

	status := strings.Join(parts, " │ ")
	if a.feedback != nil {
		status += " │ " + shared.FeedbackStyle(a.feedback.Level).Render(a.feedback.Message)
	}
	status += " │ ? for help"

	return "\n" + shared.StatusBarStyle.Width(a.width).Render(status)
}

func (a *App) layoutSizes() {
	contentH := a.height - 1
	if contentH < 3 {
		contentH = 3
	}
	contentW := a.width - sidebarWidth
	if contentW < 20 {
		contentW = 20
	}

	a.guidePane.SetSize(contentW, contentH)
	a.uploadPane.SetSize(contentW, contentH)
	a.resultsPane.SetSize(contentW, contentH)
	a.reportView.SetSize(a.width, a.height)
	a.visualView.SetSize(a.width, a.height)
	a.historyPane.SetSize(a.width, a.height)
	a.settingsPane.SetSize(a.width, a.height)
	a.githubPane.SetSize(a.width, a.height)
	a.profilePane.SetSize(a.width, a.height)
	a.helpView.SetSize(a.width, a.height)
}

// --- Commands ---

func analyzeCmd(w *analysis.Workflow, seq int, archivePath string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := w.Analyze(context.Background(), archivePath)
		return shared.AnalysisCompleteMsg{Seq: seq, Outcome: outcome, Err: err}
	}
}

func fetchReportCmd(c *api.Client, seq int, reportPath string) tea.Cmd {
	return func() tea.Msg {
		content, err := c.FetchReport(context.Background(), reportPath)
		return shared.ReportFetchedMsg{Seq: seq, Content: content, Err: err}
	}
}

func visualCmd(c *api.Client, seq int, archivePath string) tea.Cmd {
	return func() tea.Msg {
		payload, err := c.VisualReport(context.Background(), archivePath)
		return shared.VisualReportMsg{Seq: seq, Payload: payload, Err: err}
	}
}

func loadHistoryCmd(db *history.DB, limit int) tea.Cmd {
	return func() tea.Msg {
		if db == nil {
			return shared.HistoryLoadedMsg{Err: fmt.Errorf("history database unavailable")}
		}
		runs, err := db.Recent(limit)
		return shared.HistoryLoadedMsg{Runs: runs, Err: err}
	}
}

func recordRunCmd(db *history.DB, run history.Run) tea.Cmd {
	return func() tea.Msg {
		if db == nil {
			return shared.RunRecordedMsg{}
		}
		return shared.RunRecordedMsg{Err: db.Record(run)}
	}
}

func exportCmd(projectName string, r analysis.Result) tea.Cmd {
	return func() tea.Msg {
		summary := export.BuildRunSummary(projectName, r)
		return shared.SummaryCopiedMsg{Err: export.CopyToClipboard(summary)}
	}
}

func saveConfigCmd(path string, cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return shared.ConfigSavedMsg{Err: config.Save(path, cfg)}
	}
}
