package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/model"
	"github.com/complymate/complymate/internal/session"
)

type View string

const (
	ViewLogin         View = "Login"
	ViewDashboard     View = "Dashboard"
	ViewTasks         View = "Tasks"
	ViewCalendar      View = "Calendar"
	ViewNotifications View = "Notifications"
	ViewReports       View = "Reports"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard     string
	Tasks         string
	Calendar      string
	Notifications string
	Reports       string
	Help          string
	Quit          string
}

type LoginState struct {
	Cursor       int
	PasswordMode bool
	ErrorText    string
}

type TasksState struct {
	Cursor int
	Filter TaskFilter
}

type TaskFilter struct {
	Department string
	Status     string
}

type CalendarState struct {
	Year        int
	Month       time.Month
	SelectedDay int
}

type NotificationsState struct {
	Cursor int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Toast is a transient in-app banner shown under the panes, most recent
// entry wins.
type Toast struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	CurrentView    View
	Session        *session.Session
	Clock          func() time.Time
	Login          LoginState
	Tasks          TasksState
	Calendar       CalendarState
	Notifications  NotificationsState
	Palette        CommandPaletteState
	Form           *TaskFormState
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	ExportDir      string
	UpcomingLimit  int
	Quitting       bool
	LastError      error
	Toasts         []Toast
	afterLoginView View
	// Bubble components used for rich TUI controls
	tasksTable    table.Model
	notifList     list.Model
	passwordInput textinput.Model
	commandInput  textinput.Model
	rateProgress  progress.Model
	helpModel     help.Model
	summaryView   viewport.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type TaskSavedMsg struct {
	Task model.Task
	Edit bool
}

type TaskFormCancelMsg struct{}

func NewModel(sess *session.Session) Model {
	return NewModelWithConfig(sess, DefaultRuntimeConfig(), time.Now)
}

func NewModelWithConfig(sess *session.Session, cfg RuntimeConfig, clock func() time.Time) Model {
	if clock == nil {
		clock = time.Now
	}
	today := dates.Day(clock().UTC())
	m := Model{
		CurrentView: ViewLogin,
		Session:     sess,
		Clock:       clock,
		Calendar: CalendarState{
			Year:        today.Year(),
			Month:       today.Month(),
			SelectedDay: today.Day(),
		},
		Keys: GlobalKeyMap{
			Dashboard:     "1",
			Tasks:         "2",
			Calendar:      "3",
			Notifications: "4",
			Reports:       "5",
			Help:          "?",
			Quit:          "q",
		},
		ExportDir:     cfg.ExportDir,
		UpcomingLimit: cfg.UpcomingLimit,
	}
	if v := View(cfg.InitialView); isKnownView(v) && v != ViewLogin {
		// Honored after login; the session still gates everything on
		// an authenticated user.
		m.afterLoginView = v
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func isKnownView(v View) bool {
	switch v {
	case ViewLogin, ViewDashboard, ViewTasks, ViewCalendar, ViewNotifications, ViewReports:
		return true
	default:
		return false
	}
}
