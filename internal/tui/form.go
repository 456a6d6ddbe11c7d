package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/noexpect9/course-schedule/internal/dateparse"
	"github.com/noexpect9/course-schedule/internal/editor"
	"github.com/noexpect9/course-schedule/internal/models"
)

// FormState binds the event modal form to a TimeRangeEditor. The huh fields
// hold string input; every accepted clock edit is applied to the editor
// immediately so its auto-correction rule runs mid-edit, not just on submit.
type FormState struct {
	ed   *editor.Editor
	form *huh.Form

	title string
	start string
	end   string
	color string
}

// newFormForDay opens the modal seeded for a new event on the given day.
func newFormForDay(day time.Time) *FormState {
	fs := &FormState{ed: editor.NewForDay(day)}
	fs.syncFromEditor()
	fs.buildForm()
	return fs
}

// newFormForEvent opens the modal seeded from an existing event.
func newFormForEvent(ev models.Event) *FormState {
	fs := &FormState{ed: editor.NewForEvent(ev)}
	fs.syncFromEditor()
	fs.buildForm()
	return fs
}

func (fs *FormState) syncFromEditor() {
	fs.title = fs.ed.Title()
	fs.start = fs.ed.StartDate().Format("15:04")
	fs.end = fs.ed.EndDate().Format("15:04")
	fs.color = string(fs.ed.Color())
}

func (fs *FormState) buildForm() {
	colorOptions := make([]huh.Option[string], 0, len(models.Palette))
	for _, c := range models.Palette {
		colorOptions = append(colorOptions, huh.NewOption(colorLabel(c), string(c)))
	}

	titleStr := "New Event"
	if fs.ed.Editing() {
		titleStr = "Edit Event"
	}

	fs.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(titleStr + "  " + fs.ed.StartDate().Format("Mon, Jan 2")),
			huh.NewInput().
				Title("Title").
				Value(&fs.title).
				Placeholder("Event title..."),
			huh.NewInput().
				Title("Start time").
				Value(&fs.start).
				Placeholder("HH:MM").
				Validate(fs.validateStart),
			huh.NewInput().
				Title("End time").
				Value(&fs.end).
				Placeholder("HH:MM").
				Validate(fs.validateEnd),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&fs.color),
		),
	).WithShowHelp(false)
}

// validateStart applies an accepted start-time edit to the editor. If the
// new start passes the end, the editor pulls the end up and the end field
// is refreshed to show it.
func (fs *FormState) validateStart(s string) error {
	h, min, err := dateparse.ParseClock(s)
	if err != nil {
		return err
	}
	fs.ed.SetStartTime(h, min)
	fs.end = fs.ed.EndDate().Format("15:04")
	return nil
}

func (fs *FormState) validateEnd(s string) error {
	h, min, err := dateparse.ParseClock(s)
	if err != nil {
		return err
	}
	fs.ed.SetEndTime(h, min)
	return nil
}

// Update feeds a message to the form.
func (fs *FormState) Update(msg tea.Msg) tea.Cmd {
	model, cmd := fs.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		fs.form = f
	}
	return cmd
}

// Completed reports whether the user submitted the form.
func (fs *FormState) Completed() bool {
	return fs.form.State == huh.StateCompleted
}

// Submit pushes the bound values into the editor and validates them. On
// rejection the editor state is preserved for Reopen.
func (fs *FormState) Submit() (models.EventPayload, error) {
	fs.ed.SetTitle(fs.title)
	fs.ed.SetColor(models.Color(fs.color))
	if h, min, err := dateparse.ParseClock(fs.start); err == nil {
		fs.ed.SetStartTime(h, min)
	}
	if h, min, err := dateparse.ParseClock(fs.end); err == nil {
		fs.ed.SetEndTime(h, min)
	}
	return fs.ed.Submit()
}

// Reopen rebuilds the form after a rejected submit, keeping the entered
// values so the user can fix them.
func (fs *FormState) Reopen() {
	fs.buildForm()
}

// Editing reports whether the modal targets an existing event.
func (fs *FormState) Editing() bool { return fs.ed.Editing() }

// EventID returns the id of the event being edited.
func (fs *FormState) EventID() int64 { return fs.ed.EventID() }

// View renders the form.
func (fs *FormState) View() string {
	return fs.form.View()
}

func colorLabel(c models.Color) string {
	switch c {
	case models.ColorBlue:
		return "Blue"
	case models.ColorGreen:
		return "Green"
	case models.ColorRed:
		return "Red"
	case models.ColorYellow:
		return "Yellow"
	case models.ColorPurple:
		return "Purple"
	case models.ColorPink:
		return "Pink"
	case models.ColorIndigo:
		return "Indigo"
	case models.ColorTeal:
		return "Teal"
	}
	return string(c)
}
