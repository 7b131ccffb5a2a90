// Package console renders the dashboard as plain text lines. Card panels hydrate concurrently, so
// every write goes through one mutex and every line is written whole.
package console

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"weather-watchlist/internal/application/view"
	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/pkg/msg"
)

// Console implements every widget of view.Page on a writer. Confirmations are read from in.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	// inMu serializes prompts; mu is not held while waiting for an answer.
	inMu sync.Mutex
	in   *bufio.Reader

	cards    map[int64]*card
	forecast *view.ForecastModel
	input    string
	busy     bool
}

func New(out io.Writer, in io.Reader) *Console {
	if in == nil {
		in = strings.NewReader("")
	}
	return &Console{
		out:   out,
		in:    bufio.NewReader(in),
		cards: make(map[int64]*card),
	}
}

// Page wires the console into every slot of a dashboard page.
func (c *Console) Page() view.Page {
	return view.Page{
		Toaster:     c,
		Grid:        c,
		Overlay:     c,
		Suggestions: c,
		Form:        form{c},
		SyncButton:  syncButton{c},
		Confirmer:   c,
	}
}

func (c *Console) println(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.printlnLocked(format, args...)
}

func (c *Console) printlnLocked(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) Toast(kind view.ToastKind, message string) {
	c.println("[%s] %s", strings.ToUpper(string(kind)), message)
}

func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.cards)
	c.printlnLocked("----")
}

func (c *Console) ShowEmpty(message string) {
	c.println("%s", message)
}

func (c *Console) AddCard(model view.CardModel) view.Card {
	c.mu.Lock()
	defer c.mu.Unlock()

	cd := &card{console: c, model: model, favorite: model.Favorite}
	c.cards[model.ID] = cd
	c.printlnLocked("%s", cd.header())
	return cd
}

func (c *Console) RemoveCard(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cd, ok := c.cards[id]; ok {
		delete(c.cards, id)
		c.printlnLocked("- %s", cd.model.Title)
	}
}

// Render lays the forecast out as a table; it is printed by Open.
func (c *Console) Render(forecast view.ForecastModel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forecast = &forecast
}

func (c *Console) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.forecast == nil {
		return
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "%s, %s\n", c.forecast.Title, c.forecast.Country)
	for _, row := range c.forecast.Rows {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d°C\t%s\n", row.Weekday, row.Time, row.Icon, row.Temp, row.Description)
	}
	_ = tw.Flush()
	_, _ = c.out.Write(buf.Bytes())
}

func (c *Console) Show(suggestions []entity.Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range suggestions {
		if s.State != "" {
			c.printlnLocked("  > %s, %s, %s", s.Name, s.State, s.Country)
			continue
		}
		c.printlnLocked("  > %s, %s", s.Name, s.Country)
	}
}

func (c *Console) Hide() {}

// SetValue fills the add-city input.
func (c *Console) SetValue(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = value
}

// Value returns the add-city input.
func (c *Console) Value() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// Busy reports whether the add-city form is waiting for the server.
func (c *Console) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Confirm prints prompt and reads one line; only y or yes confirms.
func (c *Console) Confirm(prompt string) bool {
	c.inMu.Lock()
	defer c.inMu.Unlock()

	c.mu.Lock()
	_, _ = fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	c.mu.Unlock()

	line, _ := c.in.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// form is the add-city input; its Clear empties the input, not the grid.
type form struct{ c *Console }

func (f form) Value() string { return f.c.Value() }

func (f form) Clear() {
	f.c.SetValue("")
}

func (f form) SetBusy(busy bool) {
	f.c.mu.Lock()
	defer f.c.mu.Unlock()
	f.c.busy = busy
}

type syncButton struct{ c *Console }

func (b syncButton) SetBusy(busy bool) {
	if busy {
		b.c.println("%s", msg.GetMessage("dashboard.syncing"))
	}
}

type card struct {
	console  *Console
	model    view.CardModel
	favorite bool
}

func (cd *card) header() string {
	star := " "
	if cd.favorite {
		star = "*"
	}
	line := fmt.Sprintf("%s #%d %s, %s", star, cd.model.ID, cd.model.Title, cd.model.Country)
	if cd.model.LastSynced != nil {
		line += " (synced " + cd.model.LastSynced.Format("2006-01-02 15:04") + ")"
	}
	return line
}

func (cd *card) Panel() view.Panel { return cd }

func (cd *card) Favorite() bool {
	cd.console.mu.Lock()
	defer cd.console.mu.Unlock()
	return cd.favorite
}

func (cd *card) SetFavorite(favorite bool) {
	cd.console.mu.Lock()
	defer cd.console.mu.Unlock()
	cd.favorite = favorite
	cd.console.printlnLocked("%s", cd.header())
}

func (cd *card) ShowSyncing() {
	cd.console.println("  #%d %s", cd.model.ID, msg.GetMessage("dashboard.syncing"))
}

func (cd *card) ShowUnavailable() {
	cd.console.println("  #%d %s", cd.model.ID, msg.GetMessage("dashboard.unavailable"))
}

func (cd *card) ShowWeather(w view.WeatherModel) {
	cd.console.println("  #%d %d°C %s, humidity %d%%, wind %.1f m/s", cd.model.ID, w.Temp, w.Description, w.Humidity, w.WindSpeed)
}
