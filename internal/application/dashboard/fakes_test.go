package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"weather-watchlist/internal/application/view"
	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/gateway/api"
	"weather-watchlist/internal/domain/model"
	pkghttp "weather-watchlist/pkg/http"
)

// backend is an in-memory watchlist API that counts every call.
type backend struct {
	mu           sync.Mutex
	locations    []entity.Location
	current      map[int64]*entity.WeatherSnapshot
	forecast     map[int64][]entity.ForecastEntry
	failWeather  map[int64]bool
	failSync     map[int64]bool
	failList     bool
	failFavorite bool
	failDelete   bool
	addNotFound  bool
	addMalformed bool
	// favoriteGate holds PATCH requests open until it is closed.
	favoriteGate    chan struct{}
	favoriteStarted chan struct{}
	suggestions     map[string][]entity.Suggestion
	searchGates     map[string]chan struct{}
	searchStarted   chan string
	calls           map[string]int
	nextID          int64
}

func newBackend(locations ...entity.Location) *backend {
	return &backend{
		locations:       locations,
		current:         map[int64]*entity.WeatherSnapshot{},
		forecast:        map[int64][]entity.ForecastEntry{},
		failWeather:     map[int64]bool{},
		failSync:        map[int64]bool{},
		suggestions:     map[string][]entity.Suggestion{},
		searchGates:     map[string]chan struct{}{},
		searchStarted:   make(chan string, 16),
		favoriteStarted: make(chan struct{}, 4),
		calls:           map[string]int{},
		nextID:          100,
	}
}

func (b *backend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

func (b *backend) totalWeatherCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := 0
	for _, location := range b.locations {
		total += b.calls[fmt.Sprintf("GET /api/weather/%d", location.ID)]
	}
	return total
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id
}

func (b *backend) handler() http.Handler {
	mux := http.NewServeMux()
	record := func(r *http.Request) {
		b.mu.Lock()
		b.calls[r.Method+" "+r.URL.Path]++
		b.mu.Unlock()
	}

	mux.HandleFunc("GET /api/locations", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failList {
			writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: "boom"})
			return
		}
		writeJSON(w, http.StatusOK, b.locations)
	})

	mux.HandleFunc("POST /api/locations", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.addNotFound {
			writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "City not found or API error"})
			return
		}
		if b.addMalformed {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":`))
			return
		}
		b.nextID++
		location := entity.Location{ID: b.nextID, Name: r.URL.Query().Get("city_name"), Country: "GB"}
		b.locations = append(b.locations, location)
		writeJSON(w, http.StatusOK, location)
	})

	mux.HandleFunc("PATCH /api/locations/{id}", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		b.mu.Lock()
		gate := b.favoriteGate
		b.mu.Unlock()
		if gate != nil {
			b.favoriteStarted <- struct{}{}
			<-gate
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failFavorite {
			writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: "boom"})
			return
		}
		favorite, _ := strconv.ParseBool(r.URL.Query().Get("is_favorite"))
		for i := range b.locations {
			if b.locations[i].ID == pathID(r) {
				b.locations[i].IsFavorite = favorite
				writeJSON(w, http.StatusOK, b.locations[i])
				return
			}
		}
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "Location not found"})
	})

	mux.HandleFunc("DELETE /api/locations/{id}", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failDelete {
			writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: "boom"})
			return
		}
		writeJSON(w, http.StatusOK, model.DeleteResponse{OK: true})
	})

	mux.HandleFunc("GET /api/weather/{id}", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		id := pathID(r)
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failWeather[id] {
			writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: "boom"})
			return
		}
		report := model.WeatherReport{Current: b.current[id], Forecast: b.forecast[id]}
		for _, location := range b.locations {
			if location.ID == id {
				report.Location = location
			}
		}
		writeJSON(w, http.StatusOK, report)
	})

	mux.HandleFunc("POST /api/sync/{id}", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failSync[pathID(r)] {
			writeJSON(w, http.StatusServiceUnavailable, model.ErrorResponse{Error: "Weather API unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, model.SyncResponse{Status: "success"})
	})

	mux.HandleFunc("GET /api/search", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		query := r.URL.Query().Get("q")
		b.mu.Lock()
		gate := b.searchGates[query]
		results := b.suggestions[query]
		b.mu.Unlock()

		b.searchStarted <- query
		if gate != nil {
			<-gate
		}
		if results == nil {
			results = []entity.Suggestion{}
		}
		writeJSON(w, http.StatusOK, results)
	})

	return mux
}

func (b *backend) gateway(t *testing.T) api.WatchlistGateway {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return api.NewWatchlistGateway(srv.URL, "/api", pkghttp.ClientOptions{})
}

type toast struct {
	kind    view.ToastKind
	message string
}

type panel struct {
	mu      sync.Mutex
	state   string
	weather view.WeatherModel
}

func (p *panel) ShowSyncing() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = "syncing"
}

func (p *panel) ShowUnavailable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = "unavailable"
}

func (p *panel) ShowWeather(weather view.WeatherModel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = "weather"
	p.weather = weather
}

func (p *panel) snapshot() (string, view.WeatherModel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.weather
}

type card struct {
	mu       sync.Mutex
	model    view.CardModel
	favorite bool
	panel    *panel
}

func (c *card) Panel() view.Panel { return c.panel }

func (c *card) Favorite() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.favorite
}

func (c *card) SetFavorite(favorite bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.favorite = favorite
}

type busy struct {
	mu     sync.Mutex
	states []bool
}

func (b *busy) SetBusy(state bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.states = append(b.states, state)
}

func (b *busy) history() []bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]bool(nil), b.states...)
}

type form struct {
	busy
	value   string
	cleared bool
}

func (f *form) Value() string { return f.value }

func (f *form) Clear() {
	f.value = ""
	f.cleared = true
}

// recorder is a view.Page that remembers everything rendered into it.
type recorder struct {
	mu          sync.Mutex
	toasts      []toast
	clears      int
	empty       []string
	cards       map[int64]*card
	order       []int64
	removed     []int64
	forecast    *view.ForecastModel
	overlayOpen bool
	shown       [][]entity.Suggestion
	hidden      int
	confirm     bool
	prompts     []string

	form       *form
	syncButton *busy
}

func newRecorder() *recorder {
	return &recorder{cards: map[int64]*card{}, confirm: true, form: &form{}, syncButton: &busy{}}
}

func (r *recorder) page() view.Page {
	return view.Page{
		Toaster:     r,
		Grid:        r,
		Overlay:     r,
		Suggestions: r,
		Form:        r.form,
		SyncButton:  r.syncButton,
		Confirmer:   r,
	}
}

func (r *recorder) Toast(kind view.ToastKind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, toast{kind: kind, message: message})
}

func (r *recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
	r.cards = map[int64]*card{}
	r.order = nil
	r.empty = nil
}

func (r *recorder) ShowEmpty(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.empty = append(r.empty, message)
}

func (r *recorder) AddCard(model view.CardModel) view.Card {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := &card{model: model, favorite: model.Favorite, panel: &panel{}}
	r.cards[model.ID] = c
	r.order = append(r.order, model.ID)
	return c
}

func (r *recorder) RemoveCard(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cards, id)
	r.removed = append(r.removed, id)
}

func (r *recorder) Render(forecast view.ForecastModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forecast = &forecast
}

func (r *recorder) Open() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overlayOpen = true
}

func (r *recorder) Show(suggestions []entity.Suggestion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, suggestions)
}

func (r *recorder) Hide() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hidden++
}

func (r *recorder) Confirm(prompt string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, prompt)
	return r.confirm
}

func (r *recorder) card(t *testing.T, id int64) *card {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cards[id]
	if !ok {
		t.Fatalf("no card rendered for location %d", id)
	}
	return c
}

func (r *recorder) cardCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cards)
}

func (r *recorder) toastList() []toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]toast(nil), r.toasts...)
}

func (r *recorder) lastShown() []entity.Suggestion {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.shown) == 0 {
		return nil
	}
	return r.shown[len(r.shown)-1]
}
