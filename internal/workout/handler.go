package workout

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/sorcerer/internal/middleware"
	"github.com/2beens/sorcerer/internal/program"
	"github.com/2beens/sorcerer/internal/telemetry/metrics"
	"github.com/2beens/sorcerer/internal/telemetry/tracing"
	"github.com/2beens/sorcerer/internal/tracker"
	"github.com/2beens/sorcerer/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=workout_test

type workoutTracker interface {
	ToggleWithProgress(id string) (tracker.Toggled, error)
	SelectDay(day program.Day) error
	SetView(v tracker.View) error
	ToggleView() tracker.View
	Reset()
	Snapshot() tracker.Snapshot
}

const (
	cacheKeySchedule = "schedule"
	cacheKeyRules    = "rules"
	// static program data never changes while the process runs
	staticCacheExpireSeconds = 0
	// freecache refuses entries larger than 1/1024 of its size
	staticCacheSizeBytes = 50 * 1024 * 1024
)

type ScheduleResponse struct {
	Days     []program.Day                       `json:"days"`
	Morning  []program.Exercise                  `json:"morning"`
	Sessions map[program.Day]program.DaySchedule `json:"sessions"`
}

type RulesResponse struct {
	Meta     program.Meta           `json:"meta"`
	Warmups  program.Warmups        `json:"warmups"`
	Recovery []string               `json:"recovery"`
	Panel    []program.RulesSection `json:"panel"`
}

type ToggleResponse struct {
	ID        string           `json:"id"`
	Completed bool             `json:"completed"`
	Progress  tracker.Progress `json:"progress"`
}

type Handler struct {
	tracker        workoutTracker
	pages          *Pages
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewHandler(tr workoutTracker, pages *Pages, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		tracker:        tr,
		pages:          pages,
		cache:          freecache.NewCache(staticCacheSizeBytes),
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	toggleAllowedPerMin int,
) {
	mainRouter.HandleFunc("/", handler.HandlePage).Methods("GET").Name("page")
	mainRouter.HandleFunc("/rules", handler.HandleRules).Methods("GET").Name("rules")
	mainRouter.HandleFunc("/workout", handler.HandleWorkout).Methods("GET").Name("workout")
	mainRouter.HandleFunc("/view/toggle", handler.HandleToggleView).Methods("POST", "OPTIONS").Name("toggle-view")
	mainRouter.HandleFunc("/day/{day}", handler.HandleSelectDay).Methods("POST", "OPTIONS").Name("select-day")
	mainRouter.HandleFunc("/reset", handler.HandleReset).Methods("POST", "OPTIONS").Name("reset")
	mainRouter.HandleFunc("/exercises/{id}/form", handler.HandleFormGuide).Methods("GET").Name("form-guide")

	toggleRouter := mainRouter.Methods("POST", "OPTIONS").PathPrefix("/exercises").Subrouter()
	toggleRouter.HandleFunc("/{id}/toggle", handler.HandleToggle).Name("toggle")
	toggleRouter.Use(middleware.RateLimit(rateLimiter, "toggle", toggleAllowedPerMin, handler.metricsManager))

	apiRouter := mainRouter.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/state", handler.HandleState).Methods("GET", "OPTIONS").Name("api-state")
	apiRouter.HandleFunc("/schedule", handler.HandleSchedule).Methods("GET", "OPTIONS").Name("api-schedule")
	apiRouter.HandleFunc("/rules", handler.HandleRulesData).Methods("GET", "OPTIONS").Name("api-rules")
}

func (handler *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.page")
	defer span.End()

	handler.respond(w, r)
}

func (handler *Handler) HandleRules(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.rules")
	defer span.End()

	if err := handler.tracker.SetView(tracker.ViewRules); err != nil {
		log.Errorf("set rules view: %s", err)
		http.Error(w, "error, failed to open rules", http.StatusInternalServerError)
		return
	}
	handler.respond(w, r)
}

func (handler *Handler) HandleWorkout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.workout")
	defer span.End()

	if err := handler.tracker.SetView(tracker.ViewWorkout); err != nil {
		log.Errorf("set workout view: %s", err)
		http.Error(w, "error, failed to open workout", http.StatusInternalServerError)
		return
	}
	handler.respond(w, r)
}

func (handler *Handler) HandleToggleView(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.toggleView")
	defer span.End()

	view := handler.tracker.ToggleView()
	span.SetAttributes(attribute.String("view", string(view)))
	handler.respondAfterPost(w, r)
}

func (handler *Handler) HandleSelectDay(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.selectDay")
	defer span.End()

	day, err := program.ParseDay(mux.Vars(r)["day"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, unknown day", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("day", string(day)))

	if err := handler.tracker.SelectDay(day); err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("select day [%s]: %s", day, err)
		http.Error(w, "error, failed to select day", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterDaySwitches.WithLabelValues(string(day)).Inc()
		handler.metricsManager.GaugeProgressPercent.Set(handler.tracker.Snapshot().Progress.Percent)
	}

	handler.respondAfterPost(w, r)
}

func (handler *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.toggle")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("exercise.id", id))

	toggled, err := handler.tracker.ToggleWithProgress(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, tracker.ErrExerciseNotDisplayed) {
			http.Error(w, "error, exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("toggle exercise [%s]: %s", id, err)
		http.Error(w, "error, failed to toggle exercise", http.StatusInternalServerError)
		return
	}

	progress := toggled.After
	span.SetAttributes(
		attribute.Bool("exercise.completed", toggled.Completed),
		attribute.Float64("progress.percent", progress.Percent),
	)
	log.Tracef("exercise [%s] on [%s] completed: %t (%d/%d)", id, toggled.Day, toggled.Completed, progress.Done, progress.Total)

	if handler.metricsManager != nil {
		handler.metricsManager.CounterToggles.WithLabelValues(string(toggled.Day), strconv.FormatBool(toggled.Completed)).Inc()
		handler.metricsManager.GaugeProgressPercent.Set(progress.Percent)
		if toggled.BecameAllClear() {
			handler.metricsManager.CounterAllClear.Inc()
		}
	}

	if wantsJSON(r) {
		handler.writeJSON(w, ToggleResponse{
			ID:        id,
			Completed: toggled.Completed,
			Progress:  progress,
		})
		return
	}
	handler.respondAfterPost(w, r)
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.reset")
	defer span.End()

	handler.tracker.Reset()
	if handler.metricsManager != nil {
		handler.metricsManager.GaugeProgressPercent.Set(0)
	}
	log.Debugln("completion state reset")
	handler.respondAfterPost(w, r)
}

func (handler *Handler) HandleFormGuide(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.formGuide")
	defer span.End()

	ex, err := program.Lookup(mux.Vars(r)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "error, exercise not found", http.StatusNotFound)
		return
	}

	target := program.FormGuideURL(ex)
	span.SetAttributes(attribute.String("form_guide.url", target))
	http.Redirect(w, r, target, http.StatusFound)
}

func (handler *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.state")
	defer span.End()

	handler.writeJSON(w, handler.tracker.Snapshot())
}

func (handler *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.schedule")
	defer span.End()

	handler.writeCachedJSON(w, cacheKeySchedule, func() (any, error) {
		resp := ScheduleResponse{
			Days:     program.Days(),
			Morning:  program.MorningRitual(),
			Sessions: make(map[program.Day]program.DaySchedule, 7),
		}
		for _, d := range resp.Days {
			s, err := program.Schedule(d)
			if err != nil {
				return nil, err
			}
			resp.Sessions[d] = s
		}
		return resp, nil
	})
}

func (handler *Handler) HandleRulesData(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.rulesData")
	defer span.End()

	handler.writeCachedJSON(w, cacheKeyRules, func() (any, error) {
		return RulesResponse{
			Meta:     program.ProgramMeta(),
			Warmups:  program.WarmupBlocks(),
			Recovery: program.RecoveryProtocol(),
			Panel:    program.RulesPanel(),
		}, nil
	})
}

// respond renders the page, the app fragment for in-place updates, or JSON state.
func (handler *Handler) respond(w http.ResponseWriter, r *http.Request) {
	state := handler.tracker.Snapshot()
	if wantsJSON(r) {
		handler.writeJSON(w, state)
		return
	}

	page, err := handler.pages.Render(state, r.Header.Get("X-Partial") != "")
	if err != nil {
		log.Errorf("render page: %s", err)
		http.Error(w, "error, failed to render page", http.StatusInternalServerError)
		return
	}
	pkg.WriteHTMLResponseOK(w, page)
}

// respondAfterPost redirects plain form posts back to the page, so reloads do not resubmit.
func (handler *Handler) respondAfterPost(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) || r.Header.Get("X-Partial") != "" {
		handler.respond(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "error, failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) writeCachedJSON(w http.ResponseWriter, key string, build func() (any, error)) {
	if cached, err := handler.cache.Get([]byte(key)); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	v, err := build()
	if err != nil {
		log.Errorf("build [%s] response: %s", key, err)
		http.Error(w, "error, failed to build response", http.StatusInternalServerError)
		return
	}
	respBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal [%s] response: %s", key, err)
		http.Error(w, "error, failed to marshal response", http.StatusInternalServerError)
		return
	}
	if err := handler.cache.Set([]byte(key), respBytes, staticCacheExpireSeconds); err != nil {
		log.Warnf("cache [%s] response: %s", key, err)
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), pkg.ContentType.JSON)
}
