package main

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"careerpath/internal/carousel"
	"careerpath/internal/catalog"
	"careerpath/internal/config"
	"careerpath/internal/contact"
	"careerpath/internal/db"
	"careerpath/internal/locale"
	"careerpath/internal/metrics"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const (
	langCookie = "lang"
	formCookie = "contact_form"
)

type App struct {
	Settings   *config.Settings
	SiteConfig *config.SiteConfig
	Leads      db.LeadStore
	Forms      *contact.Registry
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
	Templates  *template.Template
	// Clock drives testimonial streams; nil means wall clock.
	Clock carousel.Clock
}

func NewApp(
	settings *config.Settings,
	siteConfig *config.SiteConfig,
	leads db.LeadStore,
	forms *contact.Registry,
	m *metrics.Metrics,
	logger *slog.Logger,
) *App {
	funcMap := template.FuncMap{
		"url_for": func(name string, args ...string) string {
			switch name {
			case "static":
				if len(args) > 0 {
					filename := strings.TrimLeft(args[0], "/")
					return "/static/" + filename
				}
				return "/static/"
			default:
				return "/" + strings.TrimLeft(name, "/")
			}
		},
		// Generate a sequence of numbers (for star ratings)
		"seq": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i + 1
			}
			return s
		},
		// Translation function
		"t": func(translations Translations, key string) string {
			if val, ok := translations[key]; ok {
				return val
			}
			return key
		},
		"query": func(pairs ...string) string {
			v := url.Values{}
			for i := 0; i+1 < len(pairs); i += 2 {
				if pairs[i+1] != "" {
					v.Set(pairs[i], pairs[i+1])
				}
			}
			return v.Encode()
		},
		"date": func(t time.Time) string {
			return t.Local().Format("02/01/2006 15:04")
		},
	}
	tpl := template.Must(
		template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.gohtml"),
	)
	return &App{
		Settings:   settings,
		SiteConfig: siteConfig,
		Leads:      leads,
		Forms:      forms,
		Metrics:    m,
		Logger:     logger,
		Templates:  tpl,
	}
}

// routes returns the application mux, without the outer middlewares.
func (a *App) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", a.handleHome)
	mux.HandleFunc("GET /services", a.handleServices)
	mux.HandleFunc("GET /pricing", a.handlePricing)
	mux.HandleFunc("GET /programs", a.handlePrograms)
	mux.HandleFunc("GET /testimonials", a.handleTestimonials)
	mux.HandleFunc("GET /testimonials/stream", a.handleTestimonialStream)
	mux.HandleFunc("/contact", a.handleContact)
	mux.HandleFunc("POST /contact/reset", a.handleContactReset)
	mux.HandleFunc("GET /lang/{lang}", a.handleSetLanguage)
	mux.HandleFunc("GET /legal", a.handleLegal)
	mux.HandleFunc("GET /admin/leads", a.requireAdmin(a.handleAdminLeads))
	mux.HandleFunc("GET /admin/leads/{id}", a.requireAdmin(a.handleAdminLead))
	mux.HandleFunc("GET /healthz", a.handleHealth)
	mux.Handle("GET /metrics", a.Metrics.Handler())
	return mux
}

// --- Language helpers ---

// currentLang resolves the page language: ?lang=, then the cookie, then
// Accept-Language, then the configured default. A valid ?lang= is
// remembered in the cookie.
func (a *App) currentLang(w http.ResponseWriter, r *http.Request) locale.Locale {
	if l, ok := locale.Parse(r.URL.Query().Get("lang")); ok {
		a.setLang(w, l)
		return l
	}
	if c, err := r.Cookie(langCookie); err == nil {
		if l, ok := locale.Parse(c.Value); ok {
			return l
		}
	}
	if h := r.Header.Get("Accept-Language"); h != "" {
		return locale.Negotiate(h)
	}
	return a.Settings.Lang
}

func (a *App) setLang(w http.ResponseWriter, lang locale.Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     langCookie,
		Value:    lang.String(),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Settings.IsProduction(),
	})
}

func (a *App) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := locale.Parse(r.PathValue("lang"))
	if !ok {
		lang = a.Settings.Lang
	}
	a.setLang(w, lang)
	http.Redirect(w, r, localReferer(r), http.StatusFound)
}

// localReferer returns the path of the Referer when it points at this
// host, "/" otherwise.
func localReferer(r *http.Request) string {
	u, err := url.Parse(r.Header.Get("Referer"))
	if err != nil || u.Path == "" || (u.Host != "" && u.Host != r.Host) {
		return "/"
	}
	return u.RequestURI()
}

// baseData returns common template data including translations
func (a *App) baseData(r *http.Request, lang locale.Locale) map[string]any {
	other := locale.EN
	if lang == locale.EN {
		other = locale.FR
	}
	return map[string]any{
		"Lang":      lang.String(),
		"OtherLang": other.String(),
		"T":         T(lang),
		"Site":      a.SiteConfig,
		"Path":      r.URL.Path,
		"Year":      time.Now().Year(),
	}
}

// mergeData merges additional data into base data
func (a *App) mergeData(r *http.Request, lang locale.Locale, extra map[string]any) map[string]any {
	data := a.baseData(r, lang)
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// render executes page into a buffer so a template error still yields a
// clean 500.
func (a *App) render(w http.ResponseWriter, r *http.Request, status int, page string, lang locale.Locale, extra map[string]any) {
	var buf bytes.Buffer
	if err := a.Templates.ExecuteTemplate(&buf, page, a.mergeData(r, lang, extra)); err != nil {
		a.Logger.ErrorContext(r.Context(), "render template", slog.String("page", page), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	a.Metrics.PageView(page, lang.String())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (a *App) renderError(w http.ResponseWriter, r *http.Request, status int, lang locale.Locale) {
	key := "error.server"
	if status == http.StatusNotFound {
		key = "error.not_found"
	}
	a.render(w, r, status, "error", lang, map[string]any{
		"Status":  status,
		"Message": T(lang)[key],
	})
}

// --- handlers principaux ---

func (a *App) handleHome(w http.ResponseWriter, r *http.Request) {
	lang := a.currentLang(w, r)
	if r.URL.Path != "/" {
		a.renderError(w, r, http.StatusNotFound, lang)
		return
	}

	var featured *catalog.TestimonialView
	if len(catalog.Testimonials) > 0 {
		v := catalog.Testimonials[0].View(lang)
		featured = &v
	}
	stats := make([]map[string]string, 0, len(catalog.Stats))
	for _, s := range catalog.Stats {
		stats = append(stats, map[string]string{"Value": s.Value, "Label": s.Label.Resolve(lang)})
	}
	a.render(w, r, http.StatusOK, "home", lang, map[string]any{
		"Services":    serviceViews(lang),
		"Stats":       stats,
		"Testimonial": featured,
	})
}

func serviceViews(lang locale.Locale) []catalog.EntryView {
	out := make([]catalog.EntryView, 0, len(catalog.ServiceCards))
	for _, e := range catalog.ServiceCards {
		out = append(out, catalog.ViewOf(e, lang))
	}
	return out
}

func (a *App) handleServices(w http.ResponseWriter, r *http.Request) {
	lang := a.currentLang(w, r)
	a.render(w, r, http.StatusOK, "services", lang, map[string]any{
		"Services": serviceViews(lang),
	})
}

func (a *App) handlePricing(w http.ResponseWriter, r *http.Request) {
	lang := a.currentLang(w, r)
	q := r.URL.Query()

	service := catalog.LinkedIn
	if v := q.Get("service"); v != "" {
		service = catalog.ParseService(v)
	}
	region := catalog.Africa
	if v := q.Get("region"); v != "" {
		region = catalog.ParseRegion(v)
	}

	sel := catalog.NewSelector(catalog.Pricing.Table(service), catalog.Africa, 0)
	sel.Select(region)

	services := make([]catalog.Option, 0, len(catalog.Services()))
	for _, s := range catalog.Pricing.Categories() {
		services = append(services, catalog.Option{
			Key:    s.String(),
			Label:  s.Label().Resolve(lang),
			Active: s == service,
		})
	}

	a.render(w, r, http.StatusOK, "pricing", lang, map[string]any{
		"View":     catalog.Render(sel, catalog.Regions(), lang),
		"Services": services,
		"Service":  service.String(),
	})
}

func (a *App) handlePrograms(w http.ResponseWriter, r *http.Request) {
	lang := a.currentLang(w, r)
	q := r.URL.Query()

	cycle := catalog.Licence
	if v := q.Get("cycle"); v != "" {
		cycle = catalog.ParseCycle(v)
	}

	sel := catalog.NewSelector(catalog.Programs, catalog.Licence, catalog.ProgramPreview)
	sel.Select(cycle)
	sel.SetShowAll(q.Get("all") == "1")

	a.render(w, r, http.StatusOK, "programs", lang, map[string]any{
		"View": catalog.Render(sel, catalog.Cycles(), lang),
	})
}

func (a *App) newRotation(opts ...carousel.Option[catalog.Testimonial]) *carousel.Rotation[catalog.Testimonial] {
	if a.Clock != nil {
		opts = append(opts, carousel.WithClock[catalog.Testimonial](a.Clock))
	}
	return carousel.New(catalog.Testimonials, a.Settings.TestimonialInterval, opts...)
}

func (a *App) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	lang := a.currentLang(w, r)

	rot := a.newRotation()
	if i, err := strconv.Atoi(r.URL.Query().Get("i")); err == nil {
		rot.Goto(i)
	}

	data := map[string]any{}
	if idx, item, ok := rot.Current(); ok {
		n := rot.Len()
		data["Current"] = item.View(lang)
		data["Index"] = idx
		data["Prev"] = carousel.Wrap(idx-1, n)
		data["Next"] = carousel.Wrap(idx+1, n)
		data["Dots"] = make([]struct{}, n)
		data["Interval"] = a.Settings.TestimonialInterval.Milliseconds()
	}
	a.render(w, r, http.StatusOK, "testimonials", lang, data)
}

type testimonialEvent struct {
	Index int `json:"index"`
	Total int `json:"total"`
	catalog.TestimonialView
}

// handleTestimonialStream runs one autoplay rotation for the lifetime of the
// connection and pushes every move as a server-sent event.
func (a *App) handleTestimonialStream(w http.ResponseWriter, r *http.Request) {
	lang := a.currentLang(w, r)
	ctx := r.Context()

	if len(catalog.Testimonials) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	// only the latest position matters, a slow client skips intermediate ones
	moves := make(chan int, 1)
	rot := a.newRotation(carousel.WithOnChange(func(i int, _ catalog.Testimonial) {
		select {
		case moves <- i:
		default:
			select {
			case <-moves:
			default:
			}
			select {
			case moves <- i:
			default:
			}
		}
	}))
	a.Metrics.Streams.Inc()
	defer a.Metrics.Streams.Dec()

	start := 0
	if i, err := strconv.Atoi(r.URL.Query().Get("i")); err == nil {
		start = i
	}
	// Goto emits the first event
	rot.Goto(start)
	rot.Start(ctx)
	defer rot.Stop()

	rc := http.NewResponseController(w)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	for {
		select {
		case <-ctx.Done():
			return
		case i := <-moves:
			payload, err := json.Marshal(testimonialEvent{
				Index:           i,
				Total:           rot.Len(),
				TestimonialView: catalog.Testimonials[i].View(lang),
			})
			if err != nil {
				a.Logger.ErrorContext(ctx, "encode testimonial", slog.Any("error", err))
				return
			}
			if _, err := fmt.Fprintf(w, "id: %d\nevent: testimonial\ndata: %s\n\n", i, payload); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				a.Logger.WarnContext(ctx, "testimonial stream not flushable", slog.Any("error", err))
				return
			}
		}
	}
}

func (a *App) handleLegal(w http.ResponseWriter, r *http.Request) {
	lang := a.currentLang(w, r)
	type section struct{ Title, Content string }
	sections := make([]section, 0, len(a.SiteConfig.Legal.CustomSections))
	for _, s := range a.SiteConfig.Legal.CustomSections {
		sections = append(sections, section{Title: s.Title(lang), Content: s.Content(lang)})
	}
	a.render(w, r, http.StatusOK, "legal", lang, map[string]any{
		"Legal":    a.SiteConfig.Legal,
		"Sections": sections,
	})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// --- formulaire de contact ---

// contactForm returns the visitor's form, issuing a new token cookie when
// the current one is missing or expired.
func (a *App) contactForm(w http.ResponseWriter, r *http.Request) *contact.Form {
	token := ""
	if c, err := r.Cookie(formCookie); err == nil {
		token = c.Value
	}
	id, form := a.Forms.Get(token)
	if id.String() != token {
		http.SetCookie(w, &http.Cookie{
			Name:     formCookie,
			Value:    id.String(),
			Path:     "/contact",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   a.Settings.IsProduction(),
		})
	}
	return form
}

// peekContactForm returns the visitor's current snapshot without creating
// a form. Visitors who never posted see an idle form.
func (a *App) peekContactForm(r *http.Request) contact.Snapshot {
	if c, err := r.Cookie(formCookie); err == nil {
		if form, ok := a.Forms.Peek(c.Value); ok {
			return form.Snapshot()
		}
	}
	return contact.Snapshot{State: contact.StateIdle}
}

func (a *App) handleContact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		lang := a.currentLang(w, r)
		a.renderContact(w, r, http.StatusOK, lang, a.peekContactForm(r), nil)
	case http.MethodPost:
		lang := a.currentLang(w, r)
		form := a.contactForm(w, r)
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		in := contact.Fields{
			Name:    r.PostFormValue("name"),
			Email:   r.PostFormValue("email"),
			Phone:   r.PostFormValue("phone"),
			Subject: r.PostFormValue("subject"),
			Message: r.PostFormValue("message"),
			Lang:    lang.String(),
		}
		start := time.Now()
		snap, err := form.Submit(r.Context(), in)
		status, outcome := submitOutcome(err)
		a.Metrics.Submit(outcome, time.Since(start))
		if status >= http.StatusInternalServerError {
			a.Logger.ErrorContext(r.Context(), "contact submit failed", slog.Any("error", err))
		} else {
			a.Logger.InfoContext(r.Context(), "contact submit", slog.String("outcome", outcome))
		}
		a.renderContact(w, r, status, lang, snap, err)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// submitOutcome maps a Submit result to a status code and a metric label.
func submitOutcome(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, metrics.OutcomeSuccess
	case errors.Is(err, contact.ErrValidation):
		return http.StatusUnprocessableEntity, metrics.OutcomeValidation
	case errors.Is(err, contact.ErrSubmitInFlight):
		return http.StatusConflict, metrics.OutcomeInFlight
	case errors.Is(err, contact.ErrAlreadySubmitted):
		return http.StatusConflict, metrics.OutcomeDuplicate
	}
	return http.StatusBadGateway, metrics.OutcomeFailed
}

func subjectOptions(lang locale.Locale, selected string) []catalog.Option {
	opts := make([]catalog.Option, 0, len(catalog.Services())+1)
	for _, s := range catalog.Services() {
		opts = append(opts, catalog.Option{Key: s.String(), Label: s.Label().Resolve(lang), Active: s.String() == selected})
	}
	return append(opts, catalog.Option{Key: "other", Label: T(lang)["contact.subject.other"], Active: selected == "other"})
}

func (a *App) renderContact(w http.ResponseWriter, r *http.Request, status int, lang locale.Locale, snap contact.Snapshot, err error) {
	tr := T(lang)
	missing := make([]string, 0, len(snap.Missing))
	for _, m := range snap.Missing {
		missing = append(missing, tr["field."+m])
	}

	type office struct {
		config.Office
		HoursText string
	}
	offices := make([]office, 0, len(a.SiteConfig.Offices))
	for _, o := range a.SiteConfig.Offices {
		offices = append(offices, office{Office: o, HoursText: o.Hours(lang)})
	}

	a.render(w, r, status, "contact", lang, map[string]any{
		"State":    snap.State.String(),
		"Kind":     snap.Kind.String(),
		"Fields":   snap.Fields,
		"Missing":  strings.Join(missing, ", "),
		"Ack":      snap.Ack,
		"InFlight": errors.Is(err, contact.ErrSubmitInFlight),
		"Subjects": subjectOptions(lang, snap.Fields.Subject),
		"Offices":  offices,
	})
}

func (a *App) handleContactReset(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(formCookie); err == nil {
		if form, ok := a.Forms.Peek(c.Value); ok {
			form.Dismiss()
		}
	}
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}
