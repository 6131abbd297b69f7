package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/traductor/traductor/app/client"
	"github.com/traductor/traductor/app/enum"
)

// handleIndex renders the main page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(w, r)
	h.render(w, "base.html", data)
}

// handleTranslate runs the translation request handler for the submitted form.
// Script requests get the result partial, plain form posts get the whole page.
func (h *Handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	data := h.pageData(w, r)

	box := &client.Box{}
	form := client.Values{From: r.FormValue("source"), To: r.FormValue("target"), Input: r.FormValue("text")}
	outcome := client.New(h.api, form, box, h.localizer()).Submit(r.Context())
	data.Result, data.Outcome = box.Result(), outcome.String()
	log.Printf("[DEBUG] web translate %s->%s: %s", form.From, form.To, outcome)

	if isHX(r) {
		h.render(w, "result", data)
		return
	}
	h.render(w, "base.html", data)
}

// handleSwap swaps source and target languages. Auto source can't become a target, so it stays.
func (h *Handler) handleSwap(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	data := h.pageData(w, r)
	if src, err := enum.ParseLang(data.Source); err == nil && src.IsTarget() {
		data.Source, data.Target = data.Target, data.Source
	}

	if isHX(r) {
		h.render(w, "form", data)
		return
	}
	h.render(w, "base.html", data)
}

// handleThemeToggle toggles the theme between light and dark, or sets it from the "theme" form value.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	ts := h.themeStore(w, r)
	if v := r.FormValue("theme"); v != "" {
		theme, err := enum.ParseTheme(v)
		if err != nil {
			http.Error(w, "invalid theme", http.StatusBadRequest)
			return
		}
		if err := ts.Set(r.Context(), nil, theme); err != nil {
			log.Printf("[WARN] failed to set theme: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	} else if _, err := ts.Toggle(r.Context(), nil); err != nil {
		log.Printf("[WARN] failed to toggle theme: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !isHX(r) {
		http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
		return
	}
	// trigger full page refresh
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}

// render executes the named template, logging failures.
func (h *Handler) render(w http.ResponseWriter, name string, data *templateData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] failed to execute template %s: %v", name, err)
	}
}
