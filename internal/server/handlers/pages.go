package handlers

import (
	"net/http"
	"net/url"
	"os"

	"github.com/agentstation/webicons/internal/server/response"
	"github.com/agentstation/webicons/pkg/metadata"
	"github.com/agentstation/webicons/pkg/page"
)

// HandlePage handles GET /{family}/{id}?vendor=.
func (h *Handlers) HandlePage(w http.ResponseWriter, r *http.Request) {
	req, err := request(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.client.Resolve(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.HTML(w, page.ContentType, p.Document())
}

// HandleEmojiRedirect handles GET /emoji/{id}?vendor= by redirecting to the
// emojis family route. The vendor query survives the redirect.
func (h *Handlers) HandleEmojiRedirect(w http.ResponseWriter, r *http.Request) {
	target := "/" + metadata.Emojis.String() + "/" + url.PathEscape(r.PathValue("id"))
	if q := r.URL.Query(); q.Has("vendor") {
		target += "?" + url.Values{"vendor": {q.Get("vendor")}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// HandleFavicon handles GET /favicon.ico. A missing file answers 204 so
// browsers stop asking without filling the logs with 404s.
func (h *Handlers) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	path := h.options.FaviconPath
	info, err := os.Stat(path)
	if path == "" || err != nil || info.IsDir() {
		h.logger.Debug().Str("path", path).Msg("Favicon not found")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "image/x-icon")
	http.ServeFile(w, r, path)
}
