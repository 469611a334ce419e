package handlers

import (
	"net/http"

	"github.com/agentstation/webicons/internal/server/response"
	"github.com/agentstation/webicons/pkg/metadata"
)

// HandleListFamilies handles GET /api/v1/families.
// @Summary List families
// @Description Each configured family with its vendors in document order and its default vendor
// @Tags metadata
// @Produce json
// @Success 200 {object} response.Response{data=[]metadata.FamilySummary}
// @Router /api/v1/families [get].
func (h *Handlers) HandleListFamilies(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.client.Config(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, cfg.Summaries())
}

// HandleListVendors handles GET /api/v1/families/{family}/vendors.
// @Summary List vendors
// @Description Vendor records of a family, the default vendor marked
// @Tags metadata
// @Produce json
// @Param family path string true "emojis or icons"
// @Success 200 {object} response.Response{data=[]metadata.VendorEntry}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/families/{family}/vendors [get].
func (h *Handlers) HandleListVendors(w http.ResponseWriter, r *http.Request) {
	family, err := metadata.ParseFamily(r.PathValue("family"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	cfg, err := h.client.Config(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	entries, err := cfg.Entries(family)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, entries)
}

// HandleResolve handles GET /api/v1/webicons/{family}/{id}?vendor=.
// @Summary Resolve a webicon
// @Description Resolves an identifier to its canonical id, glyph, title and vendor record
// @Tags webicons
// @Produce json
// @Param family path string true "emojis or icons"
// @Param id path string true "hex codepoint, glyph, shortcode or icon name"
// @Param vendor query string false "vendor name, defaults to the family's last vendor"
// @Success 200 {object} response.Response{data=webicons.Page}
// @Failure 400 {object} response.Response{error=response.Error}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/webicons/{family}/{id} [get].
func (h *Handlers) HandleResolve(w http.ResponseWriter, r *http.Request) {
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
	response.OK(w, p)
}
