package http

import (
	"net/http"

	"github.com/fwojciec/websum"
)

// handleIndex renders the empty form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, websum.RenderResult{})
}

// handleSummarize summarizes the submitted URL and renders either the
// summary or the error message. Both outcomes are a 200 response.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var result websum.RenderResult
	digest, err := s.Digester.Digest(ctx, r.PostFormValue("url"))
	if err != nil {
		result.Error = websum.UserMessage(err)
		s.Logger.ErrorContext(ctx, result.Error,
			"code", websum.ErrorCode(err),
		)
	} else {
		result.Summary = digest.Summary()
	}

	s.render(w, r, result)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, result websum.RenderResult) {
	page, err := Render(result)
	if err != nil {
		s.Logger.ErrorContext(r.Context(), "render page", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}
