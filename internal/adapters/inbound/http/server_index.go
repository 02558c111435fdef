package http

import (
	"net/http"
)

// Rebuild the book index from the source document
// (POST /api/index/rebuild)
func (api TravelAdvisorServer) RebuildIndex(w http.ResponseWriter, r *http.Request) {
	stats, err := api.BuildBookIndexUseCase.Execute(r.Context())
	if err != nil {
		api.Logger.Printf("RebuildIndex: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, IndexRebuildResp{
		Sections: stats.Sections,
		Chunks:   stats.Chunks,
	})
}
