// api/skills_handler.go
package api

import (
	"errors"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

////////////////////////////////////////////////////////////////////////
// Request / Response Schemas
////////////////////////////////////////////////////////////////////////

// jobDescriptionItem is one job description to extract skills from. The
// job_id is an opaque string echoed back in the result; empty text is
// rejected (single) or skipped (batch) at this boundary, before the
// processor runs.
type jobDescriptionItem struct {
	JobID string `json:"job_id"`
	Text  string `json:"text"`
}

// jobDescriptionBatch is the payload for batch extraction.
type jobDescriptionBatch struct {
	JobDescriptions []jobDescriptionItem `json:"job_descriptions"`
}

// skillsResult is the per-job extraction outcome.
type skillsResult struct {
	JobID  string   `json:"job_id"`
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}

// batchSkillsResponse wraps the per-job results; TotalProcessed counts only
// the items that were actually extracted (empty-text items are skipped).
type batchSkillsResponse struct {
	Results        []skillsResult `json:"results"`
	TotalProcessed int            `json:"total_processed"`
}

////////////////////////////////////////////////////////////////////////
// Handler: POST /extract-skills
////////////////////////////////////////////////////////////////////////

// extractSkills processes a single job description.
func (server *Server) extractSkills(ctx *gin.Context) {
	var req jobDescriptionItem

	// Step 1: Bind the request body.
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 2: Validate here, at the boundary; the processor itself treats
	// empty text as a no-op, but the single-job endpoint rejects it.
	if req.Text == "" {
		err := errors.New("Job description text cannot be empty")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 3: Extract and respond.
	extracted := server.processor.Extract(req.Text)

	ctx.JSON(http.StatusOK, skillsResult{
		JobID:  req.JobID,
		Skills: extracted,
		Count:  len(extracted),
	})
}

////////////////////////////////////////////////////////////////////////
// Handler: POST /extract-skills-batch
////////////////////////////////////////////////////////////////////////

// extractSkillsBatch processes many job descriptions in one call. Items are
// independent, so they are fanned out over a worker pool bounded by the
// core count; results keep the input order.
func (server *Server) extractSkillsBatch(ctx *gin.Context) {
	var req jobDescriptionBatch

	// Step 1: Bind the request body.
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 2: Reject an empty batch outright.
	if len(req.JobDescriptions) == 0 {
		err := errors.New("Job descriptions list cannot be empty")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 3: Drop empty-text items up front. They are skipped silently:
	// not extracted, not counted, not an error.
	items := make([]jobDescriptionItem, 0, len(req.JobDescriptions))
	for _, item := range req.JobDescriptions {
		if item.Text == "" {
			continue
		}
		items = append(items, item)
	}

	// Step 4: Extract the remaining items concurrently, each writing to its
	// own slot so the response order matches the request order. Extraction
	// cannot fail per item, so the group never returns an error.
	results := make([]skillsResult, len(items))

	g, _ := errgroup.WithContext(ctx.Request.Context())
	g.SetLimit(runtime.NumCPU())
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			extracted := server.processor.Extract(item.Text)
			results[i] = skillsResult{
				JobID:  item.JobID,
				Skills: extracted,
				Count:  len(extracted),
			}
			return nil
		})
	}
	_ = g.Wait()

	ctx.JSON(http.StatusOK, batchSkillsResponse{
		Results:        results,
		TotalProcessed: len(results),
	})
}

////////////////////////////////////////////////////////////////////////
// Handler: GET /
////////////////////////////////////////////////////////////////////////

// welcome documents the service; it never touches the processor.
func (server *Server) welcome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Skills Extractor API",
		"endpoints": gin.H{
			"/extract-skills":       "Process a single job description",
			"/extract-skills-batch": "Process multiple job descriptions at once",
		},
	})
}
