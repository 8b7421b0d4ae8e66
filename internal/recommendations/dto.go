package recommendations

import "videopick-backend/internal/youtube"

type recommendRequest struct {
	Goal      string   `json:"goal"`
	VideoURLs []string `json:"videoUrls"`
}

// RecommendResponse is the success payload for POST /recommendations.
type RecommendResponse struct {
	Recommendation string          `json:"recommendation"`
	Provider       string          `json:"provider"`
	Videos         []VideoResponse `json:"videos"`
}

// VideoResponse echoes the per-link fetch outcome so callers can see which
// links failed even though the recommendation still covers all slots.
type VideoResponse struct {
	URL     string `json:"url"`
	VideoID string `json:"videoId,omitempty"`
	Title   string `json:"title,omitempty"`
	Error   string `json:"error,omitempty"`
}

func toVideoResponses(videos []youtube.Video) []VideoResponse {
	out := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, VideoResponse{
			URL:     v.URL,
			VideoID: v.ID,
			Title:   v.Title,
			Error:   v.Err,
		})
	}
	return out
}
