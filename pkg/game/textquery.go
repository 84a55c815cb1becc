package game

import "strings"

// TextQueryHandler supports substring search with pagination over a fixed
// snapshot of white-card texts taken at game start. Grounded on
// original_source/game_service/src/game/text_query_handler.rs.
type TextQueryHandler struct {
	texts []string
}

func NewTextQueryHandler(texts []string) *TextQueryHandler {
	return &TextQueryHandler{texts: append([]string(nil), texts...)}
}

// Query returns up to pageSize entries containing filter, after skipping
// the first skip matches, plus whether a further match exists.
func (h *TextQueryHandler) Query(filter string, pageSize, skip int) (texts []string, hasNextPage bool) {
	matched := 0
	for _, t := range h.texts {
		if !strings.Contains(t, filter) {
			continue
		}
		if matched < skip {
			matched++
			continue
		}
		matched++
		if len(texts) < pageSize {
			texts = append(texts, t)
			continue
		}
		// This is the (pageSize+1)th match.
		hasNextPage = true
		break
	}
	return texts, hasNextPage
}

// TotalSize returns the original, unfiltered count.
func (h *TextQueryHandler) TotalSize() int {
	return len(h.texts)
}
