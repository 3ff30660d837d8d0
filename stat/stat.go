package stat

import (
	"github.com/revelaction/pluralis/noun"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	Total    int
	Correct  int
	Accuracy float64

	// NoSimilar counts the nouns predicted by the regular rule because no
	// similar representation was found.
	NoSimilar int

	SimilarMean int
	SimilarDis  map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{SimilarDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(results []noun.Result) {
	numSimilar := 0
	for _, r := range results {
		h.stats.Total++
		if r.Correct {
			h.stats.Correct++
		}
		if len(r.Similar) == 0 {
			h.stats.NoSimilar++
		}

		numSimilar += len(r.Similar)
		h.stats.SimilarDis[len(r.Similar)]++
	}

	if h.stats.Total == 0 {
		return
	}

	h.stats.Accuracy = Accuracy(h.stats.Correct, h.stats.Total)
	h.stats.SimilarMean = numSimilar / h.stats.Total
}

// Accuracy is the share of correct predictions, 0 for no predictions.
func Accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// Point is the accuracy of a model at one epsilon.
type Point struct {
	Mode     noun.Mode `json:"mode"`
	Epsilon  int       `json:"epsilon"`
	Total    int       `json:"total"`
	Correct  int       `json:"correct"`
	Accuracy float64   `json:"accuracy"`
}

func NewPoint(info noun.RunInfo) Point {
	return Point{
		Mode:     info.Mode,
		Epsilon:  info.Epsilon,
		Total:    info.Total,
		Correct:  info.Correct,
		Accuracy: Accuracy(info.Correct, info.Total),
	}
}
