package ranker

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Terms are runs of two or more word characters, lowercased. Single-letter
// tokens carry no signal for this purpose.
var termRe = regexp.MustCompile(`\b\w\w+\b`)

// tfidfCosine scores each doc against the query by cosine similarity in a
// TF-IDF vector space built over [query]+docs. Smoothed IDF:
// ln((1+n)/(1+df))+1, vectors L2-normalized; an all-zero vector on either
// side yields score 0. The vocabulary is sorted so repeated calls sum in the
// same order and return bit-identical scores.
func tfidfCosine(query string, docs []string) []float64 {
	texts := make([]string, 0, len(docs)+1)
	texts = append(texts, query)
	texts = append(texts, docs...)

	counts := make([]map[string]float64, len(texts))
	df := make(map[string]float64)
	for i, text := range texts {
		tf := make(map[string]float64)
		for _, term := range termRe.FindAllString(strings.ToLower(text), -1) {
			tf[term]++
		}
		counts[i] = tf
		for term := range tf {
			df[term]++
		}
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	n := float64(len(texts))
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		idf[i] = math.Log((1+n)/(1+df[term])) + 1
	}

	vectors := make([][]float64, len(texts))
	for i, tf := range counts {
		vec := make([]float64, len(vocab))
		var norm float64
		for j, term := range vocab {
			w := tf[term] * idf[j]
			vec[j] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range vec {
				vec[j] /= norm
			}
		}
		vectors[i] = vec
	}

	queryVec := vectors[0]
	scores := make([]float64, len(docs))
	for i := range docs {
		var sum float64
		for j := range vocab {
			sum += queryVec[j] * vectors[i+1][j]
		}
		scores[i] = sum
	}
	return scores
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
