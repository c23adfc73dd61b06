package schemaorg

import (
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
)

// MapReview returns a Review. A verified purchase without a title is named
// "Verified Purchase".
func (m *Mapper) MapReview(in Review) (jsonld.Node, error) {
	id, err := m.optionalID("Review", in.SchemaID, nodeid.KindReview, in.URL, in.Key)
	if err != nil {
		return nil, err
	}

	n := newNode("Review", id)
	putString(n, "url", in.URL)
	putString(n, "datePublished", in.DatePublished)
	putString(n, "reviewBody", in.ReviewBody)
	name := in.Title
	if name == "" && in.IsVerifiedBuyer {
		name = "Verified Purchase"
	}
	putString(n, "name", name)

	author := newNode("Person", in.Author.ID)
	putString(author, "name", in.Author.Name)
	putString(author, "url", in.Author.URL)
	n["author"] = author

	n["reviewRating"] = jsonld.Node{
		"@type":       "Rating",
		"ratingValue": in.Rating,
		"bestRating":  orDefault(in.BestRating, 5),
		"worstRating": orDefault(in.WorstRating, 1),
	}
	return n, nil
}

// MapAggregateRating returns an AggregateRating with best 5 and worst 1
// unless given.
func (m *Mapper) MapAggregateRating(in AggregateRating) (jsonld.Node, error) {
	id, err := m.optionalID("AggregateRating", in.SchemaID, nodeid.KindAggregateRating, in.URL, "")
	if err != nil {
		return nil, err
	}

	n := newNode("AggregateRating", id)
	n["ratingValue"] = in.RatingValue
	n["reviewCount"] = in.ReviewCount
	if in.RatingCount != nil {
		n["ratingCount"] = *in.RatingCount
	}
	n["bestRating"] = orDefault(in.BestRating, 5)
	n["worstRating"] = orDefault(in.WorstRating, 1)
	return n, nil
}

// KeyReviews returns a copy of reviews in which every review that would share
// its @id with another one gets a Key: reviews with the same URL and neither
// SchemaID nor Key. The key hashes author, date and body, so it is stable
// across builds and independent of list order.
func KeyReviews(reviews []Review) []Review {
	shared := make(map[string]int, len(reviews))
	for _, r := range reviews {
		if needsReviewKey(r) {
			shared[r.URL]++
		}
	}
	out := make([]Review, len(reviews))
	for i, r := range reviews {
		if needsReviewKey(r) && shared[r.URL] > 1 {
			r.Key = nodeid.HashKey(r.Author.Name, r.DatePublished, r.ReviewBody)
		}
		out[i] = r
	}
	return out
}

func needsReviewKey(r Review) bool {
	return r.URL != "" && r.SchemaID == "" && r.Key == ""
}

func (m *Mapper) mapReviews(reviews []Review) ([]jsonld.Node, error) {
	out := make([]jsonld.Node, 0, len(reviews))
	for _, r := range KeyReviews(reviews) {
		n, err := m.MapReview(r)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (m *Mapper) optionalRating(in *AggregateRating) (jsonld.Node, error) {
	if in == nil {
		return nil, nil
	}
	return m.MapAggregateRating(*in)
}
