package responses

import "encoding/json"

// SearchResponse is the outcome of a search, with hit documents decoded
// as T. Aggregations are kept raw; their shape depends entirely on the
// query that produced them.
type SearchResponse[T any] struct {
	Took         int64           `json:"took"`
	TimedOut     bool            `json:"timed_out"`
	Shards       Shards          `json:"_shards"`
	Hits         Hits[T]         `json:"hits"`
	Aggregations json.RawMessage `json:"aggregations"`
}

// Shards reports per-shard execution counts for a search.
type Shards struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// Hits is the hit collection of a search response.
type Hits[T any] struct {
	Total    HitCount `json:"total"`
	MaxScore *float64 `json:"max_score"`
	Hits     []Hit[T] `json:"hits"`
}

// Hit is a single search hit.
type Hit[T any] struct {
	Index  string   `json:"_index"`
	Type   string   `json:"_type"`
	ID     string   `json:"_id"`
	Score  *float64 `json:"_score"`
	Source T        `json:"_source"`
}

// HitCount is the total hit count. Older servers send a bare number,
// newer ones an object with "value" and "relation".
type HitCount struct {
	Value    int64
	Relation string
}

// UnmarshalJSON accepts both hit-count wire shapes.
func (c *HitCount) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		c.Value = n
		c.Relation = "eq"
		return nil
	}
	var obj struct {
		Value    int64  `json:"value"`
		Relation string `json:"relation"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.Value = obj.Value
	c.Relation = obj.Relation
	return nil
}

// Total returns the total number of matching documents.
func (r *SearchResponse[T]) Total() int64 {
	return r.Hits.Total.Value
}

// Documents returns the decoded source of every hit, in result order.
func (r *SearchResponse[T]) Documents() []T {
	docs := make([]T, len(r.Hits.Hits))
	for i, h := range r.Hits.Hits {
		docs[i] = h.Source
	}
	return docs
}
