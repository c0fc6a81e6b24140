package responses

import "testing"

type article struct {
	Title string `json:"title"`
	Likes int    `json:"likes"`
}

func TestParse_SearchDocuments(t *testing.T) {
	resp, err := Parse[SearchResponse[article]](200, loadFile(t, "search_success.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total() != 2 {
		t.Errorf("expected 2 total hits, got %d", resp.Total())
	}
	docs := resp.Documents()
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Title != "first" || docs[0].Likes != 10 {
		t.Errorf("unexpected first document: %+v", docs[0])
	}
	if resp.Hits.Hits[0].Score == nil || *resp.Hits.Hits[0].Score != 1.3 {
		t.Errorf("unexpected score: %v", resp.Hits.Hits[0].Score)
	}
}

func TestHitCount_ObjectForm(t *testing.T) {
	body := []byte(`{"took":1,"hits":{"total":{"value":120,"relation":"gte"},"hits":[]}}`)
	resp, err := Parse[SearchResponse[article]](200, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total() != 120 {
		t.Errorf("expected 120, got %d", resp.Total())
	}
	if resp.Hits.Total.Relation != "gte" {
		t.Errorf("unexpected relation: %q", resp.Hits.Total.Relation)
	}
}

func TestParse_GetDocument(t *testing.T) {
	resp, err := Parse[GetResponse[article]](200, loadFile(t, "get_found.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, found := resp.Document()
	if !found {
		t.Fatal("expected document to be found")
	}
	if doc.Title != "Document Title" || doc.Likes != 4 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestParse_GetDocumentMissing(t *testing.T) {
	body := []byte(`{"_index":"testindex","_type":"testtype","_id":"9","found":false}`)
	resp, err := Parse[GetResponse[article]](404, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found := resp.Document(); found {
		t.Error("expected document to be missing")
	}
}
