package service

import (
	"context"
	"errors"
	"fmt"

	"cropadvisor/entities"
)

var ErrDomainNotAllowed = errors.New("domain not allowed")

// FetchError reports a failed download of a page to ingest.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch %s: %v", e.URL, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

type Document struct {
	Title     string `json:"title"`
	Tags      string `json:"tags"`
	Text      string `json:"text"`
	SourceURL string `json:"sourceUrl"`
}

// Hit is a scored chunk with the metadata of its document.
type Hit struct {
	ChunkID   uint    `json:"chunkId"`
	DocID     uint    `json:"docId"`
	Ord       int     `json:"ord"`
	Text      string  `json:"text"`
	Score     float64 `json:"score"`
	DocTitle  string  `json:"docTitle,omitempty"`
	SourceURL string  `json:"sourceUrl,omitempty"`
}

type KBService interface {
	Ingest(ctx context.Context, d Document) (*entities.KBDocument, int, error)
	IngestURL(ctx context.Context, rawURL, title, tags string) (*entities.KBDocument, int, error)
	Search(ctx context.Context, query string, k int) ([]Hit, error)
	// ArticleRefs lists documents whose title or tags mention the crop.
	ArticleRefs(ctx context.Context, crop string, limit int) ([]entities.ArticleRef, error)
}
