package serviceImp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/patrickmn/go-cache"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/kb/repository"
	"cropadvisor/pkg/kb/service"
)

const (
	chunkRunes      = 1000
	defaultMaxBytes = 1_500_000
	titleBoost      = 2.0
	resultsTTL      = 10 * time.Minute
)

type Svc struct {
	r        repository.KBRepository
	client   *http.Client
	allow    map[string]bool
	maxBytes int64
	results  *cache.Cache

	// gen changes on every ingest. A search only caches its result when
	// gen is unchanged since it read the chunks.
	mu  sync.Mutex
	gen uint64
}

// New builds the knowledge-base service. Hosts in allowed may be ingested by
// URL; a nil client gets a 20s timeout.
func New(r repository.KBRepository, client *http.Client, allowed []string, maxBytes int64) *Svc {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	allow := make(map[string]bool, len(allowed))
	for _, h := range allowed {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			allow[h] = true
		}
	}
	return &Svc{
		r:        r,
		client:   client,
		allow:    allow,
		maxBytes: maxBytes,
		results:  cache.New(resultsTTL, 2*resultsTTL),
	}
}

var _ service.KBService = (*Svc)(nil)

func chunkText(text string, maxRunes int) []string {
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			if s := strings.TrimSpace(cur.String()); s != "" {
				parts = append(parts, s)
			}
			cur.Reset()
			count = 0
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		parts = append(parts, s)
	}
	return parts
}

func (s *Svc) Ingest(ctx context.Context, d service.Document) (*entities.KBDocument, int, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return nil, 0, agronomy.InvalidInput("title is required")
	}
	if strings.TrimSpace(d.Text) == "" {
		return nil, 0, agronomy.InvalidInput("text is required")
	}

	doc := &entities.KBDocument{Title: title, Tags: normTags(d.Tags), SourceURL: strings.TrimSpace(d.SourceURL)}
	texts := chunkText(d.Text, chunkRunes)
	rows := make([]entities.KBChunk, len(texts))
	for i, t := range texts {
		rows[i] = entities.KBChunk{Ord: i, Text: t}
	}
	if err := s.r.CreateDoc(ctx, doc, rows); err != nil {
		return nil, 0, err
	}
	s.mu.Lock()
	s.gen++
	s.results.Flush()
	s.mu.Unlock()
	return doc, len(rows), nil
}

func (s *Svc) IngestURL(ctx context.Context, rawURL, title, tags string) (*entities.KBDocument, int, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, 0, agronomy.InvalidInput("url must be an absolute http(s) URL")
	}
	if !s.allow[strings.ToLower(u.Hostname())] {
		return nil, 0, fmt.Errorf("%w: %s", service.ErrDomainNotAllowed, u.Hostname())
	}

	text, pageTitle, err := s.fetchMainText(ctx, u.String())
	if err != nil {
		return nil, 0, &service.FetchError{URL: u.String(), Err: err}
	}
	if strings.TrimSpace(title) == "" {
		title = pageTitle
	}
	if strings.TrimSpace(title) == "" {
		title = u.Hostname()
	}
	return s.Ingest(ctx, service.Document{Title: title, Tags: tags, Text: text, SourceURL: u.String()})
}

func terms(q string) []string {
	fields := strings.FieldsFunc(strings.ToLower(q), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= 2 && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// Search ranks chunks by keyword occurrences. Terms found in the document
// title or tags add a fixed boost. Chunks without any match are dropped.
func (s *Svc) Search(ctx context.Context, query string, k int) ([]service.Hit, error) {
	ts := terms(query)
	if len(ts) == 0 {
		return nil, agronomy.InvalidInput("query must contain at least one word")
	}
	if k <= 0 {
		k = 6
	}
	key := fmt.Sprintf("%d|%s", k, strings.Join(ts, " "))
	if v, ok := s.results.Get(key); ok {
		return slices.Clone(v.([]service.Hit)), nil
	}

	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	chunks, err := s.r.AllChunks(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0)
	for _, ch := range chunks {
		if !slices.Contains(ids, ch.DocID) {
			ids = append(ids, ch.DocID)
		}
	}
	meta, err := s.r.DocsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	hits := []service.Hit{}
	for _, ch := range chunks {
		d := meta[ch.DocID]
		body := strings.ToLower(ch.Text)
		head := strings.ToLower(d.Title + " " + d.Tags)
		score := 0.0
		for _, t := range ts {
			score += float64(strings.Count(body, t))
			if strings.Contains(head, t) {
				score += titleBoost
			}
		}
		if score == 0 {
			continue
		}
		hits = append(hits, service.Hit{
			ChunkID: ch.ChunkID, DocID: ch.DocID, Ord: ch.Ord, Text: ch.Text,
			Score: score, DocTitle: d.Title, SourceURL: d.SourceURL,
		})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > k {
		hits = hits[:k]
	}
	s.mu.Lock()
	if s.gen == gen {
		s.results.SetDefault(key, slices.Clone(hits))
	}
	s.mu.Unlock()
	return hits, nil
}

func (s *Svc) ArticleRefs(ctx context.Context, crop string, limit int) ([]entities.ArticleRef, error) {
	crop = strings.ToLower(strings.TrimSpace(crop))
	refs := []entities.ArticleRef{}
	if crop == "" {
		return refs, nil
	}
	docs, err := s.r.ListDocs(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if limit > 0 && len(refs) == limit {
			break
		}
		if strings.Contains(strings.ToLower(d.Title), crop) || slices.Contains(strings.Split(d.Tags, ","), crop) {
			refs = append(refs, entities.ArticleRef{Title: d.Title, URL: d.SourceURL})
		}
	}
	return refs, nil
}

func normTags(raw string) string {
	out := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return strings.Join(out, ",")
}
