package entities

import "time"

type KBDocument struct {
	DocID     uint      `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	SourceURL string    `json:"sourceUrl,omitempty"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

type KBChunk struct {
	ChunkID   uint   `gorm:"primaryKey" json:"chunkId"`
	DocID     uint   `gorm:"index" json:"docId"`
	Ord       int    `json:"ord"`
	Text      string `json:"text"`
	CreatedAt time.Time
}

// ArticleRef points at a knowledge-base document from an advisory response.
type ArticleRef struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}
