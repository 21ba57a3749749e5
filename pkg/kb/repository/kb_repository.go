package repository

import (
	"context"

	"cropadvisor/entities"
)

type KBRepository interface {
	// CreateDoc stores the document and its chunks in one transaction.
	CreateDoc(ctx context.Context, d *entities.KBDocument, chunks []entities.KBChunk) error
	ListDocs(ctx context.Context) ([]entities.KBDocument, error)
	AllChunks(ctx context.Context) ([]entities.KBChunk, error)
	DocsByIDs(ctx context.Context, ids []uint) (map[uint]entities.KBDocument, error)
	CountDocs(ctx context.Context) (int64, error)
}
