package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) DocumentRepository {
	return &sqliteRepository{db: db}
}

// UpsertDocument inserts a new row or resets an existing one, since uploading
// the same file name again replaces the stored bytes.
func (r *sqliteRepository) UpsertDocument(ctx context.Context, doc *model.UploadedDocument) error {
	query := `
		INSERT INTO documents (id, file_name, storage_path, size_bytes, chunk_count, status, uploaded_at, indexed_at)
		VALUES (?, ?, ?, ?, 0, ?, ?, NULL)
		ON CONFLICT(id) DO UPDATE SET
			file_name = excluded.file_name,
			storage_path = excluded.storage_path,
			size_bytes = excluded.size_bytes,
			chunk_count = 0,
			status = excluded.status,
			uploaded_at = excluded.uploaded_at,
			indexed_at = NULL
	`
	_, err := r.db.ExecContext(ctx, query, doc.ID, doc.FileName, doc.Path, doc.SizeBytes, doc.Status, doc.UploadedAt)
	if err != nil {
		return fmt.Errorf("could not upsert document: %w", err)
	}
	return nil
}

func (r *sqliteRepository) MarkIndexed(ctx context.Context, id string, chunkCount int, indexedAt time.Time) error {
	query := "UPDATE documents SET status = ?, chunk_count = ?, indexed_at = ? WHERE id = ?"
	return r.updateOne(ctx, query, model.StatusIndexed, chunkCount, indexedAt, id)
}

func (r *sqliteRepository) MarkFailed(ctx context.Context, id string) error {
	query := "UPDATE documents SET status = ? WHERE id = ?"
	return r.updateOne(ctx, query, model.StatusFailed, id)
}

func (r *sqliteRepository) updateOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepository) GetDocument(ctx context.Context, id string) (*model.UploadedDocument, error) {
	query := `
		SELECT id, file_name, storage_path, size_bytes, chunk_count, status, uploaded_at, indexed_at
		FROM documents WHERE id = ?
	`
	doc, err := scanDocument(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (r *sqliteRepository) ListDocuments(ctx context.Context) ([]*model.UploadedDocument, error) {
	query := `
		SELECT id, file_name, storage_path, size_bytes, chunk_count, status, uploaded_at, indexed_at
		FROM documents ORDER BY uploaded_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []*model.UploadedDocument{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*model.UploadedDocument, error) {
	var doc model.UploadedDocument
	var indexedAt sql.NullTime
	if err := row.Scan(&doc.ID, &doc.FileName, &doc.Path, &doc.SizeBytes, &doc.ChunkCount, &doc.Status, &doc.UploadedAt, &indexedAt); err != nil {
		return nil, err
	}
	if indexedAt.Valid {
		t := indexedAt.Time
		doc.IndexedAt = &t
	}
	return &doc, nil
}
