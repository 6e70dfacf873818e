package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

// CreateImage stores an uploaded image. IssueID may be nil: uploads are
// staged unattached and linked later via a partial issue update. An empty
// filename gets a generated one; an empty MIME type defaults to JPEG.
func (s *SQLiteStore) CreateImage(ctx context.Context, in model.NewImage) (*model.Image, error) {
	if in.MimeType == "" {
		in.MimeType = model.DefaultImageMimeType
	}
	if in.Filename == "" {
		in.Filename = uuid.New().String() + extensionForMime(in.MimeType)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO images (filename, mime_type, data, issue_id, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.Filename, in.MimeType, in.Data, in.IssueID, in.Metadata, formatTime(s.now()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating image %s: %w", in.Filename, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new image id: %w", err)
	}
	return s.GetImage(ctx, id)
}

// GetImage retrieves a single image by ID. A missing id yields ErrNotFound.
func (s *SQLiteStore) GetImage(ctx context.Context, id int64) (*model.Image, error) {
	row := s.db.QueryRowxContext(ctx, `
		SELECT id, filename, mime_type, data, issue_id, metadata, created_at
		FROM images WHERE id = ?`, id)

	image, err := scanImage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("image %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting image %d: %w", id, err)
	}
	return &image, nil
}

// GetImagesByIssue returns all images attached to an issue.
func (s *SQLiteStore) GetImagesByIssue(ctx context.Context, issueID int64) ([]model.Image, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, filename, mime_type, data, issue_id, metadata, created_at
		FROM images
		WHERE issue_id = ?
		ORDER BY id ASC`,
		issueID)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	var images []model.Image
	for rows.Next() {
		image, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

// scanImage scans an image row.
func scanImage(row rowScanner) (model.Image, error) {
	var (
		image     model.Image
		createdAt string
	)

	err := row.Scan(
		&image.ID, &image.Filename, &image.MimeType, &image.Data,
		&image.IssueID, &image.Metadata, &createdAt,
	)
	if err != nil {
		return model.Image{}, err
	}

	if image.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Image{}, err
	}
	return image, nil
}

// extensionForMime maps common image MIME types to a file extension for
// generated filenames.
func extensionForMime(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/jpeg":
		return ".jpg"
	default:
		return ""
	}
}
