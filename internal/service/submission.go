package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"formapi/internal/export"
	"formapi/internal/model"
	"formapi/internal/repository"
	"formapi/internal/storage"
	"formapi/internal/validation"
)

var ErrIDRequired = errors.New("id is required")

// maxListRecords caps how many submissions List and Export read from
// the store. There is no pagination; a future page parameter would
// replace this single constant.
const maxListRecords = 1000

// StorageError reports a record store failure for a specific operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ExportResult carries a rendered workbook and its download metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SubmissionService defines the use cases for handling shop-registration
// submissions. There is no update operation: records are created once
// and only ever removed.
type SubmissionService interface {
	// Create validates the payload, stamps a fresh id and UTC creation
	// timestamp, persists the record, and returns it.
	Create(ctx context.Context, in model.SubmissionInput) (*model.Submission, error)

	// List returns all stored submissions in store order, capped at 1000.
	List(ctx context.Context) ([]model.Submission, error)

	// Delete removes the submission with the given id and reports
	// whether one was found; a missing id is a negative result, not an
	// error.
	Delete(ctx context.Context, id string) (bool, error)

	// Export renders the current submissions into a workbook, archives
	// it to object storage when an archive is configured, and returns
	// the bytes with download metadata. It never mutates the store.
	Export(ctx context.Context) (*ExportResult, error)
}

// submissionService is a concrete implementation of SubmissionService.
type submissionService struct {
	repo     repository.SubmissionRepository
	archive  storage.Storage // nil disables export archiving
	validate *validation.Validator
	now      func() time.Time
	newID    func() string
}

// NewSubmissionService constructs a new SubmissionService. A nil archive
// disables export archiving.
func NewSubmissionService(repo repository.SubmissionRepository, archive storage.Storage) SubmissionService {
	return &submissionService{
		repo:     repo,
		archive:  archive,
		validate: validation.New(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (s *submissionService) Create(ctx context.Context, in model.SubmissionInput) (*model.Submission, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	sub := &model.Submission{
		ID:          s.newID(),
		MobileNo:    in.MobileNo,
		ShopName:    in.ShopName,
		OwnerName:   in.OwnerName,
		IndName:     in.IndName,
		AreaPinCode: in.AreaPinCode,
		Address:     in.Address,
		City:        in.City,
		Dist:        in.Dist,
		State:       in.State,
		Country:     in.Country,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Insert(ctx, sub); err != nil {
		return nil, &StorageError{Op: "insert", Err: err}
	}
	return sub, nil
}

func (s *submissionService) List(ctx context.Context) ([]model.Submission, error) {
	items, err := s.repo.List(ctx, maxListRecords)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	if items == nil {
		items = []model.Submission{}
	}
	return items, nil
}

func (s *submissionService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, &StorageError{Op: "delete", Err: err}
	}
	return deleted, nil
}

func (s *submissionService) Export(ctx context.Context) (*ExportResult, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	data, err := export.Render(items)
	if err != nil {
		return nil, fmt.Errorf("render export: %w", err)
	}

	res := &ExportResult{
		Filename:    export.Filename(s.now()),
		ContentType: export.ContentType,
		Data:        data,
	}

	if s.archive != nil {
		key := "exports/" + res.Filename
		_, err := s.archive.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
			Size:        int64(len(data)),
			ContentType: export.ContentType,
		})
		if err != nil {
			return nil, fmt.Errorf("archive export: %w", err)
		}
	}

	return res, nil
}
