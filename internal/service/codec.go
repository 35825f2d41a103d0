package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/axiomhq/nhuff"
	"github.com/axiomhq/nhuff/internal/repo"
	"github.com/axiomhq/nhuff/pkg/logger"
)

var ErrInvalidName = errors.New("table name is required")

// TableSummary describes a stored table. Codes is keyed by the symbol's
// two-digit hex value.
type TableSummary struct {
	Name       string            `json:"name"`
	Radix      int               `json:"radix"`
	Symbols    int               `json:"symbols"`
	MaxCodeLen int               `json:"max_code_len"`
	Codes      map[string]string `json:"codes,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// CodecService manages named code tables. Every table is immutable once
// stored, so encode and decode calls for different inputs may run
// concurrently against the same table.
type CodecService struct {
	repo   repo.TableRepo
	logger logger.Logger
	radix  int
	now    func() time.Time
}

func NewCodecService(r repo.TableRepo, l logger.Logger, defaultRadix int) *CodecService {
	return &CodecService{repo: r, logger: l, radix: defaultRadix, now: time.Now}
}

// Train builds a table from data and stores it under name, replacing any
// previous table. radix 0 selects the service default.
func (s *CodecService) Train(ctx context.Context, name string, data []byte, radix int) (*TableSummary, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if radix == 0 {
		radix = s.radix
	}
	tbl, err := nhuff.Train(data, radix, nhuff.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	rec := &repo.Record{Name: name, Table: tbl, UpdatedAt: s.now()}
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Infof("table trained: %s (radix=%d symbols=%d bytes=%d)", name, radix, tbl.Len(), len(data))
	return summarize(rec, false), nil
}

func (s *CodecService) Get(ctx context.Context, name string) (*TableSummary, error) {
	rec, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return summarize(rec, true), nil
}

func (s *CodecService) List(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

// Encode encodes data with the table stored under name.
func (s *CodecService) Encode(ctx context.Context, name string, data []byte) ([]byte, error) {
	rec, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	out, err := rec.Table.EncodeAll(data)
	if err != nil {
		s.logger.Errorf("encode with %s: %v", name, err)
		return nil, err
	}
	return out, nil
}

// Decode decodes a digit stream with the table stored under name.
func (s *CodecService) Decode(ctx context.Context, name string, digits []byte) ([]byte, error) {
	rec, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	out, err := rec.Table.DecodeAll(digits)
	if err != nil {
		s.logger.Errorf("decode with %s: %v", name, err)
		return nil, err
	}
	return out, nil
}

func summarize(rec *repo.Record, withCodes bool) *TableSummary {
	sum := &TableSummary{
		Name:       rec.Name,
		Radix:      rec.Table.Radix(),
		Symbols:    rec.Table.Len(),
		MaxCodeLen: rec.Table.MaxCodeLen(),
		UpdatedAt:  rec.UpdatedAt,
	}
	if withCodes {
		sum.Codes = make(map[string]string, rec.Table.Len())
		for sym, code := range rec.Table.Codes() {
			sum.Codes[fmt.Sprintf("%02x", sym)] = code
		}
	}
	return sum
}
