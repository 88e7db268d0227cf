package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/api-sage/ledger-registry-engine/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/ledger-registry-engine/src/internal/commons"
	"github.com/api-sage/ledger-registry-engine/src/internal/domain"
	"github.com/api-sage/ledger-registry-engine/src/internal/logger"
	"github.com/api-sage/ledger-registry-engine/src/internal/models"
	"github.com/api-sage/ledger-registry-engine/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.RegistryService = (*RegistryService)(nil)

const reportTopPerGroup = 3

type RegistryService struct {
	recordRepo repo_interfaces.RecordRepository
}

func NewRegistryService(recordRepo repo_interfaces.RecordRepository) *RegistryService {
	return &RegistryService{recordRepo: recordRepo}
}

func (s *RegistryService) AddRecord(ctx context.Context, req models.AddRecordRequest) (commons.Response[models.RecordResponse], error) {
	logger.Info("registry service add record request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("registry service add record validation failed", err, nil)
		return commons.ErrorResponse[models.RecordResponse]("validation failed", err.Error()), err
	}

	record := domain.Record{
		ID:    req.ID,
		Name:  strings.TrimSpace(req.Name),
		Age:   req.Age,
		Group: strings.TrimSpace(req.Group),
		Score: req.Score,
	}

	if err := s.recordRepo.Append(ctx, record); err != nil {
		logger.Error("registry service add record repository failed", err, logger.Fields{
			"recordId": record.ID,
		})
		if errors.Is(err, domain.ErrDuplicateRecord) {
			return commons.ErrorResponse[models.RecordResponse]("validation failed", err.Error()), err
		}
		return commons.ErrorResponse[models.RecordResponse]("failed to add record", "Unable to add record right now"), err
	}

	logger.Info("registry service add record success", logger.Fields{
		"recordId": record.ID,
		"group":    record.Group,
	})

	return commons.SuccessResponse("record added successfully", mapRecordToResponse(record)), nil
}

func (s *RegistryService) AllRecords(ctx context.Context) ([]domain.Record, error) {
	return s.recordRepo.All(ctx)
}

// FindRecordByID reports absence in the response body, not as a Go
// error: a miss is an expected outcome of a lookup, not a failure.
func (s *RegistryService) FindRecordByID(ctx context.Context, id int) (commons.Response[models.RecordResponse], error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.NotFoundResponse[models.RecordResponse]("Record not found"), nil
		}
		return commons.ErrorResponse[models.RecordResponse]("failed to find record", "Unable to find record right now"), err
	}

	return commons.SuccessResponse("record found", mapRecordToResponse(record)), nil
}

// FilterByGroup matches case-insensitively. A blank filter yields no
// results, and records carrying no group are excluded rather than
// compared.
func (s *RegistryService) FilterByGroup(ctx context.Context, group string) ([]domain.Record, error) {
	group = strings.TrimSpace(group)
	if group == "" {
		return []domain.Record{}, nil
	}

	records, err := s.recordRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Record, 0)
	for _, record := range records {
		if record.Group == "" {
			continue
		}
		if strings.EqualFold(record.Group, group) {
			out = append(out, record)
		}
	}

	return out, nil
}

// SortByScoreDescThenName returns a freshly ordered slice; the
// registry's insertion order is untouched. The sort is stable, so
// records tying on both keys keep their insertion order.
func (s *RegistryService) SortByScoreDescThenName(ctx context.Context) ([]domain.Record, error) {
	records, err := s.recordRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	sortScoreDescThenName(records)
	return records, nil
}

// GroupByGroup buckets records by group value in a single forward
// pass; buckets appear in the order each group was first seen.
func (s *RegistryService) GroupByGroup(ctx context.Context) ([]domain.RecordGroup, error) {
	records, err := s.recordRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	return groupRecords(records), nil
}

func (s *RegistryService) Report(ctx context.Context) (commons.Response[models.RegistryReportResponse], error) {
	records, err := s.recordRepo.All(ctx)
	if err != nil {
		logger.Error("registry service report snapshot failed", err, nil)
		return commons.ErrorResponse[models.RegistryReportResponse]("failed to build report", "Unable to build report right now"), err
	}

	overallAvg := 0.0
	if len(records) > 0 {
		sum := 0.0
		for _, record := range records {
			sum += record.Score
		}
		overallAvg = sum / float64(len(records))
	}

	var sb strings.Builder
	sb.WriteString("=== Record Report ===\n")
	sb.WriteString(fmt.Sprintf("Total: %d\n", len(records)))
	sb.WriteString(fmt.Sprintf("Avg score (all): %.2f\n\n", overallAvg))

	for _, bucket := range groupRecords(records) {
		sum := 0.0
		for _, record := range bucket.Records {
			sum += record.Score
		}
		groupAvg := sum / float64(len(bucket.Records))
		sb.WriteString(fmt.Sprintf("[Group] %s | Avg score: %.2f\n", bucket.Group, groupAvg))

		top := make([]domain.Record, len(bucket.Records))
		copy(top, bucket.Records)
		sortScoreDescThenName(top)
		if len(top) > reportTopPerGroup {
			top = top[:reportTopPerGroup]
		}

		for i, record := range top {
			sb.WriteString(fmt.Sprintf("  #%d %s\n", i+1, record))
		}
		sb.WriteString("\n")
	}

	response := models.RegistryReportResponse{
		TotalRecords: len(records),
		AverageScore: fmt.Sprintf("%.2f", overallAvg),
		Text:         sb.String(),
	}

	logger.Info("registry service report success", logger.Fields{
		"totalRecords": response.TotalRecords,
		"averageScore": response.AverageScore,
	})

	return commons.SuccessResponse("report built successfully", response), nil
}

func sortScoreDescThenName(records []domain.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].Name < records[j].Name
	})
}

func groupRecords(records []domain.Record) []domain.RecordGroup {
	index := make(map[string]int)
	groups := make([]domain.RecordGroup, 0)

	for _, record := range records {
		i, seen := index[record.Group]
		if !seen {
			i = len(groups)
			index[record.Group] = i
			groups = append(groups, domain.RecordGroup{Group: record.Group})
		}
		groups[i].Records = append(groups[i].Records, record)
	}

	return groups
}

func mapRecordToResponse(record domain.Record) models.RecordResponse {
	return models.RecordResponse{
		ID:    record.ID,
		Name:  record.Name,
		Age:   record.Age,
		Group: record.Group,
		Score: record.Score,
	}
}
