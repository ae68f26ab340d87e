package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mrtrack/internal/csvexport"
	"mrtrack/internal/domain"
	"mrtrack/internal/logging"
	"mrtrack/internal/port"
	"mrtrack/internal/xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WorkbookReport is a rendered monthly workbook. URL is set when the
// workbook was uploaded to object storage.
type WorkbookReport struct {
	Filename string `json:"filename"`
	Key      string `json:"key,omitempty"`
	URL      string `json:"url,omitempty"`
	Content  []byte `json:"-"`
}

// ReportService renders exports of the analytics views.
type ReportService interface {
	MonthlyWorkbook(ctx context.Context, month string) (*WorkbookReport, error)
	ExportVisitsCSV(ctx context.Context, actor Actor, fieldRepID string, w io.Writer) error
}

type reportService struct {
	repos         Repositories
	storage       port.ObjectStorage
	presignExpiry int64
	cal           Calendar
}

// NewReportService creates a new ReportService implementation. A nil storage
// keeps workbooks in memory for the caller to stream.
func NewReportService(repos Repositories, storage port.ObjectStorage, presignExpiry int64, cal Calendar) ReportService {
	return &reportService{
		repos:         repos,
		storage:       storage,
		presignExpiry: presignExpiry,
		cal:           cal,
	}
}

func (s *reportService) MonthlyWorkbook(ctx context.Context, month string) (*WorkbookReport, error) {
	if month == "" {
		month = s.cal.Today()[:7]
	} else if !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}

	data, err := s.repos.LoadDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.MonthlyWorkbook: %w", err)
	}
	e := s.cal.Engine(data)

	expenses := make([]domain.DailyExpense, 0)
	for i := range data.FieldReps {
		expenses = append(expenses, e.MonthlyExpenses(data.FieldReps[i].ID, month)...)
	}

	wb := &xlsx.Workbook{
		Month:        month,
		GeneratedOn:  e.Today(),
		FieldReps:    e.FieldRepBusinessStats(),
		Doctors:      e.DoctorBusinessStats(),
		Products:     e.ProductPromotionStats(),
		Expenses:     expenses,
		ExpenseTotal: e.MonthlyExpenseSummary("", month),
	}

	var buf bytes.Buffer
	if err := xlsx.WriteWorkbook(&buf, wb); err != nil {
		return nil, fmt.Errorf("report.MonthlyWorkbook: %w", err)
	}

	report := &WorkbookReport{
		Filename: csvexport.BuildFilename("mr_analytics", month, "xlsx"),
		Content:  buf.Bytes(),
	}
	if s.storage == nil {
		return report, nil
	}

	key := fmt.Sprintf("reports/%s/%s.xlsx", month, uuid.New().String())
	if _, err := s.storage.Put(ctx, port.PutObjectInput{
		Key:         key,
		Body:        bytes.NewReader(report.Content),
		ContentType: xlsxContentType,
	}); err != nil {
		logging.LogError(logging.Get(), "report", "upload", logrus.Fields{"key": key}, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	url, err := s.storage.PresignGet(ctx, key, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("report.MonthlyWorkbook presign: %w", err)
	}
	report.Key = key
	report.URL = url
	return report, nil
}

// ExportVisitsCSV writes visits as CSV. An MR user always gets their own rep;
// an admin with no rep gets the whole log in recorded order.
func (s *reportService) ExportVisitsCSV(ctx context.Context, actor Actor, fieldRepID string, w io.Writer) error {
	repID, err := actor.ScopeFieldRep(fieldRepID)
	if err != nil {
		return err
	}

	data, err := s.repos.LoadDataset(ctx)
	if err != nil {
		return fmt.Errorf("report.ExportVisitsCSV: %w", err)
	}
	visits := data.Visits
	if repID != "" {
		visits = s.cal.Engine(data).VisitsForFieldRep(repID, "")
	}

	names := make(map[string]string, len(data.Products))
	for i := range data.Products {
		names[data.Products[i].ID] = data.Products[i].Name
	}

	cw := csvexport.NewWriter(w, names)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("report.ExportVisitsCSV: %w", err)
	}
	if err := cw.WriteVisits(visits); err != nil {
		return fmt.Errorf("report.ExportVisitsCSV: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
