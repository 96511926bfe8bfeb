package service

import (
	"context"
	"fmt"
	"time"

	"bookhive-be/internal/access"
	"bookhive-be/internal/pkg/apperr"
	"bookhive-be/internal/repository/specification"
	"bookhive-be/internal/repository/unitofwork"
	"bookhive-be/pkg/export"

	"github.com/google/uuid"
)

type IExportService interface {
	ExportPage(ctx context.Context, userId uuid.UUID, bookSlug, pageSlug, rawFormat string) (*export.Result, error)
}

type exportService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   *access.Resolver
	timeout    time.Duration
}

func NewExportService(uowFactory unitofwork.RepositoryFactory, resolver *access.Resolver, timeout time.Duration) IExportService {
	return &exportService{
		uowFactory: uowFactory,
		resolver:   resolver,
		timeout:    timeout,
	}
}

func (s *exportService) ExportPage(ctx context.Context, userId uuid.UUID, bookSlug, pageSlug, rawFormat string) (*export.Result, error) {
	format, ok := export.ParseFormat(rawFormat)
	if !ok {
		return nil, apperr.InvalidRequest("unknown export format: " + rawFormat)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	book, err := uow.BookRepository().FindOne(ctx, specification.BySlug{Slug: bookSlug})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFound("book not found")
	}

	page, err := uow.PageRepository().FindOne(ctx, specification.BySlug{Slug: pageSlug})
	if err != nil {
		return nil, err
	}
	if page == nil || page.BookId == nil || *page.BookId != book.Id {
		return nil, apperr.NotFound("page not found in this book")
	}

	scope, err := pageScope(ctx, uow, page)
	if err != nil {
		return nil, err
	}
	if !s.resolver.CanView(ctx, principal, scope) {
		return nil, apperr.AccessDenied("you do not have access to this page")
	}

	switch format {
	case export.FormatMarkdown:
		return export.Markdown(page.Content, page.Name), nil
	case export.FormatPDF:
		doc := fmt.Sprintf(exportDocumentTemplate, page.Name, page.Name, page.Html)
		result, err := export.PDF(ctx, doc, page.Name, s.timeout)
		if err != nil {
			return nil, apperr.Upstream("pdf render", err)
		}
		return result, nil
	}
	return nil, apperr.InvalidRequest("unknown export format: " + rawFormat)
}

const exportDocumentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Georgia, serif; margin: 40px; line-height: 1.6; }
h1 { border-bottom: 1px solid #ccc; padding-bottom: 8px; }
pre { background: #f5f5f5; padding: 12px; overflow-x: auto; }
</style>
</head>
<body>
<h1>%s</h1>
%s
</body>
</html>`
